package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

func TestHandleReloadConfig(t *testing.T) {
	tests := []struct {
		name       string
		reloader   *mockReloader
		wantStatus int
		wantBody   string
	}{
		{
			name:       "success",
			reloader:   &mockReloader{summary: domain.ConfigReloadedPayload{CategoryCount: 4, LootTables: 4, KnownUniques: 2}},
			wantStatus: http.StatusOK,
			wantBody:   `"category_count":4`,
		},
		{
			name:       "invalid config",
			reloader:   &mockReloader{err: fmt.Errorf("%w: tiers out of order", domain.ErrInvalidConfig)},
			wantStatus: http.StatusUnprocessableEntity,
			wantBody:   ErrMsgInvalidConfigError,
		},
		{
			name:       "io failure",
			reloader:   &mockReloader{err: errors.New("disk gone")},
			wantStatus: http.StatusInternalServerError,
			wantBody:   ErrMsgReloadConfigFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := post(t, HandleReloadConfig(tt.reloader), "")
			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			assert.NotContains(t, w.Body.String(), "disk gone")
		})
	}
}

func TestHandleGetWorldStats(t *testing.T) {
	stats := &mockStats{}
	stats.On("Stats", mock.Anything, "world", 3).Return(domain.WorldUniqueStats{World: "world", ClaimedCount: 1, KnownCount: 3}, nil)
	stats.On("Stats", mock.Anything, "broken", 3).Return(domain.WorldUniqueStats{}, errors.New("boom"))

	r := chi.NewRouter()
	r.Get("/unique/{world}", NewUniqueHandler(stats, staticCatalog{"a", "b", "c"}).HandleGetWorldStats)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/unique/world", nil))
	require.Equal(t, http.StatusOK, w.Code)
	var got domain.WorldUniqueStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 1, got.ClaimedCount)
	assert.Equal(t, 3, got.KnownCount)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/unique/broken", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestMapServiceErrorToStatus(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"nil", nil, http.StatusInternalServerError},
		{"invalid input", domain.ErrInvalidInput, http.StatusBadRequest},
		{"category", fmt.Errorf("%w: x", domain.ErrCategoryNotFound), http.StatusNotFound},
		{"session", domain.ErrSessionNotFound, http.StatusNotFound},
		{"world", domain.ErrUnknownWorld, http.StatusNotFound},
		{"transition", domain.ErrInvalidTransition, http.StatusConflict},
		{"config", domain.ErrInvalidConfig, http.StatusUnprocessableEntity},
		{"store", domain.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{"other", errors.New("x"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, msg := mapServiceErrorToStatus(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.NotEmpty(t, msg)
		})
	}
}
