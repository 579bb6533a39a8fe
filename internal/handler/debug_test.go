package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

func TestHandleSetCategory(t *testing.T) {
	notFound := fmt.Errorf("%w: comon", domain.ErrCategoryNotFound)

	tests := []struct {
		name            string
		body            string
		setup           func(m *MockFishingService)
		wantStatus      int
		wantMessage     string
		wantSuggestions []string
	}{
		{
			name: "set",
			body: `{"player_id":"uuid-a","category":"rare"}`,
			setup: func(m *MockFishingService) {
				m.On("SetDebugCategory", mock.Anything, "uuid-a", "rare").Return(nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: MsgDebugCategorySet,
		},
		{
			name: "clear",
			body: `{"player_id":"uuid-a","category":""}`,
			setup: func(m *MockFishingService) {
				m.On("SetDebugCategory", mock.Anything, "uuid-a", "").Return(nil)
			},
			wantStatus:  http.StatusOK,
			wantMessage: MsgDebugCategoryCleared,
		},
		{
			name: "unknown with suggestions",
			body: `{"player_id":"uuid-a","category":"comon"}`,
			setup: func(m *MockFishingService) {
				m.On("SetDebugCategory", mock.Anything, "uuid-a", "comon").Return(notFound)
				m.On("ValidateDebugCategory", "comon").Return([]string{"common"}, notFound)
			},
			wantStatus:      http.StatusNotFound,
			wantSuggestions: []string{"common"},
		},
		{
			name:       "malformed category",
			body:       `{"player_id":"uuid-a","category":"Deep Sea"}`,
			setup:      func(m *MockFishingService) {},
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockFishingService{}
			tt.setup(svc)

			w := post(t, NewDebugHandler(svc).HandleSetCategory, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantMessage != "" {
				assert.Contains(t, w.Body.String(), tt.wantMessage)
			}
			if tt.wantSuggestions != nil {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantSuggestions, resp.Suggestions)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleCreateRod(t *testing.T) {
	svc := &MockFishingService{}
	rod := domain.EquippedItem{Material: domain.MaterialFishingRod, DebugRod: true, DebugCategory: "rare"}
	svc.On("NewDebugRod", "rare").Return(rod, nil)

	w := post(t, NewDebugHandler(svc).HandleCreateRod, `{"category":"rare"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp struct {
		Data domain.EquippedItem `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, rod, resp.Data)

	w = post(t, NewDebugHandler(svc).HandleCreateRod, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
