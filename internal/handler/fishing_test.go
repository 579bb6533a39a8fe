package handler

import (
	"bytes"
	"encoding/json"
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

const alicePlayer = `{"id":"uuid-a","name":"Alice","experience_level":3}`

func post(t *testing.T, h http.HandlerFunc, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(body))
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func TestHandleStart(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		serviceErr error
		callsSvc   bool
		wantStatus int
	}{
		{"success", `{"player":` + alicePlayer + `}`, nil, true, http.StatusCreated},
		{"invalid json", `{"player":`, nil, false, http.StatusBadRequest},
		{"missing name", `{"player":{"id":"uuid-a"}}`, nil, false, http.StatusBadRequest},
		{"resolving", `{"player":` + alicePlayer + `}`, domain.ErrInvalidTransition, true, http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockFishingService{}
			if tt.callsSvc {
				svc.On("Start", mock.Anything, mock.MatchedBy(func(p domain.PlayerState) bool {
					return p.ID == "uuid-a" && p.Name == "Alice" && p.ExperienceLevel == 3
				})).Return(tt.serviceErr)
			}

			w := post(t, NewFishingHandler(svc).HandleStart, tt.body)
			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleStart_ValidationFields(t *testing.T) {
	svc := &MockFishingService{}
	w := post(t, NewFishingHandler(svc).HandleStart, `{"player":{"id":"uuid-a"}}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp ValidationErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, ErrMsgInvalidRequestSummary, resp.Error)
	assert.Equal(t, "This field is required", resp.Fields["name"])
}

func TestHandleBiteAndCancel(t *testing.T) {
	svc := &MockFishingService{}
	svc.On("Bite", mock.Anything, "uuid-a").Return(nil)
	svc.On("Cancel", mock.Anything, "uuid-a").Return(domain.ErrSessionNotFound)
	h := NewFishingHandler(svc)

	w := post(t, h.HandleBite, `{"player_id":"uuid-a"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), MsgBiteRecorded)

	w = post(t, h.HandleCancel, `{"player_id":"uuid-a"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), ErrMsgSessionNotFoundError)

	w = post(t, h.HandleBite, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertExpectations(t)
}

func TestHandleCatch(t *testing.T) {
	svc := &MockFishingService{}
	hit := domain.TimingHit{Tier: domain.TimingTier{Name: "just"}, ReactionTimeMs: 90, Bonus: 3}
	outcome := domain.CatchOutcome{
		Results: []domain.FishingAttemptResult{{
			AttemptID: "a1",
			PlayerID:  "uuid-a",
			Category:  "rare",
			Item:      domain.NewItem("NAUTILUS_SHELL", 1),
			Timing:    hit,
		}},
		SharedEffectsCategory: "rare",
		Timing:                hit,
	}

	svc.On("Catch", mock.Anything, mock.MatchedBy(func(cc domain.CatchContext) bool {
		return cc.Player.ID == "uuid-a" &&
			cc.Hook.World == "world" &&
			cc.World.HasStorm &&
			cc.Caught != nil && cc.Caught.Material == "COD" &&
			cc.Blocks.BlockAt(cc.Hook.Offset(0, 1, 0)) == "minecraft:water" &&
			cc.Blocks.BlockAt(cc.Hook.Offset(2, 2, 2)) == "minecraft:air"
	})).Return(outcome, nil)

	body := fmt.Sprintf(`{
		"player": %s,
		"hook": {"world":"world","x":10,"y":62,"z":-4},
		"world": {"has_storm":true},
		"caught": {"material":"COD","amount":1},
		"blocks": [{"dx":0,"dy":1,"dz":0,"block":"minecraft:water"}],
		"default_block": "minecraft:air"
	}`, alicePlayer)

	w := post(t, NewFishingHandler(svc).HandleCatch, body)
	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "JUST! 90ms", resp["timing_label"])
	assert.Equal(t, "rare", resp["shared_effects_category"])
	results := resp["results"].([]interface{})
	require.Len(t, results, 1)
	assert.Equal(t, "rare", results[0].(map[string]interface{})["category"])
	svc.AssertExpectations(t)
}

func TestHandleCatch_Rejected(t *testing.T) {
	svc := &MockFishingService{}
	svc.On("Catch", mock.Anything, mock.Anything).Return(domain.CatchOutcome{}, domain.ErrInvalidTransition)

	body := fmt.Sprintf(`{"player": %s, "hook": {"world":"world"}}`, alicePlayer)
	w := post(t, NewFishingHandler(svc).HandleCatch, body)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandleCatch_RequiresHookWorld(t *testing.T) {
	svc := &MockFishingService{}
	body := fmt.Sprintf(`{"player": %s, "hook": {"x":1}}`, alicePlayer)
	w := post(t, NewFishingHandler(svc).HandleCatch, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "Catch", mock.Anything, mock.Anything)
}

func TestHandleGetSession(t *testing.T) {
	svc := &MockFishingService{}
	svc.On("SessionState", "uuid-a").Return(domain.SessionBiting, true)
	svc.On("SessionState", "uuid-b").Return(domain.SessionState(0), false)

	r := chi.NewRouter()
	r.Get("/session/{playerID}", NewFishingHandler(svc).HandleGetSession)

	tests := []struct {
		name   string
		player string
		want   SessionResponse
	}{
		{"active", "uuid-a", SessionResponse{PlayerID: "uuid-a", Active: true, State: "biting"}},
		{"none", "uuid-b", SessionResponse{PlayerID: "uuid-b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/session/"+tt.player, nil))
			require.Equal(t, http.StatusOK, w.Code)

			var got SessionResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}
