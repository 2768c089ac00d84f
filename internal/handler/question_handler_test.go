package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liquidacenter-live/internal/domain"
)

func TestQuestionHandler_GetDefault(t *testing.T) {
	r := newTestRouter(t)

	var q domain.LiveQuestion
	rec := doJSON(t, r, http.MethodGet, "/api/live-question", nil, &q)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, q.Active)
	assert.Nil(t, q.ID)
	assert.Equal(t, domain.StatusIdle, q.Status)
}

func TestQuestionHandler_BroadcastRoundtrip(t *testing.T) {
	r := newTestRouter(t)

	payload := map[string]interface{}{
		"active":             true,
		"id":                 "q-1",
		"question":           "Which jacket drops next?",
		"optionA":            "Bomber",
		"optionB":            "Denim",
		"correctAnswerIndex": 0,
		"difficulty":         "Easy",
		"status":             "running",
	}

	var stored domain.LiveQuestion
	rec := doJSON(t, r, http.MethodPost, "/api/live-question", payload, &stored)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, stored.ID)
	assert.Equal(t, "q-1", *stored.ID)
	assert.True(t, stored.IsRunning())
	// server stamps the start time when the caller omits it
	require.NotNil(t, stored.StartedAt)

	var fetched domain.LiveQuestion
	rec = doJSON(t, r, http.MethodGet, "/api/live-question", nil, &fetched)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, stored, fetched)
}

func TestQuestionHandler_SecondBroadcastConflicts(t *testing.T) {
	r := newTestRouter(t)

	first := map[string]interface{}{
		"active": true, "id": "q-1", "status": "running",
	}
	rec := doJSON(t, r, http.MethodPost, "/api/live-question", first, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	second := map[string]interface{}{
		"active": true, "id": "q-2", "status": "running",
	}
	rec = doJSON(t, r, http.MethodPost, "/api/live-question", second, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	// the running question is untouched
	var q domain.LiveQuestion
	doJSON(t, r, http.MethodGet, "/api/live-question", nil, &q)
	assert.Equal(t, "q-1", *q.ID)
}

func TestQuestionHandler_ClearViaIdlePost(t *testing.T) {
	r := newTestRouter(t)

	running := map[string]interface{}{
		"active": true, "id": "q-1", "status": "running",
	}
	rec := doJSON(t, r, http.MethodPost, "/api/live-question", running, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cleared domain.LiveQuestion
	rec = doJSON(t, r, http.MethodPost, "/api/live-question", map[string]interface{}{"active": false}, &cleared)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.False(t, cleared.IsRunning())
	assert.Equal(t, domain.StatusIdle, cleared.Status)
}

func TestQuestionHandler_SetValidation(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name    string
		body    interface{}
		wantMsg string
	}{
		{
			name:    "malformed JSON",
			body:    `{"active":`,
			wantMsg: "Invalid JSON body",
		},
		{
			name:    "missing active flag",
			body:    map[string]interface{}{"id": "q-1", "status": "running"},
			wantMsg: "Invalid active status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodPost, "/api/live-question", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, tt.wantMsg, errorMessage(t, rec))
		})
	}
}
