package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liquidacenter-live/internal/domain"
)

func castVote(t *testing.T, r http.Handler, questionID, userID string, index int) *httptest.ResponseRecorder {
	t.Helper()
	return doJSON(t, r, http.MethodPost, "/api/live-vote", map[string]interface{}{
		"questionId": questionID,
		"userId":     userID,
		"voteIndex":  index,
	}, nil)
}

func TestVoteHandler_CastAndResults(t *testing.T) {
	r := newTestRouter(t)

	rec := castVote(t, r, "q-1", "u-1", 0)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = castVote(t, r, "q-1", "u-2", 1)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = castVote(t, r, "q-1", "u-3", 1)
	require.Equal(t, http.StatusOK, rec.Code)

	var results domain.VoteResults
	rec = doJSON(t, r, http.MethodGet, "/api/live-vote?questionId=q-1", nil, &results)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "q-1", results.QuestionID)
	assert.Equal(t, [2]int{1, 2}, results.Votes)
	assert.Equal(t, 3, results.TotalVotes)
	assert.Equal(t, [2]int{33, 67}, results.Percentages)
}

func TestVoteHandler_DuplicateVoteIsForbidden(t *testing.T) {
	r := newTestRouter(t)

	rec := castVote(t, r, "q-1", "u-1", 0)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = castVote(t, r, "q-1", "u-1", 1)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.NotEmpty(t, errorMessage(t, rec))

	// counts unchanged by the rejected attempt
	var results domain.VoteResults
	doJSON(t, r, http.MethodGet, "/api/live-vote?questionId=q-1", nil, &results)
	assert.Equal(t, [2]int{1, 0}, results.Votes)
}

func TestVoteHandler_CastValidation(t *testing.T) {
	r := newTestRouter(t)

	tests := []struct {
		name string
		body interface{}
	}{
		{
			name: "malformed JSON",
			body: `not json`,
		},
		{
			name: "missing voteIndex",
			body: map[string]interface{}{"questionId": "q-1", "userId": "u-1"},
		},
		{
			name: "voteIndex out of range",
			body: map[string]interface{}{"questionId": "q-1", "userId": "u-1", "voteIndex": 5},
		},
		{
			name: "missing question id",
			body: map[string]interface{}{"userId": "u-1", "voteIndex": 0},
		},
		{
			name: "missing user id",
			body: map[string]interface{}{"questionId": "q-1", "voteIndex": 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodPost, "/api/live-vote", tt.body, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestVoteHandler_ResultsRequireQuestionID(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodGet, "/api/live-vote", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVoteHandler_ResultsForUnknownQuestion(t *testing.T) {
	r := newTestRouter(t)

	var results domain.VoteResults
	rec := doJSON(t, r, http.MethodGet, "/api/live-vote?questionId=ghost", nil, &results)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, results.TotalVotes)
	assert.Equal(t, [2]int{0, 0}, results.Percentages)
}
