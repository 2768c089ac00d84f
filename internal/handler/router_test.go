package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"liquidacenter-live/internal/repository"
	"liquidacenter-live/internal/service"
	"liquidacenter-live/pkg/logger"
)

// newTestRouter wires every handler onto memory stores, mirroring the
// production route table.
func newTestRouter(t *testing.T) chi.Router {
	t.Helper()
	log := logger.NewNop()

	questionService := service.NewQuestionService(repository.NewMemoryQuestionStore(), log)
	voteService := service.NewVoteService(repository.NewMemoryVoteStore(), log, 0)
	statsService := service.NewStatsService(repository.NewMemoryStatsStore(), log, 0)
	chatService := service.NewChatService(repository.NewMemoryChatStore(), log, 100, 50, 0)
	bannerService := service.NewBannerService(repository.NewMemoryBannerStore(), log)

	r := chi.NewRouter()
	r.MethodNotAllowed(MethodNotAllowed(log))
	r.Route("/api", func(api chi.Router) {
		NewQuestionHandler(questionService, log).RegisterRoutes(api)
		NewVoteHandler(voteService, log).RegisterRoutes(api)
		NewStatsHandler(statsService, log).RegisterRoutes(api)
		NewChatHandler(chatService, log).RegisterRoutes(api)
		NewBannerHandler(bannerService, log).RegisterRoutes(api)
	})
	return r
}

// doJSON performs a request with an optional JSON body and decodes the
// JSON response into out when out is non-nil.
func doJSON(t *testing.T, r http.Handler, method, path string, body, out interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if out != nil {
		require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
	}
	return rec
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&payload))
	return payload.Error
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{
		"/api/live-question",
		"/api/live-vote",
		"/api/live-stats",
		"/api/live-chat",
		"/api/quiz-state",
	} {
		t.Run(path, func(t *testing.T) {
			rec := doJSON(t, r, http.MethodDelete, path, nil, nil)
			assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
			assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))
			assert.Equal(t, "Method DELETE Not Allowed", errorMessage(t, rec))
		})
	}
}

func TestRouter_ErrorsAreJSON(t *testing.T) {
	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/live-vote", `{"broken`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Invalid JSON body", errorMessage(t, rec))
}
