package liveclient

import (
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"liquidacenter-live/internal/handler"
	"liquidacenter-live/internal/repository"
	"liquidacenter-live/internal/service"
	"liquidacenter-live/pkg/logger"
)

// newTestServer stands up the real route table on memory stores so the
// client code talks to the same handlers production serves.
func newTestServer(t *testing.T) (*httptest.Server, *Client) {
	t.Helper()
	log := logger.NewNop()

	questionService := service.NewQuestionService(repository.NewMemoryQuestionStore(), log)
	voteService := service.NewVoteService(repository.NewMemoryVoteStore(), log, 0)
	statsService := service.NewStatsService(repository.NewMemoryStatsStore(), log, 0)
	chatService := service.NewChatService(repository.NewMemoryChatStore(), log, 100, 50, 0)
	bannerService := service.NewBannerService(repository.NewMemoryBannerStore(), log)

	r := chi.NewRouter()
	r.MethodNotAllowed(handler.MethodNotAllowed(log))
	r.Route("/api", func(api chi.Router) {
		handler.NewQuestionHandler(questionService, log).RegisterRoutes(api)
		handler.NewVoteHandler(voteService, log).RegisterRoutes(api)
		handler.NewStatsHandler(statsService, log).RegisterRoutes(api)
		handler.NewChatHandler(chatService, log).RegisterRoutes(api)
		handler.NewBannerHandler(bannerService, log).RegisterRoutes(api)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return srv, NewClient(srv.URL)
}

// fakeClock is a hand-cranked time source for session tests.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock(start time.Time) *fakeClock {
	return &fakeClock{now: start}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}
