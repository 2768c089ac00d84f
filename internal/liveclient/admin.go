package liveclient

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"liquidacenter-live/internal/domain"
	"liquidacenter-live/pkg/logger"
)

// ErrBroadcastBlocked is returned when a broadcast is refused because a
// question is already live. The server enforces the same rule, so this
// is an early local check rather than the source of truth.
var ErrBroadcastBlocked = errors.New("a question is already live")

// AdminSnapshot is the merchant console's view of the live state.
type AdminSnapshot struct {
	Question domain.LiveQuestion
	Results  *domain.VoteResults
	Stats    domain.LiveStats
	Banner   domain.Banner
}

// AdminController drives the merchant console: stream on/off, question
// broadcast and clear, and live tally polling while a question runs.
type AdminController struct {
	client *Client
	logger *logger.Logger

	mu       sync.Mutex
	question domain.LiveQuestion
	results  *domain.VoteResults
	stats    domain.LiveStats
	banner   domain.Banner

	poller *Poller
}

func NewAdminController(client *Client, log *logger.Logger, pollInterval time.Duration) *AdminController {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	c := &AdminController{
		client: client,
		logger: log,
	}
	c.poller = NewPoller(pollInterval, c.Poll, log)
	return c
}

// Start begins the tally poll loop; Stop releases it.
func (c *AdminController) Start(ctx context.Context) { c.poller.Start(ctx) }
func (c *AdminController) Stop()                     { c.poller.Stop() }

// Poll refreshes the admin view: current question, its running tally,
// viewer stats and banner state.
func (c *AdminController) Poll(ctx context.Context) error {
	q, err := c.client.LiveQuestion(ctx)
	if err != nil {
		return err
	}

	var results *domain.VoteResults
	if q.IsRunning() && q.ID != nil {
		r, err := c.client.VoteResults(ctx, *q.ID)
		if err != nil {
			return err
		}
		results = &r
	}

	stats, err := c.client.Stats(ctx)
	if err != nil {
		return err
	}
	banner, err := c.client.Banner(ctx)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.question = q
	c.results = results
	c.stats = stats
	c.banner = banner
	c.mu.Unlock()
	return nil
}

// ToggleLiveStream flips the stream banner on or off and returns the
// new state.
func (c *AdminController) ToggleLiveStream(ctx context.Context) (domain.Banner, error) {
	current, err := c.client.Banner(ctx)
	if err != nil {
		return domain.Banner{}, err
	}
	updated, err := c.client.SetBanner(ctx, !current.Active, current.Title, current.Message)
	if err != nil {
		return domain.Banner{}, err
	}
	c.mu.Lock()
	c.banner = updated
	c.mu.Unlock()
	return updated, nil
}

// BroadcastQuestion publishes a new question to all viewers. It refuses
// locally while it believes a question is still running; if the local
// view is stale the server rejects the overwrite with a conflict.
func (c *AdminController) BroadcastQuestion(ctx context.Context, question, optionA, optionB string, correctIndex int, difficulty domain.Difficulty) (domain.LiveQuestion, error) {
	c.mu.Lock()
	running := c.question.IsRunning()
	c.mu.Unlock()
	if running {
		return domain.LiveQuestion{}, ErrBroadcastBlocked
	}

	id := uuid.NewString()
	startedAt := time.Now().UTC()
	q := domain.LiveQuestion{
		Active:             true,
		ID:                 &id,
		Question:           question,
		OptionA:            optionA,
		OptionB:            optionB,
		CorrectAnswerIndex: &correctIndex,
		Difficulty:         &difficulty,
		Status:             domain.StatusRunning,
		StartedAt:          &startedAt,
	}

	stored, err := c.client.SetLiveQuestion(ctx, q)
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.IsConflict() {
			return domain.LiveQuestion{}, ErrBroadcastBlocked
		}
		return domain.LiveQuestion{}, err
	}

	c.mu.Lock()
	c.question = stored
	c.results = nil
	c.mu.Unlock()
	return stored, nil
}

// ClearLiveQuestion takes the current question down and returns viewers
// to the plain stream.
func (c *AdminController) ClearLiveQuestion(ctx context.Context) error {
	stored, err := c.client.SetLiveQuestion(ctx, domain.IdleQuestion())
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.question = stored
	c.results = nil
	c.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the current admin view.
func (c *AdminController) Snapshot() AdminSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	var results *domain.VoteResults
	if c.results != nil {
		v := *c.results
		results = &v
	}
	return AdminSnapshot{
		Question: c.question,
		Results:  results,
		Stats:    c.stats,
		Banner:   c.banner,
	}
}
