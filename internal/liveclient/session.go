package liveclient

import (
	"context"
	"errors"
	"sync"
	"time"

	"liquidacenter-live/internal/domain"
	"liquidacenter-live/pkg/logger"
)

// SessionState is the viewer-side quiz state machine.
type SessionState int

const (
	// StateWatchingStream means no question is active.
	StateWatchingStream SessionState = iota
	// StateQuestionOpen means a question is live and the countdown runs.
	StateQuestionOpen
	// StateShowingResults means the window closed and percentages are shown.
	StateShowingResults
)

func (s SessionState) String() string {
	switch s {
	case StateQuestionOpen:
		return "question_open"
	case StateShowingResults:
		return "showing_results"
	default:
		return "watching_stream"
	}
}

// DefaultQuestionWindow is how long a question stays open for answers.
const DefaultQuestionWindow = 15 * time.Second

// DefaultPollInterval matches the original viewer's 2s refresh.
const DefaultPollInterval = 2 * time.Second

// Snapshot is a point-in-time view of the session for rendering.
type Snapshot struct {
	State          SessionState
	Question       domain.LiveQuestion
	TimeLeft       time.Duration
	SelectedAnswer *int
	Results        *domain.VoteResults
	Stats          domain.LiveStats
	Messages       []domain.ChatMessage
}

// SessionController drives the viewer-side quiz lifecycle by polling
// the live endpoints. The countdown is derived locally from the
// server-supplied start timestamp, so a late joiner fast-forwards to
// the remaining time instead of restarting the clock.
type SessionController struct {
	client       *Client
	userID       string
	window       time.Duration
	pollInterval time.Duration
	logger       *logger.Logger
	now          func() time.Time

	mu        sync.Mutex
	state     SessionState
	question  domain.LiveQuestion
	currentID string
	deadline  time.Time
	selected  *int
	results   *domain.VoteResults
	stats     domain.LiveStats
	messages  []domain.ChatMessage

	poller *Poller
}

// SessionOption customizes a SessionController.
type SessionOption func(*SessionController)

// WithQuestionWindow overrides the answer window.
func WithQuestionWindow(d time.Duration) SessionOption {
	return func(c *SessionController) { c.window = d }
}

// WithPollInterval overrides the poll cadence.
func WithPollInterval(d time.Duration) SessionOption {
	return func(c *SessionController) { c.pollInterval = d }
}

// WithClock overrides the time source; used in tests.
func WithClock(now func() time.Time) SessionOption {
	return func(c *SessionController) { c.now = now }
}

func NewSessionController(client *Client, userID string, log *logger.Logger, opts ...SessionOption) *SessionController {
	c := &SessionController{
		client:       client,
		userID:       userID,
		window:       DefaultQuestionWindow,
		pollInterval: DefaultPollInterval,
		logger:       log,
		now:          time.Now,
		state:        StateWatchingStream,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.poller = NewPoller(c.pollInterval, c.Poll, log)
	return c
}

// Start joins the stream and begins polling. Stop must be called to
// release the poll loop.
func (c *SessionController) Start(ctx context.Context) {
	if _, err := c.client.ApplyStats(ctx, domain.ActionJoin); err != nil {
		c.logger.WithError(err).Debug("Failed to report join")
	}
	c.poller.Start(ctx)
}

// Stop cancels polling and leaves the stream.
func (c *SessionController) Stop(ctx context.Context) {
	c.poller.Stop()
	if _, err := c.client.ApplyStats(ctx, domain.ActionLeave); err != nil {
		c.logger.WithError(err).Debug("Failed to report leave")
	}
}

// Poll performs one refresh cycle. It is invoked by the internal poller
// but exported so tests and render loops can drive it directly.
func (c *SessionController) Poll(ctx context.Context) error {
	q, err := c.client.LiveQuestion(ctx)
	if err != nil {
		return err
	}

	needResults, questionID := c.applyQuestion(q)

	if needResults {
		results, err := c.client.VoteResults(ctx, questionID)
		if err != nil {
			return err
		}
		c.applyResults(questionID, results)
	}

	// chat and stats are cosmetic; failures here don't disturb the
	// question state machine
	if messages, err := c.client.ChatMessages(ctx); err == nil {
		c.mu.Lock()
		c.messages = messages
		c.mu.Unlock()
	} else {
		c.logger.WithError(err).Debug("Failed to refresh chat")
	}
	if stats, err := c.client.Stats(ctx); err == nil {
		c.mu.Lock()
		c.stats = stats
		c.mu.Unlock()
	} else {
		c.logger.WithError(err).Debug("Failed to refresh stats")
	}

	return nil
}

// applyQuestion advances the state machine for a polled question and
// reports whether final results should be fetched.
func (c *SessionController) applyQuestion(q domain.LiveQuestion) (bool, string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.question = q

	if !q.IsRunning() || q.ID == nil {
		c.state = StateWatchingStream
		c.currentID = ""
		c.selected = nil
		c.results = nil
		c.deadline = time.Time{}
		return false, ""
	}

	id := *q.ID
	if id != c.currentID {
		// new question: reset local answer and timer state
		c.currentID = id
		c.selected = nil
		c.results = nil
		c.state = StateQuestionOpen
		c.deadline = c.deadlineFor(q)
	}

	if c.state == StateQuestionOpen && !c.now().Before(c.deadline) {
		return true, id
	}
	return false, ""
}

// deadlineFor fast-forwards the local countdown by the time already
// elapsed since the broadcast started.
func (c *SessionController) deadlineFor(q domain.LiveQuestion) time.Time {
	if q.StartedAt != nil {
		return q.StartedAt.Add(c.window)
	}
	return c.now().Add(c.window)
}

func (c *SessionController) applyResults(questionID string, results domain.VoteResults) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// the question may have been cleared while results were in flight
	if c.currentID != questionID {
		return
	}
	c.results = &results
	c.state = StateShowingResults
}

// ErrAnswerClosed is returned when an answer arrives after the window
// closed or a selection was already made.
var ErrAnswerClosed = errors.New("answer window closed")

// SelectAnswer submits the viewer's single answer for the open
// question. Repeat selections and post-deadline submissions are
// rejected locally without touching the server.
func (c *SessionController) SelectAnswer(ctx context.Context, option int) error {
	c.mu.Lock()
	if c.state != StateQuestionOpen || c.selected != nil || !c.now().Before(c.deadline) {
		c.mu.Unlock()
		return ErrAnswerClosed
	}
	questionID := c.currentID
	chosen := option
	c.selected = &chosen
	c.mu.Unlock()

	if err := c.client.CastVote(ctx, questionID, c.userID, option); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.IsForbidden() {
			// already voted on another device; keep the local selection
			return nil
		}
		c.mu.Lock()
		if c.currentID == questionID {
			c.selected = nil
		}
		c.mu.Unlock()
		return err
	}
	return nil
}

// Like sends a like; likes are unbounded and never deduplicated.
func (c *SessionController) Like(ctx context.Context) error {
	_, err := c.client.ApplyStats(ctx, domain.ActionLike)
	return err
}

// SendChat posts a chat message under the given display name and role.
func (c *SessionController) SendChat(ctx context.Context, userName string, role domain.UserRole, text string) (domain.ChatMessage, error) {
	return c.client.PostChat(ctx, userName, role, text)
}

// Snapshot returns a copy of the current session view.
func (c *SessionController) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	var timeLeft time.Duration
	if c.state == StateQuestionOpen {
		if remaining := c.deadline.Sub(c.now()); remaining > 0 {
			timeLeft = remaining
		}
	}

	var selected *int
	if c.selected != nil {
		v := *c.selected
		selected = &v
	}
	var results *domain.VoteResults
	if c.results != nil {
		v := *c.results
		results = &v
	}

	messages := make([]domain.ChatMessage, len(c.messages))
	copy(messages, c.messages)

	return Snapshot{
		State:          c.state,
		Question:       c.question,
		TimeLeft:       timeLeft,
		SelectedAnswer: selected,
		Results:        results,
		Stats:          c.stats,
		Messages:       messages,
	}
}
