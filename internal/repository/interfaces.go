package repository

import (
	"context"

	"liquidacenter-live/internal/domain"
)

// QuestionStore owns the single live question record.
type QuestionStore interface {
	// Get returns the current question unconditionally.
	Get(ctx context.Context) (domain.LiveQuestion, error)
	// Set overwrites the current question wholesale. It must not be used
	// for broadcast shapes; Broadcast guards the running invariant.
	Set(ctx context.Context, q domain.LiveQuestion) (domain.LiveQuestion, error)
	// Broadcast installs a running question, failing with
	// domain.ErrQuestionActive while another question is still running.
	Broadcast(ctx context.Context, q domain.LiveQuestion) (domain.LiveQuestion, error)
	// Clear resets the question to the idle shape.
	Clear(ctx context.Context) (domain.LiveQuestion, error)
}

// VoteStore owns per-question tallies and voter dedup sets.
type VoteStore interface {
	// Cast records one vote. The check-then-increment sequence is atomic
	// per question: a duplicate (questionID, voterID) pair fails with
	// domain.ErrAlreadyVoted and leaves counts unchanged.
	Cast(ctx context.Context, questionID, voterID string, option int) error
	// Results returns the raw counters, zero-valued for unknown questions.
	Results(ctx context.Context, questionID string) (domain.VoteTally, error)
	// Reset discards all tallies for all questions.
	Reset(ctx context.Context) error
}

// StatsStore owns the viewer/like counters.
type StatsStore interface {
	Get(ctx context.Context) (domain.LiveStats, error)
	// Apply mutates the counters; leave clamps viewers at zero.
	Apply(ctx context.Context, action domain.StatsAction) (domain.LiveStats, error)
	Reset(ctx context.Context) error
}

// ChatStore owns the bounded, ordered chat window.
type ChatStore interface {
	Append(ctx context.Context, msg domain.ChatMessage) error
	// List returns messages oldest first.
	List(ctx context.Context) ([]domain.ChatMessage, error)
	// Trim drops the oldest messages down to keep entries once the
	// window exceeds max.
	Trim(ctx context.Context, max, keep int) error
}

// BannerStore owns the live-stream banner state.
type BannerStore interface {
	Get(ctx context.Context) (domain.Banner, error)
	Set(ctx context.Context, b domain.Banner) (domain.Banner, error)
}
