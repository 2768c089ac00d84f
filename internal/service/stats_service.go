package service

import (
	"context"
	"time"

	"liquidacenter-live/internal/domain"
	"liquidacenter-live/internal/repository"
	"liquidacenter-live/pkg/logger"
)

// StatsService owns the viewer/like counters. Like the vote tallies,
// the counters are reset wholesale on a fixed wall-clock schedule
// rather than on stream boundaries.
type StatsService struct {
	store   repository.StatsStore
	logger  *logger.Logger
	janitor *janitor
}

func NewStatsService(store repository.StatsStore, log *logger.Logger, resetInterval time.Duration) *StatsService {
	s := &StatsService{
		store:  store,
		logger: log,
	}
	s.janitor = newJanitor("stats_reset", resetInterval, store.Reset, log)
	return s
}

// Start launches the periodic counter reset.
func (s *StatsService) Start(ctx context.Context) error {
	s.janitor.Start(ctx)
	return nil
}

// Stop halts the periodic counter reset.
func (s *StatsService) Stop(_ context.Context) error {
	s.janitor.Stop()
	return nil
}

// Get returns the current counters.
func (s *StatsService) Get(ctx context.Context) (domain.LiveStats, error) {
	return s.store.Get(ctx)
}

// Apply mutates the counters for a join/leave/like action and returns
// the updated values. Unknown actions fail with domain.ErrInvalidAction
// and change nothing.
func (s *StatsService) Apply(ctx context.Context, action domain.StatsAction) (domain.LiveStats, error) {
	if !action.Valid() {
		return domain.LiveStats{}, domain.ErrInvalidAction
	}

	stats, err := s.store.Apply(ctx, action)
	if err != nil {
		return domain.LiveStats{}, err
	}

	s.logger.WithFields(map[string]interface{}{
		"action":  string(action),
		"viewers": stats.Viewers,
		"likes":   stats.Likes,
	}).Debug("Stats updated")
	return stats, nil
}
