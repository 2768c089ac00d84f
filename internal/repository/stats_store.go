package repository

import (
	"context"
	"sync"

	"liquidacenter-live/internal/domain"
)

// MemoryStatsStore keeps the viewer/like counters in process memory.
type MemoryStatsStore struct {
	mu    sync.Mutex
	stats domain.LiveStats
}

func NewMemoryStatsStore() *MemoryStatsStore {
	return &MemoryStatsStore{}
}

func (s *MemoryStatsStore) Get(_ context.Context) (domain.LiveStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stats, nil
}

func (s *MemoryStatsStore) Apply(_ context.Context, action domain.StatsAction) (domain.LiveStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch action {
	case domain.ActionJoin:
		s.stats.Viewers++
	case domain.ActionLeave:
		// leave events never drive viewers negative
		if s.stats.Viewers > 0 {
			s.stats.Viewers--
		}
	case domain.ActionLike:
		s.stats.Likes++
	default:
		return s.stats, domain.ErrInvalidAction
	}
	return s.stats, nil
}

func (s *MemoryStatsStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stats = domain.LiveStats{}
	return nil
}
