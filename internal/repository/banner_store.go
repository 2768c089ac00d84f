package repository

import (
	"context"
	"sync"

	"liquidacenter-live/internal/domain"
)

// MemoryBannerStore keeps the stream banner in process memory with
// last-write-wins semantics.
type MemoryBannerStore struct {
	mu     sync.RWMutex
	banner domain.Banner
}

func NewMemoryBannerStore() *MemoryBannerStore {
	return &MemoryBannerStore{}
}

func (s *MemoryBannerStore) Get(_ context.Context) (domain.Banner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.banner, nil
}

func (s *MemoryBannerStore) Set(_ context.Context, b domain.Banner) (domain.Banner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.banner = b
	return s.banner, nil
}
