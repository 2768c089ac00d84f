package repository

import (
	"context"
	"sync"

	"liquidacenter-live/internal/domain"
)

// hardChatLimit bounds the buffer between trim sweeps.
const hardChatLimit = 500

// MemoryChatStore keeps the chat window in an in-process slice.
type MemoryChatStore struct {
	mu       sync.RWMutex
	messages []domain.ChatMessage
}

func NewMemoryChatStore() *MemoryChatStore {
	return &MemoryChatStore{messages: make([]domain.ChatMessage, 0, 64)}
}

func (s *MemoryChatStore) Append(_ context.Context, msg domain.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	if len(s.messages) > hardChatLimit {
		s.dropOldest(hardChatLimit)
	}
	return nil
}

func (s *MemoryChatStore) List(_ context.Context) ([]domain.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.ChatMessage, len(s.messages))
	copy(out, s.messages)
	return out, nil
}

func (s *MemoryChatStore) Trim(_ context.Context, max, keep int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.messages) > max {
		s.dropOldest(keep)
	}
	return nil
}

// dropOldest keeps the newest keep messages; callers hold the lock.
func (s *MemoryChatStore) dropOldest(keep int) {
	if keep < 0 {
		keep = 0
	}
	if len(s.messages) <= keep {
		return
	}
	kept := make([]domain.ChatMessage, keep)
	copy(kept, s.messages[len(s.messages)-keep:])
	s.messages = kept
}
