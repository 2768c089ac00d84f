package repository

import (
	"context"
	"sync"

	"liquidacenter-live/internal/domain"
)

// MemoryQuestionStore holds the live question in process memory. The
// mutex makes Broadcast a compare-and-swap so a second admin cannot
// silently overwrite an in-flight question.
type MemoryQuestionStore struct {
	mu       sync.RWMutex
	question domain.LiveQuestion
}

func NewMemoryQuestionStore() *MemoryQuestionStore {
	return &MemoryQuestionStore{question: domain.IdleQuestion()}
}

func (s *MemoryQuestionStore) Get(_ context.Context) (domain.LiveQuestion, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.question, nil
}

func (s *MemoryQuestionStore) Set(_ context.Context, q domain.LiveQuestion) (domain.LiveQuestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.question = q
	return s.question, nil
}

func (s *MemoryQuestionStore) Broadcast(_ context.Context, q domain.LiveQuestion) (domain.LiveQuestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.question.IsRunning() {
		return s.question, domain.ErrQuestionActive
	}
	s.question = q
	return s.question, nil
}

func (s *MemoryQuestionStore) Clear(_ context.Context) (domain.LiveQuestion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.question = domain.IdleQuestion()
	return s.question, nil
}
