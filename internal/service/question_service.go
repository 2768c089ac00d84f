package service

import (
	"context"
	"time"

	"liquidacenter-live/internal/domain"
	"liquidacenter-live/internal/repository"
	"liquidacenter-live/pkg/logger"
)

// QuestionService owns the live question lifecycle: broadcast, clear,
// and the reads every polling viewer performs.
type QuestionService struct {
	store  repository.QuestionStore
	logger *logger.Logger
	now    func() time.Time
}

func NewQuestionService(store repository.QuestionStore, log *logger.Logger) *QuestionService {
	return &QuestionService{
		store:  store,
		logger: log,
		now:    time.Now,
	}
}

// Get returns the current question unconditionally.
func (s *QuestionService) Get(ctx context.Context) (domain.LiveQuestion, error) {
	return s.store.Get(ctx)
}

// Set installs a caller-supplied question state. Running shapes go
// through the store's compare-and-swap so a broadcast cannot clobber a
// question that is still open; every other shape is a plain overwrite,
// which keeps the admin "clear" flow a simple POST of the idle shape.
func (s *QuestionService) Set(ctx context.Context, q domain.LiveQuestion) (domain.LiveQuestion, error) {
	if q.Status == "" {
		q.Status = domain.StatusIdle
	}

	if q.IsRunning() {
		if q.StartedAt == nil {
			started := s.now().UTC()
			q.StartedAt = &started
		}
		stored, err := s.store.Broadcast(ctx, q)
		if err != nil {
			return stored, err
		}
		s.logger.WithFields(map[string]interface{}{
			"question_id": stringOrEmpty(q.ID),
			"started_at":  q.StartedAt,
		}).Info("Question broadcast")
		return stored, nil
	}

	stored, err := s.store.Set(ctx, q)
	if err != nil {
		return stored, err
	}
	if q.Status == domain.StatusIdle && q.ID == nil {
		s.logger.Info("Question cleared")
	}
	return stored, nil
}

// Clear resets the question to the idle shape.
func (s *QuestionService) Clear(ctx context.Context) (domain.LiveQuestion, error) {
	cleared, err := s.store.Clear(ctx)
	if err != nil {
		return cleared, err
	}
	s.logger.Info("Question cleared")
	return cleared, nil
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
