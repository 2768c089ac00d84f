package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"liquidacenter-live/internal/domain"
	"liquidacenter-live/internal/repository"
	"liquidacenter-live/pkg/logger"
)

// ChatService appends to and reads the bounded live-chat window.
type ChatService struct {
	store        repository.ChatStore
	logger       *logger.Logger
	maxMessages  int
	keepMessages int
	janitor      *janitor
	now          func() time.Time
}

func NewChatService(store repository.ChatStore, log *logger.Logger, maxMessages, keepMessages int, trimInterval time.Duration) *ChatService {
	s := &ChatService{
		store:        store,
		logger:       log,
		maxMessages:  maxMessages,
		keepMessages: keepMessages,
		now:          time.Now,
	}
	s.janitor = newJanitor("chat_trim", trimInterval, func(ctx context.Context) error {
		return store.Trim(ctx, maxMessages, keepMessages)
	}, log)
	return s
}

// Start launches the periodic trim sweep.
func (s *ChatService) Start(ctx context.Context) error {
	s.janitor.Start(ctx)
	return nil
}

// Stop halts the periodic trim sweep.
func (s *ChatService) Stop(_ context.Context) error {
	s.janitor.Stop()
	return nil
}

// List returns the chat window oldest first.
func (s *ChatService) List(ctx context.Context) ([]domain.ChatMessage, error) {
	return s.store.List(ctx)
}

// Post appends a message. All three fields are required; text is
// truncated to the 280-rune cap before storing.
func (s *ChatService) Post(ctx context.Context, userName string, role domain.UserRole, text string) (domain.ChatMessage, error) {
	if strings.TrimSpace(userName) == "" || role == "" || strings.TrimSpace(text) == "" {
		return domain.ChatMessage{}, domain.ErrMissingChatFields
	}

	msg := domain.ChatMessage{
		ID:        uuid.NewString(),
		UserName:  userName,
		Role:      role,
		Text:      truncateRunes(text, domain.MaxChatMessageLen),
		CreatedAt: s.now().UTC(),
	}

	if err := s.store.Append(ctx, msg); err != nil {
		return domain.ChatMessage{}, err
	}

	s.logger.WithFields(map[string]interface{}{
		"message_id": msg.ID,
		"role":       string(role),
	}).Debug("Chat message posted")
	return msg, nil
}

// truncateRunes caps s at n runes so multi-byte text is never split
// mid-character.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
