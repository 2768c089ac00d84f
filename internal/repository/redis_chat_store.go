package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"liquidacenter-live/internal/domain"
	"liquidacenter-live/pkg/redis"
)

// RedisChatStore keeps the chat window in a Redis list of JSON entries.
type RedisChatStore struct {
	client *redis.Client
}

func NewRedisChatStore(client *redis.Client) *RedisChatStore {
	return &RedisChatStore{client: client}
}

func (s *RedisChatStore) Append(ctx context.Context, msg domain.ChatMessage) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	key := s.client.KeyBuilder.KeyChatMessages()
	if err := s.client.RPush(ctx, key, raw); err != nil {
		return fmt.Errorf("failed to append message: %w", err)
	}
	// hard bound between trim sweeps
	if err := s.client.LTrim(ctx, key, -int64(hardChatLimit), -1); err != nil {
		return fmt.Errorf("failed to bound chat window: %w", err)
	}
	return nil
}

func (s *RedisChatStore) List(ctx context.Context) ([]domain.ChatMessage, error) {
	raws, err := s.client.LRange(ctx, s.client.KeyBuilder.KeyChatMessages(), 0, -1)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	messages := make([]domain.ChatMessage, 0, len(raws))
	for _, raw := range raws {
		var msg domain.ChatMessage
		if err := json.Unmarshal([]byte(raw), &msg); err != nil {
			// corrupt entries are dropped rather than failing the read
			continue
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func (s *RedisChatStore) Trim(ctx context.Context, max, keep int) error {
	key := s.client.KeyBuilder.KeyChatMessages()
	length, err := s.client.LLen(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to measure chat window: %w", err)
	}
	if length <= int64(max) {
		return nil
	}
	if err := s.client.LTrim(ctx, key, -int64(keep), -1); err != nil {
		return fmt.Errorf("failed to trim chat window: %w", err)
	}
	return nil
}
