package repository

import (
	"context"
	"fmt"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"liquidacenter-live/internal/domain"
	"liquidacenter-live/pkg/redis"
)

// decrClampScript decrements a counter but never below zero.
const decrClampScript = `
local v = redis.call('DECR', KEYS[1])
if v < 0 then
  redis.call('SET', KEYS[1], 0)
  v = 0
end
return v
`

// RedisStatsStore keeps the viewer/like counters in Redis so several
// instances report the same numbers.
type RedisStatsStore struct {
	client *redis.Client
}

func NewRedisStatsStore(client *redis.Client) *RedisStatsStore {
	return &RedisStatsStore{client: client}
}

func (s *RedisStatsStore) Get(ctx context.Context) (domain.LiveStats, error) {
	viewers, err := s.getCounter(ctx, s.client.KeyBuilder.KeyStatsViewers())
	if err != nil {
		return domain.LiveStats{}, err
	}
	likes, err := s.getCounter(ctx, s.client.KeyBuilder.KeyStatsLikes())
	if err != nil {
		return domain.LiveStats{}, err
	}
	return domain.LiveStats{Viewers: viewers, Likes: likes}, nil
}

func (s *RedisStatsStore) Apply(ctx context.Context, action domain.StatsAction) (domain.LiveStats, error) {
	var err error
	switch action {
	case domain.ActionJoin:
		_, err = s.client.Incr(ctx, s.client.KeyBuilder.KeyStatsViewers())
	case domain.ActionLeave:
		_, err = s.client.Eval(ctx, decrClampScript, []string{s.client.KeyBuilder.KeyStatsViewers()})
	case domain.ActionLike:
		_, err = s.client.Incr(ctx, s.client.KeyBuilder.KeyStatsLikes())
	default:
		return domain.LiveStats{}, domain.ErrInvalidAction
	}
	if err != nil {
		return domain.LiveStats{}, fmt.Errorf("failed to apply %s: %w", action, err)
	}
	return s.Get(ctx)
}

func (s *RedisStatsStore) Reset(ctx context.Context) error {
	err := s.client.Delete(ctx,
		s.client.KeyBuilder.KeyStatsViewers(),
		s.client.KeyBuilder.KeyStatsLikes(),
	)
	if err != nil {
		return fmt.Errorf("failed to reset stats: %w", err)
	}
	return nil
}

func (s *RedisStatsStore) getCounter(ctx context.Context, key string) (int64, error) {
	raw, err := s.client.Get(ctx, key)
	if err == goredis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read counter: %w", err)
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt counter %q: %w", raw, err)
	}
	return n, nil
}
