package repository

import (
	"context"
	"fmt"
	"strconv"

	"liquidacenter-live/internal/domain"
	"liquidacenter-live/pkg/redis"
)

// RedisVoteStore keeps tallies in Redis: a counts hash and a voter set
// per question. SADD reports whether the voter was new, which makes the
// check-then-increment sequence atomic without a process-local lock, so
// multiple instances can share one tally.
type RedisVoteStore struct {
	client *redis.Client
}

func NewRedisVoteStore(client *redis.Client) *RedisVoteStore {
	return &RedisVoteStore{client: client}
}

func (s *RedisVoteStore) Cast(ctx context.Context, questionID, voterID string, option int) error {
	if questionID == "" || voterID == "" || (option != 0 && option != 1) {
		return domain.ErrInvalidVote
	}

	votersKey := s.client.KeyBuilder.KeyVoteVoters(questionID)
	added, err := s.client.SAdd(ctx, votersKey, voterID)
	if err != nil {
		return fmt.Errorf("failed to register voter: %w", err)
	}
	if added == 0 {
		return domain.ErrAlreadyVoted
	}

	countsKey := s.client.KeyBuilder.KeyVoteCounts(questionID)
	if _, err := s.client.HIncrBy(ctx, countsKey, strconv.Itoa(option), 1); err != nil {
		// undo the dedup marker so the voter can retry
		_ = s.client.SRem(ctx, votersKey, voterID)
		return fmt.Errorf("failed to record vote: %w", err)
	}

	if _, err := s.client.SAdd(ctx, s.client.KeyBuilder.KeyVoteIndex(), questionID); err != nil {
		return fmt.Errorf("failed to index question tally: %w", err)
	}
	return nil
}

func (s *RedisVoteStore) Results(ctx context.Context, questionID string) (domain.VoteTally, error) {
	counts, err := s.client.HGetAll(ctx, s.client.KeyBuilder.KeyVoteCounts(questionID))
	if err != nil {
		return domain.VoteTally{}, fmt.Errorf("failed to load tally: %w", err)
	}

	var t domain.VoteTally
	for field, raw := range counts {
		idx, err := strconv.Atoi(field)
		if err != nil || idx < 0 || idx > 1 {
			continue
		}
		if n, err := strconv.Atoi(raw); err == nil {
			t.Votes[idx] = n
		}
	}
	return t, nil
}

func (s *RedisVoteStore) Reset(ctx context.Context) error {
	indexKey := s.client.KeyBuilder.KeyVoteIndex()
	questionIDs, err := s.client.SMembers(ctx, indexKey)
	if err != nil {
		return fmt.Errorf("failed to list question tallies: %w", err)
	}

	keys := make([]string, 0, len(questionIDs)*2+1)
	for _, id := range questionIDs {
		keys = append(keys,
			s.client.KeyBuilder.KeyVoteCounts(id),
			s.client.KeyBuilder.KeyVoteVoters(id),
		)
	}
	keys = append(keys, indexKey)

	if err := s.client.Delete(ctx, keys...); err != nil {
		return fmt.Errorf("failed to reset tallies: %w", err)
	}
	return nil
}
