package repository

import (
	"context"
	"sync"

	"liquidacenter-live/internal/domain"
)

type tally struct {
	votes  [2]int
	voters map[string]struct{}
}

// MemoryVoteStore keeps per-question tallies in process memory. A
// single mutex serializes the check-then-increment sequence, so under
// concurrent requests for the same (questionID, voterID) pair at most
// one vote wins.
type MemoryVoteStore struct {
	mu      sync.Mutex
	tallies map[string]*tally
}

func NewMemoryVoteStore() *MemoryVoteStore {
	return &MemoryVoteStore{tallies: make(map[string]*tally)}
}

func (s *MemoryVoteStore) Cast(_ context.Context, questionID, voterID string, option int) error {
	if questionID == "" || voterID == "" || (option != 0 && option != 1) {
		return domain.ErrInvalidVote
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tallies[questionID]
	if !ok {
		t = &tally{voters: make(map[string]struct{})}
		s.tallies[questionID] = t
	}

	if _, voted := t.voters[voterID]; voted {
		return domain.ErrAlreadyVoted
	}

	t.votes[option]++
	t.voters[voterID] = struct{}{}
	return nil
}

func (s *MemoryVoteStore) Results(_ context.Context, questionID string) (domain.VoteTally, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.tallies[questionID]
	if !ok {
		return domain.VoteTally{}, nil
	}
	return domain.VoteTally{Votes: t.votes}, nil
}

func (s *MemoryVoteStore) Reset(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tallies = make(map[string]*tally)
	return nil
}
