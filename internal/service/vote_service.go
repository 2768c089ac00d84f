package service

import (
	"context"
	"math"
	"time"

	"liquidacenter-live/internal/domain"
	"liquidacenter-live/internal/repository"
	"liquidacenter-live/pkg/logger"
)

// VoteService records votes and computes the percentage read model.
// Tallies are periodically discarded wholesale on a wall-clock
// schedule, independent of the question lifecycle.
type VoteService struct {
	store   repository.VoteStore
	logger  *logger.Logger
	janitor *janitor
}

func NewVoteService(store repository.VoteStore, log *logger.Logger, resetInterval time.Duration) *VoteService {
	s := &VoteService{
		store:  store,
		logger: log,
	}
	s.janitor = newJanitor("vote_reset", resetInterval, store.Reset, log)
	return s
}

// Start launches the periodic tally reset.
func (s *VoteService) Start(ctx context.Context) error {
	s.janitor.Start(ctx)
	return nil
}

// Stop halts the periodic tally reset.
func (s *VoteService) Stop(_ context.Context) error {
	s.janitor.Stop()
	return nil
}

// Cast records a single vote. A voter gets exactly one vote per
// question; the second attempt fails with domain.ErrAlreadyVoted and
// leaves the counts unchanged.
func (s *VoteService) Cast(ctx context.Context, req domain.VoteRequest) error {
	if req.VoteIndex == nil {
		return domain.ErrInvalidVote
	}
	if err := s.store.Cast(ctx, req.QuestionID, req.UserID, *req.VoteIndex); err != nil {
		return err
	}

	s.logger.WithFields(map[string]interface{}{
		"question_id": req.QuestionID,
		"vote_index":  *req.VoteIndex,
	}).Debug("Vote recorded")
	return nil
}

// Results returns counts, total, and percentages for a question.
// Unknown questions yield an all-zero result.
func (s *VoteService) Results(ctx context.Context, questionID string) (domain.VoteResults, error) {
	if questionID == "" {
		return domain.VoteResults{}, domain.ErrMissingQuestionID
	}

	t, err := s.store.Results(ctx, questionID)
	if err != nil {
		return domain.VoteResults{}, err
	}

	return domain.VoteResults{
		QuestionID:  questionID,
		Votes:       t.Votes,
		TotalVotes:  t.Total(),
		Percentages: ComputePercentages(t.Votes),
	}, nil
}

// ComputePercentages turns raw counts into whole percentages that sum
// to exactly 100: after rounding each share, the larger one absorbs any
// leftover rounding error. Ties adjust index 1. Zero total yields
// [0, 0].
func ComputePercentages(votes [2]int) [2]int {
	total := votes[0] + votes[1]
	if total == 0 {
		return [2]int{}
	}

	p := [2]int{
		int(math.Round(float64(votes[0]) / float64(total) * 100)),
		int(math.Round(float64(votes[1]) / float64(total) * 100)),
	}
	if p[0]+p[1] != 100 {
		if p[0] > p[1] {
			p[0] = 100 - p[1]
		} else {
			p[1] = 100 - p[0]
		}
	}
	return p
}
