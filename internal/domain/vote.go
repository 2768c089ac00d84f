package domain

// VoteTally holds the raw per-question counters. Percentages are never
// stored; they are recomputed on every read.
type VoteTally struct {
	Votes [2]int
}

// Total returns the combined vote count for both options.
func (t VoteTally) Total() int {
	return t.Votes[0] + t.Votes[1]
}

// VoteResults is the read model returned to polling clients.
type VoteResults struct {
	QuestionID  string `json:"questionId"`
	Votes       [2]int `json:"votes"`
	TotalVotes  int    `json:"totalVotes"`
	Percentages [2]int `json:"percentages"`
}

// VoteRequest is a viewer's vote submission.
type VoteRequest struct {
	QuestionID string `json:"questionId"`
	UserID     string `json:"userId"`
	VoteIndex  *int   `json:"voteIndex"`
}
