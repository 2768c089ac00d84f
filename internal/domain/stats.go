package domain

// StatsAction mutates the live counters.
type StatsAction string

const (
	ActionJoin  StatsAction = "join"
	ActionLeave StatsAction = "leave"
	ActionLike  StatsAction = "like"
)

// Valid reports whether the action is one the stats store understands.
func (a StatsAction) Valid() bool {
	switch a {
	case ActionJoin, ActionLeave, ActionLike:
		return true
	}
	return false
}

// LiveStats are the aggregate viewer and like counters for the stream.
// Viewers never go below zero; likes only grow between resets.
type LiveStats struct {
	Viewers int64 `json:"viewers"`
	Likes   int64 `json:"likes"`
}
