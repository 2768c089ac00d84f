package domain

import "time"

// QuestionStatus is the lifecycle state of the live question.
type QuestionStatus string

const (
	StatusIdle    QuestionStatus = "idle"
	StatusRunning QuestionStatus = "running"
	StatusEnded   QuestionStatus = "ended"
)

// Difficulty labels a question; the label is informational only.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// LiveQuestion is the single trivia question broadcast to all viewers.
// The Active flag is redundant with Status != idle but kept on the wire
// for backward compatibility with existing clients.
type LiveQuestion struct {
	Active             bool           `json:"active"`
	ID                 *string        `json:"id"`
	Question           string         `json:"question"`
	OptionA            string         `json:"optionA"`
	OptionB            string         `json:"optionB"`
	CorrectAnswerIndex *int           `json:"correctAnswerIndex"`
	Difficulty         *Difficulty    `json:"difficulty"`
	Status             QuestionStatus `json:"status"`
	StartedAt          *time.Time     `json:"startedAt"`
}

// IdleQuestion returns the empty shape the question resets to when cleared.
func IdleQuestion() LiveQuestion {
	return LiveQuestion{Status: StatusIdle}
}

// IsRunning reports whether the question is currently open for answers.
func (q LiveQuestion) IsRunning() bool {
	return q.Active && q.Status == StatusRunning
}
