package domain

import "errors"

var (
	// ErrAlreadyVoted is returned when a voter tries to vote twice on one question.
	ErrAlreadyVoted = errors.New("user has already voted for this question")
	// ErrInvalidVote indicates a vote submission with missing or invalid fields.
	ErrInvalidVote = errors.New("missing or invalid vote fields")
	// ErrInvalidAction indicates an unknown stats action.
	ErrInvalidAction = errors.New("invalid action")
	// ErrQuestionActive is returned when a broadcast would clobber a running question.
	ErrQuestionActive = errors.New("a question is already running")
	// ErrMissingQuestionID indicates a results request without a question id.
	ErrMissingQuestionID = errors.New("question ID is required")
	// ErrMissingChatFields indicates a chat post with an empty name, role, or text.
	ErrMissingChatFields = errors.New("missing fields in message body")
)
