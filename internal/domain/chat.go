package domain

import "time"

// UserRole identifies who is speaking in chat.
type UserRole string

const (
	RoleUser     UserRole = "user"
	RoleMerchant UserRole = "merchant"
	RoleAdmin    UserRole = "admin"
)

// MaxChatMessageLen caps chat message text, in runes.
const MaxChatMessageLen = 280

// ChatMessage is a single entry in the append-only live chat window.
type ChatMessage struct {
	ID        string    `json:"id"`
	UserName  string    `json:"userName"`
	Role      UserRole  `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}
