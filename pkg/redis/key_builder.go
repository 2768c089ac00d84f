package redis

import "fmt"

// KeyBuilder provides environment-aware Redis key building functionality
type KeyBuilder struct {
	prefix string // Environment prefix (staging/prod)
}

// NewKeyBuilder creates a new key builder with environment-based prefix
func NewKeyBuilder(environment string) *KeyBuilder {
	prefix := "prod"
	if environment == "development" || environment == "staging" || environment == "test" {
		prefix = "staging"
	}

	return &KeyBuilder{
		prefix: prefix,
	}
}

// BuildKey constructs a Redis key with the environment prefix
func (kb *KeyBuilder) BuildKey(key string) string {
	return fmt.Sprintf("%s:%s", kb.prefix, key)
}

// GetPrefix returns the current environment prefix
func (kb *KeyBuilder) GetPrefix() string {
	return kb.prefix
}

// Vote key builders
func (kb *KeyBuilder) KeyVoteCounts(questionID string) string {
	return kb.BuildKey(fmt.Sprintf(KeyVoteCounts, questionID))
}

func (kb *KeyBuilder) KeyVoteVoters(questionID string) string {
	return kb.BuildKey(fmt.Sprintf(KeyVoteVoters, questionID))
}

func (kb *KeyBuilder) KeyVoteIndex() string {
	return kb.BuildKey(KeyVoteIndex)
}

// Stats key builders
func (kb *KeyBuilder) KeyStatsViewers() string {
	return kb.BuildKey(KeyStatsViewers)
}

func (kb *KeyBuilder) KeyStatsLikes() string {
	return kb.BuildKey(KeyStatsLikes)
}

// Chat key builders
func (kb *KeyBuilder) KeyChatMessages() string {
	return kb.BuildKey(KeyChatMessages)
}
