package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration values for the application
type Config struct {
	Port           string
	AllowedOrigins []string
	LogLevel       string
	RedisURL       string
	Environment    string

	// Periodic maintenance schedules. Non-positive durations disable
	// the corresponding sweep.
	VoteResetInterval  time.Duration
	StatsResetInterval time.Duration
	ChatTrimInterval   time.Duration

	// Chat window bounds: trimmed to ChatKeepMessages once the window
	// exceeds ChatMaxMessages.
	ChatMaxMessages  int
	ChatKeepMessages int
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Port:               getEnv("PORT", "8080"),
		AllowedOrigins:     parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:5173,http://localhost:5174")),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		RedisURL:           getEnv("REDIS_URL", ""),
		Environment:        getEnv("ENVIRONMENT", "production"),
		VoteResetInterval:  getDurationEnv("VOTE_RESET_INTERVAL", 2*time.Hour),
		StatsResetInterval: getDurationEnv("STATS_RESET_INTERVAL", 2*time.Hour),
		ChatTrimInterval:   getDurationEnv("CHAT_TRIM_INTERVAL", 5*time.Minute),
		ChatMaxMessages:    getIntEnv("CHAT_MAX_MESSAGES", 100),
		ChatKeepMessages:   getIntEnv("CHAT_KEEP_MESSAGES", 50),
	}, nil
}

// getEnv gets an environment variable with a fallback value
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// getIntEnv gets an integer environment variable with a fallback value
func getIntEnv(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// getDurationEnv gets a duration environment variable with a fallback
// value. "0" or a negative duration disables the schedule it feeds.
func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

// parseOrigins parses comma-separated origins into a slice
func parseOrigins(origins string) []string {
	if origins == "" {
		return []string{}
	}

	parts := strings.Split(origins, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
