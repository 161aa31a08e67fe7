package redis

import "time"

// Config holds Redis connection and behavior settings
type Config struct {
	// URL is the Redis connection URL (e.g., redis://localhost:6379)
	URL string

	// Pool settings
	PoolSize     int
	MinIdleConns int

	// SessionTTL bounds how long an unfinished game survives before a
	// resume is no longer offered. Zero means no expiry.
	SessionTTL time.Duration

	// MasteryTTL is normally zero: mastery history is meant to outlive
	// sessions, with staleness handled by the 30-day window check.
	MasteryTTL time.Duration
}

// DefaultConfig returns sensible defaults for Redis configuration
func DefaultConfig() Config {
	return Config{
		URL:          "redis://localhost:6379",
		PoolSize:     10,
		MinIdleConns: 2,
		SessionTTL:   30 * 24 * time.Hour,
		MasteryTTL:   0,
	}
}
