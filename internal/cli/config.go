package cli

import (
	"os"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Learner   string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("NAMEDRILL_SERVER", "http://localhost:8080"),
		Learner:   getEnvOrDefault("NAMEDRILL_LEARNER", "local"),
		Output:    "text",
		Verbose:   false,
	}
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
