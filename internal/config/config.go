package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds application configuration.
// Only holds configuration data; defaults reproduce the plain CLI behaviour.
type Config struct {
	// GitHubURL is the REST API base URL.
	GitHubURL string

	// HTTPTimeout bounds each request. Zero means no timeout.
	HTTPTimeout time.Duration

	// SkipStars disables the repository walk and the "Total Stars" line.
	SkipStars bool

	// Banner prefixes the profile block with the ASCII-art logo.
	Banner bool

	// NoColor forces plain output even on a terminal.
	NoColor bool

	// Debug enables request logging to stderr.
	Debug bool
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	timeout := 0
	if timeoutStr := os.Getenv("GITHUBFETCH_TIMEOUT_SECONDS"); timeoutStr != "" {
		if t, err := strconv.Atoi(timeoutStr); err == nil && t >= 0 {
			timeout = t
		}
	}

	return &Config{
		GitHubURL:   getEnvOrDefault("GITHUB_URL", "https://api.github.com"),
		HTTPTimeout: time.Duration(timeout) * time.Second,
		SkipStars:   isSet("GITHUBFETCH_NO_STARS"),
		Banner:      isSet("GITHUBFETCH_BANNER"),
		NoColor:     isSet("NO_COLOR"),
		Debug:       isSet("GITHUBFETCH_DEBUG"),
	}, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// isSet follows the NO_COLOR convention: any non-empty value enables the flag.
func isSet(key string) bool {
	return os.Getenv(key) != ""
}
