package api

import (
	"context"

	"github.com/vilaca/githubfetch/internal/domain"
)

// DefaultPageSize is the number of repositories requested per listing page.
const DefaultPageSize = 100

// ProfileClient defines the interface for account profile lookups.
// Consumers depend on this interface, not on the GitHub implementation.
type ProfileClient interface {
	// FetchProfile returns the public profile of the given account.
	FetchProfile(ctx context.Context, subject string) (*domain.Profile, error)

	// FetchStarTotal returns the sum of star counts over all public repositories
	// of the given account.
	FetchStarTotal(ctx context.Context, subject string) (int, error)
}

// ClientConfig holds common configuration for API clients.
type ClientConfig struct {
	BaseURL   string
	UserAgent string
}

// Logger interface for logging operations.
type Logger interface {
	Printf(format string, v ...interface{})
}
