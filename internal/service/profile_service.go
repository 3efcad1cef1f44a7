package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/vilaca/githubfetch/internal/api"
	"github.com/vilaca/githubfetch/internal/domain"
)

// ErrEmptySubject is returned when Fetch is called without an account name.
var ErrEmptySubject = errors.New("username not specified")

// Logger interface for logging operations (Interface Segregation Principle).
type Logger interface {
	Printf(format string, v ...interface{})
}

// ProfileService orchestrates the lookups needed to summarize one account.
// The profile is fetched first; star aggregation only runs once it succeeded.
type ProfileService struct {
	client    api.ProfileClient
	withStars bool
	logger    Logger
}

// NewProfileService creates a new profile service.
// withStars controls whether repository pages are walked to compute the star total.
func NewProfileService(client api.ProfileClient, withStars bool, logger Logger) *ProfileService {
	return &ProfileService{
		client:    client,
		withStars: withStars,
		logger:    logger,
	}
}

// Fetch retrieves the profile and, if enabled, the star total for subject.
// Any failure aborts the whole lookup; no partial summary is returned.
func (s *ProfileService) Fetch(ctx context.Context, subject string) (*domain.Summary, error) {
	if subject == "" {
		return nil, ErrEmptySubject
	}

	profile, err := s.client.FetchProfile(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}

	summary := &domain.Summary{Profile: profile}
	if !s.withStars {
		return summary, nil
	}

	total, err := s.client.FetchStarTotal(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch star total: %w", err)
	}
	summary.StarTotal = &total

	s.logger.Printf("Fetched %s: %d public repos, %d stars", subject, profile.GetPublicRepos(), total)

	return summary, nil
}
