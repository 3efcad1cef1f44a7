package service

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vilaca/githubfetch/internal/api"
	"github.com/vilaca/githubfetch/internal/domain"
)

// mockClient is a test double for api.ProfileClient.
// Follows FIRST principles - Independent tests.
type mockClient struct {
	fetchProfileFunc   func(ctx context.Context, subject string) (*domain.Profile, error)
	fetchStarTotalFunc func(ctx context.Context, subject string) (int, error)
	calls              []string
}

func (m *mockClient) FetchProfile(ctx context.Context, subject string) (*domain.Profile, error) {
	m.calls = append(m.calls, "FetchProfile:"+subject)
	if m.fetchProfileFunc != nil {
		return m.fetchProfileFunc(ctx, subject)
	}
	return &domain.Profile{}, nil
}

func (m *mockClient) FetchStarTotal(ctx context.Context, subject string) (int, error) {
	m.calls = append(m.calls, "FetchStarTotal:"+subject)
	if m.fetchStarTotalFunc != nil {
		return m.fetchStarTotalFunc(ctx, subject)
	}
	return 0, nil
}

func discardLogger() Logger {
	return log.New(io.Discard, "", 0)
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

// TestFetch_WithStars tests that profile and star total are combined.
// Follows AAA pattern.
func TestFetch_WithStars(t *testing.T) {
	// Arrange
	client := &mockClient{
		fetchProfileFunc: func(ctx context.Context, subject string) (*domain.Profile, error) {
			return &domain.Profile{Login: strPtr(subject), PublicRepos: intPtr(2)}, nil
		},
		fetchStarTotalFunc: func(ctx context.Context, subject string) (int, error) {
			return 250, nil
		},
	}
	service := NewProfileService(client, true, discardLogger())

	// Act
	summary, err := service.Fetch(context.Background(), "octocat")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	expected := &domain.Summary{
		Profile:   &domain.Profile{Login: strPtr("octocat"), PublicRepos: intPtr(2)},
		StarTotal: intPtr(250),
	}
	if diff := cmp.Diff(expected, summary); diff != "" {
		t.Errorf("summary mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]string{"FetchProfile:octocat", "FetchStarTotal:octocat"}, client.calls); diff != "" {
		t.Errorf("call order mismatch (-want +got):\n%s", diff)
	}
}

// TestFetch_WithoutStars tests that star aggregation is skipped when disabled.
func TestFetch_WithoutStars(t *testing.T) {
	// Arrange
	client := &mockClient{}
	service := NewProfileService(client, false, discardLogger())

	// Act
	summary, err := service.Fetch(context.Background(), "octocat")

	// Assert
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if summary.StarTotal != nil {
		t.Errorf("expected nil star total, got %d", *summary.StarTotal)
	}

	if len(client.calls) != 1 {
		t.Errorf("expected only the profile request, got %v", client.calls)
	}
}

// TestFetch_EmptySubject tests that no request is issued without a subject.
func TestFetch_EmptySubject(t *testing.T) {
	// Arrange
	client := &mockClient{}
	service := NewProfileService(client, true, discardLogger())

	// Act
	summary, err := service.Fetch(context.Background(), "")

	// Assert
	if !errors.Is(err, ErrEmptySubject) {
		t.Errorf("expected ErrEmptySubject, got %v", err)
	}

	if summary != nil {
		t.Errorf("expected nil summary, got %v", summary)
	}

	if len(client.calls) != 0 {
		t.Errorf("expected no client calls, got %v", client.calls)
	}
}

// TestFetch_ProfileError tests that a profile failure aborts before star aggregation.
func TestFetch_ProfileError(t *testing.T) {
	// Arrange
	netErr := &api.NetworkError{Op: "get user octocat", Err: errors.New("connection refused")}
	client := &mockClient{
		fetchProfileFunc: func(ctx context.Context, subject string) (*domain.Profile, error) {
			return nil, netErr
		},
	}
	service := NewProfileService(client, true, discardLogger())

	// Act
	summary, err := service.Fetch(context.Background(), "octocat")

	// Assert
	if summary != nil {
		t.Errorf("expected nil summary, got %v", summary)
	}

	var target *api.NetworkError
	if !errors.As(err, &target) {
		t.Fatalf("expected wrapped NetworkError, got %v", err)
	}

	if len(client.calls) != 1 {
		t.Errorf("expected star aggregation to be skipped, got calls %v", client.calls)
	}
}

// TestFetch_StarTotalError tests that no partial summary is returned when aggregation fails.
func TestFetch_StarTotalError(t *testing.T) {
	// Arrange
	decErr := &api.DecodeError{Op: "list repositories of octocat (page 2)", Err: errors.New("unexpected EOF")}
	client := &mockClient{
		fetchStarTotalFunc: func(ctx context.Context, subject string) (int, error) {
			return 0, decErr
		},
	}
	service := NewProfileService(client, true, discardLogger())

	// Act
	summary, err := service.Fetch(context.Background(), "octocat")

	// Assert
	if summary != nil {
		t.Errorf("expected nil summary, got %v", summary)
	}

	if !errors.Is(err, decErr) {
		t.Errorf("expected wrapped DecodeError, got %v", err)
	}
}
