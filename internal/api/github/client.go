package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v33/github"

	"github.com/vilaca/githubfetch/internal/api"
	"github.com/vilaca/githubfetch/internal/domain"
)

// DefaultBaseURL is the public GitHub REST API endpoint.
const DefaultBaseURL = "https://api.github.com"

// Client implements api.ProfileClient for the GitHub REST API.
// Only handles GitHub API communication; rendering and flow control live elsewhere.
type Client struct {
	gh     *gh.Client
	logger api.Logger
}

// NewClient creates a new GitHub client.
// Uses dependency injection for the http.Client so tests can swap the transport.
func NewClient(config api.ClientConfig, httpClient *http.Client, logger api.Logger) (*Client, error) {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	// go-github resolves relative paths and rejects a base URL without a trailing slash.
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", config.BaseURL, err)
	}

	client := gh.NewClient(httpClient)
	client.BaseURL = parsed
	if config.UserAgent != "" {
		client.UserAgent = config.UserAgent
	}

	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &Client{
		gh:     client,
		logger: logger,
	}, nil
}

// FetchProfile retrieves the public profile of an account with a single GET request.
func (c *Client) FetchProfile(ctx context.Context, subject string) (*domain.Profile, error) {
	op := fmt.Sprintf("get user %s", subject)
	path := fmt.Sprintf("users/%s", escapeSubject(subject))
	c.logger.Printf("GET %s%s", c.gh.BaseURL, path)

	var user gh.User
	if err := c.get(ctx, op, path, &user); err != nil {
		return nil, err
	}

	return convertProfile(&user), nil
}

// FetchStarTotal sums the star counts of every public repository of an account.
// Pages are requested one after another starting at page 1 and the loop stops
// at the first empty page.
func (c *Client) FetchStarTotal(ctx context.Context, subject string) (int, error) {
	total := 0
	for page := 1; ; page++ {
		repos, err := c.fetchRepositoryPage(ctx, subject, page)
		if err != nil {
			return 0, err
		}
		if len(repos) == 0 {
			c.logger.Printf("Repository listing for %s ended at page %d (total stars: %d)", subject, page, total)
			return total, nil
		}

		for _, repo := range repos {
			total += repo.GetStars()
		}
	}
}

// fetchRepositoryPage retrieves one page of an account's repositories.
func (c *Client) fetchRepositoryPage(ctx context.Context, subject string, page int) ([]domain.RepositorySummary, error) {
	op := fmt.Sprintf("list repositories of %s (page %d)", subject, page)
	path := fmt.Sprintf("users/%s/repos?per_page=%d&page=%d", escapeSubject(subject), api.DefaultPageSize, page)
	c.logger.Printf("GET %s%s", c.gh.BaseURL, path)

	var ghRepos []*gh.Repository
	if err := c.get(ctx, op, path, &ghRepos); err != nil {
		return nil, err
	}

	return convertRepositories(ghRepos), nil
}

// get performs a GET against path and decodes the JSON body into v.
// go-github treats an empty body as success, so the raw body is captured first
// and an empty one is reported as a decode failure.
func (c *Client) get(ctx context.Context, op, path string, v interface{}) error {
	req, err := c.gh.NewRequest(http.MethodGet, path, nil)
	if err != nil {
		return fmt.Errorf("%s: failed to create request: %w", op, err)
	}

	var raw json.RawMessage
	resp, err := c.gh.Do(ctx, req, &raw)
	if err != nil {
		return classifyError(op, resp, err)
	}

	if len(raw) == 0 {
		return &api.DecodeError{Op: op, Err: errors.New("empty response body")}
	}

	if err := json.Unmarshal(raw, v); err != nil {
		return &api.DecodeError{Op: op, Err: err}
	}

	return nil
}

// escapeSubject path-escapes a subject so it always stays a single segment
// under users/. PathEscape leaves "." and ".." alone, which would otherwise be
// resolved as dot segments against the base URL.
func escapeSubject(subject string) string {
	escaped := url.PathEscape(subject)
	if subject == "." || subject == ".." {
		escaped = strings.ReplaceAll(escaped, ".", "%2E")
	}
	return escaped
}

// classifyError maps go-github failures onto the api error kinds.
// A response that never arrived is a transport failure; a response that arrived
// with a success status but could not be decoded is a decode failure.
func classifyError(op string, resp *gh.Response, err error) error {
	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) {
		return &api.StatusError{Op: op, StatusCode: statusCode(errResp.Response), Message: errResp.Message}
	}

	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) {
		return &api.StatusError{Op: op, StatusCode: statusCode(rateErr.Response), Message: rateErr.Message}
	}

	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return &api.StatusError{Op: op, StatusCode: statusCode(abuseErr.Response), Message: abuseErr.Message}
	}

	// 202 Accepted: GitHub scheduled a job and sent no data yet.
	var acceptedErr *gh.AcceptedError
	if errors.As(err, &acceptedErr) {
		code := http.StatusAccepted
		if resp != nil && resp.Response != nil {
			code = resp.StatusCode
		}
		return &api.StatusError{Op: op, StatusCode: code, Message: acceptedErr.Error()}
	}

	if resp == nil || resp.Response == nil {
		return &api.NetworkError{Op: op, Err: err}
	}

	return &api.DecodeError{Op: op, Err: err}
}

func statusCode(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

// convertProfile converts a GitHub user to the domain model.
// Absent fields stay nil.
func convertProfile(user *gh.User) *domain.Profile {
	if user == nil {
		return &domain.Profile{}
	}

	profile := &domain.Profile{
		Login:       user.Login,
		ID:          user.ID,
		Name:        user.Name,
		Company:     user.Company,
		Blog:        user.Blog,
		Location:    user.Location,
		Email:       user.Email,
		Bio:         user.Bio,
		PublicRepos: user.PublicRepos,
		PublicGists: user.PublicGists,
		Followers:   user.Followers,
		Following:   user.Following,
	}

	if user.CreatedAt != nil {
		createdAt := user.CreatedAt.Time
		profile.CreatedAt = &createdAt
	}

	return profile
}

// convertRepositories converts GitHub repositories to domain summaries.
func convertRepositories(ghRepos []*gh.Repository) []domain.RepositorySummary {
	repos := make([]domain.RepositorySummary, 0, len(ghRepos))
	for _, repo := range ghRepos {
		var summary domain.RepositorySummary
		if repo != nil {
			summary.Stars = repo.StargazersCount
		}
		repos = append(repos, summary)
	}
	return repos
}
