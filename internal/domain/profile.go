package domain

import "time"

// Profile represents the public metadata of a GitHub account.
// Every field is optional: the API omits fields for disabled or partial accounts,
// so absent values stay nil and the accessors fall back to zero values.
type Profile struct {
	Login       *string
	ID          *int64
	Name        *string
	Company     *string
	Blog        *string
	Location    *string
	Email       *string
	Bio         *string
	PublicRepos *int
	PublicGists *int
	Followers   *int
	Following   *int
	CreatedAt   *time.Time
}

// GetLogin returns the login, or "" if absent.
func (p *Profile) GetLogin() string {
	if p == nil {
		return ""
	}
	return stringValue(p.Login)
}

// GetID returns the numeric account ID, or 0 if absent.
func (p *Profile) GetID() int64 {
	if p == nil || p.ID == nil {
		return 0
	}
	return *p.ID
}

func (p *Profile) GetName() string {
	if p == nil {
		return ""
	}
	return stringValue(p.Name)
}

func (p *Profile) GetCompany() string {
	if p == nil {
		return ""
	}
	return stringValue(p.Company)
}

func (p *Profile) GetBlog() string {
	if p == nil {
		return ""
	}
	return stringValue(p.Blog)
}

func (p *Profile) GetLocation() string {
	if p == nil {
		return ""
	}
	return stringValue(p.Location)
}

func (p *Profile) GetEmail() string {
	if p == nil {
		return ""
	}
	return stringValue(p.Email)
}

func (p *Profile) GetBio() string {
	if p == nil {
		return ""
	}
	return stringValue(p.Bio)
}

func (p *Profile) GetPublicRepos() int {
	if p == nil {
		return 0
	}
	return intValue(p.PublicRepos)
}

func (p *Profile) GetPublicGists() int {
	if p == nil {
		return 0
	}
	return intValue(p.PublicGists)
}

func (p *Profile) GetFollowers() int {
	if p == nil {
		return 0
	}
	return intValue(p.Followers)
}

func (p *Profile) GetFollowing() int {
	if p == nil {
		return 0
	}
	return intValue(p.Following)
}

// GetCreatedAt returns the account creation time formatted as RFC 3339 in UTC,
// which is the format the API itself uses. Returns "" if absent.
func (p *Profile) GetCreatedAt() string {
	if p == nil || p.CreatedAt == nil || p.CreatedAt.IsZero() {
		return ""
	}
	return p.CreatedAt.UTC().Format(time.RFC3339)
}

// RepositorySummary is the part of a repository listing entry that is aggregated.
type RepositorySummary struct {
	Stars *int
}

// GetStars returns the star count, or 0 if absent.
func (r RepositorySummary) GetStars() int { return intValue(r.Stars) }

// Summary is everything printed for one subject.
// StarTotal is nil when star aggregation was not performed.
type Summary struct {
	Profile   *Profile
	StarTotal *int
}

func stringValue(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func intValue(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}
