package models

import "time"

type Platform string

const (
	Twitter   Platform = "twitter"
	LinkedIn  Platform = "linkedin"
	Instagram Platform = "instagram"
	Facebook  Platform = "facebook"
)

// AllPlatforms is the fixed set of supported publish targets.
var AllPlatforms = []Platform{Twitter, LinkedIn, Instagram, Facebook}

// IsValidPlatform reports whether p is one of the supported targets.
func IsValidPlatform(p Platform) bool {
	for _, known := range AllPlatforms {
		if p == known {
			return true
		}
	}
	return false
}

type PostStatus string

const (
	StatusDraft              PostStatus = "draft"
	StatusScheduled          PostStatus = "scheduled"
	StatusPublishing         PostStatus = "publishing"
	StatusPublished          PostStatus = "published"
	StatusPartiallyPublished PostStatus = "partially_published"
	StatusFailed             PostStatus = "failed"
)

// IsTerminal reports whether s is a final state that allows no further
// status transitions.
func (s PostStatus) IsTerminal() bool {
	return s == StatusPublished || s == StatusPartiallyPublished || s == StatusFailed
}

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Media struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Filename  string    `json:"filename"`
	Path      string    `json:"path"`
	URL       string    `json:"url"`
	Type      MediaType `json:"type"`
	Size      int64     `json:"size"`
	MimeType  string    `json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
}

// Post is the schedulable unit of content. A post targets one or more
// platforms; each target's outcome is tracked in Results once a publish
// run has started.
type Post struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	Content      string          `json:"content"`
	Platforms    []Platform      `json:"platforms"`
	MediaURLs    []string        `json:"media_urls,omitempty"`
	Tags         []string        `json:"tags,omitempty"`
	Status       PostStatus      `json:"status"`
	ScheduledFor *time.Time      `json:"scheduled_for,omitempty"`
	PublishedAt  *time.Time      `json:"published_at,omitempty"`
	Results      []PublishResult `json:"results,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp"}

// HasImage reports whether any attached media URL looks like an image.
// Platform adapters that require visual content (Instagram) use this.
func (p *Post) HasImage() bool {
	for _, u := range p.MediaURLs {
		for _, ext := range imageExtensions {
			if len(u) > len(ext) && u[len(u)-len(ext):] == ext {
				return true
			}
		}
	}
	return false
}

type PlatformCredentials struct {
	ID             string     `json:"id"`
	UserID         string     `json:"user_id"`
	Platform       Platform   `json:"platform"`
	AccessToken    string     `json:"-"`
	RefreshToken   string     `json:"-"`
	TokenType      string     `json:"token_type"`
	ExpiresAt      *time.Time `json:"expires_at,omitempty"`
	PlatformUserID string     `json:"platform_user_id,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// Expired reports whether the credentials are expired or will expire
// within the next five minutes. Credentials without an expiry are
// treated as valid.
func (c *PlatformCredentials) Expired() bool {
	if c.ExpiresAt == nil {
		return false
	}
	return time.Now().Add(5 * time.Minute).After(*c.ExpiresAt)
}

// PublishResult is the per-platform outcome of a single publish attempt.
// After a publish run completes there is exactly one result per
// requested platform, Attempted is always true, and either ExternalID
// or Error is set.
type PublishResult struct {
	Platform    Platform   `json:"platform"`
	Attempted   bool       `json:"attempted"`
	Success     bool       `json:"success"`
	ExternalID  string     `json:"external_id,omitempty"`
	Error       string     `json:"error,omitempty"`
	AttemptedAt *time.Time `json:"attempted_at,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type PublishResponse struct {
	PostID  string          `json:"post_id"`
	Status  PostStatus      `json:"status"`
	Results []PublishResult `json:"results"`
}

type UploadResponse struct {
	Media *Media `json:"media"`
}

// AnalyticsSummary aggregates post counts by status and per-platform
// publish outcomes for one user.
type AnalyticsSummary struct {
	PostsByStatus map[PostStatus]int  `json:"posts_by_status"`
	ByPlatform    []PlatformAnalytics `json:"by_platform"`
}

type PlatformAnalytics struct {
	Platform  Platform `json:"platform"`
	Succeeded int      `json:"succeeded"`
	Failed    int      `json:"failed"`
}
