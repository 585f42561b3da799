package services

import (
	"time"

	"github.com/UjjwalCodes01/ai-social-media-platform/models"
)

// PostStore is the persistence contract the scheduling engine, scanner
// and publication worker operate against. The conditional writes
// (UpdateScheduledPost, DeletePostIf, ClaimPost, ClaimDuePosts,
// FinalizePost) are the backbone of the status state machine: every
// status transition is keyed on the expected prior status so concurrent
// writers race cleanly instead of clobbering each other.
//
// Lookups return (nil, nil) for missing records; errors mean the store
// itself failed.
type PostStore interface {
	CreatePost(post *models.Post) error
	GetPost(id string) (*models.Post, error)
	GetUserPosts(userID string) ([]*models.Post, error)
	GetUpcomingPosts(userID string, until time.Time, limit int) ([]*models.Post, error)

	// UpdateEditablePost persists edits only while the post is still
	// draft or scheduled. False means the status changed underneath
	// the caller.
	UpdateEditablePost(post *models.Post) (bool, error)

	// DeletePostIf removes the post only in one of the allowed statuses.
	DeletePostIf(id string, allowed ...models.PostStatus) (bool, error)

	// ClaimPost is the scheduled -> publishing compare-and-swap.
	ClaimPost(id string) (bool, error)

	// ClaimDuePosts claims every scheduled post due at now, oldest
	// first, in one atomic operation.
	ClaimDuePosts(now time.Time) ([]*models.Post, error)

	// FinalizePost writes the terminal status, keyed on "publishing".
	FinalizePost(id string, status models.PostStatus, publishedAt time.Time) (bool, error)

	SavePublishResult(postID string, result models.PublishResult) error
	GetPublishResults(postID string) ([]models.PublishResult, error)
}

// CredentialsStore provides platform tokens to the publication worker.
type CredentialsStore interface {
	GetCredentials(userID string, platform models.Platform) (*models.PlatformCredentials, error)
}

// UserStore backs registration and login.
type UserStore interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
}
