package services

import (
	"time"

	"github.com/UjjwalCodes01/ai-social-media-platform/models"

	"github.com/google/uuid"
)

const (
	upcomingWindow = 7 * 24 * time.Hour
	upcomingLimit  = 10
)

// SchedulingService owns the lifecycle of posts up to the moment they
// are claimed for publishing: creation, edits, deletion, and the manual
// publish-now path. All status transitions it performs are conditional
// writes, so it never clobbers a concurrent claim by the scanner.
type SchedulingService struct {
	store     PostStore
	publisher *PublisherService
}

func NewSchedulingService(store PostStore, publisher *PublisherService) *SchedulingService {
	return &SchedulingService{store: store, publisher: publisher}
}

// PostPatch carries the optional fields of an update request. Nil
// slices and pointers mean "leave unchanged".
type PostPatch struct {
	Content     *string
	Platforms   []models.Platform
	MediaURLs   []string
	Tags        []string
	ScheduledAt *time.Time
}

// CreateScheduled validates and persists a new post. With a scheduled
// time the post is created in "scheduled" status; without one it is a
// draft. The scheduled time must be strictly in the future.
func (s *SchedulingService) CreateScheduled(ownerID, content string, platforms []models.Platform,
	mediaURLs, tags []string, scheduledAt *time.Time) (*models.Post, error) {

	if err := validateContent(content); err != nil {
		return nil, err
	}
	if err := validatePlatforms(platforms); err != nil {
		return nil, err
	}

	status := models.StatusDraft
	if scheduledAt != nil {
		if !scheduledAt.After(time.Now()) {
			return nil, models.NewValidationError("scheduled time", "must be in the future")
		}
		status = models.StatusScheduled
	}

	now := time.Now()
	post := &models.Post{
		ID:           uuid.New().String(),
		UserID:       ownerID,
		Content:      content,
		Platforms:    platforms,
		MediaURLs:    mediaURLs,
		Tags:         tags,
		Status:       status,
		ScheduledFor: scheduledAt,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.store.CreatePost(post); err != nil {
		return nil, models.NewStoreUnavailableError(err)
	}

	return post, nil
}

// UpdateScheduled applies a patch to a draft or scheduled post. Once a
// post has been claimed for publishing (or has finished), edits are
// rejected with InvalidStateError — even if the claim happened between
// our read and the write, because the write is conditional on status.
func (s *SchedulingService) UpdateScheduled(id, ownerID string, patch PostPatch) (*models.Post, error) {
	post, err := s.ownedPost(id, ownerID)
	if err != nil {
		return nil, err
	}

	if post.Status != models.StatusDraft && post.Status != models.StatusScheduled {
		return nil, models.NewInvalidStateError("update", post.Status)
	}

	if patch.Content != nil {
		if err := validateContent(*patch.Content); err != nil {
			return nil, err
		}
		post.Content = *patch.Content
	}
	if patch.Platforms != nil {
		if err := validatePlatforms(patch.Platforms); err != nil {
			return nil, err
		}
		post.Platforms = patch.Platforms
	}
	if patch.MediaURLs != nil {
		post.MediaURLs = patch.MediaURLs
	}
	if patch.Tags != nil {
		post.Tags = patch.Tags
	}
	if patch.ScheduledAt != nil {
		if !patch.ScheduledAt.After(time.Now()) {
			return nil, models.NewValidationError("scheduled time", "must be in the future")
		}
		post.ScheduledFor = patch.ScheduledAt
		post.Status = models.StatusScheduled
	}

	post.UpdatedAt = time.Now()

	ok, err := s.store.UpdateEditablePost(post)
	if err != nil {
		return nil, models.NewStoreUnavailableError(err)
	}
	if !ok {
		// Lost a race with the scanner or a publish-now claim.
		return nil, models.NewInvalidStateError("update", s.currentStatus(id, post.Status))
	}

	return post, nil
}

// DeleteScheduled removes a draft or scheduled post. A post whose
// publication has started can no longer be deleted.
func (s *SchedulingService) DeleteScheduled(id, ownerID string) error {
	post, err := s.ownedPost(id, ownerID)
	if err != nil {
		return err
	}

	ok, err := s.store.DeletePostIf(id, models.StatusDraft, models.StatusScheduled)
	if err != nil {
		return models.NewStoreUnavailableError(err)
	}
	if !ok {
		return models.NewInvalidStateError("delete", s.currentStatus(id, post.Status))
	}

	return nil
}

// PublishNow claims a scheduled post ahead of its time and runs the
// publication worker synchronously. The claim is the same
// compare-and-swap the scanner uses, so racing a scanner tick is safe:
// exactly one of them wins.
func (s *SchedulingService) PublishNow(id, ownerID string) (*models.Post, error) {
	post, err := s.ownedPost(id, ownerID)
	if err != nil {
		return nil, err
	}

	claimed, err := s.store.ClaimPost(id)
	if err != nil {
		return nil, models.NewStoreUnavailableError(err)
	}
	if !claimed {
		return nil, models.NewInvalidStateError("publish", s.currentStatus(id, post.Status))
	}

	post.Status = models.StatusPublishing
	s.publisher.PublishPost(post)

	return post, nil
}

// PublishDirect creates a post and publishes it immediately, bypassing
// scheduling entirely. The post is born in "publishing" status, so it
// is never visible to the scanner.
func (s *SchedulingService) PublishDirect(ownerID, content string, platforms []models.Platform,
	mediaURLs, tags []string) (*models.Post, error) {

	if err := validateContent(content); err != nil {
		return nil, err
	}
	if err := validatePlatforms(platforms); err != nil {
		return nil, err
	}

	now := time.Now()
	post := &models.Post{
		ID:        uuid.New().String(),
		UserID:    ownerID,
		Content:   content,
		Platforms: platforms,
		MediaURLs: mediaURLs,
		Tags:      tags,
		Status:    models.StatusPublishing,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.CreatePost(post); err != nil {
		return nil, models.NewStoreUnavailableError(err)
	}

	s.publisher.PublishPost(post)

	return post, nil
}

// GetPost returns the owner's post with its publish results. Posts
// belonging to other users are reported as not found.
func (s *SchedulingService) GetPost(id, ownerID string) (*models.Post, error) {
	return s.ownedPost(id, ownerID)
}

func (s *SchedulingService) ListPosts(ownerID string) ([]*models.Post, error) {
	posts, err := s.store.GetUserPosts(ownerID)
	if err != nil {
		return nil, models.NewStoreUnavailableError(err)
	}
	return posts, nil
}

// Upcoming returns the owner's next scheduled posts within the coming
// seven days, soonest first, capped at ten.
func (s *SchedulingService) Upcoming(ownerID string) ([]*models.Post, error) {
	posts, err := s.store.GetUpcomingPosts(ownerID, time.Now().Add(upcomingWindow), upcomingLimit)
	if err != nil {
		return nil, models.NewStoreUnavailableError(err)
	}
	return posts, nil
}

func (s *SchedulingService) ownedPost(id, ownerID string) (*models.Post, error) {
	post, err := s.store.GetPost(id)
	if err != nil {
		return nil, models.NewStoreUnavailableError(err)
	}
	if post == nil || post.UserID != ownerID {
		return nil, models.NewNotFoundError("post", id)
	}
	return post, nil
}

// currentStatus re-reads the post's status for an accurate error after
// a lost conditional write. Falls back to the last seen status.
func (s *SchedulingService) currentStatus(id string, fallback models.PostStatus) models.PostStatus {
	post, err := s.store.GetPost(id)
	if err != nil || post == nil {
		return fallback
	}
	return post.Status
}

func validateContent(content string) error {
	if content == "" {
		return models.NewValidationError("content", "must not be empty")
	}
	return nil
}

func validatePlatforms(platforms []models.Platform) error {
	if len(platforms) == 0 {
		return models.NewValidationError("platforms", "at least one platform is required")
	}

	seen := map[models.Platform]bool{}
	for _, p := range platforms {
		if !models.IsValidPlatform(p) {
			return models.NewValidationError("platforms", "unknown platform "+string(p))
		}
		if seen[p] {
			return models.NewValidationError("platforms", "duplicate platform "+string(p))
		}
		seen[p] = true
	}

	return nil
}
