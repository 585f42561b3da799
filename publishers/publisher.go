package publishers

import (
	"context"
	"time"

	"github.com/UjjwalCodes01/ai-social-media-platform/models"
)

// PlatformPublisher publishes a post to one external platform. A call is
// a single attempt: implementations do not retry, and a slow platform is
// cut off by the context deadline the worker sets. Credential problems
// are reported as a failed result, not an error.
type PlatformPublisher interface {
	Publish(ctx context.Context, post *models.Post, cred *models.PlatformCredentials) models.PublishResult
}

// All returns one publisher per supported platform.
func All() map[models.Platform]PlatformPublisher {
	return map[models.Platform]PlatformPublisher{
		models.Twitter:   &TwitterPublisher{},
		models.LinkedIn:  &LinkedInPublisher{},
		models.Instagram: &InstagramPublisher{},
		models.Facebook:  &FacebookPublisher{},
	}
}

func success(platform models.Platform, externalID string) models.PublishResult {
	return models.PublishResult{
		Platform:   platform,
		Success:    true,
		ExternalID: externalID,
	}
}

func failure(platform models.Platform, reason string) models.PublishResult {
	return models.PublishResult{
		Platform: platform,
		Error:    reason,
	}
}

// checkCredentials validates the stored token before attempting the
// platform call. Returns a non-empty reason when publishing can't proceed.
func checkCredentials(cred *models.PlatformCredentials) string {
	if cred == nil || cred.AccessToken == "" {
		return "missing credentials"
	}
	if cred.Expired() {
		return "credentials expired"
	}
	return ""
}

// wait simulates the platform round-trip while honoring cancellation.
// Returns false when the context expired first.
func wait(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}
