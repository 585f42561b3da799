package publishers

import (
	"context"
	"fmt"
	"time"

	"github.com/UjjwalCodes01/ai-social-media-platform/models"

	"github.com/google/uuid"
)

const instagramMaxCaption = 2200

type InstagramPublisher struct{}

func (i *InstagramPublisher) Publish(ctx context.Context, post *models.Post, cred *models.PlatformCredentials) models.PublishResult {
	if reason := checkCredentials(cred); reason != "" {
		return failure(models.Instagram, reason)
	}

	// Instagram has no text-only posts.
	if !post.HasImage() {
		return failure(models.Instagram, "Instagram requires at least one image")
	}

	if len([]rune(post.Content)) > instagramMaxCaption {
		return failure(models.Instagram, fmt.Sprintf("caption exceeds %d characters", instagramMaxCaption))
	}

	if !wait(ctx, 800*time.Millisecond) {
		return failure(models.Instagram, "request timed out")
	}

	return success(models.Instagram, fmt.Sprintf("ig_%s", uuid.New().String()[:8]))
}
