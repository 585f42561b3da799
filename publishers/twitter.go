package publishers

import (
	"context"
	"fmt"
	"time"

	"github.com/UjjwalCodes01/ai-social-media-platform/models"

	"github.com/google/uuid"
)

const twitterMaxChars = 280

type TwitterPublisher struct{}

func (t *TwitterPublisher) Publish(ctx context.Context, post *models.Post, cred *models.PlatformCredentials) models.PublishResult {
	if reason := checkCredentials(cred); reason != "" {
		return failure(models.Twitter, reason)
	}

	if len([]rune(post.Content)) > twitterMaxChars {
		return failure(models.Twitter, fmt.Sprintf("content exceeds %d characters", twitterMaxChars))
	}

	if !wait(ctx, 500*time.Millisecond) {
		return failure(models.Twitter, "request timed out")
	}

	return success(models.Twitter, fmt.Sprintf("tw_%s", uuid.New().String()[:8]))
}
