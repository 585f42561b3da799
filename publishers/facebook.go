package publishers

import (
	"context"
	"fmt"
	"time"

	"github.com/UjjwalCodes01/ai-social-media-platform/models"

	"github.com/google/uuid"
)

const facebookMaxChars = 63206

type FacebookPublisher struct{}

func (f *FacebookPublisher) Publish(ctx context.Context, post *models.Post, cred *models.PlatformCredentials) models.PublishResult {
	if reason := checkCredentials(cred); reason != "" {
		return failure(models.Facebook, reason)
	}

	if len([]rune(post.Content)) > facebookMaxChars {
		return failure(models.Facebook, fmt.Sprintf("content exceeds %d characters", facebookMaxChars))
	}

	if !wait(ctx, 600*time.Millisecond) {
		return failure(models.Facebook, "request timed out")
	}

	return success(models.Facebook, fmt.Sprintf("fb_%s", uuid.New().String()[:8]))
}
