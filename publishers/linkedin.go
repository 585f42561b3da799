package publishers

import (
	"context"
	"fmt"
	"time"

	"github.com/UjjwalCodes01/ai-social-media-platform/models"

	"github.com/google/uuid"
)

const linkedInMaxChars = 3000

type LinkedInPublisher struct{}

func (l *LinkedInPublisher) Publish(ctx context.Context, post *models.Post, cred *models.PlatformCredentials) models.PublishResult {
	if reason := checkCredentials(cred); reason != "" {
		return failure(models.LinkedIn, reason)
	}

	if len([]rune(post.Content)) > linkedInMaxChars {
		return failure(models.LinkedIn, fmt.Sprintf("content exceeds %d characters", linkedInMaxChars))
	}

	if !wait(ctx, 700*time.Millisecond) {
		return failure(models.LinkedIn, "request timed out")
	}

	return success(models.LinkedIn, fmt.Sprintf("li_%s", uuid.New().String()[:8]))
}
