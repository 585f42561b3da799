package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/UjjwalCodes01/ai-social-media-platform/metrics"
	"github.com/UjjwalCodes01/ai-social-media-platform/models"
	"github.com/UjjwalCodes01/ai-social-media-platform/publishers"
	"github.com/UjjwalCodes01/ai-social-media-platform/utils"
)

// PublisherService is the publication worker. Given a post that has
// already been claimed (status "publishing"), it fans out to every
// requested platform, records each outcome, and writes the terminal
// status in one conditional update.
type PublisherService struct {
	store      PostStore
	creds      CredentialsStore
	publishers map[models.Platform]publishers.PlatformPublisher
	timeout    time.Duration
}

func NewPublisherService(store PostStore, creds CredentialsStore,
	pubs map[models.Platform]publishers.PlatformPublisher, timeout time.Duration) *PublisherService {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &PublisherService{
		store:      store,
		creds:      creds,
		publishers: pubs,
		timeout:    timeout,
	}
}

// PublishPost attempts every target of the post concurrently and blocks
// until all are resolved. Each target ends with exactly one recorded
// result; a panic, timeout or adapter error becomes a failed result,
// never a missing one. The caller must have claimed the post first.
//
// The terminal status is published when every target succeeded, failed
// when none did, and partially_published otherwise. Partial success is
// permanent: a successful platform post is never rolled back because a
// sibling platform failed.
func (ps *PublisherService) PublishPost(post *models.Post) []models.PublishResult {
	var wg sync.WaitGroup
	results := make([]models.PublishResult, len(post.Platforms))

	for i, platform := range post.Platforms {
		wg.Add(1)
		go func(idx int, plt models.Platform) {
			defer wg.Done()

			result := ps.attempt(post, plt)
			result.Platform = plt
			result.Attempted = true
			now := time.Now()
			result.AttemptedAt = &now
			results[idx] = result

			outcome := "failure"
			if result.Success {
				outcome = "success"
			}
			metrics.PublishOutcomes.WithLabelValues(string(plt), outcome).Inc()

			if err := ps.store.SavePublishResult(post.ID, result); err != nil {
				utils.Errorf("Failed to save publish result for post %s (%s): %v", post.ID, plt, err)
			}
		}(i, platform)
	}

	wg.Wait()

	status := finalStatus(results)
	now := time.Now()

	ok, err := ps.store.FinalizePost(post.ID, status, now)
	if err != nil {
		utils.Errorf("Failed to finalize post %s: %v", post.ID, err)
	} else if !ok {
		utils.Warnf("Post %s was not in publishing state at finalize time", post.ID)
	} else {
		metrics.PostsFinalized.WithLabelValues(string(status)).Inc()
	}

	post.Status = status
	post.PublishedAt = &now
	post.UpdatedAt = now
	post.Results = results

	return results
}

// attempt runs a single adapter call under the configured timeout. A
// panicking adapter is converted into a failed result so the target
// never ends up unattempted.
func (ps *PublisherService) attempt(post *models.Post, platform models.Platform) (result models.PublishResult) {
	defer func() {
		if r := recover(); r != nil {
			utils.Errorf("Publisher for %s panicked on post %s: %v", platform, post.ID, r)
			result = models.PublishResult{Error: fmt.Sprintf("publisher panic: %v", r)}
		}
	}()

	publisher, ok := ps.publishers[platform]
	if !ok {
		return models.PublishResult{Error: "platform not supported"}
	}

	cred, err := ps.creds.GetCredentials(post.UserID, platform)
	if err != nil {
		utils.Errorf("Credential lookup failed for user %s on %s: %v", post.UserID, platform, err)
		return models.PublishResult{Error: "credentials unavailable"}
	}

	// Tokens are stored encrypted; adapters need the plaintext.
	if cred != nil && cred.AccessToken != "" {
		plaintext, err := utils.DecryptToken(cred.AccessToken)
		if err != nil {
			utils.Errorf("Token decryption failed for user %s on %s: %v", post.UserID, platform, err)
			return models.PublishResult{Error: "credentials unavailable"}
		}
		credCopy := *cred
		credCopy.AccessToken = plaintext
		cred = &credCopy
	}

	ctx, cancel := context.WithTimeout(context.Background(), ps.timeout)
	defer cancel()

	return publisher.Publish(ctx, post, cred)
}

func finalStatus(results []models.PublishResult) models.PostStatus {
	succeeded := 0
	for _, r := range results {
		if r.Success {
			succeeded++
		}
	}

	switch {
	case succeeded == len(results):
		return models.StatusPublished
	case succeeded == 0:
		return models.StatusFailed
	default:
		return models.StatusPartiallyPublished
	}
}
