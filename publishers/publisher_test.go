package publishers

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/UjjwalCodes01/ai-social-media-platform/models"
)

func validCred(platform models.Platform) *models.PlatformCredentials {
	return &models.PlatformCredentials{
		UserID:      "u1",
		Platform:    platform,
		AccessToken: "token",
	}
}

func expiredCred(platform models.Platform) *models.PlatformCredentials {
	past := time.Now().Add(-time.Hour)
	cred := validCred(platform)
	cred.ExpiresAt = &past
	return cred
}

func testPost(content string, mediaURLs ...string) *models.Post {
	return &models.Post{
		ID:        "p1",
		UserID:    "u1",
		Content:   content,
		MediaURLs: mediaURLs,
	}
}

func TestAllCoversEveryPlatform(t *testing.T) {
	pubs := All()
	for _, platform := range models.AllPlatforms {
		if pubs[platform] == nil {
			t.Errorf("no publisher registered for %s", platform)
		}
	}
	if len(pubs) != len(models.AllPlatforms) {
		t.Errorf("All() has %d publishers, want %d", len(pubs), len(models.AllPlatforms))
	}
}

func TestPublishSucceedsWithValidCredentials(t *testing.T) {
	prefixes := map[models.Platform]string{
		models.Twitter:   "tw_",
		models.LinkedIn:  "li_",
		models.Instagram: "ig_",
		models.Facebook:  "fb_",
	}

	for platform, pub := range All() {
		t.Run(string(platform), func(t *testing.T) {
			post := testPost("hello", "https://cdn.example.com/pic.jpg")
			result := pub.Publish(context.Background(), post, validCred(platform))

			if !result.Success {
				t.Fatalf("publish failed: %s", result.Error)
			}
			if result.Platform != platform {
				t.Errorf("result platform = %s, want %s", result.Platform, platform)
			}
			if !strings.HasPrefix(result.ExternalID, prefixes[platform]) {
				t.Errorf("external id %q missing prefix %q", result.ExternalID, prefixes[platform])
			}
		})
	}
}

func TestPublishMissingCredentials(t *testing.T) {
	for platform, pub := range All() {
		t.Run(string(platform), func(t *testing.T) {
			result := pub.Publish(context.Background(), testPost("hello"), nil)
			if result.Success || result.Error != "missing credentials" {
				t.Errorf("result = %+v", result)
			}
		})
	}
}

func TestPublishExpiredCredentials(t *testing.T) {
	pub := &TwitterPublisher{}
	result := pub.Publish(context.Background(), testPost("hello"), expiredCred(models.Twitter))
	if result.Success || result.Error != "credentials expired" {
		t.Errorf("result = %+v", result)
	}
}

func TestTwitterCharacterLimit(t *testing.T) {
	pub := &TwitterPublisher{}

	over := strings.Repeat("x", twitterMaxChars+1)
	result := pub.Publish(context.Background(), testPost(over), validCred(models.Twitter))
	if result.Success {
		t.Fatal("expected over-limit tweet to fail")
	}
	if !strings.Contains(result.Error, "280") {
		t.Errorf("error = %q, want mention of the limit", result.Error)
	}

	atLimit := strings.Repeat("x", twitterMaxChars)
	result = pub.Publish(context.Background(), testPost(atLimit), validCred(models.Twitter))
	if !result.Success {
		t.Errorf("tweet at exactly %d characters failed: %s", twitterMaxChars, result.Error)
	}
}

func TestTwitterLimitCountsRunes(t *testing.T) {
	pub := &TwitterPublisher{}

	// 280 multibyte runes are within the limit even though the byte
	// count is far larger.
	content := strings.Repeat("ü", twitterMaxChars)
	result := pub.Publish(context.Background(), testPost(content), validCred(models.Twitter))
	if !result.Success {
		t.Errorf("280-rune tweet failed: %s", result.Error)
	}
}

func TestInstagramRequiresImage(t *testing.T) {
	pub := &InstagramPublisher{}

	result := pub.Publish(context.Background(), testPost("no picture"), validCred(models.Instagram))
	if result.Success {
		t.Fatal("expected text-only instagram post to fail")
	}

	result = pub.Publish(context.Background(),
		testPost("with picture", "https://cdn.example.com/pic.png"), validCred(models.Instagram))
	if !result.Success {
		t.Errorf("post with image failed: %s", result.Error)
	}

	// A video attachment doesn't satisfy the image requirement.
	result = pub.Publish(context.Background(),
		testPost("video only", "https://cdn.example.com/clip.mp4"), validCred(models.Instagram))
	if result.Success {
		t.Error("expected video-only instagram post to fail")
	}
}

func TestLinkedInCharacterLimit(t *testing.T) {
	pub := &LinkedInPublisher{}

	over := strings.Repeat("x", linkedInMaxChars+1)
	result := pub.Publish(context.Background(), testPost(over), validCred(models.LinkedIn))
	if result.Success {
		t.Error("expected over-limit linkedin post to fail")
	}
}

func TestPublishCancelledContext(t *testing.T) {
	pub := &TwitterPublisher{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := pub.Publish(ctx, testPost("hello"), validCred(models.Twitter))
	if result.Success || result.Error != "request timed out" {
		t.Errorf("result = %+v", result)
	}
}
