package services

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/UjjwalCodes01/ai-social-media-platform/models"
	"github.com/UjjwalCodes01/ai-social-media-platform/publishers"
)

func waitForStatus(t *testing.T, store *memStore, id string, want models.PostStatus) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if store.status(id) == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("post %s never reached status %s (now %s)", id, want, store.status(id))
}

func schedulePost(store *memStore, id string, at time.Time) {
	now := time.Now()
	store.CreatePost(&models.Post{
		ID:           id,
		UserID:       "u1",
		Content:      "scheduled content",
		Platforms:    []models.Platform{models.Twitter},
		Status:       models.StatusScheduled,
		ScheduledFor: &at,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
}

func TestRunOncePublishesDuePosts(t *testing.T) {
	store := newMemStore()
	store.setCredentials("u1", models.Twitter)

	pubs := map[models.Platform]publishers.PlatformPublisher{models.Twitter: succeeding("t1")}
	publisher := NewPublisherService(store, store, pubs, time.Second)
	scheduler := NewScheduler(store, publisher, time.Minute)

	schedulePost(store, "due", time.Now().Add(-time.Minute))
	schedulePost(store, "future", time.Now().Add(time.Hour))

	if err := scheduler.RunOnce(); err != nil {
		t.Fatalf("RunOnce: %v", err)
	}

	waitForStatus(t, store, "due", models.StatusPublished)

	if got := store.status("future"); got != models.StatusScheduled {
		t.Errorf("future post status = %s, want scheduled", got)
	}
}

func TestRunOnceConcurrentSweepsClaimOnce(t *testing.T) {
	store := newMemStore()
	store.setCredentials("u1", models.Twitter)

	adapter := succeeding("t1")
	pubs := map[models.Platform]publishers.PlatformPublisher{models.Twitter: adapter}
	publisher := NewPublisherService(store, store, pubs, time.Second)
	scheduler := NewScheduler(store, publisher, time.Minute)

	schedulePost(store, "contested", time.Now().Add(-time.Second))

	// Two replicas sweeping at once must not both claim the post.
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			scheduler.RunOnce()
		}()
	}
	wg.Wait()

	waitForStatus(t, store, "contested", models.StatusPublished)

	if calls := atomic.LoadInt32(&adapter.calls); calls != 1 {
		t.Errorf("adapter called %d times, want 1", calls)
	}
}

func TestRunOnceScanErrorTouchesNothing(t *testing.T) {
	store := newMemStore()
	pubs := map[models.Platform]publishers.PlatformPublisher{models.Twitter: succeeding("t1")}
	publisher := NewPublisherService(store, store, pubs, time.Second)
	scheduler := NewScheduler(store, publisher, time.Minute)

	schedulePost(store, "due", time.Now().Add(-time.Minute))
	store.setFail(true)

	if err := scheduler.RunOnce(); err == nil {
		t.Fatal("expected an error from a failed sweep")
	}

	store.setFail(false)
	if got := store.status("due"); got != models.StatusScheduled {
		t.Errorf("post status = %s after failed sweep, want scheduled", got)
	}
}

func TestRunOnceEmptySweep(t *testing.T) {
	store := newMemStore()
	pubs := map[models.Platform]publishers.PlatformPublisher{}
	publisher := NewPublisherService(store, store, pubs, time.Second)
	scheduler := NewScheduler(store, publisher, time.Minute)

	if err := scheduler.RunOnce(); err != nil {
		t.Fatalf("RunOnce on empty store: %v", err)
	}
}
