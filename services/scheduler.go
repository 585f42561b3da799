package services

import (
	"fmt"
	"time"

	"github.com/UjjwalCodes01/ai-social-media-platform/metrics"
	"github.com/UjjwalCodes01/ai-social-media-platform/models"
	"github.com/UjjwalCodes01/ai-social-media-platform/utils"

	"github.com/robfig/cron/v3"
)

// Scheduler is the due-post scanner. On a fixed interval it claims
// every scheduled post whose time has arrived and hands each one to the
// publication worker on its own goroutine, so slow platform calls never
// delay the next tick or other posts.
//
// Claiming and scanning are a single atomic store operation, which is
// what makes it safe to run several replicas of this process: two
// concurrent ticks can never claim the same post twice.
type Scheduler struct {
	cron      *cron.Cron
	store     PostStore
	publisher *PublisherService
	interval  time.Duration
}

func NewScheduler(store PostStore, publisher *PublisherService, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Scheduler{
		cron:      cron.New(),
		store:     store,
		publisher: publisher,
		interval:  interval,
	}
}

func (s *Scheduler) Start() {
	s.cron.AddFunc(fmt.Sprintf("@every %s", s.interval), func() {
		if err := s.RunOnce(); err != nil {
			utils.Errorf("Scheduled post sweep failed: %v", err)
		}
	})

	s.cron.Start()
	utils.Infof("Scheduler started (interval %s)", s.interval)
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

// RunOnce performs one sweep: claim all due posts, dispatch each to the
// worker without waiting. A failed scan touches no post state, so it is
// always safe to retry on the next tick.
func (s *Scheduler) RunOnce() error {
	metrics.ScanTicks.Inc()

	claimed, err := s.store.ClaimDuePosts(time.Now())
	if err != nil {
		metrics.ScanErrors.Inc()
		return err
	}

	if len(claimed) == 0 {
		return nil
	}

	metrics.PostsClaimed.Add(float64(len(claimed)))
	utils.Infof("Claimed %d due post(s) for publishing", len(claimed))

	for _, post := range claimed {
		go func(p *models.Post) {
			utils.Infof("Publishing scheduled post %s", p.ID)
			s.publisher.PublishPost(p)
		}(post)
	}

	return nil
}
