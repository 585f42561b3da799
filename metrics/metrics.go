package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScanTicks counts due-item sweeps, successful or not.
	ScanTicks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scheduler_scan_ticks_total",
		Help: "Number of due-post scan ticks executed.",
	})

	// ScanErrors counts sweeps that failed before claiming anything.
	ScanErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scheduler_scan_errors_total",
		Help: "Number of scan ticks that failed querying the store.",
	})

	// PostsClaimed counts posts atomically claimed for publishing.
	PostsClaimed = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scheduler_posts_claimed_total",
		Help: "Number of posts claimed by the due-post scanner.",
	})

	// PublishOutcomes counts per-platform adapter results.
	PublishOutcomes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "publisher_platform_outcomes_total",
		Help: "Per-platform publish attempt outcomes.",
	}, []string{"platform", "outcome"})

	// PostsFinalized counts posts reaching a terminal status.
	PostsFinalized = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "publisher_posts_finalized_total",
		Help: "Posts written to a terminal status, by status.",
	}, []string{"status"})
)
