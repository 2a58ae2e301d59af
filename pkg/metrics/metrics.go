// Package metrics exposes Prometheus counters for the ingestion pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SubmissionsIngested counts accepted benchmark submissions.
	SubmissionsIngested = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "inferbench",
		Name:      "submissions_ingested_total",
		Help:      "Number of benchmark submissions accepted and persisted.",
	})

	// SubmissionsFlagged counts submissions the plausibility check flagged.
	SubmissionsFlagged = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inferbench",
		Name:      "submissions_flagged_total",
		Help:      "Number of submissions flagged by the VRAM plausibility check.",
	}, []string{"verdict"})

	// VotesCast counts community feedback by vote type.
	VotesCast = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "inferbench",
		Name:      "votes_cast_total",
		Help:      "Number of community votes cast on submissions.",
	}, []string{"type"})
)
