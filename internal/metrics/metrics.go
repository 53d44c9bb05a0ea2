// Package metrics declares the Prometheus instruments exported on /metrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SkillsExtracted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skillmatch_skills_extracted_total",
			Help: "Total number of skills found by extraction requests",
		},
	)

	MatchesScored = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillmatch_matches_scored_total",
			Help: "Total number of candidate/posting pairs scored",
		},
		[]string{"gate"},
	)

	TestsCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "skillmatch_tests_completed_total",
			Help: "Total number of submitted assessments by proficiency tier",
		},
		[]string{"difficulty", "tier"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "skillmatch_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

// RecordMatch counts one scored pair.
func RecordMatch(gatePassed bool) {
	gate := "failed"
	if gatePassed {
		gate = "passed"
	}
	MatchesScored.WithLabelValues(gate).Inc()
}

// RecordTest counts one submitted assessment.
func RecordTest(difficulty, tier string) {
	TestsCompleted.WithLabelValues(difficulty, tier).Inc()
}

// ObserveRequest records the latency of one HTTP request.
func ObserveRequest(method, route, status string, elapsed time.Duration) {
	HTTPRequestDuration.WithLabelValues(method, route, status).Observe(elapsed.Seconds())
}
