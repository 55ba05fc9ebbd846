package dispatcher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	JobsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_jobs_processed_total",
			Help: "Total number of processed dispatch jobs by outcome",
		},
		[]string{"outcome"},
	)

	JobRetriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_job_retries_total",
			Help: "Total number of dispatch job retries by outcome",
		},
		[]string{"outcome"},
	)

	// JobsExhaustedTotal — операционный сигнал: заказ остался без водителя
	// после исчерпания бюджета попыток.
	JobsExhaustedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "dispatch_jobs_exhausted_total",
			Help: "Total number of dispatch jobs failed after exhausting the attempt budget",
		},
	)

	JobsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dispatch_jobs_in_flight",
			Help: "Number of dispatch jobs currently being processed",
		},
	)

	AssignDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dispatch_assign_duration_seconds",
			Help:    "Duration of a single assignment attempt",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)
)
