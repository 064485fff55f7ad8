package handler

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	eventsProcessed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lastmile",
			Subsystem: "kafka_consumer",
			Name:      "suborder_events_processed_total",
			Help:      "Total number of successfully processed suborder events",
		},
	)

	eventsFailed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lastmile",
			Subsystem: "kafka_consumer",
			Name:      "suborder_events_failed_total",
			Help:      "Total number of failed suborder event processing attempts",
		},
	)

	eventsDLQ = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lastmile",
			Subsystem: "kafka_consumer",
			Name:      "suborder_events_dlq_total",
			Help:      "Total number of suborder events written to DLQ",
		},
	)

	commitErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lastmile",
			Subsystem: "kafka_consumer",
			Name:      "commit_errors_total",
			Help:      "Total number of Kafka commit errors",
		},
	)

	eventProcessingDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "lastmile",
			Subsystem: "kafka_consumer",
			Name:      "suborder_event_processing_duration_seconds",
			Help:      "Histogram of suborder event processing durations in seconds",
			Buckets:   prometheus.DefBuckets,
		},
	)

	eventsInProgress = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "lastmile",
			Subsystem: "kafka_consumer",
			Name:      "suborder_events_in_progress",
			Help:      "Number of suborder events currently being processed",
		},
	)
)

func RegisterMetrics() {
	prometheus.MustRegister(
		eventsProcessed,
		eventsFailed,
		eventsDLQ,
		commitErrors,
		eventProcessingDuration,
		eventsInProgress,
	)
}
