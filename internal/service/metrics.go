package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	cartOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lastmile",
			Subsystem: "cart",
			Name:      "operations_total",
			Help:      "Cart operations by outcome",
		},
		[]string{"outcome"},
	)

	handoffActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lastmile",
			Subsystem: "handoff",
			Name:      "actions_total",
			Help:      "Suborder actions by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	geofenceRefusals = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lastmile",
			Subsystem: "handoff",
			Name:      "geofence_refusals_total",
			Help:      "Pickup and delivery attempts refused by the geofence gate",
		},
		[]string{"action", "reason"},
	)

	trackingPushes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lastmile",
			Subsystem: "tracking",
			Name:      "pushes_total",
			Help:      "Live tracking pushes by outcome",
		},
		[]string{"outcome"},
	)

	broadcastDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "lastmile",
			Subsystem: "tracking",
			Name:      "broadcast_duration_seconds",
			Help:      "Duration of a full position broadcast",
			Buckets:   prometheus.DefBuckets,
		},
	)
)
