package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/aqib-mansoor/LastMileDelivery-FYP-sub000/internal/entities"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const anonymousRole = "anonymous"

var (
	httpInFlight = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "lastmile",
		Subsystem: "http",
		Name:      "in_flight_requests",
		Help:      "Current number of in-flight dashboard requests.",
	}, []string{"method"})

	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lastmile",
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Dashboard requests by route, session role and status.",
	}, []string{"method", "route", "role", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "lastmile",
		Subsystem: "http",
		Name:      "request_duration",
		Help:      "Dashboard request latencies in seconds by route and session role.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "role"})

	httpSessionRefusals = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lastmile",
		Subsystem: "http",
		Name:      "session_refusals_total",
		Help:      "Requests refused by the session check.",
	}, []string{"reason"})
)

type metricsKey struct{}

// requestRole is filled by the session middleware further down the chain.
type requestRole struct {
	role atomic.Value
}

func recordRole(ctx context.Context, role entities.Role) {
	if rr, ok := ctx.Value(metricsKey{}).(*requestRole); ok {
		rr.role.Store(string(role))
	}
}

func (rr *requestRole) String() string {
	if v, ok := rr.role.Load().(string); ok && v != "" {
		return v
	}
	return anonymousRole
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inFlight := httpInFlight.WithLabelValues(r.Method)
		inFlight.Inc()
		defer inFlight.Dec()

		start := time.Now()
		rw := wrapResponseWriter(w)
		rr := &requestRole{}

		next.ServeHTTP(rw, r.WithContext(context.WithValue(r.Context(), metricsKey{}, rr)))

		route := "unknown"
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		role := rr.String()

		httpRequestsTotal.WithLabelValues(r.Method, route, role, strconv.Itoa(rw.status)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, route, role).Observe(time.Since(start).Seconds())
	})
}
