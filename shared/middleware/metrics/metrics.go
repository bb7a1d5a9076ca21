// Package metrics records per-route Prometheus metrics for the forum API.
package metrics

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_http_requests_total",
			Help: "Forum API requests by route and status class.",
		},
		[]string{"method", "route", "class"},
	)

	// Reads fan out over every comment, so the upper buckets matter.
	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "forum_http_request_duration_seconds",
			Help:    "Forum API latency by resource.",
			Buckets: []float64{.005, .01, .025, .05, .1, .2, .4, .8, 1.6, 3.2},
		},
		[]string{"resource", "method"},
	)

	inFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "forum_http_requests_in_flight",
			Help: "Forum API requests being served, by method.",
		},
		[]string{"method"},
	)
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

// statusClass folds a code into 2xx, 4xx and so on.
func statusClass(code int) string {
	return strconv.Itoa(code/100) + "xx"
}

// resource names the innermost entity a route pattern addresses.
func resource(route string) string {
	switch {
	case strings.Contains(route, "/replies"):
		return "reply"
	case strings.Contains(route, "/comments"):
		return "comment"
	case strings.HasPrefix(route, "/threads"):
		return "thread"
	case route == "unmatched":
		return route
	default:
		return "ops"
	}
}

// route is the matched chi pattern, so ids never become label values.
func route(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if pattern := rctx.RoutePattern(); pattern != "" {
			return pattern
		}
	}
	return "unmatched"
}

func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gauge := inFlight.WithLabelValues(r.Method)
		gauge.Inc()
		defer gauge.Dec()

		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		pattern := route(r)
		requestsTotal.WithLabelValues(r.Method, pattern, statusClass(rec.status)).Inc()
		requestDuration.WithLabelValues(resource(pattern), r.Method).Observe(time.Since(start).Seconds())
	})
}
