package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	mutationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forum_mutations_total",
			Help: "Forum write operations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	threadCommentsObserved = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "forum_thread_detail_comments",
			Help:    "Number of comments assembled per thread detail read",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)
)

func observeMutation(operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	mutationsTotal.WithLabelValues(operation, outcome).Inc()
}
