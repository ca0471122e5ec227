// Package metrics exposes Prometheus counters for the recommendation service
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RecommendationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "lotfinder_recommendations_total",
		Help: "Recommendation requests by flow and outcome",
	}, []string{"flow", "outcome"})
	FacilitiesSkippedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "lotfinder_facilities_skipped_total",
		Help: "Facilities left out of a ranking for lack of usable coordinates",
	})
	RequestDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "lotfinder_request_duration_ms",
		Help:    "HTTP request duration in milliseconds",
		Buckets: []float64{1, 5, 10, 20, 50, 100, 200, 500, 1000},
	}, []string{"route", "status"})
)

func init() {
	prometheus.MustRegister(RecommendationsTotal)
	prometheus.MustRegister(FacilitiesSkippedTotal)
	prometheus.MustRegister(RequestDurationMs)
}

// Handler serves the registered metrics for scraping
func Handler() http.Handler { return promhttp.Handler() }
