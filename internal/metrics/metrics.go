package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels shared by the advice endpoint and the advisor.
const (
	OutcomeSuccess    = "success"
	OutcomeValidation = "validation"
	OutcomeUpstream   = "upstream"
	OutcomeParse      = "parse"
	OutcomeInternal   = "internal"
)

var (
	AdviceRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advice_requests_total",
			Help: "Total number of advice requests by transport and outcome",
		},
		[]string{"transport", "outcome"},
	)

	GenerationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "advice_generation_duration_seconds",
			Help:    "Duration of the model call plus response parsing",
			Buckets: []float64{0.5, 1, 2, 5, 10, 20, 30, 60, 120},
		},
		[]string{"model", "outcome"},
	)

	RecommendationsReturned = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "advice_recommendations_returned",
			Help:    "Number of recommendations in a successful model reply",
			Buckets: []float64{0, 1, 2, 3, 4, 5, 10},
		},
		[]string{"model"},
	)

	InFlightGenerations = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "advice_generations_in_flight",
			Help: "Number of model calls currently running",
		},
	)
)

// ObserveGeneration records one advisor call.
func ObserveGeneration(model, outcome string, started time.Time) {
	GenerationDuration.WithLabelValues(model, outcome).Observe(time.Since(started).Seconds())
}

func ObserveRequest(transport, outcome string) {
	AdviceRequests.WithLabelValues(transport, outcome).Inc()
}
