package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for IntentsRouted.
const (
	OutcomeMatched  = "matched"
	OutcomePrompted = "prompted"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
	OutcomeStatic   = "static"
)

var (
	IntentsRouted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodcart_intents_routed_total",
			Help: "Total number of intents routed, by intent and outcome",
		},
		[]string{"intent", "outcome"},
	)

	WebhookRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodcart_webhook_requests_total",
			Help: "Total number of webhook requests, by platform and HTTP status",
		},
		[]string{"platform", "status"},
	)

	WebhookDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "foodcart_webhook_duration_seconds",
			Help:    "Duration of webhook handling in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"platform"},
	)

	WebhookRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "foodcart_webhook_rejected_total",
			Help: "Total number of webhook requests rejected by security checks",
		},
		[]string{"platform", "reason"},
	)
)
