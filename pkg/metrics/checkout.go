package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// CheckoutMetrics records outcomes of checkout session requests.
type CheckoutMetrics struct {
	duration *prometheus.HistogramVec
	created  prometheus.Counter
	rejected prometheus.Counter
	failed   prometheus.Counter
}

// NewCheckoutMetrics registers the checkout metrics on the provided registerer.
func NewCheckoutMetrics(reg prometheus.Registerer) *CheckoutMetrics {
	if reg == nil {
		return &CheckoutMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "checkout_duration_seconds",
		Help:    "Duration of checkout session requests in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	created := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_sessions_created",
		Help: "Checkout sessions successfully created with the payment provider.",
	})
	rejected := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_requests_rejected",
		Help: "Checkout requests rejected by payload validation.",
	})
	failed := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "checkout_provider_failures",
		Help: "Checkout attempts that failed at the payment provider.",
	})
	reg.MustRegister(duration, created, rejected, failed)
	return &CheckoutMetrics{
		duration: duration,
		created:  created,
		rejected: rejected,
		failed:   failed,
	}
}

// ObserveDuration records how long a checkout attempt took, by outcome.
func (c *CheckoutMetrics) ObserveDuration(outcome string, duration time.Duration) {
	if c == nil || c.duration == nil {
		return
	}
	if outcome == "" {
		outcome = "unknown"
	}
	c.duration.WithLabelValues(outcome).Observe(duration.Seconds())
}

// IncCreated increments the successful session counter.
func (c *CheckoutMetrics) IncCreated() {
	if c == nil || c.created == nil {
		return
	}
	c.created.Inc()
}

// IncRejected increments the validation rejection counter.
func (c *CheckoutMetrics) IncRejected() {
	if c == nil || c.rejected == nil {
		return
	}
	c.rejected.Inc()
}

// IncFailed increments the provider failure counter.
func (c *CheckoutMetrics) IncFailed() {
	if c == nil || c.failed == nil {
		return
	}
	c.failed.Inc()
}
