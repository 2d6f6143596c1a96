package provider

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultProviderMetrics implements ProviderMetrics on top of prometheus collectors
type DefaultProviderMetrics struct {
	requests *prometheus.CounterVec
	failures *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// NewProviderMetrics creates provider metrics registered on reg
func NewProviderMetrics(reg prometheus.Registerer) *DefaultProviderMetrics {
	factory := promauto.With(reg)
	return &DefaultProviderMetrics{
		requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "transcriber_provider_requests_total",
			Help: "Total number of transcription calls by provider and outcome",
		}, []string{"provider", "outcome"}),
		failures: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "transcriber_provider_failures_total",
			Help: "Failed transcription calls by provider and error code",
		}, []string{"provider", "code"}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "transcriber_provider_latency_seconds",
			Help:    "Latency of successful transcription calls",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 10),
		}, []string{"provider"}),
	}
}

// RecordSuccess records a successful transcription
func (m *DefaultProviderMetrics) RecordSuccess(provider string, latencySec float64) {
	m.requests.WithLabelValues(provider, "success").Inc()
	m.latency.WithLabelValues(provider).Observe(latencySec)
}

// RecordFailure records a failed transcription
func (m *DefaultProviderMetrics) RecordFailure(provider string, errorCode string) {
	m.requests.WithLabelValues(provider, "failure").Inc()
	m.failures.WithLabelValues(provider, errorCode).Inc()
}
