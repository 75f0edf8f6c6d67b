package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	StatusTransitionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verification_status_transitions_total",
			Help: "Verification status writes by resulting status and source",
		},
		[]string{"status", "source"},
	)

	StatusChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verification_status_checks_total",
			Help: "Status polls by reported status",
		},
		[]string{"status"},
	)

	WebhooksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kyc_webhooks_total",
			Help: "Provider webhooks received by type and processing outcome",
		},
		[]string{"type", "processed"},
	)

	CredentialsIssuedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "credentials_issued_total",
			Help: "Issued credentials by kind (real or placeholder)",
		},
		[]string{"kind"},
	)

	ProviderRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "verification_provider_requests_total",
			Help: "Calls to the verification provider by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	MintDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "credential_mint_duration_seconds",
			Help:    "Time spent producing a credential",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		},
		[]string{"kind"},
	)
)

var registerOnce sync.Once

// RegisterMetrics adds the collectors to the default registry. Later calls are
// no-ops.
func RegisterMetrics() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			StatusTransitionsTotal,
			StatusChecksTotal,
			WebhooksTotal,
			CredentialsIssuedTotal,
			ProviderRequestsTotal,
			MintDuration,
		)
	})
}
