package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	StoreMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "resumeforge", Name: "store_mutations_total", Help: "Number of resume store mutations by operation."},
		[]string{"op"},
	)
	ValidationFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "resumeforge", Name: "validation_failures_total", Help: "Number of failed entity validations by entity type."},
		[]string{"entity"},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "resumeforge", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "resumeforge", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(StoreMutations)
	reg.MustRegister(ValidationFailures)
	reg.MustRegister(RateLimitAllowed)
	reg.MustRegister(RateLimitRejected)
}
