package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the profile module.
// Tracks compile volume, validation failures, and critical path durations.
type Metrics struct {
	ProfilesCompiled   prometheus.Counter
	SectionsReconciled prometheus.Counter
	ValidationFailures prometheus.Counter
	CacheHits          prometheus.Counter
	CacheMisses        prometheus.Counter
	DeriveDuration     prometheus.Histogram
	ReconcileDuration  prometheus.Histogram
}

// New creates a new Metrics instance with all profile module metrics registered
// on the default registry.
func New() *Metrics {
	return NewWith(prometheus.DefaultRegisterer)
}

// NewWith registers the profile module metrics on the given registerer.
// Tests pass a fresh registry to avoid duplicate registration.
func NewWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ProfilesCompiled: factory.NewCounter(prometheus.CounterOpts{
			Name: "clauseguard_profiles_compiled_total",
			Help: "Total number of full quiz submissions compiled into profiles",
		}),
		SectionsReconciled: factory.NewCounter(prometheus.CounterOpts{
			Name: "clauseguard_sections_reconciled_total",
			Help: "Total number of partial section updates applied",
		}),
		ValidationFailures: factory.NewCounter(prometheus.CounterOpts{
			Name: "clauseguard_validation_failures_total",
			Help: "Total number of quiz payloads rejected by schema validation",
		}),
		CacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "clauseguard_profile_cache_hits_total",
			Help: "Total number of profile reads served from cache",
		}),
		CacheMisses: factory.NewCounter(prometheus.CounterOpts{
			Name: "clauseguard_profile_cache_misses_total",
			Help: "Total number of profile reads that fell through to the store",
		}),
		DeriveDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "clauseguard_derive_duration_seconds",
			Help:    "Duration of derivation engine runs",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}),
		ReconcileDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "clauseguard_reconcile_duration_seconds",
			Help:    "Duration of partial update reconciliations including persistence",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

// ObserveDerive records the duration of a derivation run.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveDerive(start time.Time) {
	m.DeriveDuration.Observe(time.Since(start).Seconds())
}

// ObserveReconcile records the duration of a reconciliation.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveReconcile(start time.Time) {
	m.ReconcileDuration.Observe(time.Since(start).Seconds())
}
