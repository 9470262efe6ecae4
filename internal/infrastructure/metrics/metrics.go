package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Movement metrics
	MovementsRecorded *prometheus.CounterVec
	MovementErrors    *prometheus.CounterVec
	RecordDuration    prometheus.Histogram

	// Account metrics
	AccountBalance *prometheus.GaugeVec

	// Summary cache metrics
	SummaryCacheHits   prometheus.Counter
	SummaryCacheMisses prometheus.Counter

	// Reference resolution metrics
	ReferenceLookupFailures *prometheus.CounterVec
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		// Movement metrics
		MovementsRecorded: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "obracap_movements_recorded_total",
				Help: "Total number of ledger movements recorded",
			},
			[]string{"kind", "source"},
		),
		MovementErrors: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "obracap_movement_errors_total",
				Help: "Total number of failed movement registrations by type",
			},
			[]string{"error_type"},
		),
		RecordDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "obracap_movement_record_duration_seconds",
			Help:    "Duration of movement registration including balance computation",
			Buckets: prometheus.DefBuckets,
		}),

		// Account metrics
		AccountBalance: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "obracap_account_balance",
				Help: "Last computed running balance per funding account",
			},
			[]string{"account_id"},
		),

		// Summary cache metrics
		SummaryCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "obracap_summary_cache_hits_total",
			Help: "Total number of account summaries served from cache",
		}),
		SummaryCacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "obracap_summary_cache_misses_total",
			Help: "Total number of account summaries recomputed from the store",
		}),

		// Reference resolution metrics
		ReferenceLookupFailures: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "obracap_reference_lookup_failures_total",
				Help: "Total number of failed external reference lookups",
			},
			[]string{"ref_kind"},
		),
	}
}
