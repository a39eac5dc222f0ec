package metrics

import "github.com/prometheus/client_golang/prometheus"

// ReservationMetrics exposes counters and histograms for the booking flow.
// A nil *ReservationMetrics is valid and records nothing.
type ReservationMetrics struct {
	outcomesTotal           *prometheus.CounterVec
	errorsTotal             *prometheus.CounterVec
	ledgerConflictsTotal    prometheus.Counter
	lockWaitSeconds         prometheus.Histogram
	criticalSectionSeconds  prometheus.Histogram
	eventPublishFailedTotal prometheus.Counter
}

func NewReservationMetrics(reg prometheus.Registerer) *ReservationMetrics {
	m := &ReservationMetrics{
		outcomesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking",
			Subsystem: "reservation",
			Name:      "outcomes_total",
			Help:      "Reservation attempts by outcome",
		}, []string{"outcome"}),
		errorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "booking",
			Subsystem: "reservation",
			Name:      "errors_total",
			Help:      "Reservation attempts that failed with an error",
		}, []string{"kind"}),
		ledgerConflictsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "booking",
			Subsystem: "reservation",
			Name:      "ledger_conflicts_total",
			Help:      "Conditional ledger writes refused because the version moved",
		}),
		lockWaitSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "booking",
			Subsystem: "reservation",
			Name:      "lock_wait_seconds",
			Help:      "Time spent waiting for the per-provider lock",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}),
		criticalSectionSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "booking",
			Subsystem: "reservation",
			Name:      "critical_section_seconds",
			Help:      "Time spent holding the per-provider lock",
			Buckets:   prometheus.DefBuckets,
		}),
		eventPublishFailedTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "booking",
			Subsystem: "reservation",
			Name:      "event_publish_failed_total",
			Help:      "Booked appointments whose event could not be published",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.outcomesTotal,
		m.errorsTotal,
		m.ledgerConflictsTotal,
		m.lockWaitSeconds,
		m.criticalSectionSeconds,
		m.eventPublishFailedTotal,
	)
	return m
}

func (m *ReservationMetrics) ObserveOutcome(outcome string) {
	if m == nil {
		return
	}
	m.outcomesTotal.WithLabelValues(outcome).Inc()
}

func (m *ReservationMetrics) ObserveError(kind string) {
	if m == nil {
		return
	}
	m.errorsTotal.WithLabelValues(kind).Inc()
}

func (m *ReservationMetrics) ObserveLedgerConflict() {
	if m == nil {
		return
	}
	m.ledgerConflictsTotal.Inc()
}

func (m *ReservationMetrics) ObserveLockWait(seconds float64) {
	if m == nil {
		return
	}
	m.lockWaitSeconds.Observe(seconds)
}

func (m *ReservationMetrics) ObserveCriticalSection(seconds float64) {
	if m == nil {
		return
	}
	m.criticalSectionSeconds.Observe(seconds)
}

func (m *ReservationMetrics) ObserveEventPublishFailed() {
	if m == nil {
		return
	}
	m.eventPublishFailedTotal.Inc()
}
