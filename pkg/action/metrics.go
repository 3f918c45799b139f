package action

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "contract"

type Metrics struct {
	actions  *prometheus.CounterVec
	inFlight *prometheus.GaugeVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the controller collectors on registerer. A nil
// registerer yields working collectors that are not exported anywhere.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		actions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "actions_total",
				Help:      "Total number of controller actions by kind and outcome",
			},
			[]string{"action", "outcome"},
		),
		inFlight: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: metricsNamespace,
				Name:      "actions_in_flight",
				Help:      "Number of controller actions currently pending",
			},
			[]string{"action"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "action_duration_seconds",
				Help:      "Time from entering pending until returning to idle",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
			},
			[]string{"action"},
		),
	}
}

func (m *Metrics) started(kind Kind) {
	if m == nil {
		return
	}
	m.inFlight.WithLabelValues(string(kind)).Inc()
}

func (m *Metrics) finished(kind Kind, outcome Outcome, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.inFlight.WithLabelValues(string(kind)).Dec()
	m.duration.WithLabelValues(string(kind)).Observe(elapsed.Seconds())
	m.actions.WithLabelValues(string(kind), string(outcome)).Inc()
}

// record counts an outcome that never entered the pending state.
func (m *Metrics) record(kind Kind, outcome Outcome) {
	if m == nil {
		return
	}
	m.actions.WithLabelValues(string(kind), string(outcome)).Inc()
}
