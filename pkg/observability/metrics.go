package observability

import (
	"github.com/aretw0/factory/pkg/record"
	"github.com/aretw0/factory/pkg/registry"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "factory"

// Metrics counts generated types, constructed records and failures.
type Metrics struct {
	typesGenerated     prometheus.Counter
	recordsConstructed *prometheus.CounterVec
	failures           *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		typesGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "types_generated_total",
			Help:      "Total number of record types generated.",
		}),
		recordsConstructed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_constructed_total",
			Help:      "Total number of records constructed, by type label.",
		}, []string{"type"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "failures_total",
			Help:      "Total number of failed generator and record operations, by error kind.",
		}, []string{"kind"}),
	}

	if reg != nil {
		reg.MustRegister(m.typesGenerated, m.recordsConstructed, m.failures)
	}
	return m
}

// TypeGenerated implements record.Observer.
func (m *Metrics) TypeGenerated(*record.Type) {
	m.typesGenerated.Inc()
}

// RecordConstructed implements record.Observer.
func (m *Metrics) RecordConstructed(t *record.Type) {
	m.recordsConstructed.WithLabelValues(t.Label()).Inc()
}

// OperationFailed implements record.Observer.
func (m *Metrics) OperationFailed(_ *record.Type, err error) {
	m.failures.WithLabelValues(record.KindOf(err).String()).Inc()
}

// RegistryGauge returns a gauge reporting the number of types in r.
func RegistryGauge(r *registry.Registry) prometheus.GaugeFunc {
	return prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "registered_types",
		Help:        "Number of record types registered by name.",
		ConstLabels: prometheus.Labels{"namespace": r.Namespace()},
	}, func() float64 {
		return float64(r.Len())
	})
}
