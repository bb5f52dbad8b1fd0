// Package metrics exposes Prometheus collectors for assignment validation,
// source item writes and the consistency audit.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metric names.
const (
	MetricValidationsTotal     = "bundle_source_validations_total"
	MetricSourceItemsSaved     = "inventory_source_items_saved_total"
	MetricSourceItemsDeleted   = "inventory_source_items_deleted_total"
	MetricAuditViolations      = "bundle_source_audit_violations"
	MetricAuditDurationSeconds = "bundle_source_audit_duration_seconds"
)

// Validation results.
const (
	ResultAllowed  = "allowed"
	ResultRejected = "rejected"
	ResultError    = "error"
)

// Metrics owns a private registry so tests can create as many as they like.
type Metrics struct {
	registry *prometheus.Registry

	validations  *prometheus.CounterVec
	itemsSaved   prometheus.Counter
	itemsDeleted prometheus.Counter
	violations   prometheus.Gauge
	auditSeconds prometheus.Histogram
}

// New creates the collectors. withRuntime adds the Go and process collectors.
func New(withRuntime bool) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		validations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricValidationsTotal,
			Help: "Source assignment validations by bundle shipment type and result.",
		}, []string{"shipment_type", "result"}),
		itemsSaved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricSourceItemsSaved,
			Help: "Source items written by successful saves.",
		}),
		itemsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: MetricSourceItemsDeleted,
			Help: "Source items removed.",
		}),
		violations: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: MetricAuditViolations,
			Help: "Violations found by the last ship-together audit run.",
		}),
		auditSeconds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    MetricAuditDurationSeconds,
			Help:    "Duration of ship-together audit runs.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	m.registry.MustRegister(m.validations, m.itemsSaved, m.itemsDeleted, m.violations, m.auditSeconds)
	if withRuntime {
		m.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return m
}

// ObserveValidation is a no-op on a nil receiver, as are the other observers.
func (m *Metrics) ObserveValidation(shipmentType, result string) {
	if m == nil {
		return
	}
	m.validations.WithLabelValues(shipmentType, result).Inc()
}

func (m *Metrics) AddSaved(n int) {
	if m == nil {
		return
	}
	m.itemsSaved.Add(float64(n))
}

func (m *Metrics) AddDeleted(n int64) {
	if m == nil {
		return
	}
	m.itemsDeleted.Add(float64(n))
}

func (m *Metrics) ObserveAudit(violations int, seconds float64) {
	if m == nil {
		return
	}
	m.violations.Set(float64(violations))
	m.auditSeconds.Observe(seconds)
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
