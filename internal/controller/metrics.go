package controller

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"

	"github.com/bobbyrward/trade-secrets/internal/constants"
)

var (
	reconcileDurationHistogram = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "reconcile_duration_seconds",
			Help:      "Duration of reconciliation passes in seconds",
			// A pass is two GETs and at most one PATCH.
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"namespace", "name", "controller"},
	)

	reconcileErrorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "reconcile_errors_total",
			Help:      "Total number of failed reconciliation passes",
		},
		[]string{"namespace", "name", "controller", "reason"},
	)

	secretPatchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "secret_patches_total",
			Help:      "Total number of patches issued against destination Secrets",
		},
		[]string{"namespace", "name"},
	)

	fieldsUpdatedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: constants.MetricsNamespace,
			Name:      "fields_updated_total",
			Help:      "Total number of destination Secret data fields written",
		},
		[]string{"namespace", "name"},
	)
)

func init() {
	metrics.Registry.MustRegister(
		reconcileDurationHistogram,
		reconcileErrorsTotal,
		secretPatchesTotal,
		fieldsUpdatedTotal,
	)
}

// ReconcileMetrics provides helpers to record reconcile-level metrics for a
// specific controller and TradeSecret.
type ReconcileMetrics struct {
	namespace  string
	name       string
	controller string
}

// NewReconcileMetrics creates a new ReconcileMetrics instance.
func NewReconcileMetrics(namespace, name, controller string) *ReconcileMetrics {
	return &ReconcileMetrics{
		namespace:  namespace,
		name:       name,
		controller: controller,
	}
}

// ObserveDuration records the duration of a reconcile pass in seconds.
func (m *ReconcileMetrics) ObserveDuration(durationSeconds float64) {
	reconcileDurationHistogram.
		WithLabelValues(m.namespace, m.name, m.controller).
		Observe(durationSeconds)
}

// IncrementError increments the reconcile error counter with the given reason.
// Reason values should be low-cardinality strings (for example, "SecretNotFound").
func (m *ReconcileMetrics) IncrementError(reason string) {
	reconcileErrorsTotal.
		WithLabelValues(m.namespace, m.name, m.controller, reason).
		Inc()
}

// RecordPatch records one patch of a destination Secret that wrote fields keys.
func (m *ReconcileMetrics) RecordPatch(fields int) {
	secretPatchesTotal.
		WithLabelValues(m.namespace, m.name).
		Inc()
	fieldsUpdatedTotal.
		WithLabelValues(m.namespace, m.name).
		Add(float64(fields))
}

// Clear removes all series for this TradeSecret. Call it once the TradeSecret
// is gone to avoid leaving stale series behind.
func (m *ReconcileMetrics) Clear() {
	reconcileDurationHistogram.DeletePartialMatch(prometheus.Labels{"namespace": m.namespace, "name": m.name})
	reconcileErrorsTotal.DeletePartialMatch(prometheus.Labels{"namespace": m.namespace, "name": m.name})
	secretPatchesTotal.DeleteLabelValues(m.namespace, m.name)
	fieldsUpdatedTotal.DeleteLabelValues(m.namespace, m.name)
}
