package controller

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestReconcileMetrics_NoPanic(t *testing.T) {
	m := NewReconcileMetrics("ns", "name", "ctrl")

	// These calls should not panic and will register/update metrics for the
	// given label set.
	m.ObserveDuration(0.5)
	m.ObserveDuration(1.0)
	m.IncrementError("Unknown")
	m.Clear()
}

func TestReconcileMetrics_RecordPatch(t *testing.T) {
	m := NewReconcileMetrics("metrics-ns", "patch", "ctrl")
	defer m.Clear()

	m.RecordPatch(2)
	m.RecordPatch(1)

	assert.Equal(t, float64(2), testutil.ToFloat64(secretPatchesTotal.WithLabelValues("metrics-ns", "patch")))
	assert.Equal(t, float64(3), testutil.ToFloat64(fieldsUpdatedTotal.WithLabelValues("metrics-ns", "patch")))
}

func TestReconcileMetrics_IncrementError(t *testing.T) {
	m := NewReconcileMetrics("metrics-ns", "errors", "ctrl")
	defer m.Clear()

	m.IncrementError("SourceFieldMissing")
	m.IncrementError("SourceFieldMissing")
	m.IncrementError("SecretNotFound")

	assert.Equal(t, float64(2), testutil.ToFloat64(reconcileErrorsTotal.WithLabelValues("metrics-ns", "errors", "ctrl", "SourceFieldMissing")))
	assert.Equal(t, float64(1), testutil.ToFloat64(reconcileErrorsTotal.WithLabelValues("metrics-ns", "errors", "ctrl", "SecretNotFound")))
}
