// Package logging holds logging helpers shared by the controller.
package logging

import (
	"maps"
	"slices"

	"github.com/go-logr/logr"
)

// Audit event types.
const (
	// AuditEventSecretPatched is logged whenever the controller writes to a
	// destination Secret.
	AuditEventSecretPatched = "SecretPatched"
)

// LogAuditEvent logs a structured audit event for controller writes.
// Audit events are distinct from regular debug/info logs and are tagged
// with "audit=true" for easy filtering in log aggregation systems.
// Fields are emitted in key order.
func LogAuditEvent(logger logr.Logger, eventType string, fields map[string]string) {
	kvs := make([]any, 0, 4+2*len(fields))
	kvs = append(kvs, "audit", "true", "event_type", eventType)
	for _, key := range slices.Sorted(maps.Keys(fields)) {
		kvs = append(kvs, key, fields[key])
	}
	logger.Info("Controller audit event", kvs...)
}
