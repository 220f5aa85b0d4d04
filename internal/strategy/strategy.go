// Package strategy dispatches a TradeSecret's patch strategy to the code that
// computes the destination Secret's pending updates.
package strategy

import (
	"fmt"

	secretsv1alpha1 "github.com/bobbyrward/trade-secrets/api/v1alpha1"
	"github.com/bobbyrward/trade-secrets/internal/diff"
)

// Strategy computes the destination data updates for one variant of
// PatchStrategy. Implementations must be pure: no I/O, no mutation of the
// inputs.
type Strategy interface {
	Updates(spec secretsv1alpha1.PatchStrategy, source, dest map[string][]byte) (map[string][]byte, error)
}

// Func is an adapter to allow ordinary functions to be used as a Strategy.
type Func func(spec secretsv1alpha1.PatchStrategy, source, dest map[string][]byte) (map[string][]byte, error)

// Updates calls f(spec, source, dest).
func (f Func) Updates(spec secretsv1alpha1.PatchStrategy, source, dest map[string][]byte) (map[string][]byte, error) {
	return f(spec, source, dest)
}

// Copy copies individual fields according to the strategy's items.
var Copy Func = func(spec secretsv1alpha1.PatchStrategy, source, dest map[string][]byte) (map[string][]byte, error) {
	return diff.ComputeUpdates(spec.Items, source, dest)
}

// UnsupportedError is returned when no Strategy is registered for a type.
type UnsupportedError struct {
	Type secretsv1alpha1.StrategyType
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("unsupported patch strategy %q", e.Type)
}

// Registry maps strategy types to their implementation.
type Registry map[secretsv1alpha1.StrategyType]Strategy

// Default returns a registry holding every built-in strategy.
func Default() Registry {
	return Registry{
		secretsv1alpha1.StrategyTypeCopy: Copy,
	}
}

// Updates looks up the strategy for spec.Type and runs it.
func (r Registry) Updates(spec secretsv1alpha1.PatchStrategy, source, dest map[string][]byte) (map[string][]byte, error) {
	s, ok := r[spec.Type]
	if !ok {
		return nil, &UnsupportedError{Type: spec.Type}
	}
	return s.Updates(spec, source, dest)
}
