package reconcile

import "time"

// Result is the outcome of a single TradeSecret pass.
type Result struct {
	// RequeueAfter is the delay before the same TradeSecret is processed again.
	// A zero RequeueAfter means "no requeue requested".
	RequeueAfter time.Duration

	// UpdatedKeys lists, in sorted order, the destination keys written by the
	// pass. It is empty when the destination already matched.
	UpdatedKeys []string
}

// Changed reports whether the pass wrote to the destination Secret.
func (r Result) Changed() bool {
	return len(r.UpdatedKeys) > 0
}
