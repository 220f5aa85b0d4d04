/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package tradesecret

import (
	"fmt"
	"time"

	"github.com/bobbyrward/trade-secrets/internal/constants"
)

// Options is the controller's process-wide configuration. It is immutable
// once the manager starts.
type Options struct {
	// RequeueInterval is the fixed delay before a TradeSecret is processed
	// again, whatever the outcome of the previous pass.
	RequeueInterval time.Duration

	// MaxConcurrentReconciles bounds how many distinct TradeSecrets are
	// processed at the same time. A single TradeSecret is never processed
	// concurrently with itself.
	MaxConcurrentReconciles int
}

// DefaultOptions returns the options used when no flag overrides them.
func DefaultOptions() Options {
	return Options{
		RequeueInterval:         constants.RequeueStandard,
		MaxConcurrentReconciles: constants.DefaultMaxConcurrentReconciles,
	}
}

// Validate rejects options the control loop cannot run with.
func (o Options) Validate() error {
	if o.RequeueInterval <= 0 {
		return fmt.Errorf("requeue interval must be positive, got %s", o.RequeueInterval)
	}
	if o.MaxConcurrentReconciles < 1 {
		return fmt.Errorf("max concurrent reconciles must be at least 1, got %d", o.MaxConcurrentReconciles)
	}
	return nil
}
