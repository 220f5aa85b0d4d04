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
	"time"

	"golang.org/x/time/rate"
	"k8s.io/client-go/util/workqueue"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/controller"

	secretsv1alpha1 "github.com/bobbyrward/trade-secrets/api/v1alpha1"
	"github.com/bobbyrward/trade-secrets/internal/constants"
	controllerutil "github.com/bobbyrward/trade-secrets/internal/controller"
)

// SetupWithManager sets up the controller with the Manager.
//
// Only TradeSecrets are watched. Secrets are read directly on every pass, so
// the controller needs no list/watch permission on them; changes to either
// Secret are picked up by the fixed requeue.
func (r *TradeSecretReconciler) SetupWithManager(mgr ctrl.Manager) error {
	if err := r.Options.Validate(); err != nil {
		return err
	}
	if r.Recorder == nil {
		r.Recorder = mgr.GetEventRecorderFor(constants.ControllerNameTradeSecret)
	}
	r.syncer = NewSyncer(r.Client, r.Recorder, r.Strategies, r.Options.RequeueInterval)

	return ctrl.NewControllerManagedBy(mgr).
		For(&secretsv1alpha1.TradeSecret{}).
		WithEventFilter(controllerutil.TradeSecretPredicate()).
		WithOptions(controller.Options{
			MaxConcurrentReconciles: r.Options.MaxConcurrentReconciles,
			RateLimiter:             newRateLimiter(),
		}).
		Named(constants.ControllerNameTradeSecret).
		Complete(r)
}

// newRateLimiter paces requests added with AddRateLimited. Reconcile never
// returns an error, so in practice this only applies to recovered panics.
func newRateLimiter() workqueue.TypedRateLimiter[ctrl.Request] {
	return workqueue.NewTypedMaxOfRateLimiter(
		workqueue.NewTypedItemExponentialFailureRateLimiter[ctrl.Request](1*time.Second, 60*time.Second),
		&workqueue.TypedBucketRateLimiter[ctrl.Request]{Limiter: rate.NewLimiter(rate.Limit(10), 100)},
	)
}
