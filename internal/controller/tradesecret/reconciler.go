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
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/log"

	secretsv1alpha1 "github.com/bobbyrward/trade-secrets/api/v1alpha1"
	"github.com/bobbyrward/trade-secrets/internal/constants"
	controllerutil "github.com/bobbyrward/trade-secrets/internal/controller"
	operatorerrors "github.com/bobbyrward/trade-secrets/internal/errors"
	"github.com/bobbyrward/trade-secrets/internal/strategy"
)

// TradeSecretReconciler reconciles a TradeSecret object.
type TradeSecretReconciler struct {
	client.Client
	Scheme   *runtime.Scheme
	Recorder record.EventRecorder
	Options  Options

	// Strategies defaults to strategy.Default() when nil.
	Strategies strategy.Registry

	syncer *Syncer
}

// +kubebuilder:rbac:groups=secrets.ohnozombi.es,resources=tradesecrets,verbs=get;list;watch
// +kubebuilder:rbac:groups="",resources=secrets,verbs=get;patch
// +kubebuilder:rbac:groups="",resources=events,verbs=create;patch
// +kubebuilder:rbac:groups=apiextensions.k8s.io,resources=customresourcedefinitions,verbs=get

// Reconcile runs one pass for the TradeSecret named by req.
//
// Every outcome other than "the TradeSecret is gone" asks for exactly one
// requeue after Options.RequeueInterval. Errors never reach controller-runtime,
// so its exponential backoff is not used.
func (r *TradeSecretReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	logger := log.FromContext(ctx).WithName(constants.ControllerNameTradeSecret).WithValues(
		"trade_secret", req.Name,
		"namespace", req.Namespace,
	)
	metrics := controllerutil.NewReconcileMetrics(req.Namespace, req.Name, constants.ControllerNameTradeSecret)

	ts := &secretsv1alpha1.TradeSecret{}
	if err := r.Get(ctx, req.NamespacedName, ts); err != nil {
		if apierrors.IsNotFound(err) {
			logger.V(1).Info("TradeSecret not found; assuming it was deleted")
			metrics.Clear()
			return ctrl.Result{}, nil
		}
		return r.errorPolicy(logger, metrics, nil, operatorerrors.WrapUnknown(fmt.Errorf("failed to get TradeSecret: %w", err)))
	}

	logger = logger.WithValues("source", ts.Spec.Source, "destination", ts.Spec.Destination)
	logger.Info("Reconciling TradeSecret")

	start := time.Now()
	result, err := r.getSyncer().Sync(ctx, logger, ts)
	metrics.ObserveDuration(time.Since(start).Seconds())
	if err != nil {
		return r.errorPolicy(logger, metrics, ts, err)
	}

	if result.Changed() {
		logger.V(1).Info("TradeSecret synchronized", "keys", result.UpdatedKeys)
	}

	return ctrl.Result{RequeueAfter: result.RequeueAfter}, nil
}

// errorPolicy turns a failed pass into a single retry after the standard
// interval. It never returns an error.
func (r *TradeSecretReconciler) errorPolicy(logger logr.Logger, metrics *controllerutil.ReconcileMetrics, ts *secretsv1alpha1.TradeSecret, err error) (ctrl.Result, error) {
	reason := operatorerrors.Reason(err)

	logger.Error(err, "Reconciliation failed", "reason", reason, "requeueAfter", r.Options.RequeueInterval)
	metrics.IncrementError(reason)

	if ts != nil && r.Recorder != nil {
		r.Recorder.Event(ts, corev1.EventTypeWarning, reason, err.Error())
	}

	return ctrl.Result{RequeueAfter: r.Options.RequeueInterval}, nil
}

func (r *TradeSecretReconciler) getSyncer() *Syncer {
	if r.syncer == nil {
		r.syncer = NewSyncer(r.Client, r.Recorder, r.Strategies, r.Options.RequeueInterval)
	}
	return r.syncer
}
