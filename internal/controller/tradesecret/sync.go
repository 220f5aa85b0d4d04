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
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/go-logr/logr"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/client-go/tools/record"
	"sigs.k8s.io/controller-runtime/pkg/client"

	secretsv1alpha1 "github.com/bobbyrward/trade-secrets/api/v1alpha1"
	"github.com/bobbyrward/trade-secrets/internal/constants"
	controllerutil "github.com/bobbyrward/trade-secrets/internal/controller"
	operatorerrors "github.com/bobbyrward/trade-secrets/internal/errors"
	"github.com/bobbyrward/trade-secrets/internal/kube"
	"github.com/bobbyrward/trade-secrets/internal/logging"
	"github.com/bobbyrward/trade-secrets/internal/reconcile"
	"github.com/bobbyrward/trade-secrets/internal/strategy"
)

// Syncer runs a single pass of a TradeSecret: read both Secrets, compute the
// pending updates and write them to the destination with at most one patch.
type Syncer struct {
	client          client.Client
	recorder        record.EventRecorder
	strategies      strategy.Registry
	requeueInterval time.Duration
}

// NewSyncer constructs a Syncer. A nil registry means strategy.Default().
func NewSyncer(c client.Client, recorder record.EventRecorder, strategies strategy.Registry, requeueInterval time.Duration) *Syncer {
	if strategies == nil {
		strategies = strategy.Default()
	}
	return &Syncer{
		client:          c,
		recorder:        recorder,
		strategies:      strategies,
		requeueInterval: requeueInterval,
	}
}

// Sync brings the destination Secret of ts in line with its source Secret.
//
// On success the result always asks for a requeue after the configured
// interval, whether or not anything was written. On failure the returned
// error carries one of the kinds in internal/errors and the result is empty;
// scheduling the retry is the caller's job.
func (s *Syncer) Sync(ctx context.Context, logger logr.Logger, ts *secretsv1alpha1.TradeSecret) (reconcile.Result, error) {
	namespace := ts.Namespace

	source, err := kube.GetSecret(ctx, s.client, namespace, ts.Spec.Source)
	if err != nil {
		return reconcile.Result{}, &operatorerrors.SecretNotFoundError{
			Role: operatorerrors.SecretRoleSource,
			Name: ts.Spec.Source,
			Err:  err,
		}
	}

	destination, err := kube.GetSecret(ctx, s.client, namespace, ts.Spec.Destination)
	if err != nil {
		return reconcile.Result{}, &operatorerrors.SecretNotFoundError{
			Role: operatorerrors.SecretRoleDestination,
			Name: ts.Spec.Destination,
			Err:  err,
		}
	}

	updates, err := s.strategies.Updates(ts.Spec.Strategy, source.Data, destination.Data)
	if err != nil {
		return reconcile.Result{}, operatorerrors.WrapUnknown(err)
	}

	if len(updates) == 0 {
		logger.Info("Destination already matches source. No updates needed.")
		return reconcile.Result{RequeueAfter: s.requeueInterval}, nil
	}

	keys := slices.Sorted(maps.Keys(updates))
	logger.Info("Updating destination secret", "secret", destination.Name, "keys", keys)

	if err := kube.PatchSecretData(ctx, s.client, destination, updates); err != nil {
		logger.Error(err, "Failed to patch destination secret", "secret", destination.Name)
		return reconcile.Result{}, operatorerrors.WrapUnknown(err)
	}

	s.recordPatch(logger, ts, destination, keys)

	return reconcile.Result{RequeueAfter: s.requeueInterval, UpdatedKeys: keys}, nil
}

func (s *Syncer) recordPatch(logger logr.Logger, ts *secretsv1alpha1.TradeSecret, destination *corev1.Secret, keys []string) {
	controllerutil.NewReconcileMetrics(ts.Namespace, ts.Name, constants.ControllerNameTradeSecret).RecordPatch(len(keys))

	logging.LogAuditEvent(logger, logging.AuditEventSecretPatched, map[string]string{
		"trade_secret": ts.Name,
		"namespace":    ts.Namespace,
		"source":       ts.Spec.Source,
		"destination":  destination.Name,
		"keys":         strings.Join(keys, ","),
	})

	if s.recorder != nil {
		s.recorder.Eventf(ts, corev1.EventTypeNormal, constants.EventReasonSecretUpdated,
			"Updated keys %s on Secret %s", strings.Join(keys, ","), destination.Name)
	}
}
