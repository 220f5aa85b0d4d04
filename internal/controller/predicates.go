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

package controller

import (
	"k8s.io/apimachinery/pkg/api/equality"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/event"
	"sigs.k8s.io/controller-runtime/pkg/predicate"
)

// TradeSecretPredicate filters TradeSecret events to the changes that can
// alter the outcome of a pass.
//
// The predicate allows reconciliation when:
//   - The resource is created
//   - The resource is deleted
//   - The Spec changes (detected via Generation change)
//   - Metadata labels or annotations change
//
// Updates that touch nothing else (for example, managedFields churn) are
// dropped. The fixed requeue cadence still revisits every TradeSecret, so a
// dropped event never leaves a rule unreconciled.
func TradeSecretPredicate() predicate.Predicate {
	return predicate.Funcs{
		CreateFunc: func(e event.CreateEvent) bool {
			return true
		},
		DeleteFunc: func(e event.DeleteEvent) bool {
			return true
		},
		UpdateFunc: func(e event.UpdateEvent) bool {
			oldObj, ok := e.ObjectOld.(metav1.Object)
			if !ok {
				return true
			}
			newObj, ok := e.ObjectNew.(metav1.Object)
			if !ok {
				return true
			}

			if oldObj.GetGeneration() != newObj.GetGeneration() {
				return true
			}

			if !equality.Semantic.DeepEqual(oldObj.GetLabels(), newObj.GetLabels()) {
				return true
			}

			return !equality.Semantic.DeepEqual(oldObj.GetAnnotations(), newObj.GetAnnotations())
		},
		GenericFunc: func(e event.GenericEvent) bool {
			return true
		},
	}
}
