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

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// StrategyType is the tag of a PatchStrategy variant.
// +kubebuilder:validation:Enum=copy
type StrategyType string

const (
	// StrategyTypeCopy copies individual data fields from the source Secret
	// into the destination Secret.
	StrategyTypeCopy StrategyType = "copy"
)

// PatchCopyItem maps one source Secret data key onto one destination Secret data key.
type PatchCopyItem struct {
	// Source is the data key read from the source Secret. It must exist.
	// +kubebuilder:validation:MinLength=1
	Source string `json:"source"`

	// Destination is the data key written on the destination Secret. It is
	// created when absent.
	// +kubebuilder:validation:MinLength=1
	Destination string `json:"destination"`
}

// PatchStrategy describes how the destination Secret is derived from the source
// Secret. Type selects the variant; the remaining fields belong to that variant.
type PatchStrategy struct {
	// Type selects the strategy.
	Type StrategyType `json:"type"`

	// Items is the ordered list of field mappings used by the copy strategy.
	// When two items share a destination key, the later item wins.
	// +kubebuilder:validation:MinItems=1
	Items []PatchCopyItem `json:"items"`
}

// TradeSecretSpec defines the copy rule between two Secrets in the
// TradeSecret's namespace.
type TradeSecretSpec struct {
	// Source is the name of the Secret values are read from.
	// +kubebuilder:validation:MinLength=1
	Source string `json:"source"`

	// Destination is the name of the Secret values are written to. It must
	// already exist; the controller never creates it.
	// +kubebuilder:validation:MinLength=1
	Destination string `json:"destination"`

	// Strategy selects how values are carried over.
	Strategy PatchStrategy `json:"strategy"`
}

// +kubebuilder:object:root=true
// +kubebuilder:resource:shortName=trades
// +kubebuilder:printcolumn:name="Source",type=string,JSONPath=`.spec.source`
// +kubebuilder:printcolumn:name="Destination",type=string,JSONPath=`.spec.destination`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// TradeSecret is the Schema for the tradesecrets API.
type TradeSecret struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec TradeSecretSpec `json:"spec"`
}

// +kubebuilder:object:root=true

// TradeSecretList contains a list of TradeSecret.
type TradeSecretList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []TradeSecret `json:"items"`
}

func init() {
	SchemeBuilder.Register(&TradeSecret{}, &TradeSecretList{})
}
