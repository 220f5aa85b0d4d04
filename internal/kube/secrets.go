// Package kube provides Kubernetes-specific utilities and helpers.
package kube

import (
	"context"
	"encoding/json"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"
)

// GetSecret fetches the named Secret. The error from the API is returned
// unwrapped so callers can classify it with apierrors.
func GetSecret(ctx context.Context, c client.Reader, namespace, name string) (*corev1.Secret, error) {
	secret := &corev1.Secret{}
	if err := c.Get(ctx, types.NamespacedName{
		Namespace: namespace,
		Name:      name,
	}, secret); err != nil {
		return nil, err
	}
	return secret, nil
}

// secretDataPatch is the merge-patch document for a Secret's data field.
// Keys not listed are left untouched by the API server.
type secretDataPatch struct {
	Data map[string][]byte `json:"data"`
}

// SecretDataMergePatch serializes updates into a JSON merge-patch document of
// the form {"data": {"<key>": "<base64 value>"}}.
func SecretDataMergePatch(updates map[string][]byte) ([]byte, error) {
	doc, err := json.Marshal(secretDataPatch{Data: updates})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal secret data patch: %w", err)
	}
	return doc, nil
}

// PatchSecretData merges updates into the data of secret with a single JSON
// merge patch. An empty updates map issues no request.
func PatchSecretData(ctx context.Context, c client.Writer, secret *corev1.Secret, updates map[string][]byte) error {
	if len(updates) == 0 {
		return nil
	}

	doc, err := SecretDataMergePatch(updates)
	if err != nil {
		return err
	}

	if err := c.Patch(ctx, secret, client.RawPatch(types.MergePatchType, doc)); err != nil {
		return fmt.Errorf("failed to patch Secret %s/%s: %w", secret.Namespace, secret.Name, err)
	}
	return nil
}
