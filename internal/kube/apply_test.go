package kube

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

type staticResolver struct {
	gvk schema.GroupVersionKind
	err error
}

func (r staticResolver) GroupVersionKindFor(runtime.Object) (schema.GroupVersionKind, error) {
	return r.gvk, r.err
}

func TestToApplyConfiguration_KeepsObjectGVK(t *testing.T) {
	secret := &corev1.Secret{
		TypeMeta:   metav1.TypeMeta{APIVersion: "v1", Kind: "Secret"},
		ObjectMeta: metav1.ObjectMeta{Name: "app-secret", Namespace: "default"},
	}

	cfg, err := ToApplyConfiguration(secret, nil)
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestToApplyConfiguration_ResolvesMissingGVK(t *testing.T) {
	secret := &corev1.Secret{ObjectMeta: metav1.ObjectMeta{Name: "app-secret"}}

	_, err := ToApplyConfiguration(secret, nil)
	assert.Error(t, err, "a resolver is required without a GVK")

	_, err = ToApplyConfiguration(secret, staticResolver{err: errors.New("unregistered")})
	assert.Error(t, err)

	cfg, err := ToApplyConfiguration(secret, staticResolver{gvk: corev1.SchemeGroupVersion.WithKind("Secret")})
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestToApplyConfiguration_NilObject(t *testing.T) {
	_, err := ToApplyConfiguration(nil, nil)
	assert.Error(t, err)
}
