package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/controller-runtime/pkg/event"

	secretsv1alpha1 "github.com/bobbyrward/trade-secrets/api/v1alpha1"
)

func tradeSecret(generation int64, labels, annotations map[string]string) *secretsv1alpha1.TradeSecret {
	return &secretsv1alpha1.TradeSecret{
		ObjectMeta: metav1.ObjectMeta{
			Name:        "rule",
			Namespace:   "default",
			Generation:  generation,
			Labels:      labels,
			Annotations: annotations,
		},
	}
}

func TestTradeSecretPredicate_Update(t *testing.T) {
	p := TradeSecretPredicate()

	tests := []struct {
		name string
		old  *secretsv1alpha1.TradeSecret
		new  *secretsv1alpha1.TradeSecret
		want bool
	}{
		{
			name: "spec change bumps generation",
			old:  tradeSecret(1, nil, nil),
			new:  tradeSecret(2, nil, nil),
			want: true,
		},
		{
			name: "label change",
			old:  tradeSecret(1, map[string]string{"a": "1"}, nil),
			new:  tradeSecret(1, map[string]string{"a": "2"}, nil),
			want: true,
		},
		{
			name: "annotation change",
			old:  tradeSecret(1, nil, nil),
			new:  tradeSecret(1, nil, map[string]string{"note": "x"}),
			want: true,
		},
		{
			name: "metadata-only noise",
			old:  tradeSecret(1, map[string]string{"a": "1"}, nil),
			new:  tradeSecret(1, map[string]string{"a": "1"}, nil),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Update(event.UpdateEvent{ObjectOld: tt.old, ObjectNew: tt.new}))
		})
	}
}

func TestTradeSecretPredicate_CreateDeleteGeneric(t *testing.T) {
	p := TradeSecretPredicate()
	obj := tradeSecret(1, nil, nil)

	assert.True(t, p.Create(event.CreateEvent{Object: obj}))
	assert.True(t, p.Delete(event.DeleteEvent{Object: obj}))
	assert.True(t, p.Generic(event.GenericEvent{Object: obj}))
}
