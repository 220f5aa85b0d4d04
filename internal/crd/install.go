package crd

import (
	"context"

	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/bobbyrward/trade-secrets/internal/constants"
	"github.com/bobbyrward/trade-secrets/internal/kube"
)

// Install server-side applies Definition(). Running it again against an
// up-to-date cluster is a no-op.
func Install(ctx context.Context, c client.Client) error {
	return kube.Apply(ctx, c, Definition(), constants.FieldOwner)
}
