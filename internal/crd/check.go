package crd

import (
	"context"
	"fmt"

	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	"github.com/bobbyrward/trade-secrets/internal/constants"
	operatorerrors "github.com/bobbyrward/trade-secrets/internal/errors"
)

// Check verifies that the TradeSecret CRD is installed and declares exactly
// one version, the one this build serves. Any failure is returned as a
// *operatorerrors.DefinitionError.
func Check(ctx context.Context, reader client.Reader) error {
	installed := &apiextensionsv1.CustomResourceDefinition{}
	if err := reader.Get(ctx, types.NamespacedName{Name: constants.CRDName}, installed); err != nil {
		reason := "could not get the crd"
		if apierrors.IsNotFound(err) || operatorerrors.IsCRDMissingError(err) {
			reason = "could not find the crd"
		}
		return &operatorerrors.DefinitionError{Name: constants.CRDName, Reason: reason, Err: err}
	}

	versions := installed.Spec.Versions
	if len(versions) == 0 {
		return &operatorerrors.DefinitionError{Name: constants.CRDName, Reason: "the crd is missing the version field"}
	}
	if len(versions) != 1 {
		return &operatorerrors.DefinitionError{Name: constants.CRDName, Reason: "only expected one version in the crd"}
	}
	if versions[0].Name != constants.APIVersion {
		return &operatorerrors.DefinitionError{
			Name:   constants.CRDName,
			Reason: fmt.Sprintf("crd is not the expected version %s (found %s)", constants.APIVersion, versions[0].Name),
		}
	}

	return nil
}
