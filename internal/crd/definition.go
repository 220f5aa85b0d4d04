// Package crd owns the TradeSecret CustomResourceDefinition: the canonical
// definition exported by the CLI and the startup check that the installed
// definition matches what this build serves.
package crd

import (
	"fmt"
	"io"

	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/yaml"

	secretsv1alpha1 "github.com/bobbyrward/trade-secrets/api/v1alpha1"
	"github.com/bobbyrward/trade-secrets/internal/constants"
)

// Definition returns the TradeSecret CustomResourceDefinition served by this build.
func Definition() *apiextensionsv1.CustomResourceDefinition {
	return &apiextensionsv1.CustomResourceDefinition{
		TypeMeta: metav1.TypeMeta{
			APIVersion: apiextensionsv1.SchemeGroupVersion.String(),
			Kind:       "CustomResourceDefinition",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: constants.CRDName,
		},
		Spec: apiextensionsv1.CustomResourceDefinitionSpec{
			Group: constants.APIGroup,
			Names: apiextensionsv1.CustomResourceDefinitionNames{
				Plural:     constants.PluralName,
				Singular:   constants.SingularName,
				Kind:       constants.KindTradeSecret,
				ListKind:   constants.ListKind,
				ShortNames: []string{constants.ShortName},
			},
			Scope: apiextensionsv1.NamespaceScoped,
			Versions: []apiextensionsv1.CustomResourceDefinitionVersion{
				{
					Name:    constants.APIVersion,
					Served:  true,
					Storage: true,
					Schema: &apiextensionsv1.CustomResourceValidation{
						OpenAPIV3Schema: tradeSecretSchema(),
					},
					AdditionalPrinterColumns: []apiextensionsv1.CustomResourceColumnDefinition{
						{Name: "Source", Type: "string", JSONPath: ".spec.source"},
						{Name: "Destination", Type: "string", JSONPath: ".spec.destination"},
						{Name: "Age", Type: "date", JSONPath: ".metadata.creationTimestamp"},
					},
				},
			},
		},
	}
}

func nonEmptyString(description string) apiextensionsv1.JSONSchemaProps {
	return apiextensionsv1.JSONSchemaProps{
		Type:        "string",
		Description: description,
		MinLength:   ptr.To[int64](1),
	}
}

func tradeSecretSchema() *apiextensionsv1.JSONSchemaProps {
	item := apiextensionsv1.JSONSchemaProps{
		Type:        "object",
		Description: "PatchCopyItem maps one source Secret data key onto one destination Secret data key.",
		Required:    []string{"source", "destination"},
		Properties: map[string]apiextensionsv1.JSONSchemaProps{
			"source":      nonEmptyString("Source is the data key read from the source Secret. It must exist."),
			"destination": nonEmptyString("Destination is the data key written on the destination Secret."),
		},
	}

	strategy := apiextensionsv1.JSONSchemaProps{
		Type:        "object",
		Description: "Strategy selects how values are carried over.",
		Required:    []string{"type", "items"},
		Properties: map[string]apiextensionsv1.JSONSchemaProps{
			"type": {
				Type:        "string",
				Description: "Type selects the strategy.",
				Enum: []apiextensionsv1.JSON{
					{Raw: []byte(fmt.Sprintf("%q", secretsv1alpha1.StrategyTypeCopy))},
				},
			},
			"items": {
				Type:        "array",
				Description: "Items is the ordered list of field mappings used by the copy strategy.",
				MinItems:    ptr.To[int64](1),
				Items: &apiextensionsv1.JSONSchemaPropsOrArray{
					Schema: &item,
				},
			},
		},
	}

	return &apiextensionsv1.JSONSchemaProps{
		Type:        "object",
		Description: "TradeSecret copies fields from one Secret into another Secret in the same namespace.",
		Required:    []string{"spec"},
		Properties: map[string]apiextensionsv1.JSONSchemaProps{
			"apiVersion": {Type: "string"},
			"kind":       {Type: "string"},
			"metadata":   {Type: "object"},
			"spec": {
				Type:        "object",
				Description: "TradeSecretSpec defines the copy rule between two Secrets.",
				Required:    []string{"source", "destination", "strategy"},
				Properties: map[string]apiextensionsv1.JSONSchemaProps{
					"source":      nonEmptyString("Source is the name of the Secret values are read from."),
					"destination": nonEmptyString("Destination is the name of the Secret values are written to."),
					"strategy":    strategy,
				},
			},
		},
	}
}

// Export writes the CustomResourceDefinition to w as YAML.
func Export(w io.Writer) error {
	out, err := yaml.Marshal(Definition())
	if err != nil {
		return fmt.Errorf("failed to marshal crd: %w", err)
	}
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write crd: %w", err)
	}
	return nil
}
