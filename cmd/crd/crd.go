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

// Package crd holds the commands that export and verify the TradeSecret
// CustomResourceDefinition.
package crd

import (
	"fmt"

	"github.com/spf13/cobra"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"

	definition "github.com/bobbyrward/trade-secrets/internal/crd"
)

// clientFunc returns the client used to reach the cluster.
type clientFunc func() (client.Client, error)

// Command returns the crd command and its subcommands.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crd",
		Short: "Manage the TradeSecret CustomResourceDefinition",
	}

	cmd.AddCommand(exportCommand())
	cmd.AddCommand(checkCommand(newClient))
	cmd.AddCommand(installCommand(newClient))

	return cmd
}

func exportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the CRD as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return definition.Export(cmd.OutOrStdout())
		},
	}
}

func checkCommand(newClient clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:          "check",
		Short:        "Verify the CRD is installed at the expected version",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			if err := definition.Check(cmd.Context(), c); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "CRD is installed.")
			return err
		},
	}
}

func installCommand(newClient clientFunc) *cobra.Command {
	return &cobra.Command{
		Use:          "install",
		Short:        "Install or update the CRD with server-side apply",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := newClient()
			if err != nil {
				return err
			}
			if err := definition.Install(cmd.Context(), c); err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "CRD %s applied.\n", definition.Definition().Name)
			return err
		},
	}
}

func newClient() (client.Client, error) {
	cfg, err := ctrl.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load kubeconfig: %w", err)
	}

	scheme := runtime.NewScheme()
	if err := apiextensionsv1.AddToScheme(scheme); err != nil {
		return nil, err
	}

	c, err := client.New(cfg, client.Options{Scheme: scheme})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return c, nil
}
