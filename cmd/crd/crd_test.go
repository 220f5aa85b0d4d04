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

package crd

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/client/fake"
	"sigs.k8s.io/yaml"

	operatorerrors "github.com/bobbyrward/trade-secrets/internal/errors"
	definition "github.com/bobbyrward/trade-secrets/internal/crd"
)

func fakeClient(objs ...client.Object) clientFunc {
	scheme := runtime.NewScheme()
	_ = apiextensionsv1.AddToScheme(scheme)
	return func() (client.Client, error) {
		return fake.NewClientBuilder().WithScheme(scheme).WithObjects(objs...).Build(), nil
	}
}

func TestExportCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := exportCommand()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	var got apiextensionsv1.CustomResourceDefinition
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, definition.Definition().Name, got.Name)
}

func TestCheckCommand_Installed(t *testing.T) {
	var out bytes.Buffer
	cmd := checkCommand(fakeClient(definition.Definition()))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, "CRD is installed.\n", out.String())
}

func TestCheckCommand_Missing(t *testing.T) {
	var out bytes.Buffer
	cmd := checkCommand(fakeClient())
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, operatorerrors.ErrDefinition))
	assert.Empty(t, out.String())
}

func TestCheckCommand_ClientError(t *testing.T) {
	cmd := checkCommand(func() (client.Client, error) {
		return nil, errors.New("no kubeconfig")
	})
	cmd.SetArgs([]string{})

	assert.EqualError(t, cmd.ExecuteContext(context.Background()), "no kubeconfig")
}

func TestInstallCommand_ClientError(t *testing.T) {
	var out bytes.Buffer
	cmd := installCommand(func() (client.Client, error) {
		return nil, errors.New("no kubeconfig")
	})
	cmd.SetOut(&out)
	cmd.SetArgs([]string{})

	assert.EqualError(t, cmd.ExecuteContext(context.Background()), "no kubeconfig")
	assert.Empty(t, out.String())
}

func TestCommand_CheckFailurePrintsNothing(t *testing.T) {
	var out bytes.Buffer
	cmd := Command()
	for _, sub := range cmd.Commands() {
		if sub.Name() == "check" {
			cmd.RemoveCommand(sub)
		}
	}
	cmd.AddCommand(checkCommand(fakeClient()))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"check"})

	require.ErrorIs(t, cmd.ExecuteContext(context.Background()), operatorerrors.ErrDefinition)
	assert.Empty(t, out.String())
}
