//go:build integration
// +build integration

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

package tradesecret

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/client"

	secretsv1alpha1 "github.com/bobbyrward/trade-secrets/api/v1alpha1"
	"github.com/bobbyrward/trade-secrets/internal/crd"
)

var _ = Describe("TradeSecret Controller", func() {
	const (
		timeout  = 20 * time.Second
		interval = 250 * time.Millisecond
	)

	var namespace string

	BeforeEach(func() {
		ns := &corev1.Namespace{ObjectMeta: metav1.ObjectMeta{GenerateName: "trade-secrets-"}}
		Expect(k8sClient.Create(ctx, ns)).To(Succeed())
		namespace = ns.Name
	})

	createSecret := func(name string, data map[string]string) {
		secret := &corev1.Secret{
			ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
			StringData: data,
		}
		Expect(k8sClient.Create(ctx, secret)).To(Succeed())
	}

	destinationValue := func(key string) func() string {
		return func() string {
			secret := &corev1.Secret{}
			if err := k8sClient.Get(ctx, types.NamespacedName{Namespace: namespace, Name: "app-secret"}, secret); err != nil {
				return ""
			}
			return string(secret.Data[key])
		}
	}

	createTradeSecret := func(items ...secretsv1alpha1.PatchCopyItem) *secretsv1alpha1.TradeSecret {
		ts := &secretsv1alpha1.TradeSecret{
			ObjectMeta: metav1.ObjectMeta{Name: "app-token", Namespace: namespace},
			Spec: secretsv1alpha1.TradeSecretSpec{
				Source:      "upstream-secret",
				Destination: "app-secret",
				Strategy: secretsv1alpha1.PatchStrategy{
					Type:  secretsv1alpha1.StrategyTypeCopy,
					Items: items,
				},
			},
		}
		Expect(k8sClient.Create(ctx, ts)).To(Succeed())
		return ts
	}

	It("copies the mapped field into the destination Secret", func() {
		createSecret("upstream-secret", map[string]string{"token": "abc"})
		createSecret("app-secret", map[string]string{"keep": "me"})
		createTradeSecret(secretsv1alpha1.PatchCopyItem{Source: "token", Destination: "apiToken"})

		Eventually(destinationValue("apiToken"), timeout, interval).Should(Equal("abc"))
		Expect(destinationValue("keep")()).To(Equal("me"))
	})

	It("restores a destination field changed out of band", func() {
		createSecret("upstream-secret", map[string]string{"token": "abc"})
		createSecret("app-secret", nil)
		createTradeSecret(secretsv1alpha1.PatchCopyItem{Source: "token", Destination: "apiToken"})
		Eventually(destinationValue("apiToken"), timeout, interval).Should(Equal("abc"))

		secret := &corev1.Secret{}
		Expect(k8sClient.Get(ctx, types.NamespacedName{Namespace: namespace, Name: "app-secret"}, secret)).To(Succeed())
		patch := client.MergeFrom(secret.DeepCopy())
		secret.Data["apiToken"] = []byte("tampered")
		Expect(k8sClient.Patch(ctx, secret, patch)).To(Succeed())

		Eventually(destinationValue("apiToken"), timeout, interval).Should(Equal("abc"))
	})

	It("picks up a source Secret created after the TradeSecret", func() {
		createSecret("app-secret", nil)
		createTradeSecret(secretsv1alpha1.PatchCopyItem{Source: "token", Destination: "apiToken"})

		Consistently(destinationValue("apiToken"), integrationRequeueInterval, interval).Should(BeEmpty())

		createSecret("upstream-secret", map[string]string{"token": "late"})
		Eventually(destinationValue("apiToken"), timeout, interval).Should(Equal("late"))
	})

	It("never writes when a source field is missing", func() {
		createSecret("upstream-secret", map[string]string{"token": "abc"})
		createSecret("app-secret", map[string]string{"apiToken": "old"})
		createTradeSecret(secretsv1alpha1.PatchCopyItem{Source: "tokn", Destination: "apiToken"})

		Consistently(destinationValue("apiToken"), 2*integrationRequeueInterval, interval).Should(Equal("old"))
	})

	It("re-applies the CRD without disturbing the preflight check", func() {
		Expect(crd.Install(ctx, k8sClient)).To(Succeed())
		Expect(crd.Install(ctx, k8sClient)).To(Succeed())
		Expect(crd.Check(ctx, k8sClient)).To(Succeed())
	})
})
