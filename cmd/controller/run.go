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

// Package controller holds the command that runs the TradeSecret controller
// manager.
package controller

import (
	"context"
	"crypto/tls"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	corev1 "k8s.io/api/core/v1"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	"k8s.io/apimachinery/pkg/runtime"
	utilruntime "k8s.io/apimachinery/pkg/util/runtime"
	clientgoscheme "k8s.io/client-go/kubernetes/scheme"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/healthz"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
	"sigs.k8s.io/controller-runtime/pkg/metrics/filters"
	metricsserver "sigs.k8s.io/controller-runtime/pkg/metrics/server"

	secretsv1alpha1 "github.com/bobbyrward/trade-secrets/api/v1alpha1"
	"github.com/bobbyrward/trade-secrets/internal/constants"
	"github.com/bobbyrward/trade-secrets/internal/controller/tradesecret"
	"github.com/bobbyrward/trade-secrets/internal/crd"
	"github.com/bobbyrward/trade-secrets/internal/duration"
)

var (
	scheme   = runtime.NewScheme()
	setupLog = ctrl.Log.WithName("setup")
)

func init() {
	utilruntime.Must(clientgoscheme.AddToScheme(scheme))
	utilruntime.Must(apiextensionsv1.AddToScheme(scheme))
	utilruntime.Must(secretsv1alpha1.AddToScheme(scheme))
}

type runOptions struct {
	requeueTime             *duration.Value
	maxConcurrentReconciles int
	gracefulShutdownTimeout time.Duration

	metricsAddr     string
	metricsCertPath string
	metricsCertName string
	metricsCertKey  string
	secureMetrics   bool
	enableHTTP2     bool
	probeAddr       string
	leaderElection  bool

	zapOpts zap.Options
}

func newRunOptions() *runOptions {
	return &runOptions{
		requeueTime: duration.NewValue(constants.DefaultRequeueTime),
		zapOpts: zap.Options{
			Development: true,
		},
	}
}

func (o *runOptions) bindFlags(fs *pflag.FlagSet) {
	fs.Var(o.requeueTime, "requeue-time",
		"How long to wait before processing each TradeSecret again, as a positive <n>[s|m|h]. "+
			"Defaults to $"+constants.EnvRequeueTime+" when set.")
	fs.IntVar(&o.maxConcurrentReconciles, "max-concurrent-reconciles", constants.DefaultMaxConcurrentReconciles,
		"How many distinct TradeSecrets may be processed at the same time.")
	fs.DurationVar(&o.gracefulShutdownTimeout, "graceful-shutdown-timeout", constants.DefaultGracefulShutdownTimeout,
		"How long in-flight passes may run after a shutdown signal.")

	fs.StringVar(&o.metricsAddr, "metrics-bind-address", ":8443",
		"The address the metrics endpoint binds to. Use 0 to disable the metrics endpoint.")
	fs.BoolVar(&o.secureMetrics, "metrics-secure", true,
		"If set, the metrics endpoint is served securely via HTTPS. Use --metrics-secure=false to use HTTP instead.")
	fs.StringVar(&o.metricsCertPath, "metrics-cert-path", "",
		"The directory that contains the metrics server certificate.")
	fs.StringVar(&o.metricsCertName, "metrics-cert-name", "tls.crt", "The name of the metrics server certificate file.")
	fs.StringVar(&o.metricsCertKey, "metrics-cert-key", "tls.key", "The name of the metrics server key file.")
	fs.BoolVar(&o.enableHTTP2, "enable-http2", false,
		"If set, HTTP/2 will be enabled for the metrics server")
	fs.StringVar(&o.probeAddr, "health-probe-bind-address", ":8081", "The address the probe endpoint binds to.")
	fs.BoolVar(&o.leaderElection, "leader-elect", false,
		"Enable leader election for controller manager. "+
			"Enabling this will ensure there is only one active controller manager.")

	goFlags := flag.NewFlagSet("zap", flag.ContinueOnError)
	o.zapOpts.BindFlags(goFlags)
	fs.AddGoFlagSet(goFlags)
}

// applyEnv fills in --requeue-time from the environment when the flag was not
// given explicitly.
func (o *runOptions) applyEnv(fs *pflag.FlagSet, lookupEnv func(string) (string, bool)) error {
	if fs.Changed("requeue-time") {
		return nil
	}
	value, ok := lookupEnv(constants.EnvRequeueTime)
	if !ok {
		return nil
	}
	if err := o.requeueTime.Set(value); err != nil {
		return fmt.Errorf("invalid %s: %w", constants.EnvRequeueTime, err)
	}
	return nil
}

func (o *runOptions) controllerOptions() tradesecret.Options {
	return tradesecret.Options{
		RequeueInterval:         o.requeueTime.Duration(),
		MaxConcurrentReconciles: o.maxConcurrentReconciles,
	}
}

func (o *runOptions) managerOptions() ctrl.Options {
	var tlsOpts []func(*tls.Config)

	// if the enable-http2 flag is false (the default), http/2 should be disabled
	// due to its vulnerabilities. More specifically, disabling http/2 will
	// prevent from being vulnerable to the HTTP/2 Stream Cancellation and
	// Rapid Reset CVEs. For more information see:
	// - https://github.com/advisories/GHSA-qppj-fm5r-hxr3
	// - https://github.com/advisories/GHSA-4374-p667-p6c8
	if !o.enableHTTP2 {
		tlsOpts = append(tlsOpts, func(c *tls.Config) {
			setupLog.Info("disabling http/2")
			c.NextProtos = []string{"http/1.1"}
		})
	}

	metricsServerOptions := metricsserver.Options{
		BindAddress:   o.metricsAddr,
		SecureServing: o.secureMetrics,
		TLSOpts:       tlsOpts,
	}
	if o.secureMetrics {
		// FilterProvider is used to protect the metrics endpoint with authn/authz.
		metricsServerOptions.FilterProvider = filters.WithAuthenticationAndAuthorization
	}
	if len(o.metricsCertPath) > 0 {
		metricsServerOptions.CertDir = o.metricsCertPath
		metricsServerOptions.CertName = o.metricsCertName
		metricsServerOptions.KeyName = o.metricsCertKey
	}

	gracefulShutdownTimeout := o.gracefulShutdownTimeout

	return ctrl.Options{
		Scheme:                  scheme,
		Metrics:                 metricsServerOptions,
		HealthProbeBindAddress:  o.probeAddr,
		LeaderElection:          o.leaderElection,
		LeaderElectionID:        constants.LeaderElectionID,
		GracefulShutdownTimeout: &gracefulShutdownTimeout,
		// Secrets are read with direct GETs. Caching them would need cluster-wide
		// list/watch on every Secret and keep their contents in memory.
		Client: client.Options{
			Cache: &client.CacheOptions{
				DisableFor: []client.Object{&corev1.Secret{}},
			},
		},
	}
}

// Command returns the controller command and its run subcommand.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "controller",
		Short: "Run the TradeSecret controller",
	}
	cmd.AddCommand(runCommand())
	return cmd
}

func runCommand() *cobra.Command {
	o := newRunOptions()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the controller manager",
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return o.applyEnv(cmd.Flags(), os.LookupEnv)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctrl.SetLogger(zap.New(zap.UseFlagOptions(&o.zapOpts)))
			return run(cmd.Context(), o)
		},
	}
	o.bindFlags(cmd.Flags())

	return cmd
}

// run starts the manager and blocks until ctx is cancelled. The CRD is checked
// once before anything is started; a failed check aborts startup.
func run(ctx context.Context, o *runOptions) error {
	controllerOpts := o.controllerOptions()
	if err := controllerOpts.Validate(); err != nil {
		return err
	}

	cfg, err := ctrl.GetConfig()
	if err != nil {
		setupLog.Error(err, "unable to load kubeconfig")
		return err
	}

	mgr, err := ctrl.NewManager(cfg, o.managerOptions())
	if err != nil {
		setupLog.Error(err, "unable to create manager")
		return err
	}

	if err := crd.Check(ctx, mgr.GetAPIReader()); err != nil {
		setupLog.Error(err, "TradeSecret CRD preflight failed")
		return err
	}
	setupLog.Info("CRD is installed.", "crd", constants.CRDName)

	if err := (&tradesecret.TradeSecretReconciler{
		Client:  mgr.GetClient(),
		Scheme:  mgr.GetScheme(),
		Options: controllerOpts,
	}).SetupWithManager(mgr); err != nil {
		setupLog.Error(err, "unable to create controller", "controller", constants.ControllerNameTradeSecret)
		return err
	}

	if err := mgr.AddHealthzCheck("healthz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up health check")
		return err
	}
	if err := mgr.AddReadyzCheck("readyz", healthz.Ping); err != nil {
		setupLog.Error(err, "unable to set up ready check")
		return err
	}

	setupLog.Info("starting controller manager",
		"requeueTime", controllerOpts.RequeueInterval,
		"maxConcurrentReconciles", controllerOpts.MaxConcurrentReconciles,
	)
	if err := mgr.Start(ctx); err != nil {
		setupLog.Error(err, "problem running manager")
		return err
	}
	return nil
}
