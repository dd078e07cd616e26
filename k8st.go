package k8st

import (
	"fmt"

	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/projectcalico/k8st/internal/kubectl"
	"github.com/projectcalico/k8st/internal/logutil"
)

// TestContext is the per-test façade over one cluster. It holds a single
// cluster handle, created fresh by SetUp, and exposes the verification,
// creation, and deletion helpers concrete tests build on.
//
// A TestContext is not safe for concurrent use; each test owns its own.
type TestContext struct {
	cfg     config
	clock   *suiteClock
	cluster kubernetes.Interface
	cli     *kubectl.Runner
}

// NewContext returns a standalone TestContext with its own elapsed-time
// zero point. Tests that share a suite should use Suite.NewContext instead
// so banners share the suite clock. Call SetUp before any resource
// operation.
func NewContext(opts ...Option) *TestContext {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &TestContext{cfg: cfg, clock: newSuiteClock()}
}

// SetUp acquires a fresh cluster handle for this test and emits a blank log
// line so the test's first log starts on its own line. Must be called
// before any resource operation; calling it again discards the previous
// handle.
func (t *TestContext) SetUp() error {
	cluster, err := t.cfg.newClientset()
	if err != nil {
		return err
	}
	t.cluster = cluster
	t.cli = kubectl.New(t.cfg.kubectlBinary, t.cfg.kubeconfigPath)

	logutil.Logger().Info("")
	return nil
}

// Clientset returns the cluster handle acquired by SetUp.
// Returns ErrNoClusterHandle before SetUp.
//
//nolint:ireturn // kubernetes.Interface is the established client abstraction.
func (t *TestContext) Clientset() (kubernetes.Interface, error) {
	if t.cluster == nil {
		return nil, ErrNoClusterHandle
	}
	return t.cluster, nil
}

// newClientset builds a typed clientset. An injected clientset
// (WithClientset) wins; otherwise the kubeconfig is resolved from the
// explicit path, the KUBECONFIG environment variable, or the client
// library's default location, in that order.
//
//nolint:ireturn // kubernetes.Interface is the established client abstraction.
func (c config) newClientset() (kubernetes.Interface, error) {
	if c.clientset != nil {
		return c.clientset, nil
	}

	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	if c.kubeconfigPath != "" {
		loadingRules.ExplicitPath = c.kubeconfigPath
	}
	restCfg, err := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(
		loadingRules,
		&clientcmd.ConfigOverrides{},
	).ClientConfig()
	if err != nil {
		return nil, fmt.Errorf("load cluster credentials: %w", err)
	}

	cs, err := kubernetes.NewForConfig(restCfg)
	if err != nil {
		return nil, fmt.Errorf("build clientset: %w", err)
	}
	return cs, nil
}
