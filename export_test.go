package k8st

import (
	"time"

	"k8s.io/client-go/kubernetes"
)

// ConfigSnapshot holds a copy of config fields for test assertions.
// Exported only via export_test.go so that the _test package can verify
// option closures actually mutate the config without accessing internals.
type ConfigSnapshot struct {
	KubeconfigPath     string
	KubectlBinary      string
	NodeImage          string
	NodeDaemonSet      string
	NodeContainer      string
	SystemNamespace    string
	PodStatusRetries   int
	PodStatusInterval  time.Duration
	DeleteRetries      int
	DeleteInterval     time.Duration
	RolloutGracePeriod time.Duration
	ServiceReplicas    int
	CleanConcurrency   int
	Clientset          kubernetes.Interface
}

// ApplyOptionsForTesting creates a default config, applies the given
// options, and returns a ConfigSnapshot of the result.
func ApplyOptionsForTesting(opts ...Option) ConfigSnapshot {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return ConfigSnapshot{
		KubeconfigPath:     cfg.kubeconfigPath,
		KubectlBinary:      cfg.kubectlBinary,
		NodeImage:          cfg.nodeImage,
		NodeDaemonSet:      cfg.nodeDaemonSet,
		NodeContainer:      cfg.nodeContainer,
		SystemNamespace:    cfg.systemNamespace,
		PodStatusRetries:   cfg.podStatusRetries,
		PodStatusInterval:  cfg.podStatusInterval,
		DeleteRetries:      cfg.deleteRetries,
		DeleteInterval:     cfg.deleteInterval,
		RolloutGracePeriod: cfg.rolloutGracePeriod,
		ServiceReplicas:    cfg.serviceReplicas,
		CleanConcurrency:   cfg.cleanConcurrency,
		Clientset:          cfg.clientset,
	}
}

// LockPathForTesting exposes lockPath so tests can assert the lock file
// derivation without duplicating the hashing.
func LockPathForTesting(kubeconfigPath string) string {
	cfg := defaultConfig()
	if kubeconfigPath != "" {
		cfg.kubeconfigPath = kubeconfigPath
	}
	return lockPath(cfg)
}
