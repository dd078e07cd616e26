package k8st

import (
	"fmt"
	"os"
	"time"

	"sigs.k8s.io/yaml"
)

// SuiteConfig is the optional YAML file form of the suite settings, letting
// CI pipelines retarget a suite (different node image, CLI binary, retry
// budget) without recompiling the tests. Zero-valued fields keep their
// defaults.
//
// Example:
//
//	nodeImage: calico/node:v3.29.0
//	kubectlBinary: /usr/local/bin/kubectl
//	podStatusRetries: 40
//	podStatusIntervalSeconds: 5
type SuiteConfig struct {
	KubeconfigPath           string `json:"kubeconfigPath,omitempty"`
	KubectlBinary            string `json:"kubectlBinary,omitempty"`
	NodeImage                string `json:"nodeImage,omitempty"`
	NodeDaemonSet            string `json:"nodeDaemonSet,omitempty"`
	NodeContainer            string `json:"nodeContainer,omitempty"`
	SystemNamespace          string `json:"systemNamespace,omitempty"`
	PodStatusRetries         int    `json:"podStatusRetries,omitempty"`
	PodStatusIntervalSeconds int    `json:"podStatusIntervalSeconds,omitempty"`
	DeleteRetries            int    `json:"deleteRetries,omitempty"`
	DeleteIntervalSeconds    int    `json:"deleteIntervalSeconds,omitempty"`
	ServiceReplicas          int    `json:"serviceReplicas,omitempty"`
}

// LoadSuiteConfig reads and parses a SuiteConfig YAML file.
func LoadSuiteConfig(path string) (SuiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SuiteConfig{}, fmt.Errorf("read suite config %s: %w", path, err)
	}
	var cfg SuiteConfig
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return SuiteConfig{}, fmt.Errorf("parse suite config %s: %w", path, err)
	}
	return cfg, nil
}

// Options converts the non-zero fields into the corresponding With*
// options, for passing to NewSuite or NewContext.
func (c SuiteConfig) Options() []Option {
	var opts []Option
	if c.KubeconfigPath != "" {
		opts = append(opts, WithKubeconfig(c.KubeconfigPath))
	}
	if c.KubectlBinary != "" {
		opts = append(opts, WithKubectlBinary(c.KubectlBinary))
	}
	if c.NodeImage != "" {
		opts = append(opts, WithNodeImage(c.NodeImage))
	}
	if c.NodeDaemonSet != "" {
		opts = append(opts, WithNodeDaemonSet(c.NodeDaemonSet))
	}
	if c.NodeContainer != "" {
		opts = append(opts, WithNodeContainer(c.NodeContainer))
	}
	if c.SystemNamespace != "" {
		opts = append(opts, WithSystemNamespace(c.SystemNamespace))
	}
	if c.PodStatusRetries > 0 {
		opts = append(opts, WithPodStatusRetries(c.PodStatusRetries))
	}
	if c.PodStatusIntervalSeconds > 0 {
		opts = append(opts, WithPodStatusInterval(time.Duration(c.PodStatusIntervalSeconds)*time.Second))
	}
	if c.DeleteRetries > 0 {
		opts = append(opts, WithDeleteRetries(c.DeleteRetries))
	}
	if c.DeleteIntervalSeconds > 0 {
		opts = append(opts, WithDeleteInterval(time.Duration(c.DeleteIntervalSeconds)*time.Second))
	}
	if c.ServiceReplicas > 0 {
		opts = append(opts, WithServiceReplicas(c.ServiceReplicas))
	}
	return opts
}
