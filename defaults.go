package k8st

import "time"

// Default configuration values for NewSuite and NewContext.
// These constants are exported so callers can reference the defaults when
// building custom configurations relative to them.
const (
	// DefaultNodeImage is the image the networking plugin's node daemon set
	// is pinned to by Suite.EnsureNodeImage.
	DefaultNodeImage = "calico/node:latest-amd64"

	// DefaultNodeDaemonSet is the name of the node daemon set.
	DefaultNodeDaemonSet = "calico-node"

	// DefaultNodeContainer is the container within the daemon set's pod
	// template whose image is checked and pinned.
	DefaultNodeContainer = "calico-node"

	// DefaultSystemNamespace is the namespace hosting the node daemon set
	// and the pods whose status gates suite initialization.
	DefaultSystemNamespace = "kube-system"

	// DefaultKubectlBinary is the binary name used to locate the cluster
	// CLI in PATH.
	DefaultKubectlBinary = "kubectl"

	// DefaultPodStatusRetries is the number of pod-status polls performed
	// by WaitForPodsRunning before giving up.
	DefaultPodStatusRetries = 20

	// DefaultPodStatusInterval is the fixed sleep between pod-status polls.
	DefaultPodStatusInterval = 3 * time.Second

	// DefaultDeleteRetries is the number of confirmation polls performed by
	// DeleteAndConfirm before returning ErrStillPresent.
	DefaultDeleteRetries = 10

	// DefaultDeleteInterval is the fixed sleep between confirmation polls.
	DefaultDeleteInterval = 10 * time.Second

	// DefaultRolloutGracePeriod is the pause between updating the node
	// daemon set and the first pod-status poll, giving the rollout time to
	// begin terminating old pods.
	DefaultRolloutGracePeriod = 3 * time.Second

	// DefaultServiceReplicas is the deployment replica count used by
	// CreateService.
	DefaultServiceReplicas = 2

	// DefaultCleanConcurrency bounds how many namespaces CleanNamespaces
	// deletes in parallel.
	DefaultCleanConcurrency = 10
)
