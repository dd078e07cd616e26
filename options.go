package k8st

import (
	"fmt"
	"time"

	"k8s.io/client-go/kubernetes"
)

// requirePositive panics if v <= 0 with a descriptive message.
func requirePositive[T int | time.Duration](name string, v T) {
	if v <= 0 {
		panic(fmt.Sprintf("k8st: %s must be greater than 0, got %v", name, v))
	}
}

// requireNonEmpty panics if s is empty with a descriptive message.
func requireNonEmpty(name, s string) {
	if s == "" {
		panic(fmt.Sprintf("k8st: %s must not be empty", name))
	}
}

// config holds the resolved settings shared by a Suite and the
// TestContexts it spawns.
type config struct {
	kubeconfigPath     string
	kubectlBinary      string
	nodeImage          string
	nodeDaemonSet      string
	nodeContainer      string
	systemNamespace    string
	podStatusRetries   int
	podStatusInterval  time.Duration
	deleteRetries      int
	deleteInterval     time.Duration
	rolloutGracePeriod time.Duration
	serviceReplicas    int
	cleanConcurrency   int

	// clientset, when set, bypasses kubeconfig loading entirely. Used to
	// point the helpers at a caller-managed (or fake) clientset.
	clientset kubernetes.Interface
}

func defaultConfig() config {
	return config{
		kubectlBinary:      DefaultKubectlBinary,
		nodeImage:          DefaultNodeImage,
		nodeDaemonSet:      DefaultNodeDaemonSet,
		nodeContainer:      DefaultNodeContainer,
		systemNamespace:    DefaultSystemNamespace,
		podStatusRetries:   DefaultPodStatusRetries,
		podStatusInterval:  DefaultPodStatusInterval,
		deleteRetries:      DefaultDeleteRetries,
		deleteInterval:     DefaultDeleteInterval,
		rolloutGracePeriod: DefaultRolloutGracePeriod,
		serviceReplicas:    DefaultServiceReplicas,
		cleanConcurrency:   DefaultCleanConcurrency,
	}
}

// Option configures a Suite or TestContext during construction.
//
// Several With* functions panic on invalid input (empty paths, non-positive
// counts or durations). Option values are typically compile-time constants,
// so an invalid value is a programmer error; failing fast during
// initialization mirrors [regexp.MustCompile].
type Option func(*config)

// WithKubeconfig sets an explicit kubeconfig path, overriding the KUBECONFIG
// environment variable and the client's default resolution.
// Panics if path is empty.
func WithKubeconfig(path string) Option {
	requireNonEmpty("kubeconfig path", path)
	return func(c *config) {
		c.kubeconfigPath = path
	}
}

// WithKubectlBinary sets the cluster CLI binary used by DeleteAndConfirm.
// Panics if binPath is empty.
func WithKubectlBinary(binPath string) Option {
	requireNonEmpty("kubectl binary path", binPath)
	return func(c *config) {
		c.kubectlBinary = binPath
	}
}

// WithNodeImage sets the image Suite.EnsureNodeImage pins the node daemon
// set's container to. Panics if image is empty.
func WithNodeImage(image string) Option {
	requireNonEmpty("node image", image)
	return func(c *config) {
		c.nodeImage = image
	}
}

// WithNodeDaemonSet sets the name of the node daemon set checked by
// Suite.EnsureNodeImage. Panics if name is empty.
func WithNodeDaemonSet(name string) Option {
	requireNonEmpty("node daemon set name", name)
	return func(c *config) {
		c.nodeDaemonSet = name
	}
}

// WithNodeContainer sets the container name within the node daemon set's
// pod template whose image is pinned. Panics if name is empty.
func WithNodeContainer(name string) Option {
	requireNonEmpty("node container name", name)
	return func(c *config) {
		c.nodeContainer = name
	}
}

// WithSystemNamespace sets the namespace hosting the node daemon set.
// Panics if namespace is empty.
func WithSystemNamespace(namespace string) Option {
	requireNonEmpty("system namespace", namespace)
	return func(c *config) {
		c.systemNamespace = namespace
	}
}

// WithPodStatusRetries sets the number of pod-status polls performed by
// WaitForPodsRunning. Panics if n <= 0.
func WithPodStatusRetries(n int) Option {
	requirePositive("pod status retries", n)
	return func(c *config) {
		c.podStatusRetries = n
	}
}

// WithPodStatusInterval sets the fixed sleep between pod-status polls.
// Panics if d <= 0.
func WithPodStatusInterval(d time.Duration) Option {
	requirePositive("pod status interval", d)
	return func(c *config) {
		c.podStatusInterval = d
	}
}

// WithDeleteRetries sets the number of confirmation polls performed by
// DeleteAndConfirm. Panics if n <= 0.
func WithDeleteRetries(n int) Option {
	requirePositive("delete retries", n)
	return func(c *config) {
		c.deleteRetries = n
	}
}

// WithDeleteInterval sets the fixed sleep between delete-confirmation
// polls. Panics if d <= 0.
func WithDeleteInterval(d time.Duration) Option {
	requirePositive("delete interval", d)
	return func(c *config) {
		c.deleteInterval = d
	}
}

// WithRolloutGracePeriod sets the pause between updating the node daemon
// set and the first pod-status poll. Panics if d <= 0.
func WithRolloutGracePeriod(d time.Duration) Option {
	requirePositive("rollout grace period", d)
	return func(c *config) {
		c.rolloutGracePeriod = d
	}
}

// WithServiceReplicas sets the deployment replica count used by
// CreateService. Panics if n <= 0.
func WithServiceReplicas(n int) Option {
	requirePositive("service replicas", n)
	return func(c *config) {
		c.serviceReplicas = n
	}
}

// WithCleanConcurrency bounds how many namespaces CleanNamespaces deletes
// in parallel. Panics if n <= 0.
func WithCleanConcurrency(n int) Option {
	requirePositive("clean concurrency", n)
	return func(c *config) {
		c.cleanConcurrency = n
	}
}

// WithClientset points the helpers at a caller-managed clientset instead of
// loading a kubeconfig. SetUp then reuses this clientset rather than
// building a new one. Intended for wiring in fakes. Panics if cs is nil.
func WithClientset(cs kubernetes.Interface) Option {
	if cs == nil {
		panic("k8st: clientset must not be nil")
	}
	return func(c *config) {
		c.clientset = cs
	}
}
