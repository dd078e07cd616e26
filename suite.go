package k8st

import (
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/tools/clientcmd"

	"github.com/projectcalico/k8st/internal/logutil"
)

// Suite is the once-per-run entry point. It pins the elapsed-time zero
// point shared by every TestContext it spawns and holds an exclusive
// file lock for the target cluster, making the one-suite-per-cluster
// assumption enforceable rather than implicit.
//
// Lifecycle ordering:
//
//	NewSuite → EnsureNodeImage → NewContext + SetUp (per test) → Close
type Suite struct {
	cfg   config
	clock *suiteClock
	lock  *flock.Flock
}

// NewSuite builds a Suite and acquires the exclusive cluster lock. The lock
// file lives in the system temp directory, keyed by the kubeconfig the
// suite resolves to, so two suites pointed at different clusters never
// contend. Returns ErrSuiteLockHeld if another process already holds the
// lock.
func NewSuite(opts ...Option) (*Suite, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	lock := flock.New(lockPath(cfg))
	locked, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire suite lock %s: %w", lock.Path(), err)
	}
	if !locked {
		return nil, fmt.Errorf("suite lock %s: %w", lock.Path(), ErrSuiteLockHeld)
	}

	return &Suite{
		cfg:   cfg,
		clock: newSuiteClock(),
		lock:  lock,
	}, nil
}

// NewContext spawns a TestContext sharing this suite's configuration and
// clock. The context performs no I/O until SetUp is called.
func (s *Suite) NewContext() *TestContext {
	return &TestContext{cfg: s.cfg, clock: s.clock}
}

// Close releases the suite's cluster lock. The lock file is intentionally
// left on disk: removing it could invalidate a lock concurrently acquired
// by another process.
func (s *Suite) Close() error {
	if s.lock == nil {
		return nil
	}
	if err := s.lock.Close(); err != nil {
		return fmt.Errorf("release suite lock: %w", err)
	}
	s.lock = nil
	return nil
}

// EnsureNodeImage runs once before any test. It fetches the networking
// plugin's node daemon set and, for each pod-template container with the
// configured name whose image differs from the expected one, overwrites the
// image and updates the daemon set. After an update it pauses for the
// rollout grace period and then polls until every pod in the system
// namespace reports phase Running, propagating the last failure if the
// retries run out. When all images already match, it returns immediately
// without touching the cluster further.
func (s *Suite) EnsureNodeImage(ctx context.Context) error {
	tc := s.NewContext()
	if err := tc.SetUp(); err != nil {
		return err
	}

	daemonSets := tc.cluster.AppsV1().DaemonSets(s.cfg.systemNamespace)
	ds, err := daemonSets.Get(ctx, s.cfg.nodeDaemonSet, metav1.GetOptions{})
	if err != nil {
		return fmt.Errorf("get daemon set %s/%s: %w", s.cfg.systemNamespace, s.cfg.nodeDaemonSet, err)
	}

	changed := false
	for i := range ds.Spec.Template.Spec.Containers {
		container := &ds.Spec.Template.Spec.Containers[i]
		if container.Name != s.cfg.nodeContainer || container.Image == s.cfg.nodeImage {
			continue
		}
		logutil.Logger().Info("pinning node image",
			"daemonSet", s.cfg.nodeDaemonSet,
			"container", container.Name,
			"from", container.Image,
			"to", s.cfg.nodeImage)
		container.Image = s.cfg.nodeImage
		changed = true
	}
	if !changed {
		return nil
	}

	if _, err := daemonSets.Update(ctx, ds, metav1.UpdateOptions{}); err != nil {
		return fmt.Errorf("update daemon set %s/%s: %w", s.cfg.systemNamespace, s.cfg.nodeDaemonSet, err)
	}

	if err := sleepContext(ctx, s.cfg.rolloutGracePeriod); err != nil {
		return err
	}
	return tc.WaitForPodsRunning(ctx, s.cfg.systemNamespace)
}

// lockPath derives the suite lock file location from the kubeconfig the
// configuration resolves to. The path is hashed so arbitrary kubeconfig
// locations map to a flat, fixed-length file name under the temp dir.
func lockPath(cfg config) string {
	identity := cfg.kubeconfigPath
	if identity == "" {
		identity = os.Getenv(clientcmd.RecommendedConfigPathEnvVar)
	}
	if identity == "" {
		identity = clientcmd.RecommendedHomeFile
	}
	sum := sha256.Sum256([]byte(identity))
	return filepath.Join(os.TempDir(), fmt.Sprintf("k8st-%x.lock", sum[:8]))
}

// sleepContext pauses for d unless ctx is done first.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
