package k8st

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/projectcalico/k8st/internal/logutil"
	"github.com/projectcalico/k8st/internal/retrier"
)

// systemNamespaces is the set of namespaces that must never be deleted by
// CleanNamespaces. Initialized at package level and never modified, so
// concurrent reads are safe without synchronization.
var systemNamespaces = map[string]struct{}{
	"default":         {},
	"kube-system":     {},
	"kube-public":     {},
	"kube-node-lease": {},
}

// SystemNamespaceNames returns the names of the namespaces CleanNamespaces
// refuses to delete (default, kube-system, kube-public, kube-node-lease).
// The returned slice is a copy; callers may modify it freely.
func SystemNamespaceNames() []string {
	names := make([]string, 0, len(systemNamespaces))
	for name := range systemNamespaces {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CreateNamespace creates a namespace with the given name. Creation is not
// idempotent: if the namespace already exists, the AlreadyExists error from
// the API propagates unchanged inside the wrap.
func (t *TestContext) CreateNamespace(ctx context.Context, name string) error {
	if t.cluster == nil {
		return ErrNoClusterHandle
	}

	ns := &corev1.Namespace{
		ObjectMeta: metav1.ObjectMeta{Name: name},
	}
	if _, err := t.cluster.CoreV1().Namespaces().Create(ctx, ns, metav1.CreateOptions{}); err != nil {
		return fmt.Errorf("create namespace %s: %w", name, err)
	}

	logutil.Logger().Info("namespace created", "name", name)
	return nil
}

// CleanNamespaces is the suite teardown helper: it deletes the given
// namespaces (system namespaces are silently skipped, never deleted) with
// bounded parallelism, then polls until none of them appear in a namespace
// list anymore. A namespace that survives all configured delete retries
// yields an error wrapping ErrStillPresent.
//
// Already-absent namespaces are not an error.
func (t *TestContext) CleanNamespaces(ctx context.Context, names ...string) error {
	if t.cluster == nil {
		return ErrNoClusterHandle
	}

	targets := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, system := systemNamespaces[name]; system {
			logutil.Logger().Warn("refusing to delete system namespace", "name", name)
			continue
		}
		targets[name] = struct{}{}
	}
	if len(targets) == 0 {
		return nil
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(t.cfg.cleanConcurrency)
	for name := range targets {
		g.Go(func() error {
			err := t.cluster.CoreV1().Namespaces().Delete(gCtx, name, metav1.DeleteOptions{})
			if err != nil && !apierrors.IsNotFound(err) {
				return fmt.Errorf("delete namespace %s: %w", name, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	// Confirm removal by re-listing until every target is gone.
	return retrier.Do(ctx, t.cfg.deleteRetries, t.cfg.deleteInterval,
		func(ctx context.Context) error {
			nsList, err := t.cluster.CoreV1().Namespaces().List(ctx, metav1.ListOptions{})
			if err != nil {
				return fmt.Errorf("list namespaces for cleanup confirmation: %w", err)
			}
			for i := range nsList.Items {
				if _, ok := targets[nsList.Items[i].Name]; ok {
					return fmt.Errorf("namespace %s: %w", nsList.Items[i].Name, ErrStillPresent)
				}
			}
			return nil
		})
}
