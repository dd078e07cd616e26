package k8st

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/projectcalico/k8st/internal/logutil"
	"github.com/projectcalico/k8st/internal/retrier"
)

// CheckPodStatus lists the pods in namespace and verifies every pod's phase
// is Running, logging name, namespace, and phase for each pod checked. It
// returns an error wrapping ErrPodNotRunning on the FIRST pod in a
// different phase, in the API's list order, without checking the rest.
//
// This is a point-in-time check: it does not wait for pods to become ready.
// Use WaitForPodsRunning when readiness waiting is wanted.
func (t *TestContext) CheckPodStatus(ctx context.Context, namespace string) error {
	if t.cluster == nil {
		return ErrNoClusterHandle
	}
	return checkNamespacePods(ctx, t.cluster, namespace)
}

// WaitForPodsRunning polls CheckPodStatus with the configured retry count
// and fixed interval until every pod in namespace is Running, returning the
// last check's error on exhaustion.
func (t *TestContext) WaitForPodsRunning(ctx context.Context, namespace string) error {
	if t.cluster == nil {
		return ErrNoClusterHandle
	}
	return retrier.Do(ctx, t.cfg.podStatusRetries, t.cfg.podStatusInterval,
		func(ctx context.Context) error {
			return checkNamespacePods(ctx, t.cluster, namespace)
		})
}

func checkNamespacePods(ctx context.Context, cluster kubernetes.Interface, namespace string) error {
	pods, err := cluster.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return fmt.Errorf("list pods in %s: %w", namespace, err)
	}

	log := logutil.Logger()
	for i := range pods.Items {
		pod := &pods.Items[i]
		if pod.Status.Phase != corev1.PodRunning {
			return fmt.Errorf("pod %s/%s in phase %s: %w",
				pod.Namespace, pod.Name, pod.Status.Phase, ErrPodNotRunning)
		}
		log.Info("pod status",
			"name", pod.Name,
			"namespace", pod.Namespace,
			"phase", string(pod.Status.Phase))
	}
	return nil
}
