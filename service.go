package k8st

import (
	"context"
	"fmt"

	appsv1 "k8s.io/api/apps/v1"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	"github.com/projectcalico/k8st/internal/logutil"
)

// CreateService provisions a namespaced workload in three steps: the
// namespace itself, a deployment running the configured replica count of a
// single container from image exposing port, and a service selecting the
// deployment's pods by the "app" label.
//
// Each step is logged after it succeeds. There is no rollback on partial
// failure: if the deployment create fails after the namespace was created,
// the namespace remains. The helper does not wait for the pods to schedule
// or become ready; callers that need readiness should follow up with
// WaitForPodsRunning.
func (t *TestContext) CreateService(ctx context.Context, image, name, namespace string, port int32) error {
	if t.cluster == nil {
		return ErrNoClusterHandle
	}

	if err := t.CreateNamespace(ctx, namespace); err != nil {
		return err
	}

	labels := map[string]string{"app": name}
	replicas := int32(t.cfg.serviceReplicas)

	deployment := &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: &replicas,
			Selector: &metav1.LabelSelector{MatchLabels: labels},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{Labels: labels},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{{
						Name:  name,
						Image: image,
						Ports: []corev1.ContainerPort{{ContainerPort: port}},
					}},
				},
			},
		},
	}
	created, err := t.cluster.AppsV1().Deployments(namespace).Create(ctx, deployment, metav1.CreateOptions{})
	if err != nil {
		return fmt.Errorf("create deployment %s/%s: %w", namespace, name, err)
	}
	logutil.Logger().Info("deployment created",
		"name", name,
		"namespace", namespace,
		"replicas", replicas,
		"status", fmt.Sprintf("%+v", created.Status))

	service := &corev1.Service{
		ObjectMeta: metav1.ObjectMeta{
			Name:   name,
			Labels: map[string]string{"name": name},
		},
		Spec: corev1.ServiceSpec{
			Selector: labels,
			Ports:    []corev1.ServicePort{{Port: port}},
		},
	}
	createdSvc, err := t.cluster.CoreV1().Services(namespace).Create(ctx, service, metav1.CreateOptions{})
	if err != nil {
		return fmt.Errorf("create service %s/%s: %w", namespace, name, err)
	}
	logutil.Logger().Info("service created",
		"name", name,
		"namespace", namespace,
		"port", port,
		"clusterIP", createdSvc.Spec.ClusterIP)

	return nil
}
