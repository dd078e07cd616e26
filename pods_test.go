package k8st_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	clientfake "k8s.io/client-go/kubernetes/fake"

	"github.com/projectcalico/k8st"
)

func podFixture(namespace, name string, phase corev1.PodPhase) *corev1.Pod {
	return &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
		Status:     corev1.PodStatus{Phase: phase},
	}
}

// newTestContext builds a TestContext backed by a fake clientset seeded
// with the given objects, with fast retry settings, and runs SetUp.
func newTestContext(t *testing.T, objects ...runtime.Object) *k8st.TestContext {
	t.Helper()
	tc := k8st.NewContext(
		k8st.WithClientset(clientfake.NewSimpleClientset(objects...)),
		k8st.WithPodStatusRetries(2),
		k8st.WithPodStatusInterval(time.Millisecond),
		k8st.WithDeleteRetries(2),
		k8st.WithDeleteInterval(time.Millisecond),
	)
	if err := tc.SetUp(); err != nil {
		t.Fatalf("SetUp: %v", err)
	}
	return tc
}

func TestCheckPodStatusAllRunning(t *testing.T) {
	t.Parallel()

	tc := newTestContext(t,
		podFixture("test-ns", "web-1", corev1.PodRunning),
		podFixture("test-ns", "web-2", corev1.PodRunning),
	)

	if err := tc.CheckPodStatus(context.Background(), "test-ns"); err != nil {
		t.Errorf("CheckPodStatus returned %v, want nil", err)
	}
}

func TestCheckPodStatusEmptyNamespace(t *testing.T) {
	t.Parallel()

	tc := newTestContext(t)
	if err := tc.CheckPodStatus(context.Background(), "empty-ns"); err != nil {
		t.Errorf("CheckPodStatus on empty namespace returned %v, want nil", err)
	}
}

func TestCheckPodStatusFailsOnNonRunningPod(t *testing.T) {
	t.Parallel()

	tc := newTestContext(t,
		podFixture("test-ns", "web-1", corev1.PodRunning),
		podFixture("test-ns", "web-2", corev1.PodPending),
	)

	err := tc.CheckPodStatus(context.Background(), "test-ns")
	if err == nil {
		t.Fatal("CheckPodStatus returned nil, want error")
	}
	if !errors.Is(err, k8st.ErrPodNotRunning) {
		t.Errorf("error %v does not wrap ErrPodNotRunning", err)
	}
	if !strings.Contains(err.Error(), "web-2") || !strings.Contains(err.Error(), "Pending") {
		t.Errorf("error %q does not identify the failing pod and phase", err)
	}
}

func TestCheckPodStatusIgnoresOtherNamespaces(t *testing.T) {
	t.Parallel()

	tc := newTestContext(t,
		podFixture("test-ns", "web-1", corev1.PodRunning),
		podFixture("other-ns", "broken", corev1.PodFailed),
	)

	if err := tc.CheckPodStatus(context.Background(), "test-ns"); err != nil {
		t.Errorf("CheckPodStatus returned %v, want nil", err)
	}
}

func TestCheckPodStatusRequiresSetUp(t *testing.T) {
	t.Parallel()

	tc := k8st.NewContext(k8st.WithClientset(clientfake.NewSimpleClientset()))
	err := tc.CheckPodStatus(context.Background(), "test-ns")
	if !errors.Is(err, k8st.ErrNoClusterHandle) {
		t.Errorf("CheckPodStatus before SetUp = %v, want ErrNoClusterHandle", err)
	}
}

func TestWaitForPodsRunningEventualSuccess(t *testing.T) {
	t.Parallel()

	pending := podFixture("test-ns", "web-1", corev1.PodPending)
	cs := clientfake.NewSimpleClientset(pending)
	tc := k8st.NewContext(
		k8st.WithClientset(cs),
		k8st.WithPodStatusRetries(10),
		k8st.WithPodStatusInterval(time.Millisecond),
	)
	if err := tc.SetUp(); err != nil {
		t.Fatalf("SetUp: %v", err)
	}

	// Flip the pod to Running while the poll loop is underway.
	go func() {
		time.Sleep(5 * time.Millisecond)
		running := podFixture("test-ns", "web-1", corev1.PodRunning)
		_, _ = cs.CoreV1().Pods("test-ns").UpdateStatus(context.Background(), running, metav1.UpdateOptions{})
	}()

	if err := tc.WaitForPodsRunning(context.Background(), "test-ns"); err != nil {
		t.Errorf("WaitForPodsRunning returned %v, want nil", err)
	}
}

func TestWaitForPodsRunningExhaustion(t *testing.T) {
	t.Parallel()

	tc := newTestContext(t, podFixture("test-ns", "web-1", corev1.PodPending))

	err := tc.WaitForPodsRunning(context.Background(), "test-ns")
	if err == nil {
		t.Fatal("WaitForPodsRunning returned nil, want error")
	}
	if !errors.Is(err, k8st.ErrPodNotRunning) {
		t.Errorf("exhaustion error %v does not carry the underlying pod failure", err)
	}
}
