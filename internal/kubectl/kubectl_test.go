package kubectl_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/projectcalico/k8st/internal/kubectl"
)

// writeStub writes an executable shell script to dir and returns its path.
func writeStub(t *testing.T, dir, name, script string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755); err != nil {
		t.Fatalf("write stub %s: %v", name, err)
	}
	return path
}

func TestGetReturnsStdout(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bin := writeStub(t, dir, "kubectl-ok", `echo "pod/web   2/2   Running"`)

	r := kubectl.New(bin, "")
	out, err := r.Get(context.Background(), "pod", "web")
	if err != nil {
		t.Fatalf("Get returned %v, want nil", err)
	}
	if !strings.Contains(out, "Running") {
		t.Errorf("Get stdout %q missing expected content", out)
	}
}

func TestGetNonZeroExitIsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	bin := writeStub(t, dir, "kubectl-notfound", `echo 'Error from server (NotFound): pods "web" not found' >&2; exit 1`)

	r := kubectl.New(bin, "")
	if _, err := r.Get(context.Background(), "pod", "web"); err == nil {
		t.Fatal("Get returned nil for non-zero exit, want error")
	} else if !strings.Contains(err.Error(), "NotFound") {
		t.Errorf("Get error %q missing captured stderr", err)
	}
}

func TestDeletePassesSubcommandAndArgs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args")
	bin := writeStub(t, dir, "kubectl-record", `echo "$@" > `+argsFile)

	r := kubectl.New(bin, "")
	if err := r.Delete(context.Background(), "ns", "test-ns"); err != nil {
		t.Fatalf("Delete returned %v, want nil", err)
	}

	recorded, err := os.ReadFile(argsFile)
	if err != nil {
		t.Fatalf("read recorded args: %v", err)
	}
	if got := strings.TrimSpace(string(recorded)); got != "delete ns test-ns" {
		t.Errorf("stub invoked with %q, want %q", got, "delete ns test-ns")
	}
}

func TestExplicitKubeconfigIsForwarded(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	argsFile := filepath.Join(dir, "args")
	bin := writeStub(t, dir, "kubectl-record", `echo "$@" > `+argsFile)

	r := kubectl.New(bin, "/cfg/admin.conf")
	if _, err := r.Get(context.Background(), "svc", "web"); err != nil {
		t.Fatalf("Get returned %v, want nil", err)
	}

	recorded, _ := os.ReadFile(argsFile)
	if got := strings.TrimSpace(string(recorded)); got != "--kubeconfig /cfg/admin.conf get svc web" {
		t.Errorf("stub invoked with %q, want kubeconfig flag first", got)
	}
}

func TestMissingBinaryIsError(t *testing.T) {
	t.Parallel()

	r := kubectl.New(filepath.Join(t.TempDir(), "no-such-binary"), "")
	if err := r.Delete(context.Background(), "pod", "web"); err == nil {
		t.Error("Delete with missing binary returned nil, want error")
	}
}
