package kubectl

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner invokes the cluster CLI as an external process. Exit code zero
// means success; any non-zero exit surfaces as an error carrying the
// command line and captured stderr.
type Runner struct {
	binary     string
	kubeconfig string
}

// New returns a Runner for the given binary. kubeconfig may be empty, in
// which case the CLI's own resolution (KUBECONFIG, default path) applies.
func New(binary, kubeconfig string) *Runner {
	return &Runner{binary: binary, kubeconfig: kubeconfig}
}

// Get runs "get <resourceType> <name>" and returns stdout. A non-nil error
// means the CLI exited non-zero, which during delete confirmation is read
// as "resource not found".
func (r *Runner) Get(ctx context.Context, resourceType, name string) (string, error) {
	return r.run(ctx, "get", resourceType, name)
}

// Delete runs "delete <resourceType> <name>". The caller decides whether a
// failure matters; deleting an already-absent resource exits non-zero.
func (r *Runner) Delete(ctx context.Context, resourceType, name string) error {
	_, err := r.run(ctx, "delete", resourceType, name)
	return err
}

func (r *Runner) run(ctx context.Context, args ...string) (string, error) {
	if r.kubeconfig != "" {
		args = append([]string{"--kubeconfig", r.kubeconfig}, args...)
	}
	cmd := exec.CommandContext(ctx, r.binary, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("%s %s: %w", r.binary, strings.Join(args, " "), err)
		}
		return "", fmt.Errorf("%s %s: %w: %s", r.binary, strings.Join(args, " "), err, msg)
	}
	return stdout.String(), nil
}
