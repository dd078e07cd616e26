package k8st

import (
	"context"
	"fmt"

	"github.com/projectcalico/k8st/internal/logutil"
	"github.com/projectcalico/k8st/internal/retrier"
)

// DeleteAndConfirm deletes a resource through the cluster CLI and polls
// until a CLI "get" confirms it is gone.
//
// The delete is best-effort: a failure (typically the resource being absent
// already) is logged and swallowed. Confirmation then polls "get
// <resourceType> <name>" with the configured retry count and fixed
// interval; a non-zero CLI exit means the resource is gone and the call
// returns nil. If the resource is still visible after all retries, the
// returned error wraps ErrStillPresent.
func (t *TestContext) DeleteAndConfirm(ctx context.Context, resourceType, name string) error {
	if t.cli == nil {
		return ErrNoClusterHandle
	}

	if err := t.cli.Delete(ctx, resourceType, name); err != nil {
		logutil.Logger().Debug("delete failed, assuming resource already gone",
			"type", resourceType,
			"name", name,
			"err", err)
	}

	return retrier.Do(ctx, t.cfg.deleteRetries, t.cfg.deleteInterval,
		func(ctx context.Context) error {
			if _, err := t.cli.Get(ctx, resourceType, name); err == nil {
				return fmt.Errorf("%s %s: %w", resourceType, name, ErrStillPresent)
			}
			// The get failed, meaning the resource is no longer served.
			return nil
		})
}
