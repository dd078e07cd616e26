package k8st

import (
	"fmt"

	"github.com/projectcalico/k8st/internal/logutil"
	"github.com/projectcalico/k8st/internal/structdiff"
)

// AssertSame compares two values for deep structural equality over the
// generic value model (null, bool, number, string, sequence, mapping).
// Sequence element order matters; mapping key order does not.
//
// On mismatch it returns an error wrapping ErrMismatch whose message names
// at least one differing path. Values that cannot be normalized (channels,
// funcs, cyclic graphs) yield a normalization error instead.
func AssertSame(want, got any) error {
	wv, err := structdiff.Normalize(want)
	if err != nil {
		return fmt.Errorf("normalize expected value: %w", err)
	}
	gv, err := structdiff.Normalize(got)
	if err != nil {
		return fmt.Errorf("normalize actual value: %w", err)
	}

	diffs := structdiff.Diff(wv, gv)
	if len(diffs) == 0 {
		return nil
	}

	rendered := structdiff.Format(diffs)
	logutil.Logger().Debug("structural mismatch", "differences", rendered)
	return fmt.Errorf("items are not the same, difference is:\n%s\n%w", rendered, ErrMismatch)
}
