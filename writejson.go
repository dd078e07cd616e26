package k8st

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/projectcalico/k8st/internal/logutil"
)

// WriteJSON serializes data to pretty-printed JSON (2-space indentation,
// mapping keys in lexicographic order) and writes it to path, overwriting
// any existing content. Output is byte-identical across calls with equal
// input. The serialized text is logged at debug level.
func WriteJSON(path string, data any) error {
	text, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal for %s: %w", path, err)
	}

	logutil.Logger().Debug("writing JSON artifact", "path", path, "content", string(text))

	if err := os.WriteFile(path, text, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
