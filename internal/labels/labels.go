// internal/labels/labels.go
//
// Label pool management for the memory game.
//
// Responsibilities:
//   - Load card labels from a user-provided file, or fall back to the embedded default pool.
//   - Normalize lines (trim, drop blanks and # comments).
//
// Environment variables (read by internal/config, passed in here):
//
//	LABELS_FILE=/path/to/labels.txt
package labels

import (
	"errors"
	"fmt"
	"os"

	"github.com/robalobadob/memory/assets"
)

// ErrEmpty is returned when a pool ends up with no labels.
var ErrEmpty = errors.New("labels: pool is empty")

// Load returns the labels in path, or the embedded defaults when path is empty.
func Load(path string) ([]string, error) {
	if path == "" {
		return Default()
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open labels file: %w", err)
	}
	defer f.Close()

	out, err := assets.ReadLabels(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmpty, path)
	}
	return out, nil
}

// Default returns the embedded label pool.
func Default() ([]string, error) {
	out, err := assets.DefaultLabels()
	if err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}
	return out, nil
}
