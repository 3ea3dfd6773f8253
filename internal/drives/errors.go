package drives

import (
	"errors"
	"fmt"
)

var (
	// ErrIO marks failures to open or read the mount registry or partition table.
	ErrIO = errors.New("drives: i/o error")

	// ErrResolutionSkipped marks a single registry entry whose device could not
	// be resolved. It is logged and never returned by exported functions.
	ErrResolutionSkipped = errors.New("drives: resolution skipped")

	// ErrProbeInconclusive marks a signature probe that could not read the
	// device. The candidate is treated as non-matching.
	ErrProbeInconclusive = errors.New("drives: probe inconclusive")
)

// IOError records a whole-call failure and the source that caused it.
type IOError struct {
	Op   string // "read mounts", "read partitions", ...
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap exposes both ErrIO and the underlying cause to errors.Is/As.
func (e *IOError) Unwrap() []error {
	return []error{ErrIO, e.Err}
}
