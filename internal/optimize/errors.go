package optimize

import "errors"

// Error taxonomy per spec §7. A restart's failure (ErrInternal surfacing a
// no-cycle-window condition, or a panic recovered at the restart boundary)
// aborts only that restart; the top-level run still returns a result if at
// least one restart succeeded.
var (
	// ErrInvalidConfig is returned without starting any work, e.g. when
	// numRepeats == 0.
	ErrInvalidConfig = errors.New("optimize: invalid configuration")

	// ErrInternal marks a structural bug — most notably the metrics
	// extractor finding no cycle window, which should never happen for a
	// well-formed time grid.
	ErrInternal = errors.New("optimize: internal error")

	// ErrAllRestartsFailed is returned when every restart failed.
	ErrAllRestartsFailed = errors.New("optimize: all restarts failed")
)
