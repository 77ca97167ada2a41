package belts

import (
	"errors"
	"fmt"
)

// ErrSolverFailure indicates the max-flow computation did not terminate
// cleanly: either the caller's context was canceled or deadlined, or the
// level-graph phase count exceeded its provable bound (a bug in the
// level-graph construction, not a property of the input). Callers use
// errors.Is to branch, never string comparison.
var ErrSolverFailure = errors.New("belts: solver failure")

func solverErrorf(phase string, cause error) error {
	return fmt.Errorf("%s: %w: %v", phase, ErrSolverFailure, cause)
}
