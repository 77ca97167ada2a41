package factory

import (
	"errors"
	"fmt"
)

// Sentinel errors for the factory package. Callers MUST use errors.Is to
// branch on semantics rather than comparing error strings.

// ErrSolverFailure indicates the underlying simplex reported an
// unrecoverable numerical error (singular basis, unbounded problem) rather
// than a clean feasible/infeasible determination. The response names the
// failing phase.
var ErrSolverFailure = errors.New("factory: solver failure")

// solverErrorf wraps ErrSolverFailure with the phase that failed, preserving
// errors.Is(err, ErrSolverFailure) for callers.
func solverErrorf(phase string, cause error) error {
	return fmt.Errorf("%s: %w: %v", phase, ErrSolverFailure, cause)
}
