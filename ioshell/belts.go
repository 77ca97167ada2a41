package ioshell

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/foundry/belts"
)

// RunBelts reads a belts request from r, solves it, and writes the
// response to w. See RunFactory's contract; the returned error is
// non-nil for ErrInvalidInput or belts.ErrSolverFailure (the latter when
// ctx is canceled, or when the max-flow exceeds its level-graph phase
// bound, which no valid input causes).
func RunBelts(ctx context.Context, r io.Reader, w io.Writer) error {
	var in belts.Input
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validateStruct(in); err != nil {
		return err
	}

	ok, infeasible, err := belts.Solve(ctx, in)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	if ok != nil {
		return enc.Encode(ok)
	}
	return enc.Encode(infeasible)
}
