package ioshell

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/katalvlaran/foundry/factory"
)

// RunFactory reads a factory request from r, solves it, and writes the
// response to w. The returned error is non-nil only for the two failure
// kinds that exit non-zero: ErrInvalidInput and factory.ErrSolverFailure.
// An infeasible result is written successfully and returns a nil error —
// it is a domain outcome, not an error.
func RunFactory(r io.Reader, w io.Writer) error {
	var in factory.Input
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := validateStruct(in); err != nil {
		return err
	}
	in.ApplyDefaults()

	ok, infeasible, err := factory.Solve(in)
	if err != nil {
		// factory.Solve only ever fails with ErrSolverFailure; infeasibility
		// is reported as a result, not an error.
		return err
	}

	enc := json.NewEncoder(w)
	if ok != nil {
		return enc.Encode(ok)
	}
	return enc.Encode(infeasible)
}
