package ioshell

import "errors"

// ErrInvalidInput is returned for every malformed-input case: JSON parse
// failure, a missing required field, a negative count, hi<lo, or a
// non-positive target rate. The caller of RunFactory/RunBelts (cmd/factory,
// cmd/belts) reports
// it on standard error and exits non-zero; it is never written to
// standard output as a response body.
var ErrInvalidInput = errors.New("ioshell: invalid input")
