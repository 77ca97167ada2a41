// Package ioshell is the thin I/O boundary shared by both solver
// executables: decode one JSON document from standard input, validate it
// against the documented schema, apply field defaults, dispatch to the
// appropriate engine, and serialize exactly one of its two possible
// results back to standard output.
//
// Validation uses go-playground/validator struct tags declared directly
// on factory.Input and belts.Input; ioshell decodes into those types
// rather than an intermediate DTO, since the wire schema and the
// engines' own Go types already agree field for field.
package ioshell
