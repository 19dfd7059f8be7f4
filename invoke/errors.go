// SPDX-License-Identifier: MIT
// Package invoke: error taxonomy.
// This file defines the four sentinel kinds every invocation failure maps to,
// plus the two concrete error types that carry detail. Callers match kinds
// with errors.Is and reach detail with errors.As.

package invoke

import (
	"errors"
	"fmt"
)

// ERROR PRIORITY (enforced by Validate/Call order):
// input arity -> arguments left to right (groups fully normalised at 1,
// selector at 2, optional slots and cascade gaps at 3..5) -> engine
// -> output arity.

var (
	// ErrArity reports a wrong number of inputs or outputs, or an optional
	// argument supplied without its positional predecessor.
	ErrArity = errors.New("invoke: wrong number of arguments")

	// ErrShapeType reports an argument with the wrong shape or class, or a
	// value outside the argument's domain.
	ErrShapeType = errors.New("invoke: wrong argument shape or type")

	// ErrConfig reports an unrecognised algorithm selector, or a selector with
	// no engine registered.
	ErrConfig = errors.New("invoke: invalid configuration")

	// ErrEngine reports a failure raised by the clustering engine.
	ErrEngine = errors.New("invoke: engine failure")
)

// ArgError names the positional argument that failed validation.
type ArgError struct {
	Pos    int    // 1-based argument position
	Name   string // argument name, e.g. "sparse"
	Reason string // human-readable constraint that failed
	Err    error  // one of ErrArity, ErrShapeType, ErrConfig
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("invoke: argument %d (%s): %s", e.Pos, e.Name, e.Reason)
}

// Unwrap exposes the sentinel kind.
func (e *ArgError) Unwrap() error { return e.Err }

// argErrorf builds an *ArgError for the slot at pos.
func argErrorf(pos int, kind error, format string, args ...any) error {
	return &ArgError{Pos: pos, Name: slotName(pos), Reason: fmt.Sprintf(format, args...), Err: kind}
}

// EngineError wraps a failure raised by the clustering engine. Its message is
// the engine's message, unmodified.
type EngineError struct {
	Algorithm Algorithm
	Err       error
}

func (e *EngineError) Error() string { return e.Err.Error() }

// Unwrap matches both ErrEngine and the engine's own error kind
// (*engine.LogicError, *engine.RuntimeError).
func (e *EngineError) Unwrap() []error { return []error{ErrEngine, e.Err} }
