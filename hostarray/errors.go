// SPDX-License-Identifier: MIT
// Package hostarray: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// hostarray package. Accessors MUST return these sentinels (optionally wrapped
// with %w for context) and tests MUST check them via errors.Is. No accessor
// panics on user-triggered error conditions.

package hostarray

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "hostarray: ..." for easy grepping across
// logs. Call sites wrap with fmt.Errorf("Array.<Method>(...): %w", ErrX) so
// callers keep matching with errors.Is.

var (
	// ErrBadShape is returned when a requested shape is invalid (negative
	// dimensions, or a data slice whose length is not rows*cols).
	ErrBadShape = errors.New("hostarray: invalid shape")

	// ErrOutOfRange indicates that an element, cell or linear index is outside
	// valid bounds.
	ErrOutOfRange = errors.New("hostarray: index out of range")

	// ErrClassMismatch signals that an accessor was used on an array of the
	// wrong class (e.g. Bool on a Double array) or that a validator rejected
	// the class.
	ErrClassMismatch = errors.New("hostarray: class mismatch")

	// ErrNilArray indicates that a nil *Array was used where a value is required.
	ErrNilArray = errors.New("hostarray: nil array")

	// ErrUnknownField indicates that a struct field lookup failed.
	ErrUnknownField = errors.New("hostarray: unknown field")

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = errors.New("hostarray: NaN or Inf encountered")
)
