// SPDX-License-Identifier: MIT

// Package hostarray: domain types.
// This file contains ONLY the Class tag and the Array variant itself.
// Constructors and accessors live in array.go, checks in validators.go.
package hostarray

// Class tags the storage kind carried by an Array.
type Class uint8

// Supported classes. The zero value is deliberately invalid so an
// uninitialised Array never passes a class check.
const (
	ClassInvalid Class = iota
	ClassDouble        // float64 matrix
	ClassLogical       // bool matrix
	ClassInt64         // int64 matrix
	ClassCell          // matrix of *Array
	ClassStruct        // 1×1 record of named *Array fields
)

// String returns the host-facing class name.
func (c Class) String() string {
	switch c {
	case ClassDouble:
		return "double"
	case ClassLogical:
		return "logical"
	case ClassInt64:
		return "int64"
	case ClassCell:
		return "cell"
	case ClassStruct:
		return "struct"
	default:
		return "invalid"
	}
}

// IsNumeric reports whether values of the class can be read with At.
func (c Class) IsNumeric() bool { return c == ClassDouble || c == ClassInt64 }

// Array is a column-major host value.
//   - class selects which backing slice is live; the others stay nil.
//   - r,c are dimensions; len(live slice) == r*c (struct arrays are 1×1).
//   - fields keeps struct field order stable for deterministic marshalling.
//   - a nil *Array reads as 0×0 ClassInvalid; accessors return ErrClassMismatch.
type Array struct {
	class  Class
	r, c   int
	f64    []float64 // ClassDouble
	bools  []bool    // ClassLogical
	i64    []int64   // ClassInt64
	cells  []*Array  // ClassCell
	fields []field   // ClassStruct
}

// field is one named struct member.
type field struct {
	name  string
	value *Array
}
