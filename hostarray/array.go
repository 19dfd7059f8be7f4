// SPDX-License-Identifier: MIT

// Package hostarray - constructors & safe accessors.
//
// Purpose:
//   - Build host values of every class with explicit shapes.
//   - Guarantee safety at the public surface: accessors return errors instead of panicking.
//   - Keep column-major layout (offset = i + j*rows) so numeric buffers can be viewed, not copied.
//
// Complexity quicksheet:
//   - constructors: O(numel) zero-init; DoubleFrom: O(1) (no copy); At/Set/Cell: O(1); Clone: O(numel).

package hostarray

import (
	"fmt"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"
	ctxSet      = "Set"
	ctxBool     = "Bool"
	ctxSetBool  = "SetBool"
	ctxInt      = "Int"
	ctxCell     = "Cell"
	ctxSetCell  = "SetCell"
	ctxField    = "Field"
	ctxSetField = "SetField"
)

// arrayErrorf wraps an error with a uniform Array context and callsite indices.
func arrayErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Array.%s(%d,%d): %w", method, i, j, err)
}

// shapeErrorf reports an invalid constructor shape.
func shapeErrorf(ctor string, rows, cols int) error {
	return fmt.Errorf("%s(%d,%d): %w", ctor, rows, cols, ErrBadShape)
}

// ---------- Constructors ----------

// NewDouble returns a rows×cols zero double array.
// Zero-sized shapes are legal; negative dimensions yield ErrBadShape.
func NewDouble(rows, cols int) (*Array, error) {
	if rows < 0 || cols < 0 {
		return nil, shapeErrorf("NewDouble", rows, cols)
	}

	return &Array{class: ClassDouble, r: rows, c: cols, f64: make([]float64, rows*cols)}, nil
}

// DoubleFrom wraps a column-major buffer as a rows×cols double array.
// MAIN DESCRIPTION:
//   - Zero-copy constructor: the returned Array aliases data.
//
// Behavior highlights:
//   - Mutations through Set are visible in data and vice versa.
//
// Errors:
//   - ErrBadShape when rows/cols are negative or len(data) != rows*cols.
//
// Complexity:
//   - Time O(1), Space O(1).
func DoubleFrom(rows, cols int, data []float64) (*Array, error) {
	if rows < 0 || cols < 0 || len(data) != rows*cols {
		return nil, shapeErrorf("DoubleFrom", rows, cols)
	}

	return &Array{class: ClassDouble, r: rows, c: cols, f64: data}, nil
}

// DoubleFromRows builds a double array from row slices (the natural literal
// form in Go code and YAML documents) by transposing into column-major order.
// MAIN DESCRIPTION:
//   - Copying constructor for ragged-checked row data.
//
// Implementation:
//   - Stage 1: validate every row has the width of row 0.
//   - Stage 2: scatter rows[i][j] to offset i + j*rows.
//
// Behavior highlights:
//   - nil or empty input yields a 0×0 array.
//
// Errors:
//   - ErrBadShape when rows are ragged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func DoubleFromRows(rows [][]float64) (*Array, error) {
	r := len(rows)
	if r == 0 {
		return NewDouble(0, 0)
	}
	c := len(rows[0])
	for i := 1; i < r; i++ {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("DoubleFromRows: row %d has %d values, want %d: %w", i, len(rows[i]), c, ErrBadShape)
		}
	}
	a, _ := NewDouble(r, c) // shape already validated non-negative
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			a.f64[i+j*r] = rows[i][j]
		}
	}

	return a, nil
}

// Scalar returns a 1×1 double array holding v.
func Scalar(v float64) *Array {
	return &Array{class: ClassDouble, r: 1, c: 1, f64: []float64{v}}
}

// RowVector returns a 1×n double array copied from v.
func RowVector(v []float64) *Array {
	cp := make([]float64, len(v))
	copy(cp, v)

	return &Array{class: ClassDouble, r: 1, c: len(v), f64: cp}
}

// NewLogical returns a rows×cols logical array initialised to false.
func NewLogical(rows, cols int) (*Array, error) {
	if rows < 0 || cols < 0 {
		return nil, shapeErrorf("NewLogical", rows, cols)
	}

	return &Array{class: ClassLogical, r: rows, c: cols, bools: make([]bool, rows*cols)}, nil
}

// LogicalScalar returns a 1×1 logical array holding b.
func LogicalScalar(b bool) *Array {
	return &Array{class: ClassLogical, r: 1, c: 1, bools: []bool{b}}
}

// NewInt64 returns a rows×cols int64 array initialised to zero.
func NewInt64(rows, cols int) (*Array, error) {
	if rows < 0 || cols < 0 {
		return nil, shapeErrorf("NewInt64", rows, cols)
	}

	return &Array{class: ClassInt64, r: rows, c: cols, i64: make([]int64, rows*cols)}, nil
}

// Int64Scalar returns a 1×1 int64 array holding v.
func Int64Scalar(v int64) *Array {
	return &Array{class: ClassInt64, r: 1, c: 1, i64: []int64{v}}
}

// NewCell returns a rows×cols cell array with every slot empty (nil).
func NewCell(rows, cols int) (*Array, error) {
	if rows < 0 || cols < 0 {
		return nil, shapeErrorf("NewCell", rows, cols)
	}

	return &Array{class: ClassCell, r: rows, c: cols, cells: make([]*Array, rows*cols)}, nil
}

// CellOf returns a 1×n cell array holding elems in order.
func CellOf(elems ...*Array) *Array {
	cells := make([]*Array, len(elems))
	copy(cells, elems)

	return &Array{class: ClassCell, r: 1, c: len(elems), cells: cells}
}

// NewStruct returns a 1×1 struct with the given field names, all empty.
// Duplicate names collapse to the first occurrence.
func NewStruct(names ...string) *Array {
	a := &Array{class: ClassStruct, r: 1, c: 1}
	for _, n := range names {
		if a.fieldIndex(n) < 0 {
			a.fields = append(a.fields, field{name: n})
		}
	}

	return a
}

// ---------- Shape & class ----------

// Class returns the class tag; a nil receiver reports ClassInvalid.
func (a *Array) Class() Class {
	if a == nil {
		return ClassInvalid
	}

	return a.class
}

// Rows returns the row count.
func (a *Array) Rows() int {
	r, _ := a.Shape()
	return r
}

// Cols returns the column count.
func (a *Array) Cols() int {
	_, c := a.Shape()
	return c
}

// Shape packs Rows() and Cols() into a single call. A nil array is 0×0.
func (a *Array) Shape() (rows, cols int) {
	if a == nil {
		return 0, 0
	}

	return a.r, a.c
}

// Numel returns rows*cols.
func (a *Array) Numel() int {
	r, c := a.Shape()
	return r * c
}

// IsEmpty reports whether the array has no elements.
func (a *Array) IsEmpty() bool { return a.Numel() == 0 }

// IsScalar reports a 1×1 shape regardless of class.
func (a *Array) IsScalar() bool {
	r, c := a.Shape()
	return r == 1 && c == 1
}

// offset bounds-checks (i,j) and returns the column-major offset.
func (a *Array) offset(i, j int) (int, error) {
	if i < 0 || i >= a.r || j < 0 || j >= a.c {
		return 0, ErrOutOfRange
	}

	return i + j*a.r, nil
}

// ---------- Numeric access ----------

// At returns element (i,j) of a numeric (double or int64) array as float64.
// MAIN DESCRIPTION:
//   - Safe element read for numeric classes.
//
// Errors:
//   - ErrClassMismatch for non-numeric classes; ErrOutOfRange on bad indices.
//
// Complexity:
//   - Time O(1), Space O(1).
func (a *Array) At(i, j int) (float64, error) {
	if !a.Class().IsNumeric() {
		return 0, arrayErrorf(ctxAt, i, j, ErrClassMismatch)
	}
	off, err := a.offset(i, j)
	if err != nil {
		return 0, arrayErrorf(ctxAt, i, j, err)
	}
	if a.class == ClassInt64 {
		return float64(a.i64[off]), nil
	}

	return a.f64[off], nil
}

// Set stores v at (i,j) of a double array.
func (a *Array) Set(i, j int, v float64) error {
	if a.Class() != ClassDouble {
		return arrayErrorf(ctxSet, i, j, ErrClassMismatch)
	}
	off, err := a.offset(i, j)
	if err != nil {
		return arrayErrorf(ctxSet, i, j, err)
	}
	a.f64[off] = v

	return nil
}

// Int returns element (i,j) of an int64 array.
func (a *Array) Int(i, j int) (int64, error) {
	if a.Class() != ClassInt64 {
		return 0, arrayErrorf(ctxInt, i, j, ErrClassMismatch)
	}
	off, err := a.offset(i, j)
	if err != nil {
		return 0, arrayErrorf(ctxInt, i, j, err)
	}

	return a.i64[off], nil
}

// Data returns the live column-major buffer of a double array (no copy),
// or nil for any other class.
func (a *Array) Data() []float64 {
	if a.Class() != ClassDouble {
		return nil
	}

	return a.f64
}

// Rows2D copies a numeric array into row slices. Intended for encoders and
// diagnostics; hot paths should use Data.
func (a *Array) Rows2D() ([][]float64, error) {
	if !a.Class().IsNumeric() {
		return nil, fmt.Errorf("Array.Rows2D: %w", ErrClassMismatch)
	}
	out := make([][]float64, a.r)
	for i := 0; i < a.r; i++ {
		out[i] = make([]float64, a.c)
		for j := 0; j < a.c; j++ {
			out[i][j], _ = a.At(i, j) // indices in range by construction
		}
	}

	return out, nil
}

// ---------- Logical access ----------

// Bool returns element (i,j) of a logical array.
func (a *Array) Bool(i, j int) (bool, error) {
	if a.Class() != ClassLogical {
		return false, arrayErrorf(ctxBool, i, j, ErrClassMismatch)
	}
	off, err := a.offset(i, j)
	if err != nil {
		return false, arrayErrorf(ctxBool, i, j, err)
	}

	return a.bools[off], nil
}

// SetBool stores b at (i,j) of a logical array.
func (a *Array) SetBool(i, j int, b bool) error {
	if a.Class() != ClassLogical {
		return arrayErrorf(ctxSetBool, i, j, ErrClassMismatch)
	}
	off, err := a.offset(i, j)
	if err != nil {
		return arrayErrorf(ctxSetBool, i, j, err)
	}
	a.bools[off] = b

	return nil
}

// ---------- Cell access ----------

// Cell returns the k-th slot (linear, column-major) of a cell array.
// An unset slot returns (nil, nil).
func (a *Array) Cell(k int) (*Array, error) {
	if a.Class() != ClassCell {
		return nil, arrayErrorf(ctxCell, k, 0, ErrClassMismatch)
	}
	if k < 0 || k >= len(a.cells) {
		return nil, arrayErrorf(ctxCell, k, 0, ErrOutOfRange)
	}

	return a.cells[k], nil
}

// SetCell stores v in the k-th slot (linear, column-major) of a cell array.
func (a *Array) SetCell(k int, v *Array) error {
	if a.Class() != ClassCell {
		return arrayErrorf(ctxSetCell, k, 0, ErrClassMismatch)
	}
	if k < 0 || k >= len(a.cells) {
		return arrayErrorf(ctxSetCell, k, 0, ErrOutOfRange)
	}
	a.cells[k] = v

	return nil
}

// ---------- Struct access ----------

func (a *Array) fieldIndex(name string) int {
	for i := range a.fields {
		if a.fields[i].name == name {
			return i
		}
	}

	return -1
}

// FieldNames returns struct field names in declaration order.
func (a *Array) FieldNames() []string {
	if a.Class() != ClassStruct {
		return nil
	}
	names := make([]string, len(a.fields))
	for i := range a.fields {
		names[i] = a.fields[i].name
	}

	return names
}

// Field returns the named struct member.
func (a *Array) Field(name string) (*Array, error) {
	if a.Class() != ClassStruct {
		return nil, fmt.Errorf("Array.%s(%q): %w", ctxField, name, ErrClassMismatch)
	}
	idx := a.fieldIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("Array.%s(%q): %w", ctxField, name, ErrUnknownField)
	}

	return a.fields[idx].value, nil
}

// SetField assigns the named struct member; the field must have been declared
// by NewStruct so field order stays fixed.
func (a *Array) SetField(name string, v *Array) error {
	if a.Class() != ClassStruct {
		return fmt.Errorf("Array.%s(%q): %w", ctxSetField, name, ErrClassMismatch)
	}
	idx := a.fieldIndex(name)
	if idx < 0 {
		return fmt.Errorf("Array.%s(%q): %w", ctxSetField, name, ErrUnknownField)
	}
	a.fields[idx].value = v

	return nil
}

// ---------- Copy & formatting ----------

// Clone returns a deep copy; cell slots and struct fields are cloned recursively.
func (a *Array) Clone() *Array {
	if a == nil {
		return nil
	}
	out := &Array{class: a.class, r: a.r, c: a.c}
	switch a.class {
	case ClassDouble:
		out.f64 = append([]float64(nil), a.f64...)
	case ClassLogical:
		out.bools = append([]bool(nil), a.bools...)
	case ClassInt64:
		out.i64 = append([]int64(nil), a.i64...)
	case ClassCell:
		out.cells = make([]*Array, len(a.cells))
		for k, v := range a.cells {
			out.cells[k] = v.Clone()
		}
	case ClassStruct:
		out.fields = make([]field, len(a.fields))
		for k, f := range a.fields {
			out.fields[k] = field{name: f.name, value: f.value.Clone()}
		}
	}

	return out
}

// String renders "<rows>x<cols> <class>" followed by numeric/logical rows.
// Intended for logs and test failure messages.
func (a *Array) String() string {
	if a == nil {
		return "<nil>"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%dx%d %s", a.r, a.c, a.class)
	switch a.class {
	case ClassDouble, ClassInt64, ClassLogical:
		for i := 0; i < a.r; i++ {
			sb.WriteString("\n[")
			for j := 0; j < a.c; j++ {
				if j > 0 {
					sb.WriteString(", ")
				}
				off := i + j*a.r
				switch a.class {
				case ClassDouble:
					fmt.Fprintf(&sb, "%g", a.f64[off])
				case ClassInt64:
					fmt.Fprintf(&sb, "%d", a.i64[off])
				default:
					fmt.Fprintf(&sb, "%t", a.bools[off])
				}
			}
			sb.WriteString("]")
		}
	case ClassStruct:
		fmt.Fprintf(&sb, " {%s}", strings.Join(a.FieldNames(), ", "))
	}

	return sb.String()
}
