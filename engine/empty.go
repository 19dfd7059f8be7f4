// SPDX-License-Identifier: MIT

package engine

import "gonum.org/v1/gonum/mat"

// Empty is a mat.Matrix with zero rows or zero columns. gonum's Dense refuses
// zero-length shapes, but a group may legitimately hold no observations.
type Empty struct {
	rows, cols int
}

var _ mat.Matrix = Empty{}

// NewEmpty returns a rows×cols empty matrix; one of rows, cols must be 0.
func NewEmpty(rows, cols int) Empty {
	if rows != 0 && cols != 0 {
		panic("engine: NewEmpty: shape is not empty")
	}

	return Empty{rows: rows, cols: cols}
}

// Dims returns the shape.
func (e Empty) Dims() (r, c int) { return e.rows, e.cols }

// At always panics: an empty matrix has no elements.
func (e Empty) At(i, j int) float64 { panic(mat.ErrIndexOutOfRange) }

// T returns the transposed empty matrix.
func (e Empty) T() mat.Matrix { return Empty{rows: e.cols, cols: e.rows} }
