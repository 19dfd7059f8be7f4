// SPDX-License-Identifier: MIT

package invoke

import (
	"fmt"

	"github.com/katalvlaran/groupmix/engine"
	"github.com/katalvlaran/groupmix/hostarray"
	"gonum.org/v1/gonum/mat"
)

// Request is a validated, fully-defaulted invocation.
//   - Groups[j] is an N_j×Dim view over the caller's buffer (not a copy).
//   - Config holds the resolved selector and tuning parameters.
type Request struct {
	Groups []mat.Matrix
	Dim    int
	Config Config
}

// Validate turns a positional host argument list into a Request.
// MAIN DESCRIPTION:
//   - Enforces arity, the positional cascade, and each slot's class/shape.
//   - Normalises the group collection into gonum views.
//
// Implementation:
//   - Stage 1: trim trailing absent (nil) slots; check MinInputs..MaxInputs.
//   - Stage 2: reject an absent slot followed by a present one.
//   - Stage 3: check every slot against schema, then apply it to the builder;
//     groups are normalised as soon as slot 1 passes.
//
// Behavior highlights:
//   - Missing optional slots keep DefaultConfig values.
//   - No partial Request on failure.
//
// Errors:
//   - ErrArity: argument count, or slot k present with slot k-1 absent.
//   - ErrShapeType: wrong class/shape, ragged group widths, width ≤ 0.
//   - ErrConfig: selector not 1 (SGMC) or 2 (GMC).
//   - All argument failures are *ArgError carrying the position.
//
// Complexity:
//   - Time O(J), Space O(J); no observation data is copied.
func Validate(args ...*hostarray.Array) (Request, error) {
	n := len(args)
	for n > 0 && args[n-1] == nil {
		n--
	}
	if n < MinInputs || n > MaxInputs {
		return Request{}, fmt.Errorf("%w: got %d inputs, want %d to %d", ErrArity, n, MinInputs, MaxInputs)
	}
	args = args[:n]

	b := newConfigBuilder()
	var (
		groups []mat.Matrix
		dim    int
	)
	for i, a := range args {
		pos := i + 1
		if a == nil {
			// Report on the next present slot; trimming guarantees one exists.
			next := pos + 1
			for args[next-1] == nil {
				next++
			}
			return Request{}, argErrorf(next, ErrArity, "supplied without argument %d (%s)", pos, slotName(pos))
		}
		s := schema[pos]
		if err := s.check(pos, a); err != nil {
			return Request{}, err
		}
		if err := s.apply(b, pos, a); err != nil {
			return Request{}, err
		}
		if pos == posGroups {
			var err error
			if groups, dim, err = normalizeGroups(a); err != nil {
				return Request{}, err
			}
		}
	}
	cfg, err := b.build()
	if err != nil {
		return Request{}, err
	}

	return Request{Groups: groups, Dim: dim, Config: cfg}, nil
}

// normalizeGroups views each group of a cell array as a gonum matrix.
// MAIN DESCRIPTION:
//   - J is the larger outer dimension of the cell (row or column container).
//   - D is read from group 0 and every non-empty group must match it.
//
// Implementation:
//   - A column-major N×D buffer is the row-major D×N Dense; its transpose is
//     the N×D view handed to the engine.
//
// Behavior highlights:
//   - Groups with zero rows are accepted and presented as 0×D Empty matrices.
//
// Errors:
//   - ErrShapeType (*ArgError at position 1) for non-vector cells, J = 0,
//     non-double groups, D = 0, or a group whose width differs from D.
func normalizeGroups(cell *hostarray.Array) ([]mat.Matrix, int, error) {
	r, c := cell.Shape()
	if r > 1 && c > 1 {
		return nil, 0, argErrorf(posGroups, ErrShapeType, "should be a 1xJ or Jx1 cell array, got %dx%d", r, c)
	}
	j := max(r, c)
	if j == 0 || cell.Numel() == 0 {
		return nil, 0, argErrorf(posGroups, ErrShapeType, "should hold at least one group")
	}

	groups := make([]mat.Matrix, j)
	dim := 0
	for k := 0; k < j; k++ {
		g, _ := cell.Cell(k) // k < Numel
		if err := hostarray.ValidateClass(g, hostarray.ClassDouble); err != nil {
			return nil, 0, argErrorf(posGroups, ErrShapeType, "group %d should be a double matrix, got %s", k, describe(g))
		}
		n, d := g.Shape()
		if k == 0 {
			if d == 0 {
				return nil, 0, argErrorf(posGroups, ErrShapeType, "group 0 should have at least one column")
			}
			dim = d
		}
		if n == 0 {
			groups[k] = engine.NewEmpty(0, dim)
			continue
		}
		if d != dim {
			return nil, 0, argErrorf(posGroups, ErrShapeType, "group %d has %d columns, want %d", k, d, dim)
		}
		groups[k] = mat.NewDense(dim, n, g.Data()).T()
	}

	return groups, dim, nil
}
