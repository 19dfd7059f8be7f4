// SPDX-License-Identifier: MIT
// Package invoke_test contains test helpers.
//
// Purpose:
//   - Provide deterministic host fixtures and recording engine doubles.

package invoke_test

import (
	"io"
	"testing"

	"github.com/katalvlaran/groupmix/engine"
	"github.com/katalvlaran/groupmix/hostarray"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// recorder is an engine double that records every call.
type recorder struct {
	calls  int
	groups []mat.Matrix
	opts   engine.Options
	res    engine.Result
	err    error
	write  string // written to the sink on every call
}

func (r *recorder) Learn(groups []mat.Matrix, opts engine.Options, sink io.Writer) (engine.Result, error) {
	r.calls++
	r.groups = groups
	r.opts = opts
	if r.write != "" {
		_, _ = io.WriteString(sink, r.write)
	}

	return r.res, r.err
}

// mustRows builds a host double from row literals or fails the test.
func mustRows(t *testing.T, rows [][]float64) *hostarray.Array {
	t.Helper()
	a, err := hostarray.DoubleFromRows(rows)
	require.NoError(t, err)

	return a
}

// twoGroups returns a 1×2 cell: group 0 is 2×2, group 1 is 1×2.
func twoGroups(t *testing.T) *hostarray.Array {
	t.Helper()

	return hostarray.CellOf(
		mustRows(t, [][]float64{{1, 2}, {3, 4}}),
		mustRows(t, [][]float64{{5, 6}}),
	)
}

// fixedResult matches twoGroups with K=2, D=2.
func fixedResult() engine.Result {
	return engine.Result{
		FreeEnergy: -12.5,
		Responsibilities: []mat.Matrix{
			mat.NewDense(2, 2, []float64{0.9, 0.1, 0.2, 0.8}),
			mat.NewDense(1, 2, []float64{0.5, 0.5}),
		},
		Weights: []mat.Vector{
			mat.NewVecDense(2, []float64{0.5, 0.5}),
			mat.NewVecDense(2, []float64{0.25, 0.75}),
		},
		Model: engine.Mixture{Clusters: []engine.Cluster{
			{Weight: 0.4, Mean: mat.NewVecDense(2, []float64{1, 2}), Cov: mat.NewSymDense(2, []float64{1, 0.5, 0.5, 2})},
			{Weight: 0.6, Mean: mat.NewVecDense(2, []float64{5, 6}), Cov: mat.NewSymDense(2, []float64{3, 0, 0, 4})},
		}},
	}
}

// validArgs returns a full five-argument list truncated to n.
func validArgs(t *testing.T, n int) []*hostarray.Array {
	t.Helper()
	all := []*hostarray.Array{
		twoGroups(t),
		hostarray.Scalar(1),
		hostarray.LogicalScalar(true),
		hostarray.LogicalScalar(true),
		hostarray.Scalar(0.5),
	}

	return all[:n]
}

// hostRows reads a host numeric array back into rows.
func hostRows(t *testing.T, a *hostarray.Array) [][]float64 {
	t.Helper()
	rows, err := a.Rows2D()
	require.NoError(t, err)

	return rows
}
