// SPDX-License-Identifier: MIT

package engine

import (
	"fmt"
	"io"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distmv"
)

// Baseline is a deterministic single-cluster engine.
// MAIN DESCRIPTION:
//   - Fits one Gaussian to the pooled observations of all groups.
//   - Lets the dispatch layer and CLI run end to end without the external
//     variational learners.
//
// Implementation:
//   - Stage 1: check groups share D ≥ 1 and hold at least one observation.
//   - Stage 2: pool rows; mean via stat.Mean, covariance via stat.CovarianceMatrix.
//   - Stage 3: add ClusterWidth to the covariance diagonal (ridge).
//   - Stage 4: free energy = −Σ log N(x | μ, Σ) via distmv.Normal.
//
// Behavior highlights:
//   - K = 1; every responsibility is 1; every group weight vector is [1].
//   - Sparse is accepted and has no effect with a single cluster.
//   - Verbose writes one summary line to the sink.
//
// Errors:
//   - *LogicError: no groups, D = 0, ragged D, no observations, width ≤ 0.
//   - *RuntimeError: covariance not positive definite, non-finite likelihood.
//
// Complexity:
//   - Time O(N·D²), Space O(N·D).
type Baseline struct{}

var _ Engine = Baseline{}

// Learn implements Engine.
func (Baseline) Learn(groups []mat.Matrix, opts Options, sink io.Writer) (Result, error) {
	if sink == nil {
		sink = io.Discard
	}
	if len(groups) == 0 {
		return Result{}, Logicf("baseline: no groups")
	}
	_, d := groups[0].Dims()
	if d == 0 {
		return Result{}, Logicf("baseline: observations have no dimensions")
	}
	n := 0
	for j, g := range groups {
		r, c := g.Dims()
		if c != d {
			return Result{}, Logicf("baseline: group %d has %d dimensions, want %d", j, c, d)
		}
		n += r
	}
	if n == 0 {
		return Result{}, Logicf("baseline: no observations")
	}
	if !(opts.ClusterWidth > 0) {
		return Result{}, Logicf("baseline: cluster width must be positive, got %g", opts.ClusterWidth)
	}

	// Pool all groups row by row, preserving group order.
	pooled := mat.NewDense(n, d, nil)
	row := 0
	for _, g := range groups {
		r, _ := g.Dims()
		for i := 0; i < r; i++ {
			for k := 0; k < d; k++ {
				pooled.Set(row, k, g.At(i, k))
			}
			row++
		}
	}

	mean := make([]float64, d)
	col := make([]float64, n)
	for k := 0; k < d; k++ {
		mat.Col(col, k, pooled)
		mean[k] = stat.Mean(col, nil)
	}

	// A single observation has no spread; the ridge alone keeps Σ definite.
	cov := mat.NewSymDense(d, nil)
	if n > 1 {
		stat.CovarianceMatrix(cov, pooled, nil)
	}
	for k := 0; k < d; k++ {
		cov.SetSym(k, k, cov.At(k, k)+opts.ClusterWidth)
	}

	normal, ok := distmv.NewNormal(mean, cov, nil)
	if !ok {
		return Result{}, Runtimef("baseline: covariance is not positive definite")
	}
	var logLik float64
	for i := 0; i < n; i++ {
		logLik += normal.LogProb(pooled.RawRowView(i))
	}
	if math.IsNaN(logLik) || math.IsInf(logLik, 0) {
		return Result{}, Runtimef("baseline: log-likelihood is not finite")
	}

	res := Result{
		FreeEnergy:       -logLik,
		Responsibilities: make([]mat.Matrix, len(groups)),
		Weights:          make([]mat.Vector, len(groups)),
		Model: Mixture{Clusters: []Cluster{{
			Weight: 1,
			Mean:   mat.NewVecDense(d, append([]float64(nil), mean...)),
			Cov:    cov,
		}}},
	}
	for j, g := range groups {
		r, _ := g.Dims()
		res.Responsibilities[j] = ones(r)
		res.Weights[j] = mat.NewVecDense(1, []float64{1})
	}

	if opts.Verbose {
		fmt.Fprintf(sink, "baseline: J=%d N=%d D=%d K=1 F=%g\n", len(groups), n, d, res.FreeEnergy)
	}

	return res, nil
}

// ones returns an r×1 matrix of ones, or an empty 0×1 matrix when r == 0.
func ones(r int) mat.Matrix {
	if r == 0 {
		return NewEmpty(0, 1)
	}
	buf := make([]float64, r)
	for i := range buf {
		buf[i] = 1
	}

	return mat.NewDense(r, 1, buf)
}
