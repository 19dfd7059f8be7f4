// SPDX-License-Identifier: MIT

package invoke

import (
	"fmt"

	"github.com/katalvlaran/groupmix/engine"
	"github.com/katalvlaran/groupmix/hostarray"
	"gonum.org/v1/gonum/mat"
)

// Output positions.
const (
	OutFreeEnergy       = 0
	OutResponsibilities = 1
	OutWeights          = 2
	OutModel            = 3
)

// Mixture struct field names, in host order.
const (
	FieldK     = "K"
	FieldW     = "w"
	FieldMu    = "mu"
	FieldSigma = "sigma"
)

// Marshal converts engine results into exactly NumOutputs host values:
//
//	[0] free energy        1×1 double
//	[1] responsibilities   1×J cell of N_j×K doubles
//	[2] weights            1×J cell of 1×K doubles
//	[3] model              1×1 struct {K, w: 1×K cell, mu: 1×K cell of 1×D, sigma: 1×K cell of D×D}
//
// Behavior highlights:
//   - nout is checked before anything is built; res is discarded on mismatch.
//   - Group order and matrix dimensions are preserved exactly.
//
// Errors:
//   - ErrArity when nout != NumOutputs.
//   - ErrEngine (*EngineError wrapping *engine.LogicError) when res breaks the
//     engine contract (group count, N_j, K or D disagree with req).
//
// Complexity:
//   - Time O(Σ N_j·K + K·D²), Space the same.
func Marshal(req Request, res engine.Result, nout int) ([]*hostarray.Array, error) {
	if nout != NumOutputs {
		return nil, fmt.Errorf("%w: got %d outputs, want %d", ErrArity, nout, NumOutputs)
	}

	return marshalResult(req, res)
}

// marshalResult converts res after the arity check. A panic while reading
// engine-owned values (e.g. a typed-nil matrix) is a contract violation.
func marshalResult(req Request, res engine.Result) (out []*hostarray.Array, err error) {
	contract := func(format string, args ...any) error {
		return &EngineError{Algorithm: req.Config.Algorithm, Err: engine.Logicf("invoke: engine result: "+format, args...)}
	}
	defer func() {
		if r := recover(); r != nil {
			out, err = nil, contract("%v", r)
		}
	}()

	j := len(req.Groups)
	if len(res.Responsibilities) != j || len(res.Weights) != j {
		return nil, contract("%d responsibility matrices and %d weight vectors for %d groups",
			len(res.Responsibilities), len(res.Weights), j)
	}
	k := res.Model.K()

	qz, _ := hostarray.NewCell(1, j)
	wj, _ := hostarray.NewCell(1, j)
	for g := 0; g < j; g++ {
		if res.Responsibilities[g] == nil || res.Weights[g] == nil {
			return nil, contract("group %d has no responsibilities or weights", g)
		}
		n, _ := req.Groups[g].Dims()
		rq, cq := res.Responsibilities[g].Dims()
		if rq != n || cq != k {
			return nil, contract("group %d responsibilities are %dx%d, want %dx%d", g, rq, cq, n, k)
		}
		if l := res.Weights[g].Len(); l != k {
			return nil, contract("group %d weights have length %d, want %d", g, l, k)
		}
		_ = qz.SetCell(g, matrixToHost(res.Responsibilities[g]))
		_ = wj.SetCell(g, vectorToRow(res.Weights[g]))
	}

	model, err := mixtureToHost(res.Model, req.Dim)
	if err != nil {
		return nil, contract("%v", err)
	}

	return []*hostarray.Array{hostarray.Scalar(res.FreeEnergy), qz, wj, model}, nil
}

// matrixToHost copies an r×c gonum matrix into a column-major host double.
func matrixToHost(m mat.Matrix) *hostarray.Array {
	r, c := m.Dims()
	buf := make([]float64, r*c)
	for j := 0; j < c; j++ {
		for i := 0; i < r; i++ {
			buf[i+j*r] = m.At(i, j)
		}
	}
	a, _ := hostarray.DoubleFrom(r, c, buf) // len(buf) == r*c

	return a
}

// vectorToRow copies a gonum vector into a 1×n host double.
func vectorToRow(v mat.Vector) *hostarray.Array {
	buf := make([]float64, v.Len())
	for i := range buf {
		buf[i] = v.AtVec(i)
	}
	a, _ := hostarray.DoubleFrom(1, len(buf), buf)

	return a
}

// mixtureToHost serialises the mixture into the host struct record.
func mixtureToHost(m engine.Mixture, dim int) (*hostarray.Array, error) {
	k := m.K()
	w, _ := hostarray.NewCell(1, k)
	mu, _ := hostarray.NewCell(1, k)
	sigma, _ := hostarray.NewCell(1, k)
	for c, cl := range m.Clusters {
		if cl.Mean == nil || cl.Cov == nil {
			return nil, fmt.Errorf("cluster %d has no mean or covariance", c)
		}
		if l := cl.Mean.Len(); l != dim {
			return nil, fmt.Errorf("cluster %d mean has length %d, want %d", c, l, dim)
		}
		if s := cl.Cov.SymmetricDim(); s != dim {
			return nil, fmt.Errorf("cluster %d covariance is %dx%d, want %dx%d", c, s, s, dim, dim)
		}
		_ = w.SetCell(c, hostarray.Scalar(cl.Weight))
		_ = mu.SetCell(c, vectorToRow(cl.Mean))
		_ = sigma.SetCell(c, matrixToHost(cl.Cov))
	}

	s := hostarray.NewStruct(FieldK, FieldW, FieldMu, FieldSigma)
	_ = s.SetField(FieldK, hostarray.Scalar(float64(k)))
	_ = s.SetField(FieldW, w)
	_ = s.SetField(FieldMu, mu)
	_ = s.SetField(FieldSigma, sigma)

	return s, nil
}
