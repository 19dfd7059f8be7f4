// SPDX-License-Identifier: MIT

// Package engine defines the contract of a group-structured clustering engine
// as seen by the dispatch layer, plus a deterministic Baseline implementation.
//
// What & Why:
//
//	The variational learners (GMC and SGMC) live outside this module. The
//	dispatcher only needs a capability with a fixed signature, so Engine is an
//	interface and Func adapts plain functions (including test doubles).
//
// Representation:
//
//	Groups arrive as gonum mat.Matrix values (often zero-copy transposed views
//	over host buffers). Results are gonum matrices and vectors; empty shapes
//	that gonum's Dense cannot hold are expressed with Empty.
package engine

import (
	"io"

	"gonum.org/v1/gonum/mat"
)

// Options carries the resolved tuning parameters for one learning run.
type Options struct {
	Sparse       bool    // prune clusters that receive no support
	Verbose      bool    // write progress to the sink
	ClusterWidth float64 // prior width over cluster assignments, > 0
}

// Cluster is one global mixture component.
type Cluster struct {
	Weight float64
	Mean   *mat.VecDense // length D
	Cov    *mat.SymDense // D×D
}

// Mixture is the global mixture model shared by all groups.
type Mixture struct {
	Clusters []Cluster
}

// K returns the number of clusters.
func (m Mixture) K() int { return len(m.Clusters) }

// Result is everything a learning run produces.
//   - Responsibilities[j] is N_j×K; every row sums to 1.
//   - Weights[j] has length K.
type Result struct {
	FreeEnergy       float64
	Responsibilities []mat.Matrix
	Weights          []mat.Vector
	Model            Mixture
}

// Engine learns a group mixture from J observation matrices of equal width.
// Implementations report malformed input with a *LogicError and numerical or
// convergence failures with a *RuntimeError. sink is write-only and may be
// written even when opts.Verbose is false.
type Engine interface {
	Learn(groups []mat.Matrix, opts Options, sink io.Writer) (Result, error)
}

// Func adapts an ordinary function to the Engine interface.
type Func func(groups []mat.Matrix, opts Options, sink io.Writer) (Result, error)

// Learn calls f.
func (f Func) Learn(groups []mat.Matrix, opts Options, sink io.Writer) (Result, error) {
	return f(groups, opts, sink)
}
