// SPDX-License-Identifier: MIT

// Package groupmix is the root of a small toolkit for running grouped
// Gaussian mixture clustering through a host-style calling convention.
//
// A caller hands over up to five positional arguments (a cell of groups,
// an algorithm selector and three optional settings) and asks for four
// outputs. Everything between those two ends lives in subpackages:
//
//	hostarray/ — column-major host values: double, logical, int64, cell, struct
//	invoke/    — argument validation, defaults, engine dispatch, output marshalling
//	engine/    — the Engine contract and a deterministic single-cluster Baseline
//	request/   — YAML request documents and YAML responses
//	cmd/groupmix — command line front end
//
// Quick example:
//
//	d := invoke.NewDispatcher(invoke.WithEngine(invoke.GMC, engine.Baseline{}))
//	out, err := d.Call(4, groups, hostarray.Scalar(2))
//
// Clustering engines are pluggable; invoke only owns the contract between the
// caller and whichever engine is registered for a selector.
package groupmix
