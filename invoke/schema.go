// SPDX-License-Identifier: MIT

// Package invoke: positional argument schema.
//
// Purpose:
//   - Declare, per argument position, the expected class and shape and how a
//     valid value lands in the Config.
//   - Keep Validate a loop over this table instead of per-arity branches.
package invoke

import (
	"fmt"
	"math"

	"github.com/katalvlaran/groupmix/hostarray"
)

// Argument positions (1-based, host convention).
const (
	posGroups       = 1
	posAlgorithm    = 2
	posSparse       = 3
	posVerbose      = 4
	posClusterWidth = 5
)

// Arity contract.
const (
	// MinInputs is the number of required arguments (groups, algorithm).
	MinInputs = posAlgorithm
	// MaxInputs is the number of positional arguments accepted.
	MaxInputs = posClusterWidth
	// NumOutputs is the exact number of outputs an invocation produces.
	NumOutputs = 4
)

// slotNames is indexed by position; index 0 is unused.
var slotNames = [MaxInputs + 1]string{
	posGroups:       "groups",
	posAlgorithm:    "algorithm",
	posSparse:       "sparse",
	posVerbose:      "verbose",
	posClusterWidth: "cluster width",
}

// slot describes one positional argument.
type slot struct {
	kind    error             // sentinel reported on class/shape failure
	classes []hostarray.Class // accepted classes
	scalar  bool              // must be 1×1
	want    string            // constraint text for messages
	apply   func(b *configBuilder, pos int, a *hostarray.Array) error
}

// schema is indexed by position; index 0 is unused.
var schema = [MaxInputs + 1]slot{
	posGroups: {
		kind:    ErrShapeType,
		classes: []hostarray.Class{hostarray.ClassCell},
		want:    "a cell array of double matrices",
		apply:   func(b *configBuilder, _ int, _ *hostarray.Array) error { return b.groups() },
	},
	posAlgorithm: {
		kind:    ErrConfig,
		classes: []hostarray.Class{hostarray.ClassDouble, hostarray.ClassInt64},
		scalar:  true,
		want:    "one numeric element",
		apply:   applyAlgorithm,
	},
	posSparse: {
		kind:    ErrShapeType,
		classes: []hostarray.Class{hostarray.ClassLogical},
		scalar:  true,
		want:    "one logical element",
		apply: func(b *configBuilder, _ int, a *hostarray.Array) error {
			v, _ := a.Bool(0, 0) // class and shape already checked
			return b.sparse(v)
		},
	},
	posVerbose: {
		kind:    ErrShapeType,
		classes: []hostarray.Class{hostarray.ClassLogical},
		scalar:  true,
		want:    "one logical element",
		apply: func(b *configBuilder, _ int, a *hostarray.Array) error {
			v, _ := a.Bool(0, 0)
			return b.verbose(v)
		},
	},
	posClusterWidth: {
		kind:    ErrShapeType,
		classes: []hostarray.Class{hostarray.ClassDouble},
		scalar:  true,
		want:    "one double element",
		apply:   applyClusterWidth,
	},
}

// slotName returns the argument name at pos, or "?" out of range.
func slotName(pos int) string {
	if pos < 1 || pos > MaxInputs {
		return "?"
	}

	return slotNames[pos]
}

// check validates class and shape of a against the slot.
func (s slot) check(pos int, a *hostarray.Array) error {
	var err error
	if s.scalar {
		err = hostarray.ValidateScalar(a, s.classes...)
	} else {
		err = hostarray.ValidateClass(a, s.classes...)
	}
	if err != nil {
		return argErrorf(pos, s.kind, "should be %s, got %s", s.want, describe(a))
	}

	return nil
}

func applyAlgorithm(b *configBuilder, pos int, a *hostarray.Array) error {
	v, _ := a.At(0, 0)
	if v != math.Trunc(v) || math.Abs(v) > math.MaxInt32 {
		return argErrorf(pos, ErrConfig, "should be an integer, got %g", v)
	}
	alg, err := ParseAlgorithm(int(v))
	if err != nil {
		return argErrorf(pos, ErrConfig, "unknown algorithm %d, want %d (%s) or %d (%s)", int(v), SGMC, SGMC, GMC, GMC)
	}

	return b.algorithm(alg)
}

func applyClusterWidth(b *configBuilder, pos int, a *hostarray.Array) error {
	v, _ := a.At(0, 0)
	if !(v > 0) || math.IsInf(v, 0) {
		return argErrorf(pos, ErrShapeType, "should be a positive finite real, got %g", v)
	}

	return b.clusterWidth(v)
}

// describe renders class and shape for messages.
func describe(a *hostarray.Array) string {
	if a == nil {
		return "nothing"
	}
	r, c := a.Shape()

	return fmt.Sprintf("%s %dx%d", a.Class(), r, c)
}
