// SPDX-License-Identifier: MIT

// Package request reads invocation documents from YAML and writes the
// marshalled outputs back as YAML.
//
// A request mirrors the positional host call; optional keys left out become
// absent slots, so the validator's cascade rules apply unchanged:
//
//	algorithm: 2
//	sparse: true
//	verbose: false
//	cluster_width: 0.05
//	groups:
//	  - [[1, 2], [3, 4]]
//	  - [[5, 6]]
package request

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/groupmix/hostarray"
	"gopkg.in/yaml.v3"
)

// ErrDocument reports a request document that cannot be decoded.
var ErrDocument = errors.New("request: invalid document")

// Document is a decoded request. Pointer fields distinguish "not set".
type Document struct {
	Algorithm    *int          `yaml:"algorithm"`
	Sparse       *bool         `yaml:"sparse,omitempty"`
	Verbose      *bool         `yaml:"verbose,omitempty"`
	ClusterWidth *float64      `yaml:"cluster_width,omitempty"`
	Groups       [][][]float64 `yaml:"groups"`
}

// Decode parses one YAML request document. Unknown keys are rejected.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrDocument, err)
	}

	return doc, nil
}

// Args converts the document into the positional host argument list
// (groups, algorithm, sparse, verbose, cluster width). Unset keys are nil.
// Errors: ErrDocument when a group has ragged rows.
func (d Document) Args() ([]*hostarray.Array, error) {
	groups, err := hostarray.NewCell(1, len(d.Groups))
	if err != nil {
		return nil, err
	}
	for j, rows := range d.Groups {
		g, err := hostarray.DoubleFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: group %d: %v", ErrDocument, j, err)
		}
		_ = groups.SetCell(j, g) // j < len(d.Groups)
	}

	args := make([]*hostarray.Array, 5)
	args[0] = groups
	if d.Algorithm != nil {
		args[1] = hostarray.Int64Scalar(int64(*d.Algorithm))
	}
	if d.Sparse != nil {
		args[2] = hostarray.LogicalScalar(*d.Sparse)
	}
	if d.Verbose != nil {
		args[3] = hostarray.LogicalScalar(*d.Verbose)
	}
	if d.ClusterWidth != nil {
		args[4] = hostarray.Scalar(*d.ClusterWidth)
	}

	return args, nil
}

// IsVerbose reports whether the document asks for engine progress output.
func (d Document) IsVerbose() bool { return d.Verbose != nil && *d.Verbose }
