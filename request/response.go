// SPDX-License-Identifier: MIT

package request

import (
	"fmt"
	"io"

	"github.com/katalvlaran/groupmix/hostarray"
	"github.com/katalvlaran/groupmix/invoke"
	"gopkg.in/yaml.v3"
)

// Response is the YAML form of the four invocation outputs.
type Response struct {
	FreeEnergy       float64       `yaml:"free_energy"`
	Responsibilities [][][]float64 `yaml:"responsibilities"`
	Weights          [][]float64   `yaml:"weights"`
	Model            Model         `yaml:"model"`
}

// Model is the YAML form of the mixture struct.
type Model struct {
	K           int           `yaml:"K"`
	Weights     []float64     `yaml:"w"`
	Means       [][]float64   `yaml:"mu"`
	Covariances [][][]float64 `yaml:"sigma"`
}

// FromOutputs reads the host outputs produced by invoke.Marshal.
func FromOutputs(out []*hostarray.Array) (Response, error) {
	if len(out) != invoke.NumOutputs {
		return Response{}, fmt.Errorf("request: got %d outputs, want %d", len(out), invoke.NumOutputs)
	}
	var resp Response
	var err error

	if resp.FreeEnergy, err = out[invoke.OutFreeEnergy].At(0, 0); err != nil {
		return Response{}, fmt.Errorf("request: free energy: %w", err)
	}
	if resp.Responsibilities, err = cellMatrices(out[invoke.OutResponsibilities]); err != nil {
		return Response{}, fmt.Errorf("request: responsibilities: %w", err)
	}
	weights, err := cellMatrices(out[invoke.OutWeights])
	if err != nil {
		return Response{}, fmt.Errorf("request: weights: %w", err)
	}
	resp.Weights = firstRows(weights)
	if resp.Model, err = modelFrom(out[invoke.OutModel]); err != nil {
		return Response{}, fmt.Errorf("request: model: %w", err)
	}

	return resp, nil
}

// Encode writes the outputs as one YAML document.
func Encode(w io.Writer, out []*hostarray.Array) error {
	resp, err := FromOutputs(out)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("request: encode: %w", err)
	}

	return enc.Close()
}

// cellMatrices reads every slot of a cell as row slices.
func cellMatrices(cell *hostarray.Array) ([][][]float64, error) {
	if err := hostarray.ValidateClass(cell, hostarray.ClassCell); err != nil {
		return nil, err
	}
	out := make([][][]float64, cell.Numel())
	for k := range out {
		el, err := cell.Cell(k)
		if err != nil {
			return nil, err
		}
		if err := hostarray.ValidateNotNil(el); err != nil {
			return nil, fmt.Errorf("slot %d: %w", k, err)
		}
		if out[k], err = el.Rows2D(); err != nil {
			return nil, fmt.Errorf("slot %d: %w", k, err)
		}
	}

	return out, nil
}

// firstRows flattens 1×K matrices to their single row; empty matrices map to nil.
func firstRows(ms [][][]float64) [][]float64 {
	out := make([][]float64, len(ms))
	for i, m := range ms {
		if len(m) > 0 {
			out[i] = m[0]
		}
	}

	return out
}

func modelFrom(s *hostarray.Array) (Model, error) {
	if err := hostarray.ValidateClass(s, hostarray.ClassStruct); err != nil {
		return Model{}, err
	}
	k, err := s.Field(invoke.FieldK)
	if err != nil {
		return Model{}, err
	}
	kv, err := k.At(0, 0)
	if err != nil {
		return Model{}, err
	}
	m := Model{K: int(kv)}

	wField, err := s.Field(invoke.FieldW)
	if err != nil {
		return Model{}, err
	}
	w, err := cellMatrices(wField)
	if err != nil {
		return Model{}, err
	}
	for _, row := range firstRows(w) {
		if len(row) > 0 {
			m.Weights = append(m.Weights, row[0])
		}
	}

	muField, err := s.Field(invoke.FieldMu)
	if err != nil {
		return Model{}, err
	}
	mu, err := cellMatrices(muField)
	if err != nil {
		return Model{}, err
	}
	m.Means = firstRows(mu)

	sigmaField, err := s.Field(invoke.FieldSigma)
	if err != nil {
		return Model{}, err
	}
	if m.Covariances, err = cellMatrices(sigmaField); err != nil {
		return Model{}, err
	}

	return m, nil
}
