// SPDX-License-Identifier: MIT

// Package invoke: resolved configuration and its positional builder.
//
// Purpose:
//   - Hold the fully-defaulted tuning parameters of one invocation.
//   - Fill them strictly in argument order: slot k may be set only after slot k-1.
//
// Notes:
//   - Config is a value type; once Build returns it, nothing can mutate the
//     copy handed to the dispatcher.
package invoke

import "fmt"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSparse leaves the original (non-sparse) learning mode on.
	DefaultSparse = false

	// DefaultVerbose keeps the engine quiet.
	DefaultVerbose = false

	// DefaultClusterWidth is the prior width over cluster assignments.
	DefaultClusterWidth = 0.01
)

// Config is the resolved configuration of one invocation.
type Config struct {
	Algorithm    Algorithm
	Sparse       bool
	Verbose      bool
	ClusterWidth float64
}

// DefaultConfig returns the defaults for every optional slot. Algorithm is
// left unset; it is always supplied by the caller.
func DefaultConfig() Config {
	return Config{
		Sparse:       DefaultSparse,
		Verbose:      DefaultVerbose,
		ClusterWidth: DefaultClusterWidth,
	}
}

// configBuilder fills a Config positionally.
// MAIN DESCRIPTION:
//   - Slot 1 is the group collection (validated elsewhere, only marked here).
//   - Slots 2..5 map to Algorithm, Sparse, Verbose, ClusterWidth.
//
// Behavior highlights:
//   - Setting slot k while slot k-1 is unset fails with ErrArity.
//   - Unset optional slots keep DefaultConfig values.
type configBuilder struct {
	cfg    Config
	filled int // highest contiguous slot set so far
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{cfg: DefaultConfig()}
}

// advance marks slot pos as filled, refusing gaps.
func (b *configBuilder) advance(pos int) error {
	if pos <= b.filled {
		return argErrorf(pos, ErrArity, "supplied twice")
	}
	if pos != b.filled+1 {
		return argErrorf(pos, ErrArity, "supplied without argument %d (%s)", b.filled+1, slotName(b.filled+1))
	}
	b.filled = pos

	return nil
}

func (b *configBuilder) groups() error { return b.advance(posGroups) }

func (b *configBuilder) algorithm(a Algorithm) error {
	if err := b.advance(posAlgorithm); err != nil {
		return err
	}
	b.cfg.Algorithm = a

	return nil
}

func (b *configBuilder) sparse(v bool) error {
	if err := b.advance(posSparse); err != nil {
		return err
	}
	b.cfg.Sparse = v

	return nil
}

func (b *configBuilder) verbose(v bool) error {
	if err := b.advance(posVerbose); err != nil {
		return err
	}
	b.cfg.Verbose = v

	return nil
}

func (b *configBuilder) clusterWidth(w float64) error {
	if err := b.advance(posClusterWidth); err != nil {
		return err
	}
	b.cfg.ClusterWidth = w

	return nil
}

// build returns the Config once the required slots are present.
func (b *configBuilder) build() (Config, error) {
	if b.filled < MinInputs {
		return Config{}, fmt.Errorf("%w: got %d inputs, want %d to %d", ErrArity, b.filled, MinInputs, MaxInputs)
	}

	return b.cfg, nil
}
