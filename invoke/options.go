// SPDX-License-Identifier: MIT

// Package invoke: functional configuration for the Dispatcher.
//
// Design goals:
//   - No global state: every Dispatcher owns its engines, logger and sink.
//   - Safe by construction: panic only on nonsensical values (programmer error).
package invoke

import (
	"io"

	"github.com/katalvlaran/groupmix/engine"
	"github.com/sirupsen/logrus"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicUnknownAlgorithm = "invoke: WithEngine: unknown algorithm"
	panicNilEngine        = "invoke: WithEngine: engine is nil"
)

// Option mutates a Dispatcher under construction.
type Option func(*Dispatcher)

// WithEngine registers e as the entry point for alg.
// Panics if alg is not SGMC/GMC or e is nil.
func WithEngine(alg Algorithm, e engine.Engine) Option {
	if !alg.Valid() {
		panic(panicUnknownAlgorithm)
	}
	if e == nil {
		panic(panicNilEngine)
	}

	return func(d *Dispatcher) { d.engines[alg] = e }
}

// WithLogger sets the structured logger; nil keeps the default (discard).
func WithLogger(l logrus.FieldLogger) Option {
	return func(d *Dispatcher) {
		if l != nil {
			d.logger = l
		}
	}
}

// WithSink sets the write-only stream passed to engines; nil keeps io.Discard.
func WithSink(w io.Writer) Option {
	return func(d *Dispatcher) {
		if w != nil {
			d.sink = w
		}
	}
}

// discardLogger is the default: a logrus logger that writes nowhere.
func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
