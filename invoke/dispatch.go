// SPDX-License-Identifier: MIT

package invoke

import (
	"fmt"
	"io"

	"github.com/katalvlaran/groupmix/engine"
	"github.com/katalvlaran/groupmix/hostarray"
	"github.com/sirupsen/logrus"
)

// Stage names one step of an invocation; used as the "stage" log field.
type Stage string

// Invocation stages: START → VALIDATING → DISPATCHING → MARSHALLING → DONE.
// Any stage may end in FAILED, which is terminal.
const (
	StageValidating  Stage = "validating"
	StageDispatching Stage = "dispatching"
	StageMarshalling Stage = "marshalling"
	StageDone        Stage = "done"
	StageFailed      Stage = "failed"
)

// Dispatcher routes validated requests to one of two engine entry points and
// marshals the results. It is immutable after NewDispatcher and safe for
// concurrent use as long as the registered engines are.
type Dispatcher struct {
	engines map[Algorithm]engine.Engine
	logger  logrus.FieldLogger
	sink    io.Writer
}

// NewDispatcher builds a Dispatcher. Without WithEngine options every call
// fails with ErrConfig.
func NewDispatcher(opts ...Option) *Dispatcher {
	d := &Dispatcher{
		engines: make(map[Algorithm]engine.Engine, 2),
		logger:  discardLogger(),
		sink:    io.Discard,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Call runs one full invocation: validate args, run the selected engine and
// marshal exactly nout outputs.
// MAIN DESCRIPTION:
//   - Host-facing entry point mirroring invoke(groups, alg, [sparse], [verbose], [width]).
//
// Behavior highlights:
//   - nout is checked only after the engine succeeded; on mismatch the results
//     are discarded and ErrArity is returned.
//   - Every failure is terminal; no outputs are returned alongside an error.
//
// Errors:
//   - see Validate, Run and Marshal.
func (d *Dispatcher) Call(nout int, args ...*hostarray.Array) ([]*hostarray.Array, error) {
	log := d.logger.WithField("stage", StageValidating)
	log.WithField("inputs", len(args)).Debug("validating request")

	req, err := Validate(args...)
	if err != nil {
		log.WithError(err).Debug("request rejected")
		return nil, err
	}

	res, err := d.Run(req)
	if err != nil {
		return nil, err
	}

	log = d.logger.WithFields(logrus.Fields{"stage": StageMarshalling, "outputs": nout})
	out, err := Marshal(req, res, nout)
	if err != nil {
		log.WithError(err).Debug("marshalling failed")
		return nil, err
	}
	log.WithField("stage", StageDone).Debug("invocation complete")

	return out, nil
}

// Run invokes the engine registered for req.Config.Algorithm exactly once.
// MAIN DESCRIPTION:
//   - The error boundary between this layer and the engine.
//
// Behavior highlights:
//   - Engine errors and panics become a single *EngineError whose message is
//     the engine's, verbatim. No retry.
//
// Errors:
//   - ErrConfig: unknown selector or no engine registered for it.
//   - ErrEngine (*EngineError): any engine failure.
func (d *Dispatcher) Run(req Request) (res engine.Result, err error) {
	alg := req.Config.Algorithm
	log := d.logger.WithFields(logrus.Fields{
		"stage":     StageDispatching,
		"algorithm": alg.String(),
		"groups":    len(req.Groups),
	})

	if !alg.Valid() {
		return engine.Result{}, fmt.Errorf("%w: unknown algorithm %d", ErrConfig, int(alg))
	}
	eng, ok := d.engines[alg]
	if !ok {
		return engine.Result{}, fmt.Errorf("%w: no engine registered for %s", ErrConfig, alg)
	}

	defer func() {
		if r := recover(); r != nil {
			res, err = engine.Result{}, &EngineError{Algorithm: alg, Err: fmt.Errorf("%v", r)}
			log.WithError(err).WithField("stage", StageFailed).Error("engine panicked")
		}
	}()

	log.WithFields(logrus.Fields{
		"sparse":        req.Config.Sparse,
		"verbose":       req.Config.Verbose,
		"cluster_width": req.Config.ClusterWidth,
	}).Debug("dispatching to engine")

	res, err = eng.Learn(req.Groups, engine.Options{
		Sparse:       req.Config.Sparse,
		Verbose:      req.Config.Verbose,
		ClusterWidth: req.Config.ClusterWidth,
	}, d.sink)
	if err != nil {
		log.WithError(err).WithField("stage", StageFailed).Error("engine failed")
		return engine.Result{}, &EngineError{Algorithm: alg, Err: err}
	}
	log.WithFields(logrus.Fields{
		"free_energy": res.FreeEnergy,
		"clusters":    res.Model.K(),
	}).Debug("engine finished")

	return res, nil
}
