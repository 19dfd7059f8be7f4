// SPDX-License-Identifier: MIT

package engine

import "fmt"

// LogicError reports an inconsistency in the input detected inside an engine.
type LogicError struct{ Msg string }

func (e *LogicError) Error() string { return e.Msg }

// RuntimeError reports a numerical or convergence failure inside an engine.
type RuntimeError struct{ Msg string }

func (e *RuntimeError) Error() string { return e.Msg }

// Logicf formats a *LogicError.
func Logicf(format string, args ...any) error {
	return &LogicError{Msg: fmt.Sprintf(format, args...)}
}

// Runtimef formats a *RuntimeError.
func Runtimef(format string, args ...any) error {
	return &RuntimeError{Msg: fmt.Sprintf(format, args...)}
}
