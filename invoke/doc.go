// SPDX-License-Identifier: MIT

// Package invoke is the request-marshalling and dispatch layer in front of a
// group-structured clustering engine.
//
// What & Why:
//
//	A host environment calls
//
//	    invoke(groups, algorithm, [sparse], [verbose], [cluster_width])
//	        -> (free_energy, responsibilities, weights, model)
//
//	with loosely-typed hostarray values. Validate checks them against a
//	positional schema and builds a fully-defaulted Config; Dispatcher.Run
//	routes to the SGMC (1) or GMC (2) engine; Marshal converts the engine's
//	gonum results back into host arrays.
//
// Errors:
//
//	Every failure maps to one of ErrArity, ErrShapeType, ErrConfig or
//	ErrEngine and is terminal for the invocation. Argument failures are
//	*ArgError (with the 1-based position), engine failures *EngineError
//	(message verbatim).
//
// Concurrency:
//
//	Each call builds fresh state; a Dispatcher holds no mutable state after
//	construction.
package invoke
