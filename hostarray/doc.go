// SPDX-License-Identifier: MIT

// Package hostarray models the array values exchanged with the numerical host
// environment that calls into groupmix.
//
// What & Why:
//
//	Host environments hand over loosely-typed, column-major arrays: numeric
//	matrices, logical flags, cell containers of further arrays and record
//	structs. Array is a tagged variant over exactly those classes, so the
//	request validator can check each positional argument against a declared
//	class and shape instead of guessing at runtime types.
//
// Layout:
//
//	Storage is column-major (offset = i + j*rows) to match the host, which lets
//	numeric buffers be handed to gonum as zero-copy views. Zero-sized shapes
//	(0×n, m×0) are legal because hosts produce them routinely.
//
// Complexity:
//
//	Rows, Cols, At, Set, Cell and Field are O(1) (Field is O(#fields)).
//	Clone is O(numel) and deep for cells and structs.
package hostarray
