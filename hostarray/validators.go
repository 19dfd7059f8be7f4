// SPDX-License-Identifier: MIT
// Package: hostarray
//
// Purpose:
//  - Provide a single, canonical source of truth for class/shape checks on host values.
//  - Return sentinel errors wrapped with the validator tag so call sites can wrap uniformly.
//
// Note:
//  - Composite validators follow a fixed sequence: NotNil → Class → Shape.

package hostarray

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the array reference is non-nil.
func ValidateNotNil(a *Array) error {
	if a == nil {
		return validatorErrorf("ValidateNotNil", ErrNilArray)
	}

	return nil
}

// ValidateClass ensures a is non-nil and carries one of the allowed classes.
// Complexity: O(len(allowed)).
func ValidateClass(a *Array, allowed ...Class) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	for _, c := range allowed {
		if a.class == c {
			return nil
		}
	}

	return validatorErrorf("ValidateClass", ErrClassMismatch)
}

// ValidateScalar ensures a is non-nil, 1×1 and of one of the allowed classes.
// Order: NotNil → Shape → Class.
func ValidateScalar(a *Array, allowed ...Class) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateScalar", err)
	}
	if !a.IsScalar() {
		return validatorErrorf("ValidateScalar", ErrBadShape)
	}
	if err := ValidateClass(a, allowed...); err != nil {
		return validatorErrorf("ValidateScalar", err)
	}

	return nil
}

// ValidateFinite ensures every element of a numeric array is finite.
// Time: O(numel). Space: O(1).
func ValidateFinite(a *Array) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if a.class == ClassInt64 {
		return nil
	}
	if a.class != ClassDouble {
		return validatorErrorf("ValidateFinite", ErrClassMismatch)
	}
	for _, v := range a.f64 {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return validatorErrorf("ValidateFinite", ErrNaNInf)
		}
	}

	return nil
}
