// SPDX-License-Identifier: MIT

package invoke

import "fmt"

// Algorithm selects the clustering variant. The numeric codes are shared
// with the engine and callers and must not change.
type Algorithm int

const (
	// SGMC is the sparse/simplified group mixture variant.
	SGMC Algorithm = 1
	// GMC is the full group mixture variant.
	GMC Algorithm = 2
)

// String returns the variant name.
func (a Algorithm) String() string {
	switch a {
	case SGMC:
		return "SGMC"
	case GMC:
		return "GMC"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// Valid reports whether a is one of the known variants.
func (a Algorithm) Valid() bool { return a == SGMC || a == GMC }

// ParseAlgorithm resolves a selector code.
// Errors: ErrConfig for any code other than 1 or 2.
func ParseAlgorithm(code int) (Algorithm, error) {
	a := Algorithm(code)
	if !a.Valid() {
		return 0, fmt.Errorf("%w: unknown algorithm %d", ErrConfig, code)
	}

	return a, nil
}
