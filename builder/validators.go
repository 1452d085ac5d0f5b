// Package builder provides validation helpers to enforce
// parameter contracts in Constructor factories.
//
// Each function returns a sentinel-wrapped error when its precondition
// is violated, so callers can branch with errors.Is.
package builder

import (
	"fmt"
	"math"
)

// validateMin ensures that got ≥ min.
// Returns "<Method>: <name>=<got> < min=<min>: ErrTooFewVertices" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return fmt.Errorf("%s: %s=%d < min=%d: %w", method, name, got, min, ErrTooFewVertices)
	}

	return nil
}

// validateBandwidthBounds enforces 0 ≤ min ≤ max with finite values.
// Returns ErrOptionViolation on failure.
//
// Complexity: O(1) time and space.
func validateBandwidthBounds(method string, min, max float64) error {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return fmt.Errorf("%s: bandwidth bounds must be finite, got [%g,%g]: %w", method, min, max, ErrOptionViolation)
	}
	if min < 0 || max < min {
		return fmt.Errorf("%s: require 0 ≤ min ≤ max, got min=%g, max=%g: %w", method, min, max, ErrOptionViolation)
	}

	return nil
}

// squareCapped returns min(side², limit) for side, limit ≥ 0 without
// overflowing int.
//
// Complexity: O(1) time and space.
func squareCapped(side, limit int) int {
	if side > 0 && side > limit/side {
		return limit
	}

	return min(side*side, limit)
}

// exceedsPlane reports whether n nodes cannot fit on the hs×hs integer plane.
func exceedsPlane(n, hs int) bool {
	return squareCapped(hs, n) < n
}
