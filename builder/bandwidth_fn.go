// Package builder provides helper functions and types for configuring
// link bandwidth distributions in topology constructors.
package builder

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// BandwidthDist selects the law used to draw link bandwidths.
type BandwidthDist int

const (
	// BandwidthConst gives every link bwMin.
	BandwidthConst BandwidthDist = 1
	// BandwidthUniform draws from U[bwMin, bwMax).
	BandwidthUniform BandwidthDist = 2
	// BandwidthExponential draws from an exponential law with mean bwMin.
	BandwidthExponential BandwidthDist = 3
	// BandwidthHeavyTailed draws from a Pareto law with scale bwMin, capped at bwMax.
	BandwidthHeavyTailed BandwidthDist = 4
)

// String renders the distribution for logs, flags and config files.
func (d BandwidthDist) String() string {
	switch d {
	case BandwidthConst:
		return "const"
	case BandwidthUniform:
		return "uniform"
	case BandwidthExponential:
		return "exponential"
	case BandwidthHeavyTailed:
		return "heavy-tailed"
	default:
		return fmt.Sprintf("bandwidth(%d)", int(d))
	}
}

// ParseBandwidthDist maps a distribution name to a BandwidthDist.
func ParseBandwidthDist(s string) (BandwidthDist, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "const", "constant":
		return BandwidthConst, nil
	case "uniform":
		return BandwidthUniform, nil
	case "exponential", "exp":
		return BandwidthExponential, nil
	case "heavy-tailed", "heavytailed", "ht", "pareto":
		return BandwidthHeavyTailed, nil
	default:
		return 0, fmt.Errorf("%s: %q: %w", MethodAssignBandwidth, s, ErrUnsupportedBandwidth)
	}
}

// BandwidthFn produces one link bandwidth from the given bit source.
// It must be deterministic for a given source state.
type BandwidthFn func(src rand.Source) float64

// ConstantBandwidthFn returns a BandwidthFn that always yields value.
// Panics if value < 0.
func ConstantBandwidthFn(value float64) BandwidthFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantBandwidthFn: value must be ≥ 0, got %g", value))
	}

	return func(_ rand.Source) float64 {
		return value
	}
}

// UniformBandwidthFn returns a BandwidthFn sampling U[min, max).
// Panics unless 0 ≤ min ≤ max.
func UniformBandwidthFn(min, max float64) BandwidthFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformBandwidthFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(src rand.Source) float64 {
		if max == min {
			return min
		}

		return distuv.Uniform{Min: min, Max: max, Src: src}.Rand()
	}
}

// ExponentialBandwidthFn returns a BandwidthFn sampling an exponential law
// with the given mean. A zero mean yields 0. Panics if mean < 0.
func ExponentialBandwidthFn(mean float64) BandwidthFn {
	if mean < 0 {
		panic(fmt.Sprintf("ExponentialBandwidthFn: mean must be ≥ 0, got %g", mean))
	}

	return func(src rand.Source) float64 {
		if mean == 0 {
			return 0
		}

		return distuv.Exponential{Rate: 1 / mean, Src: src}.Rand()
	}
}

// HeavyTailedBandwidthFn returns a BandwidthFn sampling a Pareto law with
// scale min and shape bandwidthParetoAlpha, capped at max.
// Panics unless 0 ≤ min ≤ max.
func HeavyTailedBandwidthFn(min, max float64) BandwidthFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("HeavyTailedBandwidthFn: require 0 ≤ min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(src rand.Source) float64 {
		if min == 0 {
			return 0
		}

		return math.Min(distuv.Pareto{Xm: min, Alpha: bandwidthParetoAlpha, Src: src}.Rand(), max)
	}
}

// NewBandwidthFn resolves (dist, min, max) into a BandwidthFn, returning
// sentinel errors instead of panicking.
func NewBandwidthFn(dist BandwidthDist, min, max float64) (BandwidthFn, error) {
	if err := validateBandwidthBounds(MethodAssignBandwidth, min, max); err != nil {
		return nil, err
	}

	switch dist {
	case BandwidthConst:
		return ConstantBandwidthFn(min), nil
	case BandwidthUniform:
		return UniformBandwidthFn(min, max), nil
	case BandwidthExponential:
		return ExponentialBandwidthFn(min), nil
	case BandwidthHeavyTailed:
		return HeavyTailedBandwidthFn(min, max), nil
	default:
		return nil, fmt.Errorf("%s: dist=%d: %w", MethodAssignBandwidth, int(dist), ErrUnsupportedBandwidth)
	}
}
