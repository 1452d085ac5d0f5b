// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w` with the method name first:
//       fmt.Errorf("%s: m=%d < min=%d: %w", methodBarabasiAlbert, m, 1, ErrTooFewVertices)
//   • Algorithms MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).
//
// Classes:
//   • Invariant violations (configuration): ErrTooFewVertices, ErrNeedRandSource,
//     ErrUnsupportedPlacement, ErrUnsupportedBandwidth, ErrOptionViolation,
//     ErrInvalidParams. Checked before any graph mutation.
//   • Construction failures: ErrConstructFailed. The run is aborted and no
//     graph is returned.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, m, plane side) is
// smaller than the allowed minimum, or that n does not exceed m.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates that a stochastic constructor requires a
// random source (WithSeed/WithRand/WithSource must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder exhausted permitted attempts
// or candidates and could not construct a topology without breaking
// invariants (no loops / no multi-edges / bounded retries).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnsupportedPlacement indicates an unknown node placement type.
var ErrUnsupportedPlacement = errors.New("builder: unsupported placement type")

// ErrUnsupportedBandwidth indicates an unknown bandwidth distribution.
var ErrUnsupportedBandwidth = errors.New("builder: unsupported bandwidth distribution")

// ErrOptionViolation indicates a meaningless numeric argument that must
// surface as an error rather than a panic (e.g., bandwidth bounds).
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrInvalidParams indicates that model parameters failed validation.
var ErrInvalidParams = errors.New("builder: invalid model parameters")

// ErrSourceExhausted indicates a ReplaySource was drawn past its recorded end.
var ErrSourceExhausted = errors.New("builder: replay source exhausted")
