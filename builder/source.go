// SPDX-License-Identifier: MIT
// Package: lvtopo/builder
//
// source.go - uniform random sources for the attachment draw.
//
// Contract:
//   • UniformSource.Float64 returns a value in [0,1). That is the only
//     statistical property the interconnection phase relies on.
//   • *rand.Rand from golang.org/x/exp/rand satisfies UniformSource.
//   • RecordingSource/ReplaySource make a run replayable draw-for-draw,
//     rejected draws included.

package builder

// UniformSource produces uniform draws in [0,1).
type UniformSource interface {
	Float64() float64
}

// RecordingSource forwards to an inner source and keeps every draw.
type RecordingSource struct {
	inner UniformSource
	draws []float64
}

// NewRecordingSource wraps src. Panics on nil.
func NewRecordingSource(src UniformSource) *RecordingSource {
	if src == nil {
		panic("builder: NewRecordingSource(nil)")
	}

	return &RecordingSource{inner: src}
}

// Float64 draws from the inner source and records the value.
func (r *RecordingSource) Float64() float64 {
	v := r.inner.Float64()
	r.draws = append(r.draws, v)

	return v
}

// Draws returns a copy of every value produced so far, in order.
func (r *RecordingSource) Draws() []float64 {
	out := make([]float64, len(r.draws))
	copy(out, r.draws)

	return out
}

// ReplaySource yields a fixed sequence of draws.
//
// Drawing past the end yields 0 and latches ErrSourceExhausted, which the
// interconnection phase checks after every draw.
type ReplaySource struct {
	draws []float64
	pos   int
	err   error
}

// NewReplaySource returns a source replaying draws in order.
// The slice is copied.
func NewReplaySource(draws []float64) *ReplaySource {
	cp := make([]float64, len(draws))
	copy(cp, draws)

	return &ReplaySource{draws: cp}
}

// Float64 returns the next recorded draw.
func (r *ReplaySource) Float64() float64 {
	if r.pos >= len(r.draws) {
		r.err = ErrSourceExhausted
		return 0
	}
	v := r.draws[r.pos]
	r.pos++

	return v
}

// Remaining reports how many draws are left.
func (r *ReplaySource) Remaining() int { return len(r.draws) - r.pos }

// Err returns ErrSourceExhausted once the sequence has been overrun.
func (r *ReplaySource) Err() error { return r.err }

// sourceErr extracts a latched error from sources that expose one.
func sourceErr(src UniformSource) error {
	if e, ok := src.(interface{ Err() error }); ok {
		return e.Err()
	}

	return nil
}
