// Package geometry implements the 24-variant procedural field: the
// geometry-index codec, the eight base scalar fields, the two core-warp
// transforms, and the dispatcher that composes them with the rotation
// pipeline. Everything is a pure function; time is always an explicit
// argument so results are replayable.
package geometry

import "math"

// Params holds the stateless scalar knobs shared by every field and
// warp. It carries no clock; callers pass time explicitly.
type Params struct {
	// GridDensity sets the lattice frequency of the periodic fields.
	GridDensity float64
	// MorphFactor scales every field's output and drives the core-warp
	// blend weight.
	MorphFactor float64
	// Chaos in [0,1] adds a deterministic high-frequency jitter term in
	// the dispatcher. Zero disables it entirely.
	Chaos float64
	// Dimension in [3,4] feeds the synthetic-w amplitude of the core
	// warps: 3 is flat, 4 is fully four-dimensional.
	Dimension float64
	// Speed multiplies time inside the Wave field.
	Speed float64
}

// DefaultParams returns the reference parameter set.
func DefaultParams() Params {
	return Params{
		GridDensity: 8,
		MorphFactor: 1,
		Chaos:       0,
		Dimension:   3.5,
		Speed:       1,
	}
}

// IsFinite reports whether every knob is a finite number.
func (p Params) IsFinite() bool {
	for _, v := range [5]float64{p.GridDensity, p.MorphFactor, p.Chaos, p.Dimension, p.Speed} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
