package geometry

import (
	"math"

	"github.com/mhollis/hyperlattice/pkg/math4"
)

// Chaos jitter frequencies, the usual shader-noise dot constants.
const (
	ChaosFreqX = 12.9898
	ChaosFreqY = 78.233
	ChaosFreqZ = 37.719
	ChaosScale = 0.1
)

// Distance evaluates the full two-stage pipeline for one sample: decode
// the variant, rotate the 4D point through all six planes, project to
// 3D, apply the variant's core warp if any, re-lift with the rotated w,
// and evaluate the base field. A deterministic chaos jitter is added
// last; it vanishes when params.Chaos is zero.
//
// Identical inputs always produce identical outputs, so callers may
// evaluate concurrently and replay freely.
func Distance(p math4.Vec4, index int, angles math4.RotationAngles, params Params, time float64) float64 {
	base, core := Decode(index)

	rotated := math4.Apply6DRotation(p, angles)
	working := math4.Project4Dto3D(rotated)

	switch core {
	case CoreHypersphere:
		working = WarpHypersphere(working, base, angles, params, time)
	case CoreHypertetra:
		working = WarpHypertetra(working, base, angles, params, time)
	}

	q := working.Lift(rotated.W)
	v := baseFields[base](q, params, time)

	if params.Chaos != 0 {
		v += params.Chaos * ChaosScale *
			math.Sin(ChaosFreqX*q.X+ChaosFreqY*q.Y+ChaosFreqZ*q.Z+time)
	}
	return v
}
