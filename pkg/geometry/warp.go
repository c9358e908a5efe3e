package geometry

import (
	"math"

	"github.com/mhollis/hyperlattice/pkg/math4"
)

// Core-warp tuning constants. The blend floor is intentional: even at
// MorphFactor 0 the warp contributes 45% of the displaced point.
const (
	BlendFloor           = 0.45
	BlendRange           = 0.55
	HyperspherePhaseRate = 0.8
	HypertetraPhaseRate  = 0.6
)

// coreScale spreads the synthetic-w frequency across the eight base
// fields so each variant warps at a distinct rate.
func coreScale(base Base) float64 {
	return 1 + 0.25*float64(base)
}

// warpAmplitude is the magnitude of the synthetic fourth coordinate:
// grows with MorphFactor and with Dimension above 3.
func warpAmplitude(params Params) float64 {
	return 0.3*clamp01(params.MorphFactor) + 0.2*clamp01(params.Dimension-3)
}

// blendWeight is the fraction of the re-projected point mixed into the
// original, never below the floor.
func blendWeight(params Params) float64 {
	return BlendFloor + BlendRange*clamp01(params.MorphFactor)
}

// reproject lifts a 3D point with a synthetic w, runs it through the
// full six-plane rotation, and projects it back to 3D. Shared tail of
// both core warps.
func reproject(p math4.Vec3, w float64, angles math4.RotationAngles) math4.Vec3 {
	rotated := math4.Apply6DRotation(p.Lift(w), angles)
	return math4.Project4Dto3D(rotated)
}

// WarpHypersphere displaces a projected 3D point through a synthetic
// fourth coordinate derived from its radius, re-rotates, re-projects,
// and blends with the original.
func WarpHypersphere(p math4.Vec3, base Base, angles math4.RotationAngles, params Params, time float64) math4.Vec3 {
	w := math.Sin(p.Length()*coreScale(base)+time*HyperspherePhaseRate) * warpAmplitude(params)
	return p.Lerp(reproject(p, w, angles), blendWeight(params))
}

// tetraCorners are the four unit directions toward the corners of a
// regular tetrahedron inscribed in the cube.
var tetraCorners = [4]math4.Vec3{
	{X: 1, Y: 1, Z: 1},
	{X: 1, Y: -1, Z: -1},
	{X: -1, Y: 1, Z: -1},
	{X: -1, Y: -1, Z: 1},
}

func init() {
	inv := 1 / math.Sqrt(3)
	for i := range tetraCorners {
		tetraCorners[i] = tetraCorners[i].Scale(inv)
	}
}

// WarpHypertetra is the tetrahedral variant of WarpHypersphere: the
// synthetic fourth coordinate derives from dot products against the four
// tetrahedral directions, and the blend is additionally attenuated by
// the minimum absolute plane distance, so points on a corner plane stay
// unwarped.
func WarpHypertetra(p math4.Vec3, base Base, angles math4.RotationAngles, params Params, time float64) math4.Vec3 {
	var sum, minAbs float64
	minAbs = math.Inf(1)
	for _, c := range tetraCorners {
		d := p.Dot(c)
		sum += d
		if a := math.Abs(d); a < minAbs {
			minAbs = a
		}
	}

	w := math.Sin(sum*coreScale(base)+time*HypertetraPhaseRate) * warpAmplitude(params)
	weight := blendWeight(params) * clamp01(minAbs)
	return p.Lerp(reproject(p, w, angles), weight)
}
