package geometry

import (
	"math"
	"testing"

	"github.com/mhollis/hyperlattice/pkg/math4"
)

func TestDistanceZeroAnglesMatchesManualPipeline(t *testing.T) {
	params := DefaultParams()
	p := math4.V4(1, 2, 3, 4)

	// With zero angles the rotation is the identity; the working point
	// is the raw perspective projection re-lifted with w.
	proj := math4.Project4Dto3D(p)
	want := TetrahedronField(proj.Lift(4), params, 0)

	got := Distance(p, 0, math4.RotationAngles{}, params, 0)
	if !almostEqual(got, want, eps) {
		t.Fatalf("Distance = %v, want %v", got, want)
	}
}

func TestDistanceIndexWraps(t *testing.T) {
	params := DefaultParams()
	angles := math4.RotationAngles{XY: 0.5, YW: -1.2}
	p := math4.V4(0.4, -1.1, 2.2, 0.6)

	tests := []struct{ a, b int }{
		{0, 24},
		{3, 27},
		{-1, 23},
	}
	for _, tt := range tests {
		va := Distance(p, tt.a, angles, params, 1.5)
		vb := Distance(p, tt.b, angles, params, 1.5)
		if va != vb {
			t.Errorf("index %d vs %d: %v != %v", tt.a, tt.b, va, vb)
		}
	}
}

// TestDistanceHypersphereNearBaseAtZeroMorph pins the documented
// minimum-blend behavior: index 8 with MorphFactor 0 stays within 0.25
// of index 0 at the same point, but is not required to be exactly equal.
func TestDistanceHypersphereNearBaseAtZeroMorph(t *testing.T) {
	params := DefaultParams()
	params.MorphFactor = 0
	params.Dimension = 3.5
	angles := math4.RotationAngles{XY: 0.3, XW: 0.8}

	points := []math4.Vec4{
		{X: 1, Y: 0.5, Z: -0.3, W: 0.2},
		{X: 0.1, Y: 2, Z: 1, W: -1},
		{X: -0.7, Y: -0.7, Z: 0.7, W: 0.7},
	}
	for _, p := range points {
		base := Distance(p, 0, angles, params, 0.5)
		warped := Distance(p, 8, angles, params, 0.5)
		if math.Abs(base-warped) > 0.25 {
			t.Errorf("point %+v: |%v - %v| > 0.25", p, base, warped)
		}
	}
}

func TestDistanceChaosJitter(t *testing.T) {
	base := DefaultParams()
	chaotic := base
	chaotic.Chaos = 0.8

	angles := math4.RotationAngles{XZ: 0.9}
	p := math4.V4(0.33, 0.71, -0.25, 1.4)

	clean := Distance(p, 5, angles, base, 2.0)
	noisy := Distance(p, 5, angles, chaotic, 2.0)

	diff := math.Abs(noisy - clean)
	if diff == 0 {
		t.Error("chaos had no effect")
	}
	if diff > chaotic.Chaos*ChaosScale+eps {
		t.Errorf("chaos term %v exceeds bound %v", diff, chaotic.Chaos*ChaosScale)
	}

	// The jitter is deterministic, not random.
	if again := Distance(p, 5, angles, chaotic, 2.0); again != noisy {
		t.Error("chaotic distance not reproducible")
	}
}

func TestDistanceAllVariantsFinite(t *testing.T) {
	params := DefaultParams()
	params.Chaos = 0.5
	angles := math4.RotationAngles{XY: 0.2, XZ: -0.4, YZ: 0.6, XW: -0.8, YW: 1.0, ZW: -1.2}

	points := []math4.Vec4{
		{},
		{X: 1, Y: 1, Z: 1, W: 1},
		{X: -3, Y: 2, Z: -1, W: 4},
		{X: 0.001, Y: -0.001, Z: 0.001, W: -2.4999}, // near the projection pole
	}
	for index := 0; index < 24; index++ {
		for _, p := range points {
			v := Distance(p, index, angles, params, 1.0)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("index %d (%s) at %+v: non-finite %v", index, GeometryName(index), p, v)
			}
		}
	}
}
