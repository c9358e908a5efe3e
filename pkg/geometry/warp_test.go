package geometry

import (
	"testing"

	"github.com/mhollis/hyperlattice/pkg/math4"
)

var warpAngles = math4.RotationAngles{XY: 0.4, XW: 1.1, ZW: -0.7}

func TestWarpHypersphereBlendFloorDisplaces(t *testing.T) {
	// Even at MorphFactor 0 the blend floor keeps 45% of the warp, so a
	// generic point must move.
	params := DefaultParams()
	params.MorphFactor = 0

	p := math4.V3(1, 0.5, -0.3)
	got := WarpHypersphere(p, BaseTetrahedron, warpAngles, params, 0)
	if got.Sub(p).Length() < 1e-6 {
		t.Fatalf("point did not move: %+v", got)
	}
}

func TestWarpHypersphereZeroAmplitude(t *testing.T) {
	// MorphFactor 0 and Dimension 3 zero the synthetic w; with zero
	// angles the reprojection is then the identity.
	params := DefaultParams()
	params.MorphFactor = 0
	params.Dimension = 3

	p := math4.V3(1.2, -0.8, 0.4)
	got := WarpHypersphere(p, BaseSphere, math4.RotationAngles{}, params, 2.0)
	if got.Sub(p).Length() > 1e-12 {
		t.Fatalf("zero-amplitude warp moved the point: %+v vs %+v", got, p)
	}
}

func TestWarpHypertetraPlaneInfluence(t *testing.T) {
	// A point orthogonal to a tetra corner direction has plane distance
	// zero there, so the blend weight collapses and the point stays put.
	params := DefaultParams()
	p := math4.V3(1, -1, 0) // dot with (1,1,1)/√3 is 0

	got := WarpHypertetra(p, BaseTorus, warpAngles, params, 1.5)
	if got != p {
		t.Fatalf("on-plane point moved: %+v", got)
	}
}

func TestWarpHypertetraGenericPointMoves(t *testing.T) {
	params := DefaultParams()
	p := math4.V3(0.9, 0.7, 1.3) // off every corner plane

	got := WarpHypertetra(p, BaseKlein, warpAngles, params, 0.25)
	if got.Sub(p).Length() < 1e-9 {
		t.Fatalf("generic point did not move: %+v", got)
	}
}

func TestWarpsDeterministic(t *testing.T) {
	params := DefaultParams()
	p := math4.V3(0.3, 1.1, -2.0)
	for base := BaseTetrahedron; base <= BaseCrystal; base++ {
		a := WarpHypersphere(p, base, warpAngles, params, 3.3)
		b := WarpHypersphere(p, base, warpAngles, params, 3.3)
		if a != b {
			t.Fatalf("hypersphere warp not deterministic for %v", base)
		}
		c := WarpHypertetra(p, base, warpAngles, params, 3.3)
		d := WarpHypertetra(p, base, warpAngles, params, 3.3)
		if c != d {
			t.Fatalf("hypertetra warp not deterministic for %v", base)
		}
	}
}

func TestCoreScaleSpreadsBases(t *testing.T) {
	if got := coreScale(BaseTetrahedron); got != 1 {
		t.Errorf("coreScale(0) = %v, want 1", got)
	}
	if got := coreScale(BaseCrystal); !almostEqual(got, 2.75, eps) {
		t.Errorf("coreScale(7) = %v, want 2.75", got)
	}
}

func TestBlendWeightFloor(t *testing.T) {
	params := DefaultParams()
	for _, morph := range []float64{-1, 0, 0.5, 1, 3} {
		params.MorphFactor = morph
		w := blendWeight(params)
		if w < BlendFloor-eps || w > 1+eps {
			t.Errorf("morph %v: blend weight %v outside [0.45, 1]", morph, w)
		}
	}
	params.MorphFactor = 1
	if got := blendWeight(params); !almostEqual(got, 1, eps) {
		t.Errorf("morph 1 blend weight = %v, want 1", got)
	}
}

func TestWarpAmplitudeClamps(t *testing.T) {
	params := DefaultParams()
	params.MorphFactor = 5
	params.Dimension = 9
	if got := warpAmplitude(params); !almostEqual(got, 0.5, eps) {
		t.Errorf("amplitude = %v, want clamped 0.5", got)
	}
	params.MorphFactor = 0
	params.Dimension = 3
	if got := warpAmplitude(params); got != 0 {
		t.Errorf("amplitude = %v, want 0", got)
	}
}

func TestTetraCornersAreUnit(t *testing.T) {
	for i, c := range tetraCorners {
		if !almostEqual(c.Length(), 1, eps) {
			t.Errorf("corner %d length = %v", i, c.Length())
		}
	}
	// Pairwise dot of distinct corners is -1/3 for a regular tetrahedron.
	want := -1.0 / 3.0
	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			if got := tetraCorners[i].Dot(tetraCorners[j]); !almostEqual(got, want, eps) {
				t.Errorf("corners %d,%d dot = %v, want %v", i, j, got, want)
			}
		}
	}
}
