package math4

import (
	"math"
	"math/rand"
	"testing"
)

func TestIdent4(t *testing.T) {
	m := Ident4()
	v := V4(1.5, -2, 3, 0.25)
	if got := m.MulVec(v); got != v {
		t.Fatalf("identity moved %+v to %+v", v, got)
	}
}

func TestMatrixAtSetColumn(t *testing.T) {
	var m Mat4
	m.Set(2, 1, 7)
	if got := m.At(2, 1); got != 7 {
		t.Errorf("At(2,1) = %v, want 7", got)
	}
	m.SetColumn(3, V4(1, 2, 3, 4))
	if got := m.Column(3); got != V4(1, 2, 3, 4) {
		t.Errorf("Column(3) = %+v", got)
	}
}

func TestMatrixMulMatchesSequentialApplication(t *testing.T) {
	a := RotationXY(0.7)
	b := RotationZW(-1.2)
	v := V4(0.5, -1, 2, 0.25)

	want := a.MulVec(b.MulVec(v))
	got := a.Mul(b).MulVec(v)
	if !vecAlmostEqual(got, want, 1e-12) {
		t.Fatalf("Mul composition: got %+v, want %+v", got, want)
	}
}

func TestRotationMatrixOrthonormal(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		a := RotationAngles{
			XY: rng.NormFloat64(), XZ: rng.NormFloat64(), YZ: rng.NormFloat64(),
			XW: rng.NormFloat64(), YW: rng.NormFloat64(), ZW: rng.NormFloat64(),
		}
		m := RotationMatrix(a)
		mt := m.Transpose()
		prod := m.Mul(mt)
		id := Ident4()
		for k := 0; k < 16; k++ {
			if !almostEqual(prod[k], id[k], 1e-9) {
				t.Fatalf("M·Mᵀ not identity at %d: %v", k, prod[k])
			}
		}
	}
}

func TestRotationMatrixMatchesApply6DRotation(t *testing.T) {
	a := RotationAngles{XY: 0.3, XZ: -0.7, YZ: 1.4, XW: 0.2, YW: -0.9, ZW: 2.1}
	v := V4(1, -2, 0.5, 3)
	want := Apply6DRotation(v, a)
	got := RotationMatrix(a).MulVec(v)
	if !vecAlmostEqual(got, want, 1e-12) {
		t.Fatalf("composed matrix %+v != sequential %+v", got, want)
	}
}

func TestRotationPlaneMatchesNamedConstructors(t *testing.T) {
	angle := 0.8
	tests := []struct {
		plane Plane
		want  Mat4
	}{
		{PlaneXY, RotationXY(angle)},
		{PlaneXZ, RotationXZ(angle)},
		{PlaneYZ, RotationYZ(angle)},
		{PlaneXW, RotationXW(angle)},
		{PlaneYW, RotationYW(angle)},
		{PlaneZW, RotationZW(angle)},
	}
	for _, tt := range tests {
		t.Run(tt.plane.String(), func(t *testing.T) {
			got, err := RotationPlane(tt.plane, angle)
			if err != nil {
				t.Fatalf("RotationPlane: %v", err)
			}
			if got != tt.want {
				t.Errorf("RotationPlane(%v) mismatch", tt.plane)
			}
		})
	}

	if _, err := RotationPlane(Plane(9), angle); err == nil {
		t.Error("expected error for invalid plane")
	}
}

func TestFloat32RoundTrip(t *testing.T) {
	m := RotationXW(0.5)
	f := m.Float32()
	for i := range m {
		if math.Abs(float64(f[i])-m[i]) > 1e-7 {
			t.Fatalf("Float32[%d] = %v, want %v", i, f[i], m[i])
		}
	}
}
