package geometry

import (
	"testing"

	"github.com/mhollis/hyperlattice/pkg/math4"
)

func TestWarpToHypersphere(t *testing.T) {
	got := WarpToHypersphere(math4.V4(3, 0, 0, 0), 2)
	if !vecAlmostEqual4(got, math4.V4(2, 0, 0, 0), eps) {
		t.Errorf("got %+v", got)
	}

	// Any input lands on the sphere of the requested radius.
	p := WarpToHypersphere(math4.V4(1, -2, 3, 0.5), 1.5)
	if !almostEqual(p.Length(), 1.5, eps) {
		t.Errorf("radius = %v, want 1.5", p.Length())
	}

	// The origin maps to the default pole instead of dividing by zero.
	if got := WarpToHypersphere(math4.Vec4{}, 2); got != math4.V4(2, 0, 0, 0) {
		t.Errorf("origin mapped to %+v", got)
	}
}

func TestInverseStereographicOnUnitSphere(t *testing.T) {
	points := []math4.Vec3{
		{},
		{X: 1},
		{X: 0.5, Y: -2, Z: 3},
		{X: 100, Y: 100, Z: 100},
	}
	for _, p := range points {
		got := InverseStereographic(p)
		if !almostEqual(got.Length(), 1, eps) {
			t.Errorf("%+v: length %v, want 1", p, got.Length())
		}
	}
	// The origin maps to the south pole.
	if got := InverseStereographic(math4.Vec3{}); !vecAlmostEqual4(got, math4.V4(0, 0, 0, -1), eps) {
		t.Errorf("origin mapped to %+v", got)
	}
}

func TestHopfProjectBasePointOnS2(t *testing.T) {
	points := []math4.Vec4{
		{X: 1},
		{X: 0.5, Y: 0.5, Z: 0.5, W: 0.5},
		{X: 0.1, Y: -0.9, Z: 0.3, W: 0.2},
	}
	for _, p := range points {
		got := HopfProject(p)
		if r := got.XYZ().Length(); !almostEqual(r, 1, eps) {
			t.Errorf("%+v: base point radius %v, want 1", p, r)
		}
	}
}

func TestPentatopeVerticesEquidistantFromCentroid(t *testing.T) {
	var centroid math4.Vec4
	for i := 0; i < 5; i++ {
		centroid = centroid.Add(PentatopeVertex(i))
	}
	centroid = centroid.Scale(1.0 / 5.0)

	r0 := PentatopeVertex(0).Sub(centroid).Length()
	for i := 1; i < 5; i++ {
		r := PentatopeVertex(i).Sub(centroid).Length()
		if !almostEqual(r, r0, 1e-6) {
			t.Errorf("vertex %d radius %v, want %v", i, r, r0)
		}
	}

	if got := PentatopeVertex(7); got != (math4.Vec4{}) {
		t.Errorf("out-of-range vertex = %+v", got)
	}
}

func TestWarpToPentatopeVertexFixedPoint(t *testing.T) {
	for i := 0; i < 5; i++ {
		v := PentatopeVertex(i)
		if got := WarpToPentatope(v); !vecAlmostEqual4(got, v, eps) {
			t.Errorf("vertex %d moved to %+v", i, got)
		}
	}
}

func TestWarpToPentatopePullsCloser(t *testing.T) {
	p := math4.V4(0.9, 0.1, -0.2, 0.3)
	nearest, _ := nearestPentatopeVertex(p)

	got := WarpToPentatope(p)
	before := p.Sub(nearest).Length()
	after := got.Sub(nearest).Length()
	if after >= before {
		t.Fatalf("warp did not pull toward vertex: %v -> %v", before, after)
	}
}

func TestWarpToPentatopeEdges(t *testing.T) {
	// A vertex is on the skeleton already.
	v := PentatopeVertex(2)
	if got := WarpToPentatopeEdges(v); !vecAlmostEqual4(got, v, eps) {
		t.Errorf("vertex moved to %+v", got)
	}

	// An edge midpoint projects to itself.
	mid := PentatopeVertex(0).Lerp(PentatopeVertex(1), 0.5)
	if got := WarpToPentatopeEdges(mid); !vecAlmostEqual4(got, mid, eps) {
		t.Errorf("edge midpoint moved to %+v", got)
	}

	// A generic point lands on some edge segment.
	p := math4.V4(0.4, -0.6, 0.2, 0.1)
	got := WarpToPentatopeEdges(p)
	onEdge := false
	for _, e := range pentatopeEdges {
		a, b := pentatopeVertices[e[0]], pentatopeVertices[e[1]]
		edge := b.Sub(a)
		tt := got.Sub(a).Dot(edge) / edge.LengthSquared()
		if tt < -eps || tt > 1+eps {
			continue
		}
		if got.Sub(a.Lerp(b, tt)).Length() < 1e-9 {
			onEdge = true
			break
		}
	}
	if !onEdge {
		t.Fatalf("projection %+v not on any edge", got)
	}
}

func vecAlmostEqual4(a, b math4.Vec4, tol float64) bool {
	return almostEqual(a.X, b.X, tol) && almostEqual(a.Y, b.Y, tol) &&
		almostEqual(a.Z, b.Z, tol) && almostEqual(a.W, b.W, tol)
}
