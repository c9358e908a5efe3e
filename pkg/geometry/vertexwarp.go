package geometry

import (
	"math"

	"github.com/mhollis/hyperlattice/pkg/math4"
)

// Vertex-cloud warps. Unlike the per-sample core warps these operate on
// explicit 4D vertex positions, for callers that deform point clouds or
// wireframes instead of sampling a field.

// WarpToHypersphere projects a 4D point onto the 3-sphere of the given
// radius. A point at the origin maps to the default (radius, 0, 0, 0).
func WarpToHypersphere(p math4.Vec4, radius float64) math4.Vec4 {
	l := p.Length()
	if l < 1e-8 {
		return math4.V4(radius, 0, 0, 0)
	}
	return p.Scale(radius / l)
}

// InverseStereographic maps a 3D point onto the unit 3-sphere by inverse
// stereographic projection from the pole (0,0,0,1).
func InverseStereographic(p math4.Vec3) math4.Vec4 {
	r2 := p.Dot(p)
	denom := 1 + r2
	return math4.Vec4{
		X: 2 * p.X / denom,
		Y: 2 * p.Y / denom,
		Z: 2 * p.Z / denom,
		W: (r2 - 1) / denom,
	}
}

// HopfProject normalizes a point onto the 3-sphere and applies the Hopf
// map to the 2-sphere. The returned xyz is the base point on S2 and w is
// the fiber angle, which makes the toroidal structure of S3 visible.
func HopfProject(p math4.Vec4) math4.Vec4 {
	n := p.Normalized()
	return math4.Vec4{
		X: 2 * (n.X*n.Z + n.Y*n.W),
		Y: 2 * (n.Y*n.Z - n.X*n.W),
		Z: n.X*n.X + n.Y*n.Y - n.Z*n.Z - n.W*n.W,
		W: math.Atan2(n.Y, n.X) - math.Atan2(n.W, n.Z),
	}
}

// pentatopeVertices are the five vertices of a regular 5-cell in R4.
var pentatopeVertices = func() [5]math4.Vec4 {
	t := math.Sqrt(2.0 / 3.0)
	u := 1 / math.Sqrt(3)
	v := 1 / math.Sqrt(15)
	return [5]math4.Vec4{
		{X: t, W: -v},
		{X: -u, Y: u, W: -v},
		{X: -u, Y: -u, W: -v},
		{Z: t, W: -v},
		{W: 4 * v},
	}
}()

// PentatopeVertex returns vertex i of the regular 5-cell, for i in 0-4.
func PentatopeVertex(i int) math4.Vec4 {
	if i < 0 || i >= len(pentatopeVertices) {
		return math4.Vec4{}
	}
	return pentatopeVertices[i]
}

func nearestPentatopeVertex(p math4.Vec4) (math4.Vec4, float64) {
	best := pentatopeVertices[0]
	bestD2 := p.Sub(best).LengthSquared()
	for _, v := range pentatopeVertices[1:] {
		if d2 := p.Sub(v).LengthSquared(); d2 < bestD2 {
			bestD2 = d2
			best = v
		}
	}
	return best, bestD2
}

// WarpToPentatope pulls a 4D point toward the nearest 5-cell vertex with
// strength 1/(1 + 2d), so close points cluster hard at the vertex and
// far points barely move.
func WarpToPentatope(p math4.Vec4) math4.Vec4 {
	nearest, d2 := nearestPentatopeVertex(p)
	strength := 1 / (1 + 2*math.Sqrt(d2))
	return p.Lerp(nearest, strength)
}

// pentatopeEdges lists all ten vertex pairs of the 5-cell.
var pentatopeEdges = [10][2]int{
	{0, 1}, {0, 2}, {0, 3}, {0, 4},
	{1, 2}, {1, 3}, {1, 4},
	{2, 3}, {2, 4},
	{3, 4},
}

// WarpToPentatopeEdges projects a 4D point onto the nearest point of the
// 5-cell's edge skeleton.
func WarpToPentatopeEdges(p math4.Vec4) math4.Vec4 {
	best := p
	bestD2 := math.Inf(1)

	for _, e := range pentatopeEdges {
		a := pentatopeVertices[e[0]]
		b := pentatopeVertices[e[1]]
		edge := b.Sub(a)

		t := p.Sub(a).Dot(edge) / edge.LengthSquared()
		t = math.Max(0, math.Min(1, t))

		proj := a.Lerp(b, t)
		if d2 := p.Sub(proj).LengthSquared(); d2 < bestD2 {
			bestD2 = d2
			best = proj
		}
	}
	return best
}
