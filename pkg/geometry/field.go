package geometry

import (
	"math"

	"github.com/mhollis/hyperlattice/pkg/math4"
)

// LatticeScale converts GridDensity to the per-axis lattice frequency
// shared by the periodic fields.
const LatticeScale = 0.08

// FieldFunc is a base scalar field: a pure function of a 4D point (already
// rotated, projected, and optionally warped), the parameter knobs, and an
// explicit time. Continuous and bounded in its inputs; no hidden state.
type FieldFunc func(p math4.Vec4, params Params, time float64) float64

// FieldFor returns the field function for a base index. Out-of-range
// values wrap through the codec modulus.
func FieldFor(base Base) FieldFunc {
	b, _ := Decode(int(base))
	return baseFields[b]
}

var baseFields = [8]FieldFunc{
	TetrahedronField,
	HypercubeField,
	SphereField,
	TorusField,
	KleinField,
	FractalField,
	WaveField,
	CrystalField,
}

func frac(v float64) float64 {
	return v - math.Floor(v)
}

// edge is the distance from a fractional coordinate to the nearest cell
// edge (0 or 1).
func edge(f float64) float64 {
	return math.Min(f, 1-f)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// TetrahedronField is a periodic per-axis lattice: the minimum over the
// four axes of the distance to the nearest cell edge. Exactly zero on
// grid-aligned points, 0.5·MorphFactor at cell centers.
func TetrahedronField(p math4.Vec4, params Params, _ float64) float64 {
	s := params.GridDensity * LatticeScale
	d := edge(frac(p.X * s))
	d = math.Min(d, edge(frac(p.Y*s)))
	d = math.Min(d, edge(frac(p.Z*s)))
	d = math.Min(d, edge(frac(p.W*s)))
	return d * params.MorphFactor
}

// HypercubeField is the dual lattice: distance to the cell center plane
// instead of the cell edge, minimum over the four axes.
func HypercubeField(p math4.Vec4, params Params, _ float64) float64 {
	s := params.GridDensity * LatticeScale
	d := math.Abs(frac(p.X*s) - 0.5)
	d = math.Min(d, math.Abs(frac(p.Y*s)-0.5))
	d = math.Min(d, math.Abs(frac(p.Z*s)-0.5))
	d = math.Min(d, math.Abs(frac(p.W*s)-0.5))
	return d * params.MorphFactor
}

// SphereField is radial shell bands plus a 3-fold angular harmonic.
func SphereField(p math4.Vec4, params Params, _ float64) float64 {
	r := p.Length()
	shells := math.Abs(frac(r*params.GridDensity)-0.5) * 2
	harmonic := 0.15 * math.Sin(3*math.Atan2(p.Y, p.X))
	return (shells + harmonic) * params.MorphFactor
}

// TorusField is the tube distance around an XY ring of radius 2 plus a
// two-axis lattice cross term over x and w.
func TorusField(p math4.Vec4, params Params, _ float64) float64 {
	s := params.GridDensity * LatticeScale
	ring := math.Sqrt(p.X*p.X+p.Y*p.Y) - 2
	tube := math.Sqrt(ring*ring + p.Z*p.Z)
	cross := math.Min(edge(frac(p.X*s)), edge(frac(p.W*s)))
	return (tube + 0.5*cross) * params.MorphFactor
}

// KleinField combines two independent angular coordinates, one from the
// XY pair and one from the ZW pair, multiplicatively, offset by a radial
// term.
func KleinField(p math4.Vec4, params Params, _ float64) float64 {
	u := math.Atan2(p.Y, p.X)
	v := math.Atan2(p.W, p.Z)
	r := p.Length()
	return (math.Sin(2*u)*math.Sin(3*v) + 0.3*r) * params.MorphFactor
}

// FractalField is a single folded-absolute-value iteration followed by
// the 4D box distance to half-extent 0.5.
func FractalField(p math4.Vec4, params Params, _ float64) float64 {
	s := params.GridDensity * LatticeScale
	qx := math.Abs(2*frac(p.X*s) - 1)
	qy := math.Abs(2*frac(p.Y*s) - 1)
	qz := math.Abs(2*frac(p.Z*s) - 1)
	qw := math.Abs(2*frac(p.W*s) - 1)

	ex := math.Max(qx-0.5, 0)
	ey := math.Max(qy-0.5, 0)
	ez := math.Max(qz-0.5, 0)
	ew := math.Max(qw-0.5, 0)
	outside := math.Sqrt(ex*ex + ey*ey + ez*ez + ew*ew)

	inside := math.Min(math.Max(math.Max(qx-0.5, qy-0.5), math.Max(qz-0.5, qw-0.5)), 0)
	return (outside + inside) * params.MorphFactor
}

// WaveField is the product of three traveling sine waves along the
// spatial axes, each with its own time rate.
func WaveField(p math4.Vec4, params Params, time float64) float64 {
	g := params.GridDensity
	t := time * params.Speed
	return math.Sin(p.X*g-t) *
		math.Sin(p.Y*g-t*1.3) *
		math.Sin(p.Z*g-t*0.7) *
		params.MorphFactor
}

// CrystalField is the Chebyshev distance to the periodic cell boundary.
func CrystalField(p math4.Vec4, params Params, _ float64) float64 {
	s := params.GridDensity * LatticeScale
	d := math.Abs(frac(p.X*s) - 0.5)
	d = math.Max(d, math.Abs(frac(p.Y*s)-0.5))
	d = math.Max(d, math.Abs(frac(p.Z*s)-0.5))
	d = math.Max(d, math.Abs(frac(p.W*s)-0.5))
	return (0.5 - d) * params.MorphFactor
}
