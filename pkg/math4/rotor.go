package math4

import (
	"errors"
	"fmt"
	"math"
)

// Plane identifies one of the six rotation planes of 4-space.
type Plane int

// The six canonical rotation planes. XY, XZ, YZ are the familiar 3D
// rotations; XW, YW, ZW rotate into the fourth dimension.
const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneYZ
	PlaneXW
	PlaneYW
	PlaneZW
)

// ErrInvalidPlane is returned when a plane outside the six canonical
// planes is used. It indicates a caller programming mistake, not bad
// runtime data.
var ErrInvalidPlane = errors.New("math4: invalid rotation plane")

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	case PlaneXW:
		return "xw"
	case PlaneYW:
		return "yw"
	case PlaneZW:
		return "zw"
	default:
		return fmt.Sprintf("Plane(%d)", int(p))
	}
}

// ParsePlane converts a canonical plane name ("xy".."zw") to a Plane.
func ParsePlane(name string) (Plane, error) {
	switch name {
	case "xy":
		return PlaneXY, nil
	case "xz":
		return PlaneXZ, nil
	case "yz":
		return PlaneYZ, nil
	case "xw":
		return PlaneXW, nil
	case "yw":
		return PlaneYW, nil
	case "zw":
		return PlaneZW, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPlane, name)
}

// degenerateNorm is the threshold below which a rotor norm is treated as
// numerically degenerate and replaced by the identity.
const degenerateNorm = 1e-10

// Rotor is an even multivector of Cl(4,0): scalar, six bivectors, and the
// pseudoscalar. A unit rotor represents a 4D rotation applied by the
// sandwich product v' = R v R†. R and -R represent the same rotation
// (double cover); comparisons and interpolation account for this.
//
// Rotor is a value type. All methods return new values; in-place mutation
// exists only on the RotorAccum handle.
type Rotor struct {
	S    float64 // scalar
	XY   float64 // bivector e1^e2
	XZ   float64 // bivector e1^e3
	YZ   float64 // bivector e2^e3
	XW   float64 // bivector e1^e4
	YW   float64 // bivector e2^e4
	ZW   float64 // bivector e3^e4
	XYZW float64 // pseudoscalar e1^e2^e3^e4
}

// Identity returns the identity rotor (no rotation).
func Identity() Rotor {
	return Rotor{S: 1}
}

// FromPlaneAngle builds the rotor for a rotation by angle radians in a
// single plane: scalar cos(angle/2), the plane's bivector -sin(angle/2).
// With this convention the rotation carries the plane's first basis vector
// toward its second for positive angles.
func FromPlaneAngle(plane Plane, angle float64) (Rotor, error) {
	c := math.Cos(angle * 0.5)
	s := -math.Sin(angle * 0.5)

	r := Rotor{S: c}
	switch plane {
	case PlaneXY:
		r.XY = s
	case PlaneXZ:
		r.XZ = s
	case PlaneYZ:
		r.YZ = s
	case PlaneXW:
		r.XW = s
	case PlaneYW:
		r.YW = s
	case PlaneZW:
		r.ZW = s
	default:
		return Identity(), fmt.Errorf("%w: %d", ErrInvalidPlane, int(plane))
	}
	return r, nil
}

// mustFromPlaneAngle is the internal hot-path variant for the six known
// planes; it never fails.
func mustFromPlaneAngle(plane Plane, angle float64) Rotor {
	r, _ := FromPlaneAngle(plane, angle)
	return r
}

// FromAngles composes per-plane rotors in the fixed pipeline order
// XY, XZ, YZ, XW, YW, ZW. The resulting rotor performs the same rotation
// as Apply6DRotation with the same angles. Angles at or below 1e-12 in
// magnitude are skipped.
func FromAngles(a RotationAngles) Rotor {
	r := Identity()
	for _, pa := range [6]struct {
		plane Plane
		angle float64
	}{
		{PlaneXY, a.XY}, {PlaneXZ, a.XZ}, {PlaneYZ, a.YZ},
		{PlaneXW, a.XW}, {PlaneYW, a.YW}, {PlaneZW, a.ZW},
	} {
		if math.Abs(pa.angle) > 1e-12 {
			r = r.Multiply(mustFromPlaneAngle(pa.plane, pa.angle))
		}
	}
	return r
}

// gp is the full geometric (Clifford) product a·b on the even subalgebra
// of Cl(4,0). Derived from the basis multiplication table: bivectors
// square to -1, the pseudoscalar squares to +1 and is central, disjoint
// bivectors commute and shared-index bivectors anticommute.
func gp(a, b Rotor) Rotor {
	return Rotor{
		S: a.S*b.S - a.XY*b.XY - a.XZ*b.XZ - a.YZ*b.YZ -
			a.XW*b.XW - a.YW*b.YW - a.ZW*b.ZW + a.XYZW*b.XYZW,

		XY: a.S*b.XY + a.XY*b.S + a.YZ*b.XZ - a.XZ*b.YZ +
			a.YW*b.XW - a.XW*b.YW - a.ZW*b.XYZW - a.XYZW*b.ZW,

		XZ: a.S*b.XZ + a.XZ*b.S + a.XY*b.YZ - a.YZ*b.XY +
			a.ZW*b.XW - a.XW*b.ZW + a.YW*b.XYZW + a.XYZW*b.YW,

		YZ: a.S*b.YZ + a.YZ*b.S + a.XZ*b.XY - a.XY*b.XZ +
			a.ZW*b.YW - a.YW*b.ZW - a.XW*b.XYZW - a.XYZW*b.XW,

		XW: a.S*b.XW + a.XW*b.S + a.XY*b.YW - a.YW*b.XY +
			a.XZ*b.ZW - a.ZW*b.XZ - a.YZ*b.XYZW - a.XYZW*b.YZ,

		YW: a.S*b.YW + a.YW*b.S + a.XW*b.XY - a.XY*b.XW +
			a.YZ*b.ZW - a.ZW*b.YZ + a.XZ*b.XYZW + a.XYZW*b.XZ,

		ZW: a.S*b.ZW + a.ZW*b.S + a.XW*b.XZ - a.XZ*b.XW +
			a.YW*b.YZ - a.YZ*b.YW - a.XY*b.XYZW - a.XYZW*b.XY,

		XYZW: a.S*b.XYZW + a.XYZW*b.S + a.XY*b.ZW + a.ZW*b.XY -
			a.XZ*b.YW - a.YW*b.XZ + a.YZ*b.XW + a.XW*b.YZ,
	}
}

// Multiply composes rotations: the result applies r's rotation first,
// then o's. Under the sandwich convention v' = R v R† this is the
// geometric product o·r, so that (o·r) v (o·r)† = o (r v r†) o†.
func (r Rotor) Multiply(o Rotor) Rotor {
	return gp(o, r)
}

// Reverse returns the geometric-algebra reverse R†: bivectors negated,
// scalar and pseudoscalar unchanged. For a unit rotor this is the inverse
// rotation.
func (r Rotor) Reverse() Rotor {
	return Rotor{
		S: r.S, XY: -r.XY, XZ: -r.XZ, YZ: -r.YZ,
		XW: -r.XW, YW: -r.YW, ZW: -r.ZW, XYZW: r.XYZW,
	}
}

// NormSquared returns the sum of squares of all eight components.
func (r Rotor) NormSquared() float64 {
	return r.S*r.S + r.XY*r.XY + r.XZ*r.XZ + r.YZ*r.YZ +
		r.XW*r.XW + r.YW*r.YW + r.ZW*r.ZW + r.XYZW*r.XYZW
}

// Norm returns the Euclidean norm over all eight components.
func (r Rotor) Norm() float64 {
	return math.Sqrt(r.NormSquared())
}

// Normalize returns the unit rotor with the same orientation, or the
// identity if the norm is degenerate (< 1e-10).
func (r Rotor) Normalize() Rotor {
	n := r.Norm()
	if n < degenerateNorm {
		return Identity()
	}
	return r.scale(1 / n)
}

// Inverse returns the rotor inverse R†/|R|², or the identity if the
// squared norm is degenerate (< 1e-10).
func (r Rotor) Inverse() Rotor {
	n2 := r.NormSquared()
	if n2 < degenerateNorm {
		return Identity()
	}
	return r.Reverse().scale(1 / n2)
}

func (r Rotor) scale(k float64) Rotor {
	return Rotor{
		S: r.S * k, XY: r.XY * k, XZ: r.XZ * k, YZ: r.YZ * k,
		XW: r.XW * k, YW: r.YW * k, ZW: r.ZW * k, XYZW: r.XYZW * k,
	}
}

// Dot returns the 8-component dot product of two rotors.
func (r Rotor) Dot(o Rotor) float64 {
	return r.S*o.S + r.XY*o.XY + r.XZ*o.XZ + r.YZ*o.YZ +
		r.XW*o.XW + r.YW*o.YW + r.ZW*o.ZW + r.XYZW*o.XYZW
}

// Rotate applies the sandwich product v' = R v R† to a 4D vector.
// The rotor is used as-is; callers must hand in a unit rotor for the
// result to be a pure rotation. No allocation, no branches.
//
// The grade-1 extraction is expanded in closed form: V is the vector part
// and T the trivector part of R·v, and the returned vector is the grade-1
// part of (R·v)·R†.
func (r Rotor) Rotate(v Vec4) Vec4 {
	s, a, b, c := r.S, r.XY, r.XZ, r.YZ
	d, f, g, h := r.XW, r.YW, r.ZW, r.XYZW
	x, y, z, w := v.X, v.Y, v.Z, v.W

	v1 := s*x + a*y + b*z + d*w
	v2 := s*y - a*x + c*z + f*w
	v3 := s*z - b*x - c*y + g*w
	v4 := s*w - d*x - f*y - g*z

	t123 := a*z - b*y + c*x + h*w
	t124 := a*w - d*y + f*x - h*z
	t134 := b*w - d*z + g*x + h*y
	t234 := c*w - f*z + g*y - h*x

	return Vec4{
		X: s*v1 + a*v2 + b*v3 + d*v4 + c*t123 + f*t124 + g*t134 + h*t234,
		Y: s*v2 - a*v1 + c*v3 + f*v4 - b*t123 - d*t124 - h*t134 + g*t234,
		Z: s*v3 - b*v1 - c*v2 + g*v4 + a*t123 + h*t124 - d*t134 - f*t234,
		W: s*v4 - d*v1 - f*v2 - g*v3 - h*t123 + a*t124 + b*t134 + c*t234,
	}
}

// ToMatrix converts the rotor to a 4x4 column-major rotation matrix.
// The rotor is normalized first, and each column is derived by rotating a
// basis vector through the sandwich product, so the matrix is correct by
// construction for any unit rotor.
func (r Rotor) ToMatrix() Mat4 {
	n := r.Normalize()
	var m Mat4
	m.SetColumn(0, n.Rotate(UnitX))
	m.SetColumn(1, n.Rotate(UnitY))
	m.SetColumn(2, n.Rotate(UnitZ))
	m.SetColumn(3, n.Rotate(UnitW))
	return m
}

// Slerp spherically interpolates from r to target along the shortest arc.
// If the 8-component dot product is negative, target is negated first
// (double-cover correction). Nearly parallel rotors (corrected dot above
// 0.9995) fall back to Nlerp.
func (r Rotor) Slerp(target Rotor, t float64) Rotor {
	d := r.Dot(target)
	b := target
	if d < 0 {
		d = -d
		b = b.scale(-1)
	}

	if d > 0.9995 {
		return r.Nlerp(b, t)
	}

	theta := math.Acos(d)
	sinTheta := math.Sin(theta)
	w1 := math.Sin((1-t)*theta) / sinTheta
	w2 := math.Sin(t*theta) / sinTheta

	return Rotor{
		S:    r.S*w1 + b.S*w2,
		XY:   r.XY*w1 + b.XY*w2,
		XZ:   r.XZ*w1 + b.XZ*w2,
		YZ:   r.YZ*w1 + b.YZ*w2,
		XW:   r.XW*w1 + b.XW*w2,
		YW:   r.YW*w1 + b.YW*w2,
		ZW:   r.ZW*w1 + b.ZW*w2,
		XYZW: r.XYZW*w1 + b.XYZW*w2,
	}
}

// Nlerp linearly interpolates component-wise and renormalizes. Faster and
// less accurate than Slerp; no double-cover correction is applied.
func (r Rotor) Nlerp(target Rotor, t float64) Rotor {
	return Rotor{
		S:    r.S + (target.S-r.S)*t,
		XY:   r.XY + (target.XY-r.XY)*t,
		XZ:   r.XZ + (target.XZ-r.XZ)*t,
		YZ:   r.YZ + (target.YZ-r.YZ)*t,
		XW:   r.XW + (target.XW-r.XW)*t,
		YW:   r.YW + (target.YW-r.YW)*t,
		ZW:   r.ZW + (target.ZW-r.ZW)*t,
		XYZW: r.XYZW + (target.XYZW-r.XYZW)*t,
	}.Normalize()
}

// Equals reports whether two rotors represent the same rotation within
// eps, comparing against both signs of other (double cover): true iff
// min(L1(r-other), L1(r+other)) < eps*8.
func (r Rotor) Equals(other Rotor, eps float64) bool {
	var sum, neg float64
	for _, p := range [8][2]float64{
		{r.S, other.S}, {r.XY, other.XY}, {r.XZ, other.XZ}, {r.YZ, other.YZ},
		{r.XW, other.XW}, {r.YW, other.YW}, {r.ZW, other.ZW}, {r.XYZW, other.XYZW},
	} {
		sum += math.Abs(p[0] - p[1])
		neg += math.Abs(p[0] + p[1])
	}
	return math.Min(sum, neg) < eps*8
}

// Source supplies uniform random samples in [0,1). Both math/rand and
// math/rand/v2 generators satisfy it, keeping kernel randomness injected
// and replayable.
type Source interface {
	Float64() float64
}

// Random draws a rotation uniformly distributed over the 4D rotation
// group: eight independent standard normals (Box-Muller) normalized to a
// unit rotor.
func Random(src Source) Rotor {
	var n [8]float64
	for i := 0; i < 8; i += 2 {
		u1 := 1 - src.Float64() // (0,1], keeps Log finite
		u2 := src.Float64()
		rad := math.Sqrt(-2 * math.Log(u1))
		n[i] = rad * math.Cos(2*math.Pi*u2)
		n[i+1] = rad * math.Sin(2*math.Pi*u2)
	}
	r := Rotor{
		S: n[0], XY: n[1], XZ: n[2], YZ: n[3],
		XW: n[4], YW: n[5], ZW: n[6], XYZW: n[7],
	}
	return r.Normalize()
}

// RotorAccum is an exclusively-owned mutable rotor handle for callers that
// accumulate many compositions without intermediate copies (e.g. an
// animation loop folding per-frame deltas). It must not be shared across
// goroutines; the pure Rotor API is the default.
type RotorAccum struct {
	r Rotor
}

// NewRotorAccum creates an accumulator seeded with r.
func NewRotorAccum(r Rotor) *RotorAccum {
	return &RotorAccum{r: r}
}

// Compose folds q into the accumulator: the accumulated rotation is
// applied first, then q.
func (a *RotorAccum) Compose(q Rotor) {
	a.r = a.r.Multiply(q)
}

// Normalize renormalizes the accumulated rotor in place, substituting the
// identity if the norm is degenerate (< 1e-10).
func (a *RotorAccum) Normalize() {
	a.r = a.r.Normalize()
}

// Rotor returns the current accumulated value.
func (a *RotorAccum) Rotor() Rotor {
	return a.r
}
