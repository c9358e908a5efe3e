// Package math4 implements the 4D rotational geometry kernel: plain
// vector/matrix value types, the 8-component geometric-algebra rotor, the
// fixed-order six-plane rotation pipeline, and 4D→3D projection.
//
// Every operation is a pure function of its arguments. Nothing in this
// package reads a clock, allocates on the per-sample path, or holds state,
// so concurrent callers never alias each other's values.
package math4

import "math"

// Vec4 is a plain 4D point or direction. W is the fourth spatial
// dimension, not a homogeneous coordinate.
type Vec4 struct {
	X, Y, Z, W float64
}

// V4 creates a new Vec4.
func V4(x, y, z, w float64) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Unit basis vectors.
var (
	UnitX = Vec4{X: 1}
	UnitY = Vec4{Y: 1}
	UnitZ = Vec4{Z: 1}
	UnitW = Vec4{W: 1}
)

// Add returns the component-wise sum.
func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v.X + o.X, v.Y + o.Y, v.Z + o.Z, v.W + o.W}
}

// Sub returns the component-wise difference.
func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v.X - o.X, v.Y - o.Y, v.Z - o.Z, v.W - o.W}
}

// Scale returns the vector scaled by s.
func (v Vec4) Scale(s float64) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the 4D dot product.
func (v Vec4) Dot(o Vec4) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z + v.W*o.W
}

// LengthSquared returns the squared Euclidean length.
func (v Vec4) LengthSquared() float64 {
	return v.Dot(v)
}

// Length returns the Euclidean length.
func (v Vec4) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Normalized returns the unit vector in the same direction, or the zero
// vector if the length is below 1e-12.
func (v Vec4) Normalized() Vec4 {
	l := v.Length()
	if l < 1e-12 {
		return Vec4{}
	}
	return v.Scale(1 / l)
}

// Lerp returns the linear interpolation from v to o at parameter t.
func (v Vec4) Lerp(o Vec4, t float64) Vec4 {
	return Vec4{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
		v.W + (o.W-v.W)*t,
	}
}

// XYZ returns the spatial part as a Vec3.
func (v Vec4) XYZ() Vec3 {
	return Vec3{v.X, v.Y, v.Z}
}

// IsFinite reports whether all four components are finite numbers.
func (v Vec4) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z) && isFinite(v.W)
}

// Vec3 is the 3D image of a projected 4D point.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the component-wise sum.
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

// Sub returns the component-wise difference.
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Scale returns the vector scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the 3D dot product.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Length returns the Euclidean length.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Lerp returns the linear interpolation from v to o at parameter t.
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
	}
}

// Lift returns the Vec4 with the given w component appended.
func (v Vec3) Lift(w float64) Vec4 {
	return Vec4{v.X, v.Y, v.Z, w}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
