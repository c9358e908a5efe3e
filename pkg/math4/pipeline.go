package math4

import "math"

// RotationAngles holds the six independent plane angles, in radians. The
// struct itself implies no ordering; the pipeline functions below apply
// the planes in the fixed order XY, XZ, YZ, XW, YW, ZW.
type RotationAngles struct {
	XY, XZ, YZ, XW, YW, ZW float64
}

// IsFinite reports whether all six angles are finite numbers.
func (a RotationAngles) IsFinite() bool {
	return isFinite(a.XY) && isFinite(a.XZ) && isFinite(a.YZ) &&
		isFinite(a.XW) && isFinite(a.YW) && isFinite(a.ZW)
}

// ProjectionDistance is the fixed 4D→3D perspective projection constant.
const ProjectionDistance = 2.5

// ProjectionEpsilon keeps the perspective denominator away from zero near
// the w = -ProjectionDistance singularity.
const ProjectionEpsilon = 1e-6

// Apply6DRotation rotates a 4D point through all six planes in the fixed
// order XY, XZ, YZ, XW, YW, ZW. Rotation composition does not commute, so
// this order is load-bearing: every rendition of the kernel (CPU, script,
// emitted shader) must match it exactly.
func Apply6DRotation(p Vec4, a RotationAngles) Vec4 {
	p = RotationXY(a.XY).MulVec(p)
	p = RotationXZ(a.XZ).MulVec(p)
	p = RotationYZ(a.YZ).MulVec(p)
	p = RotationXW(a.XW).MulVec(p)
	p = RotationYW(a.YW).MulVec(p)
	p = RotationZW(a.ZW).MulVec(p)
	return p
}

// RotationMatrix returns the single matrix performing the same rotation
// as Apply6DRotation: ZW·YW·XW·YZ·XZ·XY as a matrix product, since the
// leftmost factor is applied last.
func RotationMatrix(a RotationAngles) Mat4 {
	m := RotationXY(a.XY)
	m = RotationXZ(a.XZ).Mul(m)
	m = RotationYZ(a.YZ).Mul(m)
	m = RotationXW(a.XW).Mul(m)
	m = RotationYW(a.YW).Mul(m)
	m = RotationZW(a.ZW).Mul(m)
	return m
}

// Project4Dto3D performs the fixed perspective projection
// (x,y,z)·k/(k+w) with k = ProjectionDistance. The denominator is clamped
// to ±1e-6 (sign-preserving) so the projection stays finite as w
// approaches -k instead of dividing by a near-zero value.
func Project4Dto3D(p Vec4) Vec3 {
	denom := ProjectionDistance + p.W
	if math.Abs(denom) < ProjectionEpsilon {
		if denom >= 0 {
			denom = ProjectionEpsilon
		} else {
			denom = -ProjectionEpsilon
		}
	}
	k := ProjectionDistance / denom
	return Vec3{p.X * k, p.Y * k, p.Z * k}
}

// ProjectStereographic projects from the unit 3-sphere to 3-space through
// the pole (0,0,0,1): (x,y,z)/(1-w), with the same sign-preserving
// denominator clamp as the perspective projection.
func ProjectStereographic(p Vec4) Vec3 {
	denom := 1 - p.W
	if math.Abs(denom) < ProjectionEpsilon {
		if denom >= 0 {
			denom = ProjectionEpsilon
		} else {
			denom = -ProjectionEpsilon
		}
	}
	k := 1 / denom
	return Vec3{p.X * k, p.Y * k, p.Z * k}
}

// ProjectOrthographic drops the w coordinate.
func ProjectOrthographic(p Vec4) Vec3 {
	return Vec3{p.X, p.Y, p.Z}
}

// ProjectOblique shears by w before dropping it: each spatial coordinate
// gains its shear factor times w.
func ProjectOblique(p Vec4, shear Vec3) Vec3 {
	return Vec3{
		p.X + shear.X*p.W,
		p.Y + shear.Y*p.W,
		p.Z + shear.Z*p.W,
	}
}

// Slice is the result of a w-slice projection: the 3D point, an alpha for
// distance-fade rendering, and whether the point lies inside the slab.
type Slice struct {
	Point Vec3
	Alpha float64
	OK    bool
}

// ProjectSlice intersects the point with the slab |w - sliceW| <=
// thickness. Outside the slab OK is false. Inside, Alpha is 1, or fades
// linearly to 0 at the slab boundary when fade is set.
func ProjectSlice(p Vec4, sliceW, thickness float64, fade bool) Slice {
	dist := math.Abs(p.W - sliceW)
	if dist > thickness {
		return Slice{}
	}

	alpha := 1.0
	if fade && thickness > 0 {
		alpha = 1 - dist/thickness
		alpha = math.Max(0, math.Min(1, alpha))
	}
	return Slice{Point: Vec3{p.X, p.Y, p.Z}, Alpha: alpha, OK: true}
}
