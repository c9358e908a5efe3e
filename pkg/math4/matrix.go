package math4

import "math"

// Mat4 is a 4x4 matrix stored column-major (data[col*4+row]), the layout
// GPU uniform uploads expect.
type Mat4 [16]float64

// Ident4 returns the 4x4 identity matrix.
func Ident4() Mat4 {
	var m Mat4
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
	return m
}

// At returns the element at (row, col).
func (m Mat4) At(row, col int) float64 {
	return m[col*4+row]
}

// Set assigns the element at (row, col).
func (m *Mat4) Set(row, col int, v float64) {
	m[col*4+row] = v
}

// Column returns column col as a Vec4.
func (m Mat4) Column(col int) Vec4 {
	i := col * 4
	return Vec4{m[i], m[i+1], m[i+2], m[i+3]}
}

// SetColumn assigns column col from a Vec4.
func (m *Mat4) SetColumn(col int, v Vec4) {
	i := col * 4
	m[i], m[i+1], m[i+2], m[i+3] = v.X, v.Y, v.Z, v.W
}

// MulVec applies the matrix to a column vector.
func (m Mat4) MulVec(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// Mul returns the matrix product m·o, so that (m.Mul(o)).MulVec(v) equals
// m.MulVec(o.MulVec(v)).
func (m Mat4) Mul(o Mat4) Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float64
			for k := 0; k < 4; k++ {
				sum += m.At(row, k) * o.At(k, col)
			}
			out.Set(row, col, sum)
		}
	}
	return out
}

// Transpose returns the transposed matrix.
func (m Mat4) Transpose() Mat4 {
	var out Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			out.Set(row, col, m.At(col, row))
		}
	}
	return out
}

// Float32 returns the 16 elements as float32 in column-major order, the
// form consumed by GPU uniform upload.
func (m Mat4) Float32() [16]float32 {
	var out [16]float32
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}

// planeRotation builds the single-plane rotation matrix mapping basis
// vector i to (cos θ)·eᵢ + (sin θ)·eⱼ and eⱼ to -(sin θ)·eᵢ + (cos θ)·eⱼ.
func planeRotation(i, j int, angle float64) Mat4 {
	c, s := math.Cos(angle), math.Sin(angle)
	m := Ident4()
	m.Set(i, i, c)
	m.Set(j, i, s)
	m.Set(i, j, -s)
	m.Set(j, j, c)
	return m
}

// RotationXY returns the rotation matrix for the XY plane.
func RotationXY(angle float64) Mat4 { return planeRotation(0, 1, angle) }

// RotationXZ returns the rotation matrix for the XZ plane.
func RotationXZ(angle float64) Mat4 { return planeRotation(0, 2, angle) }

// RotationYZ returns the rotation matrix for the YZ plane.
func RotationYZ(angle float64) Mat4 { return planeRotation(1, 2, angle) }

// RotationXW returns the rotation matrix for the XW plane.
func RotationXW(angle float64) Mat4 { return planeRotation(0, 3, angle) }

// RotationYW returns the rotation matrix for the YW plane.
func RotationYW(angle float64) Mat4 { return planeRotation(1, 3, angle) }

// RotationZW returns the rotation matrix for the ZW plane.
func RotationZW(angle float64) Mat4 { return planeRotation(2, 3, angle) }

// RotationPlane returns the single-plane rotation matrix for any of the
// six canonical planes.
func RotationPlane(plane Plane, angle float64) (Mat4, error) {
	switch plane {
	case PlaneXY:
		return RotationXY(angle), nil
	case PlaneXZ:
		return RotationXZ(angle), nil
	case PlaneYZ:
		return RotationYZ(angle), nil
	case PlaneXW:
		return RotationXW(angle), nil
	case PlaneYW:
		return RotationYW(angle), nil
	case PlaneZW:
		return RotationZW(angle), nil
	}
	return Ident4(), ErrInvalidPlane
}
