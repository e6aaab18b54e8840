package graphics

// Matrix is a 2D affine transform mapping source to destination coordinates:
//
//	| XX XY TX |   | x |
//	| YX YY TY | * | y |
//	|  0  0  1 |   | 1 |
//
// The zero value is NOT the identity; use IdentityMatrix or SetScale to
// initialize.
type Matrix struct {
	XX, XY, TX float64
	YX, YY, TY float64
}

// IdentityMatrix returns the identity transform.
func IdentityMatrix() Matrix {
	return Matrix{XX: 1, YY: 1}
}

// Reset restores the matrix to the identity transform.
func (m *Matrix) Reset() {
	*m = IdentityMatrix()
}

// SetScale replaces the matrix with a pure scale about the origin.
func (m *Matrix) SetScale(sx, sy float64) {
	*m = Matrix{XX: sx, YY: sy}
}

// PostTranslate applies a translation after the current transform.
func (m *Matrix) PostTranslate(dx, dy float64) {
	m.TX += dx
	m.TY += dy
}

// Apply maps a point through the transform.
func (m Matrix) Apply(p Offset) Offset {
	return Offset{
		X: m.XX*p.X + m.XY*p.Y + m.TX,
		Y: m.YX*p.X + m.YY*p.Y + m.TY,
	}
}

// Invert returns the inverse transform. The second return value is false if
// the matrix is singular, in which case the identity is returned.
func (m Matrix) Invert() (Matrix, bool) {
	det := m.XX*m.YY - m.XY*m.YX
	if det == 0 {
		return IdentityMatrix(), false
	}
	inv := Matrix{
		XX: m.YY / det,
		XY: -m.XY / det,
		YX: -m.YX / det,
		YY: m.XX / det,
	}
	inv.TX = -(inv.XX*m.TX + inv.XY*m.TY)
	inv.TY = -(inv.YX*m.TX + inv.YY*m.TY)
	return inv, true
}
