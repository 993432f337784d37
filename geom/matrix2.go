package geom

import "math"

// singularTolerance is the determinant magnitude under which
// a matrix is considered not invertible.
const singularTolerance = 1e-12

func degToRad(a float64) float64 { return a * math.Pi / 180 }

// Matrix2 is a linear transform of the plane, acting on row vectors.
type Matrix2 struct {
	M11, M12 float64
	M21, M22 float64
}

// Identity2 is the multiplicative identity.
var Identity2 = Matrix2{1, 0, 0, 1}

// Rotate2 returns a rotation by a degrees.
func Rotate2(a float64) Matrix2 {
	s, c := math.Sincos(degToRad(a))
	return Matrix2{c, s, -s, c}
}

// Scale2 scales the x axis by kx and the y axis by ky.
func Scale2(kx, ky float64) Matrix2 { return Matrix2{kx, 0, 0, ky} }

// FlipX2 mirrors the x axis when flip is true, and is the identity otherwise.
func FlipX2(flip bool) Matrix2 {
	if !flip {
		return Identity2
	}
	return Matrix2{-1, 0, 0, 1}
}

// FlipY2 mirrors the y axis when flip is true, and is the identity otherwise.
func FlipY2(flip bool) Matrix2 {
	if !flip {
		return Identity2
	}
	return Matrix2{1, 0, 0, -1}
}

// ScaleN2 scales by k along the unit vector n.
func ScaleN2(n Vector2, k float64) Matrix2 {
	return Matrix2{
		M11: 1 + (k-1)*n.X*n.X,
		M12: (k - 1) * n.X * n.Y,
		M21: (k - 1) * n.X * n.Y,
		M22: 1 + (k-1)*n.Y*n.Y,
	}
}

// ProjectX2 projects onto the x axis.
func ProjectX2() Matrix2 { return Matrix2{1, 0, 0, 0} }

// ProjectY2 projects onto the y axis.
func ProjectY2() Matrix2 { return Matrix2{0, 0, 0, 1} }

// ProjectN2 projects onto the line orthogonal to the unit vector n.
func ProjectN2(n Vector2) Matrix2 { return ScaleN2(n, 0) }

// ReflectN2 reflects about the line orthogonal to the unit vector n.
func ReflectN2(n Vector2) Matrix2 { return ScaleN2(n, -1) }

// ShearX2 shifts x by s times y.
func ShearX2(s float64) Matrix2 { return Matrix2{1, 0, s, 1} }

// ShearY2 shifts y by s times x.
func ShearY2(s float64) Matrix2 { return Matrix2{1, s, 0, 1} }

// Mul returns m * n: applied to a point, m acts first.
func (m Matrix2) Mul(n Matrix2) Matrix2 {
	return Matrix2{
		M11: m.M11*n.M11 + m.M12*n.M21,
		M12: m.M11*n.M12 + m.M12*n.M22,
		M21: m.M21*n.M11 + m.M22*n.M21,
		M22: m.M21*n.M12 + m.M22*n.M22,
	}
}

func (m Matrix2) MulScalar(k float64) Matrix2 {
	return Matrix2{m.M11 * k, m.M12 * k, m.M21 * k, m.M22 * k}
}

func (m Matrix2) Add(n Matrix2) Matrix2 {
	return Matrix2{m.M11 + n.M11, m.M12 + n.M12, m.M21 + n.M21, m.M22 + n.M22}
}

func (m Matrix2) Neg() Matrix2 { return m.MulScalar(-1) }

func (m Matrix2) Sub(n Matrix2) Matrix2 { return m.Add(n.Neg()) }

func (m Matrix2) Transpose() Matrix2 { return Matrix2{m.M11, m.M21, m.M12, m.M22} }

func (m Matrix2) Determinant() float64 { return m.M11*m.M22 - m.M12*m.M21 }

func (m Matrix2) Adjoint() Matrix2 { return Matrix2{m.M22, -m.M12, -m.M21, m.M11} }

// Inverse returns the inverse matrix, or a *NumericError
// when m is singular.
func (m Matrix2) Inverse() (Matrix2, error) {
	det := m.Determinant()
	if math.Abs(det) < singularTolerance {
		return Matrix2{}, &NumericError{Op: "Matrix2.Inverse", Value: det}
	}
	return m.Adjoint().MulScalar(1 / det), nil
}

// ApproxEqual compares each component within tol.
func (m Matrix2) ApproxEqual(n Matrix2, tol float64) bool {
	return approx(m.M11, n.M11, tol) && approx(m.M12, n.M12, tol) &&
		approx(m.M21, n.M21, tol) && approx(m.M22, n.M22, tol)
}

func approx(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

// Matrix2Builder accumulates linear transforms, in call order.
// The zero value is not usable: start with NewMatrix2Builder.
type Matrix2Builder struct {
	result Matrix2
}

func NewMatrix2Builder() Matrix2Builder { return Matrix2Builder{result: Identity2} }

func (b Matrix2Builder) then(m Matrix2) Matrix2Builder {
	return Matrix2Builder{result: b.result.Mul(m)}
}

func (b Matrix2Builder) Rotate(a float64) Matrix2Builder { return b.then(Rotate2(a)) }
func (b Matrix2Builder) Scale(kx, ky float64) Matrix2Builder { return b.then(Scale2(kx, ky)) }
func (b Matrix2Builder) FlipX(flip bool) Matrix2Builder { return b.then(FlipX2(flip)) }
func (b Matrix2Builder) FlipY(flip bool) Matrix2Builder { return b.then(FlipY2(flip)) }
func (b Matrix2Builder) ScaleN(n Vector2, k float64) Matrix2Builder {
	return b.then(ScaleN2(n, k))
}
func (b Matrix2Builder) ProjectX() Matrix2Builder { return b.then(ProjectX2()) }
func (b Matrix2Builder) ProjectY() Matrix2Builder { return b.then(ProjectY2()) }
func (b Matrix2Builder) ProjectN(n Vector2) Matrix2Builder { return b.then(ProjectN2(n)) }
func (b Matrix2Builder) ReflectN(n Vector2) Matrix2Builder { return b.then(ReflectN2(n)) }
func (b Matrix2Builder) ShearX(s float64) Matrix2Builder { return b.then(ShearX2(s)) }
func (b Matrix2Builder) ShearY(s float64) Matrix2Builder { return b.then(ShearY2(s)) }

// Build returns the composed matrix.
func (b Matrix2Builder) Build() Matrix2 { return b.result }
