package geom

import "math"

// Matrix3 is an affine transform of the plane acting on
// homogeneous row vectors (x, y, 1): the upper 2x2 block is the
// linear part and the third row (M31, M32) the translation.
type Matrix3 struct {
	M11, M12, M13 float64
	M21, M22, M23 float64
	M31, M32, M33 float64
}

// Identity3 is the multiplicative identity.
var Identity3 = Matrix3{
	M11: 1,
	M22: 1,
	M33: 1,
}

// Affine embeds the linear transform m, without translation.
func Affine(m Matrix2) Matrix3 {
	return Matrix3{
		M11: m.M11, M12: m.M12,
		M21: m.M21, M22: m.M22,
		M33: 1,
	}
}

// Linear returns the upper 2x2 block.
func (m Matrix3) Linear() Matrix2 { return Matrix2{m.M11, m.M12, m.M21, m.M22} }

// Rotate3 returns a rotation by a degrees around the origin.
func Rotate3(a float64) Matrix3 { return Affine(Rotate2(a)) }

func Scale3(sx, sy float64) Matrix3 { return Affine(Scale2(sx, sy)) }

func FlipX3(flip bool) Matrix3 { return Affine(FlipX2(flip)) }

func FlipY3(flip bool) Matrix3 { return Affine(FlipY2(flip)) }

func ShearX3(s float64) Matrix3 { return Affine(ShearX2(s)) }

func ShearY3(s float64) Matrix3 { return Affine(ShearY2(s)) }

func ProjectX3() Matrix3 { return Affine(ProjectX2()) }

func ProjectY3() Matrix3 { return Affine(ProjectY2()) }

func ProjectN3(n Vector2) Matrix3 { return Affine(ProjectN2(n)) }

func ReflectN3(n Vector2) Matrix3 { return Affine(ReflectN2(n)) }

func ScaleN3(n Vector2, k float64) Matrix3 { return Affine(ScaleN2(n, k)) }

// Translate3 moves points by v.
func Translate3(v Vector2) Matrix3 {
	m := Identity3
	m.M31, m.M32 = v.X, v.Y
	return m
}

// Mul returns m * n: applied to a point, m acts first.
func (m Matrix3) Mul(n Matrix3) Matrix3 {
	return Matrix3{
		M11: m.M11*n.M11 + m.M12*n.M21 + m.M13*n.M31,
		M12: m.M11*n.M12 + m.M12*n.M22 + m.M13*n.M32,
		M13: m.M11*n.M13 + m.M12*n.M23 + m.M13*n.M33,
		M21: m.M21*n.M11 + m.M22*n.M21 + m.M23*n.M31,
		M22: m.M21*n.M12 + m.M22*n.M22 + m.M23*n.M32,
		M23: m.M21*n.M13 + m.M22*n.M23 + m.M23*n.M33,
		M31: m.M31*n.M11 + m.M32*n.M21 + m.M33*n.M31,
		M32: m.M31*n.M12 + m.M32*n.M22 + m.M33*n.M32,
		M33: m.M31*n.M13 + m.M32*n.M23 + m.M33*n.M33,
	}
}

func (m Matrix3) MulScalar(k float64) Matrix3 {
	return Matrix3{
		m.M11 * k, m.M12 * k, m.M13 * k,
		m.M21 * k, m.M22 * k, m.M23 * k,
		m.M31 * k, m.M32 * k, m.M33 * k,
	}
}

func (m Matrix3) Add(n Matrix3) Matrix3 {
	return Matrix3{
		m.M11 + n.M11, m.M12 + n.M12, m.M13 + n.M13,
		m.M21 + n.M21, m.M22 + n.M22, m.M23 + n.M23,
		m.M31 + n.M31, m.M32 + n.M32, m.M33 + n.M33,
	}
}

func (m Matrix3) Neg() Matrix3 { return m.MulScalar(-1) }

func (m Matrix3) Sub(n Matrix3) Matrix3 { return m.Add(n.Neg()) }

func (m Matrix3) Transpose() Matrix3 {
	return Matrix3{
		m.M11, m.M21, m.M31,
		m.M12, m.M22, m.M32,
		m.M13, m.M23, m.M33,
	}
}

func (m Matrix3) Determinant() float64 {
	return m.M11*(m.M22*m.M33-m.M23*m.M32) -
		m.M12*(m.M21*m.M33-m.M23*m.M31) +
		m.M13*(m.M21*m.M32-m.M22*m.M31)
}

// Adjoint returns the transpose of the cofactor matrix.
func (m Matrix3) Adjoint() Matrix3 {
	return Matrix3{
		M11: m.M22*m.M33 - m.M23*m.M32,
		M12: m.M13*m.M32 - m.M12*m.M33,
		M13: m.M12*m.M23 - m.M13*m.M22,
		M21: m.M23*m.M31 - m.M21*m.M33,
		M22: m.M11*m.M33 - m.M13*m.M31,
		M23: m.M13*m.M21 - m.M11*m.M23,
		M31: m.M21*m.M32 - m.M22*m.M31,
		M32: m.M12*m.M31 - m.M11*m.M32,
		M33: m.M11*m.M22 - m.M12*m.M21,
	}
}

// Inverse returns the inverse matrix, or a *NumericError
// when m is singular.
func (m Matrix3) Inverse() (Matrix3, error) {
	det := m.Determinant()
	if math.Abs(det) < singularTolerance {
		return Matrix3{}, &NumericError{Op: "Matrix3.Inverse", Value: det}
	}
	return m.Adjoint().MulScalar(1 / det), nil
}

// Apply transforms the point p.
func (m Matrix3) Apply(p Vector2) Vector2 {
	return p.Homogeneous().Transform(m).Vector2()
}

// SVG returns the arguments of the equivalent SVG matrix(a b c d e f).
func (m Matrix3) SVG() (a, b, c, d, e, f float64) {
	return m.M11, m.M12, m.M21, m.M22, m.M31, m.M32
}

// ApproxEqual compares each component within tol.
func (m Matrix3) ApproxEqual(n Matrix3, tol float64) bool {
	return approx(m.M11, n.M11, tol) && approx(m.M12, n.M12, tol) && approx(m.M13, n.M13, tol) &&
		approx(m.M21, n.M21, tol) && approx(m.M22, n.M22, tol) && approx(m.M23, n.M23, tol) &&
		approx(m.M31, n.M31, tol) && approx(m.M32, n.M32, tol) && approx(m.M33, n.M33, tol)
}

// Matrix3Builder accumulates affine transforms: a point is
// transformed by each step in call order.
// The zero value is not usable: start with NewMatrix3Builder.
type Matrix3Builder struct {
	result Matrix3
}

func NewMatrix3Builder() Matrix3Builder { return Matrix3Builder{result: Identity3} }

func (b Matrix3Builder) then(m Matrix3) Matrix3Builder {
	return Matrix3Builder{result: b.result.Mul(m)}
}

func (b Matrix3Builder) Rotate(a float64) Matrix3Builder { return b.then(Rotate3(a)) }
func (b Matrix3Builder) Scale(sx, sy float64) Matrix3Builder { return b.then(Scale3(sx, sy)) }
func (b Matrix3Builder) FlipX(flip bool) Matrix3Builder { return b.then(FlipX3(flip)) }
func (b Matrix3Builder) FlipY(flip bool) Matrix3Builder { return b.then(FlipY3(flip)) }
func (b Matrix3Builder) Translate(v Vector2) Matrix3Builder { return b.then(Translate3(v)) }
func (b Matrix3Builder) ShearX(s float64) Matrix3Builder { return b.then(ShearX3(s)) }
func (b Matrix3Builder) ShearY(s float64) Matrix3Builder { return b.then(ShearY3(s)) }
func (b Matrix3Builder) ProjectX() Matrix3Builder { return b.then(ProjectX3()) }
func (b Matrix3Builder) ProjectY() Matrix3Builder { return b.then(ProjectY3()) }
func (b Matrix3Builder) ProjectN(n Vector2) Matrix3Builder { return b.then(ProjectN3(n)) }
func (b Matrix3Builder) ReflectN(n Vector2) Matrix3Builder { return b.then(ReflectN3(n)) }
func (b Matrix3Builder) ScaleN(n Vector2, k float64) Matrix3Builder { return b.then(ScaleN3(n, k)) }

// Then appends an already composed transform.
func (b Matrix3Builder) Then(m Matrix3) Matrix3Builder { return b.then(m) }

// Build returns the composed matrix.
func (b Matrix3Builder) Build() Matrix3 { return b.result }
