// Package geom implements the small linear algebra needed to place
// drawings in nested coordinate frames: 2D and homogeneous vectors,
// 2x2 and 3x3 matrices with fluent builders, and the Coordinate type
// mapping a point of a local frame into its enclosing frame.
//
// Matrices act on row vectors (v' = v * M) and angles are in degrees.
package geom

import "math"

// Vector2 is a 2D vector or point.
type Vector2 struct {
	X, Y float64
}

// Vec2 is a shortcut for Vector2{x, y}.
func Vec2(x, y float64) Vector2 { return Vector2{X: x, Y: y} }

func (v Vector2) Add(w Vector2) Vector2 { return Vector2{v.X + w.X, v.Y + w.Y} }

func (v Vector2) Sub(w Vector2) Vector2 { return Vector2{v.X - w.X, v.Y - w.Y} }

func (v Vector2) Neg() Vector2 { return Vector2{-v.X, -v.Y} }

func (v Vector2) Mul(k float64) Vector2 { return Vector2{v.X * k, v.Y * k} }

func (v Vector2) Div(k float64) Vector2 { return Vector2{v.X / k, v.Y / k} }

// Dot returns the dot product of v and w.
func (v Vector2) Dot(w Vector2) float64 { return v.X*w.X + v.Y*w.Y }

// PerpDot returns the dot product of the perpendicular of v with w,
// the 2D analogue of the cross product.
func (v Vector2) PerpDot(w Vector2) float64 { return -v.Y*w.X + v.X*w.Y }

// Length is the Euclidean norm.
func (v Vector2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Normalize returns the unit vector with the direction of v.
// A zero-length vector yields a *NumericError.
func (v Vector2) Normalize() (Vector2, error) {
	l := v.Length()
	if l == 0 {
		return Vector2{}, &NumericError{Op: "Vector2.Normalize", Value: l}
	}
	return v.Div(l), nil
}

// Distance returns the length of w - v.
func (v Vector2) Distance(w Vector2) float64 { return w.Sub(v).Length() }

// Transform returns v * m.
func (v Vector2) Transform(m Matrix2) Vector2 {
	return Vector2{
		X: v.X*m.M11 + v.Y*m.M21,
		Y: v.X*m.M12 + v.Y*m.M22,
	}
}

// Homogeneous returns the point (x, y, 1).
func (v Vector2) Homogeneous() Vector3 { return Vector3{v.X, v.Y, 1} }

// Vector3 is a 3D vector, also used as an homogeneous 2D point when Z is 1.
type Vector3 struct {
	X, Y, Z float64
}

func (v Vector3) Add(w Vector3) Vector3 { return Vector3{v.X + w.X, v.Y + w.Y, v.Z + w.Z} }

func (v Vector3) Sub(w Vector3) Vector3 { return Vector3{v.X - w.X, v.Y - w.Y, v.Z - w.Z} }

func (v Vector3) Neg() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

func (v Vector3) Mul(k float64) Vector3 { return Vector3{v.X * k, v.Y * k, v.Z * k} }

func (v Vector3) Div(k float64) Vector3 { return Vector3{v.X / k, v.Y / k, v.Z / k} }

func (v Vector3) Dot(w Vector3) float64 { return v.X*w.X + v.Y*w.Y + v.Z*w.Z }

func (v Vector3) Length() float64 { return math.Sqrt(v.Dot(v)) }

// Normalize returns the unit vector with the direction of v.
// A zero-length vector yields a *NumericError.
func (v Vector3) Normalize() (Vector3, error) {
	l := v.Length()
	if l == 0 {
		return Vector3{}, &NumericError{Op: "Vector3.Normalize", Value: l}
	}
	return v.Div(l), nil
}

// Distance returns the length of w - v.
func (v Vector3) Distance(w Vector3) float64 { return w.Sub(v).Length() }

// Transform returns v * m.
func (v Vector3) Transform(m Matrix3) Vector3 {
	return Vector3{
		X: v.X*m.M11 + v.Y*m.M21 + v.Z*m.M31,
		Y: v.X*m.M12 + v.Y*m.M22 + v.Z*m.M32,
		Z: v.X*m.M13 + v.Y*m.M23 + v.Z*m.M33,
	}
}

// Vector2 drops the Z component.
func (v Vector3) Vector2() Vector2 { return Vector2{v.X, v.Y} }
