package geom

import "math"

// Coordinate is a position together with an orientation:
// a rotation R in degrees, axis flips and a per axis scale.
// Transitions never modify the receiver.
// The zero value has null scales: use NewCoordinate.
type Coordinate struct {
	X, Y   float64
	R      float64 // rotation, in degrees
	FX, FY bool    // flipped x and y axis
	SX, SY float64 // scale of the x and y axis
}

// NewCoordinate returns the point (x, y) with the identity orientation.
func NewCoordinate(x, y float64) Coordinate {
	return Coordinate{X: x, Y: y, SX: 1, SY: 1}
}

// Origin is (0, 0) with the identity orientation.
var Origin = NewCoordinate(0, 0)

// Tuple returns the position.
func (c Coordinate) Tuple() (x, y float64) { return c.X, c.Y }

// Vector returns the position as a vector.
func (c Coordinate) Vector() Vector2 { return Vector2{c.X, c.Y} }

// FlipX toggles the x axis flip.
func (c Coordinate) FlipX() Coordinate {
	c.FX = !c.FX
	return c
}

// FlipXIf sets the x axis flip to v.
func (c Coordinate) FlipXIf(v bool) Coordinate {
	c.FX = v
	return c
}

// FlipY toggles the y axis flip.
func (c Coordinate) FlipY() Coordinate {
	c.FY = !c.FY
	return c
}

// FlipYIf sets the y axis flip to v.
func (c Coordinate) FlipYIf(v bool) Coordinate {
	c.FY = v
	return c
}

// Rotate adds r degrees to the rotation.
func (c Coordinate) Rotate(r float64) Coordinate {
	c.R += r
	return c
}

// ScaleX sets the x axis scale.
func (c Coordinate) ScaleX(sx float64) Coordinate {
	c.SX = sx
	return c
}

// ScaleY sets the y axis scale.
func (c Coordinate) ScaleY(sy float64) Coordinate {
	c.SY = sy
	return c
}

// Translate moves the position by (dx, dy).
func (c Coordinate) Translate(dx, dy float64) Coordinate {
	c.X += dx
	c.Y += dy
	return c
}

// Matrix returns the linear part of the frame anchored at c:
// scale, then flips, then rotation.
func (c Coordinate) Matrix() Matrix3 {
	return NewMatrix3Builder().
		Scale(c.SX, c.SY).
		FlipX(c.FX).
		FlipY(c.FY).
		Rotate(c.R).
		Build()
}

// Frame returns the full transform of the frame anchored at c:
// Matrix followed by the translation to (X, Y).
// It maps points expressed in the frame to the enclosing frame.
func (c Coordinate) Frame() Matrix3 {
	return NewMatrix3Builder().
		Then(c.Matrix()).
		Translate(c.Vector()).
		Build()
}

// ReferenceToWorld interprets c as expressed in the frame anchored at ref,
// and returns it in the frame ref is expressed in.
// The position goes through ref.Frame(). The orientation of the result is
// the frame of c placed in ref: flips combine and scales multiply, and the
// rotation of c changes sign when ref mirrors the plane (exactly one flip),
// so that the result may be used as a reference in turn.
// The composed orientation is exact when ref has an isotropic scale
// (SX == SY); otherwise only the position is.
func (c Coordinate) ReferenceToWorld(ref Coordinate) Coordinate {
	p := ref.Frame().Apply(c.Vector())
	r := c.R
	if ref.FX != ref.FY { // a reflection reverses the sense of rotations
		r = -r
	}
	return Coordinate{
		X:  p.X,
		Y:  p.Y,
		R:  ref.R + r,
		FX: c.FX != ref.FX,
		FY: c.FY != ref.FY,
		SX: c.SX * ref.SX,
		SY: c.SY * ref.SY,
	}
}

// Fix resolves c against the identity frame at the origin.
func (c Coordinate) Fix() Coordinate { return c.ReferenceToWorld(Origin) }

// Distance is the Euclidean distance between the two positions.
func (c Coordinate) Distance(other Coordinate) float64 {
	return c.Vector().Distance(other.Vector())
}

// ApproxEqual compares positions and scales within tol, and
// requires the same flips.
func (c Coordinate) ApproxEqual(other Coordinate, tol float64) bool {
	return approx(c.X, other.X, tol) && approx(c.Y, other.Y, tol) &&
		approx(c.R, other.R, tol) && c.FX == other.FX && c.FY == other.FY &&
		approx(c.SX, other.SX, tol) && approx(c.SY, other.SY, tol)
}

// Coordinates is an ordered list of points.
type Coordinates []Coordinate

// Coords builds a list of identity oriented points from (x, y) pairs.
func Coords(xy ...[2]float64) Coordinates {
	out := make(Coordinates, len(xy))
	for i, p := range xy {
		out[i] = NewCoordinate(p[0], p[1])
	}
	return out
}

// Bounds returns the corners of the axis aligned bounding box.
func (cs Coordinates) Bounds() (lo, hi Vector2, err error) {
	if len(cs) == 0 {
		return lo, hi, &PreconditionError{Op: "Coordinates.Bounds", Need: 1, Got: 0}
	}
	lo = Vector2{math.Inf(1), math.Inf(1)}
	hi = Vector2{math.Inf(-1), math.Inf(-1)}
	for _, c := range cs {
		lo.X = math.Min(lo.X, c.X)
		lo.Y = math.Min(lo.Y, c.Y)
		hi.X = math.Max(hi.X, c.X)
		hi.Y = math.Max(hi.Y, c.Y)
	}
	return lo, hi, nil
}

// AxisScale sizes the axis indicator of a frame: a tenth of the
// smallest side of the bounding box. Degenerate sets yield 0.
func (cs Coordinates) AxisScale() (float64, error) {
	lo, hi, err := cs.Bounds()
	if err != nil {
		return 0, &PreconditionError{Op: "Coordinates.AxisScale", Need: 1, Got: len(cs)}
	}
	return math.Min(hi.X-lo.X, hi.Y-lo.Y) / 10, nil
}

// Transform resolves every point against ref.
func (cs Coordinates) Transform(ref Coordinate) Coordinates {
	out := make(Coordinates, len(cs))
	for i, c := range cs {
		out[i] = c.ReferenceToWorld(ref)
	}
	return out
}
