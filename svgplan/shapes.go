// Builds layout plans: areas, circles, lines and labels placed
// in nested coordinate frames, and serializes them to SVG.
package svgplan

import (
	"errors"

	"github.com/benoitkugler/svgplan/geom"
	"github.com/benoitkugler/svgplan/svgdoc"
)

// StrokeWidth is the line width of every stroked shape, in plan units.
const StrokeWidth = 0.25

var (
	// ErrDrained is returned when adding to a world already rendered.
	ErrDrained = errors.New("svgplan: world already rendered")
	// ErrNoWorld is returned when adding to an area without a world.
	ErrNoWorld = errors.New("svgplan: area has no world")
)

// Shape groups the elements of a plan.
// The set of shapes is closed: Area, Circle, Line, Label, Title,
// Description, Axis, *World, Tree and Raw.
type Shape interface {
	isShape()
}

func (*Area) isShape()       {}
func (Circle) isShape()      {}
func (Line) isShape()        {}
func (Label) isShape()       {}
func (Title) isShape()       {}
func (Description) isShape() {}
func (Axis) isShape()        {}
func (*World) isShape()      {}
func (Tree) isShape()        {}
func (Raw) isShape()         {}

// Raw inserts an already built markup element.
type Raw struct {
	Element *svgdoc.Element
}

// Render returns the markup of the shape. Rendering a world
// (directly or through its area) transfers its children to the result.
func Render(s Shape) *svgdoc.Element {
	switch s := s.(type) {
	case *Area:
		return s.render()
	case Circle:
		return s.render()
	case Line:
		return s.render()
	case Label:
		return s.render()
	case Title:
		return svgdoc.NewElement("title").SetText(string(s))
	case Description:
		return svgdoc.NewElement("desc").SetText(string(s))
	case Axis:
		return s.render()
	case *World:
		return s.render()
	case Tree:
		return s.render()
	case Raw:
		return s.Element
	default:
		return nil
	}
}

// Circle is centered on Center, with radius R.
type Circle struct {
	Center geom.Coordinate
	R      float64
	Color  Color
	Fill   Color
}

func NewCircle(cx, cy, r float64, stroke, fill Color) Circle {
	return Circle{Center: geom.NewCoordinate(cx, cy), R: r, Color: stroke, Fill: fill}
}

func (c Circle) render() *svgdoc.Element {
	return svgdoc.NewElement("circle").
		Attr("r", c.R).
		Attr("cx", c.Center.X).
		Attr("cy", c.Center.Y).
		Attr("fill", c.Fill).
		Attr("stroke", c.Color).
		Attr("stroke-width", StrokeWidth)
}

// Line is a segment from P1 to P2.
type Line struct {
	P1, P2 geom.Coordinate
	Color  Color
}

func NewLine(p1, p2 geom.Coordinate, color Color) Line {
	return Line{P1: p1, P2: p2, Color: color}
}

func (l Line) render() *svgdoc.Element {
	return svgdoc.NewElement("line").
		Attr("x1", l.P1.X).
		Attr("y1", l.P1.Y).
		Attr("x2", l.P2.X).
		Attr("y2", l.P2.Y).
		Attr("stroke", l.Color).
		Attr("stroke-width", StrokeWidth)
}
