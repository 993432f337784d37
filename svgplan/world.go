package svgplan

import (
	"fmt"
	"math"

	"github.com/benoitkugler/svgplan/geom"
	"github.com/benoitkugler/svgplan/svgdoc"
)

// defaultAxisScale is the axis length of a world created without area.
const defaultAxisScale = 10

// World is a nested coordinate frame: its children are expressed
// relative to Location, and the whole group is placed with a single
// transform attribute.
//
// A World owns its children until it is rendered; after that,
// Add returns ErrDrained.
type World struct {
	Location  geom.Coordinate
	AxisScale float64
	ShowAxis  bool

	children []*svgdoc.Element
	drained  bool
}

// NewWorld returns an empty frame anchored at location, showing
// its axis.
func NewWorld(location geom.Coordinate) *World {
	return &World{Location: location, AxisScale: defaultAxisScale, ShowAxis: true}
}

func (w *World) WithAxisScale(scale float64) *World {
	w.AxisScale = scale
	return w
}

// WithoutAxis hides the axis indicator.
func (w *World) WithoutAxis() *World {
	w.ShowAxis = false
	return w
}

// Add appends s, expressed in the local frame.
func (w *World) Add(s Shape) error {
	if w.drained {
		return ErrDrained
	}
	if el := Render(s); el != nil {
		w.children = append(w.children, el)
	}
	return nil
}

// Len returns the number of children added so far.
func (w *World) Len() int { return len(w.children) }

// Transform returns the transform attribute placing the frame:
// translate(tx ty) matrix(a b c d e f).
func (w *World) Transform() string {
	a, b, c, d, e, f := w.Location.Matrix().SVG()
	n := func(v float64) string {
		if math.Abs(v) < 1e-12 { // rounding noise of sin and cos
			v = 0
		}
		return svgdoc.FormatNumber(v)
	}
	return fmt.Sprintf("translate(%s %s) matrix(%s %s %s %s %s %s)",
		n(w.Location.X), n(w.Location.Y), n(a), n(b), n(c), n(d), n(e), n(f))
}

func (w *World) render() *svgdoc.Element {
	g := svgdoc.NewElement("g").Attr("transform", w.Transform())
	if w.ShowAxis {
		g.Append(Axis{Location: geom.Origin, Scale: w.AxisScale}.render())
	}
	g.Append(w.children...)
	w.children = nil
	w.drained = true
	return g
}

// Axis draws the x and y unit directions of a frame as
// two grey arrows of length Scale.
type Axis struct {
	Location geom.Coordinate
	Scale    float64
}

func NewAxis(scale float64) Axis {
	return Axis{Location: geom.Origin, Scale: scale}
}

func (a Axis) render() *svgdoc.Element {
	arrow := a.Scale / 10
	xDir := a.Location.Translate(a.Scale, 0)
	yDir := a.Location.Translate(0, a.Scale)
	xA1 := xDir.Translate(-arrow, arrow)
	xA2 := xDir.Translate(-arrow, -arrow)
	yA1 := yDir.Translate(-arrow, -arrow)
	yA2 := yDir.Translate(arrow, -arrow)
	g := svgdoc.NewElement("g")
	for _, l := range [...]Line{
		{a.Location, xDir, Grey},
		{a.Location, yDir, Grey},
		{xDir, xA1, Grey},
		{xDir, xA2, Grey},
		{yDir, yA1, Grey},
		{yDir, yA2, Grey},
		{xA1, xA2, Grey},
	} {
		g.Append(l.render())
	}
	return g
}
