package svgplan

import (
	"strings"

	"github.com/benoitkugler/svgplan/geom"
	"github.com/benoitkugler/svgplan/svgdoc"
)

// Area is a closed polygon, optionally carrying its own
// coordinate frame in which sub shapes are placed.
type Area struct {
	Corners geom.Coordinates
	Color   Color // stroke
	Fill    Color
	World   *World
}

// NewArea returns a black outlined, unfilled polygon.
// At least 3 corners are required.
func NewArea(corners geom.Coordinates) (*Area, error) {
	if len(corners) < 3 {
		return nil, &geom.PreconditionError{Op: "svgplan.NewArea", Need: 3, Got: len(corners)}
	}
	return &Area{Corners: corners, Color: Black, Fill: None}, nil
}

func (a *Area) WithColor(c Color) *Area {
	a.Color = c
	return a
}

func (a *Area) WithFill(c Color) *Area {
	a.Fill = c
	return a
}

// WithWorld anchors a frame at origin, with an axis indicator
// sized after the corners. An area built without NewArea must still
// have 3 corners.
func (a *Area) WithWorld(origin geom.Coordinate) (*Area, error) {
	if len(a.Corners) < 3 {
		return a, &geom.PreconditionError{Op: "svgplan.Area.WithWorld", Need: 3, Got: len(a.Corners)}
	}
	scale, err := a.Corners.AxisScale()
	if err != nil {
		return a, err
	}
	a.World = NewWorld(origin).WithAxisScale(scale)
	return a, nil
}

// Add places s in the frame of the area.
func (a *Area) Add(s Shape) error {
	if a.World == nil {
		return ErrNoWorld
	}
	return a.World.Add(s)
}

// PathData returns the outline in SVG path syntax: M x,y L x,y ... z
func (a *Area) PathData() string {
	chunks := make([]string, 0, len(a.Corners)+1)
	for i, c := range a.Corners {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		chunks = append(chunks, cmd+svgdoc.FormatNumber(c.X)+","+svgdoc.FormatNumber(c.Y))
	}
	chunks = append(chunks, "z")
	return strings.Join(chunks, " ")
}

func (a *Area) render() *svgdoc.Element {
	g := svgdoc.NewElement("g").Append(
		svgdoc.NewElement("path").
			Attr("d", a.PathData()).
			Attr("fill", a.Fill).
			Attr("stroke", a.Color).
			Attr("stroke-width", StrokeWidth),
	)
	if a.World != nil {
		g.Append(a.World.render())
	}
	return g
}
