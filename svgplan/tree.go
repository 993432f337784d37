package svgplan

import (
	"github.com/benoitkugler/svgplan/geom"
	"github.com/benoitkugler/svgplan/svgdoc"
)

// treeStrokeWidth is thinner than StrokeWidth so that small trunks
// stay readable.
const treeStrokeWidth = 0.2

// Tree is a planted tree: a trunk, an optional crown and a name label.
type Tree struct {
	Name          string
	Species       string
	TrunkDiameter float64
	CrownDiameter *float64
	Location      geom.Coordinate
	LabelLocation geom.Coordinate
}

func (t Tree) render() *svgdoc.Element {
	g := svgdoc.NewElement("g").
		Attr("id", "tree-"+t.Name).
		Attr("stroke-width", treeStrokeWidth).
		Append(
			Render(Title("Tree "+t.Name)),
			Render(Description(t.Species)),
		)
	if t.CrownDiameter != nil {
		g.Append(t.circle(*t.CrownDiameter, DarkGreen, Green))
	}
	g.Append(
		t.circle(t.TrunkDiameter, Maroon, Brown),
		NewLabel(t.LabelLocation, t.Name).render(),
	)
	return g
}

func (t Tree) circle(diameter float64, stroke, fill Color) *svgdoc.Element {
	return svgdoc.NewElement("circle").
		Attr("r", diameter/2).
		Attr("cx", t.Location.X).
		Attr("cy", t.Location.Y).
		Attr("fill", fill).
		Attr("stroke", stroke)
}
