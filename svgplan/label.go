package svgplan

import (
	"github.com/benoitkugler/svgplan/geom"
	"github.com/benoitkugler/svgplan/svgdoc"
)

// Label is a text centered on Location.
type Label struct {
	Location geom.Coordinate
	Text     string
	Size     *float64 // font size, inherited when nil
}

func NewLabel(location geom.Coordinate, text string) Label {
	return Label{Location: location, Text: text}
}

// WithSize returns a copy of l with the given font size.
func (l Label) WithSize(size float64) Label {
	l.Size = &size
	return l
}

func (l Label) render() *svgdoc.Element {
	return svgdoc.NewElement("text").
		Attr("text-anchor", "middle").
		Attr("x", l.Location.X).
		Attr("y", l.Location.Y).
		AttrOpt("font-size", l.Size).
		SetText(l.Text)
}

// Title is rendered as a <title> element.
type Title string

// Description is rendered as a <desc> element.
type Description string
