// Given a markup tree produced by svgplan, implements how to
// draw it on screen.
// This requires a driver implementing the actual draw operations,
// such as a rasterizer to output .png images or a pdf writer.
package svgdraw

import (
	"image/color"

	"golang.org/x/image/math/fixed"
)

// Drawer knows how to do the actual draw operations
// but doesn't need any SVG kwowledge.
// In particular, tranformations matrix are already applied to the points
// before sending them to the Drawer.
type Drawer interface {
	// Clear must reset the internal state (used before starting a new path painting)
	Clear()

	// Start starts a new path at the given point.
	Start(a fixed.Point26_6)

	// Line adds a line for the current point to `b`
	Line(b fixed.Point26_6)

	// CubeBezier adds a cubic bezier curve to the path
	CubeBezier(b, c, d fixed.Point26_6)

	// Closes the path to the start point if `closeLoop` is true
	Stop(closeLoop bool)

	// SetColor sets the color of the next path. It is called
	// before the path is started.
	SetColor(c color.Color, opacity float64)

	// Draw fills or strokes the accumulated path using the current settings
	Draw()
}

type Filler interface {
	Drawer

	// Decide to use or not the NonZeroWinding rule for the current path
	SetWinding(useNonZeroWinding bool)
}

type Stroker interface {
	Drawer

	// SetStrokeWidth sets the line width, in device units
	SetStrokeWidth(width fixed.Int26_6)
}

// TextDrawer is optionally implemented by drivers able to write labels.
type TextDrawer interface {
	// DrawText writes `text` horizontally, with its baseline starting
	// at `dot` (after anchoring), with a font size in device units.
	DrawText(dot fixed.Point26_6, size float64, text string, c color.Color)

	// MeasureText returns the advance of `text`, in device units.
	MeasureText(size float64, text string) float64
}

type Driver interface {
	// SetupDrawers returns the backend painters, and
	// will be called at the begining of every path.
	// If the `willXXX` boolean is false, the returned drawer should be nil
	// to avoid useless operations.
	SetupDrawers(willFill, willStroke bool) (Filler, Stroker)
}

// ErrorMode determines how unsupported elements are handled.
type ErrorMode uint8

const (
	// IgnoreErrorMode skips unsupported elements silently.
	IgnoreErrorMode ErrorMode = iota
	// WarnErrorMode logs unsupported elements.
	WarnErrorMode
	// StrictErrorMode stops the drawing on the first unsupported element.
	StrictErrorMode
)

// Options parametrize Draw.
type Options struct {
	// Width and Height are the device size, targeted by the view box.
	// When zero, the width and height attributes of the root are used.
	Width, Height float64

	ErrorMode ErrorMode
}

func toFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

// FromFixed converts back to floats.
func FromFixed(p fixed.Point26_6) (x, y float64) {
	return float64(p.X) / 64, float64(p.Y) / 64
}
