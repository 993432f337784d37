package svgdraw

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"math"
	"strings"

	"github.com/benoitkugler/svgplan/geom"
	"github.com/benoitkugler/svgplan/svgdoc"
	"golang.org/x/image/math/fixed"
)

// PathStyle holds the inherited presentation attributes.
type PathStyle struct {
	Fill, Stroke               color.Color // nil disables painting
	FillOpacity, StrokeOpacity float64
	StrokeWidth                float64 // in user units
	FontSize                   float64 // in user units
	TextAnchor                 string
	UseNonZeroWinding          bool
	transform                  geom.Matrix3 // user space to device space
}

// DefaultStyle sets the default PathStyle to fill black and not stroke.
var DefaultStyle = PathStyle{
	Fill:              color.NRGBA{A: 0xff},
	FillOpacity:       1,
	StrokeOpacity:     1,
	StrokeWidth:       1,
	FontSize:          16,
	TextAnchor:        "start",
	UseNonZeroWinding: true,
	transform:         geom.Identity3,
}

// drawCursor is used while walking a markup tree
type drawCursor struct {
	driver     Driver
	errorMode  ErrorMode
	styleStack []PathStyle
	path       Path
}

type svgFunc func(c *drawCursor, el *svgdoc.Element) error

var drawFuncs = map[string]svgFunc{
	"svg":    gF, // the viewport of the root is resolved by Draw
	"g":      gF,
	"line":   lineF,
	"rect":   rectF,
	"circle": circleF,
	"path":   pathF,
	"text":   textF,
	"desc":   gF,
	"title":  gF,
}

var errNotSVG = errors.New("svgdraw: root element is not <svg>")

// Viewport returns the transform mapping the view box of `root`
// to the device rectangle (0, 0, width, height), keeping the aspect
// ratio and centering the view box, as SVG viewers do by default.
// Zero sizes in `opts` are read from the root attributes.
func Viewport(root *svgdoc.Element, opts Options) (m geom.Matrix3, width, height float64, err error) {
	if root == nil || root.Name != "svg" {
		return geom.Identity3, 0, 0, errNotSVG
	}
	width, height = opts.Width, opts.Height
	if width == 0 {
		if v, ok := root.Get("width"); ok {
			if width, err = parseNumber(v); err != nil {
				return geom.Identity3, 0, 0, err
			}
		}
	}
	if height == 0 {
		if v, ok := root.Get("height"); ok {
			if height, err = parseNumber(v); err != nil {
				return geom.Identity3, 0, 0, err
			}
		}
	}
	var vb []float64
	if v, ok := root.Get("viewBox"); ok {
		if vb, err = parseNumbers(v); err != nil {
			return geom.Identity3, 0, 0, err
		}
		if len(vb) != 4 {
			return geom.Identity3, 0, 0, errParamMismatch
		}
	}
	if vb == nil || vb[2] == 0 || vb[3] == 0 {
		if width == 0 || height == 0 {
			return geom.Identity3, 0, 0, errors.New("svgdraw: unknown document size")
		}
		return geom.Identity3, width, height, nil
	}
	if width == 0 {
		width = vb[2]
	}
	if height == 0 {
		height = vb[3]
	}
	// preserveAspectRatio="xMidYMid meet": uniform scale, centered
	scale := math.Min(width/vb[2], height/vb[3])
	m = geom.NewMatrix3Builder().
		Translate(geom.Vec2(-vb[0], -vb[1])).
		Scale(scale, scale).
		Translate(geom.Vec2((width-vb[2]*scale)/2, (height-vb[3]*scale)/2)).
		Build()
	return m, width, height, nil
}

// Draw walks the tree rooted at the <svg> element `root`
// and paints its shapes with the driver `d`.
func Draw(root *svgdoc.Element, d Driver, opts Options) error {
	vp, _, _, err := Viewport(root, opts)
	if err != nil {
		return err
	}
	base := DefaultStyle
	base.transform = vp
	c := drawCursor{driver: d, errorMode: opts.ErrorMode, styleStack: []PathStyle{base}}
	return c.walk(root)
}

func (c *drawCursor) style() *PathStyle { return &c.styleStack[len(c.styleStack)-1] }

func (c *drawCursor) walk(el *svgdoc.Element) error {
	df, ok := drawFuncs[el.Name]
	if !ok {
		errStr := "Cannot process svg element " + el.Name
		if c.errorMode == StrictErrorMode {
			return errors.New(errStr)
		} else if c.errorMode == WarnErrorMode {
			log.Println(errStr)
		}
		return nil
	}
	if err := c.pushStyle(el); err != nil {
		return fmt.Errorf("svgdraw: <%s>: %w", el.Name, err)
	}
	defer func() { c.styleStack = c.styleStack[:len(c.styleStack)-1] }()

	if err := df(c, el); err != nil {
		return fmt.Errorf("svgdraw: <%s>: %w", el.Name, err)
	}
	if len(c.path) > 0 {
		// the cursor parsed a path from the element
		c.drawPath(*c.style())
		c.path = c.path[:0]
	}
	for _, child := range el.Children {
		if err := c.walk(child); err != nil {
			return err
		}
	}
	return nil
}

// pushStyle parses the presentation attributes of el (including a style
// attribute) on top of the current style.
func (c *drawCursor) pushStyle(el *svgdoc.Element) error {
	curStyle := *c.style() // make a copy of the top style
	for _, attr := range el.Attrs {
		if attr.Name == "style" {
			for _, pair := range strings.Split(attr.Value, ";") {
				kv := strings.SplitN(pair, ":", 2)
				if len(kv) != 2 {
					continue
				}
				if err := curStyle.readStyleAttr(strings.ToLower(strings.TrimSpace(kv[0])), strings.TrimSpace(kv[1])); err != nil {
					return err
				}
			}
			continue
		}
		if err := curStyle.readStyleAttr(attr.Name, strings.TrimSpace(attr.Value)); err != nil {
			return err
		}
	}
	c.styleStack = append(c.styleStack, curStyle)
	return nil
}

func (s *PathStyle) readStyleAttr(k, v string) (err error) {
	switch k {
	case "fill":
		s.Fill, err = ParseColor(v)
	case "stroke":
		s.Stroke, err = ParseColor(v)
	case "fill-opacity":
		s.FillOpacity, err = readFraction(v)
	case "stroke-opacity":
		s.StrokeOpacity, err = readFraction(v)
	case "opacity":
		var o float64
		o, err = readFraction(v)
		s.FillOpacity *= o
		s.StrokeOpacity *= o
	case "stroke-width":
		s.StrokeWidth, err = parseNumber(v)
	case "font-size":
		s.FontSize, err = parseNumber(v)
	case "text-anchor":
		s.TextAnchor = v
	case "fill-rule":
		s.UseNonZeroWinding = v != "evenodd"
	case "transform":
		var local geom.Matrix3
		local, err = ParseTransform(v)
		s.transform = local.Mul(s.transform)
	}
	return err
}

func readFraction(v string) (float64, error) {
	d := 1.
	if strings.HasSuffix(v, "%") {
		d = 100
		v = strings.TrimSuffix(v, "%")
	}
	f, err := parseNumber(v)
	return f / d, err
}

// scaleFactor returns the length ratio between device and user units.
func scaleFactor(m geom.Matrix3) float64 {
	return math.Sqrt(math.Abs(m.Linear().Determinant()))
}

func (c *drawCursor) drawPath(style PathStyle) {
	filler, stroker := c.driver.SetupDrawers(style.Fill != nil, style.Stroke != nil)
	if filler != nil { // nil color disable filling
		filler.Clear()
		filler.SetWinding(style.UseNonZeroWinding)
		// painting state is set before the path is started
		filler.SetColor(style.Fill, style.FillOpacity)
		for _, op := range c.path {
			op.drawTo(filler, style.transform)
		}
		filler.Stop(false)
		filler.Draw()
		filler.SetWinding(true) // default is true
	}
	if stroker != nil { // nil color disable lining
		stroker.Clear()
		w := style.StrokeWidth * scaleFactor(style.transform)
		stroker.SetStrokeWidth(fixed26(w))
		stroker.SetColor(style.Stroke, style.StrokeOpacity)
		for _, op := range c.path {
			op.drawTo(stroker, style.transform)
		}
		stroker.Stop(false)
		stroker.Draw()
	}
}

// readFloats parses the numeric attributes listed in `names`,
// leaving zero for the missing ones.
func readFloats(el *svgdoc.Element, names ...string) ([]float64, error) {
	out := make([]float64, len(names))
	for i, name := range names {
		v, ok := el.Get(name)
		if !ok {
			continue
		}
		f, err := parseNumber(v)
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", name, err)
		}
		out[i] = f
	}
	return out, nil
}

func gF(*drawCursor, *svgdoc.Element) error { return nil } // only push the style

func rectF(c *drawCursor, el *svgdoc.Element) error {
	v, err := readFloats(el, "x", "y", "width", "height")
	if err != nil {
		return err
	}
	if v[2] == 0 || v[3] == 0 {
		return nil
	}
	c.path.addRect(v[0], v[1], v[2], v[3])
	return nil
}

func circleF(c *drawCursor, el *svgdoc.Element) error {
	v, err := readFloats(el, "cx", "cy", "r")
	if err != nil {
		return err
	}
	if v[2] == 0 { // not drawn, but not an error
		return nil
	}
	c.path.addEllipse(v[0], v[1], v[2], v[2])
	return nil
}

func lineF(c *drawCursor, el *svgdoc.Element) error {
	v, err := readFloats(el, "x1", "y1", "x2", "y2")
	if err != nil {
		return err
	}
	c.path.Start(geom.Vec2(v[0], v[1]))
	c.path.Line(geom.Vec2(v[2], v[3]))
	// a line is never filled
	c.style().Fill = nil
	return nil
}

func pathF(c *drawCursor, el *svgdoc.Element) error {
	d, ok := el.Get("d")
	if !ok {
		return nil
	}
	p, err := ParsePathData(d)
	if err != nil {
		return err
	}
	c.path = append(c.path, p...)
	return nil
}

func textF(c *drawCursor, el *svgdoc.Element) error {
	td, ok := c.driver.(TextDrawer)
	style := c.style()
	if !ok || style.Fill == nil || el.Text == "" {
		return nil
	}
	v, err := readFloats(el, "x", "y")
	if err != nil {
		return err
	}
	dot := style.transform.Apply(geom.Vec2(v[0], v[1]))
	size := style.FontSize * scaleFactor(style.transform)
	switch style.TextAnchor {
	case "middle":
		dot.X -= td.MeasureText(size, el.Text) / 2
	case "end":
		dot.X -= td.MeasureText(size, el.Text)
	}
	td.DrawText(toFixed(dot.X, dot.Y), size, el.Text, withOpacity(style.Fill, style.FillOpacity))
	return nil
}

func fixed26(v float64) fixed.Int26_6 { return fixed.Int26_6(v * 64) }

// withOpacity scales the alpha channel of c.
func withOpacity(c color.Color, opacity float64) color.Color {
	if opacity >= 1 {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = uint8(float64(n.A) * opacity)
	return n
}
