// Implements a PDF backend to render plans,
// by wrapping github.com/jung-kurt/gofpdf.
package svgpdf

import (
	"fmt"
	"image/color"
	"io"

	"github.com/benoitkugler/svgplan/svgdraw"
	"github.com/benoitkugler/svgplan/svgplan"
	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/math/fixed"
)

// assert interface conformance
var (
	_ svgdraw.Driver     = (*Renderer)(nil)
	_ svgdraw.TextDrawer = (*Renderer)(nil)
	_ svgdraw.Filler     = (*filler)(nil)
	_ svgdraw.Stroker    = (*stroker)(nil)
)

// labelFont is one of the PDF core fonts, which need no embedding
const labelFont = "Helvetica"

// Renderer writes the draw operations to a PDF page.
type Renderer struct {
	pdf *gofpdf.Fpdf

	// union of the painted paths, in device units
	bounds    fixed.Rectangle26_6
	hasBounds bool
}

// implements the common path commands,
// shared by the filler and the stroker
type pather struct {
	rd *Renderer
	a  fixed.Point26_6 // current point, start of the next segment
}

// implements the filling operation
type filler struct {
	pather
	useNonZeroWinding bool
}

// implements the stroking operation
type stroker struct {
	pather
}

// NewRenderer return a renderer which will
// write to the current page of `pdf`.
func NewRenderer(pdf *gofpdf.Fpdf) *Renderer {
	pdf.SetFont(labelFont, "", 12)
	return &Renderer{pdf: pdf}
}

// Bounds returns the bounding box of everything painted so far,
// and false if nothing was painted.
func (rd *Renderer) Bounds() (fixed.Rectangle26_6, bool) {
	return rd.bounds, rd.hasBounds
}

func (rd *Renderer) extend(r fixed.Rectangle26_6) {
	if !rd.hasBounds {
		rd.bounds, rd.hasBounds = r, true
		return
	}
	b := &rd.bounds
	if r.Min.X < b.Min.X {
		b.Min.X = r.Min.X
	}
	if r.Min.Y < b.Min.Y {
		b.Min.Y = r.Min.Y
	}
	if r.Max.X > b.Max.X {
		b.Max.X = r.Max.X
	}
	if r.Max.Y > b.Max.Y {
		b.Max.Y = r.Max.Y
	}
}

// SetupDrawers implements svgdraw.Driver.
func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (svgdraw.Filler, svgdraw.Stroker) {
	var (
		f svgdraw.Filler
		s svgdraw.Stroker
	)
	if willFill {
		f = &filler{pather: pather{rd: rd}, useNonZeroWinding: true}
	}
	if willStroke {
		s = &stroker{pather: pather{rd: rd}}
	}
	return f, s
}

func fixedTof(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func fToFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
}

func (p *pather) Clear() {
	p.a = fixed.Point26_6{}
}

func (p *pather) Start(a fixed.Point26_6) {
	p.rd.pdf.MoveTo(fixedTof(a))
	p.a = a
	p.rd.extend(fixed.Rectangle26_6{Min: a, Max: a}) // degenerate case
}

func (p *pather) Line(b fixed.Point26_6) {
	p.rd.pdf.LineTo(fixedTof(b))
	p.rd.extend(computeBoundingBox(line{p.a, b}))
	p.a = b
}

func (p *pather) CubeBezier(b fixed.Point26_6, c fixed.Point26_6, d fixed.Point26_6) {
	cx0, cy0 := fixedTof(b)
	cx1, cy1 := fixedTof(c)
	x, y := fixedTof(d)
	p.rd.pdf.CurveBezierCubicTo(cx0, cy0, cx1, cy1, x, y)
	p.rd.extend(computeBoundingBox(cubicBezier{p.a, b, c, d}))
	p.a = d
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop {
		p.rd.pdf.ClosePath()
	}
}

// splitColor returns the RGB channels and the alpha in [0, 1]
func splitColor(c color.Color) (r, g, b int, alpha float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return int(n.R), int(n.G), int(n.B), float64(n.A) / 255
}

func (f *filler) SetColor(c color.Color, opacity float64) {
	r, g, b, a := splitColor(c)
	f.rd.pdf.SetFillColor(r, g, b)
	f.rd.pdf.SetAlpha(opacity*a, "Normal")
}

func (f *filler) Draw() {
	styleStr := "f*"
	if f.useNonZeroWinding {
		styleStr = "f"
	}
	f.rd.pdf.DrawPath(styleStr)
}

func (f *filler) SetWinding(useNonZeroWinding bool) {
	f.useNonZeroWinding = useNonZeroWinding
}

func (s *stroker) SetColor(c color.Color, opacity float64) {
	r, g, b, a := splitColor(c)
	s.rd.pdf.SetDrawColor(r, g, b)
	s.rd.pdf.SetAlpha(opacity*a, "Normal")
}

func (s *stroker) SetStrokeWidth(width fixed.Int26_6) {
	s.rd.pdf.SetLineWidth(float64(width) / 64)
}

func (s *stroker) Draw() {
	s.rd.pdf.DrawPath("D")
}

// DrawText implements svgdraw.TextDrawer.
func (rd *Renderer) DrawText(dot fixed.Point26_6, size float64, text string, c color.Color) {
	r, g, b, a := splitColor(c)
	rd.pdf.SetFontSize(size)
	rd.pdf.SetTextColor(r, g, b)
	rd.pdf.SetAlpha(a, "Normal")
	x, y := fixedTof(dot)
	rd.pdf.Text(x, y, text)
}

// MeasureText implements svgdraw.TextDrawer.
func (rd *Renderer) MeasureText(size float64, text string) float64 {
	rd.pdf.SetFontSize(size)
	return rd.pdf.GetStringWidth(text)
}

// NewPage returns a document of one page sized after doc,
// one point per pixel.
func NewPage(doc *svgplan.Document) (*gofpdf.Fpdf, error) {
	w, h := doc.PixelSize()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("svgpdf: invalid document size %dx%d", w, h)
	}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: float64(w), Ht: float64(h)},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()
	return pdf, nil
}

// Render draws doc on a new page.
func Render(doc *svgplan.Document, mode svgdraw.ErrorMode) (*gofpdf.Fpdf, error) {
	pdf, err := NewPage(doc)
	if err != nil {
		return nil, err
	}
	w, h := doc.PixelSize()
	opts := svgdraw.Options{Width: float64(w), Height: float64(h), ErrorMode: mode}
	if err = svgdraw.Draw(doc.Element(), NewRenderer(pdf), opts); err != nil {
		return nil, err
	}
	if err = pdf.Error(); err != nil {
		return nil, fmt.Errorf("svgpdf: %w", err)
	}
	return pdf, nil
}

// WritePDF renders doc and writes the PDF file to w.
func WritePDF(w io.Writer, doc *svgplan.Document, mode svgdraw.ErrorMode) error {
	pdf, err := Render(doc, mode)
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

// SavePDF renders doc to filename, replacing an existing file.
func SavePDF(filename string, doc *svgplan.Document, mode svgdraw.ErrorMode) error {
	pdf, err := Render(doc, mode)
	if err != nil {
		return err
	}
	if err = pdf.OutputFileAndClose(filename); err != nil {
		return fmt.Errorf("svgpdf: save %s: %w", filename, err)
	}
	return nil
}
