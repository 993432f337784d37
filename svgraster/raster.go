// Implements a raster backend to render plans,
// by wrapping rasterx.
package svgraster

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/benoitkugler/svgplan/svgdoc"
	"github.com/benoitkugler/svgplan/svgdraw"
	"github.com/benoitkugler/svgplan/svgplan"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	_ svgdraw.Driver     = (*Renderer)(nil) // assert interface conformance
	_ svgdraw.TextDrawer = (*Renderer)(nil)
)

// miterLimit is the rasterx default, in device units
const miterLimit = fixed.Int26_6(4 * 64)

// Renderer paints on an image.
type Renderer struct {
	dasher *rasterx.Dasher // to avoid shared state
	filler *rasterx.Filler // we use separated instance
	dst    draw.Image      // labels are drawn directly
	face   font.Face
}

// NewRenderer returns a renderer painting on dst,
// which may be used by several calls to svgdraw.Draw.
// Labels use the fixed size basicfont.Face7x13 face.
func NewRenderer(dst draw.Image) *Renderer {
	b := dst.Bounds()
	scanner := rasterx.NewScannerGV(b.Dx(), b.Dy(), dst, b)
	return &Renderer{
		dasher: rasterx.NewDasher(b.Dx(), b.Dy(), scanner),
		filler: rasterx.NewFiller(b.Dx(), b.Dy(), scanner),
		dst:    dst,
		face:   basicfont.Face7x13,
	}
}

// SetupDrawers implements svgdraw.Driver.
func (rd *Renderer) SetupDrawers(willFill, willStroke bool) (svgdraw.Filler, svgdraw.Stroker) {
	var (
		f svgdraw.Filler
		s svgdraw.Stroker
	)
	if willFill {
		f = filler{rd.filler}
	}
	if willStroke {
		s = stroker{rd.dasher}
	}
	return f, s
}

type filler struct {
	*rasterx.Filler
}

func (f filler) SetColor(c color.Color, opacity float64) {
	f.Filler.SetColor(rasterx.ApplyOpacity(c, opacity))
}

type stroker struct {
	*rasterx.Dasher
}

func (s stroker) SetColor(c color.Color, opacity float64) {
	s.Dasher.SetColor(rasterx.ApplyOpacity(c, opacity))
}

func (s stroker) SetStrokeWidth(width fixed.Int26_6) {
	s.Dasher.SetStroke(width, miterLimit, rasterx.ButtCap, rasterx.ButtCap,
		rasterx.RoundGap, rasterx.Round, nil, 0)
}

// DrawText implements svgdraw.TextDrawer. The size is ignored,
// since the face is a bitmap font.
func (rd *Renderer) DrawText(dot fixed.Point26_6, _ float64, text string, c color.Color) {
	d := font.Drawer{
		Dst:  rd.dst,
		Src:  image.NewUniform(c),
		Face: rd.face,
		Dot:  dot,
	}
	d.DrawString(text)
}

// MeasureText implements svgdraw.TextDrawer.
func (rd *Renderer) MeasureText(_ float64, text string) float64 {
	return float64(font.MeasureString(rd.face, text)) / 64
}

// RasterElement renders the tree rooted at `root` into a new
// width x height image, with a white background.
func RasterElement(root *svgdoc.Element, width, height int, mode svgdraw.ErrorMode) (*image.RGBA, error) {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	opts := svgdraw.Options{Width: float64(width), Height: float64(height), ErrorMode: mode}
	if err := svgdraw.Draw(root, NewRenderer(img), opts); err != nil {
		return nil, err
	}
	return img, nil
}

// RasterDocument renders doc at its pixel size.
func RasterDocument(doc *svgplan.Document, mode svgdraw.ErrorMode) (*image.RGBA, error) {
	w, h := doc.PixelSize()
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("svgraster: invalid document size %dx%d", w, h)
	}
	return RasterElement(doc.Element(), w, h, mode)
}

// SavePNG writes img to filename, replacing an existing file.
func SavePNG(filename string, img image.Image) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("svgraster: save %s: %w", filename, err)
	}
	if err = png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("svgraster: save %s: %w", filename, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("svgraster: save %s: %w", filename, err)
	}
	return nil
}
