package svgplan

import (
	"fmt"
	"io"
	"math"
	"os"

	"github.com/benoitkugler/svgplan/svgdoc"
)

const svgNamespace = "http://www.w3.org/2000/svg"

// Option configures a Document.
type Option func(*options)

type options struct {
	pixelsPerUnit float64
	indent        string
}

func defaultOptions() options {
	return options{pixelsPerUnit: 1, indent: svgdoc.DefaultIndent}
}

// WithPixelsPerUnit sets the resolution of the output: the document
// is ceil(Width * ppu) pixels wide. Non positive values are ignored.
func WithPixelsPerUnit(ppu float64) Option {
	return func(o *options) {
		if ppu > 0 {
			o.pixelsPerUnit = ppu
		}
	}
}

// WithIndent sets the indentation unit of the written markup.
func WithIndent(indent string) Option {
	return func(o *options) {
		o.indent = indent
	}
}

// Document is the root of a plan: a view box in plan units
// and the top level shapes.
type Document struct {
	MinX, MinY    float64
	Width, Height float64

	opts     options
	children []*svgdoc.Element
}

// NewDocument returns an empty document showing the rectangle
// (minX, minY, width, height) of the plan.
func NewDocument(minX, minY, width, height float64, opts ...Option) *Document {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Document{MinX: minX, MinY: minY, Width: width, Height: height, opts: o}
}

// Add renders s and appends it to the document.
func (d *Document) Add(s Shape) {
	if el := Render(s); el != nil {
		d.children = append(d.children, el)
	}
}

// PixelsPerUnit returns the configured resolution.
func (d *Document) PixelsPerUnit() float64 { return d.opts.pixelsPerUnit }

// PixelSize returns the size of the document in pixels.
func (d *Document) PixelSize() (width, height int) {
	ppu := d.opts.pixelsPerUnit
	return int(math.Ceil(d.Width * ppu)), int(math.Ceil(d.Height * ppu))
}

// ViewBox returns the viewBox attribute: "min_x min_y width height".
func (d *Document) ViewBox() string {
	n := svgdoc.FormatNumber
	return n(d.MinX) + " " + n(d.MinY) + " " + n(d.Width) + " " + n(d.Height)
}

// Element returns the root <svg> element.
func (d *Document) Element() *svgdoc.Element {
	w, h := d.PixelSize()
	root := svgdoc.NewElement("svg").
		Attr("width", w).
		Attr("height", h).
		Attr("viewBox", d.ViewBox()).
		Attr("xmlns", svgNamespace)
	root.Children = append(root.Children, d.children...)
	return root
}

// Encode writes the document markup to w.
func (d *Document) Encode(w io.Writer) error {
	return svgdoc.Encode(w, d.Element(), d.opts.indent)
}

// Save writes the document to filename, replacing an existing file.
func (d *Document) Save(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("svgplan: save %s: %w", filename, err)
	}
	if err = d.Encode(f); err != nil {
		f.Close()
		return fmt.Errorf("svgplan: save %s: %w", filename, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("svgplan: save %s: %w", filename, err)
	}
	return nil
}
