// Package planfile reads plans described in YAML
// and builds the corresponding svgplan documents.
package planfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/benoitkugler/svgplan/geom"
	"github.com/benoitkugler/svgplan/svgplan"
	"gopkg.in/yaml.v3"
)

var errEmptyDocument = errors.New("planfile: document width and height must be positive")

// Plan is the root of a plan file.
type Plan struct {
	Document    DocumentSpec `yaml:"document"`
	Title       string       `yaml:"title"`
	Description string       `yaml:"description"`
	Shapes      `yaml:",inline"`
}

type DocumentSpec struct {
	MinX          float64 `yaml:"min_x"`
	MinY          float64 `yaml:"min_y"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	PixelsPerUnit float64 `yaml:"pixels_per_unit"`
	Indent        *string `yaml:"indent"`
}

// Shapes lists the shapes of a frame, drawn in this order:
// areas, circles, lines, trees and labels.
type Shapes struct {
	Areas   []AreaSpec   `yaml:"areas"`
	Circles []CircleSpec `yaml:"circles"`
	Lines   []LineSpec   `yaml:"lines"`
	Trees   []TreeSpec   `yaml:"trees"`
	Labels  []LabelSpec  `yaml:"labels"`
}

// Point is written [x, y].
type Point [2]float64

func (p Point) coordinate() geom.Coordinate { return geom.NewCoordinate(p[0], p[1]) }

// FrameSpec anchors a world frame.
type FrameSpec struct {
	Origin Point    `yaml:"origin"`
	Rotate float64  `yaml:"rotate"` // degrees
	FlipX  bool     `yaml:"flip_x"`
	FlipY  bool     `yaml:"flip_y"`
	ScaleX *float64 `yaml:"scale_x"`
	ScaleY *float64 `yaml:"scale_y"`
	Axis   *bool    `yaml:"axis"` // defaults to true
}

func (f FrameSpec) coordinate() geom.Coordinate {
	c := f.Origin.coordinate().Rotate(f.Rotate).FlipXIf(f.FlipX).FlipYIf(f.FlipY)
	if f.ScaleX != nil {
		c = c.ScaleX(*f.ScaleX)
	}
	if f.ScaleY != nil {
		c = c.ScaleY(*f.ScaleY)
	}
	return c
}

type AreaSpec struct {
	Name     string         `yaml:"name"`
	Corners  []Point        `yaml:"corners"`
	Color    *svgplan.Color `yaml:"color"` // defaults to black
	Fill     svgplan.Color  `yaml:"fill"`
	World    *FrameSpec     `yaml:"world"`
	Children Shapes         `yaml:"children"`
}

type CircleSpec struct {
	Center Point         `yaml:"center"`
	R      float64       `yaml:"r"`
	Color  svgplan.Color `yaml:"color"`
	Fill   svgplan.Color `yaml:"fill"`
}

type LineSpec struct {
	From  Point         `yaml:"from"`
	To    Point         `yaml:"to"`
	Color svgplan.Color `yaml:"color"`
}

type LabelSpec struct {
	At   Point    `yaml:"at"`
	Text string   `yaml:"text"`
	Size *float64 `yaml:"size"`
}

type TreeSpec struct {
	Name    string   `yaml:"name"`
	Species string   `yaml:"species"`
	At      Point    `yaml:"at"`
	Label   *Point   `yaml:"label"` // defaults to At
	Trunk   float64  `yaml:"trunk"`
	Crown   *float64 `yaml:"crown"`
}

// Load reads and parses the plan file filename.
func Load(filename string) (*Plan, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("planfile: load %s: %w", filename, err)
	}
	plan, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("planfile: load %s: %w", filename, err)
	}
	return plan, nil
}

// Parse decodes a plan. Unknown fields are rejected.
func Parse(data []byte) (*Plan, error) {
	var plan Plan
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&plan); err != nil {
		if errors.Is(err, io.EOF) { // empty file
			return &plan, nil
		}
		return nil, fmt.Errorf("planfile: unmarshal: %w", err)
	}
	return &plan, nil
}

// adder is implemented by the frames receiving shapes.
type adder interface {
	Add(s svgplan.Shape) error
}

type documentAdder struct{ *svgplan.Document }

func (d documentAdder) Add(s svgplan.Shape) error {
	d.Document.Add(s)
	return nil
}

// Build creates the document described by the plan.
func (p *Plan) Build() (*svgplan.Document, error) {
	d := p.Document
	if d.Width <= 0 || d.Height <= 0 {
		return nil, errEmptyDocument
	}
	var opts []svgplan.Option
	if d.PixelsPerUnit != 0 {
		opts = append(opts, svgplan.WithPixelsPerUnit(d.PixelsPerUnit))
	}
	if d.Indent != nil {
		opts = append(opts, svgplan.WithIndent(*d.Indent))
	}
	doc := svgplan.NewDocument(d.MinX, d.MinY, d.Width, d.Height, opts...)
	if p.Title != "" {
		doc.Add(svgplan.Title(p.Title))
	}
	if p.Description != "" {
		doc.Add(svgplan.Description(p.Description))
	}
	if err := p.Shapes.addTo(documentAdder{doc}); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s Shapes) addTo(dst adder) error {
	for i, a := range s.Areas {
		area, err := a.build()
		if err != nil {
			return fmt.Errorf("planfile: area %d %s: %w", i, a.Name, err)
		}
		if err = dst.Add(area); err != nil {
			return err
		}
	}
	for _, c := range s.Circles {
		if err := dst.Add(svgplan.NewCircle(c.Center[0], c.Center[1], c.R, c.Color, c.Fill)); err != nil {
			return err
		}
	}
	for _, l := range s.Lines {
		if err := dst.Add(svgplan.NewLine(l.From.coordinate(), l.To.coordinate(), l.Color)); err != nil {
			return err
		}
	}
	for _, t := range s.Trees {
		tree := svgplan.Tree{
			Name:          t.Name,
			Species:       t.Species,
			TrunkDiameter: t.Trunk,
			CrownDiameter: t.Crown,
			Location:      t.At.coordinate(),
			LabelLocation: t.At.coordinate(),
		}
		if t.Label != nil {
			tree.LabelLocation = t.Label.coordinate()
		}
		if err := dst.Add(tree); err != nil {
			return err
		}
	}
	for _, l := range s.Labels {
		label := svgplan.NewLabel(l.At.coordinate(), l.Text)
		if l.Size != nil {
			label = label.WithSize(*l.Size)
		}
		if err := dst.Add(label); err != nil {
			return err
		}
	}
	return nil
}

func (s Shapes) isEmpty() bool {
	return len(s.Areas)+len(s.Circles)+len(s.Lines)+len(s.Trees)+len(s.Labels) == 0
}

func (a AreaSpec) build() (*svgplan.Area, error) {
	corners := make([][2]float64, len(a.Corners))
	for i, c := range a.Corners {
		corners[i] = c
	}
	area, err := svgplan.NewArea(geom.Coords(corners...))
	if err != nil {
		return nil, err
	}
	if a.Color != nil {
		area.WithColor(*a.Color)
	}
	area.WithFill(a.Fill)
	if a.World == nil {
		if !a.Children.isEmpty() {
			return nil, svgplan.ErrNoWorld
		}
		return area, nil
	}
	if _, err = area.WithWorld(a.World.coordinate()); err != nil {
		return nil, err
	}
	if a.World.Axis != nil && !*a.World.Axis {
		area.World.WithoutAxis()
	}
	if err = a.Children.addTo(area); err != nil {
		return nil, err
	}
	return area, nil
}
