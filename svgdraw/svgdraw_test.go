package svgdraw

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/benoitkugler/svgplan/geom"
	"github.com/benoitkugler/svgplan/svgdoc"
	"github.com/benoitkugler/svgplan/svgplan"
	"golang.org/x/image/math/fixed"
)

const tolerance = 1e-9

func TestParseNumbers(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want []float64
	}{
		{"1 2,3", []float64{1, 2, 3}},
		{"-1-2", []float64{-1, -2}},
		{"0.5.5", []float64{0.5, 0.5}},
		{"1e-2 3E2", []float64{0.01, 300}},
		{"", nil},
	} {
		got, err := parseNumbers(tt.in)
		if err != nil {
			t.Fatalf("parseNumbers(%q): %s", tt.in, err)
		}
		if len(got) != len(tt.want) {
			t.Fatalf("parseNumbers(%q) = %v, want %v", tt.in, got, tt.want)
		}
		for i := range got {
			if math.Abs(got[i]-tt.want[i]) > tolerance {
				t.Errorf("parseNumbers(%q) = %v, want %v", tt.in, got, tt.want)
			}
		}
	}
	if _, err := parseNumbers("1 a"); err == nil {
		t.Error("expected error on invalid character")
	}
}

func TestParseTransform(t *testing.T) {
	for _, tt := range []struct {
		in   string
		p    geom.Vector2
		want geom.Vector2
	}{
		{"translate(10 5)", geom.Vec2(1, 1), geom.Vec2(11, 6)},
		{"translate(10)", geom.Vec2(1, 1), geom.Vec2(11, 1)},
		{"scale(2)", geom.Vec2(1, 3), geom.Vec2(2, 6)},
		{"scale(2, -1)", geom.Vec2(1, 3), geom.Vec2(2, -3)},
		{"rotate(90)", geom.Vec2(1, 0), geom.Vec2(0, 1)},
		{"rotate(90 1 1)", geom.Vec2(2, 1), geom.Vec2(1, 2)},
		{"matrix(1 0 0 -1 3 4)", geom.Vec2(1, 1), geom.Vec2(4, 3)},
		{"skewX(45)", geom.Vec2(0, 1), geom.Vec2(1, 1)},
		// the rightmost transform applies first
		{"translate(10 0) scale(2)", geom.Vec2(1, 0), geom.Vec2(12, 0)},
		{"scale(2) translate(10 0)", geom.Vec2(1, 0), geom.Vec2(22, 0)},
	} {
		m, err := ParseTransform(tt.in)
		if err != nil {
			t.Fatalf("ParseTransform(%q): %s", tt.in, err)
		}
		if got := m.Apply(tt.p); got.Distance(tt.want) > tolerance {
			t.Errorf("ParseTransform(%q) maps %v to %v, want %v", tt.in, tt.p, got, tt.want)
		}
	}
	for _, bad := range []string{"rotate(1 2)", "translate(", "matrix(1 2 3)", "shear(2)"} {
		if _, err := ParseTransform(bad); err == nil {
			t.Errorf("ParseTransform(%q): expected error", bad)
		}
	}
}

func TestWorldTransformMatchesReference(t *testing.T) {
	refs := []geom.Coordinate{
		geom.NewCoordinate(10, 6).Rotate(30),
		geom.NewCoordinate(-3, 4).FlipX().ScaleX(2),
		geom.NewCoordinate(5, 5).FlipY().Rotate(-45).ScaleY(0.5),
	}
	p := geom.NewCoordinate(2, -1)
	for _, ref := range refs {
		m, err := ParseTransform(svgplan.NewWorld(ref).Transform())
		if err != nil {
			t.Fatal(err)
		}
		want := p.ReferenceToWorld(ref)
		if got := m.Apply(p.Vector()); got.Distance(want.Vector()) > 1e-6 {
			t.Errorf("world %v maps %v to %v, want %v", ref, p, got, want.Vector())
		}
	}
}

func TestParseColor(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want color.Color
	}{
		{"none", nil},
		{"#fff", color.NRGBA{0xff, 0xff, 0xff, 0xff}},
		{"#102030", color.NRGBA{0x10, 0x20, 0x30, 0xff}},
		{"red", color.NRGBA{0xff, 0, 0, 0xff}},
	} {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Fatalf("ParseColor(%q): %s", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"#12", "#gggggg", "chartreuse"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q): expected error", bad)
		}
	}
}

func TestParsePathData(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want string
	}{
		{"M0,0 L10,0 L10,10 z", "M0,0 L10,0 L10,10 Z"},
		{"M1 1 l2 0 0 2 Z", "M1,1 L3,1 L3,3 Z"},
		{"M0 0 H5 V5 h-5", "M0,0 L5,0 L5,5 L0,5"},
		{"M0 0 10 10", "M0,0 L10,10"},
		{"M1 1 c1 0 1 1 2 2", "M1,1 C2,1 2,2 3,3"},
	} {
		p, err := ParsePathData(tt.in)
		if err != nil {
			t.Fatalf("ParsePathData(%q): %s", tt.in, err)
		}
		if got := p.ToSVGPath(); got != tt.want {
			t.Errorf("ParsePathData(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"L1 1", "M1", "M0 0 Q1 1 2 2", "1 1"} {
		if _, err := ParsePathData(bad); err == nil {
			t.Errorf("ParsePathData(%q): expected error", bad)
		}
	}
}

// recorder stores the painted paths, in device units.
type recorder struct {
	kind      string
	current   []fixed.Point26_6
	width     fixed.Int26_6
	color     color.Color
	lateColor bool // SetColor called inside the path
	paths     *[]record
}

type record struct {
	kind      string
	points    []fixed.Point26_6
	width     fixed.Int26_6
	color     color.Color
	lateColor bool
}

func (r *recorder) Clear() { r.current = nil }
func (r *recorder) Start(a fixed.Point26_6) { r.current = append(r.current, a) }
func (r *recorder) Line(b fixed.Point26_6) { r.current = append(r.current, b) }
func (r *recorder) CubeBezier(b, c, d fixed.Point26_6) { r.current = append(r.current, d) }
func (r *recorder) Stop(bool) {}
func (r *recorder) SetWinding(bool) {}
func (r *recorder) SetStrokeWidth(w fixed.Int26_6) { r.width = w }
func (r *recorder) SetColor(c color.Color, opacity float64) {
	r.color = withOpacity(c, opacity)
	r.lateColor = len(r.current) > 0
}
func (r *recorder) Draw() {
	*r.paths = append(*r.paths, record{r.kind, r.current, r.width, r.color, r.lateColor})
}

type recordDriver struct {
	paths []record
	texts []string
}

func (d *recordDriver) SetupDrawers(willFill, willStroke bool) (Filler, Stroker) {
	var (
		f Filler
		s Stroker
	)
	if willFill {
		f = &recorder{kind: "fill", paths: &d.paths}
	}
	if willStroke {
		s = &recorder{kind: "stroke", paths: &d.paths}
	}
	return f, s
}

func (d *recordDriver) DrawText(dot fixed.Point26_6, size float64, text string, c color.Color) {
	d.texts = append(d.texts, text)
}

func (d *recordDriver) MeasureText(size float64, text string) float64 {
	return size * float64(len(text)) / 2
}

func TestViewport(t *testing.T) {
	doc := svgplan.NewDocument(-10, -10, 20, 40, svgplan.WithPixelsPerUnit(2))
	m, w, h, err := Viewport(doc.Element(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if w != 40 || h != 80 {
		t.Errorf("size = %v x %v, want 40 x 80", w, h)
	}
	if got := m.Apply(geom.Vec2(-10, -10)); got.Length() > tolerance {
		t.Errorf("view box corner maps to %v", got)
	}
	if got := m.Apply(geom.Vec2(10, 30)); got.Distance(geom.Vec2(40, 80)) > tolerance {
		t.Errorf("view box corner maps to %v", got)
	}

	// rounded pixel sizes do not distort the drawing
	doc = svgplan.NewDocument(0, 0, 10.25, 10)
	m, w, h, err = Viewport(doc.Element(), Options{})
	if err != nil {
		t.Fatal(err)
	}
	if w != 11 || h != 10 {
		t.Errorf("size = %v x %v, want 11 x 10", w, h)
	}
	if got := m.Linear(); got != geom.Identity2 {
		t.Errorf("expected a uniform unit scale, got %v", got)
	}
	if got := m.Apply(geom.Vec2(0, 0)); got.Distance(geom.Vec2(0.375, 0)) > tolerance {
		t.Errorf("view box is not centered: origin maps to %v", got)
	}

	root := svgdoc.NewElement("svg").Attr("viewBox", "0 0 20 20")
	m, _, _, err = Viewport(root, Options{Width: 100, Height: 50})
	if err != nil {
		t.Fatal(err)
	}
	for _, tt := range [][2]geom.Vector2{
		{geom.Vec2(0, 0), geom.Vec2(25, 0)},
		{geom.Vec2(20, 20), geom.Vec2(75, 50)},
	} {
		if got := m.Apply(tt[0]); got.Distance(tt[1]) > tolerance {
			t.Errorf("%v maps to %v, want %v", tt[0], got, tt[1])
		}
	}

	if _, _, _, err := Viewport(svgdoc.NewElement("g"), Options{}); !errors.Is(err, errNotSVG) {
		t.Errorf("expected errNotSVG, got %v", err)
	}
}

func TestDrawDocument(t *testing.T) {
	doc := svgplan.NewDocument(0, 0, 100, 100)
	area, err := svgplan.NewArea(geom.Coords([2]float64{0, 0}, [2]float64{10, 0}, [2]float64{10, 10}))
	if err != nil {
		t.Fatal(err)
	}
	doc.Add(area.WithFill(svgplan.Red))
	doc.Add(svgplan.NewLabel(geom.NewCoordinate(50, 50), "hello"))
	doc.Add(svgplan.Title("plan"))

	world := svgplan.NewWorld(geom.NewCoordinate(20, 0).Rotate(90)).WithoutAxis()
	if err := world.Add(svgplan.NewLine(geom.NewCoordinate(0, 0), geom.NewCoordinate(10, 0), svgplan.Blue)); err != nil {
		t.Fatal(err)
	}
	doc.Add(world)

	var d recordDriver
	if err := Draw(doc.Element(), &d, Options{ErrorMode: StrictErrorMode}); err != nil {
		t.Fatal(err)
	}
	if len(d.texts) != 1 || d.texts[0] != "hello" {
		t.Errorf("unexpected texts %v", d.texts)
	}
	// area: fill + stroke, line: stroke only
	if len(d.paths) != 3 {
		t.Fatalf("expected 3 painted paths, got %d", len(d.paths))
	}
	if fill := d.paths[0]; fill.kind != "fill" || fill.color != (color.NRGBA{0xff, 0, 0, 0xff}) {
		t.Errorf("unexpected area fill %v", fill)
	}
	for i, p := range d.paths {
		if p.lateColor {
			t.Errorf("path %d: color set after the path started", i)
		}
	}
	line := d.paths[2]
	if line.kind != "stroke" || len(line.points) != 2 {
		t.Fatalf("unexpected line %v", line)
	}
	x, y := FromFixed(line.points[1])
	if math.Abs(x-20) > 0.1 || math.Abs(y-10) > 0.1 {
		t.Errorf("rotated line ends at (%v, %v), want (20, 10)", x, y)
	}
	if got := float64(line.width) / 64; math.Abs(got-svgplan.StrokeWidth) > 0.02 {
		t.Errorf("stroke width = %v, want %v", got, svgplan.StrokeWidth)
	}
}

func TestErrorMode(t *testing.T) {
	root := svgdoc.NewElement("svg").Attr("width", 10).Attr("height", 10).
		Append(svgdoc.NewElement("foreignObject"))
	var d recordDriver
	if err := Draw(root, &d, Options{ErrorMode: StrictErrorMode}); err == nil {
		t.Error("expected error in strict mode")
	}
	if err := Draw(root, &d, Options{ErrorMode: IgnoreErrorMode}); err != nil {
		t.Errorf("unexpected error %s", err)
	}
}

func TestStrokeWidthScales(t *testing.T) {
	root := svgdoc.NewElement("svg").Attr("width", 10).Attr("height", 10).Append(
		svgdoc.NewElement("g").Attr("transform", "scale(4)").Append(
			svgdoc.NewElement("line").Attr("x2", 1).Attr("stroke", "black").Attr("stroke-width", 0.5),
		),
	)
	var d recordDriver
	if err := Draw(root, &d, Options{}); err != nil {
		t.Fatal(err)
	}
	if len(d.paths) != 1 {
		t.Fatalf("expected 1 path, got %d", len(d.paths))
	}
	if d.paths[0].width != 2*64 {
		t.Errorf("stroke width = %v, want 2", float64(d.paths[0].width)/64)
	}
}
