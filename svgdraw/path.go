package svgdraw

import (
	"fmt"
	"strings"

	"github.com/benoitkugler/svgplan/geom"
	"github.com/benoitkugler/svgplan/svgdoc"
)

// This file defines the basic path structure

// Operation groups the different path commands.
// Points are expressed in user space.
type Operation interface {
	// add itself on the drawer `d`, after applying the transform `M`
	drawTo(d Drawer, M geom.Matrix3)
}

type MoveTo geom.Vector2

type LineTo geom.Vector2

type CubicTo [3]geom.Vector2

type Close struct{}

func trPoint(M geom.Matrix3, p geom.Vector2) (x, y float64) {
	q := M.Apply(p)
	return q.X, q.Y
}

// starts a new path at the given point.
func (op MoveTo) drawTo(d Drawer, M geom.Matrix3) {
	d.Stop(false) // implicit close if currently in path.
	d.Start(toFixed(trPoint(M, geom.Vector2(op))))
}

// draw a line
func (op LineTo) drawTo(d Drawer, M geom.Matrix3) {
	d.Line(toFixed(trPoint(M, geom.Vector2(op))))
}

// draw a cubic bezier curve
func (op CubicTo) drawTo(d Drawer, M geom.Matrix3) {
	d.CubeBezier(toFixed(trPoint(M, op[0])), toFixed(trPoint(M, op[1])), toFixed(trPoint(M, op[2])))
}

func (op Close) drawTo(d Drawer, _ geom.Matrix3) {
	d.Stop(true)
}

// Path describes a sequence of basic operations.
// Higher-level shapes (circles, lines, rectangles) are reduced to a path.
type Path []Operation

// ToSVGPath returns a string representation of the path
func (p Path) ToSVGPath() string {
	chunks := make([]string, len(p))
	for i, op := range p {
		switch op := op.(type) {
		case MoveTo:
			chunks[i] = "M" + svgdoc.FormatNumber(op.X) + "," + svgdoc.FormatNumber(op.Y)
		case LineTo:
			chunks[i] = "L" + svgdoc.FormatNumber(op.X) + "," + svgdoc.FormatNumber(op.Y)
		case CubicTo:
			chunks[i] = fmt.Sprintf("C%s,%s %s,%s %s,%s",
				svgdoc.FormatNumber(op[0].X), svgdoc.FormatNumber(op[0].Y),
				svgdoc.FormatNumber(op[1].X), svgdoc.FormatNumber(op[1].Y),
				svgdoc.FormatNumber(op[2].X), svgdoc.FormatNumber(op[2].Y))
		case Close:
			chunks[i] = "Z"
		}
	}
	return strings.Join(chunks, " ")
}

// String returns a readable representation of a Path.
func (p Path) String() string {
	return p.ToSVGPath()
}

// Clear zeros the path slice
func (p *Path) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *Path) Start(a geom.Vector2) {
	*p = append(*p, MoveTo(a))
}

// Line adds a linear segment to the current curve.
func (p *Path) Line(b geom.Vector2) {
	*p = append(*p, LineTo(b))
}

// CubeBezier adds a cubic segment to the current curve.
func (p *Path) CubeBezier(b, c, d geom.Vector2) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the path
func (p *Path) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// kappa is the control point distance approximating a quarter of circle
const kappa = 0.5522847498

// addEllipse appends a closed ellipse centered on (cx, cy), made of four cubic curves.
func (p *Path) addEllipse(cx, cy, rx, ry float64) {
	kx, ky := rx*kappa, ry*kappa
	p.Start(geom.Vec2(cx+rx, cy))
	p.CubeBezier(geom.Vec2(cx+rx, cy+ky), geom.Vec2(cx+kx, cy+ry), geom.Vec2(cx, cy+ry))
	p.CubeBezier(geom.Vec2(cx-kx, cy+ry), geom.Vec2(cx-rx, cy+ky), geom.Vec2(cx-rx, cy))
	p.CubeBezier(geom.Vec2(cx-rx, cy-ky), geom.Vec2(cx-kx, cy-ry), geom.Vec2(cx, cy-ry))
	p.CubeBezier(geom.Vec2(cx+kx, cy-ry), geom.Vec2(cx+rx, cy-ky), geom.Vec2(cx+rx, cy))
	p.Stop(true)
}

func (p *Path) addRect(x, y, w, h float64) {
	p.Start(geom.Vec2(x, y))
	p.Line(geom.Vec2(x+w, y))
	p.Line(geom.Vec2(x+w, y+h))
	p.Line(geom.Vec2(x, y+h))
	p.Stop(true)
}

// ParsePathData compiles the `d` attribute of a path element.
// The commands M, L, H, V, C and Z are supported, in absolute
// and relative forms, with implicit repetitions.
func ParsePathData(d string) (Path, error) {
	var (
		out          Path
		cur, start   geom.Vector2
		cmd          byte
		argsStart    = -1
		hasCurrentPt bool
	)
	flush := func(end int) error {
		if cmd == 0 {
			return nil
		}
		var args []float64
		if argsStart >= 0 {
			var err error
			args, err = parseNumbers(d[argsStart:end])
			if err != nil {
				return err
			}
		}
		err := out.addCommand(cmd, args, &cur, &start, &hasCurrentPt)
		cmd, argsStart = 0, -1
		return err
	}
	for i := 0; i < len(d); i++ {
		ch := d[i]
		if ch == 'e' || ch == 'E' {
			continue // exponent
		}
		if ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' {
			if err := flush(i); err != nil {
				return nil, err
			}
			cmd, argsStart = ch, i+1
		} else if cmd == 0 && !isSpace(ch) {
			return nil, errBadPath
		}
	}
	if err := flush(len(d)); err != nil {
		return nil, err
	}
	return out, nil
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == ',' || ch == '\t' || ch == '\n' || ch == '\r'
}

func arity(cmd byte) int {
	switch cmd {
	case 'M', 'L':
		return 2
	case 'H', 'V':
		return 1
	case 'C':
		return 6
	case 'Z':
		return 0
	}
	return -1
}

func (p *Path) addCommand(cmd byte, args []float64, cur, start *geom.Vector2, hasCurrentPt *bool) error {
	rel := cmd >= 'a' && cmd <= 'z'
	up := cmd
	if rel {
		up = cmd - 'a' + 'A'
	}
	n := arity(up)
	if n < 0 {
		return fmt.Errorf("svgdraw: unsupported path command %q", cmd)
	}
	if n == 0 {
		if len(args) != 0 {
			return errParamMismatch
		}
		p.Stop(true)
		*cur = *start
		return nil
	}
	if len(args) == 0 || len(args)%n != 0 {
		return errParamMismatch
	}
	if up != 'M' && !*hasCurrentPt {
		return errBadPath
	}
	offset := func() geom.Vector2 {
		if rel {
			return *cur
		}
		return geom.Vector2{}
	}
	for i := 0; i < len(args); i += n {
		a := args[i : i+n]
		switch up {
		case 'M':
			pt := offset().Add(geom.Vec2(a[0], a[1]))
			if i == 0 {
				p.Start(pt)
				*start = pt
				*hasCurrentPt = true
			} else { // implicit lineto
				p.Line(pt)
			}
			*cur = pt
		case 'L':
			pt := offset().Add(geom.Vec2(a[0], a[1]))
			p.Line(pt)
			*cur = pt
		case 'H':
			pt := geom.Vec2(a[0], cur.Y)
			if rel {
				pt.X += cur.X
			}
			p.Line(pt)
			*cur = pt
		case 'V':
			pt := geom.Vec2(cur.X, a[0])
			if rel {
				pt.Y += cur.Y
			}
			p.Line(pt)
			*cur = pt
		case 'C':
			o := offset()
			b, c, d := o.Add(geom.Vec2(a[0], a[1])), o.Add(geom.Vec2(a[2], a[3])), o.Add(geom.Vec2(a[4], a[5]))
			p.CubeBezier(b, c, d)
			*cur = d
		}
	}
	return nil
}
