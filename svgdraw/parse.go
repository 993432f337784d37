package svgdraw

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/benoitkugler/svgplan/geom"
	"github.com/benoitkugler/svgplan/svgplan"
)

var (
	errParamMismatch = errors.New("svgdraw: param mismatch")
	errBadPath       = errors.New("svgdraw: malformed path data")
)

// parseNumbers reads the numbers of a list separated by spaces or
// commas. As in path data, a sign or a second dot also starts a new number.
func parseNumbers(s string) ([]float64, error) {
	var (
		out   []float64
		start = -1
	)
	flush := func(end int) error {
		if start < 0 {
			return nil
		}
		f, err := strconv.ParseFloat(s[start:end], 64)
		if err != nil {
			return fmt.Errorf("svgdraw: invalid number %q", s[start:end])
		}
		out = append(out, f)
		start = -1
		return nil
	}
	hasDot := false
	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch {
		case ch == ' ' || ch == ',' || ch == '\t' || ch == '\n' || ch == '\r':
			if err := flush(i); err != nil {
				return nil, err
			}
		case ch == '-' || ch == '+':
			// exponent sign belongs to the current number
			if start >= 0 && (s[i-1] == 'e' || s[i-1] == 'E') {
				continue
			}
			if err := flush(i); err != nil {
				return nil, err
			}
			start, hasDot = i, false
		case ch == '.':
			if start >= 0 && hasDot {
				if err := flush(i); err != nil {
					return nil, err
				}
			}
			if start < 0 {
				start = i
			}
			hasDot = true
		case ch >= '0' && ch <= '9' || ch == 'e' || ch == 'E':
			if start < 0 {
				start, hasDot = i, false
			}
		default:
			return nil, fmt.Errorf("svgdraw: unexpected character %q", ch)
		}
	}
	if err := flush(len(s)); err != nil {
		return nil, err
	}
	return out, nil
}

func parseNumber(s string) (float64, error) {
	v, err := parseNumbers(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	if err != nil {
		return 0, err
	}
	if len(v) != 1 {
		return 0, errParamMismatch
	}
	return v[0], nil
}

func readTransformAttr(points []float64, k string) (geom.Matrix3, error) {
	ln := len(points)
	switch k {
	case "rotate":
		if ln == 1 {
			return geom.Rotate3(points[0]), nil
		} else if ln == 3 {
			c := geom.Vec2(points[1], points[2])
			return geom.NewMatrix3Builder().Translate(c.Neg()).Rotate(points[0]).Translate(c).Build(), nil
		}
	case "translate":
		if ln == 1 {
			return geom.Translate3(geom.Vec2(points[0], 0)), nil
		} else if ln == 2 {
			return geom.Translate3(geom.Vec2(points[0], points[1])), nil
		}
	case "skewx":
		if ln == 1 {
			return geom.ShearX3(math.Tan(points[0] * math.Pi / 180)), nil
		}
	case "skewy":
		if ln == 1 {
			return geom.ShearY3(math.Tan(points[0] * math.Pi / 180)), nil
		}
	case "scale":
		if ln == 1 {
			return geom.Scale3(points[0], points[0]), nil
		} else if ln == 2 {
			return geom.Scale3(points[0], points[1]), nil
		}
	case "matrix":
		if ln == 6 {
			return geom.Matrix3{
				M11: points[0], M12: points[1],
				M21: points[2], M22: points[3],
				M31: points[4], M32: points[5], M33: 1,
			}, nil
		}
	}
	return geom.Matrix3{}, errParamMismatch
}

// ParseTransform reads a transform attribute, such as
// "translate(2 3) matrix(1 0 0 -1 0 0)". As in SVG, the rightmost
// transform is applied first to the points.
func ParseTransform(v string) (geom.Matrix3, error) {
	m := geom.Identity3
	for _, t := range strings.Split(v, ")") {
		t = strings.TrimSpace(t)
		if len(t) == 0 {
			continue
		}
		d := strings.Split(t, "(")
		if len(d) != 2 || len(d[1]) < 1 {
			return m, errParamMismatch // badly formed transformation
		}
		points, err := parseNumbers(d[1])
		if err != nil {
			return m, err
		}
		next, err := readTransformAttr(points, strings.ToLower(strings.TrimSpace(d[0])))
		if err != nil {
			return m, err
		}
		m = next.Mul(m)
	}
	return m, nil
}

// ParseColor reads a color keyword known by svgplan or an hexadecimal
// #rgb or #rrggbb value. "none" returns a nil color.
func ParseColor(v string) (color.Color, error) {
	v = strings.TrimSpace(v)
	if strings.HasPrefix(v, "#") {
		return parseHexColor(v[1:])
	}
	c, err := svgplan.ParseColor(v)
	if err != nil {
		return nil, err
	}
	rgba, ok := c.RGBA()
	if !ok {
		return nil, nil
	}
	return rgba, nil
}

func parseHexColor(v string) (color.Color, error) {
	if len(v) == 3 {
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	}
	if len(v) != 6 {
		return nil, fmt.Errorf("svgdraw: invalid color #%s", v)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("svgdraw: invalid color #%s", v)
	}
	return color.NRGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
}
