package svgplan

import (
	"fmt"
	"image/color"
	"strings"
)

// Color is one of the named colors used in plans.
type Color uint8

const (
	None Color = iota
	Black
	Brown
	Maroon
	White
	Red
	Green
	DarkGreen
	Blue
	Orange
	Grey
)

var colorNames = [...]string{
	None:      "none",
	Black:     "black",
	Brown:     "brown",
	Maroon:    "maroon",
	White:     "white",
	Red:       "red",
	Green:     "green",
	DarkGreen: "darkgreen",
	Blue:      "blue",
	Orange:    "orange",
	Grey:      "grey",
}

// values of the SVG color keywords
var colorValues = [...]color.NRGBA{
	Black:     {0x00, 0x00, 0x00, 0xff},
	Brown:     {0xa5, 0x2a, 0x2a, 0xff},
	Maroon:    {0x80, 0x00, 0x00, 0xff},
	White:     {0xff, 0xff, 0xff, 0xff},
	Red:       {0xff, 0x00, 0x00, 0xff},
	Green:     {0x00, 0x80, 0x00, 0xff},
	DarkGreen: {0x00, 0x64, 0x00, 0xff},
	Blue:      {0x00, 0x00, 0xff, 0xff},
	Orange:    {0xff, 0xa5, 0x00, 0xff},
	Grey:      {0x80, 0x80, 0x80, 0xff},
}

// String returns the SVG keyword of the color.
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "<unknown Color>"
}

// RGBA returns the color value, and false for None.
func (c Color) RGBA() (color.NRGBA, bool) {
	if c == None || int(c) >= len(colorValues) {
		return color.NRGBA{}, false
	}
	return colorValues[c], true
}

// ParseColor is the inverse of String. The empty string is None.
// "gray" is accepted for Grey.
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "":
		return None, nil
	case "gray":
		return Grey, nil
	}
	for i, n := range colorNames {
		if n == name {
			return Color(i), nil
		}
	}
	return None, fmt.Errorf("svgplan: unknown color %q", name)
}

// UnmarshalText implements encoding.TextUnmarshaler, so that colors
// may be given by name in configuration files.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Color) MarshalText() ([]byte, error) { return []byte(c.String()), nil }
