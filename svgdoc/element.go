// Implements the markup tree produced by svgplan:
// named elements carrying ordered attributes and children,
// which can be pretty-printed to XML and read back.
package svgdoc

import (
	"fmt"
	"strconv"
)

// Attr is one attribute of an element.
type Attr struct {
	Name, Value string
}

// Element is a node of the markup tree.
// Attributes keep their insertion order, so that
// the output is deterministic.
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	Text     string // character data, escaped when written
}

// NewElement returns an empty element with the given tag.
func NewElement(name string) *Element {
	return &Element{Name: name}
}

// FormatNumber writes v with the shortest representation
// which reads back to the same float64.
func FormatNumber(v float64) string {
	if v == 0 {
		v = 0 // drop the sign of -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatValue(value interface{}) string {
	switch value := value.(type) {
	case string:
		return value
	case float64:
		return FormatNumber(value)
	case float32:
		return FormatNumber(float64(value))
	case int:
		return strconv.Itoa(value)
	case int64:
		return strconv.FormatInt(value, 10)
	case bool:
		return strconv.FormatBool(value)
	case fmt.Stringer:
		return value.String()
	default:
		return fmt.Sprint(value)
	}
}

// Attr sets the attribute `name`, replacing a previous value
// but keeping its position. It returns the element to allow chaining.
func (e *Element) Attr(name string, value interface{}) *Element {
	v := formatValue(value)
	for i, a := range e.Attrs {
		if a.Name == name {
			e.Attrs[i].Value = v
			return e
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: v})
	return e
}

// AttrOpt sets the attribute only if value is not nil.
func (e *Element) AttrOpt(name string, value *float64) *Element {
	if value == nil {
		return e
	}
	return e.Attr(name, *value)
}

// Get returns the value of the attribute `name`.
func (e *Element) Get(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Append adds children, ignoring nil ones.
func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		if c != nil {
			e.Children = append(e.Children, c)
		}
	}
	return e
}

// SetText sets the character data of the element.
func (e *Element) SetText(text string) *Element {
	e.Text = text
	return e
}

// Walk calls fn on e and then on its descendants, depth first,
// and stops when fn returns false.
func (e *Element) Walk(fn func(*Element) bool) bool {
	if !fn(e) {
		return false
	}
	for _, c := range e.Children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the elements named `name` in the tree rooted at e.
func (e *Element) Find(name string) []*Element {
	var out []*Element
	e.Walk(func(el *Element) bool {
		if el.Name == name {
			out = append(out, el)
		}
		return true
	})
	return out
}
