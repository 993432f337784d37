package svgdoc

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"io"
	"strings"
)

// DefaultIndent is the indentation unit used by String.
const DefaultIndent = "  "

// Encode writes the tree rooted at root as pretty-printed XML,
// one element per line, nested elements shifted by `indent`.
func Encode(w io.Writer, root *Element, indent string) error {
	bw := bufio.NewWriter(w)
	if err := encodeElement(bw, root, indent, 0); err != nil {
		return err
	}
	return bw.Flush()
}

// String returns the markup of the tree, with DefaultIndent.
func (e *Element) String() string {
	var b bytes.Buffer
	_ = Encode(&b, e, DefaultIndent)
	return b.String()
}

func escape(s string) string {
	var b strings.Builder
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

func encodeElement(w *bufio.Writer, e *Element, indent string, depth int) error {
	prefix := strings.Repeat(indent, depth)
	w.WriteString(prefix)
	w.WriteByte('<')
	w.WriteString(e.Name)
	for _, a := range e.Attrs {
		w.WriteByte(' ')
		w.WriteString(a.Name)
		w.WriteString(`="`)
		w.WriteString(escape(a.Value))
		w.WriteByte('"')
	}

	switch {
	case len(e.Children) == 0 && e.Text == "":
		w.WriteString("/>\n")
	case len(e.Children) == 0:
		w.WriteByte('>')
		w.WriteString(escape(e.Text))
		w.WriteString("</" + e.Name + ">\n")
	default:
		w.WriteString(">\n")
		if e.Text != "" {
			w.WriteString(prefix + indent)
			w.WriteString(escape(e.Text))
			w.WriteByte('\n')
		}
		for _, c := range e.Children {
			if err := encodeElement(w, c, indent, depth+1); err != nil {
				return err
			}
		}
		w.WriteString(prefix + "</" + e.Name + ">\n")
	}
	// bufio.Writer keeps the first error: report it once
	_, err := w.Write(nil)
	return err
}
