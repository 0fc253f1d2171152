package svg

import (
	"io"
	"sort"
	"strings"

	svgo "github.com/ajstarks/svgo"
)

// Namespace is the SVG XML namespace written on the root element
const Namespace = "http://www.w3.org/2000/svg"

// Attribute names with a fixed position on the root element
const (
	AttrWidth   = "width"
	AttrHeight  = "height"
	AttrViewBox = "viewBox"
)

var leadingAttrs = []string{AttrWidth, AttrHeight, AttrViewBox}

var attrEscaper = strings.NewReplacer(`&`, "&amp;", `<`, "&lt;", `>`, "&gt;", `"`, "&quot;")

// Document is a root <svg> element wrapping arbitrary content markup
type Document struct {
	content string
	attrs   map[string]string
}

// NewDocument creates a document from content markup and root attributes
func NewDocument(content string, attrs map[string]string) *Document {
	copied := make(map[string]string, len(attrs))
	for k, v := range attrs {
		copied[k] = v
	}
	return &Document{
		content: content,
		attrs:   copied,
	}
}

// Content returns the markup inside the root element
func (d *Document) Content() string {
	return d.content
}

// Attr returns a root attribute value, empty when absent
func (d *Document) Attr(name string) string {
	return d.attrs[name]
}

// ViewBox returns the viewBox attribute
func (d *Document) ViewBox() string {
	return d.attrs[AttrViewBox]
}

// WithSize returns a copy of the document requested at an explicit physical size
func (d *Document) WithSize(width, height float64, unit string) *Document {
	resized := NewDocument(d.content, d.attrs)
	resized.attrs[AttrWidth] = FormatNumber(width) + unit
	resized.attrs[AttrHeight] = FormatNumber(height) + unit
	return resized
}

// String serializes the document
func (d *Document) String() string {
	var b strings.Builder
	_, _ = d.WriteTo(&b)
	return b.String()
}

// WriteTo serializes the document into w
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}

	cw.writeString(`<svg xmlns="` + Namespace + `"`)
	for _, name := range d.attrNames() {
		cw.writeString(" " + name + `="` + attrEscaper.Replace(d.attrs[name]) + `"`)
	}
	cw.writeString(">")
	cw.writeString(d.content)
	svgo.New(cw).End()

	return cw.n, cw.err
}

// attrNames orders width, height and viewBox first, then the rest alphabetically
func (d *Document) attrNames() []string {
	names := make([]string, 0, len(d.attrs))
	for _, name := range leadingAttrs {
		if _, ok := d.attrs[name]; ok {
			names = append(names, name)
		}
	}

	var rest []string
	for name := range d.attrs {
		if name == AttrWidth || name == AttrHeight || name == AttrViewBox || name == "xmlns" {
			continue
		}
		rest = append(rest, name)
	}
	sort.Strings(rest)

	return append(names, rest...)
}

type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}

func (c *countingWriter) writeString(s string) {
	_, _ = c.Write([]byte(s))
}
