package svg

import (
	"fmt"
	"strings"
)

// Matrix is a square module grid readable by the converter
type Matrix interface {
	Columns() int
	Module(x, y int) bool
}

// Fragment is a self-contained nested <svg> element with its own viewBox
type Fragment struct {
	modules int
	body    string
	width   float64
	height  float64
}

// Modules returns the module count of one side of the source matrix
func (f *Fragment) Modules() int {
	return f.modules
}

// Size returns the rendered width and height of the fragment
func (f *Fragment) Size() (float64, float64) {
	return f.width, f.height
}

// WithSize returns a copy of the fragment rendered at the given size
func (f *Fragment) WithSize(width, height float64) *Fragment {
	resized := *f
	resized.width = width
	resized.height = height
	return &resized
}

// String returns the embeddable markup
func (f *Fragment) String() string {
	return fmt.Sprintf(`<svg width="%s" height="%s" viewBox="0 0 %d %d" shape-rendering="crispEdges">%s</svg>`,
		FormatNumber(f.width), FormatNumber(f.height), f.modules, f.modules, f.body)
}

// Converter turns a module matrix into vector path data
type Converter struct{}

// NewConverter creates a new matrix to vector converter
func NewConverter() *Converter {
	return &Converter{}
}

// Render draws every dark module of m as part of one filled path.
// Adjacent dark modules in a row are merged into a single rectangle.
func (c *Converter) Render(m Matrix, fill string) *Fragment {
	n := m.Columns()

	var d strings.Builder
	for y := 0; y < n; y++ {
		for x := 0; x < n; {
			if !m.Module(x, y) {
				x++
				continue
			}
			start := x
			for x < n && m.Module(x, y) {
				x++
			}
			run := x - start
			fmt.Fprintf(&d, "M%d %dh%dv1h-%dz", start, y, run, run)
		}
	}

	body := ""
	if d.Len() > 0 {
		body = Path(d.String(), "fill:"+fill)
	}

	return &Fragment{
		modules: n,
		body:    body,
		width:   float64(n),
		height:  float64(n),
	}
}
