package svg

import (
	"strings"

	svgo "github.com/ajstarks/svgo"
)

// Group wraps inner markup in a <g> element carrying the transform
func Group(transform, inner string) string {
	var b strings.Builder
	canvas := svgo.New(&b)
	canvas.Gtransform(transform)
	b.WriteString(inner)
	canvas.Gend()
	return b.String()
}

// Path emits a single <path> element with an inline style
func Path(d, style string) string {
	var b strings.Builder
	svgo.New(&b).Path(d, style)
	return b.String()
}
