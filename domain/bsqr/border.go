package bsqr

import (
	"fmt"

	"github.com/prasetyowira/bsqr/infrastructure/svg"
)

// Notch proportions of the square side. Tuned against the reference artwork,
// changing them moves the border ends off the logo outline.
const (
	notchLength = 0.255
	notchReturn = 0.045
)

// BorderPath returns path data outlining the square at pos, grown outward by half
// the stroke width. Without a logo the outline is closed. Otherwise it is open,
// starting next to the notch and running around to the other side of it, so the
// corner nearest the logo stays unstroked.
func BorderPath(pos Point, size, width float64, position LogoPosition, noLogo bool) string {
	wh := width * 0.5
	x1 := pos.X - wh
	y1 := pos.Y - wh
	x2 := pos.X + size + wh
	y2 := pos.Y + size + wh
	a := wh + size*notchLength
	b := wh + size*notchReturn

	f := svg.FormatNumber

	if noLogo {
		return fmt.Sprintf("M%s %sV%sH%sV%sz", f(x1), f(y1), f(y2), f(x2), f(y1))
	}

	switch position {
	case LogoLeft:
		return fmt.Sprintf("M%s %sV%sH%sV%sH%s", f(x1), f(y1+a), f(y2), f(x2), f(y1), f(x1+b))
	case LogoRight:
		return fmt.Sprintf("M%s %sV%sH%sV%sH%s", f(x2), f(y1+a), f(y2), f(x1), f(y1), f(x2-b))
	case LogoTop:
		return fmt.Sprintf("M%s %sH%sV%sH%sV%s", f(x2-a), f(y1), f(x1), f(y2), f(x2), f(y1+b))
	default:
		return fmt.Sprintf("M%s %sH%sV%sH%sV%s", f(x2-a), f(y2), f(x1), f(y1), f(x2), f(y2-b))
	}
}

// borderStyle is the stroke style of the border path
func borderStyle(color string, width float64) string {
	return "fill:none;stroke:" + color + ";stroke-width:" + svg.FormatNumber(width) +
		";stroke-linecap:round;stroke-linejoin:round"
}
