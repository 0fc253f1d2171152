package bsqr

// BaseSize is the side of the logical square holding the QR code and its quiet zone.
// Every other measure is a fixed proportion of it.
const BaseSize = 1000.0

const (
	logoRatio          = 0.213416
	captionRatio       = 0.790
	captionOffsetRatio = 0.053638
	borderRatio        = 0.0174

	// quiet zone width in modules on each side of the symbol
	quietZoneModules = 4
)

// Point is a position or an extent in logical units
type Point struct {
	X float64
	Y float64
}

// Layout is the geometry of one render. It lives for a single Render call.
type Layout struct {
	// Canvas is the final logical extent, used as the document viewBox
	Canvas Point
	// Origin is the top-left corner of the 1000-unit QR square
	Origin Point

	Logo       Point
	Caption    Point
	HasLogo    bool
	HasCaption bool
	Mirror     bool
	QRRotation int

	LogoSize      float64
	CaptionSize   float64
	CaptionOffset float64
	BorderWidth   float64
	// LogoOffset is how far the logo sticks out of the bordered square
	LogoOffset float64
}

// HalfBorder returns half the border stroke width
func (l Layout) HalfBorder() float64 {
	return l.BorderWidth * 0.5
}

// placement is the logo-position dependent part of a layout
type placement struct {
	shift    Point
	grow     Point
	logo     Point
	caption  Point
	captions bool
	mirror   bool
	rotation int
}

type placementFunc func(l Layout) placement

// placements is keyed by every position that draws a logo.
// Anchors are computed from the origin before the shift is applied.
var placements = map[LogoPosition]placementFunc{
	LogoLeft: func(l Layout) placement {
		return placement{
			shift:    Point{X: l.LogoOffset},
			grow:     Point{X: l.LogoOffset},
			logo:     Point{X: 0, Y: l.HalfBorder()},
			mirror:   true,
			rotation: 180,
		}
	},
	LogoRight: func(l Layout) placement {
		return placement{
			grow:     Point{X: l.LogoOffset},
			logo:     Point{X: l.Origin.X + BaseSize - l.HalfBorder(), Y: l.HalfBorder()},
			rotation: 270,
		}
	},
	LogoTop: func(l Layout) placement {
		return placement{
			shift:    Point{Y: l.LogoOffset},
			grow:     Point{Y: l.LogoOffset},
			logo:     Point{X: l.Origin.X + BaseSize - l.LogoSize + l.HalfBorder(), Y: l.HalfBorder()},
			rotation: 270,
		}
	},
	LogoBottom: func(l Layout) placement {
		logo := Point{
			X: l.Origin.X + BaseSize - l.LogoSize + l.HalfBorder(),
			Y: l.Origin.Y + BaseSize - l.HalfBorder(),
		}
		return placement{
			grow:     Point{Y: l.LogoOffset},
			logo:     logo,
			caption:  Point{X: logo.X - l.CaptionSize, Y: logo.Y + l.CaptionOffset},
			captions: true,
		}
	},
}

// effectivePosition maps a position without a placement onto BOTTOM. NONE is kept.
func effectivePosition(position LogoPosition) LogoPosition {
	if _, ok := placements[position]; ok || position == LogoNone {
		return position
	}
	return LogoBottom
}

// ComputeLayout derives the geometry of every element from the logo position.
// drawLogo false, or position NONE, leaves the bordered square untouched.
// Unknown positions are laid out as BOTTOM.
func ComputeLayout(position LogoPosition, border, drawLogo bool) Layout {
	l := Layout{
		Canvas:        Point{X: BaseSize, Y: BaseSize},
		LogoSize:      BaseSize * logoRatio,
		CaptionSize:   BaseSize * captionRatio,
		CaptionOffset: BaseSize * captionOffsetRatio,
		BorderWidth:   BaseSize * borderRatio,
	}
	l.LogoOffset = l.LogoSize - l.HalfBorder()

	if border {
		l.Origin.X += l.BorderWidth
		l.Origin.Y += l.BorderWidth
		l.Canvas.X += 2 * l.BorderWidth
		l.Canvas.Y += 2 * l.BorderWidth
		l.LogoOffset -= l.BorderWidth
	}

	place, ok := placements[effectivePosition(position)]
	if !drawLogo || !ok {
		return l
	}

	p := place(l)
	l.Origin.X += p.shift.X
	l.Origin.Y += p.shift.Y
	l.Canvas.X += p.grow.X
	l.Canvas.Y += p.grow.Y
	l.Logo = p.logo
	l.Caption = p.caption
	l.HasLogo = true
	l.HasCaption = p.captions
	l.Mirror = p.mirror
	l.QRRotation = p.rotation

	return l
}

// QRGeometry returns the logical side of an n-module symbol and its offset
// from the square origin. The remaining space is the quiet zone.
func QRGeometry(n int) (size, offset float64) {
	total := float64(n + 2*quietZoneModules)
	return BaseSize * float64(n) / total, BaseSize * quietZoneModules / total
}
