package bsqr

import (
	"context"
	"math"
	"strings"

	"github.com/prasetyowira/bsqr/constant"
	"github.com/prasetyowira/bsqr/infrastructure/logger"
	"github.com/prasetyowira/bsqr/infrastructure/qrcode"
	"github.com/prasetyowira/bsqr/infrastructure/resource"
	"github.com/prasetyowira/bsqr/infrastructure/svg"
)

// Default colors
const (
	DefaultColorPrimary   = "#6fa4d7"
	DefaultColorSecondary = "#b0b3b8"
	DefaultColorCode      = "#000"
)

// Encoder turns payload text into a QR module matrix
type Encoder interface {
	Encode(payload string, level qrcode.Level) (*qrcode.Matrix, error)
}

// Converter turns a module matrix into a vector fragment
type Converter interface {
	Render(m svg.Matrix, fill string) *svg.Fragment
}

// ResourceLoader supplies raw logo and caption markup
type ResourceLoader interface {
	Load(name string) (string, error)
}

type logoArtwork struct {
	logo    string
	caption string
}

// artwork lists the logo kinds that can be drawn
var artwork = map[LogoKind]logoArtwork{
	LogoKindPay: {logo: resource.LogoPay, caption: resource.CaptionPay},
}

// Renderer composes bysquare images. It is not safe for concurrent use:
// give every caller its own Renderer or serialize access.
type Renderer struct {
	encoder   Encoder
	converter Converter
	loader    ResourceLoader

	sizing         Sizing
	unit           string
	showBorder     bool
	logoPosition   LogoPosition
	colorPrimary   string
	colorSecondary string
	colorCode      string
	ecLevel        ErrorCorrectionLevel
}

// NewRenderer creates a renderer with default configuration
func NewRenderer(encoder Encoder, converter Converter, loader ResourceLoader) *Renderer {
	return &Renderer{
		encoder:        encoder,
		converter:      converter,
		loader:         loader,
		showBorder:     true,
		logoPosition:   LogoBottom,
		colorPrimary:   DefaultColorPrimary,
		colorSecondary: DefaultColorSecondary,
		colorCode:      DefaultColorCode,
		ecLevel:        ECLevelL,
	}
}

// NewDefaultRenderer creates a renderer wired to the bundled collaborators
func NewDefaultRenderer() *Renderer {
	return NewRenderer(qrcode.NewEncoder(), svg.NewConverter(), resource.NewLoader())
}

// SetInnerSize sizes the output so the QR square is size units wide.
// An optional unit replaces the current one.
func (r *Renderer) SetInnerSize(size float64, unit ...string) {
	r.sizing = Sizing{Mode: SizingInner, Size: size}
	r.setOptionalUnit(unit)
}

// SetOuterSize fits the whole output into width x height units.
// An optional unit replaces the current one.
func (r *Renderer) SetOuterSize(width, height float64, unit ...string) {
	r.sizing = Sizing{Mode: SizingOuter, Width: width, Height: height}
	r.setOptionalUnit(unit)
}

func (r *Renderer) setOptionalUnit(unit []string) {
	if len(unit) > 0 {
		r.unit = unit[0]
	}
}

// SetUnit sets the unit appended to the output width and height
func (r *Renderer) SetUnit(unit string) {
	r.unit = unit
}

// SetLogoPosition sets the side the logo is attached to
func (r *Renderer) SetLogoPosition(position LogoPosition) {
	r.logoPosition = position
}

// SetBorder toggles the rounded border
func (r *Renderer) SetBorder(show bool) {
	r.showBorder = show
}

// SetColors sets the border/logo color and the caption color
func (r *Renderer) SetColors(primary, secondary string) {
	r.colorPrimary = primary
	r.colorSecondary = secondary
}

// SetCodeColor sets the fill of the QR modules
func (r *Renderer) SetCodeColor(color string) {
	r.colorCode = color
}

// SetErrorCorrectionLevel sets the level passed to the encoder
func (r *Renderer) SetErrorCorrectionLevel(level ErrorCorrectionLevel) {
	r.ecLevel = level
}

// Config returns the current configuration
func (r *Renderer) Config() Config {
	return Config{
		Sizing:         r.sizing,
		Unit:           r.unit,
		ShowBorder:     r.showBorder,
		LogoPosition:   r.logoPosition,
		ColorPrimary:   r.colorPrimary,
		ColorSecondary: r.colorSecondary,
		ColorCode:      r.colorCode,
		ECLevel:        r.ecLevel,
	}
}

// Render composes the QR code of payload with the border, logo and caption.
// An empty payload leaves the QR code out. Errors from the encoder and the
// resource loader are returned unchanged.
func (r *Renderer) Render(ctx context.Context, payload string, logo LogoKind) (*svg.Document, error) {
	logger.CtxDebug(ctx, constant.MsgRenderStarted, logger.LoggerInfo{
		ContextFunction: constant.CtxRender,
		Data: map[string]interface{}{
			constant.DataPayloadLength: len(payload),
			constant.DataLogoKind:      logo,
			constant.DataLogoPosition:  r.logoPosition,
			constant.DataBorder:        r.showBorder,
			constant.DataECLevel:       r.ecLevel.String(),
		},
	})

	position := effectivePosition(r.logoPosition)
	drawLogo := position != LogoNone && logo != LogoKindNone
	art, supported := artwork[logo]
	if drawLogo && !supported {
		err := &ConfigurationError{Kind: logo}
		logger.CtxWarn(ctx, constant.MsgUnsupportedLogoKind, logger.LoggerInfo{
			ContextFunction: constant.CtxRender,
			Error: &logger.CustomError{
				Code:    constant.ErrCodeUnsupportedLogoKind,
				Message: err.Error(),
				Type:    constant.ErrTypeConfiguration,
			},
			Data: map[string]interface{}{
				constant.DataLogoKind:     logo,
				constant.DataLogoPosition: position,
			},
		})
		return nil, err
	}

	l := ComputeLayout(position, r.showBorder, drawLogo)

	var content strings.Builder
	if payload != "" {
		qr, err := r.renderQRCode(l, payload)
		if err != nil {
			logCollaboratorFailure(ctx, constant.ErrCodeEncodeFailure, constant.ErrTypeEncoding, err)
			return nil, err
		}
		content.WriteString(qr)
	}
	if r.showBorder {
		content.WriteString(r.renderBorder(l, position, !drawLogo))
	}
	if drawLogo {
		logoMarkup, err := r.renderLogo(l, art.logo)
		if err != nil {
			logCollaboratorFailure(ctx, constant.ErrCodeResourceLoad, constant.ErrTypeResource, err)
			return nil, err
		}
		content.WriteString(logoMarkup)

		if l.HasCaption {
			caption, err := r.renderCaption(l, art.caption)
			if err != nil {
				logCollaboratorFailure(ctx, constant.ErrCodeResourceLoad, constant.ErrTypeResource, err)
				return nil, err
			}
			content.WriteString(caption)
		}
	}

	viewBox := "0 0 " + svg.FormatNumber(l.Canvas.X) + " " + svg.FormatNumber(l.Canvas.Y)
	doc := r.applySizing(svg.NewDocument(content.String(), map[string]string{
		svg.AttrViewBox: viewBox,
	}), l)

	logger.CtxDebug(ctx, constant.MsgRenderCompleted, logger.LoggerInfo{
		ContextFunction: constant.CtxRender,
		Data: map[string]interface{}{
			constant.DataViewBox: viewBox,
			constant.DataWidth:   doc.Attr(svg.AttrWidth),
			constant.DataHeight:  doc.Attr(svg.AttrHeight),
		},
	})

	return doc, nil
}

// logCollaboratorFailure records an encoder or resource error before it is returned unchanged
func logCollaboratorFailure(ctx context.Context, code, errType string, err error) {
	logger.CtxWarn(ctx, constant.MsgRenderFailed, logger.LoggerInfo{
		ContextFunction: constant.CtxRender,
		Error: &logger.CustomError{
			Code:    code,
			Message: err.Error(),
			Type:    errType,
		},
	})
}

// renderQRCode places the symbol inside the quiet zone of the square,
// rotated about its own center when the layout asks for it
func (r *Renderer) renderQRCode(l Layout, payload string) (string, error) {
	matrix, err := r.encoder.Encode(payload, r.ecLevel)
	if err != nil {
		return "", err
	}

	fragment := r.converter.Render(matrix, r.colorCode)
	size, offset := QRGeometry(matrix.Columns())

	transform := svg.Translate(l.Origin.X+offset, l.Origin.Y+offset)
	if l.QRRotation != 0 {
		transform += " " + svg.Rotate(l.QRRotation, size/2, size/2)
	}

	return svg.Group(transform, fragment.WithSize(size, size).String()), nil
}

func (r *Renderer) renderBorder(l Layout, position LogoPosition, noLogo bool) string {
	d := BorderPath(l.Origin, BaseSize, l.BorderWidth, position, noLogo)
	return svg.Path(d, borderStyle(r.colorPrimary, l.BorderWidth))
}

// renderLogo scales the 100-unit artwork to the logo size, mirroring it
// horizontally around its own box when the layout asks for it
func (r *Renderer) renderLogo(l Layout, name string) (string, error) {
	markup, err := resource.Include(r.loader, name, r.colorPrimary, r.colorSecondary)
	if err != nil {
		return "", err
	}

	pos := l.Logo
	scaleX := l.LogoSize / 100.0
	scaleY := scaleX
	if l.Mirror {
		pos.X += l.LogoSize
		scaleX = -scaleX
	}

	transform := "translate(" + svg.FormatNumber(pos.X) + ", " + svg.FormatNumber(pos.Y) + ") " +
		"scale(" + svg.FormatNumber(scaleX) + ", " + svg.FormatNumber(scaleY) + ")"
	return svg.Group(transform, markup), nil
}

func (r *Renderer) renderCaption(l Layout, name string) (string, error) {
	markup, err := resource.Include(r.loader, name, r.colorPrimary, r.colorSecondary)
	if err != nil {
		return "", err
	}

	transform := "translate(" + svg.FormatNumber(l.Caption.X) + ", " + svg.FormatNumber(l.Caption.Y) + ") " +
		"scale(" + svg.FormatNumber(l.CaptionSize/100.0) + ")"
	return svg.Group(transform, markup), nil
}

// applySizing maps the logical canvas onto the requested physical size.
// Inner sizing maps the 1000-unit square onto the requested size, outer sizing
// fits the whole canvas into the box keeping its aspect ratio.
func (r *Renderer) applySizing(doc *svg.Document, l Layout) *svg.Document {
	switch r.sizing.Mode {
	case SizingInner:
		scale := r.sizing.Size / BaseSize
		return doc.WithSize(l.Canvas.X*scale, l.Canvas.Y*scale, r.unit)
	case SizingOuter:
		scale := math.Min(r.sizing.Width/l.Canvas.X, r.sizing.Height/l.Canvas.Y)
		return doc.WithSize(l.Canvas.X*scale, l.Canvas.Y*scale, r.unit)
	default:
		return doc
	}
}
