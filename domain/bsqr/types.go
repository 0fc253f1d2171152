package bsqr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/prasetyowira/bsqr/constant"
	"github.com/prasetyowira/bsqr/infrastructure/qrcode"
)

// LogoPosition is the side of the QR code the payment logo is attached to
type LogoPosition string

const (
	LogoNone   LogoPosition = "NONE"
	LogoBottom LogoPosition = "BOTTOM"
	LogoRight  LogoPosition = "RIGHT"
	LogoTop    LogoPosition = "TOP"
	LogoLeft   LogoPosition = "LEFT"
)

// ParseLogoPosition parses a position name, case-insensitive
func ParseLogoPosition(s string) (LogoPosition, error) {
	switch p := LogoPosition(strings.ToUpper(strings.TrimSpace(s))); p {
	case LogoNone, LogoBottom, LogoRight, LogoTop, LogoLeft:
		return p, nil
	}
	return "", fmt.Errorf("%s: %q", constant.ErrInvalidLogoPosition, s)
}

// LogoKind selects the logo artwork drawn next to the code
type LogoKind string

const (
	LogoKindNone LogoKind = "NONE"
	LogoKindPay  LogoKind = "PAY"
	// LogoKindInvoice is reserved and has no artwork
	LogoKindInvoice LogoKind = "INVOICE"
)

// ParseLogoKind parses a logo kind name, case-insensitive
func ParseLogoKind(s string) (LogoKind, error) {
	switch k := LogoKind(strings.ToUpper(strings.TrimSpace(s))); k {
	case LogoKindNone, LogoKindPay, LogoKindInvoice:
		return k, nil
	}
	return "", fmt.Errorf("%s: %q", constant.ErrInvalidLogoKind, s)
}

// ErrorCorrectionLevel is forwarded to the matrix encoder
type ErrorCorrectionLevel = qrcode.Level

const (
	// ECLevelL recovers ~7% of the symbol
	ECLevelL = qrcode.LevelL
	// ECLevelM recovers ~15% of the symbol
	ECLevelM = qrcode.LevelM
	// ECLevelQ recovers ~25% of the symbol
	ECLevelQ = qrcode.LevelQ
	// ECLevelH recovers ~30% of the symbol
	ECLevelH = qrcode.LevelH
)

// ParseErrorCorrectionLevel parses L, M, Q or H
func ParseErrorCorrectionLevel(s string) (ErrorCorrectionLevel, error) {
	level, err := qrcode.ParseLevel(s)
	if err != nil {
		return ECLevelL, fmt.Errorf("%s: %q", constant.ErrInvalidECLevel, s)
	}
	return level, nil
}

// SizingMode tells how the output document is sized
type SizingMode int

const (
	// SizingUnset leaves width and height to the consumer
	SizingUnset SizingMode = iota
	// SizingInner sizes the document so the QR square has a given size
	SizingInner
	// SizingOuter fits the whole image into a given box
	SizingOuter
)

// Sizing holds the active sizing mode and its dimensions
type Sizing struct {
	Mode   SizingMode
	Size   float64
	Width  float64
	Height float64
}

// Config is a snapshot of the renderer configuration
type Config struct {
	Sizing         Sizing
	Unit           string
	ShowBorder     bool
	LogoPosition   LogoPosition
	ColorPrimary   string
	ColorSecondary string
	ColorCode      string
	ECLevel        ErrorCorrectionLevel
}

// ErrUnsupportedLogoKind is matched by every ConfigurationError
var ErrUnsupportedLogoKind = errors.New(constant.ErrUnsupportedLogoKind)

// ErrInvalidSizing is returned by option parsers for non-positive or incomplete sizes
var ErrInvalidSizing = errors.New(constant.ErrInvalidSizing)

// ConfigurationError is returned when the requested logo cannot be drawn
type ConfigurationError struct {
	Kind LogoKind
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", constant.ErrUnsupportedLogoKind, e.Kind)
}

func (e *ConfigurationError) Unwrap() error {
	return ErrUnsupportedLogoKind
}
