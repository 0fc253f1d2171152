package qrcode

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// Level is a QR error correction level
type Level int

const (
	// LevelL recovers ~7% of the symbol
	LevelL Level = iota
	// LevelM recovers ~15% of the symbol
	LevelM
	// LevelQ recovers ~25% of the symbol
	LevelQ
	// LevelH recovers ~30% of the symbol
	LevelH
)

var levelNames = map[Level]string{
	LevelL: "L",
	LevelM: "M",
	LevelQ: "Q",
	LevelH: "H",
}

// String returns the single letter name of the level
func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("Level(%d)", int(l))
}

// ParseLevel parses a level letter (L, M, Q or H), case-insensitive
func ParseLevel(s string) (Level, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for level, n := range levelNames {
		if n == name {
			return level, nil
		}
	}
	return LevelL, fmt.Errorf("unknown error correction level %q", s)
}

func (l Level) recoveryLevel() qrcode.RecoveryLevel {
	switch l {
	case LevelM:
		return qrcode.Medium
	case LevelQ:
		return qrcode.High
	case LevelH:
		return qrcode.Highest
	default:
		return qrcode.Low
	}
}

// Matrix is a square grid of QR modules, quiet zone excluded
type Matrix struct {
	bits [][]bool
}

// NewMatrix wraps a row-major module grid
func NewMatrix(bits [][]bool) *Matrix {
	return &Matrix{bits: bits}
}

// Columns returns the module count of one side
func (m *Matrix) Columns() int {
	return len(m.bits)
}

// Module reports whether the module at column x, row y is dark.
// Coordinates outside the grid are light.
func (m *Matrix) Module(x, y int) bool {
	if y < 0 || y >= len(m.bits) || x < 0 || x >= len(m.bits[y]) {
		return false
	}
	return m.bits[y][x]
}

// Encoder handles QR matrix generation
type Encoder struct{}

// NewEncoder creates a new QR matrix encoder
func NewEncoder() *Encoder {
	return &Encoder{}
}

// Encode turns payload text into a module matrix at the given correction level
func (e *Encoder) Encode(payload string, level Level) (*Matrix, error) {
	code, err := qrcode.New(payload, level.recoveryLevel())
	if err != nil {
		return nil, err
	}

	// Quiet zone is reserved by the layout, not by the matrix
	code.DisableBorder = true

	return NewMatrix(code.Bitmap()), nil
}
