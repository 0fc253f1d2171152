package svg

import (
	"math"
	"strconv"
)

// numberPrecision is the number of decimals kept in emitted coordinates
const numberPrecision = 1e6

// FormatNumber writes a coordinate with at most six decimals and no trailing zeros
func FormatNumber(v float64) string {
	r := math.Round(v*numberPrecision) / numberPrecision
	if r == 0 {
		return "0"
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Translate builds a translate() transform
func Translate(x, y float64) string {
	return "translate(" + FormatNumber(x) + "," + FormatNumber(y) + ")"
}

// Rotate builds a rotate() transform about the point cx, cy
func Rotate(angle int, cx, cy float64) string {
	return "rotate(" + strconv.Itoa(angle) + "," + FormatNumber(cx) + "," + FormatNumber(cy) + ")"
}
