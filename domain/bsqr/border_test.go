package bsqr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBorderPath(t *testing.T) {
	tests := []struct {
		position LogoPosition
		expected string
	}{
		{LogoBottom, "M762.4 1026.1H8.7V8.7H1026.1V972.4"},
		{LogoTop, "M762.4 196.016H8.7V1213.416H1026.1V249.716"},
		{LogoLeft, "M196.016 272.4V1026.1H1213.416V8.7H249.716"},
		{LogoRight, "M1026.1 272.4V1026.1H8.7V8.7H972.4"},
	}

	for _, tt := range tests {
		t.Run(string(tt.position), func(t *testing.T) {
			// Arrange
			l := ComputeLayout(tt.position, true, true)

			// Act
			d := BorderPath(l.Origin, BaseSize, l.BorderWidth, tt.position, false)

			// Assert
			assert.Equal(t, tt.expected, d)
			assert.False(t, strings.HasSuffix(d, "z"), "outline with a notch stays open")
		})
	}
}

func TestBorderPath_NoLogoIsClosedRectangle(t *testing.T) {
	// Arrange
	l := ComputeLayout(LogoBottom, true, false)

	// Act
	d := BorderPath(l.Origin, BaseSize, l.BorderWidth, LogoBottom, true)

	// Assert
	assert.Equal(t, "M8.7 8.7V1026.1H1026.1V8.7z", d)
	assert.Equal(t, 1, strings.Count(d, "M"))
	assert.Equal(t, 3, strings.Count(d, "V")+strings.Count(d, "H"))
}

func TestBorderPath_NotchEdge(t *testing.T) {
	// Every open outline has two full sides and two partial ones around the notch
	for _, position := range []LogoPosition{LogoBottom, LogoTop, LogoLeft, LogoRight} {
		l := ComputeLayout(position, true, true)
		d := BorderPath(l.Origin, BaseSize, l.BorderWidth, position, false)

		assert.Equal(t, 4, strings.Count(d, "V")+strings.Count(d, "H"), position)
	}
}

func TestBorderStyle(t *testing.T) {
	assert.Equal(t,
		"fill:none;stroke:#6fa4d7;stroke-width:17.4;stroke-linecap:round;stroke-linejoin:round",
		borderStyle("#6fa4d7", 1000*0.0174))
}
