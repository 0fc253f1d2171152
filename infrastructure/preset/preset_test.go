package preset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prasetyowira/bsqr/domain/bsqr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const samplePreset = `
logo = "pay"
logo_position = "right"
border = false
primary = "#112233"
secondary = "#445566"
code_color = "#010101"
ec_level = "Q"
unit = "mm"
inner_size = 40.0
`

func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func TestDecode(t *testing.T) {
	// Act
	p, err := Decode(strings.NewReader(samplePreset))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "pay", p.Logo)
	assert.Equal(t, "right", p.LogoPosition)
	require.NotNil(t, p.Border)
	assert.False(t, *p.Border)
	assert.Equal(t, "#112233", p.Primary)
	assert.Equal(t, "#445566", p.Secondary)
	assert.Equal(t, "#010101", p.CodeColor)
	assert.Equal(t, "Q", p.ECLevel)
	assert.Equal(t, "mm", p.Unit)
	require.NotNil(t, p.InnerSize)
	assert.Equal(t, 40.0, *p.InnerSize)
	assert.Nil(t, p.OuterWidth)
}

func TestDecode_Errors(t *testing.T) {
	_, err := Decode(strings.NewReader(`border = "maybe"`))
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(`colour = "#fff"`))
	assert.EqualError(t, err, `decode preset: unknown key "colour"`)
}

func TestLoad(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "preset.toml")
	require.NoError(t, os.WriteFile(path, []byte(samplePreset), 0o600))

	// Act
	p, err := Load(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "right", p.LogoPosition)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestApply(t *testing.T) {
	// Arrange
	p, err := Decode(strings.NewReader(samplePreset))
	require.NoError(t, err)
	r := bsqr.NewDefaultRenderer()

	// Act
	err = p.Apply(r)

	// Assert
	require.NoError(t, err)
	cfg := r.Config()
	assert.Equal(t, bsqr.LogoRight, cfg.LogoPosition)
	assert.False(t, cfg.ShowBorder)
	assert.Equal(t, "#112233", cfg.ColorPrimary)
	assert.Equal(t, "#445566", cfg.ColorSecondary)
	assert.Equal(t, "#010101", cfg.ColorCode)
	assert.Equal(t, bsqr.ECLevelQ, cfg.ECLevel)
	assert.Equal(t, "mm", cfg.Unit)
	assert.Equal(t, bsqr.Sizing{Mode: bsqr.SizingInner, Size: 40}, cfg.Sizing)
}

func TestApply_EmptyPresetKeepsDefaults(t *testing.T) {
	// Arrange
	r := bsqr.NewDefaultRenderer()
	before := r.Config()

	// Act
	err := Preset{}.Apply(r)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, before, r.Config())
}

func TestApply_OnlySecondaryColor(t *testing.T) {
	// Arrange
	r := bsqr.NewDefaultRenderer()

	// Act
	err := Preset{Secondary: "#fff"}.Apply(r)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, bsqr.DefaultColorPrimary, r.Config().ColorPrimary)
	assert.Equal(t, "#fff", r.Config().ColorSecondary)
}

func TestApply_InvalidValuesLeaveRendererUntouched(t *testing.T) {
	tests := []struct {
		name   string
		preset Preset
	}{
		{"position", Preset{LogoPosition: "middle", Primary: "#fff"}},
		{"ec level", Preset{ECLevel: "X", Primary: "#fff"}},
		{"half outer size", Preset{OuterWidth: floatPtr(10), Primary: "#fff"}},
		{"negative size", Preset{InnerSize: floatPtr(-1), Primary: "#fff"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			r := bsqr.NewDefaultRenderer()
			before := r.Config()

			// Act
			err := tt.preset.Apply(r)

			// Assert
			assert.Error(t, err)
			assert.Equal(t, before, r.Config())
		})
	}
}

func TestApply_SizingErrorsWrapSentinel(t *testing.T) {
	err := Preset{InnerSize: floatPtr(0)}.Apply(bsqr.NewDefaultRenderer())
	assert.True(t, errors.Is(err, bsqr.ErrInvalidSizing))
}

func TestMerge(t *testing.T) {
	// Arrange
	base := Preset{
		LogoPosition: "TOP",
		Primary:      "#111",
		Border:       boolPtr(false),
		InnerSize:    floatPtr(30),
		Unit:         "mm",
	}
	override := Preset{
		Primary:     "#222",
		OuterWidth:  floatPtr(100),
		OuterHeight: floatPtr(50),
	}

	// Act
	merged := base.Merge(override)

	// Assert
	assert.Equal(t, "TOP", merged.LogoPosition)
	assert.Equal(t, "#222", merged.Primary)
	assert.False(t, *merged.Border)
	assert.Nil(t, merged.InnerSize)
	assert.Equal(t, 100.0, *merged.OuterWidth)
	assert.Equal(t, 50.0, *merged.OuterHeight)
	assert.Equal(t, "mm", merged.Unit)

	again := merged.Merge(Preset{InnerSize: floatPtr(20), Border: boolPtr(true)})
	assert.Equal(t, 20.0, *again.InnerSize)
	assert.Nil(t, again.OuterWidth)
	assert.True(t, *again.Border)
}

func TestLogoKind(t *testing.T) {
	kind, err := Preset{}.LogoKind()
	assert.NoError(t, err)
	assert.Equal(t, bsqr.LogoKindPay, kind)

	kind, err = Preset{Logo: "none"}.LogoKind()
	assert.NoError(t, err)
	assert.Equal(t, bsqr.LogoKindNone, kind)

	_, err = Preset{Logo: "stamp"}.LogoKind()
	assert.Error(t, err)
}
