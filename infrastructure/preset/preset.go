package preset

import (
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/prasetyowira/bsqr/domain/bsqr"
)

// Preset is a named set of render options. Zero fields leave the renderer untouched,
// so presets can be layered: a server-wide file first, then request options.
type Preset struct {
	Logo         string   `toml:"logo" json:"logo"`
	LogoPosition string   `toml:"logo_position" json:"position"`
	Border       *bool    `toml:"border" json:"border"`
	Primary      string   `toml:"primary" json:"primary"`
	Secondary    string   `toml:"secondary" json:"secondary"`
	CodeColor    string   `toml:"code_color" json:"code_color"`
	ECLevel      string   `toml:"ec_level" json:"ec"`
	Unit         string   `toml:"unit" json:"unit"`
	InnerSize    *float64 `toml:"inner_size" json:"size"`
	OuterWidth   *float64 `toml:"outer_width" json:"width"`
	OuterHeight  *float64 `toml:"outer_height" json:"height"`
}

// Load reads a TOML preset file
func Load(path string) (Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Preset{}, fmt.Errorf("open preset: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a TOML preset. Unknown keys are rejected.
func Decode(r io.Reader) (Preset, error) {
	var p Preset
	md, err := toml.NewDecoder(r).Decode(&p)
	if err != nil {
		return Preset{}, fmt.Errorf("decode preset: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Preset{}, fmt.Errorf("decode preset: unknown key %q", undecoded[0].String())
	}
	return p, nil
}

// Merge returns p overridden by every field set in o
func (p Preset) Merge(o Preset) Preset {
	merged := p
	setString(&merged.Logo, o.Logo)
	setString(&merged.LogoPosition, o.LogoPosition)
	setString(&merged.Primary, o.Primary)
	setString(&merged.Secondary, o.Secondary)
	setString(&merged.CodeColor, o.CodeColor)
	setString(&merged.ECLevel, o.ECLevel)
	setString(&merged.Unit, o.Unit)
	if o.Border != nil {
		merged.Border = o.Border
	}
	// sizing modes are exclusive, the override wins as a whole
	if o.InnerSize != nil {
		merged.InnerSize, merged.OuterWidth, merged.OuterHeight = o.InnerSize, nil, nil
	}
	if o.OuterWidth != nil || o.OuterHeight != nil {
		merged.InnerSize, merged.OuterWidth, merged.OuterHeight = nil, o.OuterWidth, o.OuterHeight
	}
	return merged
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

// LogoKind returns the logo kind to render, PAY when unset
func (p Preset) LogoKind() (bsqr.LogoKind, error) {
	if p.Logo == "" {
		return bsqr.LogoKindPay, nil
	}
	return bsqr.ParseLogoKind(p.Logo)
}

// Apply configures r. Every value is validated before r is touched.
func (p Preset) Apply(r *bsqr.Renderer) error {
	var position bsqr.LogoPosition
	if p.LogoPosition != "" {
		parsed, err := bsqr.ParseLogoPosition(p.LogoPosition)
		if err != nil {
			return err
		}
		position = parsed
	}

	var level bsqr.ErrorCorrectionLevel
	if p.ECLevel != "" {
		parsed, err := bsqr.ParseErrorCorrectionLevel(p.ECLevel)
		if err != nil {
			return err
		}
		level = parsed
	}

	if (p.OuterWidth == nil) != (p.OuterHeight == nil) {
		return fmt.Errorf("%w: outer sizing needs both width and height", bsqr.ErrInvalidSizing)
	}
	for _, v := range []*float64{p.InnerSize, p.OuterWidth, p.OuterHeight} {
		if v != nil && *v <= 0 {
			return fmt.Errorf("%w: %v", bsqr.ErrInvalidSizing, *v)
		}
	}

	if position != "" {
		r.SetLogoPosition(position)
	}
	if p.ECLevel != "" {
		r.SetErrorCorrectionLevel(level)
	}
	if p.Border != nil {
		r.SetBorder(*p.Border)
	}

	cfg := r.Config()
	primary, secondary := cfg.ColorPrimary, cfg.ColorSecondary
	setString(&primary, p.Primary)
	setString(&secondary, p.Secondary)
	r.SetColors(primary, secondary)
	if p.CodeColor != "" {
		r.SetCodeColor(p.CodeColor)
	}

	if p.Unit != "" {
		r.SetUnit(p.Unit)
	}
	switch {
	case p.InnerSize != nil:
		r.SetInnerSize(*p.InnerSize)
	case p.OuterWidth != nil:
		r.SetOuterSize(*p.OuterWidth, *p.OuterHeight)
	}

	return nil
}
