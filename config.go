package ggtext

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gogpu/ggtext/font"
	"github.com/gogpu/ggtext/style"
)

// Config is the file form of the engine options and a base text style.
//
// Example:
//
//	dpi = 96
//	font_engine = "sfnt"
//
//	[cache]
//	max_faces = 30
//
//	[[fonts]]
//	family = "mono"
//	regular = "DejaVuSansMono.ttf"
//
//	[style]
//	font_size = 24
//	color = [1, 0.5, 0]
//	justification = "center"
type Config struct {
	DPI        int    `toml:"dpi"`
	FontEngine string `toml:"font_engine"`
	PowerOfTwo bool   `toml:"power_of_two"`
	// Reallocate is optional; reallocation stays enabled when unset.
	Reallocate *bool `toml:"reallocate"`

	Cache CacheConfig  `toml:"cache"`
	Fonts []FontConfig `toml:"fonts"`
	Style StyleConfig  `toml:"style"`
}

// CacheConfig holds cache budgets. Zero selects the default.
type CacheConfig struct {
	MaxFaces      int `toml:"max_faces"`
	MaxGlyphBytes int `toml:"max_glyph_bytes"`
	MaxGlyphs     int `toml:"max_glyphs"`
}

// FontConfig replaces the faces of a family with font files. Each file is
// a path or a system font name. Missing variants use Regular.
type FontConfig struct {
	Family     string `toml:"family"`
	Regular    string `toml:"regular"`
	Bold       string `toml:"bold"`
	Italic     string `toml:"italic"`
	BoldItalic string `toml:"bold_italic"`
}

// StyleConfig overrides fields of a base text style. Unset fields keep
// the base value.
type StyleConfig struct {
	Family      string   `toml:"family"`
	FontFile    string   `toml:"font_file"`
	FontSize    int      `toml:"font_size"`
	Bold        *bool    `toml:"bold"`
	Italic      *bool    `toml:"italic"`
	Orientation *float64 `toml:"orientation"`

	Color   *[3]float64 `toml:"color"`
	Opacity *float64    `toml:"opacity"`

	Justification         string   `toml:"justification"`
	VerticalJustification string   `toml:"vertical_justification"`
	LineSpacing           *float64 `toml:"line_spacing"`
	LineOffset            *float64 `toml:"line_offset"`

	Shadow       *bool       `toml:"shadow"`
	ShadowOffset *[2]int     `toml:"shadow_offset"`
	ShadowColor  *[3]float64 `toml:"shadow_color"`

	BackgroundColor   *[3]float64 `toml:"background_color"`
	BackgroundOpacity *float64    `toml:"background_opacity"`

	Frame      *bool       `toml:"frame"`
	FrameWidth *int        `toml:"frame_width"`
	FrameColor *[3]float64 `toml:"frame_color"`

	TightBoundingBox *bool `toml:"tight_bounding_box"`
}

// LoadConfig reads a TOML config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ggtext: read config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a TOML config. Unknown keys are rejected.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("%w: config line %d column %d: %v", ErrInvalidArgument, row, col, derr)
		}
		return nil, fmt.Errorf("%w: config: %w", ErrInvalidArgument, err)
	}
	return &cfg, nil
}

// Options converts the config to engine options. Font files are loaded
// here, so a missing file fails early.
func (c *Config) Options() ([]Option, error) {
	var opts []Option
	if c.DPI != 0 {
		opts = append(opts, WithDPI(c.DPI))
	}
	if c.FontEngine != "" {
		if _, err := font.GetEngine(c.FontEngine); err != nil {
			return nil, err
		}
		opts = append(opts, WithFontEngine(c.FontEngine))
	}
	if c.PowerOfTwo {
		opts = append(opts, WithPowerOfTwo(true))
	}
	if c.Reallocate != nil {
		opts = append(opts, WithReallocation(*c.Reallocate))
	}
	if c.Cache.MaxFaces != 0 {
		opts = append(opts, WithMaxFaces(c.Cache.MaxFaces))
	}
	if c.Cache.MaxGlyphBytes != 0 {
		opts = append(opts, WithMaxGlyphBytes(c.Cache.MaxGlyphBytes))
	}
	if c.Cache.MaxGlyphs != 0 {
		opts = append(opts, WithMaxGlyphs(c.Cache.MaxGlyphs))
	}

	if len(c.Fonts) > 0 {
		t := font.DefaultTable().Clone()
		for _, fc := range c.Fonts {
			if err := fc.register(t); err != nil {
				return nil, err
			}
		}
		opts = append(opts, WithFontTable(t))
	}
	return opts, nil
}

func (fc FontConfig) register(t *font.Table) error {
	family, ok := style.ParseFamily(fc.Family)
	if !ok || family == style.FamilyFile {
		return fmt.Errorf("%w: font family %q", ErrInvalidArgument, fc.Family)
	}
	regular, err := font.LoadFile(fc.Regular)
	if err != nil {
		return fmt.Errorf("font family %s: %w", family, err)
	}

	variants := []struct {
		v    font.Variant
		name string
	}{
		{font.Variant{Bold: true}, fc.Bold},
		{font.Variant{Italic: true}, fc.Italic},
		{font.Variant{Bold: true, Italic: true}, fc.BoldItalic},
	}
	t.Set(family, font.Variant{}, regular)
	for _, vr := range variants {
		data := regular
		if vr.name != "" {
			if data, err = font.LoadFile(vr.name); err != nil {
				return fmt.Errorf("font family %s: %w", family, err)
			}
		}
		t.Set(family, vr.v, data)
	}
	return nil
}

// Apply returns base with the configured fields overridden.
func (sc StyleConfig) Apply(base style.TextStyle) (style.TextStyle, error) {
	s := base
	if sc.Family != "" {
		f, ok := style.ParseFamily(sc.Family)
		if !ok {
			return base, fmt.Errorf("%w: font family %q", ErrInvalidArgument, sc.Family)
		}
		s.Family = f
	}
	if sc.FontFile != "" {
		s.FontFile = sc.FontFile
		if sc.Family == "" {
			s.Family = style.FamilyFile
		}
	}
	if sc.FontSize != 0 {
		s.FontSize = sc.FontSize
	}
	setBool(&s.Bold, sc.Bold)
	setBool(&s.Italic, sc.Italic)
	setFloat(&s.Orientation, sc.Orientation)
	setRGB(&s.Color, sc.Color)
	setFloat(&s.Opacity, sc.Opacity)

	if sc.Justification != "" {
		j, ok := style.ParseJustification(sc.Justification)
		if !ok {
			return base, fmt.Errorf("%w: justification %q", ErrInvalidArgument, sc.Justification)
		}
		s.Justification = j
	}
	if sc.VerticalJustification != "" {
		j, ok := style.ParseVerticalJustification(sc.VerticalJustification)
		if !ok {
			return base, fmt.Errorf("%w: vertical justification %q", ErrInvalidArgument, sc.VerticalJustification)
		}
		s.VerticalJustification = j
	}
	setFloat(&s.LineSpacing, sc.LineSpacing)
	setFloat(&s.LineOffset, sc.LineOffset)

	setBool(&s.Shadow, sc.Shadow)
	if sc.ShadowOffset != nil {
		s.ShadowOffset = image.Pt(sc.ShadowOffset[0], sc.ShadowOffset[1])
	}
	setRGB(&s.ShadowColor, sc.ShadowColor)
	setRGB(&s.BackgroundColor, sc.BackgroundColor)
	setFloat(&s.BackgroundOpacity, sc.BackgroundOpacity)
	setBool(&s.Frame, sc.Frame)
	if sc.FrameWidth != nil {
		s.FrameWidth = *sc.FrameWidth
	}
	setRGB(&s.FrameColor, sc.FrameColor)
	setBool(&s.UseTightBoundingBox, sc.TightBoundingBox)

	if err := s.Validate(); err != nil {
		return base, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return s, nil
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setRGB(dst *style.RGB, v *[3]float64) {
	if v != nil {
		*dst = style.RGB{R: v[0], G: v[1], B: v[2]}
	}
}
