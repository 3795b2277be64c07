package ggtext

import (
	"log/slog"

	"github.com/gogpu/ggtext/font"
)

// DefaultDPI is the resolution used to convert point sizes to pixels.
const DefaultDPI = 72

// Option configures an Engine.
type Option func(*config)

// config holds Engine configuration.
type config struct {
	dpi           int
	maxFaces      int
	maxGlyphBytes int
	maxGlyphs     int
	engineName    string
	table         *font.Table
	powerOfTwo    bool
	reallocate    bool
	logger        *slog.Logger
}

// defaultConfig returns the default engine configuration.
func defaultConfig() config {
	return config{
		dpi:        DefaultDPI,
		engineName: font.DefaultEngineName,
		reallocate: true,
	}
}

// WithDPI sets the resolution used to convert point sizes to pixels.
func WithDPI(dpi int) Option {
	return func(c *config) {
		c.dpi = dpi
	}
}

// WithMaxFaces bounds the number of cached font faces.
func WithMaxFaces(n int) Option {
	return func(c *config) {
		c.maxFaces = n
	}
}

// WithMaxGlyphBytes bounds the memory held by cached glyphs.
func WithMaxGlyphBytes(n int) Option {
	return func(c *config) {
		c.maxGlyphBytes = n
	}
}

// WithMaxGlyphs bounds the number of cached glyphs.
func WithMaxGlyphs(n int) Option {
	return func(c *config) {
		c.maxGlyphs = n
	}
}

// WithFontEngine selects the font engine by registry name: "sfnt"
// (default), "truetype" or "gotext".
func WithFontEngine(name string) Option {
	return func(c *config) {
		c.engineName = name
	}
}

// WithFontTable replaces the embedded font table.
func WithFontTable(t *font.Table) Option {
	return func(c *config) {
		c.table = t
	}
}

// WithPowerOfTwo makes RenderToPixels round pixmap dimensions up to
// powers of two.
func WithPowerOfTwo(enabled bool) Option {
	return func(c *config) {
		c.powerOfTwo = enabled
	}
}

// WithReallocation controls whether RenderToPixels may resize the pixmap.
// It is enabled by default.
func WithReallocation(enabled bool) Option {
	return func(c *config) {
		c.reallocate = enabled
	}
}

// WithLogger sets the engine logger. The default is the package logger
// at the time the engine is created.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
