package cache

import (
	"log/slog"

	"github.com/gogpu/ggtext/font"
	"github.com/gogpu/ggtext/style"
)

// Config configures a Registry. Zero fields select the defaults.
type Config struct {
	// MaxFaces bounds the FaceCache. Default: DefaultMaxFaces
	MaxFaces int

	// MaxGlyphBytes bounds the resident GlyphCache bytes.
	// Default: DefaultMaxGlyphBytes
	MaxGlyphBytes int

	// MaxGlyphs bounds the GlyphCache entry count. Default: DefaultMaxGlyphs
	MaxGlyphs int

	// Engine builds faces from font bytes. Default: font.GetEngine("")
	Engine font.Engine

	// Table supplies embedded font bytes. Default: font.DefaultTable()
	Table *font.Table

	// Logger receives cache diagnostics. Default: discard
	Logger *slog.Logger
}

// Registry bundles the caches and the style key table shared by every
// text operation.
type Registry struct {
	Keys   *style.KeyTable
	Faces  *FaceCache
	Glyphs *GlyphCache

	logger *slog.Logger
}

// NewRegistry creates a registry with empty caches.
func NewRegistry(cfg Config) (*Registry, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	faces, err := NewFaceCache(cfg.MaxFaces, cfg.Engine, cfg.Table, logger)
	if err != nil {
		return nil, err
	}
	glyphs := NewGlyphCache(faces, GlyphCacheConfig{
		MaxBytes:  cfg.MaxGlyphBytes,
		MaxGlyphs: cfg.MaxGlyphs,
	}, logger)

	return &Registry{
		Keys:   style.NewKeyTable(),
		Faces:  faces,
		Glyphs: glyphs,
		logger: logger,
	}, nil
}

// Logger returns the registry logger. It is never nil.
func (r *Registry) Logger() *slog.Logger {
	return r.logger
}

// Purge drops every cached face and glyph and forgets every remembered key.
func (r *Registry) Purge() {
	r.Glyphs.Purge()
	r.Faces.Purge()
	r.Keys.Reset()
}
