package ggtext

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/ggtext/cache"
	"github.com/gogpu/ggtext/fit"
	"github.com/gogpu/ggtext/font"
	"github.com/gogpu/ggtext/layout"
	"github.com/gogpu/ggtext/path"
	"github.com/gogpu/ggtext/raster"
	"github.com/gogpu/ggtext/style"
)

// Engine measures, renders and vectorizes styled text.
//
// An Engine owns its face and glyph caches. It is safe for concurrent use.
type Engine struct {
	reg    *cache.Registry
	dpi    int
	policy raster.Policy
	logger *slog.Logger
}

// Metrics is the geometry of a measured text.
type Metrics struct {
	// BBox is {xmin, xmax, ymin, ymax} in pixels, Y up.
	BBox [4]int

	// Dims is the pixel size RenderToPixels produces for the text.
	Dims [2]int

	// TL, TR, BL and BR are the corners of the rotated text block,
	// including background and frame padding.
	TL, TR, BL, BR image.Point

	// LineHeight and LineFeed are the reference line height and the
	// baseline to baseline distance.
	LineHeight, LineFeed int

	// Lines holds the origin of each line's first glyph.
	Lines []image.Point
}

// New creates an engine.
func New(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.dpi <= 0 {
		return nil, fmt.Errorf("%w: dpi %d", ErrInvalidArgument, cfg.dpi)
	}
	if cfg.logger == nil {
		cfg.logger = Logger()
	}

	fe, err := font.GetEngine(cfg.engineName)
	if err != nil {
		return nil, err
	}
	reg, err := cache.NewRegistry(cache.Config{
		MaxFaces:      cfg.maxFaces,
		MaxGlyphBytes: cfg.maxGlyphBytes,
		MaxGlyphs:     cfg.maxGlyphs,
		Engine:        fe,
		Table:         cfg.table,
		Logger:        cfg.logger,
	})
	if err != nil {
		return nil, err
	}

	return &Engine{
		reg: reg,
		dpi: cfg.dpi,
		policy: raster.Policy{
			PowerOfTwo: cfg.powerOfTwo,
			Reallocate: cfg.reallocate,
		},
		logger: cfg.logger,
	}, nil
}

// Registry returns the caches shared by the engine's operations.
func (e *Engine) Registry() *cache.Registry { return e.reg }

// DPI returns the engine resolution.
func (e *Engine) DPI() int { return e.dpi }

// runes normalizes text to NFC and returns its code points.
func runes(text string) []rune {
	return []rune(norm.NFC.String(text))
}

// layout lays out text, mapping argument errors to ErrInvalidArgument.
func (e *Engine) layout(s style.TextStyle, text []rune) (*layout.Result, error) {
	if len(text) == 0 {
		return nil, fmt.Errorf("%w: empty text", ErrInvalidArgument)
	}
	res, err := layout.Layout(e.reg, s, text, e.dpi)
	if errors.Is(err, style.ErrInvalidStyle) || errors.Is(err, layout.ErrEmptyText) {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return res, err
}

// Measure returns the bounding box {xmin, xmax, ymin, ymax} of text
// rendered with style s, relative to the anchor point, in pixels with Y
// pointing up.
func (e *Engine) Measure(s style.TextStyle, text string) ([4]int, error) {
	res, err := e.layout(s, runes(text))
	if err != nil {
		return [4]int{}, err
	}
	return res.BBox, nil
}

// Metrics returns the full geometry of text rendered with style s.
func (e *Engine) Metrics(s style.TextStyle, text string) (Metrics, error) {
	res, err := e.layout(s, runes(text))
	if err != nil {
		return Metrics{}, err
	}
	m := Metrics{
		BBox:       res.BBox,
		Dims:       res.Dims(),
		TL:         res.TL,
		TR:         res.TR,
		BL:         res.BL,
		BR:         res.BR,
		LineHeight: res.Height,
		LineFeed:   res.LineFeed,
	}
	for _, l := range res.Lines {
		m.Lines = append(m.Lines, l.Origin)
	}
	return m, nil
}

// RenderToPixels renders text into buf and returns the text dimensions.
// buf is resized and cleared as needed. Empty text resizes buf to zero
// and returns zero dimensions.
func (e *Engine) RenderToPixels(s style.TextStyle, text string, buf *Pixmap) ([2]int, error) {
	if buf == nil {
		return [2]int{}, fmt.Errorf("%w: nil buffer", ErrInvalidArgument)
	}
	rs := runes(text)
	if len(rs) == 0 {
		buf.Resize(0, 0)
		return [2]int{}, nil
	}

	res, err := e.layout(s, rs)
	if err != nil {
		return [2]int{}, err
	}
	return raster.Render(e.reg, res, s, e.dpi, buf, e.policy)
}

// TextToPath returns the outline of text as a path anchored at the
// origin according to the style's justification.
func (e *Engine) TextToPath(s style.TextStyle, text string) (*path.Path, error) {
	res, err := e.layout(s, runes(text))
	if err != nil {
		return nil, err
	}
	return path.Extract(e.reg, res, s, e.dpi)
}

// FitFontSize returns the font size at which text fits in a w x h pixel
// rectangle, 0 if w or h is not positive and -1 on failure.
func (e *Engine) FitFontSize(text string, s style.TextStyle, w, h int) int {
	size := fit.Fit(e.reg, runes(text), s, w, h, e.dpi)
	if size < 0 {
		e.logger.Debug("font size fit failed", "text", text, "width", w, "height", h)
	}
	return size
}

// StyleToKey returns the cache key of s and remembers s so that
// KeyToStyle can recover it.
func (e *Engine) StyleToKey(s style.TextStyle) style.Key {
	return e.reg.Keys.Remember(s)
}

// KeyToStyle returns the first style remembered for key.
func (e *Engine) KeyToStyle(key style.Key) (style.TextStyle, error) {
	s, ok := e.reg.Keys.Lookup(key)
	if !ok {
		return style.TextStyle{}, fmt.Errorf("%w: %v", ErrUnknownKey, key)
	}
	return s, nil
}

// Purge drops every cached face and glyph and forgets remembered keys.
func (e *Engine) Purge() {
	e.reg.Purge()
}
