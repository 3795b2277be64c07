package ggtext

import (
	"errors"

	"github.com/gogpu/ggtext/cache"
	"github.com/gogpu/ggtext/font"
	"github.com/gogpu/ggtext/raster"
)

var (
	// ErrInvalidArgument is returned for empty text, an invalid style or
	// a nil buffer.
	ErrInvalidArgument = errors.New("ggtext: invalid argument")

	// ErrUnknownKey is returned by KeyToStyle for a key that was never
	// produced by StyleToKey.
	ErrUnknownKey = errors.New("ggtext: unknown style key")

	// ErrGlyphNotFound is logged, not returned, when a character has no
	// glyph in its face.
	ErrGlyphNotFound = font.ErrGlyphNotFound

	// ErrBufferTooSmall is returned by RenderToPixels when the pixmap is
	// too small and reallocation is disabled.
	ErrBufferTooSmall = raster.ErrBufferTooSmall

	// ErrCacheExhausted is absorbed by the glyph cache.
	ErrCacheExhausted = cache.ErrCacheExhausted
)

// FaceCreationError is returned when the font engine rejects font data.
type FaceCreationError = font.FaceCreationError
