package raster

import "errors"

var (
	// ErrBufferTooSmall is returned when the pixmap cannot hold the text
	// and reallocation is disabled.
	ErrBufferTooSmall = errors.New("raster: buffer too small")

	// ErrNilBuffer is returned when Render is given no pixmap.
	ErrNilBuffer = errors.New("raster: nil buffer")
)
