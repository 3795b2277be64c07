package ggtext

import "github.com/gogpu/ggtext/raster"

// Pixmap is the RGBA target of RenderToPixels. Row 0 is the top of the
// rendered text.
type Pixmap = raster.Pixmap

// NewPixmap creates a pixmap with the given dimensions. A zero sized
// pixmap is grown on first render.
func NewPixmap(width, height int) *Pixmap {
	return raster.NewPixmap(width, height)
}
