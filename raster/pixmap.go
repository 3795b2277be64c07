package raster

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

// Pixmap is a rectangular buffer of non-premultiplied RGBA pixels.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // RGBA format, 4 bytes per pixel
}

// NewPixmap creates a new pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	p := &Pixmap{}
	p.Resize(width, height)
	return p
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data, row by row from the top.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Resize reallocates the pixmap to width x height. The contents are
// cleared.
func (p *Pixmap) Resize(width, height int) {
	p.width = max(width, 0)
	p.height = max(height, 0)
	p.data = make([]uint8, p.width*p.height*4)
}

// Pixel returns the RGBA bytes of a pixel, or zero outside the pixmap.
func (p *Pixmap) Pixel(x, y int) [4]uint8 {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return [4]uint8{}
	}
	i := (y*p.width + x) * 4
	return [4]uint8(p.data[i : i+4])
}

// SetPixel sets the RGBA bytes of a pixel. Out of range writes are
// ignored.
func (p *Pixmap) SetPixel(x, y int, c [4]uint8) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	copy(p.data[i:i+4], c[:])
}

// FillSpan sets pixels x0..x1 inclusive of row y to c.
func (p *Pixmap) FillSpan(x0, x1, y int, c [4]uint8) {
	if y < 0 || y >= p.height {
		return
	}
	x0 = max(x0, 0)
	x1 = min(x1, p.width-1)
	for x := x0; x <= x1; x++ {
		i := (y*p.width + x) * 4
		copy(p.data[i:i+4], c[:])
	}
}

// Clear sets every pixel to transparent black.
func (p *Pixmap) Clear() {
	clear(p.data)
}

// ToImage converts the pixmap to an image.NRGBA sharing no memory.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := png.Encode(f, p.ToImage()); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	c := p.Pixel(x, y)
	return color.NRGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
