package raster

import (
	"image"
	"math/bits"

	"github.com/gogpu/ggtext/cache"
	"github.com/gogpu/ggtext/font"
	"github.com/gogpu/ggtext/layout"
	"github.com/gogpu/ggtext/style"
)

// Policy controls how Render sizes the target pixmap.
type Policy struct {
	// PowerOfTwo rounds both pixmap dimensions up to a power of two.
	PowerOfTwo bool

	// Reallocate allows Render to resize the pixmap. Without it a pixmap
	// smaller than the text is an error and a larger one is reused as is.
	Reallocate bool
}

// DefaultPolicy reallocates as needed and keeps exact dimensions.
func DefaultPolicy() Policy {
	return Policy{Reallocate: true}
}

// target maps layout coordinates to pixmap pixels.
type target struct {
	pm *Pixmap
	// x0 and y0 are the layout coordinates of pixel (0, 0).
	x0, y0 int
	// xMax and yMin are the last column and row in layout coordinates.
	xMax, yMin int
}

func (t *target) pixel(x, y int) (int, int) {
	return x - t.x0, t.y0 - y
}

// Render draws the text of res with style s into pm and returns the text
// dimensions. The pixmap is resized and cleared according to pol.
func Render(reg *cache.Registry, res *layout.Result, s style.TextStyle, dpi int, pm *Pixmap, pol Policy) ([2]int, error) {
	if pm == nil {
		return [2]int{}, ErrNilBuffer
	}
	dims := res.Dims()
	if err := prepare(pm, dims, pol); err != nil {
		return [2]int{}, err
	}

	t := &target{
		pm:   pm,
		x0:   res.BBox[0],
		y0:   res.BBox[3],
		xMax: res.BBox[0] + pm.Width() - 1,
		yMin: res.BBox[3] - pm.Height() + 1,
	}
	drawBackground(t, res, s)

	w, err := layout.NewWalker(reg, s, dpi, font.FormBitmap)
	if err != nil {
		return [2]int{}, err
	}
	alpha := style.Alpha(s.Opacity)

	if s.Shadow {
		fg := color4(s.ShadowColor, alpha)
		if err := drawText(t, w, res, s.ShadowOffset, fg); err != nil {
			return [2]int{}, err
		}
	}
	if err := drawText(t, w, res, image.Point{}, color4(s.Color, alpha)); err != nil {
		return [2]int{}, err
	}
	return dims, nil
}

// prepare sizes and clears pm for text of the given dimensions.
func prepare(pm *Pixmap, dims [2]int, pol Policy) error {
	w, h := dims[0], dims[1]
	if pol.PowerOfTwo {
		w, h = nextPowerOfTwo(w), nextPowerOfTwo(h)
	}

	small := pm.Width() < w || pm.Height() < h
	wasteful := pm.Width()*pm.Height() > 2*w*h
	switch {
	case (small || wasteful) && pol.Reallocate:
		pm.Resize(w, h)
		return nil
	case small:
		return ErrBufferTooSmall
	}
	pm.Clear()
	return nil
}

// nextPowerOfTwo returns the smallest power of two >= n.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}

func color4(c style.RGB, alpha uint8) [4]uint8 {
	b := c.Bytes()
	return [4]uint8{b[0], b[1], b[2], alpha}
}

// drawBackground fills the rotated text block. Pixels within the frame
// width of the scan range edges take the frame color.
func drawBackground(t *target, res *layout.Result, s style.TextStyle) {
	bg := color4(s.BackgroundColor, style.Alpha(s.BackgroundOpacity))
	var frameAlpha uint8
	if s.Frame {
		frameAlpha = 255
	}
	fr := color4(s.FrameColor, frameAlpha)
	if bg[3] == 0 && fr[3] == 0 {
		return
	}

	q := newQuad(res)
	yMin, yMax := q.yRange()
	yMin = clamp(yMin, t.yMin, t.y0)
	yMax = clamp(yMax, t.yMin, t.y0)
	fw := s.FrameWidth

	for y := yMin; y <= yMax; y++ {
		xMin, xMax, ok := q.scanRange(y)
		if !ok {
			continue
		}
		xMin = clamp(xMin, t.x0, t.xMax)
		xMax = clamp(xMax, t.x0, t.xMax)

		px0, py := t.pixel(xMin, y)
		px1, _ := t.pixel(xMax, y)
		switch {
		case fr[3] == 0:
			t.pm.FillSpan(px0, px1, py, bg)
		case y < yMin+fw || y > yMax-fw:
			t.pm.FillSpan(px0, px1, py, fr)
		default:
			t.pm.FillSpan(px0, px1, py, bg)
			t.pm.FillSpan(px0, min(px1, px0+fw-1), py, fr)
			t.pm.FillSpan(max(px0, px1-fw+1), px1, py, fr)
		}
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

// drawText composites every line of res with origins shifted by offset.
func drawText(t *target, w *layout.Walker, res *layout.Result, offset image.Point, fg [4]uint8) error {
	for _, line := range res.Lines {
		_, err := w.Walk(line.Runes, line.Origin.Add(offset), func(g *font.Glyph, pen image.Point) {
			drawGlyph(t, g, pen, fg)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// drawGlyph composites the coverage of g with its origin at pen.
func drawGlyph(t *target, g *font.Glyph, pen image.Point, fg [4]uint8) {
	if g.Width == 0 || g.Height == 0 {
		return
	}
	fgA := float32(fg[3]) / 255

	left := pen.X + g.Left
	top := pen.Y + g.Top - 1
	for j := range g.Height {
		for i := range g.Width {
			cov := g.CoverageAt(i, j)
			if cov == 0 {
				continue
			}
			px, py := t.pixel(left+i, top-j)
			dst := t.pm.Pixel(px, py)
			t.pm.SetPixel(px, py, blend(dst, fg, fgA, cov))
		}
	}
}

// blend composites coverage cov of color fg over dst. A transparent dst
// takes the foreground color with alpha scaled by the coverage.
func blend(dst, fg [4]uint8, fgA float32, cov uint8) [4]uint8 {
	if dst[3] == 0 {
		return [4]uint8{fg[0], fg[1], fg[2], uint8(float32(cov) * fgA)}
	}
	val := float32(cov) / 255
	bgA := float32(dst[3]) / 255
	f := fgA * val
	b := 1 - f
	return [4]uint8{
		uint8(b*float32(dst[0]) + f*float32(fg[0])),
		uint8(b*float32(dst[1]) + f*float32(fg[1])),
		uint8(b*float32(dst[2]) + f*float32(fg[2])),
		uint8(255 * (f + bgA*b)),
	}
}
