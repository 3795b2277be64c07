package font

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/ggtext/outline"
)

// rasterize fills the bitmap fields of g with the coverage of contours.
//
// The bitmap covers the control box of the outline snapped outwards to
// whole pixels. Left is the offset of the first column from the pen and
// Top the height of the top edge above the baseline, so that the topmost
// pixel row sits at y = Top-1.
func rasterize(g *Glyph, contours []outline.Contour) {
	box := outline.ControlBox(contours)
	if box.Empty() {
		return
	}

	left := int(math.Floor(box.MinX))
	bottom := int(math.Floor(box.MinY))
	right := int(math.Ceil(box.MaxX))
	top := int(math.Ceil(box.MaxY))

	w, h := right-left, top-bottom
	g.Left, g.Top = left, top
	if w <= 0 || h <= 0 {
		return
	}

	var p outline.Path
	outline.AppendContours(&p, contours, 0, 0)

	// Device space is Y-down with the origin at the bitmap's top-left.
	dev := func(pt outline.Point) (float32, float32) {
		return float32(pt.X - float64(left)), float32(float64(top) - pt.Y)
	}

	z := vector.NewRasterizer(w, h)
	z.DrawOp = draw.Src
	for _, s := range p.Segments() {
		switch s.Op {
		case outline.OpMoveTo:
			z.ClosePath()
			z.MoveTo(dev(s.Points[0]))
		case outline.OpLineTo:
			z.LineTo(dev(s.Points[0]))
		case outline.OpConicTo:
			bx, by := dev(s.Points[0])
			cx, cy := dev(s.Points[1])
			z.QuadTo(bx, by, cx, cy)
		case outline.OpCubicTo:
			bx, by := dev(s.Points[0])
			cx, cy := dev(s.Points[1])
			dx, dy := dev(s.Points[2])
			z.CubeTo(bx, by, cx, cy, dx, dy)
		}
	}
	z.ClosePath()

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})

	g.Width, g.Height = w, h
	g.Stride = mask.Stride
	g.Coverage = mask.Pix
}
