package font

import (
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggtext/outline"
)

// contourBuilder turns a move/line/quad/cube segment stream into tagged
// contours: quadratic controls become conic points and cubic controls
// become cubic points.
type contourBuilder struct {
	contours []outline.Contour
	cur      outline.Contour
}

func (b *contourBuilder) moveTo(p outline.Point) {
	b.closeContour()
	b.cur = append(b.cur, outline.ContourPoint{Point: p, Tag: outline.TagOn})
}

func (b *contourBuilder) lineTo(p outline.Point) {
	b.cur = append(b.cur, outline.ContourPoint{Point: p, Tag: outline.TagOn})
}

func (b *contourBuilder) quadTo(c, p outline.Point) {
	b.cur = append(b.cur,
		outline.ContourPoint{Point: c, Tag: outline.TagConic},
		outline.ContourPoint{Point: p, Tag: outline.TagOn},
	)
}

func (b *contourBuilder) cubeTo(c1, c2, p outline.Point) {
	b.cur = append(b.cur,
		outline.ContourPoint{Point: c1, Tag: outline.TagCubic},
		outline.ContourPoint{Point: c2, Tag: outline.TagCubic},
		outline.ContourPoint{Point: p, Tag: outline.TagOn},
	)
}

// closeContour ends the current contour. A trailing on-curve point that
// repeats the start is dropped because contours close implicitly.
func (b *contourBuilder) closeContour() {
	n := len(b.cur)
	if n == 0 {
		return
	}
	if n > 1 && b.cur[n-1].Tag == outline.TagOn && b.cur[n-1].Point == b.cur[0].Point {
		b.cur = b.cur[:n-1]
	}
	b.contours = append(b.contours, b.cur)
	b.cur = nil
}

func (b *contourBuilder) finish() []outline.Contour {
	b.closeContour()
	return b.contours
}

func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Round(v * 64))
}

// PixelSize returns the pixels per em of a point size at dpi, in 26.6.
func PixelSize(points, dpi int) fixed.Int26_6 {
	return fixed.Int26_6(points * dpi * 64 / 72)
}
