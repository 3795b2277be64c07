package raster

import (
	"image"
	"math"

	"github.com/gogpu/ggtext/layout"
)

// edge is a quad side from P to P+V.
type edge struct {
	p, v image.Point
}

// xAt returns the x coordinate where the edge crosses row y. It reports
// false for horizontal edges and rows outside the edge.
func (e edge) xAt(y int) (int, bool) {
	if e.v.Y == 0 {
		return 0, false
	}
	t := float64(y-e.p.Y) / float64(e.v.Y)
	if t < 0 || t > 1 {
		return 0, false
	}
	return e.p.X + int(math.Floor(float64(e.v.X)*t+0.5)), true
}

// quad is the rotated text block of a layout.
type quad struct {
	tl, tr, bl, br image.Point
	edges          [4]edge
}

func newQuad(res *layout.Result) quad {
	return quad{
		tl: res.TL, tr: res.TR, bl: res.BL, br: res.BR,
		edges: [4]edge{
			{res.TL, res.DX}, // top
			{res.BL, res.DX}, // bottom
			{res.BL, res.DY}, // left
			{res.BR, res.DY}, // right
		},
	}
}

// yRange returns the lowest and highest rows touched by the quad.
func (q quad) yRange() (int, int) {
	return min(q.tl.Y, q.tr.Y, q.bl.Y, q.br.Y), max(q.tl.Y, q.tr.Y, q.bl.Y, q.br.Y)
}

// scanRange returns the columns of row y inside the quad.
func (q quad) scanRange(y int) (xMin, xMax int, ok bool) {
	xMin = max(q.tl.X, q.tr.X, q.bl.X, q.br.X)
	xMax = min(q.tl.X, q.tr.X, q.bl.X, q.br.X)
	for _, e := range q.edges {
		if x, hit := e.xAt(y); hit {
			xMin = min(xMin, x)
			xMax = max(xMax, x)
			ok = true
		}
	}
	return xMin, xMax, ok
}
