// Package path converts laid out text into a vector path.
//
// Glyph outlines are fetched through the glyph cache in outline form,
// placed at the same pen positions the pixel renderer uses and decomposed
// into move, line, conic and cubic segments. The finished path is then
// anchored at the origin according to the style's justification.
package path

import (
	"image"

	"github.com/gogpu/ggtext/cache"
	"github.com/gogpu/ggtext/font"
	"github.com/gogpu/ggtext/layout"
	"github.com/gogpu/ggtext/outline"
	"github.com/gogpu/ggtext/style"
)

// Path is a vector path in pixel units with Y pointing up.
type Path = outline.Path

// Extract builds the path of the text in res rendered with style s.
func Extract(reg *cache.Registry, res *layout.Result, s style.TextStyle, dpi int) (*Path, error) {
	w, err := layout.NewWalker(reg, s, dpi, font.FormOutline)
	if err != nil {
		return nil, err
	}

	p := outline.NewPath()
	for _, line := range res.Lines {
		_, err := w.Walk(line.Runes, line.Origin, func(g *font.Glyph, pen image.Point) {
			outline.AppendContours(p, g.Contours, float64(pen.X), float64(pen.Y))
		})
		if err != nil {
			return nil, err
		}
	}

	Anchor(p, s.Justification, s.VerticalJustification)
	return p, nil
}

// Anchor translates p so that the edge or center of its bounds selected
// by h and v lies on the origin. An empty path is left unchanged.
func Anchor(p *Path, h style.Justification, v style.VerticalJustification) {
	b := p.Bounds()
	if b.Empty() {
		return
	}

	var dx, dy float64
	switch h {
	case style.JustifyCenter:
		dx = -(b.MinX + b.MaxX) / 2
	case style.JustifyRight:
		dx = -b.MaxX
	default:
		dx = -b.MinX
	}
	switch v {
	case style.JustifyMiddle:
		dy = -(b.MinY + b.MaxY) / 2
	case style.JustifyTop:
		dy = -b.MaxY
	default:
		dy = -b.MinY
	}
	p.Translate(dx, dy)
}
