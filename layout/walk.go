package layout

import (
	"errors"
	"image"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggtext/cache"
	"github.com/gogpu/ggtext/font"
	"github.com/gogpu/ggtext/style"
)

// VisitFunc is called for every glyph placed on a line. pen is the glyph
// origin after kerning.
type VisitFunc func(g *font.Glyph, pen image.Point)

// Walker places the glyphs of a line. It is shared by measuring, pixel
// rendering and path extraction so that all three agree on glyph positions.
type Walker struct {
	reg  *cache.Registry
	key  style.Key
	file string
	ppem fixed.Int26_6
	form font.Form
	face *font.TransformedFace
}

// NewWalker returns a walker for style s at dpi producing glyphs of the
// given form.
func NewWalker(reg *cache.Registry, s style.TextStyle, dpi int, form font.Form) (*Walker, error) {
	if !s.Family.Encodable() {
		reg.Logger().Debug("family substituted", "family", int(s.Family), "using", style.FamilySans)
	}
	key := style.Encode(s)
	face, err := reg.Faces.Face(key, s.FontFile)
	if err != nil {
		return nil, err
	}
	return &Walker{
		reg:  reg,
		key:  key,
		file: s.FontFile,
		ppem: font.PixelSize(s.FontSize, dpi),
		form: form,
		face: face,
	}, nil
}

// Walk visits the glyphs of line starting at origin and returns the
// unrotated advance width of the line.
//
// A rune with no glyph is skipped without advancing the pen and breaks
// the kerning pair around it.
func (w *Walker) Walk(line []rune, origin image.Point, visit VisitFunc) (int, error) {
	pen := origin
	width := 0
	kerning := w.face.HasKerning()

	var prev font.GlyphIndex
	for _, r := range line {
		g, err := w.reg.Glyphs.Glyph(w.key, w.file, w.ppem, r, w.form)
		if errors.Is(err, font.ErrGlyphNotFound) {
			w.reg.Logger().Debug("glyph skipped", "rune", string(r))
			prev = 0
			continue
		}
		if err != nil {
			return 0, err
		}

		if kerning && prev != 0 {
			if d := w.face.Kern(w.ppem, prev, g.Index); d != 0 {
				// Width takes the unrotated delta, the pen the rotated one.
				width += d.Floor()
				v := w.face.Matrix().ApplyFixed(fixed.Point26_6{X: d})
				pen.X += v.X.Floor()
				pen.Y += v.Y.Floor()
			}
		}
		prev = g.Index

		if visit != nil {
			visit(g, pen)
		}

		pen.X += g.Advance.X.Round()
		pen.Y += g.Advance.Y.Round()
		width += g.AdvanceX.Round()
	}
	return width, nil
}
