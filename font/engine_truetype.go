package font

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggtext/outline"
)

// TrueTypeEngineName is the registry name of the freetype engine.
const TrueTypeEngineName = "truetype"

// truetypeEngine implements Engine using github.com/golang/freetype.
// It reads TrueType (glyf) outlines only; CFF fonts are rejected.
type truetypeEngine struct{}

// Name implements Engine.Name.
func (truetypeEngine) Name() string { return TrueTypeEngineName }

// Load implements Engine.Load.
func (truetypeEngine) Load(data []byte) (Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	face := &truetypeFace{font: f}
	face.kerning = probeKerning(face, int(f.FUnitsPerEm()))
	return face, nil
}

// truetypeFace implements Face using truetype.Font, which is read-only
// after parsing.
type truetypeFace struct {
	font    *truetype.Font
	kerning bool
}

// GlyphIndex implements Face.GlyphIndex.
func (f *truetypeFace) GlyphIndex(r rune) GlyphIndex {
	return GlyphIndex(f.font.Index(r))
}

// HasKerning implements Face.HasKerning.
func (f *truetypeFace) HasKerning() bool {
	return f.kerning
}

// Kern implements Face.Kern.
func (f *truetypeFace) Kern(ppem fixed.Int26_6, left, right GlyphIndex) fixed.Int26_6 {
	return f.font.Kern(ppem, truetype.Index(left), truetype.Index(right))
}

// LoadOutline implements Face.LoadOutline. The glyf on/off-curve flags are
// carried through unchanged, so consecutive off-curve points keep their
// compact encoding.
func (f *truetypeFace) LoadOutline(ppem fixed.Int26_6, gi GlyphIndex) ([]outline.Contour, fixed.Int26_6, error) {
	var gb truetype.GlyphBuf
	if err := gb.Load(f.font, ppem, truetype.Index(gi), xfont.HintingNone); err != nil {
		return nil, 0, fmt.Errorf("font: load glyph: %w", err)
	}

	contours := make([]outline.Contour, 0, len(gb.Ends))
	start := 0
	for _, end := range gb.Ends {
		c := make(outline.Contour, 0, end-start)
		for _, p := range gb.Points[start:end] {
			tag := outline.TagConic
			if p.Flags&0x01 != 0 {
				tag = outline.TagOn
			}
			c = append(c, outline.ContourPoint{
				Point: outline.Point{X: fromFixed(p.X), Y: fromFixed(p.Y)},
				Tag:   tag,
			})
		}
		if len(c) > 0 {
			contours = append(contours, c)
		}
		start = end
	}
	return contours, gb.AdvanceWidth, nil
}
