package font

import (
	"errors"
	"fmt"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggtext/outline"
)

// SFNTEngineName is the registry name of the golang.org/x/image engine.
const SFNTEngineName = "sfnt"

// sfntEngine implements Engine using golang.org/x/image/font/opentype.
type sfntEngine struct{}

// Name implements Engine.Name.
func (sfntEngine) Name() string { return SFNTEngineName }

// Load implements Engine.Load.
func (sfntEngine) Load(data []byte) (Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	face := &sfntFace{font: f}
	face.buffers.New = func() any { return new(sfnt.Buffer) }
	face.kerning = probeKerning(face, int(f.UnitsPerEm()))
	return face, nil
}

// sfntFace implements Face using sfnt.Font.
// sfnt.Font is safe for concurrent use given distinct buffers.
type sfntFace struct {
	font    *sfnt.Font
	buffers sync.Pool
	kerning bool
}

func (f *sfntFace) buffer() *sfnt.Buffer {
	return f.buffers.Get().(*sfnt.Buffer)
}

// GlyphIndex implements Face.GlyphIndex.
func (f *sfntFace) GlyphIndex(r rune) GlyphIndex {
	buf := f.buffer()
	defer f.buffers.Put(buf)

	idx, err := f.font.GlyphIndex(buf, r)
	if err != nil {
		return 0
	}
	return GlyphIndex(idx)
}

// HasKerning implements Face.HasKerning.
func (f *sfntFace) HasKerning() bool {
	return f.kerning
}

// Kern implements Face.Kern.
func (f *sfntFace) Kern(ppem fixed.Int26_6, left, right GlyphIndex) fixed.Int26_6 {
	buf := f.buffer()
	defer f.buffers.Put(buf)

	k, err := f.font.Kern(buf, sfnt.GlyphIndex(left), sfnt.GlyphIndex(right), ppem, xfont.HintingNone)
	if err != nil {
		return 0
	}
	return k
}

// LoadOutline implements Face.LoadOutline.
func (f *sfntFace) LoadOutline(ppem fixed.Int26_6, gi GlyphIndex) ([]outline.Contour, fixed.Int26_6, error) {
	buf := f.buffer()
	defer f.buffers.Put(buf)

	adv, err := f.font.GlyphAdvance(buf, sfnt.GlyphIndex(gi), ppem, xfont.HintingNone)
	if err != nil {
		return nil, 0, fmt.Errorf("font: glyph advance: %w", err)
	}

	segs, err := f.font.LoadGlyph(buf, sfnt.GlyphIndex(gi), ppem, nil)
	if errors.Is(err, sfnt.ErrColoredGlyph) {
		// Color glyphs have no outline; they still advance the pen.
		return nil, adv, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("font: load glyph: %w", err)
	}

	var b contourBuilder
	for _, s := range segs {
		// sfnt segments are Y-down 26.6 pixels.
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			b.moveTo(pointFrom26_6(s.Args[0]))
		case sfnt.SegmentOpLineTo:
			b.lineTo(pointFrom26_6(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			b.quadTo(pointFrom26_6(s.Args[0]), pointFrom26_6(s.Args[1]))
		case sfnt.SegmentOpCubeTo:
			b.cubeTo(pointFrom26_6(s.Args[0]), pointFrom26_6(s.Args[1]), pointFrom26_6(s.Args[2]))
		}
	}
	return b.finish(), adv, nil
}

// pointFrom26_6 converts a Y-down fixed point to a Y-up pixel point.
func pointFrom26_6(p fixed.Point26_6) outline.Point {
	return outline.Point{X: fromFixed(p.X), Y: -fromFixed(p.Y)}
}
