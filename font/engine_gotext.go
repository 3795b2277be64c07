package font

import (
	"bytes"
	"fmt"
	"sync"

	gtfont "github.com/go-text/typesetting/font"
	ot "github.com/go-text/typesetting/font/opentype"
	"github.com/go-text/typesetting/font/opentype/tables"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggtext/outline"
)

// GoTextEngineName is the registry name of the go-text engine. Kerning
// comes from the legacy kern table and from GPOS pair adjustment lookups
// (formats 1 and 2) of the "kern" feature. Other GPOS features are not
// applied.
const GoTextEngineName = "gotext"

// gotextEngine implements Engine using github.com/go-text/typesetting.
type gotextEngine struct{}

// Name implements Engine.Name.
func (gotextEngine) Name() string { return GoTextEngineName }

// Load implements Engine.Load.
func (gotextEngine) Load(data []byte) (Face, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFontData
	}
	face, err := gtfont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("font: failed to parse font: %w", err)
	}
	return &gotextFace{face: face, upem: float64(face.Upem()), pairs: kernPairLookups(face.GPOS)}, nil
}

var kernTag = ot.MustNewTag("kern")

// kernPairLookups returns the pair adjustment subtables reachable from the
// GPOS "kern" feature.
func kernPairLookups(gpos gtfont.GPOS) []tables.PairPos {
	seen := make(map[uint16]bool)
	var out []tables.PairPos
	for _, feat := range gpos.Features {
		if feat.Tag != kernTag {
			continue
		}
		for _, li := range feat.LookupListIndices {
			if seen[li] || int(li) >= len(gpos.Lookups) {
				continue
			}
			seen[li] = true
			for _, st := range gpos.Lookups[li].Subtables {
				if pp, ok := st.(tables.PairPos); ok {
					out = append(out, pp)
				}
			}
		}
	}
	return out
}

// pairAdjust returns the horizontal advance adjustment of the first glyph
// in design units.
func pairAdjust(pp tables.PairPos, left, right tables.GlyphID) (int16, bool) {
	idx, ok := pp.Cov().Index(left)
	if !ok {
		return 0, false
	}
	switch data := pp.Data.(type) {
	case tables.PairPosData1:
		if idx >= len(data.PairSets) {
			return 0, false
		}
		rec, ok := data.PairSets[idx].FindGlyph(right)
		if !ok {
			return 0, false
		}
		return rec.ValueRecord1.XAdvance, true
	case tables.PairPosData2:
		c2, ok := data.ClassDef2.Class(right)
		if !ok {
			return 0, false
		}
		c1, _ := data.ClassDef1.Class(left)
		return data.Record(c1, c2).ValueRecord1.XAdvance, true
	}
	return 0, false
}

// gotextFace implements Face using a go-text face. go-text faces cache
// lookups internally and are not safe for concurrent use, so every access
// is serialized.
type gotextFace struct {
	mu   sync.Mutex
	face  *gtfont.Face
	upem  float64
	pairs []tables.PairPos
}

// GlyphIndex implements Face.GlyphIndex.
func (f *gotextFace) GlyphIndex(r rune) GlyphIndex {
	f.mu.Lock()
	defer f.mu.Unlock()

	gid, ok := f.face.NominalGlyph(r)
	if !ok {
		return 0
	}
	return GlyphIndex(gid)
}

// HasKerning implements Face.HasKerning.
func (f *gotextFace) HasKerning() bool {
	if len(f.pairs) > 0 {
		return true
	}
	for _, st := range f.face.Kern {
		if _, ok := st.Data.(gtfont.SimpleKerns); ok {
			return true
		}
	}
	return false
}

// Kern implements Face.Kern.
func (f *gotextFace) Kern(ppem fixed.Int26_6, left, right GlyphIndex) fixed.Int26_6 {
	if left > 0xFFFF || right > 0xFFFF {
		return 0
	}
	for _, pp := range f.pairs {
		if v, ok := pairAdjust(pp, tables.GlyphID(left), tables.GlyphID(right)); ok {
			return toFixed(float64(v) * fromFixed(ppem) / f.upem)
		}
	}
	for _, st := range f.face.Kern {
		sk, ok := st.Data.(gtfont.SimpleKerns)
		if !ok {
			continue
		}
		if v := sk.KernPair(gtfont.GID(left), gtfont.GID(right)); v != 0 {
			return toFixed(float64(v) * fromFixed(ppem) / f.upem)
		}
	}
	return 0
}

// LoadOutline implements Face.LoadOutline.
func (f *gotextFace) LoadOutline(ppem fixed.Int26_6, gi GlyphIndex) ([]outline.Contour, fixed.Int26_6, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	scale := fromFixed(ppem) / f.upem
	adv := toFixed(float64(f.face.HorizontalAdvance(gtfont.GID(gi))) * scale)

	data, ok := f.face.GlyphData(gtfont.GID(gi)).(gtfont.GlyphOutline)
	if !ok {
		// Bitmap and SVG glyphs carry no outline.
		return nil, adv, nil
	}

	pt := func(p ot.SegmentPoint) outline.Point {
		return outline.Point{X: float64(p.X) * scale, Y: float64(p.Y) * scale}
	}
	var b contourBuilder
	for _, s := range data.Segments {
		switch s.Op {
		case ot.SegmentOpMoveTo:
			b.moveTo(pt(s.Args[0]))
		case ot.SegmentOpLineTo:
			b.lineTo(pt(s.Args[0]))
		case ot.SegmentOpQuadTo:
			b.quadTo(pt(s.Args[0]), pt(s.Args[1]))
		case ot.SegmentOpCubeTo:
			b.cubeTo(pt(s.Args[0]), pt(s.Args[1]), pt(s.Args[2]))
		}
	}
	return b.finish(), adv, nil
}
