package font

import (
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggtext/outline"
)

// GlyphIndex identifies a glyph within a face. Index 0 is the
// "missing glyph" and is never returned for a mapped rune.
type GlyphIndex uint32

// Face is a loaded, size-independent font resource.
//
// Implementations must be safe for concurrent use.
type Face interface {
	// GlyphIndex maps a rune through the face's character map.
	// It returns 0 when the face has no glyph for r.
	GlyphIndex(r rune) GlyphIndex

	// HasKerning reports whether the face carries pair kerning data.
	HasKerning() bool

	// Kern returns the horizontal kerning adjustment between two glyphs
	// at ppem pixels per em. Pairs without an entry return 0.
	Kern(ppem fixed.Int26_6, left, right GlyphIndex) fixed.Int26_6

	// LoadOutline returns the unhinted, unrendered outline of a glyph in
	// pixels (Y up) at ppem pixels per em, together with its horizontal
	// advance.
	LoadOutline(ppem fixed.Int26_6, gi GlyphIndex) ([]outline.Contour, fixed.Int26_6, error)
}

// Engine constructs faces from font file bytes.
type Engine interface {
	// Name returns the registry name of the engine.
	Name() string

	// Load parses data into a face. The data must stay unmodified for
	// the lifetime of the face.
	Load(data []byte) (Face, error)
}

// Form selects the representation requested from a face.
type Form uint8

const (
	// FormBitmap requests an 8-bit coverage bitmap.
	FormBitmap Form = iota

	// FormOutline requests the tagged outline contours.
	FormOutline
)

// String returns a string representation of the form.
func (f Form) String() string {
	switch f {
	case FormBitmap:
		return "Bitmap"
	case FormOutline:
		return "Outline"
	default:
		return "Unknown"
	}
}

// Glyph is a rendered or vector glyph. Glyphs are immutable once built
// and may be shared between goroutines.
type Glyph struct {
	// Index is the glyph index in its face.
	Index GlyphIndex

	// Form is the representation held by the glyph.
	Form Form

	// Advance is the pen displacement after the glyph, in 26.6 pixels,
	// with the face transform applied.
	Advance fixed.Point26_6

	// AdvanceX is the untransformed horizontal advance in 26.6 pixels.
	AdvanceX fixed.Int26_6

	// Left is the horizontal distance from the pen to the leftmost
	// bitmap column. Top is the distance from the baseline to the top
	// edge of the bitmap, positive upwards. Bitmap form only.
	Left, Top int

	// Width and Height are the bitmap dimensions in pixels and Stride the
	// distance between rows of Coverage. Bitmap form only.
	Width, Height, Stride int

	// Coverage holds Height rows of 8-bit coverage, top row first.
	Coverage []uint8

	// Contours is the transformed outline. Outline form only.
	Contours []outline.Contour
}

// CoverageAt returns the coverage of the bitmap pixel at column x, row y.
func (g *Glyph) CoverageAt(x, y int) uint8 {
	return g.Coverage[y*g.Stride+x]
}

// Approximate memory cost of a Glyph value and of one contour point.
const (
	glyphOverhead = 96
	pointSize     = 24
)

// ByteSize approximates the memory held by the glyph.
func (g *Glyph) ByteSize() int {
	return glyphOverhead + len(g.Coverage) + pointSize*outline.PointCount(g.Contours)
}
