package font

import (
	"fmt"
	"math"

	"golang.org/x/image/math/fixed"

	"github.com/gogpu/ggtext/outline"
)

// Matrix is a 2x2 linear transform applied to glyph outlines and advances:
//
//	x' = XX*x + XY*y
//	y' = YX*x + YY*y
type Matrix struct {
	XX, XY float64
	YX, YY float64
}

// Identity is the identity transform.
var Identity = Matrix{XX: 1, YY: 1}

// Rotation returns the counter-clockwise rotation by degrees.
func Rotation(degrees float64) Matrix {
	s, c := math.Sincos(degrees * math.Pi / 180)
	return Matrix{XX: c, XY: -s, YX: s, YY: c}
}

// IsIdentity reports whether m is the identity transform.
func (m Matrix) IsIdentity() bool {
	return m == Identity
}

// Apply transforms p.
func (m Matrix) Apply(p outline.Point) outline.Point {
	return outline.Point{
		X: m.XX*p.X + m.XY*p.Y,
		Y: m.YX*p.X + m.YY*p.Y,
	}
}

// ApplyFixed transforms a 26.6 vector.
func (m Matrix) ApplyFixed(v fixed.Point26_6) fixed.Point26_6 {
	p := m.Apply(outline.Point{X: fromFixed(v.X), Y: fromFixed(v.Y)})
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}

// TransformedFace is a face with a fixed transform applied to every glyph
// it produces. It is the handle stored by the face cache: a face cached
// for a rotated style always renders pre-rotated.
type TransformedFace struct {
	Face
	engine  string
	matrix  Matrix
	kerning bool
}

// Transform wraps f so that glyphs are produced with m applied.
func Transform(f Face, m Matrix) *TransformedFace {
	var engine string
	if tf, ok := f.(*TransformedFace); ok {
		f, engine = tf.Face, tf.engine
	}
	return &TransformedFace{Face: f, engine: engine, matrix: m, kerning: f.HasKerning()}
}

// NewFace loads data through the engine and applies the transform.
func NewFace(e Engine, data []byte, m Matrix) (*TransformedFace, error) {
	f, err := e.Load(data)
	if err != nil {
		return nil, err
	}
	tf := Transform(f, m)
	tf.engine = e.Name()
	return tf, nil
}

// Engine returns the name of the engine that loaded the face.
func (f *TransformedFace) Engine() string { return f.engine }

// Matrix returns the face transform.
func (f *TransformedFace) Matrix() Matrix { return f.matrix }

// HasKerning implements Face.HasKerning. The result is computed once.
func (f *TransformedFace) HasKerning() bool { return f.kerning }

// Glyph produces the glyph for r at ppem pixels per em in the requested
// form. It returns ErrGlyphNotFound when the face does not map r.
func (f *TransformedFace) Glyph(ppem fixed.Int26_6, r rune, form Form) (*Glyph, error) {
	gi := f.GlyphIndex(r)
	if gi == 0 {
		return nil, fmt.Errorf("%w: %U", ErrGlyphNotFound, r)
	}
	return f.GlyphByIndex(ppem, gi, form)
}

// GlyphByIndex produces the glyph with index gi.
func (f *TransformedFace) GlyphByIndex(ppem fixed.Int26_6, gi GlyphIndex, form Form) (*Glyph, error) {
	contours, adv, err := f.LoadOutline(ppem, gi)
	if err != nil {
		return nil, err
	}

	g := &Glyph{
		Index:    gi,
		Form:     form,
		AdvanceX: adv,
		Advance:  fixed.Point26_6{X: adv},
	}
	if !f.matrix.IsIdentity() {
		contours = outline.Transform(contours, f.matrix.Apply)
		g.Advance = f.matrix.ApplyFixed(g.Advance)
	}

	switch form {
	case FormOutline:
		g.Contours = contours
	default:
		rasterize(g, contours)
	}
	return g, nil
}
