package layout

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/ggtext/cache"
	"github.com/gogpu/ggtext/font"
	"github.com/gogpu/ggtext/style"
)

// MaxExtent bounds the unrotated height of a text block in pixels.
const MaxExtent = 1 << 24

// DefaultProbe is the string whose glyph extents define the reference
// line height. It spans the usual ascender and descender range.
const DefaultProbe = "_/7Agfy"

// LineMetrics describes one laid out line.
type LineMetrics struct {
	// Runes is the text of the line without its line break.
	Runes []rune

	// Origin is the pen position of the first glyph.
	Origin image.Point

	// Width is the unrotated advance width of the line.
	Width int

	// BBox is the tight glyph box {xmin, xmax, ymin, ymax} relative to
	// Origin.
	BBox [4]int
}

// Result is the geometry of a laid out text.
type Result struct {
	// Ascent and Descent are the reference extents above and below the
	// baseline. Descent is zero or negative.
	Ascent, Descent int

	// Height is the reference line height, Ascent-Descent+1.
	Height int

	// LineFeed is the baseline to baseline distance.
	LineFeed int

	// FullHeight is the unrotated height of the text block.
	FullHeight int

	// Pad is the background or frame padding on each side.
	Pad int

	// MaxLineWidth is the widest line's Width.
	MaxLineWidth int

	Lines []LineMetrics

	// BBox is the bounding box {xmin, xmax, ymin, ymax} of the glyphs,
	// the shadow and the background quad.
	BBox [4]int

	// TL, TR, BL and BR are the corners of the rotated text block
	// including padding. DX and DY are its rotated edge vectors.
	TL, TR, BL, BR image.Point
	DX, DY         image.Point
}

// Dims returns the pixel dimensions covered by BBox.
func (r *Result) Dims() [2]int {
	return [2]int{r.BBox[1] - r.BBox[0] + 1, r.BBox[3] - r.BBox[2] + 1}
}

// Layout computes the geometry of text rendered with style s at dpi.
func Layout(reg *cache.Registry, s style.TextStyle, text []rune, dpi int) (*Result, error) {
	if len(text) == 0 {
		return nil, ErrEmptyText
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	w, err := NewWalker(reg, s, dpi, font.FormBitmap)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	for _, line := range SplitLines(text) {
		lm := LineMetrics{Runes: line}
		bb := &lm.BBox
		lm.Width, err = w.Walk(line, image.Point{}, func(g *font.Glyph, pen image.Point) {
			bb[0] = min(bb[0], pen.X+g.Left)
			bb[1] = max(bb[1], pen.X+g.Left+g.Width)
			bb[2] = min(bb[2], pen.Y+g.Top-1-g.Height)
			bb[3] = max(bb[3], pen.Y+g.Top-1)
		})
		if err != nil {
			return nil, err
		}
		res.MaxLineWidth = max(res.MaxLineWidth, lm.Width)
		res.Lines = append(res.Lines, lm)
	}

	probe := []rune(DefaultProbe)
	if s.UseTightBoundingBox && len(res.Lines) == 1 {
		probe = res.Lines[0].Runes
	}
	res.Ascent, res.Descent, err = referenceExtents(reg, s, dpi, probe)
	if err != nil {
		return nil, err
	}
	res.Height = res.Ascent - res.Descent + 1

	n := len(res.Lines)
	feed := math.Ceil(float64(res.Height) * s.LineSpacing)
	full := float64(res.Height) + float64(n-1)*feed + math.Trunc(s.LineOffset)
	if full > MaxExtent || full < 1 {
		return nil, fmt.Errorf("%w: text block height %v out of range", style.ErrInvalidStyle, full)
	}
	res.LineFeed = int(feed)
	res.FullHeight = int(full)
	res.Pad = s.Padding()

	res.place(s)
	return res, nil
}

// place computes the corners, the line origins and the bounding box.
func (res *Result) place(s style.TextStyle) {
	rot := newRotation(style.Encode(s).Orientation())
	pad := res.Pad

	res.DX = rot.apply(res.MaxLineWidth+2*pad, 0)
	res.DY = rot.apply(0, res.FullHeight+2*pad)
	hPad, vPad := rot.apply(pad, 0), rot.apply(0, pad)
	hOne, vOne := rot.apply(1, 0), rot.apply(0, 1)

	var bl image.Point
	switch s.Justification {
	case style.JustifyCenter:
		bl = bl.Sub(res.DX.Div(2))
	case style.JustifyRight:
		bl = bl.Sub(res.DX).Add(hPad).Add(hOne)
	default:
		bl = bl.Sub(hPad)
	}
	switch s.VerticalJustification {
	case style.JustifyMiddle:
		bl = bl.Sub(res.DY.Div(2))
	case style.JustifyTop:
		bl = bl.Sub(res.DY).Add(vPad).Add(vOne)
	default:
		bl = bl.Sub(vPad)
	}

	res.BL = bl
	res.TL = bl.Add(res.DY).Sub(vOne)
	res.TR = res.TL.Add(res.DX).Sub(hOne)
	res.BR = bl.Add(res.DX).Sub(hOne)

	pen := res.TL.Add(rot.apply(pad, -pad-res.Ascent-int(s.LineOffset)))
	box := [4]int{pen.X, pen.X, pen.Y, pen.Y}
	feed := rot.apply(0, -res.LineFeed)

	for i := range res.Lines {
		lm := &res.Lines[i]
		origin := pen
		if s.Justification != style.JustifyLeft {
			shift := res.MaxLineWidth - lm.Width
			if s.Justification == style.JustifyCenter {
				shift /= 2
			}
			origin.X += round(rot.cos * float64(shift))
			origin.Y += round(rot.sin * float64(shift))
		}
		lm.Origin = origin

		box[0] = min(box[0], lm.BBox[0]+origin.X)
		box[1] = max(box[1], lm.BBox[1]+origin.X)
		box[2] = min(box[2], lm.BBox[2]+origin.Y)
		box[3] = max(box[3], lm.BBox[3]+origin.Y)

		pen = pen.Add(feed)
	}

	if s.Shadow {
		off := s.ShadowOffset
		if off.X < 0 {
			box[0] += off.X
		} else {
			box[1] += off.X
		}
		if off.Y < 0 {
			box[2] += off.Y
		} else {
			box[3] += off.Y
		}
	}

	for _, p := range [...]image.Point{res.TL, res.TR, res.BL, res.BR} {
		box[0] = min(box[0], p.X)
		box[1] = max(box[1], p.X)
		box[2] = min(box[2], p.Y)
		box[3] = max(box[3], p.Y)
	}
	res.BBox = box
}

// referenceExtents returns the ascent and descent of the probe glyphs
// on the unrotated face.
func referenceExtents(reg *cache.Registry, s style.TextStyle, dpi int, probe []rune) (ascent, descent int, err error) {
	key := style.Encode(s.Unrotated())
	ppem := font.PixelSize(s.FontSize, dpi)

	ascent, descent = math.MinInt, math.MaxInt
	found := false
	for _, r := range probe {
		g, err := reg.Glyphs.Glyph(key, s.FontFile, ppem, r, font.FormBitmap)
		if errors.Is(err, font.ErrGlyphNotFound) {
			continue
		}
		if err != nil {
			return 0, 0, err
		}
		ascent = max(ascent, g.Top-1)
		descent = min(descent, -(g.Height - g.Top))
		found = true
	}
	if !found {
		return 0, 0, nil
	}
	return ascent, descent, nil
}

// SplitLines splits text at '\n'. The result always has at least one
// line; a trailing break yields an empty last line.
func SplitLines(text []rune) [][]rune {
	var lines [][]rune
	start := 0
	for i, r := range text {
		if r == '\n' {
			lines = append(lines, text[start:i])
			start = i + 1
		}
	}
	return append(lines, text[start:])
}

type rotation struct {
	sin, cos float64
}

func newRotation(degrees float64) rotation {
	s, c := math.Sincos(degrees * math.Pi / 180)
	return rotation{sin: s, cos: c}
}

// apply rotates the integer vector (x, y) and rounds the result.
func (r rotation) apply(x, y int) image.Point {
	fx, fy := float64(x), float64(y)
	return image.Point{
		X: round(r.cos*fx - r.sin*fy),
		Y: round(r.sin*fx + r.cos*fy),
	}
}

// round rounds half up.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
