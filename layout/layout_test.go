package layout

import (
	"bytes"
	"image"
	"log/slog"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/ggtext/cache"
	"github.com/gogpu/ggtext/font"
	"github.com/gogpu/ggtext/style"
)

const testDPI = 72

func newRegistry(t *testing.T) *cache.Registry {
	t.Helper()
	reg, err := cache.NewRegistry(cache.Config{})
	require.NoError(t, err)
	return reg
}

func testStyle() style.TextStyle {
	s := style.Default()
	s.FontSize = 24
	return s
}

func layoutText(t *testing.T, reg *cache.Registry, s style.TextStyle, text string) *Result {
	t.Helper()
	res, err := Layout(reg, s, []rune(text), testDPI)
	require.NoError(t, err)
	return res
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"abc", []string{"abc"}},
		{"a\nb", []string{"a", "b"}},
		{"a\n", []string{"a", ""}},
		{"\n\n", []string{"", "", ""}},
	}
	for _, tt := range tests {
		var got []string
		for _, l := range SplitLines([]rune(tt.in)) {
			got = append(got, string(l))
		}
		assert.Equal(t, tt.want, got, "SplitLines(%q)", tt.in)
	}
}

func TestLayoutEmpty(t *testing.T) {
	_, err := Layout(newRegistry(t), testStyle(), nil, testDPI)
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestLayoutInvalidStyle(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		modify func(*style.TextStyle)
	}{
		{"zero size", "x", func(s *style.TextStyle) { s.FontSize = 0 }},
		{"infinite spacing", "a\nb", func(s *style.TextStyle) { s.LineSpacing = math.Inf(1) }},
		{"huge spacing", "a\nb", func(s *style.TextStyle) { s.LineSpacing = 1e12 }},
		{"NaN offset", "a\nb", func(s *style.TextStyle) { s.LineOffset = math.NaN() }},
		{"infinite offset", "a\nb", func(s *style.TextStyle) { s.LineOffset = math.Inf(1) }},
		{"block too tall", strings.Repeat("a\n", 2000), func(s *style.TextStyle) { s.LineSpacing = style.MaxLineSpacing }},
		{"block collapsed", "a", func(s *style.TextStyle) { s.LineOffset = -1000 }},
	}
	reg := newRegistry(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testStyle()
			tt.modify(&s)
			res, err := Layout(reg, s, []rune(tt.text), testDPI)
			assert.ErrorIs(t, err, style.ErrInvalidStyle)
			assert.Nil(t, res)
		})
	}
}

func TestLayoutSingleLine(t *testing.T) {
	res := layoutText(t, newRegistry(t), testStyle(), "Hello")

	require.Len(t, res.Lines, 1)
	assert.GreaterOrEqual(t, res.BBox[1], res.BBox[0])
	assert.GreaterOrEqual(t, res.BBox[3], res.BBox[2])
	assert.Positive(t, res.Lines[0].Width)
	assert.Equal(t, res.Lines[0].Width, res.MaxLineWidth)
	assert.Equal(t, res.Ascent-res.Descent+1, res.Height)
	assert.LessOrEqual(t, res.Descent, 0)
	assert.Equal(t, [2]int{res.BBox[1] - res.BBox[0] + 1, res.BBox[3] - res.BBox[2] + 1}, res.Dims())
}

func TestLayoutWidthGrows(t *testing.T) {
	reg := newRegistry(t)
	s := testStyle()

	h := layoutText(t, reg, s, "H")
	hi := layoutText(t, reg, s, "Hi")
	assert.Greater(t, hi.Lines[0].Width, h.Lines[0].Width)

	prev := 0
	text := ""
	for _, r := range "Wombat" {
		text += string(r)
		w := layoutText(t, reg, s, text).Lines[0].Width
		assert.GreaterOrEqual(t, w, prev, "width of %q", text)
		prev = w
	}
}

func TestLayoutDeterministic(t *testing.T) {
	reg := newRegistry(t)
	s := testStyle()
	s.Orientation = 30
	a := layoutText(t, reg, s, "Deterministic\nlayout")
	b := layoutText(t, reg, s, "Deterministic\nlayout")
	assert.Equal(t, a, b)

	c := layoutText(t, newRegistry(t), s, "Deterministic\nlayout")
	assert.Equal(t, a.BBox, c.BBox)
}

func TestLayoutTwoLinesTop(t *testing.T) {
	s := testStyle()
	s.VerticalJustification = style.JustifyTop
	res := layoutText(t, newRegistry(t), s, "Top\nBottom")

	require.Len(t, res.Lines, 2)
	gap := res.Lines[0].Origin.Y - res.Lines[1].Origin.Y
	assert.GreaterOrEqual(t, gap, res.Height)
	assert.Equal(t, res.LineFeed, gap)
	assert.Equal(t, res.Lines[0].Origin.X, res.Lines[1].Origin.X)
	assert.Equal(t, 0, res.TL.Y)
}

func TestLayoutLineSpacing(t *testing.T) {
	s := testStyle()
	s.LineSpacing = 1.5
	res := layoutText(t, newRegistry(t), s, "a\nb\nc")

	assert.Equal(t, int(math.Ceil(float64(res.Height)*1.5)), res.LineFeed)
	assert.Equal(t, res.Height+2*res.LineFeed, res.FullHeight)
}

func TestLayoutCorners(t *testing.T) {
	reg := newRegistry(t)
	tests := []struct {
		name  string
		h     style.Justification
		v     style.VerticalJustification
		check func(t *testing.T, res *Result)
	}{
		{"left bottom", style.JustifyLeft, style.JustifyBottom, func(t *testing.T, res *Result) {
			assert.Equal(t, image.Point{}, res.BL)
		}},
		{"right top", style.JustifyRight, style.JustifyTop, func(t *testing.T, res *Result) {
			assert.Equal(t, 0, res.BR.X)
			assert.Equal(t, 0, res.TL.Y)
		}},
		{"center middle", style.JustifyCenter, style.JustifyMiddle, func(t *testing.T, res *Result) {
			assert.InDelta(t, 0, res.BL.X+res.BR.X, 2)
			assert.InDelta(t, 0, res.BL.Y+res.TL.Y, 2)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testStyle()
			s.Justification = tt.h
			s.VerticalJustification = tt.v
			res := layoutText(t, reg, s, "Corner")

			assert.Equal(t, res.MaxLineWidth, res.DX.X)
			assert.Equal(t, res.FullHeight, res.DY.Y)
			assert.Equal(t, res.TL.X, res.BL.X)
			assert.Equal(t, res.TR.Y, res.TL.Y)
			tt.check(t, res)
		})
	}
}

func TestLayoutCenterJustifiesLines(t *testing.T) {
	s := testStyle()
	s.Justification = style.JustifyCenter
	res := layoutText(t, newRegistry(t), s, "a\nwide line")

	require.Len(t, res.Lines, 2)
	assert.Greater(t, res.Lines[0].Origin.X, res.Lines[1].Origin.X)
	shift := (res.MaxLineWidth - res.Lines[0].Width) / 2
	assert.Equal(t, res.Lines[1].Origin.X+shift, res.Lines[0].Origin.X)
}

func TestLayoutPadding(t *testing.T) {
	reg := newRegistry(t)

	s := testStyle()
	s.BackgroundOpacity = 0.5
	res := layoutText(t, reg, s, "Pad")
	assert.Equal(t, 2, res.Pad)
	assert.Equal(t, image.Pt(-2, -2), res.BL)
	assert.Equal(t, res.MaxLineWidth+4, res.DX.X)

	s.Frame = true
	s.FrameWidth = 3
	res = layoutText(t, reg, s, "Pad")
	assert.Equal(t, 4, res.Pad)
	assert.Equal(t, image.Pt(-4, -4), res.BL)
}

func TestLayoutShadowFollowsOffsetSign(t *testing.T) {
	reg := newRegistry(t)
	s := testStyle()
	plain := layoutText(t, reg, s, "Shadow")

	s.Shadow = true
	s.ShadowOffset = image.Pt(30, -30)
	sh := layoutText(t, reg, s, "Shadow")
	assert.Equal(t, plain.BBox[0], sh.BBox[0])
	assert.Greater(t, sh.BBox[1], plain.BBox[1])
	assert.Less(t, sh.BBox[2], plain.BBox[2])
	assert.Equal(t, plain.BBox[3], sh.BBox[3])

	s.ShadowOffset = image.Pt(-30, 30)
	sh = layoutText(t, reg, s, "Shadow")
	assert.Less(t, sh.BBox[0], plain.BBox[0])
	assert.Equal(t, plain.BBox[1], sh.BBox[1])
	assert.Equal(t, plain.BBox[2], sh.BBox[2])
	assert.Greater(t, sh.BBox[3], plain.BBox[3])
}

func TestLayoutRotated(t *testing.T) {
	reg := newRegistry(t)
	s := testStyle()
	flat := layoutText(t, reg, s, "Rotated text")

	s.Orientation = 90
	up := layoutText(t, reg, s, "Rotated text")

	fd, ud := flat.Dims(), up.Dims()
	assert.Greater(t, fd[0], fd[1])
	assert.Greater(t, ud[1], ud[0])
	assert.InDelta(t, fd[0], ud[1], 4)
	assert.Equal(t, flat.Lines[0].Width, up.Lines[0].Width)
	assert.Equal(t, flat.Height, up.Height)
}

func TestLayoutSkipsMissingGlyph(t *testing.T) {
	reg := newRegistry(t)
	s := testStyle()
	a := layoutText(t, reg, s, "A")
	b := layoutText(t, reg, s, "A\uE000")
	assert.Equal(t, a.Lines[0].Width, b.Lines[0].Width)
	assert.Equal(t, a.BBox, b.BBox)
}

func TestLayoutTightBoundingBox(t *testing.T) {
	reg := newRegistry(t)
	s := testStyle()
	loose := layoutText(t, reg, s, "ace")

	s.UseTightBoundingBox = true
	tight := layoutText(t, reg, s, "ace")
	assert.Less(t, tight.Ascent, loose.Ascent)
	assert.GreaterOrEqual(t, tight.Descent, loose.Descent)

	// Multi-line text always uses the reference probe.
	multi := layoutText(t, reg, s, "ace\nace")
	assert.Equal(t, loose.Ascent, multi.Ascent)
}

func serifStyle() style.TextStyle {
	s := testStyle()
	s.Family = style.FamilySerif
	return s
}

func TestLayoutKerning(t *testing.T) {
	reg := newRegistry(t)
	s := serifStyle()

	a := layoutText(t, reg, s, "A").Lines[0].Width
	v := layoutText(t, reg, s, "V").Lines[0].Width
	av := layoutText(t, reg, s, "AV").Lines[0].Width
	assert.Less(t, av, a+v)

	// A missing glyph between the pair breaks it without advancing.
	split := layoutText(t, reg, s, "A\uE000V").Lines[0].Width
	assert.Equal(t, a+v, split)

	s.Family = style.FamilySans
	sa := layoutText(t, reg, s, "A").Lines[0].Width
	sv := layoutText(t, reg, s, "V").Lines[0].Width
	assert.Equal(t, sa+sv, layoutText(t, reg, s, "AV").Lines[0].Width)
}

// pens returns the pen positions of every glyph on line.
func pens(t *testing.T, reg *cache.Registry, s style.TextStyle, line string) ([]image.Point, int) {
	t.Helper()
	w, err := NewWalker(reg, s, testDPI, font.FormBitmap)
	require.NoError(t, err)
	var out []image.Point
	width, err := w.Walk([]rune(line), image.Point{}, func(_ *font.Glyph, pen image.Point) {
		out = append(out, pen)
	})
	require.NoError(t, err)
	return out, width
}

func TestWalkerKerningRotated(t *testing.T) {
	reg := newRegistry(t)
	s := serifStyle()

	_, kerned := pens(t, reg, s, "AV")
	_, plain := pens(t, reg, s, "A\uE000V")
	delta := kerned - plain
	require.Negative(t, delta)

	s.Orientation = 90
	kp, kw := pens(t, reg, s, "AV")
	pp, pw := pens(t, reg, s, "A\uE000V")
	require.Len(t, kp, 2)
	require.Len(t, pp, 2)

	// Width takes the unrotated delta.
	assert.Equal(t, delta, kw-pw)

	// The pen moves along the rotated baseline.
	d := kp[1].Sub(pp[1])
	assert.InDelta(t, 0, d.X, 1)
	assert.InDelta(t, -delta, abs(d.Y), 1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestWalkerLogsFamilySubstitution(t *testing.T) {
	var buf bytes.Buffer
	reg, err := cache.NewRegistry(cache.Config{
		Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
	require.NoError(t, err)

	s := testStyle()
	s.Family = style.Family(-1)
	res := layoutText(t, reg, s, "Hi")
	assert.Contains(t, buf.String(), "family substituted")
	assert.Contains(t, buf.String(), "family=-1")

	// Measurement matches the sans face it falls back to.
	s.Family = style.FamilySans
	assert.Equal(t, layoutText(t, reg, s, "Hi").BBox, res.BBox)
}
