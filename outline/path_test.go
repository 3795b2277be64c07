package outline

import (
	"math"
	"strings"
	"testing"
)

func square() *Path {
	p := NewPath()
	p.MoveTo(Point{0, 0})
	p.LineTo(Point{10, 0})
	p.LineTo(Point{10, 10})
	p.LineTo(Point{0, 10})
	p.LineTo(Point{0, 0})
	return p
}

func TestOpString(t *testing.T) {
	tests := []struct {
		op   Op
		want string
	}{
		{OpMoveTo, "MoveTo"},
		{OpLineTo, "LineTo"},
		{OpConicTo, "ConicTo"},
		{OpCubicTo, "CubicTo"},
		{Op(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.op.String(); got != tt.want {
			t.Errorf("Op(%d).String() = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestPath_Bounds(t *testing.T) {
	p := NewPath()
	if !p.Bounds().Empty() {
		t.Error("empty path should have empty bounds")
	}

	p.MoveTo(Point{1, 2})
	p.ConicTo(Point{5, 9}, Point{7, 3})
	b := p.Bounds()
	if b.MinX != 1 || b.MinY != 2 || b.MaxX != 7 || b.MaxY != 9 {
		t.Errorf("Bounds() = %+v, want {1 2 7 9}", b)
	}
}

func TestPath_Translate(t *testing.T) {
	p := square()
	p.Translate(-5, 3)
	b := p.Bounds()
	if b.MinX != -5 || b.MaxX != 5 || b.MinY != 3 || b.MaxY != 13 {
		t.Errorf("Bounds() after Translate = %+v", b)
	}
}

func TestPath_CloneIsIndependent(t *testing.T) {
	p := square()
	c := p.Clone()
	c.Translate(100, 0)
	if p.Bounds().MinX != 0 {
		t.Error("Translate on clone modified the original")
	}
}

func TestPath_Flatten(t *testing.T) {
	p := NewPath()
	p.MoveTo(Point{0, 0})
	p.ConicTo(Point{50, 100}, Point{100, 0})
	p.CubicTo(Point{80, -50}, Point{20, -50}, Point{0, 0})

	f := p.Flatten(0.1)
	for _, s := range f.Segments()[1:] {
		if s.Op != OpLineTo {
			t.Fatalf("flattened path contains %v", s.Op)
		}
	}
	if f.Len() < 4 {
		t.Errorf("flattened path has %d segments, want subdivided curves", f.Len())
	}
	// The conic apex is at t=0.5: (50, 50).
	var maxY float64
	for _, s := range f.Segments() {
		maxY = math.Max(maxY, s.Points[0].Y)
	}
	if math.Abs(maxY-50) > 0.5 {
		t.Errorf("flattened conic apex = %v, want ~50", maxY)
	}
	last := f.Segments()[f.Len()-1].End()
	if last != (Point{0, 0}) {
		t.Errorf("flattened path ends at %v, want origin", last)
	}
}

func TestPath_SVG(t *testing.T) {
	p := NewPath()
	p.MoveTo(Point{0, 0})
	p.LineTo(Point{10, 5})
	p.ConicTo(Point{12, 8}, Point{0, 0})

	got := p.SVG()
	want := "M0,0 L10,-5 Q12,-8 0,0 Z"
	if got != want {
		t.Errorf("SVG() = %q, want %q", got, want)
	}

	two := square()
	two.Append(square())
	if n := strings.Count(two.SVG(), "Z"); n != 2 {
		t.Errorf("SVG() of two contours has %d closes, want 2", n)
	}
}

func TestControlBoxAndTransform(t *testing.T) {
	cs := []Contour{{on(0, 0), conic(4, 8), on(8, 0)}}
	b := ControlBox(cs)
	if b.MaxY != 8 || b.MaxX != 8 {
		t.Errorf("ControlBox() = %+v", b)
	}

	moved := Transform(cs, func(p Point) Point { return p.Add(1, 1) })
	if moved[0][1].Point != (Point{5, 9}) || moved[0][1].Tag != TagConic {
		t.Errorf("Transform() point = %+v", moved[0][1])
	}
	if cs[0][1].Point != (Point{4, 8}) {
		t.Error("Transform modified its input")
	}
	if PointCount(cs) != 3 {
		t.Errorf("PointCount() = %d, want 3", PointCount(cs))
	}
}
