package outline

import (
	"math"
	"strconv"
	"strings"
)

// Op is the kind of a path segment.
type Op uint8

const (
	// OpMoveTo starts a new contour.
	OpMoveTo Op = iota

	// OpLineTo draws a straight line to the target point.
	OpLineTo

	// OpConicTo draws a quadratic curve through one control point.
	OpConicTo

	// OpCubicTo draws a cubic curve through two control points.
	OpCubicTo
)

// String returns a string representation of the operation.
func (op Op) String() string {
	switch op {
	case OpMoveTo:
		return "MoveTo"
	case OpLineTo:
		return "LineTo"
	case OpConicTo:
		return "ConicTo"
	case OpCubicTo:
		return "CubicTo"
	default:
		return "Unknown"
	}
}

// pointCount returns how many entries of Segment.Points the op uses.
func (op Op) pointCount() int {
	switch op {
	case OpConicTo:
		return 2
	case OpCubicTo:
		return 3
	default:
		return 1
	}
}

// Segment is one path element.
//   - MoveTo, LineTo: Points[0] is the target
//   - ConicTo: Points[0] is the control, Points[1] the target
//   - CubicTo: Points[0], Points[1] are controls, Points[2] the target
type Segment struct {
	Op     Op
	Points [3]Point
}

// End returns the point the segment finishes on.
func (s Segment) End() Point {
	return s.Points[s.Op.pointCount()-1]
}

// Path is a sequence of segments forming zero or more contours.
// The zero value is an empty path ready to use.
type Path struct {
	segs []Segment
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new contour at p.
func (p *Path) MoveTo(pt Point) {
	p.segs = append(p.segs, Segment{Op: OpMoveTo, Points: [3]Point{pt}})
}

// LineTo adds a line to pt.
func (p *Path) LineTo(pt Point) {
	p.segs = append(p.segs, Segment{Op: OpLineTo, Points: [3]Point{pt}})
}

// ConicTo adds a quadratic curve through ctrl to pt.
func (p *Path) ConicTo(ctrl, pt Point) {
	p.segs = append(p.segs, Segment{Op: OpConicTo, Points: [3]Point{ctrl, pt}})
}

// CubicTo adds a cubic curve through c1 and c2 to pt.
func (p *Path) CubicTo(c1, c2, pt Point) {
	p.segs = append(p.segs, Segment{Op: OpCubicTo, Points: [3]Point{c1, c2, pt}})
}

// Segments returns the path segments. The slice must not be modified.
func (p *Path) Segments() []Segment {
	return p.segs
}

// Len returns the number of segments.
func (p *Path) Len() int {
	return len(p.segs)
}

// Empty reports whether the path has no segments.
func (p *Path) Empty() bool {
	return len(p.segs) == 0
}

// Contours returns the number of contours (MoveTo segments).
func (p *Path) Contours() int {
	n := 0
	for _, s := range p.segs {
		if s.Op == OpMoveTo {
			n++
		}
	}
	return n
}

// Append adds all segments of other to p.
func (p *Path) Append(other *Path) {
	p.segs = append(p.segs, other.segs...)
}

// Bounds returns the bounding box of every point in the path,
// control points included. An empty path has an empty Rect.
func (p *Path) Bounds() Rect {
	r := emptyRect()
	for _, s := range p.segs {
		for i := 0; i < s.Op.pointCount(); i++ {
			r.extend(s.Points[i])
		}
	}
	return r
}

// Translate moves every point of the path by (dx, dy).
func (p *Path) Translate(dx, dy float64) {
	for i := range p.segs {
		s := &p.segs[i]
		for j := 0; j < s.Op.pointCount(); j++ {
			s.Points[j] = s.Points[j].Add(dx, dy)
		}
	}
}

// Clone returns a deep copy of the path.
func (p *Path) Clone() *Path {
	c := &Path{segs: make([]Segment, len(p.segs))}
	copy(c.segs, p.segs)
	return c
}

// Flatten returns a copy of the path with every curve replaced by line
// segments whose deviation from the curve stays below tolerance pixels.
func (p *Path) Flatten(tolerance float64) *Path {
	if tolerance <= 0 {
		tolerance = 0.25
	}
	out := &Path{segs: make([]Segment, 0, len(p.segs))}
	var pen Point
	for _, s := range p.segs {
		switch s.Op {
		case OpMoveTo:
			out.MoveTo(s.Points[0])
		case OpLineTo:
			out.LineTo(s.Points[0])
		case OpConicTo:
			n := subdivisions(pen, s.Points[0], s.Points[1], s.Points[1], tolerance)
			for i := 1; i <= n; i++ {
				out.LineTo(evalConic(pen, s.Points[0], s.Points[1], float64(i)/float64(n)))
			}
		case OpCubicTo:
			n := subdivisions(pen, s.Points[0], s.Points[1], s.Points[2], tolerance)
			for i := 1; i <= n; i++ {
				out.LineTo(evalCubic(pen, s.Points[0], s.Points[1], s.Points[2], float64(i)/float64(n)))
			}
		}
		pen = s.End()
	}
	return out
}

// subdivisions estimates the number of line segments needed so that
// the flattened curve stays within tol of the control polygon.
func subdivisions(p0, p1, p2, p3 Point, tol float64) int {
	dd := math.Max(
		math.Hypot(p0.X-2*p1.X+p2.X, p0.Y-2*p1.Y+p2.Y),
		math.Hypot(p1.X-2*p2.X+p3.X, p1.Y-2*p2.Y+p3.Y),
	)
	n := int(math.Ceil(math.Sqrt(dd / (8 * tol))))
	if n < 1 {
		n = 1
	}
	if n > 64 {
		n = 64
	}
	return n
}

func evalConic(p0, p1, p2 Point, t float64) Point {
	mt := 1 - t
	return Point{
		X: mt*mt*p0.X + 2*mt*t*p1.X + t*t*p2.X,
		Y: mt*mt*p0.Y + 2*mt*t*p1.Y + t*t*p2.Y,
	}
}

func evalCubic(p0, p1, p2, p3 Point, t float64) Point {
	mt := 1 - t
	a, b, c, d := mt*mt*mt, 3*mt*mt*t, 3*mt*t*t, t*t*t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// SVG returns the path as SVG path data. The Y axis is flipped so that
// the result renders upright in SVG's Y-down coordinate system.
func (p *Path) SVG() string {
	var sb strings.Builder
	for i, s := range p.segs {
		if s.Op == OpMoveTo && i > 0 {
			sb.WriteString("Z ")
		}
		switch s.Op {
		case OpMoveTo:
			sb.WriteString("M")
		case OpLineTo:
			sb.WriteString("L")
		case OpConicTo:
			sb.WriteString("Q")
		case OpCubicTo:
			sb.WriteString("C")
		}
		for j := 0; j < s.Op.pointCount(); j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			writeCoord(&sb, s.Points[j].X)
			sb.WriteByte(',')
			writeCoord(&sb, -s.Points[j].Y)
		}
		sb.WriteByte(' ')
	}
	if len(p.segs) > 0 {
		sb.WriteString("Z")
	}
	return strings.TrimSpace(sb.String())
}

func writeCoord(sb *strings.Builder, v float64) {
	if v == 0 {
		// avoid "-0"
		v = 0
	}
	sb.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
}
