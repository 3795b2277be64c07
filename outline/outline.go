// Package outline holds the vector geometry shared by glyph rasterization
// and path export: tagged glyph contours, the segment path they decompose
// into, and the state machine that converts one into the other.
//
// All coordinates are in pixels with the Y axis pointing up.
package outline

import "math"

// Point is a 2D point in pixel space.
type Point struct {
	X, Y float64
}

// Add returns p translated by (dx, dy).
func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Mid returns the midpoint of p and q.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) * 0.5, Y: (p.Y + q.Y) * 0.5}
}

// Tag classifies a contour point.
type Tag uint8

const (
	// TagOn marks a point on the curve.
	TagOn Tag = iota

	// TagConic marks a quadratic (conic) control point. Two consecutive
	// conic points imply an on-curve point at their midpoint.
	TagConic

	// TagCubic marks a cubic control point. Cubic controls come in pairs.
	TagCubic
)

// String returns a string representation of the tag.
func (t Tag) String() string {
	switch t {
	case TagOn:
		return "On"
	case TagConic:
		return "Conic"
	case TagCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// ContourPoint is a contour point together with its control kind.
type ContourPoint struct {
	Point
	Tag Tag
}

// Contour is one closed glyph contour in compact tagged form.
// The closing edge back to the first point is implicit.
type Contour []ContourPoint

// Rect is an axis-aligned rectangle.
type Rect struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Width returns the rectangle width.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height returns the rectangle height.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Empty reports whether the rectangle encloses no area and no point.
func (r Rect) Empty() bool { return r.MinX > r.MaxX || r.MinY > r.MaxY }

// emptyRect is the identity for Rect union.
func emptyRect() Rect {
	return Rect{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

func (r *Rect) extend(p Point) {
	r.MinX = math.Min(r.MinX, p.X)
	r.MinY = math.Min(r.MinY, p.Y)
	r.MaxX = math.Max(r.MaxX, p.X)
	r.MaxY = math.Max(r.MaxY, p.Y)
}

// ControlBox returns the bounding box of all points of the contours,
// control points included. The result is empty if there are no points.
func ControlBox(contours []Contour) Rect {
	r := emptyRect()
	for _, c := range contours {
		for _, p := range c {
			r.extend(p.Point)
		}
	}
	return r
}

// Transform applies fn to every point of the contours and returns the
// transformed copy. The input is not modified.
func Transform(contours []Contour, fn func(Point) Point) []Contour {
	out := make([]Contour, len(contours))
	for i, c := range contours {
		oc := make(Contour, len(c))
		for j, p := range c {
			oc[j] = ContourPoint{Point: fn(p.Point), Tag: p.Tag}
		}
		out[i] = oc
	}
	return out
}

// PointCount returns the total number of points in the contours.
func PointCount(contours []Contour) int {
	n := 0
	for _, c := range contours {
		n += len(c)
	}
	return n
}
