package outline

// AppendContour decomposes a tagged contour into path segments, offset by
// (dx, dy), and appends them to p.
//
// The walk follows the compact TrueType/FreeType encoding:
//   - on after on emits a line, on after conic a conic curve and on after
//     cubic a cubic curve
//   - two consecutive conic points imply an on-curve point at their midpoint
//   - a contour starting on a conic point starts at its last point, or at the
//     midpoint of the first and last points if the last is off-curve too
//
// Every contour is closed back to its start with a segment of the kind
// implied by the last pending control points, so the final emitted point
// always coincides with the MoveTo point.
func AppendContour(p *Path, c Contour, dx, dy float64) {
	n := len(c)
	if n == 0 {
		return
	}

	pts := c
	var start Point
	switch first := c[0]; first.Tag {
	case TagConic:
		last := c[n-1]
		if last.Tag == TagOn {
			start = last.Add(dx, dy)
			pts = c[:n-1]
		} else {
			start = first.Mid(last.Point).Add(dx, dy)
		}
	default:
		start = first.Add(dx, dy)
		pts = c[1:]
	}

	p.MoveTo(start)

	// A contour starting on a cubic control is malformed; its first point
	// is used as an on-curve start.
	w := contourWalker{path: p}
	for _, cp := range pts {
		w.add(cp.Point.Add(dx, dy), cp.Tag)
	}
	w.close(start)
}

// contourWalker carries the pending control points between tagged points.
type contourWalker struct {
	path  *Path
	kind  Tag // TagOn when nothing is pending
	ctrl  [2]Point
	nctrl int
}

func (w *contourWalker) add(pt Point, tag Tag) {
	switch tag {
	case TagOn:
		w.flush(pt)
	case TagConic:
		switch w.kind {
		case TagConic:
			mid := w.ctrl[0].Mid(pt)
			w.path.ConicTo(w.ctrl[0], mid)
		case TagCubic:
			// malformed: a conic control interrupting a cubic pair
			// discards the cubic controls
		}
		w.kind = TagConic
		w.ctrl[0] = pt
		w.nctrl = 1
	case TagCubic:
		if w.kind != TagCubic {
			w.kind = TagCubic
			w.nctrl = 0
		}
		if w.nctrl == 2 {
			w.ctrl[0] = w.ctrl[1]
			w.nctrl = 1
		}
		w.ctrl[w.nctrl] = pt
		w.nctrl++
	}
}

// flush emits the segment ending on the on-curve point pt.
func (w *contourWalker) flush(pt Point) {
	switch w.kind {
	case TagConic:
		w.path.ConicTo(w.ctrl[0], pt)
	case TagCubic:
		c2 := w.ctrl[0]
		if w.nctrl == 2 {
			c2 = w.ctrl[1]
		}
		w.path.CubicTo(w.ctrl[0], c2, pt)
	default:
		w.path.LineTo(pt)
	}
	w.kind = TagOn
	w.nctrl = 0
}

func (w *contourWalker) close(start Point) {
	w.flush(start)
}

// AppendContours decomposes every contour with AppendContour.
func AppendContours(p *Path, contours []Contour, dx, dy float64) {
	for _, c := range contours {
		AppendContour(p, c, dx, dy)
	}
}
