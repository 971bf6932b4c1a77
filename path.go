package mirror

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAnchors indicates a path consisting of control points only.
	ErrNoAnchors = errors.New("path has no anchor points")
	// ErrDanglingControls indicates control points at the end of an open
	// path, with no anchor left to shape.
	ErrDanglingControls = errors.New("path has control points without a following anchor")
)

// Path is an ordered sequence of points plus a closed-flag. The association
// of a control point to its anchor is positional: controls precede the
// anchor they shape. On closed paths trailing controls wrap around and
// shape the first anchor.
//
// To construct a path, start with NullPath() and extend it:
//
//	path := NullPath().Anchor(0, 0).Control(1, 2).Control(3, 2).Anchor(4, 0).Cycle()
type Path struct {
	points []Point
	closed bool
}

// NullPath creates an empty path, to be extended by subsequent builder
// calls. Calling Cycle() or End() finishes the path.
func NullPath() *Path {
	return &Path{}
}

// Anchor appends an on-curve point. Part of builder functionality.
func (path *Path) Anchor(x, y float64) *Path {
	path.points = append(path.points, AnchorAt(x, y))
	return path
}

// Control appends an off-curve handle. Part of builder functionality.
func (path *Path) Control(x, y float64) *Path {
	path.points = append(path.points, ControlAt(x, y))
	return path
}

// Selected marks the most recently appended point as selected.
// Part of builder functionality.
func (path *Path) Selected() *Path {
	if len(path.points) == 0 {
		panic("cannot select point of empty path")
	}
	path.points[len(path.points)-1].Selected = true
	return path
}

// Append appends an arbitrary point value. Part of builder functionality.
func (path *Path) Append(p Point) *Path {
	path.points = append(path.points, p)
	return path
}

// Cycle closes the path. Part of builder functionality.
func (path *Path) Cycle() *Path {
	path.closed = true
	return path
}

// End finishes an open path. Part of builder functionality.
func (path *Path) End() *Path {
	return path
}

// IsClosed is a predicate: is this path a closed contour?
func (path *Path) IsClosed() bool {
	return path.closed
}

// N returns the point count of this path.
func (path *Path) N() int {
	return len(path.points)
}

// Pt returns the point at position i. On closed paths the index wraps
// around (i mod N).
func (path *Path) Pt(i int) Point {
	if path.closed && path.N() > 0 {
		i = ((i % path.N()) + path.N()) % path.N()
	}
	return path.points[i]
}

// Points returns a copy of the path's point sequence.
func (path *Path) Points() []Point {
	pts := make([]Point, len(path.points))
	copy(pts, path.points)
	return pts
}

// Copy returns an independent copy of the path.
func (path *Path) Copy() *Path {
	return &Path{points: path.Points(), closed: path.closed}
}

// FromPoints builds a path from a point sequence.
func FromPoints(points []Point, closed bool) *Path {
	pts := make([]Point, len(points))
	copy(pts, points)
	return &Path{points: pts, closed: closed}
}

// AnchorCount returns the number of on-curve points.
func (path *Path) AnchorCount() int {
	n := 0
	for _, p := range path.points {
		if p.IsAnchor() {
			n++
		}
	}
	return n
}

// HasSelection is a predicate: does any point of this path carry the
// selection flag?
func (path *Path) HasSelection() bool {
	for _, p := range path.points {
		if p.Selected {
			return true
		}
	}
	return false
}

// === Curve Segments ========================================================

// Segment is an atomic curve unit: the run of controls shaping an anchor,
// followed by that anchor. A straight-line segment has no controls.
type Segment struct {
	Controls []Point
	Anchor   Point
}

// Degree returns the count of control points of the segment.
func (seg Segment) Degree() int {
	return len(seg.Controls)
}

// Segments groups the path's points into curve segments by the positional
// rule: every run of controls binds to the anchor that follows it. On a
// closed path, trailing controls wrap around and are prepended to the first
// segment. Concatenating the segments of an open path reproduces the point
// sequence exactly.
//
// Returns ErrNoAnchors for a path without on-curve points and
// ErrDanglingControls for an open path ending in controls.
func (path *Path) Segments() ([]Segment, error) {
	var segments []Segment
	var pending []Point
	for _, p := range path.points {
		if p.IsAnchor() {
			segments = append(segments, Segment{Controls: pending, Anchor: p})
			pending = nil
			continue
		}
		pending = append(pending, p)
	}
	if len(segments) == 0 {
		tracer().Errorf("cannot segment path: no anchors among %d points", len(pending))
		return nil, fmt.Errorf("%w: %d control points", ErrNoAnchors, len(pending))
	}
	if len(pending) > 0 {
		if !path.closed {
			tracer().Errorf("cannot segment open path: %d trailing controls", len(pending))
			return nil, fmt.Errorf("%w: %d trailing controls", ErrDanglingControls, len(pending))
		}
		first := segments[0]
		first.Controls = append(pending, first.Controls...)
		segments[0] = first
	}
	return segments, nil
}

// AsString returns a path as a (debugging) string, in a notation close to
// MetaFont's: anchors as "(x,y)", controls as "<x,y>", joined by "..", with
// a trailing ".. cycle" for closed paths.
func AsString(path *Path) string {
	var s string
	for i, p := range path.points {
		if i > 0 {
			s += " .. "
		}
		s += p.String()
	}
	if path.closed {
		s += " .. cycle"
	}
	return s
}
