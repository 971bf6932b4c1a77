/*
Package mirror implements a point/path model for glyph outlines, suited
for reconstructing symmetric outlines from one edited half.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package mirror

import (
	"fmt"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mirror'
func tracer() tracing.Trace {
	return tracing.Select("mirror")
}

// === Point Data Type =======================================================

// Kind discriminates outline vertices: anchors sit on the curve, controls
// are off-curve Bézier handles.
type Kind int8

const (
	// Anchor is an on-curve outline vertex.
	Anchor Kind = iota
	// Control is an off-curve Bézier handle. It shapes the curve into the
	// anchor that follows it in path order.
	Control
)

func (k Kind) String() string {
	if k == Control {
		return "control"
	}
	return "anchor"
}

// Point is a single outline vertex: a position, a point kind, and a
// selection flag. Points are value types; operations return copies.
type Point struct {
	Pos      arithm.Pair
	Kind     Kind
	Selected bool
}

// AnchorAt constructs an on-curve point.
func AnchorAt(x, y float64) Point {
	return Point{Pos: arithm.P(x, y), Kind: Anchor}
}

// ControlAt constructs an off-curve handle.
func ControlAt(x, y float64) Point {
	return Point{Pos: arithm.P(x, y), Kind: Control}
}

// Select returns a copy of p with the selection flag set.
func (p Point) Select() Point {
	p.Selected = true
	return p
}

// Deselect returns a copy of p with the selection flag cleared.
func (p Point) Deselect() Point {
	p.Selected = false
	return p
}

// X is the x-part of the point's position.
func (p Point) X() float64 {
	return p.Pos.X()
}

// Y is the y-part of the point's position.
func (p Point) Y() float64 {
	return p.Pos.Y()
}

// IsAnchor is a predicate: is this an on-curve point?
func (p Point) IsAnchor() bool {
	return p.Kind == Anchor
}

// Transform returns a copy of p moved by an affine transform. Kind and
// selection flag are preserved.
func (p Point) Transform(t arithm.AT) Point {
	p.Pos = t.Transform(p.Pos)
	return p
}

// Coincides compares the positions of two points within eps, per coordinate.
func (p Point) Coincides(q Point, eps float64) bool {
	dx := p.X() - q.X()
	dy := p.Y() - q.Y()
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx <= eps && dy <= eps
}

// Pretty Stringer. Anchors print as "(x,y)", controls as "<x,y>".
func (p Point) String() string {
	if p.Kind == Control {
		return fmt.Sprintf("<%g,%g>", p.X(), p.Y())
	}
	return fmt.Sprintf("(%g,%g)", p.X(), p.Y())
}

// === Reflections ===========================================================

// MirrorAcrossX returns the affine reflection across the vertical line x = a,
// i.e. (x,y) -> (2a-x, y).
func MirrorAcrossX(a float64) arithm.AT {
	return arithm.AT{
		-1, 0, 2 * a,
		0, 1, 0,
		0, 0, 1,
	}
}

// MirrorAcrossY returns the affine reflection across the horizontal line
// y = b, i.e. (x,y) -> (x, 2b-y).
func MirrorAcrossY(b float64) arithm.AT {
	return arithm.AT{
		1, 0, 0,
		0, -1, 2 * b,
		0, 0, 1,
	}
}

// Bounds returns the extent of a point sequence on one axis: x-extent if
// horizontal is true, y-extent otherwise. All points count, anchors and
// controls alike. ok is false for an empty sequence.
func Bounds(points []Point, horizontal bool) (min, max float64, ok bool) {
	if len(points) == 0 {
		return 0, 0, false
	}
	for i, p := range points {
		c := p.Y()
		if horizontal {
			c = p.X()
		}
		if i == 0 || c < min {
			min = c
		}
		if i == 0 || c > max {
			max = c
		}
	}
	return min, max, true
}
