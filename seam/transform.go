package seam

import (
	"fmt"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/mirror"
)

// discardFarSide removes every unselected point lying strictly beyond the
// axis on the far side, then every control that lost its governing anchor.
// The kept points retain their relative order. Selected far-side points
// survive; the caller decided they belong to the edited half.
func discardFarSide(points []mirror.Point, closed bool, ax Axis, dir Direction) []mirror.Point {
	keep := make([]bool, len(points))
	dropped := 0
	for i, p := range points {
		keep[i] = p.Selected || !onFarSide(coordOf(p, ax.Horizontal), dir, ax.Coord)
		if !keep[i] {
			dropped++
		}
	}
	// Orphaned controls follow their anchor out.
	for i, p := range points {
		if !keep[i] || p.IsAnchor() {
			continue
		}
		if j, ok := governingAnchor(points, i, closed); !ok || !keep[j] {
			keep[i] = false
			dropped++
		}
	}
	kept := make([]mirror.Point, 0, len(points)-dropped)
	for i, p := range points {
		if keep[i] {
			kept = append(kept, p)
		}
	}
	tracer().Debugf("discarded %d far-side points (%v, %v)", dropped, dir, ax)
	return kept
}

// governingAnchor finds the anchor a control at index i shapes: the next
// anchor in path order, wrapping around on closed paths.
func governingAnchor(points []mirror.Point, i int, closed bool) (int, bool) {
	n := len(points)
	for step := 1; step <= n; step++ {
		j := i + step
		if j >= n {
			if !closed {
				return 0, false
			}
			j %= n
		}
		if points[j].IsAnchor() {
			return j, true
		}
	}
	return 0, false
}

// mirrorHalf reflects a point sequence across the axis and reverses it so
// that it continues the kept half's winding. Reversal operates on whole
// curve segments: a run of controls stays attached to the anchor it shapes,
// with the controls' internal order flipped. A naive reversal of the flat
// list would hand every control to the wrong anchor.
func mirrorHalf(points []mirror.Point, closed bool, ax Axis) ([]mirror.Point, error) {
	var t arithm.AT
	if ax.Horizontal {
		t = mirror.MirrorAcrossX(ax.Coord)
	} else {
		t = mirror.MirrorAcrossY(ax.Coord)
	}
	reflected := make([]mirror.Point, len(points))
	for i, p := range points {
		reflected[i] = p.Transform(t)
	}
	segments, err := mirror.FromPoints(reflected, closed).Segments()
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedShape, err.Error())
	}
	return reverseSegments(segments), nil
}

// reverseSegments flattens a segment sequence in reverse traversal order.
// The incoming controls of the leading segment (nonempty only on wrapped
// closed contours) become trailing controls, which wrap again to shape the
// new leading anchor.
func reverseSegments(segments []mirror.Segment) []mirror.Point {
	n := len(segments)
	var out []mirror.Point
	out = append(out, segments[n-1].Anchor)
	for i := n - 1; i >= 1; i-- {
		out = append(out, reversedControls(segments[i])...)
		out = append(out, segments[i-1].Anchor)
	}
	out = append(out, reversedControls(segments[0])...)
	return out
}

func reversedControls(seg mirror.Segment) []mirror.Point {
	ctrls := make([]mirror.Point, len(seg.Controls))
	for i, c := range seg.Controls {
		ctrls[len(seg.Controls)-1-i] = c
	}
	return ctrls
}
