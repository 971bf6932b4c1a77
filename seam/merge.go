package seam

import (
	"fmt"

	"github.com/npillmayer/mirror"
)

// mergeHalves combines the kept half with its mirrored copy into one
// outline. On closed contours the kept half is first rotated into a
// seam-to-seam arc, so that the stitch points sit at the sequence termini.
// Wherever a terminal anchor of the kept arc and the corresponding terminal
// anchor of the mirrored arc coincide within cfg.MergeTolerance, the
// duplicate introduced by mirroring is dropped: the seam point appears
// exactly once. With both termini stitched, the result is a closed contour.
// Without any coinciding boundary (bounds-fallback selections), the
// mirrored twin is appended as-is and the closed-flag of the source path
// carries over.
func mergeHalves(kept []mirror.Point, closed bool, ax Axis, dir Direction, cfg Config) (Result, error) {
	arc, seamToSeam := extractSeamArc(kept, closed, ax, dir, cfg)
	arcClosed := closed && !seamToSeam
	mirrored, err := mirrorHalf(arc, arcClosed, ax)
	if err != nil {
		return Result{}, err
	}

	boundaries := 0
	if len(arc) > 0 && arc[len(arc)-1].IsAnchor() &&
		arc[len(arc)-1].Coincides(mirrored[0], cfg.MergeTolerance) {
		mirrored = mirrored[1:]
		boundaries++
	}
	combined := make([]mirror.Point, 0, len(arc)+len(mirrored))
	combined = append(combined, arc...)
	combined = append(combined, mirrored...)

	combined = dedupeAdjacent(combined, cfg.Eps)
	combined = snapToAxis(combined, ax, cfg)
	if n := len(combined); n > 1 &&
		combined[0].IsAnchor() && combined[n-1].IsAnchor() &&
		combined[0].Coincides(combined[n-1], cfg.MergeTolerance) {
		combined = combined[:n-1]
		boundaries++
	}
	combined = deselectAll(combined)

	if anchorCount(combined) < 2 {
		return Result{}, fmt.Errorf("%w: %d anchors left after merge", ErrUnsupportedShape, anchorCount(combined))
	}
	resultClosed := closed
	if boundaries == 2 {
		resultClosed = true
	}
	tracer().Infof("merged %d + %d points into %d (%d seam boundaries)",
		len(arc), len(mirrored), len(combined), boundaries)
	return Result{Points: combined, Closed: resultClosed}, nil
}

// extractSeamArc rotates a closed contour into the arc running from one
// seam anchor to the other along the edited side. Candidates are the
// cyclic seam-to-seam walks starting at each seam anchor; the longest one
// whose off-seam anchors average out on the source side wins, with the
// longest candidate overall as fallback. Open paths, bounds-fallback axes
// and contours with fewer than two seam anchors pass through unchanged.
func extractSeamArc(points []mirror.Point, closed bool, ax Axis, dir Direction, cfg Config) ([]mirror.Point, bool) {
	if !closed || ax.FromBounds {
		return points, false
	}
	var seamIdx []int
	for i, p := range points {
		if p.IsAnchor() && almostEqual(coordOf(p, ax.Horizontal), ax.Coord, cfg.CenterBand) {
			seamIdx = append(seamIdx, i)
		}
	}
	if len(seamIdx) < 2 {
		return points, false
	}
	n := len(points)
	var best, longest []mirror.Point
	for _, start := range seamIdx {
		var arc []mirror.Point
		hits := 0
		idx := start
		for steps := 0; steps <= n; steps++ {
			p := points[idx]
			arc = append(arc, p)
			if p.IsAnchor() && almostEqual(coordOf(p, ax.Horizontal), ax.Coord, cfg.CenterBand) {
				hits++
				if hits == 2 && steps > 0 {
					break
				}
			}
			idx = (idx + 1) % n
		}
		if hits < 2 {
			continue
		}
		if len(arc) > len(longest) {
			longest = arc
		}
		if arcOnSourceSide(arc, ax, dir) && len(arc) > len(best) {
			best = arc
		}
	}
	if best == nil {
		best = longest
	}
	if best == nil {
		return points, false
	}
	tracer().Debugf("extracted seam arc of %d points (of %d)", len(best), n)
	return best, true
}

// arcOnSourceSide averages the orientation coordinates of the arc's
// off-seam anchors and checks the mean against the edited side.
func arcOnSourceSide(arc []mirror.Point, ax Axis, dir Direction) bool {
	sum, cnt := 0.0, 0
	for _, p := range arc {
		if !p.IsAnchor() {
			continue
		}
		c := coordOf(p, ax.Horizontal)
		if almostEqual(c, ax.Coord, sideEpsilon) {
			continue
		}
		sum += c
		cnt++
	}
	if cnt == 0 {
		return false
	}
	return onSourceSide(sum/float64(cnt), dir, ax.Coord)
}

// dedupeAdjacent collapses runs of coinciding adjacent anchors to a single
// anchor. Controls are left alone: dropping a handle would change the
// curve degree of its segment.
func dedupeAdjacent(points []mirror.Point, eps float64) []mirror.Point {
	if len(points) == 0 {
		return points
	}
	out := make([]mirror.Point, 0, len(points))
	out = append(out, points[0])
	for _, p := range points[1:] {
		prev := out[len(out)-1]
		if p.IsAnchor() && prev.IsAnchor() && p.Coincides(prev, eps) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// snapToAxis forces every anchor within the center band onto the axis
// coordinate exactly, removing residual sub-eps offsets from the stitched
// outline.
func snapToAxis(points []mirror.Point, ax Axis, cfg Config) []mirror.Point {
	if ax.FromBounds {
		// No literal seam: nothing is supposed to sit on the axis.
		return points
	}
	moved := 0
	for i, p := range points {
		if !p.IsAnchor() {
			continue
		}
		if c := coordOf(p, ax.Horizontal); almostEqual(c, ax.Coord, cfg.CenterBand) && c != ax.Coord {
			points[i] = withCoord(p, ax.Horizontal, ax.Coord)
			moved++
		}
	}
	if moved > 0 {
		tracer().Debugf("snapped %d merged points onto %v", moved, ax)
	}
	return points
}
