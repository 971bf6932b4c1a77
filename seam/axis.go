package seam

import (
	"github.com/npillmayer/mirror"
)

// DetectAxis computes the mirror axis for one path. The candidate
// coordinate is the extremum of the selected anchors facing the missing
// half (see Direction). If no selected anchor lies within cfg.CenterBand of
// the candidate, the selection does not touch a literal seam and the axis
// falls back to the midpoint of the whole path's extent, marked FromBounds.
//
// All points of the path must be passed in, not just the selected ones:
// the bounds fallback measures the full extent.
func DetectAxis(path *mirror.Path, dir Direction, cfg Config) (Axis, error) {
	points := path.Points()
	horizontal := dir.IsHorizontal()
	if !hasSelection(points) {
		return Axis{}, ErrNoSelection
	}
	candidate, ok := seamCandidate(points, dir)
	if ok && len(seamSet(points, Axis{Horizontal: horizontal, Coord: candidate}, cfg)) > 0 {
		ax := Axis{Horizontal: horizontal, Coord: candidate}
		tracer().Debugf("detected %v from selection extremum", ax)
		return ax, nil
	}
	// Selection floats free of any seam: use the center of the full extent.
	min, max, ok := mirror.Bounds(points, horizontal)
	if !ok {
		return Axis{}, ErrNoSelection
	}
	ax := Axis{Horizontal: horizontal, Coord: (min + max) / 2, FromBounds: true}
	tracer().Debugf("detected %v", ax)
	return ax, nil
}

// seamCandidate returns the extremum of the selected anchors' orientation
// coordinates which faces the missing half. The four direction cases are an
// explicit table; do not try to unify them into a formula, the sign
// conventions differ per case.
func seamCandidate(points []mirror.Point, dir Direction) (float64, bool) {
	found := false
	var extremum float64
	for _, p := range points {
		if !p.Selected || !p.IsAnchor() {
			continue
		}
		c := coordOf(p, dir.IsHorizontal())
		if !found {
			extremum = c
			found = true
			continue
		}
		switch dir {
		case Left, Bottom:
			if c > extremum {
				extremum = c
			}
		case Right, Top:
			if c < extremum {
				extremum = c
			}
		}
	}
	return extremum, found
}

// seamSet collects the selected anchors within cfg.CenterBand of the axis.
// Controls are never part of the seam set, regardless of proximity.
func seamSet(points []mirror.Point, ax Axis, cfg Config) []int {
	var set []int
	for i, p := range points {
		if !p.Selected || !p.IsAnchor() {
			continue
		}
		if almostEqual(coordOf(p, ax.Horizontal), ax.Coord, cfg.CenterBand) {
			set = append(set, i)
		}
	}
	return set
}

// onFarSide reports whether a coordinate lies strictly on the side of the
// axis to be replaced by the mirrored half.
func onFarSide(c float64, dir Direction, axis float64) bool {
	switch dir {
	case Left, Bottom:
		return c > axis+sideEpsilon
	case Right, Top:
		return c < axis-sideEpsilon
	}
	return false
}

// onSourceSide reports whether a coordinate lies strictly on the edited
// side of the axis.
func onSourceSide(c float64, dir Direction, axis float64) bool {
	switch dir {
	case Left, Bottom:
		return c < axis-sideEpsilon
	case Right, Top:
		return c > axis+sideEpsilon
	}
	return false
}

func hasSelection(points []mirror.Point) bool {
	for _, p := range points {
		if p.Selected {
			return true
		}
	}
	return false
}
