package seam

import (
	"math"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/mirror"
)

func almostEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

// Coordinate of a point on the mirroring axis' orientation: x for
// horizontal mirroring, y otherwise.
func coordOf(p mirror.Point, horizontal bool) float64 {
	if horizontal {
		return p.X()
	}
	return p.Y()
}

// withCoord returns a copy of p with the orientation coordinate replaced.
// The orthogonal coordinate is untouched.
func withCoord(p mirror.Point, horizontal bool, c float64) mirror.Point {
	if horizontal {
		p.Pos = arithm.P(c, p.Y())
	} else {
		p.Pos = arithm.P(p.X(), c)
	}
	return p
}

func anchorCount(points []mirror.Point) int {
	n := 0
	for _, p := range points {
		if p.IsAnchor() {
			n++
		}
	}
	return n
}

func deselectAll(points []mirror.Point) []mirror.Point {
	for i := range points {
		points[i].Selected = false
	}
	return points
}
