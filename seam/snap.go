package seam

import (
	"math"

	"github.com/npillmayer/mirror"
)

// SnapSeam aligns the seam points to their common mean: the axis coordinate
// becomes the arithmetic mean of the seam set's orientation coordinates,
// and every seam point is moved onto it. The orthogonal coordinates are
// untouched. Seam set membership is decided against the incoming axis.
//
// Snapping runs before strict validation, which thereby cannot fail for
// seam points. The input slice is not modified.
func SnapSeam(points []mirror.Point, ax Axis, cfg Config) ([]mirror.Point, Axis) {
	set := seamSet(points, ax, cfg)
	if len(set) == 0 {
		return points, ax
	}
	sum := 0.0
	for _, i := range set {
		sum += coordOf(points[i], ax.Horizontal)
	}
	mean := sum / float64(len(set))
	snapped := make([]mirror.Point, len(points))
	copy(snapped, points)
	for _, i := range set {
		snapped[i] = withCoord(snapped[i], ax.Horizontal, mean)
	}
	ax.Coord = mean
	tracer().Debugf("snapped %d seam points to %v", len(set), ax)
	return snapped, ax
}

// ValidateSeam checks the seam points against the axis. Without snapping,
// every seam point must lie within cfg.Eps of the axis coordinate; the
// returned *AlignmentError lists every offender with its offset. An empty
// seam set fails with ErrNoSeamPoints, except in bounds-fallback mode,
// where no literal seam is expected.
//
// Unselected anchors on the far side are never validated; they get
// discarded, not mirrored.
func ValidateSeam(points []mirror.Point, ax Axis, cfg Config) error {
	set := seamSet(points, ax, cfg)
	if len(set) == 0 {
		if ax.FromBounds {
			return nil
		}
		return ErrNoSeamPoints
	}
	if cfg.Snap {
		// Snapping has aligned the seam set by construction.
		return nil
	}
	var offenders []Offset
	for _, i := range set {
		delta := coordOf(points[i], ax.Horizontal) - ax.Coord
		if math.Abs(delta) > cfg.Eps {
			offenders = append(offenders, Offset{Point: points[i], Delta: delta})
		}
	}
	if len(offenders) > 0 {
		return &AlignmentError{Axis: ax, Offenders: offenders}
	}
	return nil
}
