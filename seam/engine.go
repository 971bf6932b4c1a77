package seam

import (
	"fmt"

	"github.com/npillmayer/mirror"
)

// A fully validated per-path work order. Phase 1 of Mirror produces plans,
// phase 2 executes them; nothing observable happens in between.
type plan struct {
	skip   bool
	kept   []mirror.Point
	closed bool
	ax     Axis
}

// Mirror reconstructs the full outline for every path carrying a
// selection. Paths without any selected point pass through unchanged; if
// no path has a selection at all, the call fails with ErrNoSelection.
//
// All validation completes before any result is assembled: either every
// input path yields a Result (indexed like the input), or Mirror returns a
// single typed error and no output. Inputs are never modified.
func Mirror(paths []*mirror.Path, dir Direction, cfg Config) ([]Result, error) {
	plans := make([]plan, len(paths))
	selected := false
	for i, path := range paths {
		if path == nil || !path.HasSelection() {
			plans[i].skip = true
			continue
		}
		selected = true
		p, err := planPath(path, dir, cfg)
		if err != nil {
			return nil, fmt.Errorf("path #%d: %w", i, err)
		}
		plans[i] = p
	}
	if !selected {
		return nil, ErrNoSelection
	}
	results := make([]Result, len(paths))
	for i, path := range paths {
		if plans[i].skip {
			results[i] = Result{Points: path.Points(), Closed: path.IsClosed()}
			continue
		}
		res, err := mergeHalves(plans[i].kept, plans[i].closed, plans[i].ax, dir, cfg)
		if err != nil {
			return nil, fmt.Errorf("path #%d: %w", i, err)
		}
		results[i] = res
	}
	return results, nil
}

// planPath runs every check that can fail on one path: axis detection,
// the seam-only selection check, optional snapping, seam alignment, and
// the structural state of the kept half after the far side is discarded.
func planPath(path *mirror.Path, dir Direction, cfg Config) (plan, error) {
	ax, err := DetectAxis(path, dir, cfg)
	if err != nil {
		return plan{}, err
	}
	points := path.Points()
	if !ax.FromBounds && !selectionReachesSourceSide(points, dir, ax) {
		return plan{}, ErrSeamOnlySelection
	}
	if cfg.Snap {
		points, ax = SnapSeam(points, ax, cfg)
	}
	if err := ValidateSeam(points, ax, cfg); err != nil {
		return plan{}, err
	}
	kept := discardFarSide(points, path.IsClosed(), ax, dir)
	if n := anchorCount(kept); n < 2 {
		return plan{}, fmt.Errorf("%w: %d anchors left after discarding far side", ErrUnsupportedShape, n)
	}
	if _, err := mirror.FromPoints(kept, path.IsClosed()).Segments(); err != nil {
		return plan{}, fmt.Errorf("%w: %s", ErrUnsupportedShape, err.Error())
	}
	tracer().Infof("planned mirror of %d kept points across %v", len(kept), ax)
	return plan{kept: kept, closed: path.IsClosed(), ax: ax}, nil
}

// selectionReachesSourceSide reports whether at least one selected point
// lies strictly on the edited side of the axis. A selection consisting of
// seam points only leaves nothing to mirror.
func selectionReachesSourceSide(points []mirror.Point, dir Direction, ax Axis) bool {
	for _, p := range points {
		if p.Selected && onSourceSide(coordOf(p, ax.Horizontal), dir, ax.Coord) {
			return true
		}
	}
	return false
}
