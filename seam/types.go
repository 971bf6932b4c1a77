package seam

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/mirror"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'mirror.seam'
func tracer() tracing.Trace {
	return tracing.Select("mirror.seam")
}

// Points closer to the axis than this do not count as lying on either side.
const sideEpsilon = 0.5

var (
	// ErrNoSelection indicates that no point of any path was selected.
	ErrNoSelection = errors.New("no points selected")
	// ErrSeamOnlySelection indicates a selection consisting of seam points
	// only, with no half to mirror.
	ErrSeamOnlySelection = errors.New("selection contains only seam points")
	// ErrNoSeamPoints indicates that no selected anchor was found near the
	// seam axis.
	ErrNoSeamPoints = errors.New("no seam points found near axis")
	// ErrSeamAlignment indicates seam points offset from the axis beyond
	// tolerance. Errors carrying it are of type *AlignmentError.
	ErrSeamAlignment = errors.New("seam points not aligned with axis")
	// ErrUnsupportedShape indicates a path too degenerate to mirror.
	ErrUnsupportedShape = errors.New("unsupported shape")
)

// Direction names the half the user edited, and thereby which extremum of
// the selection is the seam-adjacent boundary.
type Direction int8

const (
	// Top half kept, mirrored downwards.
	Top Direction = iota
	// Right half kept, mirrored to the left.
	Right
	// Bottom half kept, mirrored upwards.
	Bottom
	// Left half kept, mirrored to the right.
	Left
)

func (d Direction) String() string {
	switch d {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("direction(%d)", int8(d))
}

// ParseDirection converts a direction name ("top", "right", "bottom",
// "left", case-insensitive) into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top":
		return Top, nil
	case "right":
		return Right, nil
	case "bottom":
		return Bottom, nil
	case "left":
		return Left, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// IsHorizontal is a predicate: does mirroring for this direction move
// points horizontally, i.e. across a vertical seam line?
func (d Direction) IsHorizontal() bool {
	return d == Left || d == Right
}

// Axis is the mirror axis of one invocation: a vertical line x = Coord for
// horizontal mirroring, a horizontal line y = Coord otherwise. FromBounds
// records that the coordinate was derived from the full path extent because
// the selection does not touch a literal seam.
type Axis struct {
	Horizontal bool
	Coord      float64
	FromBounds bool
}

func (ax Axis) String() string {
	line := "y"
	if ax.Horizontal {
		line = "x"
	}
	if ax.FromBounds {
		return fmt.Sprintf("axis %s=%g (from bounds)", line, ax.Coord)
	}
	return fmt.Sprintf("axis %s=%g", line, ax.Coord)
}

// Config carries the tolerances of one mirror invocation. Tolerances are
// per-call, not package globals, so invocations with different precision
// needs can coexist.
type Config struct {
	// CenterBand is the distance from the axis within which a selected
	// anchor counts as a seam point.
	CenterBand float64
	// Eps is the alignment tolerance for seam points when snapping is off.
	Eps float64
	// MergeTolerance is the distance within which boundary anchors of the
	// kept and the mirrored half are considered the same point.
	MergeTolerance float64
	// Snap aligns seam points to their mean coordinate before validation.
	Snap bool
}

// DefaultConfig returns the tolerances used by interactive editing hosts.
func DefaultConfig() Config {
	return Config{
		CenterBand:     5.0,
		Eps:            0.01,
		MergeTolerance: 0.25,
		Snap:           false,
	}
}

// Result is the reconstructed outline for one input path. It fully
// replaces the caller's working copy of that path.
type Result struct {
	Points []mirror.Point
	Closed bool
}

// Offset describes one seam point's distance from the axis.
type Offset struct {
	Point mirror.Point
	Delta float64
}

// AlignmentError reports every seam point offset from the axis beyond
// tolerance. It wraps ErrSeamAlignment, so errors.Is keeps working.
type AlignmentError struct {
	Axis      Axis
	Offenders []Offset
}

func (e *AlignmentError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%v: %d point(s) off %v:", ErrSeamAlignment, len(e.Offenders), e.Axis)
	for _, off := range e.Offenders {
		fmt.Fprintf(&sb, " %v by %g", off.Point, off.Delta)
	}
	return sb.String()
}

func (e *AlignmentError) Unwrap() error {
	return ErrSeamAlignment
}
