package seam

import (
	"errors"
	"testing"

	"github.com/npillmayer/mirror"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// A square with every anchor selected; all four directions find a seam
// candidate on one of its edges.
func selectedSquare() *mirror.Path {
	return mirror.NullPath().
		Anchor(-10, -10).Selected().
		Anchor(10, -10).Selected().
		Anchor(10, 10).Selected().
		Anchor(-10, 10).Selected().
		Cycle()
}

func TestDetectAxisDirectionTable(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cases := []struct {
		dir        Direction
		horizontal bool
		coord      float64
	}{
		{Left, true, 10},
		{Right, true, -10},
		{Top, false, -10},
		{Bottom, false, 10},
	}
	for _, c := range cases {
		ax, err := DetectAxis(selectedSquare(), c.dir, DefaultConfig())
		assert.NoError(t, err, "direction %v", c.dir)
		assert.Equal(t, c.horizontal, ax.Horizontal, "direction %v", c.dir)
		assert.Equal(t, c.coord, ax.Coord, "direction %v", c.dir)
		assert.False(t, ax.FromBounds, "direction %v", c.dir)
	}
}

func TestDetectAxisRejectsEmptySelection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	path := mirror.NullPath().Anchor(0, 0).Anchor(10, 0).End()
	_, err := DetectAxis(path, Left, DefaultConfig())
	assert.True(t, errors.Is(err, ErrNoSelection))
}

func TestDetectAxisBoundsFallback(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// The selection carries no anchors, so no candidate extremum
	// qualifies as a seam. The axis must come from the full path extent,
	// not the selection's.
	path := mirror.NullPath().
		Anchor(10, 0).
		Control(12, 5).Selected().
		Control(18, 5).Selected().
		Anchor(20, 0).
		Anchor(190, 0).
		Anchor(200, 0).
		End()
	ax, err := DetectAxis(path, Left, DefaultConfig())
	assert.NoError(t, err)
	assert.True(t, ax.FromBounds)
	assert.True(t, ax.Horizontal)
	assert.Equal(t, 105.0, ax.Coord) // (10+200)/2 over the whole path
}

func TestSeamSetExcludesControlsAndUnselected(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := []mirror.Point{
		mirror.AnchorAt(0, 100).Select(),
		mirror.ControlAt(0, 50).Select(), // control: never a seam point
		mirror.AnchorAt(0.5, 0).Select(),
		mirror.AnchorAt(0, 25),     // unselected
		mirror.AnchorAt(80, 0).Select(), // far from axis
	}
	ax := Axis{Horizontal: true, Coord: 0}
	set := seamSet(points, ax, DefaultConfig())
	assert.Equal(t, []int{0, 2}, set)
}

func TestParseDirection(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, dir := range []Direction{Top, Right, Bottom, Left} {
		parsed, err := ParseDirection(dir.String())
		assert.NoError(t, err)
		assert.Equal(t, dir, parsed)
	}
	parsed, err := ParseDirection(" LEFT ")
	assert.NoError(t, err)
	assert.Equal(t, Left, parsed)
	_, err = ParseDirection("sideways")
	assert.Error(t, err)
}
