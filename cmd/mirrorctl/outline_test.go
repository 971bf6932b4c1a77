package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/mirror/seam"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const houseYAML = `
paths:
  - closed: true
    points:
      - {x: -100, y: 0, selected: true}
      - {x: -50, y: 100, selected: true}
      - {x: 0, y: 100, selected: true}
      - {x: 0, y: 0, selected: true}
`

func TestReadOutline(t *testing.T) {
	doc, err := readOutline(strings.NewReader(houseYAML))
	require.NoError(t, err)
	require.Len(t, doc.Paths, 1)
	assert.True(t, doc.Paths[0].Closed)
	assert.Len(t, doc.Paths[0].Points, 4)
	assert.Equal(t, pointDoc{X: -100, Y: 0, Selected: true}, doc.Paths[0].Points[0])
}

func TestReadOutlineRejectsUnknownFields(t *testing.T) {
	_, err := readOutline(strings.NewReader(`
paths:
  - closed: true
    nodes: []
`))
	assert.Error(t, err)
}

func TestToPaths(t *testing.T) {
	doc := outlineDoc{Paths: []pathDoc{{
		Closed: false,
		Points: []pointDoc{
			{X: 0, Y: 0},
			{X: 1, Y: 2, Kind: "control", Selected: true},
			{X: 3, Y: 0, Kind: "anchor"},
		},
	}}}
	paths, err := doc.toPaths()
	require.NoError(t, err)
	require.Len(t, paths, 1)
	p := paths[0]
	assert.Equal(t, 3, p.N())
	assert.False(t, p.IsClosed())
	assert.True(t, p.Pt(0).IsAnchor())
	assert.False(t, p.Pt(1).IsAnchor())
	assert.True(t, p.Pt(1).Selected)
}

func TestToPathsRejectsUnknownKind(t *testing.T) {
	doc := outlineDoc{Paths: []pathDoc{{
		Points: []pointDoc{{X: 0, Y: 0, Kind: "handle"}},
	}}}
	_, err := doc.toPaths()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown kind")
}

// Read a half outline, mirror it, write the completed outline back.
func TestOutlineRoundTrip(t *testing.T) {
	doc, err := readOutline(strings.NewReader(houseYAML))
	require.NoError(t, err)
	paths, err := doc.toPaths()
	require.NoError(t, err)
	results, err := seam.Mirror(paths, seam.Left, seam.DefaultConfig())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, writeOutline(&buf, fromResults(results)))

	out, err := readOutline(&buf)
	require.NoError(t, err)
	require.Len(t, out.Paths, 1)
	assert.True(t, out.Paths[0].Closed)
	require.Len(t, out.Paths[0].Points, 6)
	assert.Equal(t, pointDoc{X: 0, Y: 0}, out.Paths[0].Points[0])
	assert.Equal(t, pointDoc{X: 100, Y: 0}, out.Paths[0].Points[5])
	for _, pt := range out.Paths[0].Points {
		assert.False(t, pt.Selected, "results come back deselected")
	}
}

func TestReportErrorHints(t *testing.T) {
	assert.NoError(t, reportError(nil))

	err := reportError(seam.ErrSeamAlignment)
	assert.True(t, errors.Is(err, seam.ErrSeamAlignment))
	assert.Contains(t, err.Error(), "--snap")

	err = reportError(seam.ErrNoSelection)
	assert.True(t, errors.Is(err, seam.ErrNoSelection))
	assert.Contains(t, err.Error(), "selected: true")

	plain := errors.New("disk full")
	assert.Equal(t, plain, reportError(plain))
}
