package seam

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/mirror"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func anchors(coords ...[2]float64) []mirror.Point {
	pts := make([]mirror.Point, len(coords))
	for i, c := range coords {
		pts[i] = mirror.AnchorAt(c[0], c[1])
	}
	return pts
}

func TestMergeHouseContour(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	kept := anchors([2]float64{-100, 0}, [2]float64{-50, 100}, [2]float64{0, 100}, [2]float64{0, 0})
	ax := Axis{Horizontal: true, Coord: 0}
	res, err := mergeHalves(kept, true, ax, Left, DefaultConfig())
	if err != nil {
		t.Fatalf("mergeHalves failed: %v", err)
	}
	if !res.Closed {
		t.Errorf("expected a closed contour")
	}
	// Both seam anchors appear exactly once: 4 + 4 - 2 points.
	want := anchors([2]float64{0, 0}, [2]float64{-100, 0}, [2]float64{-50, 100},
		[2]float64{0, 100}, [2]float64{50, 100}, [2]float64{100, 0})
	if diff := cmp.Diff(want, res.Points); diff != "" {
		t.Errorf("merged contour mismatch (-want +got):\n%s", diff)
	}
}

func TestMergeDedupCounts(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	ax := Axis{Horizontal: true, Coord: 0}

	// One shared boundary: open arc starting on the seam.
	oneSeam := anchors([2]float64{0, 0}, [2]float64{-50, 10}, [2]float64{-60, 80})
	res, err := mergeHalves(oneSeam, false, ax, Left, DefaultConfig())
	if err != nil {
		t.Fatalf("mergeHalves failed: %v", err)
	}
	if len(res.Points) != len(oneSeam)*2-1 {
		t.Errorf("one boundary: expected %d points, got %d", len(oneSeam)*2-1, len(res.Points))
	}
	if res.Closed {
		t.Errorf("one boundary: an open path with a free end must stay open")
	}

	// Two shared boundaries: open arc with both termini on the seam.
	twoSeams := anchors([2]float64{0, 0}, [2]float64{-50, 10}, [2]float64{0, 80})
	res, err = mergeHalves(twoSeams, false, ax, Left, DefaultConfig())
	if err != nil {
		t.Fatalf("mergeHalves failed: %v", err)
	}
	if len(res.Points) != len(twoSeams)*2-2 {
		t.Errorf("two boundaries: expected %d points, got %d", len(twoSeams)*2-2, len(res.Points))
	}
	if !res.Closed {
		t.Errorf("two boundaries: both termini stitched, result must be closed")
	}
}

func TestMergeFloatingTwinIsNotStitched(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	// Bounds-fallback: the kept shape never touches the axis; its twin is
	// appended without any seam deduplication.
	square := anchors([2]float64{10, 0}, [2]float64{20, 0}, [2]float64{20, 10}, [2]float64{10, 10})
	ax := Axis{Horizontal: true, Coord: 100, FromBounds: true}
	res, err := mergeHalves(square, true, ax, Left, DefaultConfig())
	if err != nil {
		t.Fatalf("mergeHalves failed: %v", err)
	}
	if len(res.Points) != 8 {
		t.Fatalf("expected 8 points (square + twin), got %d", len(res.Points))
	}
	if !res.Closed {
		t.Errorf("closed flag of the source must carry over")
	}
	twin := res.Points[4:]
	for _, p := range twin {
		if p.X() < 180 || p.X() > 190 {
			t.Errorf("twin point %v not mirrored around x=100", p)
		}
	}
}

func TestMergeRejectsDegenerateRemainder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	single := anchors([2]float64{0, 0})
	ax := Axis{Horizontal: true, Coord: 0}
	_, err := mergeHalves(single, false, ax, Left, DefaultConfig())
	if !errors.Is(err, ErrUnsupportedShape) {
		t.Fatalf("expected ErrUnsupportedShape, got %v", err)
	}
}

func TestExtractSeamArcPicksSourceSide(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	kept := anchors([2]float64{-100, 0}, [2]float64{-50, 100}, [2]float64{0, 100}, [2]float64{0, 0})
	ax := Axis{Horizontal: true, Coord: 0}
	arc, ok := extractSeamArc(kept, true, ax, Left, DefaultConfig())
	if !ok {
		t.Fatalf("expected a seam-to-seam arc")
	}
	if len(arc) != 4 {
		t.Fatalf("expected the 4-point arc around the left side, got %d points", len(arc))
	}
	if arc[0].X() != 0 || arc[0].Y() != 0 {
		t.Errorf("expected the arc to start at the seam anchor (0,0), got %v", arc[0])
	}
}

func TestDedupeAdjacentKeepsControls(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	points := []mirror.Point{
		mirror.AnchorAt(0, 0),
		mirror.AnchorAt(0, 0.001),
		mirror.ControlAt(0, 0),
	}
	out := dedupeAdjacent(points, 0.01)
	if len(out) != 2 {
		t.Fatalf("expected 2 points, got %d", len(out))
	}
	if out[1].IsAnchor() {
		t.Errorf("the coinciding control must survive, dropping it would change the curve degree")
	}
}
