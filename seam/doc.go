// Package seam reconstructs symmetric glyph outlines from one edited half.
/*

Font editors let users draw one half of a symmetric glyph and complete the
outline by mirroring. This package implements the geometry engine for that
operation: it detects the seam axis from the selection, validates (or snaps)
the seam points, discards the stale far half, reflects the kept half, and
merges both halves into a single correctly wound contour without doubling
the seam points.

The pipeline, per path:

   DetectAxis -> SnapSeam (optional) -> ValidateSeam
      -> discard far side -> mirror half -> merge halves

Every stage is a pure function over point sequences; no state survives a
call. The entry point is

   results, err := seam.Mirror(paths, seam.Left, seam.DefaultConfig())

which either returns a Result for every input path or a single typed error
and no output at all. The calling editor owns selection state, applies the
results back onto its own outline representation, and runs whatever
overlap/winding cleanup it already provides downstream.

Seam detection

The seam candidate is the extremum of the selected anchors facing the
missing half: maximum x for Left, minimum x for Right, minimum y for Top
(y grows upward, as in font coordinates), maximum y for Bottom. If no
selected anchor lies within Config.CenterBand of that candidate, the
selection is a floating shape that never touches a literal seam; the axis
then falls back to the midpoint of the whole path's extent, and seam
validation is skipped.

Control point handling

Off-curve points never count as seam points, and the engine treats a run of
controls together with the anchor that follows as an atomic curve segment.
Reversal of the mirrored half operates on these segments, never on the flat
point list, so Bézier handles stay attached to the anchors they shape.


BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package seam
