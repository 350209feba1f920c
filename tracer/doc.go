// Package tracer implements the level-line tracer (spec.md §4.2): a
// dual-pixel walker that follows a level set of the bilinear
// interpolant from a starting crossing until it closes, emitting an
// ordered polyline and marking the oriented horizontal edgels it
// visits along the way.
//
// What:
//
//   - Walker: holds the current dual pixel, its corner values, and
//     the entry direction; exposes Init/Advance per spec.md §4.2.
//   - VisitedSet: the shared oriented-horizontal-edgel visit bitmap
//     that terminates a trace and prevents re-tracing the same line.
//   - Trace: orchestrates Walker + VisitedSet into the full
//     "follow until closed" loop, optionally logging row crossings
//     for hierarchy recovery (levelline.RowIntersection).
//
// Why:
//
//   - The extraction driver needs one correct implementation of "walk
//     a level set" that both regional-extremum and saddle line
//     extraction can call identically — this package is that shared
//     machinery, grounded on the same explicit-queue/visited-array
//     discipline as gridgraph.ConnectedComponents.
//
// Errors:
//
//	This package has no recoverable error conditions reachable from
//	valid inputs; a dual pixel walked outside the image bounds, or an
//	entry edge that does not actually cross the traced level,
//	indicates a caller bug (bad starting point) or a corrupted image
//	grid and is fatal, matching spec.md §7's "internal assertions ...
//	are fatal" — see ErrInconsistentEntry.
package tracer
