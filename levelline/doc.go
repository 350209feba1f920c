// Package levelline defines the shared level-line data model: the
// LevelLine record itself, its four line types, and the arena-indexed
// tree that encodes strict geometric inclusion between level lines.
//
// What:
//
//   - LevelLine: a sampled closed polyline at a fixed surface level,
//     tagged Regular, Min, Saddle, or Max.
//   - RowIntersection: one crossing of a level line through a pixel
//     row, the substrate the extraction driver logs for tree recovery.
//   - Tree / Node: an index-based arena (no pointer graphs, matching
//     the teacher's core.Graph and gridgraph.GridGraph) recording
//     parent/child relations between level lines.
//
// Why:
//
//   - Both the extraction driver and external consumers need one
//     shared vocabulary for "a level line" and "its place in the
//     hierarchy" — this package is that vocabulary, with no
//     dependency on how lines were produced.
//
// Errors:
//
//	ErrNilLine            - a nil *LevelLine was passed where one is required.
//	ErrLineIndexOutOfRange - a RowIntersection referenced a line index
//	                         outside the supplied lines slice.
package levelline
