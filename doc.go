// Package reeb implements a topological analysis engine for bilinear
// surfaces defined over a pixel grid: level-line extraction and a
// persistence map measuring how prominent each regional extremum is.
//
// The engine is organized under four subpackages:
//
//	geom/        — bilinear saddle solving and hyperbola sampling
//	levelline/   — the LevelLine/Tree types and containment recovery
//	tracer/      — the dual-pixel walker that traces one level line
//	extract/     — orchestration: quantization, extrema, saddle grouping
//	persistence/ — the seven-stage union-find persistence engine
//
// A minimal walk-through:
//
//	lines, rows, err := extract.ExtractLevelLines(image, w, h, ptsPerPixel)
//	tree, err := levelline.BuildTree(lines, rows)
//	pm, err := persistence.Persistence(image32, w, h)
package reeb
