package tracer

import "github.com/monasse-reeb/reeb/geom"

// RowLogger receives one row crossing per vertical-direction step, for
// hierarchy recovery (levelline.BuildTree). x is the crossing's
// abscissa and row its image row; the caller supplies lineIndex.
type RowLogger func(row int, x float64)

// Trace follows the level line starting at the dual pixel with
// top-left corner (cx, cy) — assumed entered from the south, per
// Walker.Init — at the given level, until it closes, and returns its
// polyline.
func Trace(image []float64, w, h, cx, cy int, level float64, ptsPerPixel int, visited *VisitedSet, log RowLogger) ([]geom.Point, error) {
	walker := NewWalker(image, w, h)
	start, err := walker.Init(cx, cy, level)
	if err != nil {
		return nil, err
	}
	return follow(walker, start, level, ptsPerPixel, visited, log)
}

// TraceFrom follows the level line starting at the dual pixel with
// top-left corner (cx, cy), entered directly from dir (S or N, no
// flip heuristic) — used when the caller already knows which of a
// saddle's two horizontal edgels to start from, rather than letting
// Init's south-then-flip-to-north heuristic pick one for it.
func TraceFrom(image []float64, w, h, cx, cy int, dir Direction, level float64, ptsPerPixel int, visited *VisitedSet, log RowLogger) ([]geom.Point, error) {
	walker := NewWalker(image, w, h)
	start, err := walker.InitDirect(cx, cy, dir, level)
	if err != nil {
		return nil, err
	}
	return follow(walker, start, level, ptsPerPixel, visited, log)
}

// follow runs the walker to closure, checking and recording every
// vertical-direction step against visited; the trace stops the first
// time that check reports an edgel already visited. If log is
// non-nil, it is called once per vertical-direction step with that
// step's entry row and x-coordinate.
func follow(walker *Walker, start geom.Point, level float64, ptsPerPixel int, visited *VisitedSet, log RowLogger) ([]geom.Point, error) {
	polyline := []geom.Point{start}
	for {
		if walker.Dir() == S || walker.Dir() == N {
			row, col, isS := walker.EdgelKey()
			if visited.CheckAndSet(row, col, isS) {
				break
			}
			if log != nil {
				log(row, start.X)
			}
		}
		samples, next, err := walker.Advance(level, ptsPerPixel)
		if err != nil {
			return nil, err
		}
		polyline = append(polyline, samples...)
		polyline = append(polyline, next)
		start = next
	}

	return polyline, nil
}
