package extract

import (
	"github.com/monasse-reeb/reeb/geom"
	"github.com/monasse-reeb/reeb/levelline"
	"github.com/monasse-reeb/reeb/tracer"
)

type rowEvent struct {
	row int
	x   float64
}

// ExtractLevelLines is the core's primary entry point (spec.md §6).
// The caller must have already replaced the image border with its
// median value (the invocation contract extraction relies on to
// guarantee regional extrema never touch the border); ExtractLevelLines
// does not do this itself.
func ExtractLevelLines(image []uint8, w, h, ptsPerPixel int) ([]*levelline.LevelLine, [][]levelline.RowIntersection, error) {
	if w < 2 || h < 2 || ptsPerPixel < 0 {
		return nil, nil, ErrInvalidInput
	}
	if w > maxImageWidth {
		return nil, nil, ErrTooLarge
	}

	fimg := make([]float64, len(image))
	for i, v := range image {
		fimg[i] = float64(v)
	}

	visited := tracer.NewVisitedSet(w, h)
	rows := make([][]levelline.RowIntersection, h)
	var lines []*levelline.LevelLine

	emit := func(polyline []geom.Point, kind levelline.LineType, level float64, events []rowEvent) {
		idx := len(lines)
		lines = append(lines, &levelline.LevelLine{Level: level, Type: kind, Polyline: polyline})
		for _, e := range events {
			rows[e.row] = append(rows[e.row], levelline.RowIntersection{X: e.x, LineIndex: idx})
		}
	}

	for _, ex := range findRegionalExtrema(fimg, w, h) {
		visited.Reset()
		var events []rowEvent
		poly, err := tracer.Trace(fimg, w, h, ex.cx, ex.cy, ex.level, ptsPerPixel, visited,
			func(row int, x float64) { events = append(events, rowEvent{row, x}) })
		if err != nil {
			return nil, nil, err
		}
		emit(poly, ex.kind, ex.level, events)
	}

	saddles := collectSaddles(fimg, w, h)
	for _, group := range groupSaddleStarts(saddles) {
		visited.Reset()
		for _, st := range group {
			row, col, isS := startEdgelKey(st)
			if visited.Peek(row, col, isS) {
				continue
			}
			var events []rowEvent
			poly, err := tracer.TraceFrom(fimg, w, h, st.cx, st.cy, st.dir, st.level, ptsPerPixel, visited,
				func(row int, x float64) { events = append(events, rowEvent{row, x}) })
			if err != nil {
				return nil, nil, err
			}
			emit(poly, levelline.Saddle, st.level, events)
		}
	}

	return lines, rows, nil
}

func startEdgelKey(st saddleLineStart) (row, col int, isS bool) {
	if st.dir == tracer.S {
		return st.cy, st.cx, true
	}
	return st.cy + 1, st.cx, false
}
