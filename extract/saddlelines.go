package extract

import (
	"sort"

	"github.com/monasse-reeb/reeb/geom"
	"github.com/monasse-reeb/reeb/tracer"
)

// saddleEntry is one dual pixel found to contain a bilinear saddle,
// together with its continuous saddle value and quantization key.
type saddleEntry struct {
	cx, cy int
	value  float64
	key    int64
}

// collectSaddles scans every dual pixel for a bilinear saddle (via
// geom.SaddleInSquare) and returns them sorted by continuous saddle
// value, per spec.md §4.3.
func collectSaddles(image []float64, w, h int) []saddleEntry {
	var out []saddleEntry
	for cy := 0; cy <= h-2; cy++ {
		for cx := 0; cx <= w-2; cx++ {
			a := image[cy*w+cx]
			b := image[cy*w+cx+1]
			c := image[(cy+1)*w+cx+1]
			d := image[(cy+1)*w+cx]
			num, denom, _, _, ok := geom.SaddleInSquare(a, b, c, d)
			if !ok {
				continue
			}
			value := num / denom
			out = append(out, saddleEntry{cx: cx, cy: cy, value: value, key: quantizeKey(value)})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].value < out[j].value })
	return out
}

// saddleLineStart is one candidate start for a saddle-typed trace:
// the dual pixel and which of its two horizontal edgels to enter
// from directly (tracer.S for the top edgel, tracer.N for the
// bottom).
type saddleLineStart struct {
	cx, cy int
	dir    tracer.Direction
	level  float64
}

// groupSaddleStarts partitions sorted saddles into quantization
// groups and, for every group member, yields both of its horizontal
// edgels as candidate trace starts, tagged with that group's level.
// The visit array is reset between groups by the caller (extract.go),
// not within one, per spec.md §4.3's "Reset the visit array between
// quantization groups, not between individual saddles within a
// group."
func groupSaddleStarts(saddles []saddleEntry) [][]saddleLineStart {
	var groups [][]saddleLineStart
	i := 0
	for i < len(saddles) {
		j := i
		for j < len(saddles) && saddles[j].key == saddles[i].key {
			j++
		}
		level := quantizedLevel(saddles[i].key)
		starts := make([]saddleLineStart, 0, 2*(j-i))
		for _, s := range saddles[i:j] {
			starts = append(starts,
				saddleLineStart{cx: s.cx, cy: s.cy, dir: tracer.S, level: level},
				saddleLineStart{cx: s.cx, cy: s.cy, dir: tracer.N, level: level},
			)
		}
		groups = append(groups, starts)
		i = j
	}
	return groups
}
