package extract

import "github.com/monasse-reeb/reeb/levelline"

// extremum describes one regional-extremum level line still to be
// traced: its level, its type, and the dual pixel whose south edgel
// the trace should start from.
type extremum struct {
	level  float64
	kind   levelline.LineType
	cx, cy int
}

var neighborOffsets = [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

// findRegionalExtrema locates every regional minimum and maximum
// plateau (spec.md §4.3): flood fill the 4-connected equal-value
// plateau at each unvisited pixel whose right neighbor differs, and
// classify it by comparing every rim pixel's exterior neighbors to
// the plateau level. Grounded on gridgraph.ConnectedComponents' BFS
// queue-as-slice discipline, adapted from graph adjacency to a 4-grid.
func findRegionalExtrema(image []float64, w, h int) []extremum {
	regionOf := make([]int, w*h)
	for i := range regionOf {
		regionOf[i] = -1
	}

	var out []extremum
	nextRegion := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			if regionOf[idx] != -1 {
				continue
			}
			if x == w-1 || image[idx] == image[idx+1] {
				continue
			}
			members := floodFillPlateau(image, w, h, x, y, regionOf, nextRegion)
			nextRegion++

			kind, ok := classifyPlateau(image, w, h, regionOf, members)
			if !ok {
				continue
			}
			sx, sy, found := firstBoundaryEdgel(w, h, regionOf, members)
			if !found {
				continue
			}
			level := image[members[0]]
			if kind == levelline.Max {
				level -= QuantDelta
			} else {
				level += QuantDelta
			}
			out = append(out, extremum{level: level, kind: kind, cx: sx, cy: sy})
		}
	}
	return out
}

func floodFillPlateau(image []float64, w, h, startX, startY int, regionOf []int, id int) []int {
	level := image[startY*w+startX]
	queue := []int{startY*w + startX}
	regionOf[startY*w+startX] = id
	members := make([]int, 0, 8)

	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]
		members = append(members, idx)
		x, y := idx%w, idx/w

		for _, d := range neighborOffsets {
			nx, ny := x+d[0], y+d[1]
			if nx < 0 || nx >= w || ny < 0 || ny >= h {
				continue
			}
			nidx := ny*w + nx
			if regionOf[nidx] != -1 || image[nidx] != level {
				continue
			}
			regionOf[nidx] = id
			queue = append(queue, nidx)
		}
	}
	return members
}

// classifyPlateau reports whether the plateau (members, all sharing
// one value) is a regional maximum or minimum: it must not touch the
// image border, and every rim pixel (a member with at least one
// exterior neighbor) must have a strictly lower exterior neighbor
// (Max) or a strictly higher one (Min) — not that ALL of its exterior
// neighbors lie on that side, just that at least one does, per
// spec.md §4.3's "every border pixel ... has a strictly lower
// neighbor." A rim pixel adjacent to both a higher and a lower
// neighbor (e.g. the shoulder of a taller peak) still satisfies the
// Max side of that test, which is what lets a ridge plateau report as
// its own regional maximum even while a still-higher peak sits beside
// it (spec.md §8 scenario 5).
func classifyPlateau(image []float64, w, h int, regionOf, members []int) (levelline.LineType, bool) {
	level := image[members[0]]
	haveLowerEverywhere, haveHigherEverywhere := true, true

	for _, idx := range members {
		x, y := idx%w, idx/w
		if x == 0 || x == w-1 || y == 0 || y == h-1 {
			return 0, false
		}
		rimLower, rimHigher, isRim := false, false, false
		for _, d := range neighborOffsets {
			nx, ny := x+d[0], y+d[1]
			nidx := ny*w + nx
			if regionOf[nidx] == regionOf[idx] {
				continue
			}
			isRim = true
			switch nv := image[nidx]; {
			case nv < level:
				rimLower = true
			case nv > level:
				rimHigher = true
			}
		}
		if isRim {
			if !rimLower {
				haveLowerEverywhere = false
			}
			if !rimHigher {
				haveHigherEverywhere = false
			}
		}
	}

	switch {
	case haveLowerEverywhere && !haveHigherEverywhere:
		return levelline.Max, true
	case haveHigherEverywhere && !haveLowerEverywhere:
		return levelline.Min, true
	default:
		return 0, false
	}
}

// firstBoundaryEdgel returns the left-pixel coordinate of the first
// (in row-major scan order) horizontal edgel crossing the plateau's
// boundary — exactly one of its two pixels belongs to the plateau.
// This is the dual pixel the trace should Init from, assuming south
// entry (spec.md §4.3's "starting edgel for the trace is the first
// plateau-exterior edgel crossed in scan order").
func firstBoundaryEdgel(w, h int, regionOf, members []int) (cx, cy int, found bool) {
	id := regionOf[members[0]]
	for y := 0; y < h; y++ {
		for x := 0; x < w-1; x++ {
			left, right := regionOf[y*w+x], regionOf[y*w+x+1]
			if (left == id) != (right == id) {
				return x, y, true
			}
		}
	}
	return 0, 0, false
}
