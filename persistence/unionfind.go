package persistence

// mergeForest runs the ascending component-merge pass over the
// combined sample array: every sample becomes the root of its own
// singleton component when first processed, then absorbs any
// already-processed neighbor's component root. Because processing
// order is ascending by value, a component's root is always its
// highest-valued member seen so far.
//
// parent and zparent start out identical; zparent accumulates path
// compression on every find and is discarded after canonicalization,
// while parent is only ever rewritten at a component root, so it stays
// a valid merge tree usable by the node-tree stage.
func mergeForest(g *sampleGrid) (parent, zparent []int32) {
	n := len(g.value)
	parent = make([]int32, n)
	zparent = make([]int32, n)
	processed := make([]bool, n)

	find := func(u int32) int32 {
		for zparent[u] != u {
			zparent[u] = zparent[zparent[u]]
			u = zparent[u]
		}
		return u
	}

	for _, p := range g.order {
		parent[p] = int32(p)
		zparent[p] = int32(p)

		for _, q := range neighborsOf(g, p) {
			if !processed[q] {
				continue
			}
			r := find(int32(q))
			if int(r) != p {
				parent[r] = int32(p)
				zparent[r] = int32(p)
			}
		}
		processed[p] = true
	}

	return parent, zparent
}

// neighborsOf returns the indices merge considers adjacent to idx: the
// 8-connected pixels around a real sample, or the 4 real corners of
// the dual pixel a virtual sample sits in.
func neighborsOf(g *sampleGrid, idx int) []int {
	x, y := g.coords(idx)

	if g.kind(idx) == Real {
		neighbors := make([]int, 0, 8)
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := x+dx, y+dy
				if nx < 0 || nx >= g.w || ny < 0 || ny >= g.h {
					continue
				}
				neighbors = append(neighbors, realIndex(g.w, nx, ny))
			}
		}
		return neighbors
	}

	corners := [4][2]int{{x, y}, {x + 1, y}, {x + 1, y + 1}, {x, y + 1}}
	neighbors := make([]int, 0, 4)
	for _, c := range corners {
		neighbors = append(neighbors, realIndex(g.w, c[0], c[1]))
	}
	return neighbors
}

// canonicalize folds every sample's parent pointer onto its plateau's
// single canonical representative (Stage 4). Walking in descending
// value order, a sample's immediate parent q has already been fully
// resolved by the time p is visited (q's value is always ≥ p's, and
// ties are processed earliest-ascending-first, so q never comes later
// in this reverse walk). Skipping through q whenever q is itself
// non-canonical — rather than only when p and q share a level — is
// what keeps a same-value chain of any depth, or a canonical sample
// whose cross-plateau parent is itself mid-plateau, collapsing onto
// one representative in a single pass instead of leaving intermediate
// samples stranded pointing at each other.
func canonicalize(g *sampleGrid, parent []int32) {
	for i := len(g.order) - 1; i >= 0; i-- {
		p := g.order[i]
		q := int(parent[p])
		if q == p {
			continue
		}
		if !isCanonical(g, parent, q) {
			parent[p] = parent[q]
		}
	}
}

// isCanonical reports whether p is the root of its plateau: its own
// parent, or a parent at a strictly different level.
func isCanonical(g *sampleGrid, parent []int32, p int) bool {
	q := int(parent[p])
	return q == p || g.value[q] != g.value[p]
}

// representative returns p's canonical sample: itself if canonical,
// otherwise its (already-folded) parent.
func representative(g *sampleGrid, parent []int32, p int) int {
	if isCanonical(g, parent, p) {
		return p
	}
	return int(parent[p])
}
