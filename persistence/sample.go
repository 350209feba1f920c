package persistence

import (
	"sort"

	"github.com/monasse-reeb/reeb/geom"
)

// SampleKind distinguishes a real pixel sample from a virtual saddle
// sample introduced between pixels (spec.md §4.4 Stage 1).
type SampleKind int

const (
	Real SampleKind = iota
	Virtual
)

// sampleGrid holds the combined real+virtual sample array described
// in spec.md §4.4 Stage 1–2: w·h real samples at index y·w+x, followed
// by w·h virtual samples (one per dual pixel, sentinel where no saddle
// exists) at index w·h + y·w+x.
type sampleGrid struct {
	w, h   int
	value  []float64
	valid  []bool
	order  []int // indices into value/valid, sorted ascending per Stage 2
}

func realIndex(w, x, y int) int { return y*w + x }

func virtualIndex(w, h, x, y int) int { return w*h + y*w + x }

// buildSampleGrid computes Stage 1 (virtual saddle values) and Stage 2
// (the sorted processing order) in one pass.
func buildSampleGrid(image []float64, w, h int) *sampleGrid {
	n := w * h
	g := &sampleGrid{w: w, h: h, value: make([]float64, 2*n), valid: make([]bool, 2*n)}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			ri := realIndex(w, x, y)
			g.value[ri] = image[ri]
			g.valid[ri] = true
		}
	}

	for y := 0; y < h-1; y++ {
		for x := 0; x < w-1; x++ {
			a := image[realIndex(w, x, y)]
			b := image[realIndex(w, x+1, y)]
			c := image[realIndex(w, x+1, y+1)]
			d := image[realIndex(w, x, y+1)]
			num, denom, _, _, ok := geom.SaddleInSquare(a, b, c, d)
			if !ok {
				continue
			}
			vi := virtualIndex(w, h, x, y)
			g.value[vi] = num / denom
			g.valid[vi] = true
		}
	}

	g.order = make([]int, 0, 2*n)
	for i := 0; i < 2*n; i++ {
		if g.valid[i] {
			g.order = append(g.order, i)
		}
	}
	sort.Slice(g.order, func(i, j int) bool {
		return g.less(g.order[i], g.order[j])
	})

	return g
}

// kind, x, y recover a sample's identity from its combined index.
func (g *sampleGrid) kind(idx int) SampleKind {
	if idx < g.w*g.h {
		return Real
	}
	return Virtual
}

func (g *sampleGrid) coords(idx int) (x, y int) {
	local := idx
	if g.kind(idx) == Virtual {
		local = idx - g.w*g.h
	}
	return local % g.w, local / g.w
}

// less implements Stage 2's ordering: by value, then kind (real before
// virtual), then (y, x).
func (g *sampleGrid) less(i, j int) bool {
	if g.value[i] != g.value[j] {
		return g.value[i] < g.value[j]
	}
	ki, kj := g.kind(i), g.kind(j)
	if ki != kj {
		return ki < kj
	}
	xi, yi := g.coords(i)
	xj, yj := g.coords(j)
	if yi != yj {
		return yi < yj
	}
	return xi < xj
}
