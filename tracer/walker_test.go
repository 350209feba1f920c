package tracer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 3x3 single-bump grid:
//
//	0  0  0
//	0 10  0
//	0  0  0
var bumpGrid = []float64{
	0, 0, 0,
	0, 10, 0,
	0, 0, 0,
}

func TestWalker_InitSouth(t *testing.T) {
	w := NewWalker(bumpGrid, 3, 3)
	p, err := w.Init(0, 1, 5)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, p.X, 1e-9)
	assert.InDelta(t, 1.0, p.Y, 1e-9)
	assert.Equal(t, S, w.Dir())
}

func TestWalker_InitFlipsToNorth(t *testing.T) {
	// Dual pixel (0,1)'s south edge is flat (0,0): level 5 can't cross
	// it, so Init must flip to (1,0) and enter from the north, whose
	// edge (val[2]=10, val[3]=0) does cross.
	grid := []float64{
		0, 3, 7, 0,
		0, 0, 10, 0,
		0, 0, 0, 0,
	}
	w := NewWalker(grid, 4, 3)
	p, err := w.Init(0, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, N, w.Dir())
	assert.InDelta(t, 1.5, p.X, 1e-9)
	assert.InDelta(t, 1.0, p.Y, 1e-9)
}

func TestWalker_Advance_SingleExit(t *testing.T) {
	w := NewWalker(bumpGrid, 3, 3)
	entry, err := w.Init(0, 1, 5)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, entry.X, 1e-9)
	assert.InDelta(t, 1.0, entry.Y, 1e-9)

	samples, exit, err := w.Advance(5, 0)
	require.NoError(t, err)
	assert.Empty(t, samples) // no saddle in this dual pixel
	assert.InDelta(t, 1.0, exit.X, 1e-9)
	assert.InDelta(t, 1.5, exit.Y, 1e-9)
	assert.Equal(t, W, w.Dir())
	assert.Equal(t, 1, w.cx)
	assert.Equal(t, 1, w.cy)
}

func TestVisitedSet_CheckAndSet(t *testing.T) {
	v := NewVisitedSet(4, 4)
	assert.False(t, v.CheckAndSet(1, 2, true))
	assert.True(t, v.CheckAndSet(1, 2, true))
	// The opposite orientation of the same physical edgel is distinct.
	assert.False(t, v.CheckAndSet(1, 2, false))
}
