package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Two constant columns (value 1, value 5) 8-connect into a single
// component; after Stage 4 every sample in a column should resolve,
// in one hop, to that column's sole canonical representative.
func TestMergeAndCanonicalize_TwoColumnPlateaus(t *testing.T) {
	image := []float64{
		1, 5,
		1, 5,
		1, 5,
	}
	g := buildSampleGrid(image, 2, 3)
	parent, _ := mergeForest(g)
	canonicalize(g, parent)

	lowRep := realIndex(2, 0, 2) // (0,2), last-processed member of the value-1 column
	highRep := realIndex(2, 1, 2) // (1,2), last-processed member of the value-5 column, global root

	assert.True(t, isCanonical(g, parent, lowRep))
	assert.True(t, isCanonical(g, parent, highRep))
	assert.Equal(t, highRep, int(parent[highRep]))

	for y := 0; y < 3; y++ {
		low := realIndex(2, 0, y)
		high := realIndex(2, 1, y)
		assert.False(t, isCanonical(g, parent, low) && low != lowRep, "only one canonical rep per plateau")
		assert.Equal(t, lowRep, representative(g, parent, low))
		assert.Equal(t, highRep, representative(g, parent, high))
	}
}

func TestCanonicalize_ConstantImageSingleRoot(t *testing.T) {
	image := []float64{5, 5, 5, 5, 5, 5, 5, 5, 5}
	g := buildSampleGrid(image, 3, 3)
	parent, _ := mergeForest(g)
	canonicalize(g, parent)

	root := representative(g, parent, 0)
	for i := range image {
		assert.Equal(t, root, representative(g, parent, i))
	}
	assert.Equal(t, root, int(parent[root]))
}
