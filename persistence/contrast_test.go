package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPropagateContrast_TwoColumnPlateaus(t *testing.T) {
	image := []float64{
		1, 5,
		1, 5,
		1, 5,
	}
	g := buildSampleGrid(image, 2, 3)
	parent, _ := mergeForest(g)
	canonicalize(g, parent)
	nodes, nodeIndexOf := buildNodeTree(g, parent)
	propagateContrast(nodes)

	lowRep := realIndex(2, 0, 2)
	highRep := realIndex(2, 1, 2)

	// One child hanging off the root: the up-pass drop (5-1=4) and the
	// down-pass inheritance from the root agree, so both land on the
	// full dynamic range.
	assert.InDelta(t, 4.0, nodes[nodeIndexOf[lowRep]].contrast, 1e-9)
	assert.InDelta(t, 4.0, nodes[nodeIndexOf[highRep]].contrast, 1e-9)
}

func TestPropagateContrast_LeafHasZeroUpPassBeforeInheritance(t *testing.T) {
	nodes := []treeNode{
		{value: 1, parent: 1}, // leaf
		{value: 5, parent: 1, children: []int{0}},
	}
	propagateContrast(nodes)
	assert.Equal(t, 4.0, nodes[1].contrast)
	assert.Equal(t, nodes[1].contrast, nodes[0].contrast)
}
