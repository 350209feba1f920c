package persistence

// treeNode is one canonical sample's entry in the component-merge
// tree (Stage 5). parent is a node index: a root node is its own
// parent.
type treeNode struct {
	sample   int
	value    float64
	parent   int
	children []int
	contrast float64
}

// buildNodeTree enumerates canonical samples in scan order (all real
// samples first, then all virtual ones) and links each non-root
// canonical sample under its parent's children, per Stage 5. The
// returned nodeIndexOf maps a sample's combined-array index to its
// node index, or -1 if the sample is neither canonical nor exists.
func buildNodeTree(g *sampleGrid, parent []int32) ([]treeNode, []int) {
	nodeIndexOf := make([]int, len(g.value))
	for i := range nodeIndexOf {
		nodeIndexOf[i] = -1
	}

	var nodes []treeNode
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			idx := realIndex(g.w, x, y)
			if isCanonical(g, parent, idx) {
				nodeIndexOf[idx] = len(nodes)
				nodes = append(nodes, treeNode{sample: idx, value: g.value[idx]})
			}
		}
	}
	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			idx := virtualIndex(g.w, g.h, x, y)
			if !g.valid[idx] {
				continue
			}
			if isCanonical(g, parent, idx) {
				nodeIndexOf[idx] = len(nodes)
				nodes = append(nodes, treeNode{sample: idx, value: g.value[idx]})
			}
		}
	}

	for i := range nodes {
		sampleIdx := nodes[i].sample
		p := int(parent[sampleIdx])
		if p == sampleIdx {
			nodes[i].parent = i
			continue
		}
		pNode := nodeIndexOf[p]
		nodes[i].parent = pNode
		nodes[pNode].children = append(nodes[pNode].children, i)
	}

	return nodes, nodeIndexOf
}
