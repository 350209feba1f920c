package persistence

import "sort"

// propagateContrast runs Stage 6's two passes over the node tree.
// Canonical parent-child edges are strictly increasing in value, so
// visiting nodes in ascending value order processes every child
// before its parent (the up pass), and descending order processes
// every parent before its children (the down pass).
func propagateContrast(nodes []treeNode) {
	order := make([]int, len(nodes))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool { return nodes[order[i]].value < nodes[order[j]].value })

	for _, i := range order {
		n := &nodes[i]
		if len(n.children) == 0 {
			n.contrast = 0
			continue
		}
		max := 0.0
		for _, c := range n.children {
			if drop := nodes[c].contrast + n.value - nodes[c].value; drop > max {
				max = drop
			}
		}
		n.contrast = max
	}

	for i := len(order) - 1; i >= 0; i-- {
		n := &nodes[order[i]]
		if len(n.children) == 0 {
			continue
		}
		dominant := 0.0
		for _, c := range n.children {
			if nodes[c].contrast > dominant {
				dominant = nodes[c].contrast
			}
		}
		for _, c := range n.children {
			if nodes[c].contrast == dominant {
				nodes[c].contrast = n.contrast
			}
		}
	}
}
