package levelline

import (
	"sort"

	"github.com/monasse-reeb/reeb/geom"
)

// Node is one entry in the level-line tree's arena: its line,
// its index, its parent's index (-1 for a root), and its children's
// indices. Node holds a non-owning reference to its LevelLine — the
// extraction driver retains ownership of the LevelLine records
// themselves, per the lifecycle rule in spec.md §3.
type Node struct {
	Line      *LevelLine
	LineIndex int
	Parent    int
	Children  []int
}

// Tree is the forest of level lines recovered from a row-intersection
// log: a flat arena of Nodes (index-based, no pointer graphs) plus the
// indices of its roots.
type Tree struct {
	Nodes []Node
	Roots []int
}

// BuildTree recovers the parent/child hierarchy among lines from their
// per-row intersection logs.
//
// Algorithm (spec.md §4.3): sort each row's intersections by x, then
// scan left to right maintaining a stack of currently-open lines. The
// first occurrence of a line in a row pushes it (an "opening
// parenthesis"); the second occurrence — which, for non-self-crossing
// closed curves, is always the current stack top — pops it (a
// "closing parenthesis") and assigns its parent as whatever is now on
// top of the stack (the nearest enclosing line, or none for a root).
// A line's parent is fixed on its first row of resolution; later rows
// are expected to agree and are not re-checked here.
func BuildTree(lines []*LevelLine, rowIntersections [][]RowIntersection) (*Tree, error) {
	for _, l := range lines {
		if l == nil {
			return nil, ErrNilLine
		}
	}

	parent := make([]int, len(lines))
	assigned := make([]bool, len(lines))
	for i := range parent {
		parent[i] = -1
	}

	for _, row := range rowIntersections {
		sorted := make([]RowIntersection, len(row))
		copy(sorted, row)
		sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X < sorted[j].X })

		var stack []int
		for _, ri := range sorted {
			if ri.LineIndex < 0 || ri.LineIndex >= len(lines) {
				return nil, ErrLineIndexOutOfRange
			}
			if len(stack) > 0 && stack[len(stack)-1] == ri.LineIndex {
				stack = stack[:len(stack)-1]
				if !assigned[ri.LineIndex] {
					if len(stack) > 0 {
						parent[ri.LineIndex] = stack[len(stack)-1]
					} else {
						parent[ri.LineIndex] = -1
					}
					assigned[ri.LineIndex] = true
				}
			} else {
				stack = append(stack, ri.LineIndex)
			}
		}
	}

	nodes := make([]Node, len(lines))
	var roots []int
	for i, l := range lines {
		nodes[i] = Node{Line: l, LineIndex: i, Parent: parent[i]}
	}
	for i, p := range parent {
		if p == -1 {
			roots = append(roots, i)
		} else {
			nodes[p].Children = append(nodes[p].Children, i)
		}
	}

	return &Tree{Nodes: nodes, Roots: roots}, nil
}

// Walk performs a depth-first, pre-order traversal of the tree
// starting at its roots, matching the dfs package's OnVisit hook
// shape: fn is called once per node and a false return skips that
// node's children (but not its siblings).
func (t *Tree) Walk(fn func(n *Node) bool) {
	var visit func(idx int)
	visit = func(idx int) {
		n := &t.Nodes[idx]
		if !fn(n) {
			return
		}
		for _, c := range n.Children {
			visit(c)
		}
	}
	for _, r := range t.Roots {
		visit(r)
	}
}

// Children returns n's child nodes.
func (t *Tree) Children(n *Node) []Node {
	out := make([]Node, 0, len(n.Children))
	for _, idx := range n.Children {
		out = append(out, t.Nodes[idx])
	}
	return out
}

// Contains reports whether polygon (a closed polyline) contains point
// p, via a standard ray-casting point-in-polygon test. It is used by
// the tree-well-formedness test property (spec.md §8): a parent line
// must contain a sample point of each child.
func Contains(polygon []geom.Point, p geom.Point) bool {
	inside := false
	n := len(polygon)
	if n < 3 {
		return false
	}
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		pi, pj := polygon[i], polygon[j]
		intersects := (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X
		if intersects {
			inside = !inside
		}
	}
	return inside
}
