// Package mason: enumeration of forward paths.
//
// ForwardPaths runs DFS from the start node. Reaching the end node
// terminates the branch successfully; a branch is abandoned when the next
// node already lies on the current path (paths must be simple) or has no
// outgoing edges. Every branch extends its own independent copy of the
// accumulated edge sequence, so sibling branches at a fan-out node cannot
// corrupt each other's recorded paths.
//
// Complexity: exponential in the worst case; expected inputs are small.
package mason

import "github.com/katalvlaran/sfg/core"

// ForwardPaths enumerates all simple directed paths from startID to endID.
// Parallel edges yield distinct paths. A missing start or end node simply
// produces zero paths — absence of a forward path is not an error.
// Returns ErrGraphNil if g is nil.
func ForwardPaths(startID, endID string, g *core.Graph, opts ...Option) ([]Path, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}
	o := apply(opts)

	// 2. Unresolvable start: zero paths
	start, ok := g.Lookup(startID)
	if !ok {
		return nil, nil
	}

	// 3. DFS with per-branch path copies
	w := &pathWalker{graph: g, end: endID}
	w.onPath = map[string]bool{startID: true}
	w.walk(start, nil)

	o.Logger.Debug("mason: forward path enumeration complete",
		"start", startID, "end", endID, "paths", len(w.found))

	return w.found, nil
}

// pathWalker encapsulates state during forward-path search.
type pathWalker struct {
	graph  *core.Graph
	end    string
	onPath map[string]bool // nodes on the current branch, restored on exit
	found  []Path
}

// walk explores n's outgoing edges, extending prefix by one edge per branch.
func (w *pathWalker) walk(n *core.Node, prefix Path) {
	for i := range n.Edges {
		e := n.Edges[i]

		// Independent copy per branch: siblings must not share backing arrays.
		branch := make(Path, 0, len(prefix)+1)
		branch = append(branch, prefix...)
		branch = append(branch, e)

		// Reached the end node: record and terminate the branch.
		if e.To == w.end {
			w.found = append(w.found, branch)
			continue
		}

		// Node already on this path: abandon (simple paths only).
		if w.onPath[e.To] {
			continue
		}

		// Dangling destination: skipped, not an error.
		next, ok := w.graph.Lookup(e.To)
		if !ok {
			continue
		}

		w.onPath[e.To] = true
		w.walk(next, branch)
		delete(w.onPath, e.To)
	}
}
