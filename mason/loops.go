// Package mason: enumeration of all simple directed cycles.
//
// FindAllLoops runs a rooted DFS from every node, recording the traversed
// edge stack whenever an edge closes back on the root. The visited set is
// scoped to the root's search; nodes are unmarked on backtrack (the root
// stays marked for its whole search), so every simple closed walk through
// the root is reached exactly once per root. Rotations of the same loop
// discovered from different roots collapse under the canonical sorted-edge
// signature; parallel edges carry distinct IDs and therefore survive as
// distinct cycle instances.
//
// Complexity:
//
//   - Time:   exponential in the worst case (all simple cycles are emitted)
//   - Memory: O(V) recursion state + cycle storage
package mason

import "github.com/katalvlaran/sfg/core"

// FindAllLoops enumerates all simple directed cycles of g.
// Each cycle is an independent edge-sequence copy; self-loops appear as
// 1-edge cycles. Edges whose destination does not resolve are skipped.
// Deterministic for a fixed node/edge insertion order.
// Returns ErrGraphNil if g is nil.
func FindAllLoops(g *core.Graph, opts ...Option) ([]Cycle, error) {
	// 1. Validate input graph
	if g == nil {
		return nil, ErrGraphNil
	}
	o := apply(opts)

	// 2. One walker shared across roots: the dedup set must span the whole
	//    enumeration so rotations found from later roots collapse.
	w := &loopWalker{graph: g, seen: make(map[string]struct{})}

	// 3. Root the search at every node in turn
	for _, n := range g.Nodes() {
		w.root = n.ID
		w.visited = map[string]bool{n.ID: true} // root stays marked for the whole search
		w.stack = w.stack[:0]
		w.walk(n)
	}

	o.Logger.Debug("mason: loop enumeration complete",
		"nodes", g.NodeCount(), "edges", g.EdgeCount(), "loops", len(w.found))

	return w.found, nil
}

// loopWalker encapsulates state during the rooted cycle search.
type loopWalker struct {
	graph   *core.Graph
	root    string              // current search root
	visited map[string]bool     // scoped to the current root's search
	stack   []core.Edge         // edges traversed on the current branch
	seen    map[string]struct{} // canonical signatures of recorded cycles
	found   []Cycle
}

// walk explores n's outgoing edges, extending the traversal stack.
// Push-on-entry/pop-on-exit is exact on every exit path: the two non-recursing
// branches (cycle closed, node revisited) never touch the stack.
func (w *loopWalker) walk(n *core.Node) {
	for i := range n.Edges {
		e := n.Edges[i]

		// Edge returns to the root: the stack plus this edge is a cycle.
		// Copy it — the stack keeps mutating — and do not recurse further.
		if e.To == w.root {
			cyc := make(Cycle, 0, len(w.stack)+1)
			cyc = append(cyc, w.stack...)
			cyc = append(cyc, e)
			w.record(cyc)
			continue
		}

		// Already on the current branch: recursing would repeat a node.
		if w.visited[e.To] {
			continue
		}

		// Weak reference did not resolve: skipped, not an error.
		next, ok := w.graph.Lookup(e.To)
		if !ok {
			continue
		}

		w.visited[e.To] = true
		w.stack = append(w.stack, e)
		w.walk(next)
		w.stack = w.stack[:len(w.stack)-1]
		delete(w.visited, e.To)
	}
}

// record appends the cycle unless its canonical signature was seen before
// (the same loop reached from another of its member roots).
func (w *loopWalker) record(c Cycle) {
	sig := signature(c)
	if _, dup := w.seen[sig]; dup {
		return
	}
	w.seen[sig] = struct{}{}
	w.found = append(w.found, c)
}
