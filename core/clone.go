// Package core: cloning and residual-subgraph construction.
//
// Every analysis in the mason package runs against copies produced here, so
// a caller's graph is never mutated. Clones are deep with respect to edge
// lists: deleting edges from a copy cannot alias the original.
package core

// Clone returns an independent deep copy of the node, including an
// independently-owned edge slice.
// Complexity: O(out-degree).
func (n *Node) Clone() *Node {
	cp := &Node{
		ID:          n.ID,
		Constant:    n.Constant,
		HasConstant: n.HasConstant,
	}
	if len(n.Edges) > 0 {
		cp.Edges = make([]Edge, len(n.Edges))
		copy(cp.Edges, n.Edges)
	}

	return cp
}

// CloneNode returns an independent deep copy of the node with the given ID.
// Returns ErrNodeNotFound if the ID does not resolve.
// Complexity: O(out-degree).
func (g *Graph) CloneNode(id string) (*Node, error) {
	n, ok := g.nodes[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	return n.Clone(), nil
}

// Clone returns a deep copy of the whole graph: nodes, edge lists, and
// insertion order are all independently owned.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := NewGraph()
	clone.order = make([]string, len(g.order))
	copy(clone.order, g.order)
	for id, n := range g.nodes {
		clone.nodes[id] = n.Clone()
	}

	return clone
}

// Without builds the residual subgraph used for cofactor computation:
// every listed node is removed entirely — as a source (its outgoing edges
// vanish with it) and as a destination (any retained node's edge pointing
// at it is pruned). Retained nodes are deep-copied, so the receiver is
// byte-for-byte unchanged afterwards.
// Complexity: O(V + E).
func (g *Graph) Without(ids ...string) *Graph {
	// 1. Index the removal set
	removed := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		removed[id] = struct{}{}
	}

	// 2. Deep-copy retained nodes in insertion order, pruning edges whose
	//    destination is removed
	residual := NewGraph()
	for _, id := range g.order {
		if _, gone := removed[id]; gone {
			continue
		}
		cp := g.nodes[id].Clone()
		kept := cp.Edges[:0]
		for _, e := range cp.Edges {
			if _, gone := removed[e.To]; gone {
				continue
			}
			kept = append(kept, e)
		}
		cp.Edges = kept
		residual.nodes[id] = cp
		residual.order = append(residual.order, id)
	}

	return residual
}
