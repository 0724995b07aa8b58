// Package core: Graph method implementations.
//
// This file provides node and edge management on the Graph type defined in
// types.go. All operations are O(1) amortized except the parallel-edge scan
// in AddEdge, which is linear in the source node's out-degree (target graphs
// are small, hand-modeled systems).
package core

import (
	"fmt"
	"strings"
)

// AddNode inserts a new node with the given ID into the arena.
// Returns ErrEmptyNodeID if id is empty, ErrDuplicateNode if the ID is taken —
// ID uniqueness is the graph builder's contract, and the arena makes the
// check free, so violations fail loudly here instead of corrupting analysis.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id string, opts ...NodeOption) error {
	// 1. Validate input: empty IDs are not allowed
	if id == "" {
		return ErrEmptyNodeID
	}
	// 2. Reject duplicates
	if _, exists := g.nodes[id]; exists {
		return fmt.Errorf("core: AddNode(%q): %w", id, ErrDuplicateNode)
	}

	// 3. Construct the node and apply options
	n := &Node{ID: id}
	for _, opt := range opts {
		opt(n)
	}

	// 4. Register in the arena, preserving insertion order
	g.nodes[id] = n
	g.order = append(g.order, id)

	return nil
}

// AddEdge appends a new edge from→to with the given symbolic weight token
// and returns its unique Edge.ID.
//
// The source node is created on demand (an edge must live somewhere); the
// destination is left as a weak reference and is NOT required to exist —
// traversals skip unresolvable destinations. Self-loops and parallel edges
// are always valid; the i-th parallel edge between the same endpoints gets
// the ID suffix "#i", the first keeps the bare From+To.
//
// Returns ErrEmptyNodeID or ErrEmptyWeight.
// Complexity: O(out-degree of from).
func (g *Graph) AddEdge(from, to, weight string) (string, error) {
	// 1. Input validation
	if from == "" || to == "" {
		return "", ErrEmptyNodeID
	}
	if weight == "" {
		return "", ErrEmptyWeight
	}

	// 2. Ensure the source node exists (idempotent here by design:
	//    builders emit edges before all variables are known)
	src, ok := g.nodes[from]
	if !ok {
		src = &Node{ID: from}
		g.nodes[from] = src
		g.order = append(g.order, from)
	}

	// 3. Derive the edge ID: bare From+To for the first edge between the
	//    endpoints, "#i" ordinal suffix for later parallels (first-seen
	//    keeps the bare ID).
	parallel := 0
	for i := range src.Edges {
		if src.Edges[i].To == to {
			parallel++
		}
	}
	eid := from + to
	if parallel > 0 {
		eid = fmt.Sprintf("%s#%d", eid, parallel+1)
	}

	// 4. Append to the node's ordered edge list
	src.Edges = append(src.Edges, Edge{ID: eid, Weight: weight, From: from, To: to})

	return eid, nil
}

// Lookup resolves a node ID against the arena.
// Edges hold destinations by ID only, so every traversal funnels through
// here; a false result means the edge dangles and must be skipped.
// Complexity: O(1).
func (g *Graph) Lookup(id string) (*Node, bool) {
	n, ok := g.nodes[id]

	return n, ok
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]

	return ok
}

// Nodes returns all nodes in insertion order.
// The returned slice is fresh; the *Node pointers are the live arena nodes.
// Complexity: O(V).
func (g *Graph) Nodes() []*Node {
	out := make([]*Node, 0, len(g.order))
	for _, id := range g.order {
		out = append(out, g.nodes[id])
	}

	return out
}

// NodeCount returns the number of nodes. O(1).
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the total number of edges across all nodes.
// Complexity: O(V).
func (g *Graph) EdgeCount() int {
	total := 0
	for _, n := range g.nodes {
		total += len(n.Edges)
	}

	return total
}

// String renders a compact, deterministic description of the graph,
// one node per line: "id[=const]: id--w-->to, ...".
// Intended for debugging and trace logs, not for parsing.
func (g *Graph) String() string {
	var b strings.Builder
	for _, id := range g.order {
		n := g.nodes[id]
		b.WriteString(n.ID)
		if n.HasConstant {
			fmt.Fprintf(&b, "=%g", n.Constant)
		}
		b.WriteString(":")
		for i := range n.Edges {
			if i > 0 {
				b.WriteString(",")
			}
			fmt.Fprintf(&b, " %s--%s-->%s", n.Edges[i].From, n.Edges[i].Weight, n.Edges[i].To)
		}
		b.WriteString("\n")
	}

	return b.String()
}
