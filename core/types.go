// Package core: central types and sentinel errors for the SFG model.
//
// This file declares Node, Edge, Graph, NodeOption, the sentinel errors,
// and the NewGraph constructor. Methods live in graph.go and clone.go.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node or endpoint ID is the empty string.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates AddNode was called with an ID already in the arena.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEmptyWeight indicates an edge was added with an empty weight token.
	ErrEmptyWeight = errors.New("core: edge weight is empty")
)

// Node represents one variable of the equation system.
//
// ID uniquely identifies this Node within its Graph. Edges is the ordered
// list of outgoing edges; the order is insertion order and is deterministic.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// Constant is an optional source value attached to the node
	// (e.g. an independent input of the equation system).
	// It is meaningful only when HasConstant is true.
	Constant float64

	// HasConstant reports whether Constant carries a value.
	HasConstant bool

	// Edges is the ordered list of outgoing edges. Each edge's From equals
	// this node's ID. The slice is owned by the node; Clone produces an
	// independently-owned copy.
	Edges []Edge
}

// Edge represents a weighted connection between two nodes.
//
// The destination is a weak reference: To is resolved by Graph.Lookup at
// traversal time, and an unresolvable destination is skipped, not an error.
type Edge struct {
	// ID uniquely identifies this edge in the Graph. It is From+To,
	// suffixed "#i" for the i-th parallel edge between the same endpoints.
	ID string

	// Weight is the symbolic coefficient token, opaque to the core.
	Weight string

	// From is the source node ID; it always equals the owning node's ID.
	From string

	// To is the destination node ID (weak reference, may dangle).
	To string
}

// NodeOption configures a node as it is added to the graph.
type NodeOption func(*Node)

// WithConstant attaches a source constant to the node.
func WithConstant(v float64) NodeOption {
	return func(n *Node) {
		n.Constant = v
		n.HasConstant = true
	}
}

// Graph is the arena of nodes keyed by ID.
//
// Iteration over nodes follows insertion order so that repeated analyses of
// an unmutated graph are reproducible.
type Graph struct {
	nodes map[string]*Node // node ID → Node
	order []string         // insertion order of node IDs
}

// NewGraph creates an empty Graph.
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{nodes: make(map[string]*Node)}
}
