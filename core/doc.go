// Package core defines the signal-flow-graph model: Node, Edge, and the
// Graph arena that ties them together by string IDs.
//
// What:
//
//   - Node: a variable of the underlying equation system. Carries a unique
//     ID, an optional source constant, and an ordered list of outgoing
//     edges. Edge order is insertion order and is deterministic; it affects
//     enumeration order downstream, never correctness.
//   - Edge: a weighted connection From→To. The weight is an opaque symbolic
//     token consumed by a symbolic.Algebra; the core never interprets it.
//     Edges reference their destination by ID only (weak reference) and are
//     resolved via Graph.Lookup at traversal time.
//   - Graph: an arena of nodes keyed by ID, iterated in insertion order.
//
// Why weak references:
//
//	A signal-flow graph is inherently cyclic, so edges cannot own their
//	destination nodes. Storing plain IDs makes "subgraph minus some nodes"
//	a cheap deep copy with no dangling-pointer hazards: an edge whose
//	destination no longer resolves is simply skipped by traversals.
//	For the same reason a dangling destination is NOT rejected at
//	construction time — ID hygiene is the graph builder's contract.
//
// Edge identity:
//
//	Edge.ID is the concatenation From+To. Parallel edges between the same
//	endpoints are valid: the first keeps the bare ID, the i-th (i ≥ 2)
//	gets the suffix "#i" ("12", "12#2", "12#3", ...).
//
// Mutability & concurrency:
//
//	Graphs are built once and then read-mostly. All analysis in the mason
//	package works on deep copies (Clone, Without); the core never mutates
//	a graph behind the caller's back. The model is single-threaded by
//	design — target graphs are small, hand-modeled systems — so no locks
//	are taken.
//
// Errors:
//
//   - ErrEmptyNodeID    node or endpoint ID is the empty string
//   - ErrDuplicateNode  AddNode called twice with the same ID
//   - ErrNodeNotFound   requested node does not exist
//   - ErrEmptyWeight    edge added with an empty weight token
package core
