package core_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sfg/core"
)

// ring builds 1→2→3→1 with a self-loop on 2 and an incoming edge 3→2.
func ring(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range [][3]string{
		{"1", "2", "a"},
		{"2", "3", "b"},
		{"3", "1", "c"},
		{"2", "2", "f"},
		{"3", "2", "d"},
	} {
		_, err := g.AddEdge(e[0], e[1], e[2])
		require.NoError(t, err)
	}

	return g
}

// snapshot deep-copies the node list for before/after comparison.
func snapshot(g *core.Graph) []*core.Node {
	nodes := g.Nodes()
	out := make([]*core.Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}

	return out
}

// TestNodeClone_IndependentEdgeList verifies that a cloned node owns its
// edge slice: consumers may delete edges from the copy without aliasing.
func TestNodeClone_IndependentEdgeList(t *testing.T) {
	g := ring(t)
	n, ok := g.Lookup("2")
	require.True(t, ok)

	cp := n.Clone()
	cp.Edges[0].Weight = "mutated"
	cp.Edges = cp.Edges[:1]

	assert.Len(t, n.Edges, 2)
	assert.Equal(t, "b", n.Edges[0].Weight)
}

// TestCloneNode_NotFound verifies the sentinel for unknown IDs.
func TestCloneNode_NotFound(t *testing.T) {
	g := ring(t)
	_, err := g.CloneNode("missing")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

// TestGraphClone_DeepCopy verifies that mutating the clone leaves the
// original byte-for-byte unchanged.
func TestGraphClone_DeepCopy(t *testing.T) {
	g := ring(t)
	before := snapshot(g)

	clone := g.Clone()
	cn, ok := clone.Lookup("1")
	require.True(t, ok)
	cn.Edges[0].Weight = "mutated"
	_, err := clone.AddEdge("9", "1", "z")
	require.NoError(t, err)

	if diff := cmp.Diff(before, g.Nodes()); diff != "" {
		t.Errorf("original graph changed (-want +got):\n%s", diff)
	}
	assert.Equal(t, 5, g.EdgeCount())
	assert.Equal(t, 6, clone.EdgeCount())
}

// TestWithout_RemovesNodeBothWays verifies that a removed node vanishes as a
// source (its outgoing edges go with it) and as a destination (edges
// pointing at it are pruned from the survivors).
func TestWithout_RemovesNodeBothWays(t *testing.T) {
	g := ring(t)
	residual := g.Without("2")

	assert.Equal(t, 2, residual.NodeCount())
	assert.False(t, residual.HasNode("2"))

	n1, ok := residual.Lookup("1")
	require.True(t, ok)
	assert.Empty(t, n1.Edges, "1→2 must be pruned")

	n3, ok := residual.Lookup("3")
	require.True(t, ok)
	require.Len(t, n3.Edges, 1, "3→2 pruned, 3→1 kept")
	assert.Equal(t, "31", n3.Edges[0].ID)
}

// TestWithout_OriginalUnchanged is the subgraph-isolation property: after a
// residual is built, the source graph is byte-for-byte intact.
func TestWithout_OriginalUnchanged(t *testing.T) {
	g := ring(t)
	before := snapshot(g)

	res := g.Without("1", "3")
	// Mutate the residual aggressively to smoke out aliasing.
	if n, ok := res.Lookup("2"); ok {
		for i := range n.Edges {
			n.Edges[i].Weight = "junk"
		}
	}

	if diff := cmp.Diff(before, g.Nodes()); diff != "" {
		t.Errorf("original graph changed (-want +got):\n%s", diff)
	}
}

// TestWithout_AllNodes verifies the empty residual (the Δ_k = 1 case).
func TestWithout_AllNodes(t *testing.T) {
	g := ring(t)
	res := g.Without("1", "2", "3")
	assert.Equal(t, 0, res.NodeCount())
	assert.Equal(t, 0, res.EdgeCount())
}
