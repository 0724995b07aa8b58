package mason_test

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sfg/core"
)

// build constructs a graph from {from, to, weight} triples and makes sure
// every referenced node actually exists (tests that want dangling
// destinations construct their graphs by hand).
func build(t *testing.T, edges [][3]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1], e[2])
		require.NoError(t, err)
	}
	for _, e := range edges {
		if !g.HasNode(e[1]) {
			require.NoError(t, g.AddNode(e[1]))
		}
	}

	return g
}

// sig is the canonical identity of an edge collection: sorted edge IDs.
func sig(edges []core.Edge) string {
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.ID
	}
	sort.Strings(ids)

	return strings.Join(ids, ",")
}

// sigsOf maps a collection of edge sequences to their sorted signatures.
func sigsOf[T ~[]core.Edge](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = sig(it)
	}
	sort.Strings(out)

	return out
}

// snapshot deep-copies a graph's node list for isolation assertions.
func snapshot(g *core.Graph) []*core.Node {
	nodes := g.Nodes()
	out := make([]*core.Node, len(nodes))
	for i, n := range nodes {
		out[i] = n.Clone()
	}

	return out
}

// edgesBetween lists every parallel edge from→to.
func edgesBetween(g *core.Graph, from, to string) []core.Edge {
	n, ok := g.Lookup(from)
	if !ok {
		return nil
	}
	var out []core.Edge
	for _, e := range n.Edges {
		if e.To == to {
			out = append(out, e)
		}
	}

	return out
}

// bruteCycleSigs enumerates all simple directed cycles by exhaustive node
// permutation — an implementation independent of the DFS under test.
// For every ordered sequence of distinct nodes it checks that consecutive
// edges exist (including the closing edge), expanding every parallel-edge
// choice, and collects canonical signatures. Feasible for graphs ≤ 6 nodes.
func bruteCycleSigs(g *core.Graph) map[string]struct{} {
	var ids []string
	for _, n := range g.Nodes() {
		ids = append(ids, n.ID)
	}
	sigs := make(map[string]struct{})

	collect := func(seq []string) {
		var pick func(i int, chosen []core.Edge)
		pick = func(i int, chosen []core.Edge) {
			if i == len(seq) {
				sigs[sig(chosen)] = struct{}{}
				return
			}
			from, to := seq[i], seq[(i+1)%len(seq)]
			for _, e := range edgesBetween(g, from, to) {
				pick(i+1, append(chosen, e))
			}
		}
		pick(0, nil)
	}

	used := make(map[string]bool)
	var perm func(seq []string)
	perm = func(seq []string) {
		if len(seq) > 0 {
			collect(seq)
		}
		for _, id := range ids {
			if used[id] {
				continue
			}
			used[id] = true
			perm(append(seq, id))
			delete(used, id)
		}
	}
	perm(nil)

	return sigs
}
