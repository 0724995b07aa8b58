// Package mason provides small helpers shared by loop enumeration,
// non-touching set construction, and gain assembly.
package mason

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/sfg/core"
	"github.com/katalvlaran/sfg/symbolic"
)

// signature computes the canonical identity of an edge collection: its edge
// IDs sorted and joined. Two edge collections covering the same edges share
// a signature regardless of discovery order, which is what both rotation
// dedup (loops) and combination dedup (non-touching sets) key on.
// Time Complexity: O(n log n).
func signature(edges []core.Edge) string {
	ids := make([]string, len(edges))
	for i := range edges {
		ids[i] = edges[i].ID
	}
	sort.Strings(ids)

	return strings.Join(ids, ",")
}

// endpointNodes returns the unique node IDs touched by the edge collection,
// by endpoint membership, in first-touch order.
// Time Complexity: O(n).
func endpointNodes(edges []core.Edge) []string {
	seen := make(map[string]struct{}, 2*len(edges))
	out := make([]string, 0, 2*len(edges))
	for i := range edges {
		for _, id := range [2]string{edges[i].From, edges[i].To} {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}

	return out
}

// gain computes the product of the edge weights — the loop gain of a cycle
// or the forward gain of a path. The product is commutative in the algebra,
// so edge order is irrelevant. Weight parse failures are the algebra's to
// produce; they are wrapped with the offending edge and propagated.
func gain(edges []core.Edge, alg symbolic.Algebra) (symbolic.Expr, error) {
	prod := alg.Constant(1)
	for i := range edges {
		w, err := alg.Weight(edges[i].Weight)
		if err != nil {
			return nil, fmt.Errorf("mason: weight %q on edge %q: %w", edges[i].Weight, edges[i].ID, err)
		}
		prod = alg.Mul(prod, w)
	}

	return prod, nil
}
