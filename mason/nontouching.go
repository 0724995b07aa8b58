// Package mason: construction of non-touching loop sets.
//
// Two loops are non-touching when they share no node. Level k ≥ 2 is built
// by combining every (k−1)-combination with every individual loop that is
// node-disjoint from it; the same k-set is reachable through several (k−1)
// parents, so candidates are deduplicated by canonical sorted-edge-ID
// signature via a set, not a linear scan. Adding loops only shrinks the
// disjoint-candidate pool, so once a level is empty every later level is
// empty too and the build stops.
//
// Complexity:
//
//   - Time:   O(Σ_k |level k−1| · L · n) for L loops of ≤ n edges each
//   - Memory: proportional to the combinations produced
package mason

// combo is a working combination: its concatenated edges plus the node set
// used for the disjointness test.
type combo struct {
	edges []Combination // member loops, in combination order
	nodes map[string]struct{}
}

// FindNonTouching builds, for every k ≥ 2, all k-wise node-disjoint loop
// combinations from the given cycle list. Each combination is the
// concatenated edge list of its member loops. Level 1 (the individual
// loops) is the seed and is not part of the result. The returned map is
// never nil; it is empty when no two loops are disjoint.
func FindNonTouching(loops []Cycle) map[int][]Combination {
	result := make(map[int][]Combination)
	if len(loops) < 2 {
		return result
	}

	// Level 1: every individual loop as a single-member combination.
	singles := make([]combo, len(loops))
	for i, l := range loops {
		singles[i] = combo{
			edges: []Combination{Combination(l)},
			nodes: nodeSet(l),
		}
	}

	level := singles
	for k := 2; ; k++ {
		seen := make(map[string]struct{})
		var next []combo
		for _, c := range level {
			for _, s := range singles {
				// Disjointness by endpoint membership.
				if touches(c.nodes, s.nodes) {
					continue
				}
				merged := merge(c, s)
				sig := signature(flatten(merged.edges))
				if _, dup := seen[sig]; dup {
					continue
				}
				seen[sig] = struct{}{}
				next = append(next, merged)
			}
		}

		// Emptiness is monotone in k: stop at the first empty level.
		if len(next) == 0 {
			return result
		}

		out := make([]Combination, len(next))
		for i, c := range next {
			out[i] = flatten(c.edges)
		}
		result[k] = out
		level = next
	}
}

// nodeSet indexes the nodes a cycle touches.
func nodeSet(c Cycle) map[string]struct{} {
	set := make(map[string]struct{}, 2*len(c))
	for _, id := range endpointNodes(c) {
		set[id] = struct{}{}
	}

	return set
}

// touches reports whether the two node sets intersect.
func touches(a, b map[string]struct{}) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for id := range a {
		if _, shared := b[id]; shared {
			return true
		}
	}

	return false
}

// merge forms the (k)-combination c ∪ s with independently-owned state.
func merge(c, s combo) combo {
	edges := make([]Combination, 0, len(c.edges)+len(s.edges))
	edges = append(edges, c.edges...)
	edges = append(edges, s.edges...)
	nodes := make(map[string]struct{}, len(c.nodes)+len(s.nodes))
	for id := range c.nodes {
		nodes[id] = struct{}{}
	}
	for id := range s.nodes {
		nodes[id] = struct{}{}
	}

	return combo{edges: edges, nodes: nodes}
}

// flatten concatenates the member loops' edges into one Combination.
func flatten(members []Combination) Combination {
	total := 0
	for _, m := range members {
		total += len(m)
	}
	out := make(Combination, 0, total)
	for _, m := range members {
		out = append(out, m...)
	}

	return out
}
