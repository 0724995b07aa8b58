// Package mason implements the loop-analysis and gain-assembly engine of
// Mason's Gain Formula on a core.Graph: enumeration of all simple directed
// cycles, construction of k-wise non-touching loop sets, the alternating-sum
// denominator Δ, forward-path enumeration, per-path cofactors on residual
// subgraphs, and the numerator Σ(path gain × cofactor).
//
// What:
//
//   - FindAllLoops: DFS from every node, recording each edge stack that
//     closes back on its root. Self-loops are 1-edge cycles; parallel edges
//     yield distinct cycle instances; rotations of the same loop are
//     collapsed by canonical signature.
//   - FindNonTouching: level k ≥ 2 combinations of node-disjoint loops,
//     deduplicated by sorted-edge-ID signature, stopping at the first empty
//     level (emptiness is monotone in k).
//   - CalculateDenominator: Δ = 1 − ΣL₁ + ΣL₂ − ΣL₃ + … over loop-gain
//     products.
//   - ForwardPaths: all simple directed paths between two designated nodes.
//   - Cofactor: Δ re-computed on the residual subgraph with a forward
//     path's nodes removed (Δ_k = 1 when the residual has no loops).
//   - CalculateNumerator: Σ over forward paths of gain(P)·Δ_k(P); zero
//     paths is not an error and yields the additive identity.
//   - Solve: convenience assembling numerator, Δ, and the Bode
//     magnitude/phase formulas into a TransferFunction.
//
// Why:
//   - Derive symbolic transfer functions of linear systems (circuits,
//     control loops) modeled as signal-flow graphs
//   - Feed frequency-response (Bode) analysis with magnitude/phase formulas
//
// Guarantees:
//
//   - The input graph is never mutated: residual subgraphs are deep copies.
//   - Results are deterministic for a fixed node/edge insertion order;
//     re-running on an unmutated graph reproduces the same output.
//   - An edge whose destination does not resolve is skipped, never an error.
//
// Complexity:
//
//	Cycle and path enumeration are exponential in the worst case — the
//	expected inputs are small, hand-modeled engineering systems. Everything
//	is synchronous and allocation-local; wrap the whole call if a timeout
//	is needed.
//
// Errors:
//
//   - ErrGraphNil                graph pointer is nil
//   - ErrAlgebraNil              no symbolic algebra supplied
//   - ErrPathCofactorMismatch    path and cofactor counts diverge (defensive)
//   - weight parse errors        propagated from the symbolic.Algebra
package mason
