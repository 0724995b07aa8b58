// Package mason: cofactor (Δ_k) computation on residual subgraphs.
package mason

import (
	"github.com/katalvlaran/sfg/core"
	"github.com/katalvlaran/sfg/symbolic"
)

// Cofactor computes Δ_k for a forward path: the denominator of the residual
// subgraph formed by deleting every node of the path from g. Deleted nodes
// vanish both as sources and as destinations; the residual is built from
// deep copies, so g itself is unchanged. When the residual has no loops the
// alternating-sum terms are empty and Δ_k = 1.
// Returns ErrGraphNil or ErrAlgebraNil, or a wrapped weight parse error.
func Cofactor(p Path, g *core.Graph, alg symbolic.Algebra, opts ...Option) (symbolic.Expr, error) {
	// 1. Validate inputs
	if g == nil {
		return nil, ErrGraphNil
	}
	if alg == nil {
		return nil, ErrAlgebraNil
	}
	o := apply(opts)

	// 2. Residual subgraph: the path's nodes removed, survivors deep-copied
	residual := g.Without(p.Nodes()...)
	o.Logger.Debug("mason: residual subgraph built",
		"removed", len(p.Nodes()), "nodes", residual.NodeCount(), "edges", residual.EdgeCount())

	// 3. Re-run the loop analysis on the residual
	loops, err := FindAllLoops(residual, opts...)
	if err != nil {
		return nil, err
	}

	return CalculateDenominator(loops, FindNonTouching(loops), alg)
}
