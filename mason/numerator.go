// Package mason: assembly of Mason's numerator.
package mason

import (
	"github.com/katalvlaran/sfg/core"
	"github.com/katalvlaran/sfg/symbolic"
)

// CalculateNumerator computes Σ over forward paths P of gain(P)·Δ_k(P),
// where gain(P) is the product of P's edge weights and Δ_k(P) is the
// cofactor on the residual subgraph with P's nodes removed.
//
// Zero forward paths between startID and endID is not an error: the
// numerator is the additive identity. A divergence between the path count
// and the cofactor count aborts with ErrPathCofactorMismatch rather than
// returning a partial result.
// Returns ErrGraphNil, ErrAlgebraNil, ErrPathCofactorMismatch, or a wrapped
// weight parse error from the algebra.
func CalculateNumerator(startID, endID string, g *core.Graph, alg symbolic.Algebra, opts ...Option) (symbolic.Expr, error) {
	// 1. Validate inputs
	if g == nil {
		return nil, ErrGraphNil
	}
	if alg == nil {
		return nil, ErrAlgebraNil
	}
	o := apply(opts)

	// 2. Enumerate forward paths
	paths, err := ForwardPaths(startID, endID, g, opts...)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		o.Logger.Debug("mason: no forward path", "start", startID, "end", endID)

		return alg.Constant(0), nil
	}

	// 3. One cofactor per path, each over its own residual subgraph
	cofactors := make([]symbolic.Expr, 0, len(paths))
	for _, p := range paths {
		cf, cErr := Cofactor(p, g, alg, opts...)
		if cErr != nil {
			return nil, cErr
		}
		cofactors = append(cofactors, cf)
	}

	// 4. Defensive invariant: counts must match before pairing
	if len(cofactors) != len(paths) {
		return nil, ErrPathCofactorMismatch
	}

	// 5. Σ gain(P)·Δ_k(P)
	num := alg.Constant(0)
	for i, p := range paths {
		fg, gErr := gain(p, alg)
		if gErr != nil {
			return nil, gErr
		}
		num = alg.Add(num, alg.Mul(fg, cofactors[i]))
	}

	return num, nil
}
