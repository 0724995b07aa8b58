// Package mason: assembly of Mason's denominator Δ.
package mason

import (
	"sort"

	"github.com/katalvlaran/sfg/symbolic"
)

// CalculateDenominator combines the cycle list and the non-touching map into
//
//	Δ = 1 − Σ(individual loop gains) + Σ(2-wise gains) − Σ(3-wise gains) + …
//
// Even k adds, odd k subtracts. A gain is the product of the edge weights,
// commutative in the algebra, so summation order is irrelevant; levels are
// still folded in ascending k for reproducible intermediate traces.
// With no loops at all the sums are empty and Δ = 1.
// Returns ErrAlgebraNil, or a wrapped weight parse error from the algebra.
func CalculateDenominator(loops []Cycle, nonTouching map[int][]Combination, alg symbolic.Algebra) (symbolic.Expr, error) {
	if alg == nil {
		return nil, ErrAlgebraNil
	}

	// 1. Start from unity
	delta := alg.Constant(1)

	// 2. k = 1: subtract every individual loop gain
	for _, l := range loops {
		lg, err := gain(l, alg)
		if err != nil {
			return nil, err
		}
		delta = alg.Sub(delta, lg)
	}

	// 3. k ≥ 2: alternate signs over the non-touching levels
	ks := make([]int, 0, len(nonTouching))
	for k := range nonTouching {
		ks = append(ks, k)
	}
	sort.Ints(ks)
	for _, k := range ks {
		for _, comb := range nonTouching[k] {
			cg, err := gain(comb, alg)
			if err != nil {
				return nil, err
			}
			if k%2 == 0 {
				delta = alg.Add(delta, cg)
			} else {
				delta = alg.Sub(delta, cg)
			}
		}
	}

	return delta, nil
}
