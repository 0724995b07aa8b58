// Package mason: the assembled transfer function.
package mason

import (
	"fmt"

	"github.com/katalvlaran/sfg/core"
	"github.com/katalvlaran/sfg/symbolic"
)

// TransferFunction is the symbolic result of Mason's Gain Formula between
// two designated nodes: Numerator / Denominator.
type TransferFunction struct {
	// Numerator is Σ(forward-path gain × cofactor).
	Numerator symbolic.Expr

	// Denominator is Δ, the alternating sum over loop-gain combinations.
	Denominator symbolic.Expr

	alg symbolic.Algebra // retained for magnitude/phase rendering
}

// Solve derives the full transfer function from startID to endID:
// it enumerates loops once for Δ and assembles the numerator with per-path
// cofactors. The graph is never mutated.
// Returns ErrGraphNil, ErrAlgebraNil, ErrPathCofactorMismatch, or a wrapped
// weight parse error from the algebra.
func Solve(startID, endID string, g *core.Graph, alg symbolic.Algebra, opts ...Option) (*TransferFunction, error) {
	// 1. Validate inputs
	if g == nil {
		return nil, ErrGraphNil
	}
	if alg == nil {
		return nil, ErrAlgebraNil
	}

	// 2. Denominator: loops → non-touching sets → Δ
	loops, err := FindAllLoops(g, opts...)
	if err != nil {
		return nil, err
	}
	den, err := CalculateDenominator(loops, FindNonTouching(loops), alg)
	if err != nil {
		return nil, err
	}

	// 3. Numerator: forward paths × cofactors
	num, err := CalculateNumerator(startID, endID, g, alg, opts...)
	if err != nil {
		return nil, err
	}

	return &TransferFunction{Numerator: num, Denominator: den, alg: alg}, nil
}

// String renders "(numerator) / (denominator)".
func (tf *TransferFunction) String() string {
	return fmt.Sprintf("(%s) / (%s)", tf.Numerator, tf.Denominator)
}

// Magnitude renders the Bode magnitude formula |N| / |D|.
func (tf *TransferFunction) Magnitude() string {
	return tf.alg.Magnitude(tf.Numerator) + " / " + tf.alg.Magnitude(tf.Denominator)
}

// Phase renders the Bode phase formula ∠(N) - ∠(D).
func (tf *TransferFunction) Phase() string {
	return tf.alg.Phase(tf.Numerator) + " - " + tf.alg.Phase(tf.Denominator)
}
