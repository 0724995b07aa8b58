package mason_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sfg/mason"
	"github.com/katalvlaran/sfg/symbolic"
)

var alg symbolic.Basic

// delta is a shorthand: loops → non-touching → Δ.
func delta(t *testing.T, loops []mason.Cycle) string {
	t.Helper()
	d, err := mason.CalculateDenominator(loops, mason.FindNonTouching(loops), alg)
	require.NoError(t, err)

	return d.String()
}

// TestCalculateDenominator_NilAlgebra verifies the sentinel.
func TestCalculateDenominator_NilAlgebra(t *testing.T) {
	_, err := mason.CalculateDenominator(nil, nil, nil)
	assert.ErrorIs(t, err, mason.ErrAlgebraNil)
}

// TestCalculateDenominator_NoLoops: empty alternating sums leave Δ = 1.
func TestCalculateDenominator_NoLoops(t *testing.T) {
	assert.Equal(t, "1", delta(t, nil))
}

// TestCalculateDenominator_SingleSelfLoop: Δ = 1 - f.
func TestCalculateDenominator_SingleSelfLoop(t *testing.T) {
	loops := loopsOf(t, [][3]string{{"2", "2", "f"}})
	assert.Equal(t, "1 - f", delta(t, loops))
}

// TestCalculateDenominator_TwoDisjointLoops: Δ = 1 - g1 - g2 + g1*g2.
func TestCalculateDenominator_TwoDisjointLoops(t *testing.T) {
	loops := loopsOf(t, [][3]string{
		{"1", "1", "g1"},
		{"2", "2", "g2"},
	})
	assert.Equal(t, "1 - g1 - g2 + g1*g2", delta(t, loops))
}

// TestCalculateDenominator_ThreeDisjointLoops exercises the alternating sign
// through level 3: even k adds, odd k subtracts.
func TestCalculateDenominator_ThreeDisjointLoops(t *testing.T) {
	loops := loopsOf(t, [][3]string{
		{"1", "1", "g1"},
		{"2", "2", "g2"},
		{"3", "3", "g3"},
	})
	assert.Equal(t,
		"1 - g1 - g2 - g3 + g1*g2 + g1*g3 + g2*g3 - g1*g2*g3",
		delta(t, loops))
}

// TestCalculateDenominator_LoopGainIsEdgeProduct: a multi-edge loop
// contributes the product of its edge weights.
func TestCalculateDenominator_LoopGainIsEdgeProduct(t *testing.T) {
	loops := loopsOf(t, [][3]string{
		{"1", "2", "a"},
		{"2", "1", "b"},
	})
	assert.Equal(t, "1 - a*b", delta(t, loops))
}

// TestCalculateDenominator_TouchingLoopsNoProduct: loops sharing a node
// contribute individually but never as a 2-wise product.
func TestCalculateDenominator_TouchingLoopsNoProduct(t *testing.T) {
	loops := loopsOf(t, [][3]string{
		{"1", "2", "a"},
		{"2", "1", "b"},
		{"2", "2", "f"},
	})
	assert.Equal(t, "1 - f - a*b", delta(t, loops))
}

// TestCalculateDenominator_BadWeightPropagates: the algebra's parse failure
// aborts assembly and surfaces wrapped.
func TestCalculateDenominator_BadWeightPropagates(t *testing.T) {
	loops := loopsOf(t, [][3]string{{"1", "1", "2x"}})
	_, err := mason.CalculateDenominator(loops, mason.FindNonTouching(loops), alg)
	assert.ErrorIs(t, err, symbolic.ErrBadWeight)
}
