package symbolic

import "fmt"

// Expr is an opaque symbolic expression produced and consumed by an Algebra.
// The only operation the analysis engine itself needs is rendering.
type Expr interface {
	fmt.Stringer
}

// Algebra is the arithmetic the gain-assembly engine consumes.
//
// Add and Mul must be associative and commutative. Implementations own the
// representation of Expr values; mixing Expr values from different Algebra
// implementations is undefined.
type Algebra interface {
	// Constant lifts a numeric value into an expression.
	Constant(v float64) Expr

	// Weight parses a string-shaped edge weight token into an expression.
	// Token syntax is the implementation's contract with the upstream
	// equation parser; malformed tokens are reported as errors.
	Weight(token string) (Expr, error)

	// Add returns a + b.
	Add(a, b Expr) Expr

	// Sub returns a - b.
	Sub(a, b Expr) Expr

	// Mul returns a * b.
	Mul(a, b Expr) Expr

	// Magnitude renders the magnitude formula of e for Bode presentation.
	Magnitude(e Expr) string

	// Phase renders the phase formula of e for Bode presentation.
	Phase(e Expr) string
}
