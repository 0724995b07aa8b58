// Package symbolic defines the boundary between the loop-analysis engine and
// the symbolic-expression arithmetic it consumes, plus a small reference
// algebra so the library is usable end to end.
//
// What:
//
//   - Expr: an opaque expression handle. The mason package never looks
//     inside one; it only threads them through Algebra operations.
//   - Algebra: the operation set the gain-assembly engine consumes —
//     Constant, Weight (parses a string-shaped edge weight), Add, Sub, Mul,
//     and the presentation-only Magnitude and Phase renderers.
//   - Basic: a reference Algebra over multivariate polynomials with float64
//     coefficients and canonical, deterministic string rendering
//     ("1 - g1 - g2 + g1*g2", "a*b").
//
// Why an interface:
//
//	The arithmetic engine is a collaborator, not part of the loop-analysis
//	core. Callers with a full CAS (rational/complex coefficients, jω
//	substitution) implement Algebra and keep the engine unchanged; Basic
//	exists so tests and small analyses need nothing external.
//
// Contract:
//
//	Add and Mul must be associative and commutative — Mason's sums and
//	loop-gain products are order-insensitive and the engine exploits that.
//	Weight must parse edge-weight tokens consistently with whatever
//	produced them (the equation parser upstream of the graph builder).
//	Malformed tokens are the algebra's contract to report; Basic returns
//	ErrBadWeight.
//
// Errors:
//
//   - ErrBadWeight  weight token is not a number or a plain symbol
package symbolic
