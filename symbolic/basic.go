// Package symbolic: the Basic reference algebra.
//
// Basic represents expressions as multivariate polynomials: a sum of terms,
// each a float64 coefficient times a sorted product of symbols. The
// representation is canonical (like terms merged, zero terms dropped, terms
// ordered by degree then lexicographically), so equal expressions always
// render identically — which is what the analysis tests assert against.
package symbolic

import (
	"errors"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// ErrBadWeight indicates a weight token that is neither a numeric literal
// nor a plain symbol.
var ErrBadWeight = errors.New("symbolic: malformed weight token")

// Basic is a reference Algebra over multivariate polynomials with float64
// coefficients. The zero value is ready to use.
type Basic struct{}

// compile-time interface check
var _ Algebra = Basic{}

// term is one summand: coef * symbols[0] * symbols[1] * ...
// symbols is kept sorted; repetition encodes powers (f*f).
type term struct {
	coef    float64
	symbols []string
}

// key is the canonical identity of the symbol product ("" for constants).
func (t term) key() string { return strings.Join(t.symbols, "*") }

// poly is a canonical sum of terms; the empty slice is the zero expression.
type poly struct {
	terms []term
}

// Constant lifts v into a polynomial. Zero maps to the empty term list.
func (Basic) Constant(v float64) Expr {
	if v == 0 {
		return &poly{}
	}

	return &poly{terms: []term{{coef: v}}}
}

// Weight parses an edge-weight token: an optional sign followed by either a
// numeric literal ("2", "0.5") or a plain symbol ("G1", "f"). Anything else
// is reported as ErrBadWeight — consistent with the equation parser, which
// only ever emits signed numbers and bare coefficient names.
func (Basic) Weight(token string) (Expr, error) {
	tok := strings.TrimSpace(token)
	sign := 1.0
	switch {
	case strings.HasPrefix(tok, "-"):
		sign, tok = -1.0, tok[1:]
	case strings.HasPrefix(tok, "+"):
		tok = tok[1:]
	}
	if tok == "" {
		return nil, ErrBadWeight
	}

	// Numeric literal
	if v, err := strconv.ParseFloat(tok, 64); err == nil {
		if v == 0 {
			return &poly{}, nil
		}

		return &poly{terms: []term{{coef: sign * v}}}, nil
	}

	// Plain symbol: letter or underscore, then letters/digits/underscores
	if !isSymbol(tok) {
		return nil, ErrBadWeight
	}

	return &poly{terms: []term{{coef: sign, symbols: []string{tok}}}}, nil
}

// Add returns a + b.
func (Basic) Add(a, b Expr) Expr {
	pa, pb := toPoly(a), toPoly(b)
	merged := make([]term, 0, len(pa.terms)+len(pb.terms))
	merged = append(merged, pa.terms...)
	merged = append(merged, pb.terms...)

	return normalize(merged)
}

// Sub returns a - b.
func (Basic) Sub(a, b Expr) Expr {
	pa, pb := toPoly(a), toPoly(b)
	merged := make([]term, 0, len(pa.terms)+len(pb.terms))
	merged = append(merged, pa.terms...)
	for _, t := range pb.terms {
		merged = append(merged, term{coef: -t.coef, symbols: t.symbols})
	}

	return normalize(merged)
}

// Mul returns a * b by term-wise distribution.
func (Basic) Mul(a, b Expr) Expr {
	pa, pb := toPoly(a), toPoly(b)
	cross := make([]term, 0, len(pa.terms)*len(pb.terms))
	for _, ta := range pa.terms {
		for _, tb := range pb.terms {
			syms := make([]string, 0, len(ta.symbols)+len(tb.symbols))
			syms = append(syms, ta.symbols...)
			syms = append(syms, tb.symbols...)
			sort.Strings(syms)
			cross = append(cross, term{coef: ta.coef * tb.coef, symbols: syms})
		}
	}

	return normalize(cross)
}

// Magnitude renders |e| for Bode presentation.
func (Basic) Magnitude(e Expr) string { return "|" + e.String() + "|" }

// Phase renders ∠(e) for Bode presentation.
func (Basic) Phase(e Expr) string { return "∠(" + e.String() + ")" }

// String renders the canonical form: "0" for empty, terms joined by
// " + "/" - ", unit coefficients elided before symbol products.
func (p *poly) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	var b strings.Builder
	for i, t := range p.terms {
		coef := t.coef
		if coef < 0 {
			if i == 0 {
				b.WriteString("-")
			} else {
				b.WriteString(" - ")
			}
			coef = -coef
		} else if i > 0 {
			b.WriteString(" + ")
		}
		body := t.key()
		switch {
		case body == "":
			b.WriteString(formatCoef(coef))
		case coef == 1:
			b.WriteString(body)
		default:
			b.WriteString(formatCoef(coef))
			b.WriteString("*")
			b.WriteString(body)
		}
	}

	return b.String()
}

// toPoly unwraps an Expr produced by Basic.
// Foreign expressions are a programming error, not a runtime condition.
func toPoly(e Expr) *poly {
	p, ok := e.(*poly)
	if !ok {
		panic("symbolic: expression was not produced by Basic")
	}

	return p
}

// normalize merges like terms, drops zeros, and orders terms by degree then
// lexicographically by symbol product — the canonical form.
func normalize(ts []term) *poly {
	acc := make(map[string]*term, len(ts))
	keys := make([]string, 0, len(ts))
	for _, t := range ts {
		k := t.key()
		if cur, ok := acc[k]; ok {
			cur.coef += t.coef
			continue
		}
		cp := term{coef: t.coef, symbols: t.symbols}
		acc[k] = &cp
		keys = append(keys, k)
	}

	out := make([]term, 0, len(keys))
	for _, k := range keys {
		if acc[k].coef != 0 {
			out = append(out, *acc[k])
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].symbols) != len(out[j].symbols) {
			return len(out[i].symbols) < len(out[j].symbols)
		}

		return out[i].key() < out[j].key()
	})

	return &poly{terms: out}
}

// isSymbol reports whether tok is a plain identifier-shaped symbol.
func isSymbol(tok string) bool {
	for i, r := range tok {
		if unicode.IsLetter(r) || r == '_' {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}

		return false
	}

	return true
}

// formatCoef renders a coefficient with minimal digits.
func formatCoef(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
