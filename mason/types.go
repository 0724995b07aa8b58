// Package mason defines the result types, options, and sentinel errors for
// the loop-analysis engine.
package mason

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/sfg/core"
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed to
	// FindAllLoops, ForwardPaths, Cofactor, CalculateNumerator, or Solve.
	ErrGraphNil = errors.New("mason: graph is nil")

	// ErrAlgebraNil is returned when no symbolic.Algebra is supplied.
	ErrAlgebraNil = errors.New("mason: algebra is nil")

	// ErrPathCofactorMismatch indicates the count of enumerated forward
	// paths and computed cofactors diverged. This is a defensive invariant:
	// it aborts the numerator computation instead of returning a partial
	// result, and is never expected in normal operation.
	ErrPathCofactorMismatch = errors.New("mason: forward path and cofactor counts diverge")
)

// Cycle is a simple directed cycle: a non-empty ordered edge sequence whose
// first edge's source equals the last edge's destination, with no repeated
// intermediate node. A self-loop is a valid 1-edge Cycle.
type Cycle []core.Edge

// Nodes returns the set of node IDs touched by the cycle, by endpoint
// membership, in first-touch order.
func (c Cycle) Nodes() []string { return endpointNodes(c) }

// Path is a simple directed forward path: an ordered edge sequence between
// two designated nodes with no repeated node.
type Path []core.Edge

// Nodes returns the node sequence of the path: the start node followed by
// each edge's destination. Empty for the empty path.
func (p Path) Nodes() []string {
	if len(p) == 0 {
		return nil
	}
	out := make([]string, 0, len(p)+1)
	out = append(out, p[0].From)
	for i := range p {
		out = append(out, p[i].To)
	}

	return out
}

// Combination is the concatenated edge list of two or more node-disjoint
// loops forming one non-touching set.
type Combination []core.Edge

// Option configures optional behavior of the analysis functions.
type Option func(*Options)

// Options holds configurable parameters shared by the analysis functions.
type Options struct {
	// Logger receives structured trace records (loops found, residual
	// sizes, path counts). Defaults to a discarding logger; inject one to
	// follow the analysis step by step.
	Logger *slog.Logger
}

// DefaultOptions returns an Options with a discarding logger.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithLogger returns an Option that installs l as the trace logger.
// Passing nil has no effect (the discarding logger is retained).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// apply folds opts over the defaults.
func apply(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}
