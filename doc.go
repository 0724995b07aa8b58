// Package sfg is an in-memory toolkit for signal-flow-graph analysis:
// build a weighted directed graph from linear node equations and derive
// its symbolic transfer function with Mason's Gain Formula.
//
// 🚀 What is sfg?
//
//	A small, deterministic, pure-Go library that brings together:
//		• Core primitives: nodes, symbolic-weight edges, cheap residual subgraphs
//		• Loop analysis: enumeration of all simple directed cycles
//		• Non-touching sets: k-wise node-disjoint loop combinations
//		• Gain assembly: Mason's Δ, forward paths, cofactors, numerator
//		• Presentation: transfer function plus magnitude/phase formulas for Bode analysis
//
// ✨ Why choose sfg?
//
//   - Deterministic – fixed node and edge ordering, reproducible results
//   - Non-destructive – every subgraph operation works on deep copies
//   - Pure Go – no cgo, no hidden deps
//   - Pluggable – bring your own symbolic algebra via symbolic.Algebra
//
// Under the hood, everything is organized under three subpackages:
//
//	core/     — Node, Edge, Graph arena with id-based weak edge references
//	symbolic/ — the expression-engine boundary (Algebra, Expr) + a reference algebra
//	mason/    — loop enumeration, non-touching sets, Δ, cofactors, numerator
//
// Quick ASCII example:
//
//	    a        b
//	(1)───►(2)───►(3)
//	        ↺ f
//
//	yields the transfer function (a*b) / (1 - f).
//
// Dive into the package docs of core, symbolic and mason for tutorials,
// complexity notes and worked examples.
//
//	go get github.com/katalvlaran/sfg
package sfg
