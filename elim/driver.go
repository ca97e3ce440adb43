package elim

import (
	"fmt"

	"github.com/npillmayer/leftrec/grammar"
)

// EliminateLeftRecursion removes direct and indirect left recursion from g.
// Non-terminals are processed in the sequence given by order. For every
// non-terminal order[i], first all order[j], j < i, are substituted (see
// Substitute), then immediate left recursion of order[i] is eliminated (see
// EliminateImmediate).
//
// Names for new non-terminals are chosen such that they collide neither with
// any left hand side of g, nor with any non-terminal-shaped symbol on a right
// hand side of g.
//
// g is modified and returned. If the rewrite fails, g is left unchanged and
// an error is returned; this is the case only if no more non-terminal names
// are available (see ExhaustionError).
func EliminateLeftRecursion(g *grammar.Grammar, order []grammar.Symbol, opts ...Option) (*grammar.Grammar, error) {
	conf := configure(opts)
	work := g.Clone()
	used := work.UsedSymbols()
	tracer().Debugf("non-terminals in use: %v", used)
	for i, Ai := range order {
		for _, Aj := range order[:i] {
			Substitute(work, Ai, Aj)
		}
		if prods, ok := work.Productions(Ai); ok && HasImmediateRecursion(prods, Ai) {
			if err := eliminateImmediate(work, Ai, used, conf); err != nil {
				return g, fmt.Errorf("cannot eliminate left recursion of %s: %w", Ai, err)
			}
		}
	}
	*g = *work
	g.Dump()
	return g, nil
}

// Eliminate removes left recursion from g, processing non-terminals in their
// declaration order. See EliminateLeftRecursion.
func Eliminate(g *grammar.Grammar, opts ...Option) error {
	_, err := EliminateLeftRecursion(g, g.Order(), opts...)
	return err
}
