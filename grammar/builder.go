package grammar

import (
	"fmt"
)

// Builder is a helper type to construct grammars in Go code. Create one with
// NewBuilder, then add rules:
//
//    b := NewBuilder()
//    b.LHS("A").N("A").T("a").End()   // A -> Aa
//    b.LHS("A").T("b").End()          // A -> b
//    g, err := b.Grammar()
//
// Errors are collected and reported by Grammar().
type Builder struct {
	g    *Grammar
	errs []error
}

// RuleBuilder collects the symbols of a single production.
type RuleBuilder struct {
	b    *Builder
	lhs  Symbol
	syms Production
}

// NewBuilder creates a builder for an empty grammar.
func NewBuilder() *Builder {
	return &Builder{g: New()}
}

// LHS starts a new production for non-terminal A.
func (b *Builder) LHS(A string) *RuleBuilder {
	if !IsValidLHS(A) {
		b.errs = append(b.errs, fmt.Errorf("%w: %q", ErrInvalidLHS, A))
	}
	return &RuleBuilder{b: b, lhs: Symbol(A)}
}

// N appends a non-terminal to the production.
func (rb *RuleBuilder) N(A string) *RuleBuilder {
	if !IsValidLHS(A) {
		rb.b.errs = append(rb.b.errs, fmt.Errorf("%w: %q on right hand side of %s", ErrInvalidLHS, A, rb.lhs))
	}
	rb.syms = append(rb.syms, Symbol(A))
	return rb
}

// T appends a terminal to the production.
func (rb *RuleBuilder) T(a string) *RuleBuilder {
	rb.syms = append(rb.syms, Symbol(a))
	return rb
}

// End finishes the production and adds it to the grammar.
func (rb *RuleBuilder) End() *Builder {
	if len(rb.syms) == 0 {
		rb.b.errs = append(rb.b.errs, fmt.Errorf("%w: %s; use Epsilon() for the empty word",
			ErrEmptyProduction, rb.lhs))
		return rb.b
	}
	rb.b.g.Add(rb.lhs, rb.syms)
	return rb.b
}

// Epsilon adds an epsilon production for the rule's non-terminal. Symbols
// appended before are discarded.
func (rb *RuleBuilder) Epsilon() *Builder {
	rb.b.g.Add(rb.lhs, EpsilonProduction())
	return rb.b
}

// Grammar returns the grammar built so far, or the errors encountered.
func (b *Builder) Grammar() (*Grammar, error) {
	if len(b.errs) > 0 {
		if len(b.errs) == 1 {
			return nil, b.errs[0]
		}
		return nil, fmt.Errorf("%d errors building grammar, first is: %w", len(b.errs), b.errs[0])
	}
	if err := b.g.Validate(); err != nil {
		return nil, err
	}
	b.g.Dump()
	return b.g, nil
}
