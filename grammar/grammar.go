package grammar

import (
	"errors"
	"fmt"
	"sort"

	"github.com/cnf/structhash"
)

// Grammar is a mapping from non-terminals to their productions.
// The order of productions of a non-terminal is significant.
//
// Additionally, a grammar keeps the order in which non-terminals have been
// declared. Non-terminals may be added to a grammar without declaring them,
// see Set.
//
// The zero value is an empty grammar ready to use.
type Grammar struct {
	rules map[Symbol][]Production
	order []Symbol
}

// New creates an empty grammar.
func New() *Grammar {
	return &Grammar{
		rules: make(map[Symbol][]Production),
	}
}

// Add appends productions to the rule for non-terminal A. If A is not yet
// known to the grammar, it is declared, i.e. appended to the grammar's order.
func (g *Grammar) Add(A Symbol, prods ...Production) *Grammar {
	g.init()
	if _, ok := g.rules[A]; !ok {
		g.order = append(g.order, A)
		g.rules[A] = make([]Production, 0, len(prods))
	}
	for _, p := range prods {
		g.rules[A] = append(g.rules[A], p.Copy())
	}
	return g
}

// Set replaces all productions of non-terminal A. If A is not yet known to the
// grammar, it is added without declaring it.
func (g *Grammar) Set(A Symbol, prods []Production) {
	g.init()
	g.rules[A] = prods
}

func (g *Grammar) init() {
	if g.rules == nil {
		g.rules = make(map[Symbol][]Production)
	}
}

// Productions returns the productions of non-terminal A, and false if
// there is no rule for A. Clients must not modify the returned slice.
func (g *Grammar) Productions(A Symbol) ([]Production, bool) {
	prods, ok := g.rules[A]
	return prods, ok
}

// Has checks if g has a rule for A.
func (g *Grammar) Has(A Symbol) bool {
	_, ok := g.rules[A]
	return ok
}

// Len returns the number of non-terminals with a rule.
func (g *Grammar) Len() int {
	return len(g.rules)
}

// Order returns the declared non-terminals, in declaration order.
func (g *Grammar) Order() []Symbol {
	order := make([]Symbol, len(g.order))
	copy(order, g.order)
	return order
}

func (g *Grammar) isDeclared(A Symbol) bool {
	for _, nt := range g.order {
		if nt == A {
			return true
		}
	}
	return false
}

// Generated returns the non-terminals which have a rule but have not been
// declared, in lexicographic order.
func (g *Grammar) Generated() []Symbol {
	S := NewSymbolSet()
	for A := range g.rules {
		if !g.isDeclared(A) {
			S.Add(A)
		}
	}
	return S.Values()
}

// NonTerminals returns all non-terminals having a rule: first the declared ones
// in declaration order, then the rest in lexicographic order.
func (g *Grammar) NonTerminals() []Symbol {
	nts := make([]Symbol, 0, len(g.rules))
	for _, A := range g.order {
		if g.Has(A) {
			nts = append(nts, A)
		}
	}
	return append(nts, g.Generated()...)
}

// UsedSymbols collects every non-terminal name in use, i.e. all the rules'
// left hand sides and every symbol within a production which is shaped like
// a non-terminal (see IsNonTerminalName).
func (g *Grammar) UsedSymbols() *SymbolSet {
	used := NewSymbolSet()
	for A, prods := range g.rules {
		used.Add(A)
		for _, p := range prods {
			for _, sym := range p {
				if sym.IsNonTerminal() {
					used.Add(sym)
				}
			}
		}
	}
	return used
}

// Clone returns a deep copy of g.
func (g *Grammar) Clone() *Grammar {
	c := &Grammar{
		rules: make(map[Symbol][]Production, len(g.rules)),
		order: g.Order(),
	}
	for A, prods := range g.rules {
		cprods := make([]Production, len(prods))
		for i, p := range prods {
			cprods[i] = p.Copy()
		}
		c.rules[A] = cprods
	}
	return c
}

// Errors reported by Validate.
var (
	ErrEmptyProduction  = errors.New("empty production")
	ErrEmbeddedEpsilon  = errors.New("epsilon within a production of length > 1")
	ErrInvalidLHS       = errors.New("invalid non-terminal")
	ErrNoProductions    = errors.New("rule without productions")
	ErrUndeclaredSymbol = errors.New("declared non-terminal without rule")
)

// Validate checks the shape constraints of a grammar: every left hand side
// is a valid non-terminal name, every rule has at least one production, and
// no production is empty. Epsilon may only occur as a production by itself.
//
// Validate does not check if all non-terminals on right hand sides have
// a rule.
func (g *Grammar) Validate() error {
	for _, A := range g.order {
		if !g.Has(A) {
			return fmt.Errorf("%w: %s", ErrUndeclaredSymbol, A)
		}
	}
	for _, A := range g.NonTerminals() {
		if !IsValidLHS(string(A)) {
			return fmt.Errorf("%w: %q", ErrInvalidLHS, A)
		}
		prods := g.rules[A]
		if len(prods) == 0 {
			return fmt.Errorf("%w: %s", ErrNoProductions, A)
		}
		for i, p := range prods {
			if len(p) == 0 {
				return fmt.Errorf("%w: %s, alternative #%d", ErrEmptyProduction, A, i+1)
			}
			if len(p) > 1 {
				for _, sym := range p {
					if sym.IsEpsilon() {
						return fmt.Errorf("%w: %s -> %s", ErrEmbeddedEpsilon, A, p)
					}
				}
			}
		}
	}
	return nil
}

// --- Hashing ---------------------------------------------------------------

type hashedRule struct {
	LHS string
	RHS []string
}

type hashedGrammar struct {
	Order []string
	Rules []hashedRule
}

// Hash returns a fingerprint of g, covering the declaration order and all
// rules. Grammars with identical rules and order have identical hashes.
func (g *Grammar) Hash() string {
	hg := hashedGrammar{Order: make([]string, len(g.order))}
	for i, A := range g.order {
		hg.Order[i] = string(A)
	}
	lhs := make([]string, 0, len(g.rules))
	for A := range g.rules {
		lhs = append(lhs, string(A))
	}
	sort.Strings(lhs)
	for _, A := range lhs {
		r := hashedRule{LHS: A}
		for _, p := range g.rules[Symbol(A)] {
			r.RHS = append(r.RHS, fmt.Sprintf("%q", []Symbol(p)))
		}
		hg.Rules = append(hg.Rules, r)
	}
	h, err := structhash.Hash(hg, 1)
	if err != nil {
		tracer().Errorf("cannot hash grammar: %v", err)
		return ""
	}
	return h
}

// Dump is a debugging helper. It traces all rules with level Debug.
func (g *Grammar) Dump() {
	tracer().Debugf("--- grammar -----------------------------")
	n := 0
	for _, A := range g.NonTerminals() {
		for _, p := range g.rules[A] {
			tracer().Debugf("%3d: [%s] ::= %v", n, A, []Symbol(p))
			n++
		}
	}
	tracer().Debugf("-----------------------------------------")
}
