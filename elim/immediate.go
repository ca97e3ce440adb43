package elim

import (
	"github.com/npillmayer/leftrec/grammar"
)

// HasImmediateRecursion is true if any of prods starts with A.
func HasImmediateRecursion(prods []grammar.Production, A grammar.Symbol) bool {
	for _, p := range prods {
		if p.StartsWith(A) {
			return true
		}
	}
	return false
}

// EliminateImmediate removes immediate left recursion from the rule for A.
//
//    A  ➞  A α1 | … | A αm | β1 | … | βn
//
// is rewritten to
//
//    A  ➞  β1 A' | … | βn A'
//    A' ➞  α1 A' | … | αm A' | ε
//
// A' is a fresh non-terminal, taken from the names not in used, and will be added
// to used. An epsilon production βj = ε results in A ➞ A'. If there is no βj at all,
// the new rule is A ➞ A'.
//
// If the rule for A is not left recursive (or there is no rule for A),
// EliminateImmediate does nothing. The only error condition is running out of
// fresh non-terminal names, in which case g is left untouched.
func EliminateImmediate(g *grammar.Grammar, A grammar.Symbol, used *grammar.SymbolSet,
	opts ...Option) error {
	//
	return eliminateImmediate(g, A, used, configure(opts))
}

func eliminateImmediate(g *grammar.Grammar, A grammar.Symbol, used *grammar.SymbolSet,
	conf config) error {
	//
	prods, ok := g.Productions(A)
	if !ok {
		return nil
	}
	var alphas, betas []grammar.Production
	for _, p := range prods {
		if p.StartsWith(A) {
			alphas = append(alphas, p.Rest())
		} else {
			betas = append(betas, p)
		}
	}
	if len(alphas) == 0 {
		return nil
	}
	Aprime, err := FreshSymbol(used, conf.maxSuffix)
	if err != nil {
		return err
	}
	used.Add(Aprime)
	tracer().Debugf("eliminating immediate left recursion of %s with new non-terminal %s", A, Aprime)
	//
	Aprods := make([]grammar.Production, 0, len(betas)+1)
	for _, beta := range betas {
		if beta.IsEpsilon() {
			Aprods = append(Aprods, grammar.Production{Aprime})
		} else {
			Aprods = append(Aprods, beta.Concat(Aprime))
		}
	}
	if len(betas) == 0 {
		Aprods = append(Aprods, grammar.Production{Aprime})
	}
	Aprimeprods := make([]grammar.Production, 0, len(alphas)+1)
	for _, alpha := range alphas {
		Aprimeprods = append(Aprimeprods, alpha.Concat(Aprime)) // A ➞ A yields A' ➞ A'
	}
	Aprimeprods = append(Aprimeprods, grammar.EpsilonProduction())
	g.Set(A, Aprods)
	g.Set(Aprime, Aprimeprods)
	return nil
}
