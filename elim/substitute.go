package elim

import (
	"github.com/npillmayer/leftrec/grammar"
)

// Substitute replaces every production Ai ➞ Aj γ by the productions
//
//    Ai ➞ δ1 γ | … | δk γ
//
// where Aj ➞ δ1 | … | δk are the productions of Aj at the time of the call.
// For δ = ε the replacement is γ, or ε if γ is empty as well.
// Productions of Ai not starting with Aj are kept in place.
//
// If g has no rule for Aj (or for Ai), Substitute does nothing.
func Substitute(g *grammar.Grammar, Ai, Aj grammar.Symbol) {
	jprods, ok := g.Productions(Aj)
	if !ok {
		return
	}
	iprods, ok := g.Productions(Ai)
	if !ok || !HasImmediateRecursion(iprods, Aj) {
		return
	}
	tracer().Debugf("substituting %s in productions of %s", Aj, Ai)
	prods := make([]grammar.Production, 0, len(iprods)+len(jprods))
	for _, p := range iprods {
		if !p.StartsWith(Aj) {
			prods = append(prods, p)
			continue
		}
		gamma := p.Rest()
		for _, delta := range jprods {
			switch {
			case !delta.IsEpsilon():
				prods = append(prods, delta.Concat(gamma...))
			case len(gamma) > 0:
				prods = append(prods, gamma.Copy())
			default:
				prods = append(prods, grammar.EpsilonProduction())
			}
		}
	}
	g.Set(Ai, prods)
}
