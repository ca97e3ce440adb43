package grammar

import (
	"strings"
)

// DefaultEpsilon is the literal used for rendering epsilon productions.
const DefaultEpsilon = "e"

// FormatRule renders the rule for A as
//
//    A -> alt1 alt2 …
//
// where alternatives are separated by a single space. The epsilon marker is
// rendered as eps. Returns an empty string if g has no rule for A.
func FormatRule(g *Grammar, A Symbol, eps string) string {
	prods, ok := g.Productions(A)
	if !ok {
		return ""
	}
	alts := make([]string, len(prods))
	for i, p := range prods {
		alts[i] = p.Render(eps)
	}
	return string(A) + " -> " + strings.Join(alts, " ")
}

// Format renders a grammar as text, one rule per line. Declared non-terminals
// come first, in declaration order, followed by the undeclared ones in
// lexicographic order.
func Format(g *Grammar, eps string) string {
	lines := make([]string, 0, g.Len())
	for _, A := range g.NonTerminals() {
		lines = append(lines, FormatRule(g, A, eps))
	}
	return strings.Join(lines, "\n")
}

func (g *Grammar) String() string {
	return Format(g, DefaultEpsilon)
}
