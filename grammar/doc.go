/*
Package grammar implements the data model for context-free grammars: symbols,
productions and grammars.

Building a Grammar

Grammars are either read from text (see package rules) or specified using a
grammar builder object. Clients add rules, consisting of non-terminal symbols
and terminals. Grammars may contain epsilon-productions.

Example:

    b := grammar.NewBuilder()
    b.LHS("E").N("E").T("+").N("T").End()   // E  ->  E+T
    b.LHS("E").N("T").End()                 // E  ->  T
    b.LHS("T").T("a").End()                 // T  ->  a
    b.LHS("T").Epsilon()                    // T  ->  ε
    g, err := b.Grammar()

Non-terminals are kept in the order of their first declaration. This order is
significant for the rewriting algorithms of package elim, and for rendering a
grammar back to text:

    fmt.Println(grammar.Format(g, "e"))

    E -> E+T T
    T -> a e

Non-terminals which have been added to a grammar without declaring them (as
it happens with non-terminals synthesized during rewriting) are listed after
the declared ones, in lexicographic order.

Symbol Sets

Type SymbolSet is a sorted set of symbols. It is used to track which
non-terminal names are taken at a given point in time, so that new names may
be generated without collisions.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'leftrec.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("leftrec.grammar")
}
