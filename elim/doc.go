/*
Package elim removes left recursion from context-free grammars.

The algorithm is the standard one (see e.g. "Compilers: Principles, Techniques,
and Tools", section 4.3.3). Non-terminals A1 … An are processed in their
declaration order. For every Ai, first every production Ai ➞ Aj γ with j < i is
replaced by the productions Ai ➞ δ γ, one for every current production Aj ➞ δ.
Then the immediate left recursion of Ai is removed:

    A  ➞  A α1 | … | A αm | β1 | … | βn

becomes

    A  ➞  β1 A' | … | βn A'
    A' ➞  α1 A' | … | αm A' | ε

where A' is a new non-terminal. New non-terminals are named with the first
unused uppercase letter, and with numbered letters (A1, B1, …, Z1, A2, …) after
that.

Usage

    g, err := rules.ParseRule("E -> E+T | T")
    …
    err = elim.Eliminate(g)
    fmt.Println(g)

    E -> TA
    A -> +TA e

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package elim

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'leftrec.elim'.
func tracer() tracing.Trace {
	return tracing.Select("leftrec.elim")
}
