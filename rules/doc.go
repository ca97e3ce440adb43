/*
Package rules reads grammar rules in textual form.

A rule consists of a non-terminal, an arrow and a list of alternatives,
separated by white space:

    A -> Aa | b
    E -> E+T T

The arrow has to be surrounded by white space. A "|" standing by itself is a
separator and may be omitted. Every other character of an alternative is a
grammar symbol of its own, e.g. "E+T" is read as the symbols E, + and T.
An alternative consisting of just "e", "E" or "ε" denotes the empty word;
within a longer alternative these are ordinary terminals. Alternatives have
to be valid UTF-8.
The non-terminal on the left hand side must be written in uppercase letters.

ParseRule reads a single rule, ParseRules and ReadGrammar combine several rules
into one grammar.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rules

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'leftrec.rules'.
func tracer() tracing.Trace {
	return tracing.Select("leftrec.rules")
}
