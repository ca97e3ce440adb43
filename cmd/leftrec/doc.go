/*
Leftrec removes left recursion from grammar rules.

Usage:

	leftrec [flags] [rule]

If a rule is given on the command line, it is transformed and printed, then
leftrec exits. Arguments are joined by spaces, so quoting is optional:

	leftrec "A -> Aa | b"
	leftrec E '->' E+T '|' T

Without a rule, leftrec starts an interactive session, reading one rule per
line. Enter 'q', 'quit' or <ctrl>D to stop it. The commands ':tree' and
':table' display the last result as a tree or a table.

The flags are:

	-file FILE
		Read all rules of FILE into a single grammar, transform it and exit.
		This way indirect left recursion across rules is resolved.

	-init FILE
		Feed every line of FILE to the interactive session before reading
		from the terminal.

	-config FILE
		Read settings from a TOML file. Keys are trace, prompt, epsilon,
		max_suffix and table. Flags given on the command line take precedence.

	-trace LEVEL
		Trace level [Debug|Info|Error].

	-table
		Additionally display results as a table.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'leftrec.cli'
func tracer() tracing.Trace {
	return tracing.Select("leftrec.cli")
}

// traceKeys are the tracing keys of all packages of this module.
var traceKeys = []string{
	"leftrec.cli",
	"leftrec.elim",
	"leftrec.grammar",
	"leftrec.rules",
	"leftrec.scanner",
}
