/*
Package leftrec is a toolbox for removing left recursion from context-free
grammars.

Left recursive grammars cannot be used with top-down (LL) parsers. Package
leftrec rewrites such grammars into equivalent ones, using the classic
two-phase algorithm: for every non-terminal, in declaration order, first
productions starting with an earlier non-terminal are expanded, then
immediate left recursion is replaced by a fresh right-recursive non-terminal.
Package structure is as follows:

■ grammar: Package grammar implements symbols, productions and grammars, together
with rendering grammars back to text.

■ elim: Package elim implements the rewriting engine.

■ rules: Package rules reads grammar rules in textual form, e.g. "A -> Aa | b".

■ scanner: Package scanner defines the tokenizer interface used by package rules,
and an adapter for lexmachine.

The base package contains data types which are used throughout all the other packages.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package leftrec
