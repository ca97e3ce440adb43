/*
Package lexmach provides an adapter for lexmachine as a scanner.

lexmachine is a lexical analyser generator by Tim Henderson:

    https://github.com/timtadh/lexmachine

It compiles regular expressions into a DFA, which is well suited for reading
grammar rules from text. Clients provide literals (matched verbatim) and an
init function to add patterns of their own:

    init := func(lexer *lexmachine.Lexer) {
        lexer.Add([]byte(`( |\t)+`), lexmach.Skip)
        lexer.Add([]byte(`[^ \t]+`), lexmach.MakeToken("WORD", Word))
    }
    adapter, err := lexmach.NewLMAdapter(init, []string{"->", "|"}, tokenIds)
    scanner, err := adapter.Scanner("A -> Aa | b")

Literals take precedence over patterns matching input of the same length, i.e.
with the example above, "->" will be recognized as a literal, but "->x"
will be a WORD.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package lexmach
