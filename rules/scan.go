package rules

import (
	"fmt"
	"sync"

	"github.com/npillmayer/leftrec/scanner/lexmach"
	"github.com/timtadh/lexmachine"
)

// Token types for rule input.
const (
	Arrow = iota + 1 // "->"
	Bar              // "|"
	Word             // everything else, up to the next white space
)

// The tokens representing literal lexemes
var literals = []string{"->", "|"}

var tokenIds = map[string]int{
	"->":   Arrow,
	"|":    Bar,
	"WORD": Word,
}

var lexerOnce sync.Once // monitors one-time initialization
var lexer *lexmach.LMAdapter
var lexerErr error

// Lexer returns the lexmachine lexer for grammar rules. The DFA is compiled
// on first use.
func Lexer() (*lexmach.LMAdapter, error) {
	lexerOnce.Do(func() {
		init := func(lexer *lexmachine.Lexer) {
			lexer.Add([]byte(`( |\t|\n|\r)+`), lexmach.Skip)
			lexer.Add([]byte(`[^ \t\n\r]+`), makeToken("WORD"))
		}
		lexer, lexerErr = lexmach.NewLMAdapter(init, literals, tokenIds)
	})
	return lexer, lexerErr
}

func makeToken(s string) lexmachine.Action {
	id, ok := tokenIds[s]
	if !ok {
		panic(fmt.Errorf("unknown token: %s", s))
	}
	return lexmach.MakeToken(s, id)
}
