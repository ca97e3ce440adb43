/*
Package scanner defines an interface for scanners to be used for reading
grammar rules.

A default scanner implementation is provided as an adapter for lexmachine,
living in sub-package `lexmach`.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package scanner

import (
	"fmt"

	"github.com/npillmayer/leftrec"
)

// EOF is the token type signalling the end of input.
const EOF = -1

// Tokenizer is a scanner interface.
type Tokenizer interface {
	NextToken() leftrec.Token
	SetErrorHandler(func(error))
}

// --- Default tokens --------------------------------------------------------

// DefaultToken is a very unsophisticated token type, used as default for
// the LexMachine scanner.
type DefaultToken struct {
	kind   leftrec.TokType
	lexeme string
	span   leftrec.Span
}

var _ leftrec.Token = DefaultToken{}

// MakeDefaultToken creates a token.
func MakeDefaultToken(typ leftrec.TokType, lexeme string, span leftrec.Span) DefaultToken {
	return DefaultToken{
		kind:   typ,
		lexeme: lexeme,
		span:   span,
	}
}

func (t DefaultToken) TokType() leftrec.TokType {
	return t.kind
}

func (t DefaultToken) Lexeme() string {
	return t.lexeme
}

func (t DefaultToken) Span() leftrec.Span {
	return t.span
}

func (t DefaultToken) String() string {
	return fmt.Sprintf("<%d|%q%v>", t.kind, t.lexeme, t.span)
}
