package grammar

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Symbol is an atomic grammar element: a terminal, a non-terminal or
// the epsilon marker.
type Symbol string

// Epsilon is the marker symbol for the empty word. It will never be part of a
// production of length > 1. Epsilon is the empty string, which cannot result
// from reading grammar symbols from text; a character 'ε' within an
// alternative is an ordinary terminal.
const Epsilon Symbol = ""

// IsEpsilon is true for the epsilon marker.
func (s Symbol) IsEpsilon() bool {
	return s == Epsilon
}

// IsNonTerminal is true if s is shaped like a non-terminal name, see IsNonTerminalName.
func (s Symbol) IsNonTerminal() bool {
	return IsNonTerminalName(string(s))
}

// IsNonTerminalName checks if a name is shaped like a non-terminal:
// an uppercase letter A…Z, optionally followed by a decimal suffix (e.g. "B12").
func IsNonTerminalName(name string) bool {
	if name == "" || name[0] < 'A' || name[0] > 'Z' {
		return false
	}
	for i := 1; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}

// IsValidLHS checks a name for use as the left hand side of a rule. Such a
// name must not contain white space, has to contain at least one cased letter,
// and all of its cased letters must be uppercase. "A", "EXPR" and "A1" are
// valid, "a", "Ab" and "1" are not.
func IsValidLHS(name string) bool {
	if name == "" || !utf8.ValidString(name) {
		return false
	}
	cased := false
	for _, r := range name {
		switch {
		case unicode.IsSpace(r), unicode.IsLower(r):
			return false
		case unicode.IsUpper(r), unicode.IsTitle(r):
			cased = true
		}
	}
	return cased
}

// --- Productions -----------------------------------------------------------

// Production is one alternative of the right hand side of a rule.
// A production is never empty. The empty word is represented as a production
// consisting of the single symbol Epsilon.
type Production []Symbol

// EpsilonProduction returns a new production for the empty word.
func EpsilonProduction() Production {
	return Production{Epsilon}
}

// IsEpsilon is true for an epsilon production.
func (p Production) IsEpsilon() bool {
	return len(p) == 1 && p[0] == Epsilon
}

// StartsWith is true if the first symbol of p is A.
func (p Production) StartsWith(A Symbol) bool {
	return len(p) > 0 && p[0] == A
}

// Rest returns a copy of p without its first symbol. The result may be empty.
func (p Production) Rest() Production {
	if len(p) == 0 {
		return Production{}
	}
	return p[1:].Copy()
}

// Concat returns a new production consisting of the symbols of p, followed
// by syms. p is not modified.
func (p Production) Concat(syms ...Symbol) Production {
	q := make(Production, 0, len(p)+len(syms))
	q = append(q, p...)
	return append(q, syms...)
}

// Copy returns a copy of p.
func (p Production) Copy() Production {
	if p == nil {
		return nil
	}
	q := make(Production, len(p))
	copy(q, p)
	return q
}

// Equals compares two productions symbol by symbol.
func (p Production) Equals(q Production) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// Render concatenates the symbols of p, substituting eps for the
// epsilon marker.
func (p Production) Render(eps string) string {
	var b strings.Builder
	for _, sym := range p {
		if sym.IsEpsilon() {
			b.WriteString(eps)
		} else {
			b.WriteString(string(sym))
		}
	}
	return b.String()
}

func (p Production) String() string {
	return p.Render("ε")
}
