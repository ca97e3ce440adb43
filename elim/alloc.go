package elim

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/leftrec/grammar"
)

// ExhaustionError is returned if no unused non-terminal name is left.
type ExhaustionError struct {
	MaxSuffix int // largest numeric suffix which has been tried
}

func (e ExhaustionError) Error() string {
	if e.MaxSuffix == 0 {
		return "all non-terminal names A…Z are in use"
	}
	return fmt.Sprintf("all non-terminal names A…Z, A1…Z%d are in use", e.MaxSuffix)
}

// FreshSymbol returns the first non-terminal name not contained in used. Candidates
// are the letters A…Z, then A1…Z1, A2…Z2, and so on, up to suffix maxSuffix.
//
// FreshSymbol does not add the new symbol to used; this is up to the caller.
func FreshSymbol(used *grammar.SymbolSet, maxSuffix int) (grammar.Symbol, error) {
	for c := 'A'; c <= 'Z'; c++ {
		if A := grammar.Symbol(string(c)); !used.Contains(A) {
			return A, nil
		}
	}
	for n := 1; n <= maxSuffix; n++ {
		suffix := strconv.Itoa(n)
		for c := 'A'; c <= 'Z'; c++ {
			if A := grammar.Symbol(string(c) + suffix); !used.Contains(A) {
				return A, nil
			}
		}
	}
	tracer().Errorf("no fresh non-terminal left, %d names in use", used.Size())
	return "", ExhaustionError{MaxSuffix: maxSuffix}
}
