package rules

import (
	"errors"
	"fmt"

	"github.com/npillmayer/leftrec"
)

// Causes of parse errors. Use errors.Is to test for them.
var (
	ErrMissingArrow       = errors.New("rule must have the form 'NT -> …'")
	ErrInvalidNonTerminal = errors.New("invalid non-terminal")
	ErrNoAlternatives     = errors.New("no alternatives found")
	ErrScanner            = errors.New("cannot scan input")
)

// ParseError is returned for malformed rules.
type ParseError struct {
	Span leftrec.Span // position of the offending input
	Line int          // line number, if reading more than one rule (1…n)
	Msg  string
	Err  error // one of the Err… causes
}

func (e *ParseError) Error() string {
	msg := e.Err.Error()
	if e.Msg != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Msg)
	}
	if e.Line > 0 {
		return fmt.Sprintf("line %d: %s at %v", e.Line, msg, e.Span)
	}
	return fmt.Sprintf("%s at %v", msg, e.Span)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func parseError(cause error, span leftrec.Span, format string, args ...interface{}) *ParseError {
	return &ParseError{
		Span: span,
		Msg:  fmt.Sprintf(format, args...),
		Err:  cause,
	}
}
