package rules

import (
	"bufio"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/leftrec"
	"github.com/npillmayer/leftrec/grammar"
	"github.com/npillmayer/leftrec/scanner"
)

// isEpsilon checks if an alternative denotes the empty word.
func isEpsilon(lexeme string) bool {
	return lexeme == "e" || lexeme == "E" || lexeme == "ε"
}

func tokenize(line string) ([]leftrec.Token, error) {
	lx, err := Lexer()
	if err != nil {
		return nil, parseError(ErrScanner, leftrec.Span{}, "%v", err)
	}
	sc, err := lx.Scanner(line)
	if err != nil {
		return nil, parseError(ErrScanner, leftrec.Span{}, "%v", err)
	}
	var scanErr error
	sc.SetErrorHandler(func(e error) {
		if scanErr == nil {
			scanErr = e
		}
	})
	var tokens []leftrec.Token
	for tok := sc.NextToken(); tok.TokType() != scanner.EOF; tok = sc.NextToken() {
		tokens = append(tokens, tok)
	}
	if scanErr != nil {
		return nil, parseError(ErrScanner, leftrec.Span{}, "%v", scanErr)
	}
	return tokens, nil
}

// ParseRule reads a single rule of the form
//
//    NT -> alt1 | alt2 …
//
// and returns a grammar consisting of this rule. NT is the only declared
// non-terminal of the grammar. No grammar is returned in case of an error;
// errors are of type *ParseError.
func ParseRule(line string) (*grammar.Grammar, error) {
	A, prods, err := parseRule(line)
	if err != nil {
		tracer().Infof("cannot parse rule %q: %v", line, err)
		return nil, err
	}
	g := grammar.New().Add(A, prods...)
	return g, nil
}

func parseRule(line string) (grammar.Symbol, []grammar.Production, error) {
	tokens, err := tokenize(line)
	if err != nil {
		return "", nil, err
	}
	arrow := -1
	for i, tok := range tokens {
		if tok.TokType() != Arrow {
			continue
		}
		if arrow >= 0 {
			return "", nil, parseError(ErrMissingArrow, tok.Span(), "more than one arrow")
		}
		arrow = i
	}
	if arrow < 0 {
		return "", nil, parseError(ErrMissingArrow, leftrec.Span{0, uint64(len(line))}, "%q", line)
	}
	if arrow == 0 {
		return "", nil, parseError(ErrInvalidNonTerminal, tokens[0].Span(), "empty left hand side")
	}
	if arrow > 1 {
		span := tokens[0].Span().Extend(tokens[arrow-1].Span())
		return "", nil, parseError(ErrInvalidNonTerminal, span, "%q contains white space",
			strings.TrimSpace(line[span.From():span.To()]))
	}
	lhs := tokens[0]
	if lhs.TokType() != Word || !grammar.IsValidLHS(lhs.Lexeme()) {
		return "", nil, parseError(ErrInvalidNonTerminal, lhs.Span(), "%q", lhs.Lexeme())
	}
	var prods []grammar.Production
	for _, tok := range tokens[arrow+1:] {
		if tok.TokType() == Bar {
			continue
		}
		if isEpsilon(tok.Lexeme()) {
			prods = append(prods, grammar.EpsilonProduction())
			continue
		}
		if !utf8.ValidString(tok.Lexeme()) {
			return "", nil, parseError(ErrScanner, tok.Span(), "invalid UTF-8 in %q", tok.Lexeme())
		}
		p := make(grammar.Production, 0, len(tok.Lexeme()))
		for _, r := range tok.Lexeme() {
			p = append(p, grammar.Symbol(string(r)))
		}
		prods = append(prods, p)
	}
	if len(prods) == 0 {
		return "", nil, parseError(ErrNoAlternatives, tokens[arrow].Span(), "for %s", lhs.Lexeme())
	}
	return grammar.Symbol(lhs.Lexeme()), prods, nil
}

// ParseRules reads several rules into one grammar. Blank lines and lines
// starting with '#' are ignored. Alternatives of a non-terminal occuring
// on the left hand side of more than one rule are appended, with the
// non-terminal keeping the position of its first declaration.
//
// No grammar is returned in case of an error. Errors carry the line number
// of the offending rule.
func ParseRules(lines []string) (*grammar.Grammar, error) {
	g := grammar.New()
	for i, line := range lines {
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		A, prods, err := parseRule(line)
		if err != nil {
			if perr, ok := err.(*ParseError); ok {
				perr.Line = i + 1
			}
			tracer().Infof("cannot parse rule in line %d: %v", i+1, err)
			return nil, err
		}
		g.Add(A, prods...)
	}
	if g.Len() == 0 {
		return nil, parseError(ErrNoAlternatives, leftrec.Span{}, "no rules")
	}
	return g, nil
}

// ReadGrammar reads rules line by line, see ParseRules.
func ReadGrammar(r io.Reader) (*grammar.Grammar, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return ParseRules(lines)
}
