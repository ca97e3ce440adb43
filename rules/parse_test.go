package rules

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/leftrec/elim"
	"github.com/npillmayer/leftrec/grammar"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestParseRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "leftrec.rules")
	defer teardown()
	//
	testCases := []struct {
		input  string
		expect string
	}{
		{"A -> Aa | b", "A -> Aa b"},
		{"S -> Sa | Sb | c | e", "S -> Sa Sb c e"},
		{"E -> E+T | T", "E -> E+T T"},
		{"  A   ->  a\tb  ", "A -> a b"},
		{"A -> ε | E", "A -> e e"},
		{"A -> a|b", "A -> a|b"},
		{"EXPR -> x", "EXPR -> x"},
		{"A -> ae", "A -> ae"},
		{"A -> aε", "A -> aε"},
	}
	for _, tc := range testCases {
		g, err := ParseRule(tc.input)
		if assert.NoError(t, err, tc.input) {
			assert.Equal(t, tc.expect, g.String(), tc.input)
			assert.Len(t, g.Order(), 1)
		}
	}
}

func TestParseRuleSymbols(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "leftrec.rules")
	defer teardown()
	//
	g, err := ParseRule("E -> E+T | e")
	assert.NoError(t, err)
	prods, ok := g.Productions("E")
	assert.True(t, ok)
	assert.Equal(t, grammar.Production{"E", "+", "T"}, prods[0])
	assert.True(t, prods[1].IsEpsilon())
	//
	g, _ = ParseRule("A -> ae")
	prods, _ = g.Productions("A")
	assert.False(t, prods[0][1].IsEpsilon(), "terminal e must not be taken for epsilon")
	//
	g, err = ParseRule("A -> Aε | b")
	assert.NoError(t, err)
	prods, _ = g.Productions("A")
	assert.Equal(t, grammar.Production{"A", "ε"}, prods[0])
	assert.False(t, prods[0][1].IsEpsilon(), "terminal ε must not be taken for epsilon")
	assert.NoError(t, g.Validate())
	assert.NoError(t, elim.Eliminate(g))
	assert.Equal(t, "A -> bB\nB -> εB e", g.String())
}

func TestParseInvalidUTF8Span(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "leftrec.rules")
	defer teardown()
	//
	_, err := ParseRule("A -> a | \xff")
	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
	assert.True(t, errors.Is(err, ErrScanner))
	assert.Equal(t, uint64(9), perr.Span.From())
	assert.Equal(t, uint64(10), perr.Span.To())
}

func TestParseRuleErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "leftrec.rules")
	defer teardown()
	//
	testCases := []struct {
		input string
		cause error
	}{
		{"A", ErrMissingArrow},
		{"A->b", ErrMissingArrow},
		{"A ->b", ErrMissingArrow},
		{"", ErrMissingArrow},
		{"A -> a -> b", ErrMissingArrow},
		{"-> a", ErrInvalidNonTerminal},
		{"a -> b", ErrInvalidNonTerminal},
		{"Ab -> b", ErrInvalidNonTerminal},
		{"A B -> b", ErrInvalidNonTerminal},
		{"| -> b", ErrInvalidNonTerminal},
		{"A ->", ErrNoAlternatives},
		{"A -> | |", ErrNoAlternatives},
		{"A -> \xff\xfe", ErrScanner},
		{"A -> a | b\xe2", ErrScanner},
	}
	for _, tc := range testCases {
		g, err := ParseRule(tc.input)
		assert.Nil(t, g, tc.input)
		assert.True(t, errors.Is(err, tc.cause), "%q: expected %v, got %v", tc.input, tc.cause, err)
		var perr *ParseError
		assert.True(t, errors.As(err, &perr), tc.input)
	}
}

func TestParseErrorSpan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "leftrec.rules")
	defer teardown()
	//
	_, err := ParseRule("ab -> c")
	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, uint64(0), perr.Span.From())
	assert.Equal(t, uint64(2), perr.Span.To())
	assert.Contains(t, err.Error(), `"ab"`)
}

func TestParseRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "leftrec.rules")
	defer teardown()
	//
	g, err := ParseRules([]string{
		"# indirect left recursion",
		"S -> Aa | b",
		"",
		"A -> Ac | Sd",
		"A -> e",
	})
	assert.NoError(t, err)
	assert.Equal(t, []grammar.Symbol{"S", "A"}, g.Order())
	assert.Equal(t, "S -> Aa b\nA -> Ac Sd e", g.String())
	assert.NoError(t, elim.Eliminate(g))
	assert.Equal(t, "S -> Aa b\nA -> bdB B\nB -> cB adB e", g.String())
}

func TestParseRulesErrorLine(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "leftrec.rules")
	defer teardown()
	//
	_, err := ParseRules([]string{"S -> a", "", "s -> b"})
	var perr *ParseError
	assert.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.Line)
	assert.True(t, strings.HasPrefix(err.Error(), "line 3:"))
	//
	_, err = ParseRules([]string{"", "# nothing"})
	assert.True(t, errors.Is(err, ErrNoAlternatives))
}

func TestReadGrammar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "leftrec.rules")
	defer teardown()
	//
	input := "E -> E+T | T\nT -> T*F | F\nF -> (E) | i\n"
	g, err := ReadGrammar(strings.NewReader(input))
	assert.NoError(t, err)
	assert.NoError(t, elim.Eliminate(g))
	assert.Equal(t, strings.Join([]string{
		"E -> TA",
		"T -> FB",
		"F -> (E) i",
		"A -> +TA e",
		"B -> *FB e",
	}, "\n"), g.String())
}
