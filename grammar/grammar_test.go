package grammar

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func prod(s string) Production {
	p := Production{}
	for _, r := range s {
		p = append(p, Symbol(string(r)))
	}
	return p
}

func TestNonTerminalNames(t *testing.T) {
	for _, name := range []string{"A", "Z", "B1", "C42"} {
		assert.True(t, IsNonTerminalName(name), name)
	}
	for _, name := range []string{"", "a", "1", "AB", "A1b", "ε", "+"} {
		assert.False(t, IsNonTerminalName(name), name)
	}
	for _, name := range []string{"A", "EXPR", "A1", "A'"} {
		assert.True(t, IsValidLHS(name), name)
	}
	for _, name := range []string{"", "a", "Ab", "1", "A B", "'"} {
		assert.False(t, IsValidLHS(name), name)
	}
}

func TestProduction(t *testing.T) {
	p := prod("Aab")
	assert.True(t, p.StartsWith("A"))
	assert.False(t, p.StartsWith("a"))
	assert.Equal(t, prod("ab"), p.Rest())
	assert.Equal(t, Production{}, prod("A").Rest())
	q := p.Concat("B")
	assert.Equal(t, "AabB", q.String())
	assert.Equal(t, "Aab", p.String(), "Concat must not modify the receiver")
	assert.True(t, EpsilonProduction().IsEpsilon())
	assert.False(t, prod("e").IsEpsilon())
	assert.Equal(t, "e", EpsilonProduction().Render("e"))
	assert.Equal(t, "ε", EpsilonProduction().String())
	assert.False(t, Symbol("ε").IsEpsilon())
	assert.Equal(t, "aε", Production{"a", "ε"}.String())
}

func TestSymbolSet(t *testing.T) {
	S := NewSymbolSet("C", "A", "B1")
	S.Add("A")
	assert.Equal(t, 3, S.Size())
	assert.Equal(t, []Symbol{"A", "B1", "C"}, S.Values())
	assert.True(t, S.Contains("B1"))
	assert.False(t, S.Contains("B"))
	c := S.Copy().Add("D")
	assert.False(t, S.Contains("D"))
	assert.True(t, c.Contains("D"))
	var empty *SymbolSet
	assert.False(t, empty.Contains("A"))
	assert.Equal(t, "{ A, B1, C }", S.String())
}

func TestGrammarOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "leftrec.grammar")
	defer teardown()
	//
	g := New()
	g.Add("S", prod("Sa"), prod("b"))
	g.Add("A", prod("a"))
	g.Set("C", []Production{prod("c")})
	g.Set("B", []Production{prod("b")})
	g.Add("S", EpsilonProduction())
	assert.Equal(t, []Symbol{"S", "A"}, g.Order())
	assert.Equal(t, []Symbol{"B", "C"}, g.Generated())
	assert.Equal(t, []Symbol{"S", "A", "B", "C"}, g.NonTerminals())
	prods, ok := g.Productions("S")
	assert.True(t, ok)
	assert.Len(t, prods, 3)
	assert.Equal(t, "S -> Sa b e\nA -> a\nB -> b\nC -> c", g.String())
	assert.Equal(t, "S -> Sa b ε", FormatRule(g, "S", "ε"))
	assert.Equal(t, "", FormatRule(g, "X", "e"))
}

func TestZeroGrammar(t *testing.T) {
	var g Grammar
	assert.Equal(t, 0, g.Len())
	assert.False(t, g.Has("A"))
	assert.Empty(t, g.NonTerminals())
	g.Add("A", prod("Aa"), prod("b"))
	assert.Equal(t, []Symbol{"A"}, g.Order())
	var h Grammar
	h.Set("B", []Production{prod("b")})
	assert.True(t, h.Has("B"))
	assert.Empty(t, h.Order())
	assert.Equal(t, []Symbol{"B"}, h.Generated())
}

func TestUsedSymbols(t *testing.T) {
	g := New()
	g.Add("A", prod("BaC"), prod("D1"), prod("x"))
	used := g.UsedSymbols()
	// "D1" is split into D and 1 by prod(), so D is the non-terminal here
	assert.Equal(t, []Symbol{"A", "B", "C", "D"}, used.Values())
	g.Add("E", Production{"F2", "a"})
	assert.True(t, g.UsedSymbols().Contains("F2"))
}

func TestCloneIsDeep(t *testing.T) {
	g := New()
	g.Add("A", prod("Aa"), prod("b"))
	h := g.Clone()
	prods, _ := h.Productions("A")
	prods[0][1] = "x"
	h.Set("B", []Production{prod("b")})
	assert.Equal(t, "A -> Aa b", g.String())
	assert.Equal(t, "A -> Ax b\nB -> b", h.String())
	assert.Equal(t, g.Order(), h.Order())
}

func TestHash(t *testing.T) {
	g := New()
	g.Add("A", prod("Aa"), prod("b"))
	h := g.Clone()
	assert.NotEmpty(t, g.Hash())
	assert.Equal(t, g.Hash(), h.Hash())
	h.Set("A", []Production{prod("b"), prod("Aa")})
	assert.NotEqual(t, g.Hash(), h.Hash())
}

func TestValidate(t *testing.T) {
	g := New()
	g.Add("A", prod("a"))
	assert.NoError(t, g.Validate())
	g.Add("B")
	assert.True(t, errors.Is(g.Validate(), ErrNoProductions))
	g = New().Add("A", Production{})
	assert.True(t, errors.Is(g.Validate(), ErrEmptyProduction))
	g = New().Add("A", Production{"a", Epsilon})
	assert.True(t, errors.Is(g.Validate(), ErrEmbeddedEpsilon))
	g = New().Add("a", prod("a"))
	assert.True(t, errors.Is(g.Validate(), ErrInvalidLHS))
}

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "leftrec.grammar")
	defer teardown()
	//
	b := NewBuilder()
	b.LHS("E").N("E").T("+").N("T").End()
	b.LHS("E").N("T").End()
	b.LHS("T").T("a").End()
	b.LHS("T").Epsilon()
	g, err := b.Grammar()
	assert.NoError(t, err)
	assert.Equal(t, "E -> E+T T\nT -> a e", g.String())
	//
	b = NewBuilder()
	b.LHS("x").T("a").End()
	b.LHS("A").End()
	_, err = b.Grammar()
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidLHS))
}
