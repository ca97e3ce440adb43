package grammar

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// SymbolSet is a sorted set of symbols. The zero value is not usable,
// create one with NewSymbolSet.
type SymbolSet struct {
	set *treeset.Set
}

// We need this for the tree set. It sorts symbols lexicographically.
func symbolComparator(s1, s2 interface{}) int {
	return utils.StringComparator(string(s1.(Symbol)), string(s2.(Symbol)))
}

// NewSymbolSet creates a set, optionally containing an initial
// set of symbols.
func NewSymbolSet(syms ...Symbol) *SymbolSet {
	S := &SymbolSet{set: treeset.NewWith(symbolComparator)}
	S.Add(syms...)
	return S
}

// Add inserts symbols into the set. Returns the set (for chaining).
func (S *SymbolSet) Add(syms ...Symbol) *SymbolSet {
	for _, sym := range syms {
		S.set.Add(sym)
	}
	return S
}

// Contains checks for membership of a symbol.
func (S *SymbolSet) Contains(sym Symbol) bool {
	if S == nil || S.set == nil {
		return false
	}
	return S.set.Contains(sym)
}

// Size returns the number of symbols in the set.
func (S *SymbolSet) Size() int {
	if S == nil || S.set == nil {
		return 0
	}
	return S.set.Size()
}

// Values returns the symbols of the set in lexicographic order.
func (S *SymbolSet) Values() []Symbol {
	if S == nil || S.set == nil {
		return nil
	}
	syms := make([]Symbol, 0, S.set.Size())
	it := S.set.Iterator()
	for it.Next() {
		syms = append(syms, it.Value().(Symbol))
	}
	return syms
}

// Copy returns a shallow copy of the set.
func (S *SymbolSet) Copy() *SymbolSet {
	return NewSymbolSet(S.Values()...)
}

func (S *SymbolSet) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, sym := range S.Values() {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(" ")
		b.WriteString(string(sym))
	}
	b.WriteString(" }")
	return b.String()
}
