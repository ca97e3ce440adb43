package main

import (
	"strings"

	"github.com/dekarrin/rosed"
	"github.com/npillmayer/leftrec/grammar"
	"github.com/pterm/pterm"
)

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

func banner() {
	pterm.Println(separator)
	pterm.Println("LEFT RECURSION ELIMINATION (interactive mode)")
	pterm.Println(separator)
	pterm.Println()
	pterm.Println("Examples of valid input (one rule per line):")
	pterm.Println("  A -> Aa | b")
	pterm.Println("  S -> Sa | Sb | c | e")
	pterm.Println("  E -> E+T | T")
	pterm.Println()
	pterm.Println("Enter 'q' or 'quit' to leave.")
	pterm.Println()
}

// grammarTree creates a tree with a node for every non-terminal and its
// alternatives as children.
func grammarTree(g *grammar.Grammar, eps string) pterm.TreeNode {
	ll := pterm.LeveledList{}
	for _, A := range g.NonTerminals() {
		ll = append(ll, pterm.LeveledListItem{Level: 0, Text: string(A)})
		prods, _ := g.Productions(A)
		for _, p := range prods {
			ll = append(ll, pterm.LeveledListItem{Level: 1, Text: p.Render(eps)})
		}
	}
	tracer().Debugf("|ll| = %d", len(ll))
	return pterm.NewTreeFromLeveledList(ll)
}

// grammarTable renders g as a text table with one row per non-terminal.
func grammarTable(g *grammar.Grammar, eps string) string {
	data := [][]string{{"Non-Terminal", "Alternatives"}}
	for _, A := range g.NonTerminals() {
		prods, _ := g.Productions(A)
		alts := make([]string, len(prods))
		for i, p := range prods {
			alts[i] = p.Render(eps)
		}
		data = append(data, []string{string(A), strings.Join(alts, " | ")})
	}
	return rosed.Edit("").
		InsertTableOpts(0, data, 80, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}
