package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/leftrec/elim"
	"github.com/npillmayer/leftrec/grammar"
	"github.com/npillmayer/leftrec/rules"
	"github.com/pterm/pterm"
)

const separator = "============================================================"

// Intp is our interpreter object
type Intp struct {
	conf    Config
	repl    *readline.Instance
	last    *grammar.Grammar   // result of the last successful transformation
	results map[string]*result // by hash of the input grammar
}

type result struct {
	g   *grammar.Grammar
	out string
}

func newIntp(conf Config) *Intp {
	return &Intp{
		conf:    conf,
		results: make(map[string]*result),
	}
}

// Transform removes left recursion from g and returns the rendered result.
// Results are remembered per input grammar.
func (intp *Intp) Transform(g *grammar.Grammar) (string, error) {
	hash := g.Hash()
	if r, ok := intp.results[hash]; ok && hash != "" {
		tracer().Debugf("grammar %s already transformed", hash)
		intp.last = r.g
		return r.out, nil
	}
	r, err := elim.EliminateLeftRecursion(g, g.Order(), intp.conf.options()...)
	if err != nil {
		return "", err
	}
	intp.last = r
	out := grammar.Format(r, intp.conf.Epsilon)
	if hash != "" {
		intp.results[hash] = &result{g: r, out: out}
	}
	return out, nil
}

// Run processes a single rule and prints input and output.
func (intp *Intp) Run(line string) error {
	pterm.Println(separator)
	pterm.Println("INPUT: " + line)
	pterm.Println(separator)
	g, err := rules.ParseRule(line)
	if err != nil {
		pterm.Println("OUTPUT:")
		pterm.Error.Println(err.Error())
		pterm.Println(separator)
		return err
	}
	return intp.output(g)
}

// RunGrammar processes a whole grammar and prints the result.
func (intp *Intp) RunGrammar(g *grammar.Grammar) error {
	pterm.Println(separator)
	pterm.Println("INPUT:")
	pterm.Println(grammar.Format(g, intp.conf.Epsilon))
	pterm.Println(separator)
	return intp.output(g)
}

func (intp *Intp) output(g *grammar.Grammar) error {
	out, err := intp.Transform(g)
	pterm.Println("OUTPUT:")
	if err != nil {
		pterm.Error.Println(err.Error())
		pterm.Println(separator)
		return err
	}
	pterm.Println(out)
	pterm.Println(separator)
	if intp.conf.Table {
		pterm.Println(grammarTable(intp.last, intp.conf.Epsilon))
	}
	return nil
}

// Eval evaluates a line of interactive input. It returns true if the
// user asked to quit.
func (intp *Intp) Eval(line string) (bool, error) {
	switch strings.ToLower(line) {
	case "q", "quit", "salir":
		return true, nil
	case ":tree":
		return false, intp.showTree()
	case ":table":
		if intp.last == nil {
			return false, fmt.Errorf("no grammar transformed yet")
		}
		pterm.Println(grammarTable(intp.last, intp.conf.Epsilon))
		return false, nil
	}
	pterm.Println()
	err := intp.Run(line)
	pterm.Println()
	return false, err
}

func (intp *Intp) showTree() error {
	if intp.last == nil {
		return fmt.Errorf("no grammar transformed yet")
	}
	pterm.DefaultTree.WithRoot(grammarTree(intp.last, intp.conf.Epsilon)).Render()
	return nil
}

// loadInitFile evaluates the lines of an init file. It stops at a quit
// command and reports it to the caller.
func (intp *Intp) loadInitFile(filename string) bool {
	if filename == "" {
		return false
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return false
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if line = strings.TrimSpace(line); line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
		if quit {
			tracer().Infof("Quit in init file, line %d", lineno)
			return true
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: " + err.Error())
	}
	return false
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			pterm.Info.Println("No input. Enter a rule, or 'q' to quit.")
			continue
		}
		quit, err := intp.Eval(line)
		if err != nil {
			tracer().Debugf("%v", err)
			continue
		}
		if quit {
			break
		}
	}
	println("Good bye!")
}
