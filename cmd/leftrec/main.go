package main

import (
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/leftrec/rules"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Exit codes
const (
	exitOK = iota
	exitUsage
	exitInput
	exitInit
)

// main() either transforms a single rule given as arguments, a grammar
// file given with -file, or starts an interactive CLI, where users may
// enter rules one per line.
func main() {
	// set up logging
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	gramf := flag.String("file", "", "Grammar file, transformed as a whole")
	conff := flag.String("config", "", "Configuration file (TOML)")
	table := flag.Bool("table", false, "Display results as a table, too")
	flag.Parse()
	setTraceLevel(tracing.LevelInfo) // will set the correct level later
	//
	conf, err := loadConfig(*conff, defaultConfig())
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(exitUsage)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "trace":
			conf.Trace = *tlevel
		case "table":
			conf.Table = *table
		}
	})
	setTraceLevel(traceLevel(conf.Trace))
	tracer().Infof("Trace level is %s", conf.Trace)
	intp := newIntp(conf)
	//
	if *gramf != "" {
		os.Exit(runFile(intp, *gramf))
	}
	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if err := intp.Run(input); err != nil {
			os.Exit(exitInput)
		}
		os.Exit(exitOK)
	}
	//
	// set up REPL
	repl, err := readline.New(conf.Prompt)
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(exitInit)
	}
	defer repl.Close()
	intp.repl = repl
	banner()
	tracer().Infof("Quit with <ctrl>D") // inform user how to stop the CLI
	if intp.loadInitFile(*initf) { // init file name provided by flag
		return
	}
	intp.REPL() // go into interactive mode
}

func runFile(intp *Intp, filename string) int {
	f, err := os.Open(filename)
	if err != nil {
		pterm.Error.Println(err.Error())
		return exitUsage
	}
	defer f.Close()
	g, err := rules.ReadGrammar(f)
	if err != nil {
		pterm.Error.Println(err.Error())
		return exitInput
	}
	if err := intp.RunGrammar(g); err != nil {
		return exitInput
	}
	return exitOK
}

func setTraceLevel(level tracing.TraceLevel) {
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}
