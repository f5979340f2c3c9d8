/*
File    : gomix-script/cmd/gomix/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the gomix-script interpreter. It
provides two modes of operation:
 1. REPL mode (default): an interactive read-eval-print loop.
 2. File mode: execute a gomix-script source file given as a positional
    argument.

The interpreter uses a lexer -> parser -> interpreter pipeline to process
gomix-script source (spec.md §2).
*/
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/gomix-script/internal/config"
	"github.com/akashmaji946/gomix-script/internal/gomixerr"
	"github.com/akashmaji946/gomix-script/internal/host"
	"github.com/akashmaji946/gomix-script/internal/interp"
	"github.com/akashmaji946/gomix-script/internal/lexer"
	"github.com/akashmaji946/gomix-script/internal/parser"
	"github.com/akashmaji946/gomix-script/internal/repl"
	"github.com/fatih/color"
	"github.com/spf13/pflag"
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "print version information and exit")
	flagHelp    = pflag.BoolP("help", "h", false, "print usage information and exit")
	flagConfig  = pflag.StringP("config", "c", "", "path to a gomix-script.yaml settings file")
)

var redColor = color.New(color.FgRed)

func main() {
	pflag.Parse()

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		redColor.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	if *flagVersion {
		fmt.Printf("gomix-script %s\n", cfg.Repl.Version)
		return
	}
	if *flagHelp {
		printUsage()
		return
	}

	args := pflag.Args()
	if len(args) == 0 {
		r := repl.New(cfg.Repl.Banner, cfg.Repl.Version, cfg.Repl.Author, strLine(), cfg.Repl.License, cfg.Repl.Prompt, cfg.Stdlib)
		if err := r.Start(os.Stdout); err != nil {
			redColor.Fprintf(os.Stderr, "repl error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// File mode: with no argument the REPL above runs instead; a present
	// argument is executed, and any failure is reported with its source
	// location before a non-zero exit.
	if err := runFile(args[0], cfg.Stdlib); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

func runFile(path string, stdlib []string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	toks, err := lexer.Tokenize(string(src))
	if err != nil {
		return err
	}
	root, fns, err := parser.Parse(toks)
	if err != nil {
		return err
	}
	ev := interp.New(fns)
	host.RegisterStdlib(ev, stdlib...)
	return ev.Run(root)
}

// reportError prints the location and message for any of the three error
// taxonomies lexer/parser/interpreter can raise (spec.md §7). A non-gomix
// error (e.g. file-not-found) just prints its message.
func reportError(err error) {
	var gerr *gomixerr.Error
	if as, ok := err.(*gomixerr.Error); ok {
		gerr = as
		redColor.Fprintf(os.Stderr, "%s: %s\n", gerr.Loc, gerr.Message)
		return
	}
	redColor.Fprintf(os.Stderr, "%v\n", err)
}

func strLine() string {
	return "----------------------------------------------------------------"
}

func printUsage() {
	fmt.Println("gomix-script - an embeddable scripting language")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  gomix                  start the interactive REPL")
	fmt.Println("  gomix <path>           run a gomix-script source file")
	fmt.Println("  gomix --config <path>  load REPL/stdlib settings from a YAML file")
	fmt.Println("  gomix --version        print version information")
}
