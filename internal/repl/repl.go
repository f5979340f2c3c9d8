/*
File    : gomix-script/internal/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the interpreter: an
interactive environment where users can enter gomix-script code line by
line, see immediate results, navigate command history, and receive
colored feedback for errors versus normal output.
*/
package repl

import (
	"io"
	"strings"

	"github.com/akashmaji946/gomix-script/internal/host"
	"github.com/akashmaji946/gomix-script/internal/interp"
	"github.com/akashmaji946/gomix-script/internal/lexer"
	"github.com/akashmaji946/gomix-script/internal/parser"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
	// Stdlib is the native-function allowlist passed through to
	// host.RegisterStdlib; empty means every native is registered.
	Stdlib []string
}

// New builds a Repl with the given banner, version, author, separator
// line, license, prompt and native-function allowlist.
func New(banner, version, author, line, license, prompt string, stdlib []string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt, Stdlib: stdlib}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Welcome to gomix-script!")
	cyanColor.Fprintf(w, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(w, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the interactive loop until the user exits or input ends. It
// keeps a single Evaluator alive across lines, so variables and functions
// declared on one line are visible on the next — this is the interactive
// analogue of a single script's top-level scope.
func (r *Repl) Start(writer io.Writer) error {
	r.printBanner(writer)

	rl, err := readline.NewEx(&readline.Config{Prompt: r.Prompt, Stdout: writer})
	if err != nil {
		return err
	}
	defer rl.Close()

	ev := interp.New(make(map[int]*parser.FnDeclNode))
	ev.Writer = writer
	host.RegisterStdlib(ev, r.Stdlib...)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			return nil
		}
		rl.SaveHistory(line)

		r.evalLine(writer, line, ev)
	}
}

// evalLine tokenizes, parses and evaluates one line of input, folding its
// freshly assigned function ids into the running evaluator's function
// table so later lines can still call functions declared earlier.
func (r *Repl) evalLine(writer io.Writer, line string, ev *interp.Evaluator) {
	toks, err := lexer.Tokenize(line)
	if err != nil {
		redColor.Fprintf(writer, "%v\n", err)
		return
	}
	root, fns, err := parser.Parse(toks)
	if err != nil {
		redColor.Fprintf(writer, "%v\n", err)
		return
	}
	ev.Absorb(fns)
	if err := ev.Run(root); err != nil {
		redColor.Fprintf(writer, "%v\n", err)
	}
}
