/*
File    : numexpr/repl/repl.go
Author  : Rohan Verma
Contact : rverma(@protonmail.com)

Package repl implements an interactive Read-Eval-Print Loop over the
expression engine: enter an expression, see its value immediately,
navigate history with the arrow keys, and get colored feedback for
results versus errors.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/rverma/numexpr"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const banner = `
 _ __  _   _ _ __ ___   _____  ___ __  _ __
| '_ \| | | | '_ \ _ \ / _ \ \/ / '_ \| '__|
| | | | |_| | | | | | |  __/>  <| |_) | |
|_| |_|\__,_|_| |_| |_|\___/_/\_\ .__/|_|
                                 |_|`

const line = "----------------------------------------------------------------"

// Repl is one interactive session bound to a fixed symbol table. A
// caller builds the table ahead of time (scalars, arrays, closures) and
// the REPL compiles and evaluates every line against it.
type Repl struct {
	Prompt  string
	Version string
	Symbols []numexpr.Symbol
}

// New creates a Repl bound to symbols, ready to Start.
func New(prompt, version string, symbols []numexpr.Symbol) *Repl {
	if prompt == "" {
		prompt = "numexpr> "
	}
	return &Repl{Prompt: prompt, Version: version, Symbols: symbols}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintf(w, "numexpr %s\n", r.Version)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "Type an expression and press enter.")
	cyanColor.Fprintln(w, "Type '.exit' to quit, '.builtins' to list built-in functions.")
	blueColor.Fprintf(w, "%s\n", line)
}

// Start runs the loop until EOF or '.exit'. Reader is unused (readline
// owns stdin directly) but kept for symmetry with file-execution-mode
// entry points that do take an explicit reader.
func (r *Repl) Start(_ io.Reader, w io.Writer) {
	r.printBanner(w)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		redColor.Fprintf(w, "readline: %v\n", err)
		return
	}
	defer rl.Close()

	for {
		input, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(w, "Good bye!")
			return
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		if input == ".exit" {
			fmt.Fprintln(w, "Good bye!")
			return
		}
		if input == ".builtins" {
			r.printBuiltins(w)
			continue
		}
		rl.SaveHistory(input)
		r.evalLine(w, input)
	}
}

func (r *Repl) evalLine(w io.Writer, line string) {
	tree, pos := numexpr.Compile(line, r.Symbols)
	if pos != 0 {
		redColor.Fprintf(w, "error at %s: %s\n", numexpr.ErrPosition(line, pos), line)
		return
	}
	defer numexpr.Free(tree)
	yellowColor.Fprintf(w, "%v\n", numexpr.Evaluate(tree))
}

func (r *Repl) printBuiltins(w io.Writer) {
	for _, b := range numexpr.Builtins() {
		cyanColor.Fprintf(w, "%s/%d\n", b.Name, b.Arity)
	}
}
