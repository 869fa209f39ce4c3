/*
File   : tamarin/repl/repl.go
Package: repl

The interactive read-eval-print loop: readline for line editing and
history, fatih/color for feedback coloring, one session Environment
that persists across every line until the user exits.
*/
package repl

import (
	"io"
	"strings"

	"github.com/arvindr/tamarin/environment"
	"github.com/arvindr/tamarin/eval"
	"github.com/arvindr/tamarin/lexer"
	"github.com/arvindr/tamarin/objects"
	"github.com/arvindr/tamarin/parser"
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

// Repl bundles the cosmetic configuration for an interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// New returns a Repl with the given banner configuration.
func New(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main loop. Unlike a one-shot file evaluation, the
// session Environment and the evaluator both outlive any single
// input: a later line can call a function defined by an earlier one.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := environment.New()
	evaluator := eval.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.evalWithRecovery(writer, line, evaluator, env)
	}
}

// evalWithRecovery parses and evaluates one chunk. A parse error or a
// panic is reported and the prompt returns; it never tears down the
// session environment, so the next line can keep using prior bindings.
func (r *Repl) evalWithRecovery(writer io.Writer, line string, evaluator *eval.Evaluator, env *environment.Environment) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	p := parser.New(lexer.New(line))
	nodes := p.Parse()

	if len(p.Errors) > 0 {
		for _, msg := range p.Errors {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	result := evaluator.EvalProgram(nodes, env)
	if result == nil || result.Type() == objects.NULL_OBJ {
		return
	}

	if result.Type() == objects.ERROR_OBJ {
		redColor.Fprintf(writer, "%s\n", result.Inspect())
		return
	}

	yellowColor.Fprintf(writer, "%s\n", result.Inspect())
}
