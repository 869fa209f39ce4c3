/*
File   : tamarin/main/main.go

The interpreter's entry point. Two modes: REPL (default, no
arguments) and file execution (one positional argument). There is no
network server mode — the core has no network interfaces.
*/
package main

import (
	"os"

	"github.com/arvindr/tamarin/environment"
	"github.com/arvindr/tamarin/eval"
	"github.com/arvindr/tamarin/lexer"
	"github.com/arvindr/tamarin/objects"
	"github.com/arvindr/tamarin/parser"
	"github.com/arvindr/tamarin/repl"
	"github.com/fatih/color"
)

var (
	VERSION = "v1.0.0"
	AUTHOR  = "arvindr"
	PROMPT  = "tamarin >>> "
	LINE    = "----------------------------------------------------------------"
	BANNER  = `
 ▄▄▄▄▄▄    ▄▄▄▄▄▄    ▄▄▄▄▄▄     ▄▄▄      ▄▄▄▄▄▄    ▄▄▄  ▄▄▄   ▄▄▄
 ██▀▀▀▀█   ▀▀██▀▀   ▄█▀▀▀▀█    █▀▀▀█     ██▀▀▀▀█   ██▄  ██▄  ██▀
   ██         ██     ██ ▄▄▄   ██   ██    ██▄▄▄▄█   ██ ▀▄ ▀▄ ██
   ██         ██     ██▀▀▀██  ██▄▄▄██    ██▀▀▀▀█   ██  ▀█ █▀██
   ██       ▄▄██▄▄   ▀█▄▄▄▄█  ██   ██    ██   ██   ██   ▀█▀ ██
   ▀▀       ▀▀▀▀▀▀     ▀▀▀▀   ▀▀   ▀▀    ▀▀   ▀▀   ▀▀       ▀▀
`
)

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		default:
			runFile(os.Args[1])
			return
		}
	}

	r := repl.New(BANNER, VERSION, AUTHOR, LINE, PROMPT)
	r.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("Tamarin - a small tree-walking interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  tamarin                 Start interactive REPL mode")
	yellowColor.Println("  tamarin <path-to-file>  Execute a Tamarin source file")
	yellowColor.Println("  tamarin --help          Display this help message")
	yellowColor.Println("  tamarin --version       Display version information")
}

func showVersion() {
	cyanColor.Println("Tamarin - a small tree-walking interpreter")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads source from fileName, parses and evaluates it once
// against a fresh environment, and prints the result or error.
func runFile(fileName string) {
	content, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	executeFileWithRecovery(string(content))
}

func executeFileWithRecovery(source string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	p := parser.New(lexer.New(source))
	nodes := p.Parse()

	if len(p.Errors) > 0 {
		for _, msg := range p.Errors {
			redColor.Fprintf(os.Stderr, "%s\n", msg)
		}
		os.Exit(1)
	}

	result := eval.New().EvalProgram(nodes, environment.New())
	if result == nil {
		return
	}

	if result.Type() == objects.ERROR_OBJ {
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
		os.Exit(1)
	}

	if result.Type() != objects.NULL_OBJ {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.Inspect())
	}
}
