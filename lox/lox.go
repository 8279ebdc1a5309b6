// Package lox is the host driver tying the pipeline together: it feeds
// source text through lexer, parser, resolver, and evaluator, owns the
// shared reporter, and maps the reporter's flags to process exit codes.
// The REPL and the command-line entry point both drive this package.
package lox

import (
	"os"

	"github.com/fatih/color"

	"github.com/golox-lang/golox/eval"
	"github.com/golox-lang/golox/lexer"
	"github.com/golox-lang/golox/parser"
	"github.com/golox-lang/golox/report"
	"github.com/golox-lang/golox/resolver"
)

// Exit codes for file mode, following the sysexits convention the
// original interpreter uses.
const (
	ExitOK           = 0  // Clean run
	ExitUsage        = 64 // Bad command line (owned by main)
	ExitSyntaxError  = 65 // Any lexical, syntax, or static error
	ExitRuntimeError = 70 // Any runtime error
)

var redColor = color.New(color.FgRed)

// Lox owns one interpreter session: a reporter accumulating the error
// flags and an evaluator whose globals persist across Run calls. The
// REPL relies on that persistence so variables survive between lines.
type Lox struct {
	Reporter  *report.Reporter
	Evaluator *eval.Evaluator
}

// New creates a session writing program output to stdout and
// diagnostics to stderr.
func New() *Lox {
	return &Lox{
		Reporter:  report.NewReporter(),
		Evaluator: eval.NewEvaluator(),
	}
}

// Run feeds one source unit through the full pipeline.
//
// The lexer always runs to completion so every bad character is
// reported. The resolver only runs on a clean parse, and the evaluator
// only runs when no error of any kind has been reported for this
// source unit. Runtime errors are reported here; callers read the
// reporter's flags afterwards.
func (l *Lox) Run(source string) {
	lex := lexer.NewLexer(source, l.Reporter)
	tokens := lex.ConsumeTokens()

	p := parser.NewParser(tokens, l.Reporter)
	statements := p.Parse()

	if l.Reporter.HadError {
		return
	}

	res := resolver.NewResolver(l.Evaluator, l.Reporter)
	res.ResolveStatements(statements)

	if l.Reporter.HadError {
		return
	}

	if runtimeErr := l.Evaluator.Interpret(statements); runtimeErr != nil {
		l.Reporter.RuntimeError(runtimeErr.Line, runtimeErr.Message)
	}
}

// RunFile reads and runs a script once and returns the exit code the
// process should finish with: 1 if the file cannot be read, 65 for
// syntax/static errors, 70 for runtime errors, 0 otherwise.
func (l *Lox) RunFile(path string) int {
	content, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		return 1
	}

	l.Run(string(content))

	switch {
	case l.Reporter.HadError:
		return ExitSyntaxError
	case l.Reporter.HadRuntimeError:
		return ExitRuntimeError
	default:
		return ExitOK
	}
}
