// Package report implements the diagnostic sink shared by the lexer,
// parser, resolver, and interpreter. It owns the two host-visible error
// flags and formats every diagnostic the interpreter can produce.
//
// Three diagnostic shapes exist:
//   - lexical errors:          [line L] Error : MSG
//   - syntax/static errors:    [line L] Error  at 'LEXEME': MSG
//     (or " at end" when the offending token is EOF)
//   - runtime errors:          MSG
//     [line L]
//
// The reporter never exits the process; callers inspect HadError and
// HadRuntimeError to decide exit codes.
package report

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// redColor is the pen used for every diagnostic line.
var redColor = color.New(color.FgRed)

// Reporter collects error state for one source unit and writes
// formatted diagnostics to Out.
type Reporter struct {
	Out             io.Writer // Diagnostic destination (default: os.Stderr)
	HadError        bool      // Set by any lexical, syntax, or static error
	HadRuntimeError bool      // Set by any runtime error
}

// NewReporter creates a Reporter writing to os.Stderr.
func NewReporter() *Reporter {
	return &Reporter{Out: os.Stderr}
}

// SetWriter redirects diagnostics to w. Used by tests to capture output.
func (r *Reporter) SetWriter(w io.Writer) {
	r.Out = w
}

// Error reports a lexical error that has no token context, only a line.
func (r *Reporter) Error(line int, message string) {
	r.Report(line, "", message)
}

// Report writes a syntax or static diagnostic and raises the error flag.
// The where fragment carries its own leading space (" at 'x'", " at end")
// or is empty for lexical errors.
func (r *Reporter) Report(line int, where string, message string) {
	r.HadError = true
	redColor.Fprintf(r.Out, "[line %d] Error %s: %s\n", line, where, message)
}

// RuntimeError writes a runtime diagnostic: the message on its own line
// followed by the line tag. Raises the runtime error flag.
func (r *Reporter) RuntimeError(line int, message string) {
	r.HadRuntimeError = true
	redColor.Fprintf(r.Out, "%s\n[line %d]\n", message, line)
}

// ResetSyntax clears the syntax/static error flag. The REPL calls this
// between prompts so one bad line does not poison the next; the runtime
// flag is deliberately left alone.
func (r *Reporter) ResetSyntax() {
	r.HadError = false
}
