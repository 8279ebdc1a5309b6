// Package repl implements the interactive line loop for the golox
// interpreter. The REPL provides an environment where users can:
//   - Enter Lox code line by line
//   - See results of their code immediately
//   - Navigate command history using arrow keys
//   - Receive colored feedback for errors
//
// The REPL uses the readline library for line editing and history and
// drives the lox host package for execution. One interpreter session
// lives for the whole loop, so globals persist between lines. The
// syntax-error flag is cleared between prompts (one bad line must not
// poison the next); the runtime-error flag is kept, and runtime errors
// never kill the loop.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/golox-lang/golox/lox"
)

// Color pens for REPL output:
// - blueColor: separators
// - greenColor: banner
// - cyanColor: informational messages and instructions
var (
	blueColor  = color.New(color.FgBlue)
	greenColor = color.New(color.FgGreen)
	cyanColor  = color.New(color.FgCyan)
)

// Repl represents one interactive session configuration.
type Repl struct {
	Banner  string // Banner displayed at startup
	Version string // Version string of the interpreter
	Line    string // Separator line for visual formatting
	Prompt  string // Command prompt shown to the user
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner string, version string, line string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "golox %s\n", r.Version)
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' or press Ctrl+D to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop:
//  1. Displays the welcome banner
//  2. Sets up readline for line editing and history
//  3. Creates one interpreter session for the whole loop
//  4. Reads, runs, and repeats until '.exit' or EOF
func (r *Repl) Start(writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	session := lox.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or interrupt (Ctrl+D / Ctrl+C)
			writer.Write([]byte("Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Bye!\n"))
			break
		}

		rl.SaveHistory(line)

		session.Run(line)

		// A bad line must not poison the next prompt; runtime errors
		// keep their flag but never kill the loop.
		session.Reporter.ResetSyntax()
	}
}
