// golox is a tree-walking interpreter for the Lox scripting language.
// It provides two modes of operation:
//  1. REPL mode (default): interactive line loop for live coding
//  2. File mode: execute a Lox script from the command line
//
// The interpreter uses a lexer-parser-resolver-evaluator pipeline.
package main

import (
	"os"

	"github.com/fatih/color"

	"github.com/golox-lang/golox/lox"
	"github.com/golox-lang/golox/repl"
)

// VERSION represents the current version of the golox interpreter
var VERSION = "v1.0.0"

// PROMPT is the command prompt displayed in REPL mode
var PROMPT = "golox> "

// BANNER is shown when starting the REPL
var BANNER = `        golox -- the Lox interpreter`

// LINE is a separator line used for visual formatting in the REPL
var LINE = "------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main dispatches on the command line:
//
//	golox              - start the interactive REPL
//	golox <script>     - execute a Lox script, then exit with
//	                     1 if it cannot be read, 65 on syntax/static
//	                     errors, 70 on runtime errors, 0 otherwise
//	golox --help       - display help information
//	golox --version    - display version information
//
// Anything else is a usage error and exits with 64.
func main() {
	if len(os.Args) > 2 {
		redColor.Fprintln(os.Stderr, "Usage: golox [script]")
		os.Exit(lox.ExitUsage)
	}

	if len(os.Args) == 2 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}
		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		os.Exit(lox.New().RunFile(arg))
	}

	repler := repl.NewRepl(BANNER, VERSION, LINE, PROMPT)
	repler.Start(os.Stdout)
}

// showHelp displays the help information for the golox interpreter
func showHelp() {
	cyanColor.Println("golox - a Lox interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  golox                     Start interactive REPL mode")
	yellowColor.Println("  golox <path-to-file>      Execute a Lox script (.lox)")
	yellowColor.Println("  golox --help              Display this help message")
	yellowColor.Println("  golox --version           Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	yellowColor.Println("  .exit                     Exit the REPL")
}

// showVersion displays the version information for the golox interpreter
func showVersion() {
	cyanColor.Println("golox - a Lox interpreter")
	cyanColor.Printf("Version: %s\n", VERSION)
}
