// Package eval implements the tree-walking evaluator for Lox. The
// Evaluator executes parsed statements against a chain of scope frames,
// owns the globals frame and the resolution map produced by the
// resolver, and realizes non-local return and runtime errors as tagged
// signal objects bubbled through evaluation results.
package eval

import (
	"io"
	"os"

	"github.com/golox-lang/golox/lexer"
	"github.com/golox-lang/golox/objects"
	"github.com/golox-lang/golox/parser"
	"github.com/golox-lang/golox/scope"
)

// Evaluator holds the state for executing Lox AST nodes: the globals
// frame, the current environment pointer, the resolution map, and the
// output writer print statements emit to.
//
// The resolution map is keyed on AST node identity (pointer), written
// once by the resolver and read-only during execution. A node with no
// entry is a global reference.
type Evaluator struct {
	Globals *scope.Scope                  // The outermost frame, owns the natives
	Scp     *scope.Scope                  // Current environment (initially == Globals)
	Locals  map[parser.ExpressionNode]int // Resolution map: use site -> scope distance
	Writer  io.Writer                     // Destination for print output (default: os.Stdout)
}

// NewEvaluator creates an evaluator with a fresh globals frame
// pre-populated with the native functions (clock).
func NewEvaluator() *Evaluator {
	globals := scope.NewScope(nil)
	ev := &Evaluator{
		Globals: globals,
		Scp:     globals,
		Locals:  make(map[parser.ExpressionNode]int),
		Writer:  os.Stdout,
	}
	for _, builtin := range Builtins() {
		globals.Define(builtin.Name, builtin)
	}
	return ev
}

// SetWriter redirects print output to w. Tests use this to capture
// program output in a buffer.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Writer = w
}

// Resolve records the scope distance for a variable-use or assignment
// node. Called by the resolver; implements its Binder interface.
func (e *Evaluator) Resolve(expr parser.ExpressionNode, depth int) {
	e.Locals[expr] = depth
}

// Interpret executes statements in order against the current
// environment. The first runtime error aborts the run and is returned
// for the host to report; nil means the program unit completed.
func (e *Evaluator) Interpret(statements []parser.StatementNode) *objects.Error {
	for _, stmt := range statements {
		result := e.execStatement(stmt)
		if err, ok := result.(*objects.Error); ok {
			return err
		}
	}
	return nil
}

// lookUpVariable reads a variable through the resolution map: resolved
// nodes go straight to the owning frame by distance, unresolved nodes
// fall back to the late-bound globals frame.
func (e *Evaluator) lookUpVariable(name lexer.Token, expr parser.ExpressionNode) objects.LoxObject {
	if distance, ok := e.Locals[expr]; ok {
		return e.Scp.GetAt(distance, name.Literal)
	}
	if value, ok := e.Globals.Get(name.Literal); ok {
		return value
	}
	return e.runtimeError(name, "Undefined variable '"+name.Literal+"'.")
}

// runtimeError builds a runtime error signal tagged with the line of
// the token that triggered it.
func (e *Evaluator) runtimeError(tok lexer.Token, message string) *objects.Error {
	return &objects.Error{Message: message, Line: tok.Line}
}
