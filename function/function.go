// Package function defines the callable runtime values of Lox: user
// functions declared with `fun`, and native builtins implemented in Go.
// Both satisfy the Callable interface; the evaluator dispatches on the
// concrete type to run them.
package function

import (
	"github.com/golox-lang/golox/lexer"
	"github.com/golox-lang/golox/objects"
	"github.com/golox-lang/golox/parser"
	"github.com/golox-lang/golox/scope"
)

// Callable is the interface of every value a call expression can
// invoke. Arity is the number of declared parameters and is checked
// against the argument count before every call.
type Callable interface {
	objects.LoxObject
	Arity() int
}

// Function represents a user-defined function value.
// It holds the function's declaration pieces and the scope in force at
// the moment the declaration was executed (its closure).
//
// Fields:
//   - Name: The name the function was declared with, used for the
//     "<fn NAME>" string form.
//   - Params: Parameter name tokens, bound to argument values in
//     declaration order when the function is called.
//   - Body: The function body statements, executed as a block whose
//     base frame is enclosed by the closure.
//   - Closure: A pointer to the captured scope. This is a shared
//     reference, never a copy: sibling functions declared in the same
//     scope see each other's mutations of captured variables, and a
//     captured frame outlives the block that created it.
type Function struct {
	Name    string                 // Name of the function
	Params  []lexer.Token          // Function parameter tokens
	Body    []parser.StatementNode // Function body (statements to execute)
	Closure *scope.Scope           // Captured defining scope
}

// Arity returns the number of declared parameters.
func (f *Function) Arity() int {
	return len(f.Params)
}

// GetType returns the callable type identifier.
func (f *Function) GetType() objects.LoxType {
	return objects.FunctionType
}

// ToString returns the print form of a user function: "<fn NAME>".
func (f *Function) ToString() string {
	return "<fn " + f.Name + ">"
}

// Builtin represents a native function implemented in Go and
// pre-populated into the globals frame.
type Builtin struct {
	Name    string                                       // Name bound in globals
	NumArgs int                                          // Fixed arity
	Fn      func(args []objects.LoxObject) objects.LoxObject // Native implementation
}

// Arity returns the builtin's fixed arity.
func (b *Builtin) Arity() int {
	return b.NumArgs
}

// GetType returns the callable type identifier.
func (b *Builtin) GetType() objects.LoxType {
	return objects.FunctionType
}

// ToString returns the print form of a native function.
func (b *Builtin) ToString() string {
	return "<native fn>"
}
