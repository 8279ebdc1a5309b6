// Package resolver implements the static resolution pass that runs
// between parsing and interpretation. It walks the AST once and
// computes, for every local variable use and assignment, the exact
// number of enclosing frames between the use site and the frame that
// owns the binding. The interpreter then looks locals up by that
// distance instead of by name search, which is what makes closures
// capture by compile-time binding rather than by whatever happens to
// shadow the name at call time.
//
// Globals are deliberately left unresolved: they stay late-bound and
// may be redeclared, which the resolver's scope stack never models.
package resolver

import (
	"github.com/golox-lang/golox/lexer"
	"github.com/golox-lang/golox/parser"
	"github.com/golox-lang/golox/report"
)

// FunctionType classifies the function context the resolver is
// currently inside. Only None and Function exist today; the enum is the
// hook for methods and initializers later.
type FunctionType int

const (
	// FunctionNone means top-level code, where return is illegal
	FunctionNone FunctionType = iota
	// FunctionFunction means the body of a user function
	FunctionFunction
)

// Binder receives the computed scope distances. The evaluator
// implements it; keying happens on node identity, so every distinct
// use site gets its own entry.
type Binder interface {
	Resolve(expr parser.ExpressionNode, depth int)
}

// Resolver walks statements and expressions, tracking a stack of
// lexical scopes. Each scope maps a name to whether its initializer
// has finished (declared=false, defined=true); the split is what
// catches `var a = a;` inside a local scope.
type Resolver struct {
	Binder   Binder           // Receives node -> depth annotations
	Reporter *report.Reporter // Sink for static error diagnostics
	scopes   []map[string]bool
	current  FunctionType
}

// NewResolver creates a resolver feeding annotations to binder and
// diagnostics to reporter.
func NewResolver(binder Binder, reporter *report.Reporter) *Resolver {
	return &Resolver{
		Binder:   binder,
		Reporter: reporter,
		scopes:   make([]map[string]bool, 0),
		current:  FunctionNone,
	}
}

// ResolveStatements resolves a whole program or function body.
// Errors are reported and resolution continues, so one pass surfaces
// every static error in the source unit.
func (r *Resolver) ResolveStatements(statements []parser.StatementNode) {
	for _, stmt := range statements {
		r.resolveStatement(stmt)
	}
}

// resolveStatement dispatches on the statement variant.
func (r *Resolver) resolveStatement(stmt parser.StatementNode) {
	switch s := stmt.(type) {
	case *parser.BlockStatementNode:
		r.beginScope()
		r.ResolveStatements(s.Statements)
		r.endScope()
	case *parser.VarStatementNode:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpression(s.Initializer)
		}
		r.define(s.Name)
	case *parser.FunctionStatementNode:
		// Declare-then-define eagerly so the function can recurse
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, FunctionFunction)
	case *parser.ExpressionStatementNode:
		r.resolveExpression(s.Expr)
	case *parser.PrintStatementNode:
		r.resolveExpression(s.Expr)
	case *parser.IfStatementNode:
		r.resolveExpression(s.Condition)
		r.resolveStatement(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStatement(s.ElseBranch)
		}
	case *parser.WhileStatementNode:
		r.resolveExpression(s.Condition)
		r.resolveStatement(s.Body)
	case *parser.ReturnStatementNode:
		if r.current == FunctionNone {
			r.errorAt(s.Keyword, "Can't return from top-level code.")
		}
		if s.Expr != nil {
			r.resolveExpression(s.Expr)
		}
	}
}

// resolveExpression dispatches on the expression variant.
// Literals contribute nothing.
func (r *Resolver) resolveExpression(expr parser.ExpressionNode) {
	switch e := expr.(type) {
	case *parser.IdentifierExpressionNode:
		if len(r.scopes) > 0 {
			if defined, declared := r.scopes[len(r.scopes)-1][e.Name.Literal]; declared && !defined {
				r.errorAt(e.Name, "Can't read local variable in its own initializer.")
			}
		}
		r.resolveLocal(e, e.Name)
	case *parser.AssignmentExpressionNode:
		r.resolveExpression(e.Value)
		r.resolveLocal(e, e.Name)
	case *parser.BinaryExpressionNode:
		r.resolveExpression(e.Left)
		r.resolveExpression(e.Right)
	case *parser.LogicalExpressionNode:
		r.resolveExpression(e.Left)
		r.resolveExpression(e.Right)
	case *parser.UnaryExpressionNode:
		r.resolveExpression(e.Right)
	case *parser.ParenthesizedExpressionNode:
		r.resolveExpression(e.Expr)
	case *parser.CallExpressionNode:
		r.resolveExpression(e.Callee)
		for _, arg := range e.Arguments {
			r.resolveExpression(arg)
		}
	}
}

// resolveFunction resolves a function body inside a fresh scope that
// declares-and-defines each parameter, with the function context set
// for the duration so nested returns are legal.
func (r *Resolver) resolveFunction(fn *parser.FunctionStatementNode, functionType FunctionType) {
	enclosing := r.current
	r.current = functionType

	r.beginScope()
	for _, param := range fn.Params {
		r.declare(param)
		r.define(param)
	}
	r.ResolveStatements(fn.Body)
	r.endScope()

	r.current = enclosing
}

// beginScope pushes a fresh lexical scope.
func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

// endScope pops the innermost lexical scope.
func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// declare records name in the innermost scope as not-yet-defined.
// Declaring the same name twice in one local scope is a static error;
// globals (no open scope) may be redeclared freely.
func (r *Resolver) declare(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}

	scope := r.scopes[len(r.scopes)-1]
	if _, exists := scope[name.Literal]; exists {
		r.errorAt(name, "Already a variable with this name in this scope.")
	}
	scope[name.Literal] = false
}

// define flips name in the innermost scope to fully defined.
func (r *Resolver) define(name lexer.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Literal] = true
}

// resolveLocal searches the scope stack innermost-outward for name.
// On the first hit it records the 0-based distance for the node; on no
// hit the node is left unresolved and the interpreter treats it as a
// global reference.
func (r *Resolver) resolveLocal(expr parser.ExpressionNode, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Literal]; ok {
			r.Binder.Resolve(expr, len(r.scopes)-1-i)
			return
		}
	}
}

// errorAt reports a static error anchored to tok. Resolution continues.
func (r *Resolver) errorAt(tok lexer.Token, message string) {
	if tok.Type == lexer.EOF {
		r.Reporter.Report(tok.Line, " at end", message)
	} else {
		r.Reporter.Report(tok.Line, " at '"+tok.Literal+"'", message)
	}
}
