package eval

import (
	"fmt"

	"github.com/golox-lang/golox/function"
	"github.com/golox-lang/golox/objects"
	"github.com/golox-lang/golox/parser"
	"github.com/golox-lang/golox/scope"
)

// execStatement executes one statement against the current environment.
// The return value is the control signal, if any: nil for normal
// completion, a *objects.ReturnValue unwinding to the nearest call, or
// a *objects.Error unwinding the whole run. Everything except the
// user-function call machinery passes a non-nil result straight up.
func (e *Evaluator) execStatement(stmt parser.StatementNode) objects.LoxObject {
	switch s := stmt.(type) {
	case *parser.ExpressionStatementNode:
		value := e.evalExpression(s.Expr)
		if IsError(value) {
			return value
		}
		return nil

	case *parser.PrintStatementNode:
		value := e.evalExpression(s.Expr)
		if IsError(value) {
			return value
		}
		fmt.Fprintf(e.Writer, "%s\n", value.ToString())
		return nil

	case *parser.VarStatementNode:
		var value objects.LoxObject = &objects.Nil{}
		if s.Initializer != nil {
			value = e.evalExpression(s.Initializer)
			if IsError(value) {
				return value
			}
		}
		e.Scp.Define(s.Name.Literal, value)
		return nil

	case *parser.BlockStatementNode:
		return e.execBlock(s.Statements, scope.NewScope(e.Scp))

	case *parser.IfStatementNode:
		condition := e.evalExpression(s.Condition)
		if IsError(condition) {
			return condition
		}
		if objects.IsTruthy(condition) {
			return e.execStatement(s.ThenBranch)
		}
		if s.ElseBranch != nil {
			return e.execStatement(s.ElseBranch)
		}
		return nil

	case *parser.WhileStatementNode:
		for {
			condition := e.evalExpression(s.Condition)
			if IsError(condition) {
				return condition
			}
			if !objects.IsTruthy(condition) {
				return nil
			}
			if result := e.execStatement(s.Body); result != nil {
				return result
			}
		}

	case *parser.FunctionStatementNode:
		// Capture the environment in force right now, by reference
		fn := &function.Function{
			Name:    s.Name.Literal,
			Params:  s.Params,
			Body:    s.Body,
			Closure: e.Scp,
		}
		e.Scp.Define(s.Name.Literal, fn)
		return nil

	case *parser.ReturnStatementNode:
		var value objects.LoxObject = &objects.Nil{}
		if s.Expr != nil {
			value = e.evalExpression(s.Expr)
			if IsError(value) {
				return value
			}
		}
		return &objects.ReturnValue{Value: value}
	}

	return nil
}

// execBlock executes statements under the given frame, restoring the
// previous environment on every exit path: normal completion, a return
// signal unwinding, or a runtime error unwinding.
func (e *Evaluator) execBlock(statements []parser.StatementNode, frame *scope.Scope) objects.LoxObject {
	previous := e.Scp
	e.Scp = frame

	var result objects.LoxObject
	for _, stmt := range statements {
		if result = e.execStatement(stmt); result != nil {
			break
		}
	}

	e.Scp = previous
	return result
}
