package eval

import (
	"fmt"

	"github.com/golox-lang/golox/function"
	"github.com/golox-lang/golox/lexer"
	"github.com/golox-lang/golox/objects"
	"github.com/golox-lang/golox/parser"
	"github.com/golox-lang/golox/scope"
)

// evalExpression evaluates one expression against the current
// environment. Runtime errors surface as *objects.Error results and
// short-circuit the surrounding evaluation.
func (e *Evaluator) evalExpression(expr parser.ExpressionNode) objects.LoxObject {
	switch node := expr.(type) {
	case *parser.LiteralExpressionNode:
		return node.Value

	case *parser.ParenthesizedExpressionNode:
		return e.evalExpression(node.Expr)

	case *parser.IdentifierExpressionNode:
		return e.lookUpVariable(node.Name, node)

	case *parser.AssignmentExpressionNode:
		return e.evalAssignment(node)

	case *parser.UnaryExpressionNode:
		return e.evalUnary(node)

	case *parser.BinaryExpressionNode:
		return e.evalBinary(node)

	case *parser.LogicalExpressionNode:
		return e.evalLogical(node)

	case *parser.CallExpressionNode:
		return e.evalCall(node)
	}

	return &objects.Nil{}
}

// evalAssignment evaluates the right side, writes it through the
// resolution map (resolved locals by distance, everything else into
// globals), and yields the assigned value: `print a = 3;` prints 3.
// Assignment never creates a binding.
func (e *Evaluator) evalAssignment(node *parser.AssignmentExpressionNode) objects.LoxObject {
	value := e.evalExpression(node.Value)
	if IsError(value) {
		return value
	}

	if distance, ok := e.Locals[node]; ok {
		e.Scp.AssignAt(distance, node.Name.Literal, value)
	} else if !e.Globals.Assign(node.Name.Literal, value) {
		return e.runtimeError(node.Name, "Undefined variable '"+node.Name.Literal+"'.")
	}

	return value
}

// evalUnary evaluates !x (boolean complement of truthiness, any
// operand) and -x (numbers only).
func (e *Evaluator) evalUnary(node *parser.UnaryExpressionNode) objects.LoxObject {
	right := e.evalExpression(node.Right)
	if IsError(right) {
		return right
	}

	switch node.Operation.Type {
	case lexer.BANG:
		return &objects.Boolean{Value: !objects.IsTruthy(right)}
	case lexer.MINUS:
		num, ok := right.(*objects.Number)
		if !ok {
			return e.runtimeError(node.Operation, "Operand must be a number.")
		}
		return &objects.Number{Value: -num.Value}
	}

	return &objects.Nil{}
}

// evalBinary evaluates both operands left-to-right, then dispatches on
// the operator. There is no short-circuiting here; that is what
// LogicalExpressionNode is for.
//
// `+` is overloaded on numbers and strings. The remaining arithmetic
// and ordering operators require numbers. `/` is IEEE division and
// happily produces Inf for a zero divisor. `==` and `!=` never raise
// a type error.
func (e *Evaluator) evalBinary(node *parser.BinaryExpressionNode) objects.LoxObject {
	left := e.evalExpression(node.Left)
	if IsError(left) {
		return left
	}
	right := e.evalExpression(node.Right)
	if IsError(right) {
		return right
	}

	switch node.Operation.Type {
	case lexer.PLUS:
		if l, ok := left.(*objects.Number); ok {
			if r, ok := right.(*objects.Number); ok {
				return &objects.Number{Value: l.Value + r.Value}
			}
		}
		if l, ok := left.(*objects.String); ok {
			if r, ok := right.(*objects.String); ok {
				return &objects.String{Value: l.Value + r.Value}
			}
		}
		return e.runtimeError(node.Operation, "Operands must be two numbers or two strings.")

	case lexer.EQUAL_EQUAL:
		return &objects.Boolean{Value: objects.IsEqual(left, right)}
	case lexer.BANG_EQUAL:
		return &objects.Boolean{Value: !objects.IsEqual(left, right)}
	}

	// Every remaining operator works on numbers only
	l, r, err := e.numberOperands(node.Operation, left, right)
	if err != nil {
		return err
	}

	switch node.Operation.Type {
	case lexer.MINUS:
		return &objects.Number{Value: l - r}
	case lexer.STAR:
		return &objects.Number{Value: l * r}
	case lexer.SLASH:
		return &objects.Number{Value: l / r}
	case lexer.GREATER:
		return &objects.Boolean{Value: l > r}
	case lexer.GREATER_EQUAL:
		return &objects.Boolean{Value: l >= r}
	case lexer.LESS:
		return &objects.Boolean{Value: l < r}
	case lexer.LESS_EQUAL:
		return &objects.Boolean{Value: l <= r}
	}

	return &objects.Nil{}
}

// evalLogical implements short-circuit or/and. The result is the
// untransformed operand value, not a boolean: `nil or "x"` is "x".
func (e *Evaluator) evalLogical(node *parser.LogicalExpressionNode) objects.LoxObject {
	left := e.evalExpression(node.Left)
	if IsError(left) {
		return left
	}

	if node.Operation.Type == lexer.OR {
		if objects.IsTruthy(left) {
			return left
		}
	} else {
		if !objects.IsTruthy(left) {
			return left
		}
	}

	return e.evalExpression(node.Right)
}

// evalCall evaluates the callee, then each argument left-to-right,
// checks callability and arity, and invokes the callable. Call errors
// are anchored to the closing paren token.
func (e *Evaluator) evalCall(node *parser.CallExpressionNode) objects.LoxObject {
	callee := e.evalExpression(node.Callee)
	if IsError(callee) {
		return callee
	}

	arguments := make([]objects.LoxObject, 0, len(node.Arguments))
	for _, argExpr := range node.Arguments {
		arg := e.evalExpression(argExpr)
		if IsError(arg) {
			return arg
		}
		arguments = append(arguments, arg)
	}

	callable, ok := callee.(function.Callable)
	if !ok {
		return e.runtimeError(node.Paren, "Can only call functions and classes.")
	}

	if len(arguments) != callable.Arity() {
		return e.runtimeError(node.Paren,
			fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(arguments)))
	}

	switch fn := callable.(type) {
	case *function.Function:
		return e.callFunction(fn, arguments)
	case *function.Builtin:
		return fn.Fn(arguments)
	}

	return e.runtimeError(node.Paren, "Can only call functions and classes.")
}

// callFunction invokes a user function: a fresh frame enclosed by the
// captured closure, parameters bound to arguments in declaration order,
// and the body run as a block. A surfacing return signal becomes the
// call's result; falling off the end yields nil. The caller's
// environment is restored by execBlock regardless of how the body
// exits.
func (e *Evaluator) callFunction(fn *function.Function, arguments []objects.LoxObject) objects.LoxObject {
	frame := scope.NewScope(fn.Closure)
	for i, param := range fn.Params {
		frame.Define(param.Literal, arguments[i])
	}

	result := e.execBlock(fn.Body, frame)
	if IsError(result) {
		return result
	}
	if result == nil {
		return &objects.Nil{}
	}
	return UnwrapReturnValue(result)
}

// numberOperands coerces both operands to float64 or produces the
// "Operands must be numbers." runtime error tagged with the operator.
func (e *Evaluator) numberOperands(operator lexer.Token, left, right objects.LoxObject) (float64, float64, *objects.Error) {
	l, lok := left.(*objects.Number)
	r, rok := right.(*objects.Number)
	if !lok || !rok {
		return 0, 0, e.runtimeError(operator, "Operands must be numbers.")
	}
	return l.Value, r.Value, nil
}
