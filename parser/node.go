package parser

import (
	"github.com/golox-lang/golox/lexer"
	"github.com/golox-lang/golox/objects"
)

// The AST is two parallel sum types: expressions and statements. Each
// variant is a pointer-typed struct implementing the marker interfaces
// below, and downstream passes (resolver, evaluator) dispatch with type
// switches. Node pointers double as identity: the resolver keys its
// depth annotations on the ExpressionNode pointer, so two textually
// identical sub-expressions parsed independently never collide.

// Node is the base interface for all nodes of the AST.
// Literal() returns a source-like string form used for debugging and
// parser tests.
type Node interface {
	Literal() string
}

// StatementNode is the base interface for all statement nodes.
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode is the base interface for all expression nodes.
type ExpressionNode interface {
	Node
	Expression()
}

// LiteralExpressionNode represents a literal value in the source:
// a number, a string, true, false, or nil. The runtime value is built
// once at parse time and returned as-is during evaluation.
type LiteralExpressionNode struct {
	Token lexer.Token       // The literal token (synthetic for desugared literals)
	Value objects.LoxObject // The runtime value of the literal
}

// Literal(): string representation of the node
func (node *LiteralExpressionNode) Literal() string {
	if node.Token.Type == lexer.STRING {
		return "\"" + node.Token.Literal + "\""
	}
	return node.Token.Literal
}

// Expression(): marks the node as an expression
func (node *LiteralExpressionNode) Expression() {}

// IdentifierExpressionNode represents a variable reference.
// Example: x, counter, makeAdder
type IdentifierExpressionNode struct {
	Name lexer.Token // The identifier token being referenced
}

// Literal(): string representation of the node
func (node *IdentifierExpressionNode) Literal() string {
	return node.Name.Literal
}

// Expression(): marks the node as an expression
func (node *IdentifierExpressionNode) Expression() {}

// AssignmentExpressionNode represents a variable assignment expression.
// Assignment is an expression: its value is the assigned value.
// Example: x = 10, count = count + 1
type AssignmentExpressionNode struct {
	Name  lexer.Token    // The variable being assigned to
	Value ExpressionNode // The expression being assigned
}

// Literal(): string representation of the node
func (node *AssignmentExpressionNode) Literal() string {
	return node.Name.Literal + " = " + node.Value.Literal()
}

// Expression(): marks the node as an expression
func (node *AssignmentExpressionNode) Expression() {}

// UnaryExpressionNode represents a unary operation with one operand.
// Example: -x, !flag
type UnaryExpressionNode struct {
	Operation lexer.Token    // The unary operator token (- or !)
	Right     ExpressionNode // The operand expression
}

// Literal(): string representation of the node
func (node *UnaryExpressionNode) Literal() string {
	return "(" + node.Operation.Literal + node.Right.Literal() + ")"
}

// Expression(): marks the node as an expression
func (node *UnaryExpressionNode) Expression() {}

// BinaryExpressionNode represents a binary operation with two operands.
// Both operands are evaluated before the operator is applied.
// Example: 2 + 3, a <= b
type BinaryExpressionNode struct {
	Left      ExpressionNode // Left operand expression
	Operation lexer.Token    // The binary operator token
	Right     ExpressionNode // Right operand expression
}

// Literal(): string representation of the node
func (node *BinaryExpressionNode) Literal() string {
	return "(" + node.Left.Literal() + " " + node.Operation.Literal + " " + node.Right.Literal() + ")"
}

// Expression(): marks the node as an expression
func (node *BinaryExpressionNode) Expression() {}

// LogicalExpressionNode represents a short-circuit logical operation.
// Unlike BinaryExpressionNode the right operand may never be evaluated,
// and the result is one of the operand values, not a boolean.
// Example: a or b, ready and go()
type LogicalExpressionNode struct {
	Left      ExpressionNode // Left operand expression
	Operation lexer.Token    // The logical operator token (or / and)
	Right     ExpressionNode // Right operand expression
}

// Literal(): string representation of the node
func (node *LogicalExpressionNode) Literal() string {
	return "(" + node.Left.Literal() + " " + node.Operation.Literal + " " + node.Right.Literal() + ")"
}

// Expression(): marks the node as an expression
func (node *LogicalExpressionNode) Expression() {}

// ParenthesizedExpressionNode represents an expression wrapped in
// parentheses for precedence control.
// Example: (2 + 3) * 4
type ParenthesizedExpressionNode struct {
	Expr ExpressionNode // The inner expression
}

// Literal(): string representation of the node
func (node *ParenthesizedExpressionNode) Literal() string {
	return "(group " + node.Expr.Literal() + ")"
}

// Expression(): marks the node as an expression
func (node *ParenthesizedExpressionNode) Expression() {}

// CallExpressionNode represents a function call expression.
// The Paren token (the closing parenthesis) anchors runtime call errors
// to a source line.
// Example: clock(), makeAdder(1)(2)
type CallExpressionNode struct {
	Callee    ExpressionNode   // The expression producing the callee
	Paren     lexer.Token      // The closing ')' token
	Arguments []ExpressionNode // Argument expressions, in order
}

// Literal(): string representation of the node
func (node *CallExpressionNode) Literal() string {
	args := ""
	for i, arg := range node.Arguments {
		if i > 0 {
			args += ", "
		}
		args += arg.Literal()
	}
	return node.Callee.Literal() + "(" + args + ")"
}

// Expression(): marks the node as an expression
func (node *CallExpressionNode) Expression() {}

// ExpressionStatementNode represents an expression evaluated for its
// side effects, with the result discarded.
// Example: counter(); x = 3;
type ExpressionStatementNode struct {
	Expr ExpressionNode // The expression to evaluate
}

// Literal(): string representation of the node
func (node *ExpressionStatementNode) Literal() string {
	return node.Expr.Literal() + ";"
}

// Statement(): marks the node as a statement
func (node *ExpressionStatementNode) Statement() {}

// PrintStatementNode represents a print statement, emitting exactly one
// line to stdout.
// Example: print "hello";
type PrintStatementNode struct {
	Expr ExpressionNode // The expression whose value is printed
}

// Literal(): string representation of the node
func (node *PrintStatementNode) Literal() string {
	return "print " + node.Expr.Literal() + ";"
}

// Statement(): marks the node as a statement
func (node *PrintStatementNode) Statement() {}

// VarStatementNode represents a variable declaration, with an optional
// initializer. A declaration without initializer binds nil.
// Example: var x = 10; var y;
type VarStatementNode struct {
	Name        lexer.Token    // The variable name token
	Initializer ExpressionNode // The initializer, or nil when absent
}

// Literal(): string representation of the node
func (node *VarStatementNode) Literal() string {
	if node.Initializer == nil {
		return "var " + node.Name.Literal + ";"
	}
	return "var " + node.Name.Literal + " = " + node.Initializer.Literal() + ";"
}

// Statement(): marks the node as a statement
func (node *VarStatementNode) Statement() {}

// BlockStatementNode represents a brace-delimited block of statements
// executed in a fresh child environment.
// Example: { var a = 1; print a; }
type BlockStatementNode struct {
	Statements []StatementNode // The statements in the block, in order
}

// Literal(): string representation of the node
func (node *BlockStatementNode) Literal() string {
	str := "{"
	for _, stmt := range node.Statements {
		str += stmt.Literal()
	}
	str += "}"
	return str
}

// Statement(): marks the node as a statement
func (node *BlockStatementNode) Statement() {}

// IfStatementNode represents an if statement with an optional else
// branch. A dangling else binds to the nearest unmatched if.
// Example: if (x > 0) print x; else print -x;
type IfStatementNode struct {
	Condition  ExpressionNode // The condition expression
	ThenBranch StatementNode  // Statement executed when the condition is truthy
	ElseBranch StatementNode  // Statement executed otherwise, or nil
}

// Literal(): string representation of the node
func (node *IfStatementNode) Literal() string {
	res := "if (" + node.Condition.Literal() + ") " + node.ThenBranch.Literal()
	if node.ElseBranch != nil {
		res += " else " + node.ElseBranch.Literal()
	}
	return res
}

// Statement(): marks the node as a statement
func (node *IfStatementNode) Statement() {}

// WhileStatementNode represents a while loop. for loops desugar to this
// at parse time.
// Example: while (i < 10) i = i + 1;
type WhileStatementNode struct {
	Condition ExpressionNode // The loop condition
	Body      StatementNode  // The loop body
}

// Literal(): string representation of the node
func (node *WhileStatementNode) Literal() string {
	return "while (" + node.Condition.Literal() + ") " + node.Body.Literal()
}

// Statement(): marks the node as a statement
func (node *WhileStatementNode) Statement() {}

// FunctionStatementNode represents a named function declaration.
// Executing it builds a function value capturing the environment in
// force at that moment and binds it to the name.
// Example: fun add(a, b) { return a + b; }
type FunctionStatementNode struct {
	Name   lexer.Token     // The function name token
	Params []lexer.Token   // Parameter name tokens, in declaration order
	Body   []StatementNode // The function body statements
}

// Literal(): string representation of the node
func (node *FunctionStatementNode) Literal() string {
	params := ""
	for i, param := range node.Params {
		if i > 0 {
			params += ", "
		}
		params += param.Literal
	}
	res := "fun " + node.Name.Literal + "(" + params + ") {"
	for _, stmt := range node.Body {
		res += stmt.Literal()
	}
	return res + "}"
}

// Statement(): marks the node as a statement
func (node *FunctionStatementNode) Statement() {}

// ReturnStatementNode represents a return statement, with an optional
// value expression. Return propagates non-locally to the nearest
// enclosing user-function call.
// Example: return n * 2; return;
type ReturnStatementNode struct {
	Keyword lexer.Token    // The 'return' keyword token
	Expr    ExpressionNode // The value expression, or nil for a bare return
}

// Literal(): string representation of the node
func (node *ReturnStatementNode) Literal() string {
	if node.Expr == nil {
		return "return;"
	}
	return "return " + node.Expr.Literal() + ";"
}

// Statement(): marks the node as a statement
func (node *ReturnStatementNode) Statement() {}
