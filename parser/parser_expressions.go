package parser

import (
	"strconv"

	"github.com/golox-lang/golox/lexer"
	"github.com/golox-lang/golox/objects"
)

// expression parses the lowest-precedence production: assignment.
func (p *Parser) expression() (ExpressionNode, error) {
	return p.assignment()
}

// assignment parses: IDENT "=" assignment | logic_or
//
// The target is parsed as an ordinary expression first; only when an
// '=' follows is it required to be a plain variable. A bad target
// ("Invalid assignment target.") is reported without aborting, and the
// already-parsed left side is returned so parsing reads on.
func (p *Parser) assignment() (ExpressionNode, error) {
	expr, err := p.logicOr()
	if err != nil {
		return nil, err
	}

	if p.match(lexer.EQUAL) {
		equals := p.previous()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}

		if ident, ok := expr.(*IdentifierExpressionNode); ok {
			return &AssignmentExpressionNode{Name: ident.Name, Value: value}, nil
		}

		p.reportAt(equals, "Invalid assignment target.")
	}

	return expr, nil
}

// logicOr parses: logic_and ( "or" logic_and )*
func (p *Parser) logicOr() (ExpressionNode, error) {
	expr, err := p.logicAnd()
	if err != nil {
		return nil, err
	}

	for p.match(lexer.OR) {
		operator := p.previous()
		right, err := p.logicAnd()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpressionNode{Left: expr, Operation: operator, Right: right}
	}

	return expr, nil
}

// logicAnd parses: equality ( "and" equality )*
func (p *Parser) logicAnd() (ExpressionNode, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}

	for p.match(lexer.AND) {
		operator := p.previous()
		right, err := p.equality()
		if err != nil {
			return nil, err
		}
		expr = &LogicalExpressionNode{Left: expr, Operation: operator, Right: right}
	}

	return expr, nil
}

// equality parses: comparison ( ( "!=" | "==" ) comparison )*
func (p *Parser) equality() (ExpressionNode, error) {
	expr, err := p.comparison()
	if err != nil {
		return nil, err
	}

	for p.match(lexer.BANG_EQUAL, lexer.EQUAL_EQUAL) {
		operator := p.previous()
		right, err := p.comparison()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpressionNode{Left: expr, Operation: operator, Right: right}
	}

	return expr, nil
}

// comparison parses: term ( ( ">" | ">=" | "<" | "<=" ) term )*
func (p *Parser) comparison() (ExpressionNode, error) {
	expr, err := p.term()
	if err != nil {
		return nil, err
	}

	for p.match(lexer.GREATER, lexer.GREATER_EQUAL, lexer.LESS, lexer.LESS_EQUAL) {
		operator := p.previous()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpressionNode{Left: expr, Operation: operator, Right: right}
	}

	return expr, nil
}

// term parses: factor ( ( "-" | "+" ) factor )*
func (p *Parser) term() (ExpressionNode, error) {
	expr, err := p.factor()
	if err != nil {
		return nil, err
	}

	for p.match(lexer.MINUS, lexer.PLUS) {
		operator := p.previous()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpressionNode{Left: expr, Operation: operator, Right: right}
	}

	return expr, nil
}

// factor parses: unary ( ( "/" | "*" ) unary )*
func (p *Parser) factor() (ExpressionNode, error) {
	expr, err := p.unary()
	if err != nil {
		return nil, err
	}

	for p.match(lexer.SLASH, lexer.STAR) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		expr = &BinaryExpressionNode{Left: expr, Operation: operator, Right: right}
	}

	return expr, nil
}

// unary parses: ( "!" | "-" ) unary | call
func (p *Parser) unary() (ExpressionNode, error) {
	if p.match(lexer.BANG, lexer.MINUS) {
		operator := p.previous()
		right, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &UnaryExpressionNode{Operation: operator, Right: right}, nil
	}

	return p.call()
}

// call parses: primary ( "(" arguments? ")" )*
// The loop handles curried calls like f(1)(2).
func (p *Parser) call() (ExpressionNode, error) {
	expr, err := p.primary()
	if err != nil {
		return nil, err
	}

	for p.match(lexer.LEFT_PAREN) {
		expr, err = p.finishCall(expr)
		if err != nil {
			return nil, err
		}
	}

	return expr, nil
}

// finishCall parses the argument list of a call, the opening paren
// having been consumed, and wraps callee in a CallExpressionNode.
func (p *Parser) finishCall(callee ExpressionNode) (ExpressionNode, error) {
	arguments := make([]ExpressionNode, 0)

	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(arguments) >= 255 {
				// Report but keep parsing; the call is still usable
				p.reportAt(p.peek(), "Can't have more than 255 arguments.")
			}
			arg, err := p.expression()
			if err != nil {
				return nil, err
			}
			arguments = append(arguments, arg)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}

	paren, err := p.consume(lexer.RIGHT_PAREN, "Expected ')' after arguments.")
	if err != nil {
		return nil, err
	}

	return &CallExpressionNode{Callee: callee, Paren: paren, Arguments: arguments}, nil
}

// primary parses the highest-precedence production:
// "true" | "false" | "nil" | NUMBER | STRING | IDENT | "(" expression ")"
func (p *Parser) primary() (ExpressionNode, error) {
	switch {
	case p.match(lexer.FALSE):
		return &LiteralExpressionNode{Token: p.previous(), Value: &objects.Boolean{Value: false}}, nil
	case p.match(lexer.TRUE):
		return &LiteralExpressionNode{Token: p.previous(), Value: &objects.Boolean{Value: true}}, nil
	case p.match(lexer.NIL):
		return &LiteralExpressionNode{Token: p.previous(), Value: &objects.Nil{}}, nil
	case p.match(lexer.NUMBER):
		tok := p.previous()
		// The lexer only emits well-formed decimal lexemes
		value, _ := strconv.ParseFloat(tok.Literal, 64)
		return &LiteralExpressionNode{Token: tok, Value: &objects.Number{Value: value}}, nil
	case p.match(lexer.STRING):
		tok := p.previous()
		return &LiteralExpressionNode{Token: tok, Value: &objects.String{Value: tok.Literal}}, nil
	case p.match(lexer.IDENTIFIER):
		return &IdentifierExpressionNode{Name: p.previous()}, nil
	case p.match(lexer.LEFT_PAREN):
		expr, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RIGHT_PAREN, "Expected ')' after expression."); err != nil {
			return nil, err
		}
		return &ParenthesizedExpressionNode{Expr: expr}, nil
	}

	return nil, p.errorAt(p.peek(), "Expected expression.")
}
