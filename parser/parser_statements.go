package parser

import (
	"github.com/golox-lang/golox/lexer"
	"github.com/golox-lang/golox/objects"
)

// statement parses one statement:
// exprStmt | forStmt | ifStmt | printStmt | returnStmt | whileStmt | block
func (p *Parser) statement() (StatementNode, error) {
	switch {
	case p.match(lexer.FOR):
		return p.forStatement()
	case p.match(lexer.IF):
		return p.ifStatement()
	case p.match(lexer.PRINT):
		return p.printStatement()
	case p.match(lexer.RETURN):
		return p.returnStatement()
	case p.match(lexer.WHILE):
		return p.whileStatement()
	case p.match(lexer.LEFT_BRACE):
		statements, err := p.block()
		if err != nil {
			return nil, err
		}
		return &BlockStatementNode{Statements: statements}, nil
	default:
		return p.expressionStatement()
	}
}

// varDeclaration parses the rest of a var declaration, the `var`
// keyword having been consumed: IDENT ( "=" expression )? ";"
func (p *Parser) varDeclaration() (StatementNode, error) {
	name, err := p.consume(lexer.IDENTIFIER, "Expected variable name.")
	if err != nil {
		return nil, err
	}

	var initializer ExpressionNode
	if p.match(lexer.EQUAL) {
		initializer, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.SEMICOLON, "Expected ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &VarStatementNode{Name: name, Initializer: initializer}, nil
}

// function parses the rest of a function declaration, the `fun` keyword
// having been consumed. kind is "function"; it is threaded through the
// messages so the production can serve methods later.
func (p *Parser) function(kind string) (StatementNode, error) {
	name, err := p.consume(lexer.IDENTIFIER, "Expected "+kind+" name.")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.LEFT_PAREN, "Expected '(' after "+kind+" name."); err != nil {
		return nil, err
	}

	params := make([]lexer.Token, 0)
	if !p.check(lexer.RIGHT_PAREN) {
		for {
			if len(params) >= 255 {
				// Report but keep parsing; the declaration is still usable
				p.reportAt(p.peek(), "Can't have more than 255 parameters.")
			}
			param, err := p.consume(lexer.IDENTIFIER, "Expected parameter name.")
			if err != nil {
				return nil, err
			}
			params = append(params, param)
			if !p.match(lexer.COMMA) {
				break
			}
		}
	}

	if _, err := p.consume(lexer.RIGHT_PAREN, "Expected ')' after parameters."); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.LEFT_BRACE, "Expected '{' before "+kind+" body."); err != nil {
		return nil, err
	}

	body, err := p.block()
	if err != nil {
		return nil, err
	}
	return &FunctionStatementNode{Name: name, Params: params, Body: body}, nil
}

// block parses the statements of a brace-delimited block, the opening
// brace having been consumed.
func (p *Parser) block() ([]StatementNode, error) {
	statements := make([]StatementNode, 0)

	for !p.check(lexer.RIGHT_BRACE) && !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}

	if _, err := p.consume(lexer.RIGHT_BRACE, "Expected '}' after block."); err != nil {
		return nil, err
	}
	return statements, nil
}

// printStatement parses: expression ";"
func (p *Parser) printStatement() (StatementNode, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expected ';' after value."); err != nil {
		return nil, err
	}
	return &PrintStatementNode{Expr: value}, nil
}

// returnStatement parses: expression? ";"
func (p *Parser) returnStatement() (StatementNode, error) {
	keyword := p.previous()

	var value ExpressionNode
	var err error
	if !p.check(lexer.SEMICOLON) {
		value, err = p.expression()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.SEMICOLON, "Expected ';' after return value."); err != nil {
		return nil, err
	}
	return &ReturnStatementNode{Keyword: keyword, Expr: value}, nil
}

// ifStatement parses: "(" expression ")" statement ( "else" statement )?
// The else binds to the nearest unmatched if, which recursive descent
// gives for free.
func (p *Parser) ifStatement() (StatementNode, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expected '(' after 'if'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expected ')' after if condition."); err != nil {
		return nil, err
	}

	thenBranch, err := p.statement()
	if err != nil {
		return nil, err
	}

	var elseBranch StatementNode
	if p.match(lexer.ELSE) {
		elseBranch, err = p.statement()
		if err != nil {
			return nil, err
		}
	}

	return &IfStatementNode{Condition: condition, ThenBranch: thenBranch, ElseBranch: elseBranch}, nil
}

// whileStatement parses: "(" expression ")" statement
func (p *Parser) whileStatement() (StatementNode, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expected '(' after 'while'."); err != nil {
		return nil, err
	}
	condition, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expected ')' after condition."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}
	return &WhileStatementNode{Condition: condition, Body: body}, nil
}

// forStatement parses a C-style for loop and desugars it at parse time
// into while + block:
//
//	for (init; cond; inc) body  ==  { init; while (cond) { body; inc; } }
//
// A missing condition becomes a true literal, so `for (;;)` loops
// forever. The desugared tree is indistinguishable from hand-written
// while to every later pass.
func (p *Parser) forStatement() (StatementNode, error) {
	if _, err := p.consume(lexer.LEFT_PAREN, "Expected '(' after 'for'."); err != nil {
		return nil, err
	}

	var initializer StatementNode
	var err error
	switch {
	case p.match(lexer.SEMICOLON):
		initializer = nil
	case p.match(lexer.VAR):
		initializer, err = p.varDeclaration()
	default:
		initializer, err = p.expressionStatement()
	}
	if err != nil {
		return nil, err
	}

	var condition ExpressionNode
	if !p.check(lexer.SEMICOLON) {
		condition, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expected ';' after loop condition."); err != nil {
		return nil, err
	}

	var increment ExpressionNode
	if !p.check(lexer.RIGHT_PAREN) {
		increment, err = p.expression()
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.RIGHT_PAREN, "Expected ')' after for clauses."); err != nil {
		return nil, err
	}

	body, err := p.statement()
	if err != nil {
		return nil, err
	}

	if increment != nil {
		body = &BlockStatementNode{Statements: []StatementNode{
			body,
			&ExpressionStatementNode{Expr: increment},
		}}
	}

	if condition == nil {
		condition = &LiteralExpressionNode{
			Token: lexer.Token{Type: lexer.TRUE, Literal: "true", Line: p.previous().Line},
			Value: &objects.Boolean{Value: true},
		}
	}
	var loop StatementNode = &WhileStatementNode{Condition: condition, Body: body}

	if initializer != nil {
		loop = &BlockStatementNode{Statements: []StatementNode{initializer, loop}}
	}

	return loop, nil
}

// expressionStatement parses: expression ";"
func (p *Parser) expressionStatement() (StatementNode, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.SEMICOLON, "Expected ';' after expression."); err != nil {
		return nil, err
	}
	return &ExpressionStatementNode{Expr: expr}, nil
}
