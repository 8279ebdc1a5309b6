// Package parser implements the hand-written recursive-descent parser
// for Lox. It consumes the lexer's token sequence and produces a list
// of statements, reporting syntax errors through the shared reporter
// and resynchronizing at statement boundaries so a single source unit
// can surface several errors in one pass.
package parser

import (
	"errors"

	"github.com/golox-lang/golox/lexer"
	"github.com/golox-lang/golox/report"
)

// errParse is the sentinel carried up the recursive descent after a
// syntax error has already been reported. declaration() catches it and
// synchronizes; no error text ever rides on it.
var errParse = errors.New("parse error")

// Parser holds the token stream and the cursor of the recursive
// descent. A fresh Parser is built per source unit.
type Parser struct {
	Tokens   []lexer.Token    // Token sequence, terminated by EOF
	Current  int              // Index of the next token to consume
	Reporter *report.Reporter // Sink for syntax error diagnostics
}

// NewParser creates a parser over tokens. The sequence must be
// terminated by an EOF token, which ConsumeTokens guarantees.
func NewParser(tokens []lexer.Token, reporter *report.Reporter) *Parser {
	return &Parser{
		Tokens:   tokens,
		Current:  0,
		Reporter: reporter,
	}
}

// Parse parses the whole token stream as a program: declaration* EOF.
// Declarations that fail to parse are dropped after reporting and
// synchronizing, so the returned list holds every statement that did
// parse. Callers must check the reporter before executing.
func (p *Parser) Parse() []StatementNode {
	statements := make([]StatementNode, 0)
	for !p.isAtEnd() {
		if stmt := p.declaration(); stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// declaration parses one declaration: funDecl | varDecl | statement.
// This is the error recovery boundary: a parse error anywhere below is
// caught here, the stream is synchronized to the next statement start,
// and parsing continues.
func (p *Parser) declaration() StatementNode {
	var stmt StatementNode
	var err error

	switch {
	case p.match(lexer.FUN):
		stmt, err = p.function("function")
	case p.match(lexer.VAR):
		stmt, err = p.varDeclaration()
	default:
		stmt, err = p.statement()
	}

	if err != nil {
		p.synchronize()
		return nil
	}
	return stmt
}

// synchronize skips tokens until the start of the next statement:
// just past a semicolon, or right before a statement keyword. Each
// declaration is resynchronized independently, which is what lets one
// file report multiple syntax errors.
func (p *Parser) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Type == lexer.SEMICOLON {
			return
		}

		switch p.peek().Type {
		case lexer.CLASS, lexer.FOR, lexer.FUN, lexer.IF,
			lexer.PRINT, lexer.RETURN, lexer.VAR, lexer.WHILE:
			return
		}

		p.advance()
	}
}

// match consumes the next token if it has one of the given types.
func (p *Parser) match(types ...lexer.TokenType) bool {
	for _, tokenType := range types {
		if p.check(tokenType) {
			p.advance()
			return true
		}
	}
	return false
}

// check reports whether the next token has the given type, without
// consuming it.
func (p *Parser) check(tokenType lexer.TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tokenType
}

// advance consumes and returns the next token. At EOF it stays put.
func (p *Parser) advance() lexer.Token {
	if !p.isAtEnd() {
		p.Current++
	}
	return p.previous()
}

// isAtEnd reports whether the cursor sits on the EOF token.
func (p *Parser) isAtEnd() bool {
	return p.peek().Type == lexer.EOF
}

// peek returns the next token without consuming it.
func (p *Parser) peek() lexer.Token {
	return p.Tokens[p.Current]
}

// previous returns the most recently consumed token.
func (p *Parser) previous() lexer.Token {
	return p.Tokens[p.Current-1]
}

// consume advances past a token of the expected type, or reports the
// given message at the offending token and returns the parse sentinel.
func (p *Parser) consume(tokenType lexer.TokenType, message string) (lexer.Token, error) {
	if p.check(tokenType) {
		return p.advance(), nil
	}
	return lexer.Token{}, p.errorAt(p.peek(), message)
}

// errorAt reports a syntax error anchored to tok and returns the parse
// sentinel for the caller to bubble up.
func (p *Parser) errorAt(tok lexer.Token, message string) error {
	p.reportAt(tok, message)
	return errParse
}

// reportAt reports a syntax error anchored to tok without aborting the
// current production. Used for errors the parser can read through,
// like an invalid assignment target or too many arguments.
func (p *Parser) reportAt(tok lexer.Token, message string) {
	if tok.Type == lexer.EOF {
		p.Reporter.Report(tok.Line, " at end", message)
	} else {
		p.Reporter.Report(tok.Line, " at '"+tok.Literal+"'", message)
	}
}
