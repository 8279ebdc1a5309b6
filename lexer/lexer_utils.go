package lexer

import "strings"

// isNumeric checks if the given byte is an ASCII decimal digit.
func isNumeric(curr byte) bool {
	return curr >= '0' && curr <= '9'
}

// isAlpha checks if the given byte is an ASCII letter.
func isAlpha(curr byte) bool {
	return (curr >= 'a' && curr <= 'z') || (curr >= 'A' && curr <= 'Z')
}

// isAlphanumeric checks if the given byte is a letter or digit.
func isAlphanumeric(curr byte) bool {
	return isAlpha(curr) || isNumeric(curr)
}

// readStringLiteral reads and tokenizes a string literal from the
// source. String literals are enclosed in double quotes and may span
// multiple lines; embedded newlines increment the line counter. There
// are no escape sequences.
//
// The returned token's Literal holds the string content without the
// surrounding quotes. If the source ends before the closing quote the
// error "Unterminated string." is reported and ok is false.
func (lex *Lexer) readStringLiteral() (Token, bool) {
	line, column := lex.Line, lex.Column
	lex.Advance() // Consume opening quote

	var builder strings.Builder

	for lex.Current != '"' {
		if lex.Current == 0 {
			lex.Reporter.Error(lex.Line, "Unterminated string.")
			return Token{}, false
		}
		if lex.Current == '\n' {
			lex.Line++
			lex.Column = 0
		}
		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	lex.Advance() // Consume closing quote
	return NewTokenWithMetadata(STRING, builder.String(), line, column), true
}

// readNumber reads and tokenizes a decimal number literal from the
// source: an integer part with an optional fractional part.
//
// A trailing dot is not part of the number ("123." lexes as NUMBER DOT)
// and a leading dot never starts one (".5" lexes as DOT NUMBER). The
// dot is only consumed when a digit follows it.
func (lex *Lexer) readNumber() Token {
	line, column := lex.Line, lex.Column
	start := lex.Position

	for isNumeric(lex.Current) {
		lex.Advance()
	}

	// Fractional part, only if a digit follows the dot
	if lex.Current == '.' && isNumeric(lex.Peek()) {
		lex.Advance()
		for isNumeric(lex.Current) {
			lex.Advance()
		}
	}

	return NewTokenWithMetadata(NUMBER, lex.Src[start:lex.Position], line, column)
}

// readIdentifier reads and tokenizes an identifier or keyword.
// Identifiers start with a letter or underscore and continue with
// letters, digits, or underscores. Reserved words are mapped to their
// keyword token type via lookupIdent.
func (lex *Lexer) readIdentifier() Token {
	line, column := lex.Line, lex.Column
	start := lex.Position

	lex.Advance()
	for isAlphanumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}

	literal := lex.Src[start:lex.Position]
	return NewTokenWithMetadata(lookupIdent(literal), literal, line, column)
}
