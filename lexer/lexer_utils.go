/*
File    : minilang/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"strings"
	"unicode"
)

func isWhitespace(curr byte) bool {
	return unicode.IsSpace(rune(curr))
}

func isAlphanumeric(curr byte) bool {
	return unicode.IsLetter(rune(curr)) || unicode.IsDigit(rune(curr))
}

func isNumeric(curr byte) bool {
	return curr >= '0' && curr <= '9'
}

func isAlpha(curr byte) bool {
	return unicode.IsLetter(rune(curr))
}

// readStringLiteral reads a string literal delimited by quote (either '"'
// or '\''), processing the escape sequences \n \t \r \\ and \<quote>. Any
// other \x is preserved literally as the two characters \x, matching the
// original interpreter's lenient escape handling.
func (lex *Lexer) readStringLiteral(quote byte) (Token, error) {
	startLine, startCol := lex.Line, lex.Column
	lex.Advance() // consume opening quote

	var builder strings.Builder
	for lex.Current != quote {
		if lex.Current == 0 || lex.Current == '\n' {
			return Token{}, newLexError(startLine, startCol, "string literal not terminated")
		}
		if lex.Current == '\\' {
			lex.Advance()
			if escaped, ok := escapeChar(lex.Current, quote); ok {
				builder.WriteByte(escaped)
			} else {
				builder.WriteByte('\\')
				builder.WriteByte(lex.Current)
			}
			lex.Advance()
			continue
		}
		builder.WriteByte(lex.Current)
		lex.Advance()
	}
	lex.Advance() // consume closing quote
	return NewTokenWithMetadata(STRING_LIT, builder.String(), startLine, startCol), nil
}

func escapeChar(c byte, quote byte) (byte, bool) {
	switch c {
	case 'n':
		return '\n', true
	case 't':
		return '\t', true
	case 'r':
		return '\r', true
	case '\\':
		return '\\', true
	default:
		if c == quote {
			return c, true
		}
		return 0, false
	}
}

// readNumber reads an integer or floating-point literal: one or more
// digits, optionally followed by a single '.' and at least one more digit.
// Unlike the teacher's lexer, there is no hex, octal, or exponent support —
// MiniLang's number grammar is decimal-only.
func (lex *Lexer) readNumber() (Token, error) {
	startLine, startCol := lex.Line, lex.Column
	start := lex.Position
	src := lex.Src
	n := lex.SrcLength

	i := start
	for i < n && isDigitASCII(src[i]) {
		i++
	}

	isFloat := false
	if i < n && src[i] == '.' && i+1 < n && isDigitASCII(src[i+1]) {
		isFloat = true
		i++
		for i < n && isDigitASCII(src[i]) {
			i++
		}
	}

	for ; lex.Position < i; lex.Advance() {
	}

	tokenType := INT_LIT
	if isFloat {
		tokenType = FLOAT_LIT
	}
	return NewTokenWithMetadata(tokenType, src[start:i], startLine, startCol), nil
}

func isDigitASCII(c byte) bool {
	return c >= '0' && c <= '9'
}

// readIdentifier reads an identifier or keyword: a letter or underscore
// followed by letters, digits, or underscores.
func (lex *Lexer) readIdentifier() Token {
	startLine, startCol := lex.Line, lex.Column
	position := lex.Position
	for isAlphanumeric(lex.Current) || lex.Current == '_' {
		lex.Advance()
	}
	literal := lex.Src[position:lex.Position]
	return NewTokenWithMetadata(lookupIdent(literal), literal, startLine, startCol)
}
