/*
File    : minilang/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent parser with a fixed
// precedence ladder for MiniLang, converting a token stream from the
// lexer into an ast.Program. Grounded on the teacher's parser.Parser
// (two-token lookahead cursor, collected Errors list, expect/match/advance
// helper idiom), but dispatches through a direct chain of named
// precedence-level functions instead of the teacher's Pratt
// (token-type -> parse-function) maps, since MiniLang's grammar is closed
// and fixed rather than user-extensible. The teacher's in-parser
// constant-folding (evaluating the last statement inside Parse()) is
// dropped entirely — it violates strict pipeline staging.
package parser

import (
	"fmt"

	"github.com/akashmaji946/minilang/ast"
	"github.com/akashmaji946/minilang/lexer"
)

// ParseError is a single parse failure with its source position.
type ParseError struct {
	Message string
	Line    int
	Column  int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("[%d:%d] Parse Error: %s", e.Line, e.Column, e.Message)
}

// Parser holds parsing state: the lexer, a two-token lookahead cursor, and
// an accumulated error list (panic-mode recovery rather than a hard stop
// on the first error).
type Parser struct {
	lex  lexer.Lexer
	curr lexer.Token
	next lexer.Token

	Errors []*ParseError
	LexErr error
}

// synchronizeKeywords are the declaration-starting keywords synchronize()
// treats as safe restart points, per spec.md §4.2.
var synchronizeKeywords = map[lexer.TokenType]bool{
	lexer.LET_KEY:    true,
	lexer.FUNC_KEY:   true,
	lexer.IF_KEY:     true,
	lexer.WHILE_KEY:  true,
	lexer.FOR_KEY:    true,
	lexer.RETURN_KEY: true,
	lexer.PRINT_KEY:  true,
}

// NewParser creates a Parser over src and primes its two-token lookahead.
func NewParser(src string) *Parser {
	p := &Parser{lex: lexer.NewLexer(src)}
	p.advance()
	p.advance()
	return p
}

// advance shifts the lookahead window forward by one token. If the lexer
// fails, the failure is recorded once (lexing aborts immediately per
// spec.md §7) and the cursor is forced to EOF so parsing unwinds cleanly.
func (p *Parser) advance() {
	p.curr = p.next
	if p.LexErr != nil {
		p.next = lexer.NewTokenWithMetadata(lexer.EOF_TYPE, "EOF", p.curr.Line, p.curr.Column)
		return
	}
	tok, err := p.lex.NextToken()
	if err != nil {
		p.LexErr = err
		p.next = lexer.NewTokenWithMetadata(lexer.EOF_TYPE, "EOF", p.curr.Line, p.curr.Column)
		return
	}
	p.next = tok
}

func (p *Parser) check(kinds ...lexer.TokenType) bool {
	for _, k := range kinds {
		if p.curr.Type == k {
			return true
		}
	}
	return false
}

func (p *Parser) checkNext(kinds ...lexer.TokenType) bool {
	for _, k := range kinds {
		if p.next.Type == k {
			return true
		}
	}
	return false
}

// match consumes the current token and advances if it is one of kinds.
func (p *Parser) match(kinds ...lexer.TokenType) bool {
	if p.check(kinds...) {
		p.advance()
		return true
	}
	return false
}

// consume requires the current token to be kind, advancing past it; on
// mismatch it records a parse error carrying msg and the offending
// position, without advancing.
func (p *Parser) consume(kind lexer.TokenType, msg string) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	p.addError(msg)
	return false
}

func (p *Parser) addError(format string, args ...any) {
	p.Errors = append(p.Errors, &ParseError{
		Message: fmt.Sprintf(format, args...),
		Line:    p.curr.Line,
		Column:  p.curr.Column,
	})
}

// skipNewlines consumes any run of NEWLINE tokens at the cursor.
func (p *Parser) skipNewlines() {
	for p.check(lexer.NEWLINE_TYPE) {
		p.advance()
	}
}

// skipTerminator consumes an optional statement terminator: SEMICOLON or
// NEWLINE. Per spec.md §4.2, terminators are permissive — a missing one at
// RBRACE/EOF is not an error.
func (p *Parser) skipTerminator() {
	if p.check(lexer.SEMICOLON_DELIM, lexer.NEWLINE_TYPE) {
		p.advance()
	}
}

// synchronize implements panic-mode error recovery: advance until just
// past a SEMICOLON/NEWLINE, or until a declaration-starting keyword, so
// the parser can keep collecting further errors instead of stopping cold.
func (p *Parser) synchronize() {
	for !p.check(lexer.EOF_TYPE) {
		if p.check(lexer.SEMICOLON_DELIM, lexer.NEWLINE_TYPE) {
			p.advance()
			return
		}
		if synchronizeKeywords[p.curr.Type] {
			return
		}
		p.advance()
	}
}

// HasErrors reports whether any lex or parse error occurred.
func (p *Parser) HasErrors() bool {
	return p.LexErr != nil || len(p.Errors) > 0
}

// Parse consumes the entire token stream and returns the resulting
// Program. Callers must check HasErrors()/LexErr/Errors before evaluating
// the result — per spec.md §7, a non-empty error list blocks execution.
func (p *Parser) Parse() *ast.Program {
	program := &ast.Program{Statements: make([]ast.Statement, 0)}

	p.skipNewlines()
	for !p.check(lexer.EOF_TYPE) && p.LexErr == nil {
		stmt := p.parseDeclaration()
		if stmt != nil {
			program.Statements = append(program.Statements, stmt)
		}
		p.skipNewlines()
	}
	return program
}
