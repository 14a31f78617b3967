/*
File    : minilang/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTypes(t *testing.T, src string) []TokenType {
	t.Helper()
	lex := NewLexer(src)
	tokens, err := lex.ConsumeTokens()
	require.NoError(t, err)
	types := make([]TokenType, 0, len(tokens))
	for _, tok := range tokens {
		types = append(types, tok.Type)
	}
	return types
}

func TestNextToken_Operators(t *testing.T) {
	types := tokenTypes(t, "+ - * / % ** == != <= >= < > = += -= *= /=")
	assert.Equal(t, []TokenType{
		PLUS_OP, MINUS_OP, MUL_OP, DIV_OP, MOD_OP, POW_OP,
		EQ_OP, NE_OP, LE_OP, GE_OP, LT_OP, GT_OP, ASSIGN_OP,
		PLUS_ASSIGN, MINUS_ASSIGN, MUL_ASSIGN, DIV_ASSIGN, EOF_TYPE,
	}, types)
}

func TestNextToken_KeywordsAndIdentifiers(t *testing.T) {
	lex := NewLexer("let x = foo")
	tokens, err := lex.ConsumeTokens()
	require.NoError(t, err)
	require.Len(t, tokens, 5)
	assert.Equal(t, LET_KEY, tokens[0].Type)
	assert.Equal(t, IDENTIFIER_ID, tokens[1].Type)
	assert.Equal(t, "x", tokens[1].Literal)
	assert.Equal(t, ASSIGN_OP, tokens[2].Type)
	assert.Equal(t, IDENTIFIER_ID, tokens[3].Type)
}

func TestNextToken_NumberLiterals(t *testing.T) {
	lex := NewLexer("42 3.14 0")
	tokens, err := lex.ConsumeTokens()
	require.NoError(t, err)
	assert.Equal(t, INT_LIT, tokens[0].Type)
	assert.Equal(t, "42", tokens[0].Literal)
	assert.Equal(t, FLOAT_LIT, tokens[1].Type)
	assert.Equal(t, "3.14", tokens[1].Literal)
	assert.Equal(t, INT_LIT, tokens[2].Type)
}

func TestNextToken_StringEscapes(t *testing.T) {
	lex := NewLexer(`"hello\nworld"`)
	tok, err := lex.NextToken()
	require.NoError(t, err)
	assert.Equal(t, STRING_LIT, tok.Type)
	assert.Equal(t, "hello\nworld", tok.Literal)
}

func TestNextToken_UnterminatedString(t *testing.T) {
	lex := NewLexer(`"hello`)
	_, err := lex.NextToken()
	require.Error(t, err)
	var lexErr *LexError
	require.ErrorAs(t, err, &lexErr)
}

func TestNextToken_UnterminatedBlockComment(t *testing.T) {
	lex := NewLexer("/* never closes")
	_, err := lex.NextToken()
	require.Error(t, err)
}

func TestNextToken_CommentsAreSkipped(t *testing.T) {
	types := tokenTypes(t, "1 // trailing\n2 # shell style\n3 /* block */ 4")
	assert.Equal(t, []TokenType{
		INT_LIT, NEWLINE_TYPE, INT_LIT, NEWLINE_TYPE, INT_LIT, INT_LIT, EOF_TYPE,
	}, types)
}

func TestNextToken_NewlinesCollapse(t *testing.T) {
	types := tokenTypes(t, "1\n\n\n2")
	assert.Equal(t, []TokenType{INT_LIT, NEWLINE_TYPE, INT_LIT, EOF_TYPE}, types)
}

func TestNextToken_Delimiters(t *testing.T) {
	types := tokenTypes(t, "( ) { } [ ] , ; :")
	assert.Equal(t, []TokenType{
		LEFT_PAREN, RIGHT_PAREN, LEFT_BRACE, RIGHT_BRACE,
		LEFT_BRACKET, RIGHT_BRACKET, COMMA_DELIM, SEMICOLON_DELIM, COLON_DELIM, EOF_TYPE,
	}, types)
}

func TestNextToken_BooleanAndNullLiterals(t *testing.T) {
	lex := NewLexer("true false null")
	tokens, err := lex.ConsumeTokens()
	require.NoError(t, err)
	assert.Equal(t, BOOL_LIT, tokens[0].Type)
	assert.Equal(t, BOOL_LIT, tokens[1].Type)
	assert.Equal(t, NULL_KEY, tokens[2].Type)
}
