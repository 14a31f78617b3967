/*
File    : minilang/lexer/error.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import "fmt"

// LexError reports a malformed token at a specific source position. The
// lexer stops tokenizing as soon as one is produced.
type LexError struct {
	Message string
	Line    int
	Column  int
}

func (e *LexError) Error() string {
	return fmt.Sprintf("[%d:%d] Lexer Error: %s", e.Line, e.Column, e.Message)
}

func newLexError(line, column int, format string, args ...any) *LexError {
	return &LexError{Message: fmt.Sprintf(format, args...), Line: line, Column: column}
}
