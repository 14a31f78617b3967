/*
File    : minilang/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval walks a parsed ast.Program and produces values.Value results,
// maintaining the current environment and propagating Return/Break/Continue
// as ordinary values rather than Go panics. Grounded on the teacher's eval
// package (Evaluator struct holding scope/builtins/writer, CreateError with
// position info, sentinel-checked statement sequencing), narrowed to
// spec.md's statement and expression set.
package eval

import (
	"bufio"
	"io"
	"os"

	"github.com/akashmaji946/minilang/ast"
	"github.com/akashmaji946/minilang/environment"
	"github.com/akashmaji946/minilang/values"
)

// Evaluator holds the state needed to walk an ast.Program: the current
// environment and the I/O sinks `print` and `input` read from and write to.
type Evaluator struct {
	Env *environment.Environment
	Out io.Writer
	In  *bufio.Reader
}

// New creates an Evaluator with a fresh global environment, stdout/stdin as
// its default I/O sinks, and the full built-in table defined into that
// global environment, so `len`, `range`, and friends are ordinary bindings
// a program can shadow, reassign, or pass around like any other value.
func New() *Evaluator {
	e := &Evaluator{
		Env: environment.New(nil),
		Out: os.Stdout,
		In:  bufio.NewReader(os.Stdin),
	}
	for name, builtin := range registerBuiltins(e) {
		e.Env.Define(name, builtin)
	}
	return e
}

// SetWriter redirects `print` output, chiefly for tests that capture output
// into a buffer instead of stdout.
func (e *Evaluator) SetWriter(w io.Writer) {
	e.Out = w
}

// SetReader redirects `input`'s source, chiefly for tests that feed
// canned input instead of reading stdin.
func (e *Evaluator) SetReader(r io.Reader) {
	e.In = bufio.NewReader(r)
}

// Run evaluates an entire program in the evaluator's current (global)
// environment and unwraps any top-level Return into its value — a bare
// top-level `return` is accepted and simply stops the program early.
func (e *Evaluator) Run(program *ast.Program) values.Value {
	var result values.Value = values.NullValue
	for _, stmt := range program.Statements {
		result = e.Eval(stmt)
		switch result.(type) {
		case *values.Error:
			return result
		case *values.Return:
			return result.(*values.Return).Value
		case *values.Break, *values.Continue:
			line, column := stmt.Pos()
			return values.NewError(line, column, "'break'/'continue' used outside of a loop")
		}
	}
	return result
}

// IsError reports whether v is a runtime error.
func IsError(v values.Value) bool {
	_, ok := v.(*values.Error)
	return ok
}

// isSignal reports whether v is a non-local control-transfer sentinel
// (Error/Return/Break/Continue) that a statement sequence must stop and
// propagate rather than keep evaluating past.
func isSignal(v values.Value) bool {
	switch v.(type) {
	case *values.Error, *values.Return, *values.Break, *values.Continue:
		return true
	default:
		return false
	}
}
