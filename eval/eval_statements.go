/*
File    : minilang/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/minilang/ast"
	"github.com/akashmaji946/minilang/environment"
	"github.com/akashmaji946/minilang/values"
)

// evalVariableDeclaration evaluates the initializer (defaulting to Null)
// and always defines the name in the current scope — a `let` never updates
// a same-named binding in an enclosing scope, even when one exists.
func (e *Evaluator) evalVariableDeclaration(n *ast.VariableDeclaration) values.Value {
	var value values.Value = values.NullValue
	if n.Init != nil {
		value = e.Eval(n.Init)
		if isSignal(value) {
			return value
		}
	}
	e.Env.Define(n.Name, value)
	return values.NullValue
}

// evalBlock pushes a new environment parented by the current one, executes
// every statement in it, and restores the previous environment on every
// exit path (normal completion or a propagated signal).
func (e *Evaluator) evalBlock(n *ast.Block) values.Value {
	oldEnv := e.Env
	e.Env = environment.New(oldEnv)
	defer func() { e.Env = oldEnv }()

	var result values.Value = values.NullValue
	for _, stmt := range n.Statements {
		result = e.Eval(stmt)
		if isSignal(result) {
			return result
		}
	}
	return result
}

func (e *Evaluator) evalIfStatement(n *ast.IfStatement) values.Value {
	cond := e.Eval(n.Cond)
	if isSignal(cond) {
		return cond
	}
	if values.IsTruthy(cond) {
		return e.Eval(n.Then)
	}
	if n.Else != nil {
		return e.Eval(n.Else)
	}
	return values.NullValue
}

// evalFunctionDeclaration constructs a Function value whose captured
// environment is the current one and defines the name in the current
// scope, giving lexical closures including mutual recursion within the
// same scope.
func (e *Evaluator) evalFunctionDeclaration(n *ast.FunctionDeclaration) values.Value {
	fn := &values.Function{
		Name:    n.Name,
		Params:  n.Params,
		Body:    n.Body,
		Closure: e.Env,
	}
	e.Env.Define(n.Name, fn)
	return values.NullValue
}

func (e *Evaluator) evalReturnStatement(n *ast.ReturnStatement) values.Value {
	var value values.Value = values.NullValue
	if n.Value != nil {
		value = e.Eval(n.Value)
		if isSignal(value) {
			return value
		}
	}
	return &values.Return{Value: value}
}

// evalPrintStatement evaluates every argument, converts each per the
// string-conversion rule, and emits them joined by a single space followed
// by a newline to the evaluator's configured output sink.
func (e *Evaluator) evalPrintStatement(n *ast.PrintStatement) values.Value {
	parts := make([]string, 0, len(n.Args))
	for _, arg := range n.Args {
		v := e.Eval(arg)
		if isSignal(v) {
			return v
		}
		parts = append(parts, stringify(v))
	}
	line := ""
	for i, p := range parts {
		if i > 0 {
			line += " "
		}
		line += p
	}
	fmt.Fprintln(e.Out, line)
	return values.NullValue
}
