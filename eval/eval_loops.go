/*
File    : minilang/eval/eval_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/minilang/ast"
	"github.com/akashmaji946/minilang/environment"
	"github.com/akashmaji946/minilang/values"
)

// evalWhileStatement loops while Cond is truthy. A Break exits the loop
// entirely; a Continue re-enters the condition test for the next
// iteration. Neither sentinel escapes past this method.
func (e *Evaluator) evalWhileStatement(n *ast.WhileStatement) values.Value {
	for {
		cond := e.Eval(n.Cond)
		if isSignal(cond) {
			return cond
		}
		if !values.IsTruthy(cond) {
			return values.NullValue
		}

		result := e.Eval(n.Body)
		switch result.(type) {
		case *values.Break:
			return values.NullValue
		case *values.Continue:
			continue
		case *values.Error, *values.Return:
			return result
		}
	}
}

// evalForStatement opens a new scope for the loop, executes Init exactly
// once, then on each iteration tests Cond (absent means always true),
// executes Body (a Break exits, a Continue skips straight to Increment),
// and finally executes Increment.
func (e *Evaluator) evalForStatement(n *ast.ForStatement) values.Value {
	oldEnv := e.Env
	e.Env = environment.New(oldEnv)
	defer func() { e.Env = oldEnv }()

	if n.Init != nil {
		result := e.Eval(n.Init)
		if isSignal(result) {
			return result
		}
	}

	for {
		if n.Cond != nil {
			cond := e.Eval(n.Cond)
			if isSignal(cond) {
				return cond
			}
			if !values.IsTruthy(cond) {
				return values.NullValue
			}
		}

		result := e.Eval(n.Body)
		switch result.(type) {
		case *values.Break:
			return values.NullValue
		case *values.Error, *values.Return:
			return result
		}
		// *values.Continue falls through to the increment, same as normal
		// completion.

		if n.Increment != nil {
			incResult := e.Eval(n.Increment)
			if isSignal(incResult) {
				return incResult
			}
		}
	}
}
