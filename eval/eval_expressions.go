/*
File    : minilang/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"math"
	"strings"

	"github.com/akashmaji946/minilang/ast"
	"github.com/akashmaji946/minilang/environment"
	"github.com/akashmaji946/minilang/values"
)

// Eval is the central dispatcher: every node type is routed to its handler
// through a type switch, mirroring the teacher's eval.Eval, narrowed to
// spec.md's closed node set.
func (e *Evaluator) Eval(n ast.Node) values.Value {
	switch node := n.(type) {
	case *ast.Program:
		return e.Run(node)
	case *ast.NumberLiteral:
		if node.IsFloat {
			return &values.Float{Value: node.FloatValue}
		}
		return &values.Integer{Value: node.IntValue}
	case *ast.StringLiteral:
		return &values.String{Value: node.Value}
	case *ast.BooleanLiteral:
		return values.BoolValue(node.Value)
	case *ast.NullLiteral:
		return values.NullValue
	case *ast.Identifier:
		return e.evalIdentifier(node)
	case *ast.BinaryOp:
		return e.evalBinaryOp(node)
	case *ast.UnaryOp:
		return e.evalUnaryOp(node)
	case *ast.Assignment:
		return e.evalAssignment(node)
	case *ast.FunctionCall:
		return e.evalFunctionCall(node)
	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(node)
	case *ast.ArrayAccess:
		return e.evalArrayAccess(node)
	case *ast.ArrayIndexAssignment:
		return e.evalArrayIndexAssignment(node)
	case *ast.ExpressionStatement:
		return e.Eval(node.Expr)
	case *ast.VariableDeclaration:
		return e.evalVariableDeclaration(node)
	case *ast.Block:
		return e.evalBlock(node)
	case *ast.IfStatement:
		return e.evalIfStatement(node)
	case *ast.WhileStatement:
		return e.evalWhileStatement(node)
	case *ast.ForStatement:
		return e.evalForStatement(node)
	case *ast.FunctionDeclaration:
		return e.evalFunctionDeclaration(node)
	case *ast.ReturnStatement:
		return e.evalReturnStatement(node)
	case *ast.BreakStatement:
		return values.BreakValue
	case *ast.ContinueStatement:
		return values.ContinueValue
	case *ast.PrintStatement:
		return e.evalPrintStatement(node)
	default:
		return values.NullValue
	}
}

func (e *Evaluator) errorAt(n ast.Node, format string, args ...any) *values.Error {
	line, column := n.Pos()
	return values.NewError(line, column, format, args...)
}

func (e *Evaluator) evalIdentifier(n *ast.Identifier) values.Value {
	v, ok := e.Env.Get(n.Name)
	if !ok {
		return e.errorAt(n, "identifier not found: %s", n.Name)
	}
	return v
}

// evalBinaryOp implements spec.md §4.5's binary-operator table: `and`/`or`
// short-circuit and return the deciding value itself (not a coerced
// boolean); `+` concatenates when either side is a String or both are
// Arrays; `*` repeats a String or Array by an Integer count; the remaining
// arithmetic operators require numeric operands.
func (e *Evaluator) evalBinaryOp(n *ast.BinaryOp) values.Value {
	if n.Operator == "and" {
		left := e.Eval(n.Left)
		if isSignal(left) {
			return left
		}
		if !values.IsTruthy(left) {
			return left
		}
		return e.Eval(n.Right)
	}
	if n.Operator == "or" {
		left := e.Eval(n.Left)
		if isSignal(left) {
			return left
		}
		if values.IsTruthy(left) {
			return left
		}
		return e.Eval(n.Right)
	}

	left := e.Eval(n.Left)
	if isSignal(left) {
		return left
	}
	right := e.Eval(n.Right)
	if isSignal(right) {
		return right
	}

	switch n.Operator {
	case "==":
		return values.BoolValue(valuesEqual(left, right))
	case "!=":
		return values.BoolValue(!valuesEqual(left, right))
	case "<", ">", "<=", ">=":
		return e.evalComparison(n, n.Operator, left, right)
	case "+":
		return e.evalPlus(n, left, right)
	case "*":
		return e.evalStar(n, left, right)
	case "-", "/", "%", "**":
		return e.evalArithmetic(n, n.Operator, left, right)
	default:
		return e.errorAt(n, "unknown operator: %s", n.Operator)
	}
}

func (e *Evaluator) evalComparison(n ast.Node, op string, left, right values.Value) values.Value {
	if isNumeric(left) && isNumeric(right) {
		l, r := toFloat(left), toFloat(right)
		switch op {
		case "<":
			return values.BoolValue(l < r)
		case ">":
			return values.BoolValue(l > r)
		case "<=":
			return values.BoolValue(l <= r)
		case ">=":
			return values.BoolValue(l >= r)
		}
	}
	ls, lok := left.(*values.String)
	rs, rok := right.(*values.String)
	if lok && rok {
		switch op {
		case "<":
			return values.BoolValue(ls.Value < rs.Value)
		case ">":
			return values.BoolValue(ls.Value > rs.Value)
		case "<=":
			return values.BoolValue(ls.Value <= rs.Value)
		case ">=":
			return values.BoolValue(ls.Value >= rs.Value)
		}
	}
	return e.errorAt(n, "operator %s not defined for %s and %s", op, left.Type(), right.Type())
}

func (e *Evaluator) evalPlus(n ast.Node, left, right values.Value) values.Value {
	if left.Type() == values.StringType || right.Type() == values.StringType {
		return &values.String{Value: stringify(left) + stringify(right)}
	}
	leftArr, lok := left.(*values.Array)
	rightArr, rok := right.(*values.Array)
	if lok && rok {
		combined := make([]values.Value, 0, len(leftArr.Elements)+len(rightArr.Elements))
		combined = append(combined, leftArr.Elements...)
		combined = append(combined, rightArr.Elements...)
		return &values.Array{Elements: combined}
	}
	return e.evalArithmetic(n, "+", left, right)
}

func (e *Evaluator) evalStar(n ast.Node, left, right values.Value) values.Value {
	if s, ok := left.(*values.String); ok {
		if count, ok := right.(*values.Integer); ok {
			return &values.String{Value: strings.Repeat(s.Value, max(int(count.Value), 0))}
		}
	}
	if s, ok := right.(*values.String); ok {
		if count, ok := left.(*values.Integer); ok {
			return &values.String{Value: strings.Repeat(s.Value, max(int(count.Value), 0))}
		}
	}
	if arr, ok := left.(*values.Array); ok {
		if count, ok := right.(*values.Integer); ok {
			return &values.Array{Elements: repeatArray(arr.Elements, int(count.Value))}
		}
	}
	if arr, ok := right.(*values.Array); ok {
		if count, ok := left.(*values.Integer); ok {
			return &values.Array{Elements: repeatArray(arr.Elements, int(count.Value))}
		}
	}
	return e.evalArithmetic(n, "*", left, right)
}

func repeatArray(elements []values.Value, count int) []values.Value {
	out := make([]values.Value, 0, len(elements)*max(count, 0))
	for i := 0; i < count; i++ {
		out = append(out, elements...)
	}
	return out
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// evalArithmetic implements `- / % **`, requiring both operands numeric,
// and `+`/`*`'s numeric fallback. Integer/Integer stays Integer except
// `/`, which is always true division producing a Float, and `**`, which
// promotes through float exponentiation then truncates back to Integer
// when both operands were Integer.
func (e *Evaluator) evalArithmetic(n ast.Node, op string, left, right values.Value) values.Value {
	if !isNumeric(left) || !isNumeric(right) {
		return e.errorAt(n, "operator %s not defined for %s and %s", op, left.Type(), right.Type())
	}
	bothInt := left.Type() == values.IntegerType && right.Type() == values.IntegerType
	l, r := toFloat(left), toFloat(right)

	switch op {
	case "-":
		if bothInt {
			return &values.Integer{Value: left.(*values.Integer).Value - right.(*values.Integer).Value}
		}
		return &values.Float{Value: l - r}
	case "/":
		if r == 0 {
			return e.errorAt(n, "Division by zero")
		}
		return &values.Float{Value: l / r}
	case "%":
		if r == 0 {
			return e.errorAt(n, "Modulo by zero")
		}
		if bothInt {
			return &values.Integer{Value: left.(*values.Integer).Value % right.(*values.Integer).Value}
		}
		return &values.Float{Value: math.Mod(l, r)}
	case "**":
		result := math.Pow(l, r)
		if bothInt {
			return &values.Integer{Value: int64(result)}
		}
		return &values.Float{Value: result}
	case "+":
		if bothInt {
			return &values.Integer{Value: left.(*values.Integer).Value + right.(*values.Integer).Value}
		}
		return &values.Float{Value: l + r}
	case "*":
		if bothInt {
			return &values.Integer{Value: left.(*values.Integer).Value * right.(*values.Integer).Value}
		}
		return &values.Float{Value: l * r}
	default:
		return e.errorAt(n, "unknown arithmetic operator: %s", op)
	}
}

func (e *Evaluator) evalUnaryOp(n *ast.UnaryOp) values.Value {
	operand := e.Eval(n.Operand)
	if isSignal(operand) {
		return operand
	}
	switch n.Operator {
	case "-":
		switch v := operand.(type) {
		case *values.Integer:
			return &values.Integer{Value: -v.Value}
		case *values.Float:
			return &values.Float{Value: -v.Value}
		default:
			return e.errorAt(n, "operator - not defined for %s", operand.Type())
		}
	case "not", "!":
		return values.BoolValue(!values.IsTruthy(operand))
	default:
		return e.errorAt(n, "unknown unary operator: %s", n.Operator)
	}
}

// evalAssignment implements spec.md §4.5's assignment rule: `=` creates the
// binding in the current scope if it exists nowhere on the chain (implicit
// declaration); compound operators require the name to already exist.
func (e *Evaluator) evalAssignment(n *ast.Assignment) values.Value {
	value := e.Eval(n.Value)
	if isSignal(value) {
		return value
	}

	if n.Operator == "=" {
		if !e.Env.Set(n.Target, value) {
			e.Env.Define(n.Target, value)
		}
		return value
	}

	current, ok := e.Env.Get(n.Target)
	if !ok {
		return e.errorAt(n, "identifier not found: %s", n.Target)
	}
	combined := e.applyCompound(n, n.Operator, current, value)
	if isSignal(combined) {
		return combined
	}
	e.Env.Set(n.Target, combined)
	return combined
}

func (e *Evaluator) applyCompound(n ast.Node, op string, current, value values.Value) values.Value {
	switch op {
	case "+=":
		return e.evalPlus(n, current, value)
	case "-=":
		return e.evalArithmetic(n, "-", current, value)
	case "*=":
		return e.evalStar(n, current, value)
	case "/=":
		return e.evalArithmetic(n, "/", current, value)
	default:
		return e.errorAt(n, "unknown compound assignment operator: %s", op)
	}
}

func (e *Evaluator) evalArrayLiteral(n *ast.ArrayLiteral) values.Value {
	elements := make([]values.Value, 0, len(n.Elements))
	for _, el := range n.Elements {
		v := e.Eval(el)
		if isSignal(v) {
			return v
		}
		elements = append(elements, v)
	}
	return &values.Array{Elements: elements}
}

// evalArrayAccess implements spec.md §4.5's ArrayAccess rule: the container
// must be an Array or a String, the index must be an Integer, and a
// negative or out-of-range index is a runtime error with no wrap-around.
// String indexing yields a one-character string.
func (e *Evaluator) evalArrayAccess(n *ast.ArrayAccess) values.Value {
	container := e.Eval(n.Array)
	if isSignal(container) {
		return container
	}
	index := e.Eval(n.Index)
	if isSignal(index) {
		return index
	}
	idx, ok := index.(*values.Integer)
	if !ok {
		return e.errorAt(n, "array index must be an integer, got %s", index.Type())
	}

	switch c := container.(type) {
	case *values.Array:
		if idx.Value < 0 || idx.Value >= int64(len(c.Elements)) {
			return e.errorAt(n, "array index out of range: %d", idx.Value)
		}
		return c.Elements[idx.Value]
	case *values.String:
		if idx.Value < 0 || idx.Value >= int64(len(c.Value)) {
			return e.errorAt(n, "string index out of range: %d", idx.Value)
		}
		return &values.String{Value: string(c.Value[idx.Value])}
	default:
		return e.errorAt(n, "cannot index into %s", container.Type())
	}
}

// evalArrayIndexAssignment implements spec.md §4.5's ArrayIndexAssignment
// rule: the container must be an Array (never a String, which is
// immutable); otherwise follows the same compound-assignment combination
// rules as plain Assignment, and yields the new element value.
func (e *Evaluator) evalArrayIndexAssignment(n *ast.ArrayIndexAssignment) values.Value {
	container := e.Eval(n.Array)
	if isSignal(container) {
		return container
	}
	arr, ok := container.(*values.Array)
	if !ok {
		return e.errorAt(n, "cannot index-assign into %s", container.Type())
	}
	index := e.Eval(n.Index)
	if isSignal(index) {
		return index
	}
	idx, ok := index.(*values.Integer)
	if !ok {
		return e.errorAt(n, "array index must be an integer, got %s", index.Type())
	}
	if idx.Value < 0 || idx.Value >= int64(len(arr.Elements)) {
		return e.errorAt(n, "array index out of range: %d", idx.Value)
	}

	value := e.Eval(n.Value)
	if isSignal(value) {
		return value
	}

	if n.Operator == "=" {
		arr.Elements[idx.Value] = value
		return value
	}
	combined := e.applyCompound(n, n.Operator, arr.Elements[idx.Value], value)
	if isSignal(combined) {
		return combined
	}
	arr.Elements[idx.Value] = combined
	return combined
}

// evalFunctionCall resolves Name via the environment, dispatching to a
// builtin (arity-checked unless arity is -1) or a user Function (argument
// count must equal parameter count; body runs in a fresh environment
// parented by the function's captured closure).
func (e *Evaluator) evalFunctionCall(n *ast.FunctionCall) values.Value {
	args := make([]values.Value, 0, len(n.Args))
	for _, a := range n.Args {
		v := e.Eval(a)
		if isSignal(v) {
			return v
		}
		args = append(args, v)
	}

	callee, ok := e.Env.Get(n.Name)
	if !ok {
		return e.errorAt(n, "function not found: %s", n.Name)
	}

	if builtin, ok := callee.(*values.Builtin); ok {
		if builtin.Arity != -1 && builtin.Arity != len(args) {
			return e.errorAt(n, "%s expects %d argument(s), got %d", n.Name, builtin.Arity, len(args))
		}
		return builtin.Fn(args)
	}

	fn, ok := callee.(*values.Function)
	if !ok {
		return e.errorAt(n, "%s is not callable", n.Name)
	}
	if len(args) != len(fn.Params) {
		return e.errorAt(n, "%s expects %d argument(s), got %d", n.Name, len(fn.Params), len(args))
	}

	closure, _ := fn.Closure.(*environment.Environment)
	callScope := environment.New(closure)
	for i, param := range fn.Params {
		callScope.Define(param, args[i])
	}

	oldEnv := e.Env
	e.Env = callScope
	result := e.Eval(fn.Body)
	e.Env = oldEnv

	switch res := result.(type) {
	case *values.Return:
		return res.Value
	case *values.Error, *values.Break, *values.Continue:
		// Only a Return is anchored at the call site. A break/continue with
		// no enclosing loop inside the function propagates out of the call,
		// where an enclosing loop up the stack (or Run, at top level)
		// handles it.
		return res
	}
	return values.NullValue
}

func isNumeric(v values.Value) bool {
	switch v.(type) {
	case *values.Integer, *values.Float:
		return true
	default:
		return false
	}
}

func toFloat(v values.Value) float64 {
	switch val := v.(type) {
	case *values.Integer:
		return float64(val.Value)
	case *values.Float:
		return val.Value
	default:
		return 0
	}
}

// stringify implements spec.md §4.5's string-conversion rule, used by `+`
// coercion, `print`, and the `str` builtin.
func stringify(v values.Value) string {
	return v.String()
}

// valuesEqual implements `==`/`!=` as structural equality over same-kind
// values; values of different kinds are always unequal.
func valuesEqual(left, right values.Value) bool {
	if left.Type() != right.Type() {
		return false
	}
	switch l := left.(type) {
	case *values.Null:
		return true
	case *values.Boolean:
		return l.Value == right.(*values.Boolean).Value
	case *values.Integer:
		return l.Value == right.(*values.Integer).Value
	case *values.Float:
		return l.Value == right.(*values.Float).Value
	case *values.String:
		return l.Value == right.(*values.String).Value
	case *values.Array:
		r := right.(*values.Array)
		if len(l.Elements) != len(r.Elements) {
			return false
		}
		for i := range l.Elements {
			if !valuesEqual(l.Elements[i], r.Elements[i]) {
				return false
			}
		}
		return true
	case *values.Function:
		return l == right.(*values.Function)
	case *values.Builtin:
		return l == right.(*values.Builtin)
	default:
		return false
	}
}
