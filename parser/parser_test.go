package parser

import (
	"testing"

	"github.com/akashmaji946/minilang/ast"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := NewParser(src)
	program := p.Parse()
	require.False(t, p.HasErrors(), "unexpected parse errors: %v / lexErr=%v", p.Errors, p.LexErr)
	return program
}

func TestParse_LetDeclaration(t *testing.T) {
	program := parseOK(t, "let x = 5\n")
	require.Len(t, program.Statements, 1)
	decl, ok := program.Statements[0].(*ast.VariableDeclaration)
	require.True(t, ok)
	assert.Equal(t, "x", decl.Name)
	num, ok := decl.Init.(*ast.NumberLiteral)
	require.True(t, ok)
	assert.Equal(t, int64(5), num.IntValue)
}

func TestParse_LetWithoutInitializer(t *testing.T) {
	program := parseOK(t, "let x\n")
	decl := program.Statements[0].(*ast.VariableDeclaration)
	assert.Nil(t, decl.Init)
}

func TestParse_AdditiveLeftAssociative(t *testing.T) {
	program := parseOK(t, "a - b - c\n")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	outer, ok := stmt.Expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "-", outer.Operator)

	inner, ok := outer.Left.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "-", inner.Operator)
	assert.Equal(t, "a", inner.Left.(*ast.Identifier).Name)
	assert.Equal(t, "b", inner.Right.(*ast.Identifier).Name)
	assert.Equal(t, "c", outer.Right.(*ast.Identifier).Name)
}

func TestParse_PowerRightAssociative(t *testing.T) {
	program := parseOK(t, "a ** b ** c\n")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	outer, ok := stmt.Expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "**", outer.Operator)
	assert.Equal(t, "a", outer.Left.(*ast.Identifier).Name)

	inner, ok := outer.Right.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "**", inner.Operator)
	assert.Equal(t, "b", inner.Left.(*ast.Identifier).Name)
	assert.Equal(t, "c", inner.Right.(*ast.Identifier).Name)
}

func TestParse_PrecedenceMultiplicativeOverAdditive(t *testing.T) {
	program := parseOK(t, "a + b * c\n")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	add, ok := stmt.Expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "+", add.Operator)
	assert.Equal(t, "a", add.Left.(*ast.Identifier).Name)

	mul, ok := add.Right.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "*", mul.Operator)
}

func TestParse_LogicalPrecedence(t *testing.T) {
	program := parseOK(t, "a or b and c\n")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	or, ok := stmt.Expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "or", or.Operator)
	and, ok := or.Right.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "and", and.Operator)
}

func TestParse_UnaryNot(t *testing.T) {
	program := parseOK(t, "not true\n")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	un, ok := stmt.Expr.(*ast.UnaryOp)
	require.True(t, ok)
	assert.Equal(t, "not", un.Operator)
}

func TestParse_AssignmentToIdentifier(t *testing.T) {
	program := parseOK(t, "x = 5\n")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	assign, ok := stmt.Expr.(*ast.Assignment)
	require.True(t, ok)
	assert.Equal(t, "x", assign.Target)
	assert.Equal(t, "=", assign.Operator)
}

func TestParse_CompoundAssignment(t *testing.T) {
	program := parseOK(t, "x += 1\n")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	assign, ok := stmt.Expr.(*ast.Assignment)
	require.True(t, ok)
	assert.Equal(t, "+=", assign.Operator)
}

func TestParse_ArrayIndexAssignment(t *testing.T) {
	program := parseOK(t, "arr[0] = 9\n")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	assign, ok := stmt.Expr.(*ast.ArrayIndexAssignment)
	require.True(t, ok)
	assert.Equal(t, "arr", assign.Array.(*ast.Identifier).Name)
}

func TestParse_InvalidAssignmentTarget(t *testing.T) {
	p := NewParser("5 = 1\n")
	p.Parse()
	require.True(t, p.HasErrors())
	assert.Contains(t, p.Errors[0].Message, "invalid assignment target")
}

func TestParse_CallOnNonIdentifierFails(t *testing.T) {
	p := NewParser("arr[0]()\n")
	p.Parse()
	require.True(t, p.HasErrors())
	assert.Contains(t, p.Errors[0].Message, "can only call functions")
}

func TestParse_FunctionCall(t *testing.T) {
	program := parseOK(t, "foo(1, 2)\n")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expr.(*ast.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "foo", call.Name)
	assert.Len(t, call.Args, 2)
}

func TestParse_InputCallForm(t *testing.T) {
	program := parseOK(t, `input("prompt")` + "\n")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	call, ok := stmt.Expr.(*ast.FunctionCall)
	require.True(t, ok)
	assert.Equal(t, "input", call.Name)
	assert.Len(t, call.Args, 1)
}

func TestParse_ArrayAccess(t *testing.T) {
	program := parseOK(t, "arr[1]\n")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	access, ok := stmt.Expr.(*ast.ArrayAccess)
	require.True(t, ok)
	assert.Equal(t, "arr", access.Array.(*ast.Identifier).Name)
}

func TestParse_FunctionDeclaration(t *testing.T) {
	program := parseOK(t, "func add(a, b) {\n  return a + b\n}\n")
	decl, ok := program.Statements[0].(*ast.FunctionDeclaration)
	require.True(t, ok)
	assert.Equal(t, "add", decl.Name)
	assert.Equal(t, []string{"a", "b"}, decl.Params)
	require.Len(t, decl.Body.Statements, 1)
	_, ok = decl.Body.Statements[0].(*ast.ReturnStatement)
	assert.True(t, ok)
}

func TestParse_IfElseChain(t *testing.T) {
	program := parseOK(t, "if x > 0 {\n  print(1)\n} else if x < 0 {\n  print(2)\n} else {\n  print(3)\n}\n")
	ifStmt, ok := program.Statements[0].(*ast.IfStatement)
	require.True(t, ok)
	require.NotNil(t, ifStmt.Else)
	elseIf, ok := ifStmt.Else.(*ast.IfStatement)
	require.True(t, ok)
	require.NotNil(t, elseIf.Else)
}

func TestParse_WhileLoop(t *testing.T) {
	program := parseOK(t, "while x < 10 {\n  x += 1\n}\n")
	_, ok := program.Statements[0].(*ast.WhileStatement)
	assert.True(t, ok)
}

func TestParse_ForLoopAllClauses(t *testing.T) {
	program := parseOK(t, "for let i = 0; i < 10; i += 1 {\n  print(i)\n}\n")
	forStmt, ok := program.Statements[0].(*ast.ForStatement)
	require.True(t, ok)
	require.NotNil(t, forStmt.Init)
	require.NotNil(t, forStmt.Cond)
	require.NotNil(t, forStmt.Increment)
}

func TestParse_PrintStatement(t *testing.T) {
	program := parseOK(t, `print("hi", 1)` + "\n")
	printStmt, ok := program.Statements[0].(*ast.PrintStatement)
	require.True(t, ok)
	assert.Len(t, printStmt.Args, 2)
}

func TestParse_BreakAndContinue(t *testing.T) {
	program := parseOK(t, "while true {\n  break\n  continue\n}\n")
	while := program.Statements[0].(*ast.WhileStatement)
	body := while.Body.(*ast.Block)
	_, ok := body.Statements[0].(*ast.BreakStatement)
	assert.True(t, ok)
	_, ok = body.Statements[1].(*ast.ContinueStatement)
	assert.True(t, ok)
}

func TestParse_SemicolonAndNewlineBothTerminate(t *testing.T) {
	program := parseOK(t, "let x = 1; let y = 2\nlet z = 3")
	assert.Len(t, program.Statements, 3)
}

func TestParse_MissingTerminatorBeforeRightBraceIsFine(t *testing.T) {
	program := parseOK(t, "func f() {\n  return 1 }\n")
	decl := program.Statements[0].(*ast.FunctionDeclaration)
	assert.Len(t, decl.Body.Statements, 1)
}

func TestParse_ParenthesizedExpression(t *testing.T) {
	program := parseOK(t, "(1 + 2) * 3\n")
	stmt := program.Statements[0].(*ast.ExpressionStatement)
	mul, ok := stmt.Expr.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, "*", mul.Operator)
	_, ok = mul.Left.(*ast.BinaryOp)
	assert.True(t, ok)
}
