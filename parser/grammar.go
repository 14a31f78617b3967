/*
File    : minilang/parser/grammar.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strconv"

	"github.com/akashmaji946/minilang/ast"
	"github.com/akashmaji946/minilang/lexer"
)

// parseDeclaration implements:
//
//	declaration := "let" IDENT ("=" expression)? term
//	             | "func" IDENT "(" params? ")" "{" block "}" term
//	             | statement
func (p *Parser) parseDeclaration() ast.Statement {
	var stmt ast.Statement
	switch {
	case p.check(lexer.LET_KEY):
		stmt = p.parseLetDeclaration()
	case p.check(lexer.FUNC_KEY):
		stmt = p.parseFunctionDeclaration()
	default:
		stmt = p.parseStatement()
	}
	if stmt == nil {
		p.synchronize()
	}
	return stmt
}

func (p *Parser) parseLetDeclaration() ast.Statement {
	position := ast.NewPos(p.curr.Line, p.curr.Column)
	p.advance() // consume "let"

	if !p.check(lexer.IDENTIFIER_ID) {
		p.addError("expected identifier after 'let', got %s", p.curr.Type)
		return nil
	}
	name := p.curr.Literal
	p.advance()

	var init ast.Expression
	if p.match(lexer.ASSIGN_OP) {
		init = p.parseExpression()
	}
	p.skipTerminator()
	return &ast.VariableDeclaration{Position: position, Name: name, Init: init}
}

func (p *Parser) parseFunctionDeclaration() ast.Statement {
	position := ast.NewPos(p.curr.Line, p.curr.Column)
	p.advance() // consume "func"

	if !p.check(lexer.IDENTIFIER_ID) {
		p.addError("expected function name, got %s", p.curr.Type)
		return nil
	}
	name := p.curr.Literal
	p.advance()

	if !p.consume(lexer.LEFT_PAREN, "expected '(' after function name") {
		return nil
	}
	var params []string
	for !p.check(lexer.RIGHT_PAREN) && !p.check(lexer.EOF_TYPE) {
		if !p.check(lexer.IDENTIFIER_ID) {
			p.addError("expected parameter name, got %s", p.curr.Type)
			return nil
		}
		params = append(params, p.curr.Literal)
		p.advance()
		if !p.match(lexer.COMMA_DELIM) {
			break
		}
	}
	if !p.consume(lexer.RIGHT_PAREN, "expected ')' after parameters") {
		return nil
	}
	if !p.consume(lexer.LEFT_BRACE, "expected '{' to start function body") {
		return nil
	}
	body := p.parseBlock()
	p.skipTerminator()

	return &ast.FunctionDeclaration{Position: position, Name: name, Params: params, Body: body}
}

// parseStatement implements:
//
//	statement := if | while | for | return | break | continue
//	           | print | "{" block "}" | expression term
func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.check(lexer.IF_KEY):
		return p.parseIfStatement()
	case p.check(lexer.WHILE_KEY):
		return p.parseWhileStatement()
	case p.check(lexer.FOR_KEY):
		return p.parseForStatement()
	case p.check(lexer.RETURN_KEY):
		return p.parseReturnStatement()
	case p.check(lexer.BREAK_KEY):
		position := ast.NewPos(p.curr.Line, p.curr.Column)
		p.advance()
		p.skipTerminator()
		return &ast.BreakStatement{Position: position}
	case p.check(lexer.CONTINUE_KEY):
		position := ast.NewPos(p.curr.Line, p.curr.Column)
		p.advance()
		p.skipTerminator()
		return &ast.ContinueStatement{Position: position}
	case p.check(lexer.PRINT_KEY):
		return p.parsePrintStatement()
	case p.check(lexer.LEFT_BRACE):
		p.advance()
		block := p.parseBlock()
		return block
	default:
		return p.parseExpressionStatement()
	}
}

// parseBlock parses statements until a matching RBRACE (already positioned
// just after the opening LBRACE), consuming the RBRACE itself.
func (p *Parser) parseBlock() *ast.Block {
	position := ast.NewPos(p.curr.Line, p.curr.Column)
	block := &ast.Block{Position: position, Statements: make([]ast.Statement, 0)}
	p.skipNewlines()
	for !p.check(lexer.RIGHT_BRACE) && !p.check(lexer.EOF_TYPE) {
		stmt := p.parseDeclaration()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		p.skipNewlines()
	}
	p.consume(lexer.RIGHT_BRACE, "expected '}' to close block")
	return block
}

// parseIfStatement implements:
//
//	if := "if" ["("] expression [")"] "{" block "}"
//	      ( "else" ( if | "{" block "}" ) )?
func (p *Parser) parseIfStatement() ast.Statement {
	position := ast.NewPos(p.curr.Line, p.curr.Column)
	p.advance() // consume "if"

	hasParen := p.match(lexer.LEFT_PAREN)
	cond := p.parseExpression()
	if hasParen {
		p.consume(lexer.RIGHT_PAREN, "expected ')' after condition")
	}
	if !p.consume(lexer.LEFT_BRACE, "expected '{' to start if body") {
		return nil
	}
	thenBlock := p.parseBlock()

	var elseStmt ast.Statement
	p.skipNewlines()
	if p.match(lexer.ELSE_KEY) {
		if p.check(lexer.IF_KEY) {
			elseStmt = p.parseIfStatement()
		} else if p.consume(lexer.LEFT_BRACE, "expected '{' to start else body") {
			elseStmt = p.parseBlock()
		}
	}
	return &ast.IfStatement{Position: position, Cond: cond, Then: thenBlock, Else: elseStmt}
}

// parseWhileStatement implements:
//
//	while := "while" ["("] expression [")"] "{" block "}"
func (p *Parser) parseWhileStatement() ast.Statement {
	position := ast.NewPos(p.curr.Line, p.curr.Column)
	p.advance() // consume "while"

	hasParen := p.match(lexer.LEFT_PAREN)
	cond := p.parseExpression()
	if hasParen {
		p.consume(lexer.RIGHT_PAREN, "expected ')' after condition")
	}
	if !p.consume(lexer.LEFT_BRACE, "expected '{' to start while body") {
		return nil
	}
	body := p.parseBlock()
	return &ast.WhileStatement{Position: position, Cond: cond, Body: body}
}

// parseForStatement implements:
//
//	for     := "for" ["("] forInit ";" expression? ";" expression? [")"] "{" block "}"
//	forInit := empty | "let" IDENT ("=" expression)? | expression
func (p *Parser) parseForStatement() ast.Statement {
	position := ast.NewPos(p.curr.Line, p.curr.Column)
	p.advance() // consume "for"

	hasParen := p.match(lexer.LEFT_PAREN)

	var init ast.Statement
	if !p.check(lexer.SEMICOLON_DELIM) {
		if p.check(lexer.LET_KEY) {
			initPos := ast.NewPos(p.curr.Line, p.curr.Column)
			p.advance()
			if !p.check(lexer.IDENTIFIER_ID) {
				p.addError("expected identifier after 'let', got %s", p.curr.Type)
				return nil
			}
			name := p.curr.Literal
			p.advance()
			var initExpr ast.Expression
			if p.match(lexer.ASSIGN_OP) {
				initExpr = p.parseExpression()
			}
			init = &ast.VariableDeclaration{Position: initPos, Name: name, Init: initExpr}
		} else {
			exprPos := ast.NewPos(p.curr.Line, p.curr.Column)
			init = &ast.ExpressionStatement{Position: exprPos, Expr: p.parseExpression()}
		}
	}
	p.consume(lexer.SEMICOLON_DELIM, "expected ';' after for-loop initializer")

	var cond ast.Expression
	if !p.check(lexer.SEMICOLON_DELIM) {
		cond = p.parseExpression()
	}
	p.consume(lexer.SEMICOLON_DELIM, "expected ';' after for-loop condition")

	var increment ast.Expression
	if !p.check(lexer.RIGHT_PAREN) && !p.check(lexer.LEFT_BRACE) {
		increment = p.parseExpression()
	}
	if hasParen {
		p.consume(lexer.RIGHT_PAREN, "expected ')' after for-loop clauses")
	}
	if !p.consume(lexer.LEFT_BRACE, "expected '{' to start for body") {
		return nil
	}
	body := p.parseBlock()
	return &ast.ForStatement{Position: position, Init: init, Cond: cond, Increment: increment, Body: body}
}

// parseReturnStatement implements: return := "return" expression? term
func (p *Parser) parseReturnStatement() ast.Statement {
	position := ast.NewPos(p.curr.Line, p.curr.Column)
	p.advance() // consume "return"

	var value ast.Expression
	if !p.check(lexer.SEMICOLON_DELIM, lexer.NEWLINE_TYPE, lexer.RIGHT_BRACE, lexer.EOF_TYPE) {
		value = p.parseExpression()
	}
	p.skipTerminator()
	return &ast.ReturnStatement{Position: position, Value: value}
}

// parsePrintStatement implements: print := "print" "(" args? ")" term
func (p *Parser) parsePrintStatement() ast.Statement {
	position := ast.NewPos(p.curr.Line, p.curr.Column)
	p.advance() // consume "print"

	if !p.consume(lexer.LEFT_PAREN, "expected '(' after 'print'") {
		return nil
	}
	args := p.parseArgs()
	p.consume(lexer.RIGHT_PAREN, "expected ')' after print arguments")
	p.skipTerminator()
	return &ast.PrintStatement{Position: position, Args: args}
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	position := ast.NewPos(p.curr.Line, p.curr.Column)
	expr := p.parseExpression()
	p.skipTerminator()
	return &ast.ExpressionStatement{Position: position, Expr: expr}
}

func (p *Parser) parseArgs() []ast.Expression {
	args := make([]ast.Expression, 0)
	if p.check(lexer.RIGHT_PAREN) {
		return args
	}
	args = append(args, p.parseExpression())
	for p.match(lexer.COMMA_DELIM) {
		args = append(args, p.parseExpression())
	}
	return args
}

// ---- Expression grammar ----

// parseExpression := assignment
func (p *Parser) parseExpression() ast.Expression {
	return p.parseAssignment()
}

// parseAssignment implements:
//
//	assignment := logicalOr ( ("=" | "+=" | "-=" | "*=" | "/=") assignment )?
//
// The assignment-target rule: the left side must be an Identifier
// (-> Assignment) or an ArrayAccess (-> ArrayIndexAssignment); anything
// else is "invalid assignment target".
func (p *Parser) parseAssignment() ast.Expression {
	left := p.parseLogicalOr()

	if !p.check(lexer.ASSIGN_OP, lexer.PLUS_ASSIGN, lexer.MINUS_ASSIGN, lexer.MUL_ASSIGN, lexer.DIV_ASSIGN) {
		return left
	}
	position := ast.NewPos(p.curr.Line, p.curr.Column)
	operator := string(p.curr.Type)
	p.advance()
	value := p.parseAssignment()

	switch target := left.(type) {
	case *ast.Identifier:
		return &ast.Assignment{Position: position, Target: target.Name, Operator: operator, Value: value}
	case *ast.ArrayAccess:
		return &ast.ArrayIndexAssignment{Position: position, Array: target.Array, Index: target.Index, Operator: operator, Value: value}
	default:
		p.addError("invalid assignment target")
		return left
	}
}

func (p *Parser) parseLogicalOr() ast.Expression {
	left := p.parseLogicalAnd()
	for p.check(lexer.OR_KEY) {
		position := ast.NewPos(p.curr.Line, p.curr.Column)
		p.advance()
		right := p.parseLogicalAnd()
		left = &ast.BinaryOp{Position: position, Left: left, Operator: "or", Right: right}
	}
	return left
}

func (p *Parser) parseLogicalAnd() ast.Expression {
	left := p.parseEquality()
	for p.check(lexer.AND_KEY) {
		position := ast.NewPos(p.curr.Line, p.curr.Column)
		p.advance()
		right := p.parseEquality()
		left = &ast.BinaryOp{Position: position, Left: left, Operator: "and", Right: right}
	}
	return left
}

func (p *Parser) parseEquality() ast.Expression {
	left := p.parseComparison()
	for p.check(lexer.EQ_OP, lexer.NE_OP) {
		position := ast.NewPos(p.curr.Line, p.curr.Column)
		operator := string(p.curr.Type)
		p.advance()
		right := p.parseComparison()
		left = &ast.BinaryOp{Position: position, Left: left, Operator: operator, Right: right}
	}
	return left
}

func (p *Parser) parseComparison() ast.Expression {
	left := p.parseAdditive()
	for p.check(lexer.LT_OP, lexer.GT_OP, lexer.LE_OP, lexer.GE_OP) {
		position := ast.NewPos(p.curr.Line, p.curr.Column)
		operator := string(p.curr.Type)
		p.advance()
		right := p.parseAdditive()
		left = &ast.BinaryOp{Position: position, Left: left, Operator: operator, Right: right}
	}
	return left
}

func (p *Parser) parseAdditive() ast.Expression {
	left := p.parseMultiplicative()
	for p.check(lexer.PLUS_OP, lexer.MINUS_OP) {
		position := ast.NewPos(p.curr.Line, p.curr.Column)
		operator := string(p.curr.Type)
		p.advance()
		right := p.parseMultiplicative()
		left = &ast.BinaryOp{Position: position, Left: left, Operator: operator, Right: right}
	}
	return left
}

func (p *Parser) parseMultiplicative() ast.Expression {
	left := p.parsePower()
	for p.check(lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP) {
		position := ast.NewPos(p.curr.Line, p.curr.Column)
		operator := string(p.curr.Type)
		p.advance()
		right := p.parsePower()
		left = &ast.BinaryOp{Position: position, Left: left, Operator: operator, Right: right}
	}
	return left
}

// parsePower implements power := unary ( "**" power )? — right-associative
// via a right-recursive call back into parsePower itself.
func (p *Parser) parsePower() ast.Expression {
	left := p.parseUnary()
	if p.check(lexer.POW_OP) {
		position := ast.NewPos(p.curr.Line, p.curr.Column)
		p.advance()
		right := p.parsePower()
		return &ast.BinaryOp{Position: position, Left: left, Operator: "**", Right: right}
	}
	return left
}

// parseUnary implements unary := ("not"|"!"|"-") unary | postfix
func (p *Parser) parseUnary() ast.Expression {
	if p.check(lexer.NOT_KEY, lexer.MINUS_OP) {
		position := ast.NewPos(p.curr.Line, p.curr.Column)
		operator := p.curr.Literal
		if p.curr.Type == lexer.NOT_KEY {
			operator = "not"
		}
		p.advance()
		operand := p.parseUnary()
		return &ast.UnaryOp{Position: position, Operator: operator, Operand: operand}
	}
	return p.parsePostfix()
}

// parsePostfix implements:
//
//	postfix := primary ( "(" args? ")" | "[" expression "]" )*
//
// The call-target rule is enforced here: a call is only ever legal
// directly on a bare Identifier. A call applied to anything else
// (e.g. the result of an index or a parenthesized expression) is a parse
// error — this precludes `f()()` and `arr[0]()`, a known limitation
// carried forward from the source grammar.
func (p *Parser) parsePostfix() ast.Expression {
	parenthesized := p.check(lexer.LEFT_PAREN)
	expr := p.parsePrimary()
	for {
		switch {
		case p.check(lexer.LEFT_PAREN):
			position := ast.NewPos(p.curr.Line, p.curr.Column)
			p.advance()
			args := p.parseArgs()
			p.consume(lexer.RIGHT_PAREN, "expected ')' after call arguments")
			ident, ok := expr.(*ast.Identifier)
			if !ok || parenthesized {
				p.addError("can only call functions")
				continue
			}
			expr = &ast.FunctionCall{Position: position, Name: ident.Name, Args: args}
		case p.check(lexer.LEFT_BRACKET):
			position := ast.NewPos(p.curr.Line, p.curr.Column)
			p.advance()
			index := p.parseExpression()
			p.consume(lexer.RIGHT_BRACKET, "expected ']' after index expression")
			expr = &ast.ArrayAccess{Position: position, Array: expr, Index: index}
		default:
			return expr
		}
	}
}

// parsePrimary implements:
//
//	primary := NUMBER | STRING | BOOLEAN | "null" | IDENT
//	         | "(" expression ")"
//	         | "[" (expression ("," expression)*)? "]"
//	         | "input" "(" expression? ")"
func (p *Parser) parsePrimary() ast.Expression {
	position := ast.NewPos(p.curr.Line, p.curr.Column)

	switch {
	case p.check(lexer.INT_LIT):
		value, _ := strconv.ParseInt(p.curr.Literal, 10, 64)
		p.advance()
		return &ast.NumberLiteral{Position: position, IsFloat: false, IntValue: value}
	case p.check(lexer.FLOAT_LIT):
		value, _ := strconv.ParseFloat(p.curr.Literal, 64)
		p.advance()
		return &ast.NumberLiteral{Position: position, IsFloat: true, FloatValue: value}
	case p.check(lexer.STRING_LIT):
		value := p.curr.Literal
		p.advance()
		return &ast.StringLiteral{Position: position, Value: value}
	case p.check(lexer.BOOL_LIT):
		value := p.curr.Literal == "true"
		p.advance()
		return &ast.BooleanLiteral{Position: position, Value: value}
	case p.check(lexer.NULL_KEY):
		p.advance()
		return &ast.NullLiteral{Position: position}
	case p.check(lexer.INPUT_KEY):
		p.advance()
		if !p.consume(lexer.LEFT_PAREN, "expected '(' after 'input'") {
			return &ast.NullLiteral{Position: position}
		}
		var args []ast.Expression
		if !p.check(lexer.RIGHT_PAREN) {
			args = append(args, p.parseExpression())
		}
		p.consume(lexer.RIGHT_PAREN, "expected ')' after input argument")
		return &ast.FunctionCall{Position: position, Name: "input", Args: args}
	case p.check(lexer.IDENTIFIER_ID):
		name := p.curr.Literal
		p.advance()
		return &ast.Identifier{Position: position, Name: name}
	case p.check(lexer.LEFT_PAREN):
		p.advance()
		expr := p.parseExpression()
		p.consume(lexer.RIGHT_PAREN, "expected ')' after expression")
		return expr
	case p.check(lexer.LEFT_BRACKET):
		p.advance()
		elements := make([]ast.Expression, 0)
		if !p.check(lexer.RIGHT_BRACKET) {
			elements = append(elements, p.parseExpression())
			for p.match(lexer.COMMA_DELIM) {
				elements = append(elements, p.parseExpression())
			}
		}
		p.consume(lexer.RIGHT_BRACKET, "expected ']' after array literal")
		return &ast.ArrayLiteral{Position: position, Elements: elements}
	default:
		p.addError("unexpected token %s", p.curr.Type)
		p.advance()
		return &ast.NullLiteral{Position: position}
	}
}
