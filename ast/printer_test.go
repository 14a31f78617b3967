package ast

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrint_Deterministic(t *testing.T) {
	program := &Program{
		Statements: []Statement{
			&VariableDeclaration{
				Name: "x",
				Init: &NumberLiteral{IntValue: 5},
			},
			&PrintStatement{
				Args: []Expression{&Identifier{Name: "x"}},
			},
		},
	}

	first := Print(program)
	second := Print(program)
	assert.Equal(t, first, second)
	assert.True(t, strings.Contains(first, "VariableDeclaration(x)"))
	assert.True(t, strings.Contains(first, "PrintStatement"))
	assert.True(t, strings.Contains(first, "Identifier(x)"))
}
