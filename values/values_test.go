package values

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTruthy(t *testing.T) {
	assert.False(t, IsTruthy(NullValue))
	assert.False(t, IsTruthy(&Integer{Value: 0}))
	assert.True(t, IsTruthy(&Integer{Value: 1}))
	assert.False(t, IsTruthy(&String{Value: ""}))
	assert.True(t, IsTruthy(&String{Value: "x"}))
	assert.False(t, IsTruthy(&Array{}))
	assert.True(t, IsTruthy(&Array{Elements: []Value{&Null{}}}))
}

func TestStringConversion(t *testing.T) {
	assert.Equal(t, "null", NullValue.String())
	assert.Equal(t, "true", TrueValue.String())
	assert.Equal(t, "false", FalseValue.String())
	assert.Equal(t, "5.5", (&Float{Value: 5.5}).String())
	assert.Equal(t, "5.0", (&Float{Value: 5}).String())
	assert.Equal(t, "[1, 2]", (&Array{Elements: []Value{&Integer{Value: 1}, &Integer{Value: 2}}}).String())
}

func TestArraysAreReferenceShared(t *testing.T) {
	original := &Array{Elements: []Value{&Integer{Value: 1}}}
	alias := original
	alias.Elements[0] = &Integer{Value: 99}
	assert.Equal(t, int64(99), original.Elements[0].(*Integer).Value)
}
