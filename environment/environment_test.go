package environment

import (
	"testing"

	"github.com/akashmaji946/minilang/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("x", &values.Integer{Value: 1})
	v, ok := env.Get("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.(*values.Integer).Value)
}

func TestGetWalksParentChain(t *testing.T) {
	global := New(nil)
	global.Define("x", &values.Integer{Value: 1})
	child := New(global)
	v, ok := child.Get("x")
	require.True(t, ok)
	assert.Equal(t, int64(1), v.(*values.Integer).Value)
}

func TestDefineShadowsOuterBinding(t *testing.T) {
	global := New(nil)
	global.Define("x", &values.Integer{Value: 1})
	child := New(global)
	child.Define("x", &values.Integer{Value: 2})

	childVal, _ := child.Get("x")
	globalVal, _ := global.Get("x")
	assert.Equal(t, int64(2), childVal.(*values.Integer).Value)
	assert.Equal(t, int64(1), globalVal.(*values.Integer).Value)
}

func TestSetMutatesOwningScope(t *testing.T) {
	global := New(nil)
	global.Define("x", &values.Integer{Value: 1})
	child := New(global)

	ok := child.Set("x", &values.Integer{Value: 42})
	require.True(t, ok)

	v, _ := global.Get("x")
	assert.Equal(t, int64(42), v.(*values.Integer).Value)
}

func TestSetFailsWhenUndefined(t *testing.T) {
	env := New(nil)
	assert.False(t, env.Set("missing", &values.Null{}))
}

func TestExists(t *testing.T) {
	env := New(nil)
	assert.False(t, env.Exists("x"))
	env.Define("x", values.NullValue)
	assert.True(t, env.Exists("x"))
}
