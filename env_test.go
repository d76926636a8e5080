package tack

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnvLookup(t *testing.T) {
	e := NewEnv()

	assert.Equal(t, EvalError("Not in scope"), e.Lookup("missing"))
	assert.False(t, e.Contains("missing"))
	assert.True(t, e.Contains("+"))

	e.Define("a", Number(1))
	assert.Equal(t, Number(1), e.Lookup("a"))

	child := e.push()
	child.insertLocal("a", Number(2))
	assert.Equal(t, Number(2), child.Lookup("a"))
	assert.Equal(t, Number(1), e.Lookup("a"))

	grandchild := child.push()
	assert.Equal(t, Number(2), grandchild.Lookup("a"))
	grandchild.insertLocal("b", Number(3))
	assert.True(t, grandchild.Contains("b"))
	assert.False(t, child.Contains("b"))
}

func TestEnvSharedRoot(t *testing.T) {
	e := NewEnv()
	child := e.push().push()

	child.insertGlobal("g", String("global"))
	assert.Equal(t, String("global"), e.Lookup("g"))

	// Locals shadow globals.
	child.insertLocal("g", String("local"))
	assert.Equal(t, String("local"), child.Lookup("g"))
	assert.Equal(t, String("global"), e.Lookup("g"))
}

func TestEnvInsertLocalAtRoot(t *testing.T) {
	e := NewEnv()
	e.insertLocal("r", Number(9))
	assert.Equal(t, Number(9), e.push().Lookup("r"))
}

func TestEnvsAreIndependent(t *testing.T) {
	e1, e2 := NewEnv(), NewEnv()
	e1.EvalString("(def a 1)")
	assert.True(t, e1.Contains("a"))
	assert.False(t, e2.Contains("a"))

	// Each root gets its own natives.
	assert.False(t, Equal(e1.Lookup("+"), e2.Lookup("+")))
}

func TestWithBindings(t *testing.T) {
	e := NewEnv(WithBindings(map[Symbol]Value{"answer": Number(42), "+": Number(0)}))
	assert.Equal(t, Number(42), e.EvalString("answer"))
	assert.Equal(t, Number(0), e.Lookup("+"))
}
