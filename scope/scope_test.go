/*
File    : dhadLang/scope/scope_test.go
Author  : t-011
*/
package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestScope_BindAndLookUp checks basic binding and resolution.
func TestScope_BindAndLookUp(t *testing.T) {
	s := NewScope(nil)

	redeclared := s.Bind("x", Var{StackLoc: 1})
	assert.False(t, redeclared)

	v, ok := s.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, 1, v.StackLoc)

	_, ok = s.LookUp("y")
	assert.False(t, ok)
}

// TestScope_BindRejectsRedeclaration checks that a second Bind of the
// same name in the same scope reports the clash and keeps the original.
func TestScope_BindRejectsRedeclaration(t *testing.T) {
	s := NewScope(nil)

	assert.False(t, s.Bind("x", Var{StackLoc: 1}))
	assert.True(t, s.Bind("x", Var{StackLoc: 9}))

	v, ok := s.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, 1, v.StackLoc)
	assert.Equal(t, 1, s.Size())
}

// TestScope_ChainLookUp checks that lookup walks outward and that inner
// bindings shadow outer ones.
func TestScope_ChainLookUp(t *testing.T) {
	outer := NewScope(nil)
	outer.Bind("x", Var{StackLoc: 1})
	outer.Bind("y", Var{StackLoc: 2})

	inner := NewScope(outer)
	inner.Bind("x", Var{StackLoc: 5}) // shadows outer x

	v, ok := inner.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, 5, v.StackLoc)

	v, ok = inner.LookUp("y")
	assert.True(t, ok)
	assert.Equal(t, 2, v.StackLoc)

	// outer scope is unaffected by the shadow
	v, ok = outer.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, 1, v.StackLoc)
}

// TestScope_Declared checks visibility across the whole chain, which is
// what `let` uses to reject redeclarations.
func TestScope_Declared(t *testing.T) {
	outer := NewScope(nil)
	outer.Bind("x", Var{StackLoc: 1})

	inner := NewScope(outer)
	assert.True(t, inner.Declared("x"))
	assert.False(t, inner.Declared("y"))
}

// TestScope_Size counts this scope's bindings only, not the chain's.
func TestScope_Size(t *testing.T) {
	outer := NewScope(nil)
	outer.Bind("a", Var{StackLoc: 1})
	outer.Bind("b", Var{StackLoc: 2})

	inner := NewScope(outer)
	inner.Bind("c", Var{StackLoc: 3})

	assert.Equal(t, 2, outer.Size())
	assert.Equal(t, 1, inner.Size())
}
