package scope

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/golox-lang/golox/objects"
)

// TestScope_DefineAndGet checks binding and lookup in a single frame.
func TestScope_DefineAndGet(t *testing.T) {
	globals := NewScope(nil)
	globals.Define("a", &objects.Number{Value: 1})

	value, ok := globals.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "1", value.ToString())

	_, ok = globals.Get("missing")
	assert.False(t, ok)
}

// TestScope_Redefine checks Define replaces an existing binding in the
// same frame, which is what global redeclaration needs.
func TestScope_Redefine(t *testing.T) {
	globals := NewScope(nil)
	globals.Define("a", &objects.Number{Value: 1})
	globals.Define("a", &objects.String{Value: "now a string"})

	value, _ := globals.Get("a")
	assert.Equal(t, "now a string", value.ToString())
}

// TestScope_ChainLookup checks lookup walks toward the globals frame
// and inner frames shadow outer ones.
func TestScope_ChainLookup(t *testing.T) {
	globals := NewScope(nil)
	globals.Define("a", &objects.String{Value: "global"})
	globals.Define("b", &objects.String{Value: "global b"})

	inner := NewScope(globals)
	inner.Define("a", &objects.String{Value: "shadow"})

	value, _ := inner.Get("a")
	assert.Equal(t, "shadow", value.ToString())
	value, _ = inner.Get("b")
	assert.Equal(t, "global b", value.ToString())

	// The outer frame is untouched by the shadow
	value, _ = globals.Get("a")
	assert.Equal(t, "global", value.ToString())
}

// TestScope_Assign checks assignment writes into the owning frame and
// never creates bindings.
func TestScope_Assign(t *testing.T) {
	globals := NewScope(nil)
	globals.Define("a", &objects.Number{Value: 1})
	inner := NewScope(globals)

	assert.True(t, inner.Assign("a", &objects.Number{Value: 2}))
	value, _ := globals.Get("a")
	assert.Equal(t, "2", value.ToString(), "assignment reached the owning frame")

	assert.False(t, inner.Assign("nope", &objects.Number{Value: 3}))
	_, ok := inner.Get("nope")
	assert.False(t, ok, "failed assignment must not create a binding")
}

// TestScope_GetAtAssignAt checks depth-indexed access lands on the
// exact frame regardless of shadowing.
func TestScope_GetAtAssignAt(t *testing.T) {
	globals := NewScope(nil)
	globals.Define("x", &objects.String{Value: "outermost"})

	middle := NewScope(globals)
	middle.Define("x", &objects.String{Value: "middle"})

	inner := NewScope(middle)
	inner.Define("x", &objects.String{Value: "inner"})

	assert.Equal(t, "inner", inner.GetAt(0, "x").ToString())
	assert.Equal(t, "middle", inner.GetAt(1, "x").ToString())
	assert.Equal(t, "outermost", inner.GetAt(2, "x").ToString())

	inner.AssignAt(1, "x", &objects.String{Value: "replaced"})
	assert.Equal(t, "replaced", middle.Variables["x"].ToString())
	assert.Equal(t, "inner", inner.Variables["x"].ToString(), "inner frame untouched")
}

// TestScope_SharedReference checks two closures over the same frame see
// each other's writes; frames are captured by reference, never copied.
func TestScope_SharedReference(t *testing.T) {
	parent := NewScope(nil)
	parent.Define("count", &objects.Number{Value: 0})

	first := NewScope(parent)
	second := NewScope(parent)

	first.Assign("count", &objects.Number{Value: 41})
	value, _ := second.Get("count")
	assert.Equal(t, "41", value.ToString())
}
