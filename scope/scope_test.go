package scope

import (
	"testing"

	"github.com/golci/lci/objects"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclareAndLookUp(t *testing.T) {
	s := New(nil)
	require.Nil(t, s.Declare("X", objects.Int{V: 5}, "t", 1))
	v, ok := s.LookUp("X")
	require.True(t, ok)
	assert.Equal(t, objects.Int{V: 5}, v)
}

func TestRedeclareInSameScopeErrors(t *testing.T) {
	s := New(nil)
	require.Nil(t, s.Declare("X", objects.Int{V: 1}, "t", 1))
	err := s.Declare("X", objects.Int{V: 2}, "t", 2)
	require.NotNil(t, err)
	assert.Equal(t, 501, err.ExitCode())
}

func TestShadowingInChildScopeIsAllowed(t *testing.T) {
	parent := New(nil)
	require.Nil(t, parent.Declare("X", objects.Int{V: 1}, "t", 1))
	child := New(parent)
	require.Nil(t, child.Declare("X", objects.Int{V: 2}, "t", 1))

	v, ok := child.LookUp("X")
	require.True(t, ok)
	assert.Equal(t, objects.Int{V: 2}, v)

	pv, ok := parent.LookUp("X")
	require.True(t, ok)
	assert.Equal(t, objects.Int{V: 1}, pv)
}

func TestAssignFindsAncestorBinding(t *testing.T) {
	parent := New(nil)
	require.Nil(t, parent.Declare("X", objects.Int{V: 1}, "t", 1))
	child := New(parent)

	require.Nil(t, child.Assign("X", objects.Int{V: 9}, "t", 1))
	v, _ := parent.LookUp("X")
	assert.Equal(t, objects.Int{V: 9}, v)
}

func TestAssignUndeclaredErrors(t *testing.T) {
	s := New(nil)
	err := s.Assign("X", objects.Int{V: 1}, "t", 1)
	require.NotNil(t, err)
	assert.Equal(t, 502, err.ExitCode())
}

func TestDeallocateRemovesBinding(t *testing.T) {
	s := New(nil)
	require.Nil(t, s.Declare("X", objects.Int{V: 1}, "t", 1))
	require.Nil(t, s.Deallocate("X", "t", 1))
	_, ok := s.LookUp("X")
	assert.False(t, ok)
}

func TestExportSnapshotsOwnBindingsOnly(t *testing.T) {
	parent := New(nil)
	require.Nil(t, parent.Declare("P", objects.Int{V: 1}, "t", 1))
	child := New(parent)
	require.Nil(t, child.Declare("C", objects.Int{V: 2}, "t", 1))

	exported := child.Export()
	assert.Equal(t, map[string]objects.Value{"C": objects.Int{V: 2}}, exported)
}
