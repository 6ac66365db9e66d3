package shape

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList_ZeroValueIsUnset(t *testing.T) {
	var l List[string]

	assert.False(t, l.IsSet())
	assert.Nil(t, l.Items())
	assert.Equal(t, 0, l.Len())
}

func TestList_SetCopiesInput(t *testing.T) {
	in := []string{"a", "b", "a"}
	var l List[string]
	l.Set(in)

	in[0] = "mutated"

	require.True(t, l.IsSet())
	assert.Equal(t, []string{"a", "b", "a"}, l.Items())
}

func TestList_SetNilUnsets(t *testing.T) {
	l := NewList("a")
	l.Set(nil)

	assert.False(t, l.IsSet())
	assert.Nil(t, l.Items())
}

func TestList_SetEmptyIsPresent(t *testing.T) {
	var l List[string]
	l.Set([]string{})

	assert.True(t, l.IsSet())
	assert.NotNil(t, l.Items())
	assert.Empty(t, l.Items())
}

func TestList_AppendCreatesLazily(t *testing.T) {
	var l List[int]
	l.Append()
	assert.True(t, l.IsSet(), "appending nothing still marks the list present")

	l.Append(1, 2)
	l.Append(3)
	assert.Equal(t, []int{1, 2, 3}, l.Items())
}

func TestList_CloneIsIndependent(t *testing.T) {
	l := NewList("a", "b")
	c := l.Clone()
	c.Append("c")
	c.Items()[0] = "z"

	assert.Equal(t, []string{"a", "b"}, l.Items())
	assert.Equal(t, []string{"z", "b", "c"}, c.Items())

	var unset List[string]
	assert.False(t, unset.Clone().IsSet())
}
