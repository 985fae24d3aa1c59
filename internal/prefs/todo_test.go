package prefs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddTodo(t *testing.T) {
	backend := NewMemoryBackend()
	s := New(backend)

	item, err := s.AddTodo("water the plants")
	require.NoError(t, err)
	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "water the plants", item.Text)
	assert.False(t, item.Completed)

	todos := s.Todos()
	require.Len(t, todos, 3)
	assert.Equal(t, item.ID, todos[2].ID, "new todos append at the end")

	// Survives rehydration.
	assert.Len(t, New(backend).Todos(), 3)
}

func TestToggleTodo(t *testing.T) {
	s := New(NewMemoryBackend())

	require.NoError(t, s.ToggleTodo("1"))
	assert.True(t, s.Todos()[0].Completed)

	require.NoError(t, s.ToggleTodo("1"))
	assert.False(t, s.Todos()[0].Completed)

	require.NoError(t, s.ToggleTodo("no-such-id"), "unknown ids are ignored")
}

func TestRemoveTodo(t *testing.T) {
	s := New(NewMemoryBackend())

	require.NoError(t, s.RemoveTodo("1"))

	todos := s.Todos()
	require.Len(t, todos, 1)
	assert.Equal(t, "2", todos[0].ID)

	require.NoError(t, s.RemoveTodo("no-such-id"))
	assert.Len(t, s.Todos(), 1)
}
