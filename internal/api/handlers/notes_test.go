package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteStore(t *testing.T) {
	store := NewNoteStore()

	store.Put(Note{ID: "b", Title: "beta"})
	store.Put(Note{ID: "a", Title: "alpha"})

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, "alpha", list[0].Title)
	assert.Equal(t, "beta", list[1].Title)

	got, ok := store.Get("a")
	require.True(t, ok)
	assert.Equal(t, "alpha", got.Title)

	assert.True(t, store.Delete("a"))
	assert.False(t, store.Delete("a"))

	_, ok = store.Get("a")
	assert.False(t, ok)
}

func TestNoteStore_PutOverwrites(t *testing.T) {
	store := NewNoteStore()

	store.Put(Note{ID: "a", Title: "first"})
	store.Put(Note{ID: "a", Title: "second"})

	got, ok := store.Get("a")
	require.True(t, ok)
	assert.Equal(t, "second", got.Title)
	assert.Len(t, store.List(), 1)
}
