// Package handlers contains the demo server's request handlers.
package handlers

import (
	"fmt"
	"net/http"
	"sort"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/zherve/ginvelope/apperr"
)

// Note is the demo resource.
type Note struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// NoteStore is a small in-memory store backing the demo routes.
type NoteStore struct {
	mu    sync.RWMutex
	notes map[string]Note
}

// NewNoteStore creates an empty store.
func NewNoteStore() *NoteStore {
	return &NoteStore{notes: make(map[string]Note)}
}

// List returns all notes sorted by title.
func (s *NoteStore) List() []Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Note, 0, len(s.notes))
	for _, n := range s.notes {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

// Get returns the note with the given id.
func (s *NoteStore) Get(id string) (Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.notes[id]
	return n, ok
}

// Put stores a note.
func (s *NoteStore) Put(n Note) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notes[n.ID] = n
}

// Delete removes the note with the given id, reporting whether it
// existed.
func (s *NoteStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.notes[id]
	delete(s.notes, id)
	return ok
}

// NoteHandler handles note-related HTTP requests.
type NoteHandler struct {
	store *NoteStore
}

// NewNoteHandler creates a new NoteHandler over the given store.
func NewNoteHandler(store *NoteStore) *NoteHandler {
	return &NoteHandler{store: store}
}

// CreateNoteRequest represents the request body for creating a note.
type CreateNoteRequest struct {
	Title string `json:"title" binding:"required"`
	Body  string `json:"body"`
}

// Create handles POST /notes.
func (h *NoteHandler) Create(c *gin.Context) error {
	var req CreateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return apperr.BadRequest(err.Error())
	}

	note := Note{ID: uuid.NewString(), Title: req.Title, Body: req.Body}
	h.store.Put(note)

	c.JSON(http.StatusCreated, note)
	return nil
}

// List handles GET /notes.
func (h *NoteHandler) List(c *gin.Context) error {
	c.JSON(http.StatusOK, h.store.List())
	return nil
}

// Get handles GET /notes/:id.
func (h *NoteHandler) Get(c *gin.Context) error {
	id := c.Param("id")
	note, ok := h.store.Get(id)
	if !ok {
		return apperr.NotFound(fmt.Sprintf("note %s not found", id))
	}

	c.JSON(http.StatusOK, note)
	return nil
}

// Delete handles DELETE /notes/:id.
func (h *NoteHandler) Delete(c *gin.Context) error {
	if !h.store.Delete(c.Param("id")) {
		return apperr.NotFound()
	}

	c.Status(http.StatusNoContent)
	return nil
}
