package client

import (
	"context"
	"net/http"

	"github.com/starfield-blog/starfield/internal/db/models"
)

// NoteDraft is the create payload for a note.
type NoteDraft struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Tags    []string `json:"tags"`
}

// ListNotes returns all notes, newest first.
func (c *Client) ListNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note

	if err := c.do(ctx, http.MethodGet, "/api/notes", nil, &notes); err != nil {
		return nil, err
	}

	return notes, nil
}

// CreateNote stores a new note and returns its id.
func (c *Client) CreateNote(ctx context.Context, draft NoteDraft) (uint64, error) {
	var resp idResponse

	if err := c.do(ctx, http.MethodPost, "/api/notes", draft, &resp); err != nil {
		return 0, err
	}

	return resp.ID, nil
}

// DeleteNote removes the note. Deleting an unknown id succeeds.
func (c *Client) DeleteNote(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, apiPath("/api/notes/%d", id), nil, nil)
}

// LikeNote bumps the note's like counter by one.
func (c *Client) LikeNote(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodPost, apiPath("/api/notes/%d/like", id), nil, nil)
}
