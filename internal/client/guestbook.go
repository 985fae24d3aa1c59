package client

import (
	"context"
	"net/http"
	"time"

	"github.com/starfield-blog/starfield/internal/db/models"
)

// GuestbookDraft is the create payload for a guestbook entry.
type GuestbookDraft struct {
	Author  string `json:"author"`
	Content string `json:"content"`
	Emoji   string `json:"emoji"`
}

// LocalGuestbookEntry is a device-local stand-in for an entry whose create
// call never reached the server.
type LocalGuestbookEntry struct {
	TempID    string    `json:"temp_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Emoji     string    `json:"emoji"`
	CreatedAt time.Time `json:"created_at"`
}

// ListGuestbook returns all guestbook entries, newest first.
func (c *Client) ListGuestbook(ctx context.Context) ([]models.GuestbookEntry, error) {
	var entries []models.GuestbookEntry

	if err := c.do(ctx, http.MethodGet, "/api/guestbook", nil, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// SignGuestbook submits a guestbook entry. Like CreateComment it degrades to
// a local-only record when the request fails.
func (c *Client) SignGuestbook(ctx context.Context, draft GuestbookDraft) (Result, *LocalGuestbookEntry) {
	var resp idResponse

	if err := c.do(ctx, http.MethodPost, "/api/guestbook", draft, &resp); err != nil {
		result := LocalFallback(err)
		tempID, _ := result.Local()

		return result, &LocalGuestbookEntry{
			TempID:    tempID,
			Author:    draft.Author,
			Content:   draft.Content,
			Emoji:     draft.Emoji,
			CreatedAt: time.Now(),
		}
	}

	return Persisted(resp.ID), nil
}
