package client

import (
	"context"
	"net/http"
	"time"

	"github.com/starfield-blog/starfield/internal/db/models"
)

// CommentDraft is the create payload for a flat comment.
type CommentDraft struct {
	PostID  uint64 `json:"postId"`
	Author  string `json:"author"`
	Content string `json:"content"`
}

// LocalComment is a device-local stand-in for a comment whose create call
// never reached the server. Counters start at zero and the timestamp is the
// client clock.
type LocalComment struct {
	TempID    string    `json:"temp_id"`
	PostID    uint64    `json:"post_id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	Likes     int64     `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

// ListComments returns the visible comments for a post, newest first.
func (c *Client) ListComments(ctx context.Context, postID uint64) ([]models.Comment, error) {
	var comments []models.Comment

	if err := c.do(ctx, http.MethodGet, apiPath("/api/comments/%d", postID), nil, &comments); err != nil {
		return nil, err
	}

	return comments, nil
}

// CreateComment submits a comment. When the server is unreachable or rejects
// the request the comment degrades to a local-only record instead of
// failing: the returned Result is tagged Local and carries the cause. The
// caller prepends the LocalComment to its in-memory list so the reader still
// sees their words.
func (c *Client) CreateComment(ctx context.Context, draft CommentDraft) (Result, *LocalComment) {
	var resp idResponse

	if err := c.do(ctx, http.MethodPost, "/api/comments", draft, &resp); err != nil {
		result := LocalFallback(err)
		tempID, _ := result.Local()

		return result, &LocalComment{
			TempID:    tempID,
			PostID:    draft.PostID,
			Author:    draft.Author,
			Content:   draft.Content,
			CreatedAt: time.Now(),
		}
	}

	return Persisted(resp.ID), nil
}

// LikeComment bumps the comment's like counter by one.
func (c *Client) LikeComment(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodPost, apiPath("/api/comments/%d/like", id), nil, nil)
}
