package client

import (
	"context"
	"net/http"

	"github.com/starfield-blog/starfield/internal/db/models"
)

// PostDraft is the create payload for a post.
type PostDraft struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Category   string   `json:"category"`
	Tags       []string `json:"tags"`
	CoverImage string   `json:"cover_image"`
}

// PostUpdate is the full-row update payload for a post.
type PostUpdate struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Category    string   `json:"category"`
	Tags        []string `json:"tags"`
	CoverImage  string   `json:"cover_image"`
	IsPublished bool     `json:"is_published"`
	IsPinned    bool     `json:"is_pinned"`
}

// ListPosts returns the published posts, pinned first, newest first.
func (c *Client) ListPosts(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post

	if err := c.do(ctx, http.MethodGet, "/api/posts", nil, &posts); err != nil {
		return nil, err
	}

	return posts, nil
}

// GetPost returns one post, or nil when the id is unknown. Fetching a post
// counts as a view.
func (c *Client) GetPost(ctx context.Context, id uint64) (*models.Post, error) {
	var post *models.Post

	if err := c.do(ctx, http.MethodGet, apiPath("/api/posts/%d", id), nil, &post); err != nil {
		return nil, err
	}

	return post, nil
}

// CreatePost stores a new post and returns its id.
func (c *Client) CreatePost(ctx context.Context, draft PostDraft) (uint64, error) {
	var resp idResponse

	if err := c.do(ctx, http.MethodPost, "/api/posts", draft, &resp); err != nil {
		return 0, err
	}

	return resp.ID, nil
}

// UpdatePost overwrites every stored field of the post.
func (c *Client) UpdatePost(ctx context.Context, id uint64, update PostUpdate) error {
	return c.do(ctx, http.MethodPut, apiPath("/api/posts/%d", id), update, nil)
}

// DeletePost removes the post. Deleting an unknown id succeeds.
func (c *Client) DeletePost(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, apiPath("/api/posts/%d", id), nil, nil)
}

// LikePost bumps the post's like counter by one.
func (c *Client) LikePost(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodPost, apiPath("/api/posts/%d/like", id), nil, nil)
}
