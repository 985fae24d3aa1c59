package client

import (
	"context"
	"net/http"

	"github.com/starfield-blog/starfield/internal/db/controller/visit"
	"github.com/starfield-blog/starfield/internal/db/models"
)

// LinkDraft is the create payload for a friend link.
type LinkDraft struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Position    int    `json:"position"`
}

// TrackDraft is the create payload for a playlist track.
type TrackDraft struct {
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	URL      string `json:"url"`
	Cover    string `json:"cover"`
	Position int    `json:"position"`
}

// ListLinks returns all friend links in display order.
func (c *Client) ListLinks(ctx context.Context) ([]models.Link, error) {
	var links []models.Link

	if err := c.do(ctx, http.MethodGet, "/api/links", nil, &links); err != nil {
		return nil, err
	}

	return links, nil
}

// CreateLink stores a new friend link and returns its id.
func (c *Client) CreateLink(ctx context.Context, draft LinkDraft) (uint64, error) {
	var resp idResponse

	if err := c.do(ctx, http.MethodPost, "/api/links", draft, &resp); err != nil {
		return 0, err
	}

	return resp.ID, nil
}

// DeleteLink removes the friend link.
func (c *Client) DeleteLink(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, apiPath("/api/links/%d", id), nil, nil)
}

// ListPlaylist returns the playlist tracks in display order.
func (c *Client) ListPlaylist(ctx context.Context) ([]models.Track, error) {
	var tracks []models.Track

	if err := c.do(ctx, http.MethodGet, "/api/playlist", nil, &tracks); err != nil {
		return nil, err
	}

	return tracks, nil
}

// CreateTrack stores a new playlist track and returns its id.
func (c *Client) CreateTrack(ctx context.Context, draft TrackDraft) (uint64, error) {
	var resp idResponse

	if err := c.do(ctx, http.MethodPost, "/api/playlist", draft, &resp); err != nil {
		return 0, err
	}

	return resp.ID, nil
}

// DeleteTrack removes the playlist track.
func (c *Client) DeleteTrack(ctx context.Context, id uint64) error {
	return c.do(ctx, http.MethodDelete, apiPath("/api/playlist/%d", id), nil, nil)
}

// RecordVisit logs a page view. Failures are the caller's call to ignore,
// visit logging is best effort on the frontend.
func (c *Client) RecordVisit(ctx context.Context, page string) error {
	body := map[string]string{"page": page}

	return c.do(ctx, http.MethodPost, "/api/visits", body, nil)
}

// SiteStats returns the aggregated visit and content counters.
func (c *Client) SiteStats(ctx context.Context) (*visit.Stats, error) {
	var stats visit.Stats

	if err := c.do(ctx, http.MethodGet, "/api/stats", nil, &stats); err != nil {
		return nil, err
	}

	return &stats, nil
}

// GetSetting returns the stored value for key, or nil when the key was
// never set.
func (c *Client) GetSetting(ctx context.Context, key string) (*string, error) {
	var resp struct {
		Value *string `json:"value"`
	}

	if err := c.do(ctx, http.MethodGet, "/api/settings/"+key, nil, &resp); err != nil {
		return nil, err
	}

	return resp.Value, nil
}

// SetSetting stores the value for key, overwriting any previous value.
func (c *Client) SetSetting(ctx context.Context, key, value string) error {
	body := map[string]string{"value": value}

	return c.do(ctx, http.MethodPut, "/api/settings/"+key, body, nil)
}

// Healthy reports whether the service is up and accepting requests.
func (c *Client) Healthy(ctx context.Context) bool {
	return c.do(ctx, http.MethodGet, "/health", nil, nil) == nil
}
