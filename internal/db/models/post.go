// Package models contains database model definitions.
package models

import (
	"time"
)

// Post represents a blog article.
// Tags carries a JSON encoded list of strings, exactly as the web client
// submits it. Views and Likes are plain counters with no per-reader tracking.
type Post struct {
	// ID is the unique identifier for the post.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Title is the article headline.
	Title string `gorm:"size:255;not null" json:"title"`
	// Content is the raw article body.
	Content string `gorm:"type:text;not null" json:"content"`
	// Category is a free text category name.
	Category string `gorm:"size:100" json:"category"`
	// Tags is a JSON encoded list of tag strings.
	Tags string `gorm:"type:text" json:"tags"`
	// CoverImage references the cover image of the post.
	CoverImage string `gorm:"size:500" json:"cover_image"`
	// Views counts reads. Incremented on every fetch by id.
	Views int64 `gorm:"not null;default:0" json:"views"`
	// Likes counts likes. Incremented unconditionally per like call.
	Likes int64 `gorm:"not null;default:0" json:"likes"`
	// IsPublished hides the post from the public list when false.
	IsPublished bool `gorm:"not null;default:true" json:"is_published"`
	// IsPinned floats the post to the top of the list.
	IsPinned bool `gorm:"not null;default:false" json:"is_pinned"`
	// CreatedAt is the creation timestamp (managed by GORM).
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is refreshed on every full update (managed by GORM).
	UpdatedAt time.Time `json:"updated_at"`
}
