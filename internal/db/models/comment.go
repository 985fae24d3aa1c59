package models

import (
	"time"
)

// Comment represents a reader comment on a post.
// PostID is advisory only: deleting a post does not cascade to its comments.
type Comment struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	PostID     uint64    `gorm:"index" json:"post_id"`
	Author     string    `gorm:"size:100;not null" json:"author"`
	Email      string    `gorm:"size:255" json:"email"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	Likes      int64     `gorm:"not null;default:0" json:"likes"`
	IsApproved bool      `gorm:"not null;default:false" json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}
