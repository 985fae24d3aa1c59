// Package comment provides operations for post comments.
package comment

import (
	"gorm.io/gorm"

	"github.com/starfield-blog/starfield/internal/db/models"
	"github.com/starfield-blog/starfield/internal/db/records"
)

// ListForPost returns the comments of one post, newest first. When moderated
// is true only approved comments are returned. The same policy flag drives
// every comment read path.
func ListForPost(db *gorm.DB, postID uint64, moderated bool) ([]models.Comment, error) {
	opts := []records.Option{
		records.Where("post_id = ?", postID),
		records.OrderBy("created_at DESC, id DESC"),
	}

	if moderated {
		opts = append(opts, records.Where("is_approved = ?", true))
	}

	return records.List[models.Comment](db, opts...)
}

// Create inserts a new comment. New comments start unapproved.
func Create(db *gorm.DB, c *models.Comment) error {
	return records.Create(db, c)
}

// Like adds exactly one to the like counter.
func Like(db *gorm.DB, id uint64) error {
	return records.Increment[models.Comment](db, id, "likes")
}
