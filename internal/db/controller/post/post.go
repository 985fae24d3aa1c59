// Package post provides CRUD operations for blog posts.
package post

import (
	"time"

	"gorm.io/gorm"

	"github.com/starfield-blog/starfield/internal/db/models"
	"github.com/starfield-blog/starfield/internal/db/records"
)

// listOrder floats pinned posts first, then newest first, identity as tie break.
const listOrder = "is_pinned DESC, created_at DESC, id DESC"

// List returns all published posts, pinned first then newest first.
func List(db *gorm.DB) ([]models.Post, error) {
	return records.List[models.Post](db,
		records.Where("is_published = ?", true),
		records.OrderBy(listOrder),
	)
}

// GetByID increments the view counter and returns the post. The increment
// happens before the read, so a re-fetch always observes a higher count.
// This read is deliberately not idempotent.
func GetByID(db *gorm.DB, id uint64) (*models.Post, error) {
	if db == nil {
		return nil, records.ErrDBNil
	}

	if err := records.Increment[models.Post](db, id, "views"); err != nil {
		return nil, err
	}

	return records.GetByID[models.Post](db, id)
}

// Create inserts a new post and returns it with the assigned identity.
func Create(db *gorm.DB, p *models.Post) error {
	return records.Create(db, p)
}

// Update overwrites the full editable row and refreshes the updated timestamp.
// Updating a missing id is not an error.
func Update(db *gorm.DB, id uint64, p *models.Post) error {
	if db == nil {
		return records.ErrDBNil
	}

	result := db.Model(&models.Post{}).
		Where("id = ?", id).
		Select("title", "content", "category", "tags", "cover_image", "is_published", "is_pinned", "updated_at").
		Updates(map[string]any{
			"title":        p.Title,
			"content":      p.Content,
			"category":     p.Category,
			"tags":         p.Tags,
			"cover_image":  p.CoverImage,
			"is_published": p.IsPublished,
			"is_pinned":    p.IsPinned,
			"updated_at":   time.Now(),
		})

	return result.Error
}

// Delete removes a post. Comments referencing it are left alone.
func Delete(db *gorm.DB, id uint64) error {
	return records.Delete[models.Post](db, id)
}

// Like adds exactly one to the like counter.
func Like(db *gorm.DB, id uint64) error {
	return records.Increment[models.Post](db, id, "likes")
}

// CountPublished returns the number of published posts.
func CountPublished(db *gorm.DB) (int64, error) {
	return records.Count[models.Post](db, records.Where("is_published = ?", true))
}
