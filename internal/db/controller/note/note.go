// Package note provides operations for short notes.
// Notes cannot be edited, only created, liked and deleted.
package note

import (
	"gorm.io/gorm"

	"github.com/starfield-blog/starfield/internal/db/models"
	"github.com/starfield-blog/starfield/internal/db/records"
)

// List returns all notes, newest first.
func List(db *gorm.DB) ([]models.Note, error) {
	return records.List[models.Note](db, records.OrderBy("created_at DESC, id DESC"))
}

// Create inserts a new note.
func Create(db *gorm.DB, n *models.Note) error {
	return records.Create(db, n)
}

// Delete removes a note.
func Delete(db *gorm.DB, id uint64) error {
	return records.Delete[models.Note](db, id)
}

// Like adds exactly one to the like counter.
func Like(db *gorm.DB, id uint64) error {
	return records.Increment[models.Note](db, id, "likes")
}

// Count returns the total number of notes.
func Count(db *gorm.DB) (int64, error) {
	return records.Count[models.Note](db)
}
