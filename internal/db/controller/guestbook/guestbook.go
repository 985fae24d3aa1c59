// Package guestbook provides operations for guestbook entries.
package guestbook

import (
	"gorm.io/gorm"

	"github.com/starfield-blog/starfield/internal/db/models"
	"github.com/starfield-blog/starfield/internal/db/records"
)

// List returns all guestbook entries, newest first.
func List(db *gorm.DB) ([]models.GuestbookEntry, error) {
	return records.List[models.GuestbookEntry](db, records.OrderBy("created_at DESC, id DESC"))
}

// Create inserts a new guestbook entry.
func Create(db *gorm.DB, e *models.GuestbookEntry) error {
	return records.Create(db, e)
}
