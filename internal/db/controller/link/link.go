// Package link provides operations for friend links.
package link

import (
	"gorm.io/gorm"

	"github.com/starfield-blog/starfield/internal/db/models"
	"github.com/starfield-blog/starfield/internal/db/records"
)

// List returns all friend links in manual order.
func List(db *gorm.DB) ([]models.Link, error) {
	return records.List[models.Link](db, records.OrderBy("position ASC, id ASC"))
}

// Create inserts a new friend link.
func Create(db *gorm.DB, l *models.Link) error {
	return records.Create(db, l)
}

// Delete removes a friend link. Positions of the remaining links are not
// renumbered.
func Delete(db *gorm.DB, id uint64) error {
	return records.Delete[models.Link](db, id)
}
