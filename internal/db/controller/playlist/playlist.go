// Package playlist provides operations for the music playlist.
package playlist

import (
	"gorm.io/gorm"

	"github.com/starfield-blog/starfield/internal/db/models"
	"github.com/starfield-blog/starfield/internal/db/records"
)

// List returns all tracks in manual order.
func List(db *gorm.DB) ([]models.Track, error) {
	return records.List[models.Track](db, records.OrderBy("position ASC, id ASC"))
}

// Create inserts a new track.
func Create(db *gorm.DB, tr *models.Track) error {
	return records.Create(db, tr)
}

// Delete removes a track.
func Delete(db *gorm.DB, id uint64) error {
	return records.Delete[models.Track](db, id)
}
