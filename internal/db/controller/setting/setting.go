// Package setting provides the generic key-value override store.
package setting

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/starfield-blog/starfield/internal/db/models"
	"github.com/starfield-blog/starfield/internal/db/records"
)

var (
	// ErrSettingNotFound is returned when a setting is not found.
	ErrSettingNotFound = errors.New("setting not found")
	// ErrSettingKeyEmpty is returned when the setting key is empty.
	ErrSettingKeyEmpty = errors.New("setting key cannot be empty")
)

// Get retrieves a setting by its key.
func Get(db *gorm.DB, key string) (*models.Setting, error) {
	if db == nil {
		return nil, records.ErrDBNil
	}
	if key == "" {
		return nil, ErrSettingKeyEmpty
	}

	var s models.Setting

	result := db.Where("key = ?", key).First(&s)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrSettingNotFound
		}

		return nil, result.Error
	}

	return &s, nil
}

// Set creates or replaces a setting. Last write wins.
func Set(db *gorm.DB, key, value string) error {
	if db == nil {
		return records.ErrDBNil
	}
	if key == "" {
		return ErrSettingKeyEmpty
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&models.Setting{Key: key, Value: value})

	return result.Error
}

// Count returns the number of stored settings.
func Count(db *gorm.DB) (int64, error) {
	return records.Count[models.Setting](db)
}
