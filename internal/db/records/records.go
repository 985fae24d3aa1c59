// Package records implements the one generic CRUD contract every record
// entity shares. Per-entity controllers supply ordering rules and filters
// through options instead of duplicating the list/get/create/delete logic.
package records

import (
	"errors"

	"gorm.io/gorm"
)

var (
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
	// ErrRecordNotFound is returned when a record does not exist.
	ErrRecordNotFound = errors.New("record not found")
)

// Option narrows or orders a query. Options compose left to right.
type Option func(tx *gorm.DB) *gorm.DB

// OrderBy applies a fixed ordering rule. Callers must include an identity
// tie break to keep the ordering total and stable.
func OrderBy(rule string) Option {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Order(rule)
	}
}

// Where applies a filter condition.
func Where(query string, args ...any) Option {
	return func(tx *gorm.DB) *gorm.DB {
		return tx.Where(query, args...)
	}
}

func apply(tx *gorm.DB, opts []Option) *gorm.DB {
	for _, opt := range opts {
		tx = opt(tx)
	}

	return tx
}

// List returns all rows of the entity, shaped by the given options.
func List[T any](db *gorm.DB, opts ...Option) ([]T, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	// empty results serialize as [] and never as null
	rows := make([]T, 0)

	result := apply(db, opts).Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	return rows, nil
}

// GetByID returns one row by its identity.
func GetByID[T any](db *gorm.DB, id uint64) (*T, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var row T

	result := db.First(&row, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}

		return nil, result.Error
	}

	return &row, nil
}

// Create inserts the row and fills its identity and server defaults.
func Create[T any](db *gorm.DB, row *T) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Create(row)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Delete removes the row by identity. Deleting a missing row is not an
// error and nothing cascades.
func Delete[T any](db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(new(T), id)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Increment adds one to a counter column in a single statement. Concurrent
// increments are only as atomic as the storage engine makes this statement.
func Increment[T any](db *gorm.DB, id uint64, column string) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Model(new(T)).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if result.Error != nil {
		return result.Error
	}

	return nil
}

// Count returns the number of rows matching the options.
func Count[T any](db *gorm.DB, opts ...Option) (int64, error) {
	if db == nil {
		return 0, ErrDBNil
	}

	var count int64

	result := apply(db.Model(new(T)), opts).Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}

	return count, nil
}
