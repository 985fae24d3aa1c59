package models

// Setting represents a generic key-value override stored in the database.
// Writes are last-write-wins.
type Setting struct {
	Key   string `gorm:"primaryKey;size:255" json:"key"`
	Value string `gorm:"type:text;not null" json:"value"`
}
