package models

// Link represents a friend link. Ordering is manual via Position,
// there is no automatic renumbering.
type Link struct {
	ID          uint64 `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	URL         string `gorm:"size:500;not null" json:"url"`
	Description string `gorm:"size:500" json:"description"`
	Logo        string `gorm:"size:500" json:"logo"`
	Position    int    `gorm:"not null;default:0" json:"position"`
}
