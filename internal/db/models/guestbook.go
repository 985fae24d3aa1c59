package models

import (
	"time"
)

// GuestbookEntry represents a guestbook message.
// The web client sends an emoji where the form once had an email field,
// so Email usually holds an emoji.
type GuestbookEntry struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Email     string    `gorm:"size:255" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	Reply     string    `gorm:"type:text" json:"reply"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName keeps the original table name.
func (GuestbookEntry) TableName() string {
	return "guestbook"
}
