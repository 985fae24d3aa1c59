package models

import (
	"time"
)

// Visit is one row of the append-only page visit log. Rows are never pruned.
type Visit struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Page      string    `gorm:"size:500;not null" json:"page"`
	IP        string    `gorm:"size:100" json:"ip"`
	UserAgent string    `gorm:"size:500" json:"user_agent"`
	CreatedAt time.Time `json:"created_at"`
}
