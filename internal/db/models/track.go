package models

// Track represents one entry of the music playlist.
type Track struct {
	ID       uint64 `gorm:"primaryKey" json:"id"`
	Title    string `gorm:"size:255;not null" json:"title"`
	Artist   string `gorm:"size:255" json:"artist"`
	URL      string `gorm:"size:500;not null" json:"url"`
	Cover    string `gorm:"size:500" json:"cover"`
	Position int    `gorm:"not null;default:0" json:"position"`
}

// TableName keeps the original table name.
func (Track) TableName() string {
	return "playlist"
}
