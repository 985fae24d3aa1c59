// Package visit provides the append-only page visit log and its aggregates.
package visit

import (
	"time"

	"gorm.io/gorm"

	"github.com/starfield-blog/starfield/internal/db/controller/note"
	"github.com/starfield-blog/starfield/internal/db/controller/post"
	"github.com/starfield-blog/starfield/internal/db/models"
	"github.com/starfield-blog/starfield/internal/db/records"
)

// Stats is the aggregate view served by the stats endpoint.
type Stats struct {
	TotalVisits int64 `json:"totalVisits"`
	TodayVisits int64 `json:"todayVisits"`
	PostsCount  int64 `json:"postsCount"`
	NotesCount  int64 `json:"notesCount"`
}

// Record appends one visit row. The log is never pruned.
func Record(db *gorm.DB, v *models.Visit) error {
	return records.Create(db, v)
}

// Aggregate computes the visit and content counters. Today is the server
// local calendar day.
func Aggregate(db *gorm.DB, now time.Time) (*Stats, error) {
	if db == nil {
		return nil, records.ErrDBNil
	}

	total, err := records.Count[models.Visit](db)
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	today, err := records.Count[models.Visit](db,
		records.Where("created_at >= ? AND created_at < ?", dayStart, dayStart.AddDate(0, 0, 1)),
	)
	if err != nil {
		return nil, err
	}

	posts, err := post.CountPublished(db)
	if err != nil {
		return nil, err
	}

	notes, err := note.Count(db)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalVisits: total,
		TodayVisits: today,
		PostsCount:  posts,
		NotesCount:  notes,
	}, nil
}
