package prefs

import (
	"time"
)

// visitDayFormat marks calendar days the way the web client always has.
const visitDayFormat = "Mon Jan 2 2006"

// VisitStats are the device-local visit counters shown on the stats card.
// They are a client-side approximation, independent of the server visit log.
type VisitStats struct {
	TotalViews    int64  `json:"totalViews"`
	TodayViews    int64  `json:"todayViews"`
	LastVisitDate string `json:"lastVisitDate"`
	StartDate     string `json:"startDate"`
}

// VisitStats returns the current counters without recording a visit.
// ok is false when no visit was ever recorded.
func (s *Store) VisitStats() (stats VisitStats, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.visitStats == nil {
		return VisitStats{}, false
	}

	return *s.visitStats, true
}

// RecordVisit counts one page view. The today counter resets on the first
// visit of a new calendar day.
func (s *Store) RecordVisit(now time.Time) (VisitStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	today := now.Format(visitDayFormat)

	if s.visitStats == nil {
		s.visitStats = &VisitStats{
			TotalViews:    1,
			TodayViews:    1,
			LastVisitDate: today,
			StartDate:     now.Format(time.RFC3339),
		}

		return *s.visitStats, s.persist(keyVisitStats, s.visitStats)
	}

	if s.visitStats.LastVisitDate != today {
		s.visitStats.TodayViews = 1
		s.visitStats.LastVisitDate = today
	} else {
		s.visitStats.TodayViews++
	}

	s.visitStats.TotalViews++

	return *s.visitStats, s.persist(keyVisitStats, s.visitStats)
}
