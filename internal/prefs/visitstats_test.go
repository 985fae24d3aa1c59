package prefs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordVisit(t *testing.T) {
	backend := NewMemoryBackend()
	s := New(backend)

	day1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	stats, err := s.RecordVisit(day1)
	require.NoError(t, err)
	assert.EqualValues(t, 1, stats.TotalViews)
	assert.EqualValues(t, 1, stats.TodayViews)
	assert.Equal(t, day1.Format(visitDayFormat), stats.LastVisitDate)
	assert.NotEmpty(t, stats.StartDate)

	stats, err = s.RecordVisit(day1.Add(time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalViews)
	assert.EqualValues(t, 2, stats.TodayViews)

	// The today counter resets on the first visit of a new day, the total
	// keeps growing.
	day2 := day1.AddDate(0, 0, 1)
	stats, err = s.RecordVisit(day2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, stats.TotalViews)
	assert.EqualValues(t, 1, stats.TodayViews)

	// The counters survive rehydration.
	fresh, ok := New(backend).VisitStats()
	require.True(t, ok)
	assert.EqualValues(t, 3, fresh.TotalViews)
	assert.Equal(t, stats.StartDate, fresh.StartDate)
}
