package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rudratic/hr-backend-go/internal/domain/attendance"
)

func completedEntry(clockIn time.Time, hours float64) attendance.TimeEntry {
	return attendance.TimeEntry{
		ClockIn:     clockIn,
		HoursWorked: &hours,
		Status:      attendance.StatusCompleted,
	}
}

func TestSummarize(t *testing.T) {
	day1 := time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, time.March, 3, 9, 0, 0, 0, time.UTC)

	t.Run("empty", func(t *testing.T) {
		summary := Summarize(nil, time.UTC)
		assert.Zero(t, summary.TotalHours)
		assert.Zero(t, summary.DaysWorked)
		assert.Zero(t, summary.OvertimeHours)
	})

	t.Run("counts distinct days", func(t *testing.T) {
		entries := []attendance.TimeEntry{
			completedEntry(day1, 4),
			completedEntry(day1.Add(5*time.Hour), 3),
			completedEntry(day2, 8),
		}
		summary := Summarize(entries, time.UTC)
		assert.Equal(t, 15.0, summary.TotalHours)
		assert.Equal(t, 2, summary.DaysWorked)
		assert.Zero(t, summary.OvertimeHours)
	})

	t.Run("overtime is the daily surplus", func(t *testing.T) {
		entries := []attendance.TimeEntry{
			completedEntry(day1, 6),
			completedEntry(day1.Add(7*time.Hour), 5.5),
			completedEntry(day2, 8.5),
		}
		summary := Summarize(entries, time.UTC)
		// Day one totals 11.5h: 2.5h past the 9h threshold.
		assert.Equal(t, 2.5, summary.OvertimeHours)
		assert.Equal(t, 20.0, summary.TotalHours)
		assert.Equal(t, 2, summary.DaysWorked)
	})

	t.Run("skips open entries", func(t *testing.T) {
		open := attendance.TimeEntry{ClockIn: day1, Status: attendance.StatusActive}
		entries := []attendance.TimeEntry{open, completedEntry(day2, 7)}
		summary := Summarize(entries, time.UTC)
		assert.Equal(t, 7.0, summary.TotalHours)
		assert.Equal(t, 1, summary.DaysWorked)
	})

	t.Run("day bucketing follows the location", func(t *testing.T) {
		jakarta, err := time.LoadLocation("Asia/Jakarta")
		assert.NoError(t, err)

		// 23:00 March 2 and 01:00 March 3 UTC both fall on March 3 in Jakarta.
		entries := []attendance.TimeEntry{
			completedEntry(time.Date(2026, time.March, 2, 23, 0, 0, 0, time.UTC), 5),
			completedEntry(time.Date(2026, time.March, 3, 1, 0, 0, 0, time.UTC), 5),
		}

		assert.Equal(t, 2, Summarize(entries, time.UTC).DaysWorked)
		summary := Summarize(entries, jakarta)
		assert.Equal(t, 1, summary.DaysWorked)
		assert.Equal(t, 1.0, summary.OvertimeHours)
	})
}
