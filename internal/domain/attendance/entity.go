package attendance

import (
	"math"
	"time"
)

type ClockType string

const (
	ClockTypeInOffice ClockType = "IN_OFFICE"
	ClockTypeRemote   ClockType = "REMOTE"
	ClockTypeHybrid   ClockType = "HYBRID"
)

var ClockTypes = []string{
	string(ClockTypeInOffice),
	string(ClockTypeRemote),
	string(ClockTypeHybrid),
}

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusReset     Status = "RESET"
)

const (
	// MinSessionDuration guards against accidental double taps.
	MinSessionDuration = 30 * time.Second
	// MaxSessionDuration caps sessions left open overnight.
	MaxSessionDuration = 24 * time.Hour

	// OvertimeThresholdHours is the per-day hour count beyond which the
	// surplus counts as overtime.
	OvertimeThresholdHours = 9.0
)

// Lateness cutoff: clock-ins after 09:30 local time are flagged.
const (
	LateHour   = 9
	LateMinute = 30
)

// TimeEntry entity
type TimeEntry struct {
	ID          string
	UserID      string
	ClockIn     time.Time
	ClockOut    *time.Time
	HoursWorked *float64
	ClockType   ClockType
	Status      Status
	IsOnCall    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Join fields (for responses)
	UserName *string
}

// IsLate reports whether the clock-in happened after the lateness cutoff
// in the given location. Derived at read time, never stored.
func (e *TimeEntry) IsLate(loc *time.Location) bool {
	local := e.ClockIn.In(loc)
	cutoff := time.Date(local.Year(), local.Month(), local.Day(), LateHour, LateMinute, 0, 0, loc)
	return local.After(cutoff)
}

// RoundHours rounds a duration to hours with 2 decimal places.
func RoundHours(d time.Duration) float64 {
	return math.Round(d.Hours()*100) / 100
}

// Summary aggregates the trailing seven days of completed entries.
type Summary struct {
	TotalHours    float64
	DaysWorked    int
	OvertimeHours float64
}
