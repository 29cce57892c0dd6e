package attendance

import (
	"testing"
	"time"
)

func TestTimeEntryIsLate(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		clockIn time.Time
		loc     *time.Location
		want    bool
	}{
		{
			name:    "before cutoff",
			clockIn: time.Date(2026, time.March, 2, 8, 45, 0, 0, time.UTC),
			loc:     time.UTC,
			want:    false,
		},
		{
			name:    "exactly at cutoff",
			clockIn: time.Date(2026, time.March, 2, 9, 30, 0, 0, time.UTC),
			loc:     time.UTC,
			want:    false,
		},
		{
			name:    "one second past cutoff",
			clockIn: time.Date(2026, time.March, 2, 9, 30, 1, 0, time.UTC),
			loc:     time.UTC,
			want:    true,
		},
		{
			name: "late only in local time",
			// 03:00 UTC is 10:00 in Jakarta (UTC+7).
			clockIn: time.Date(2026, time.March, 2, 3, 0, 0, 0, time.UTC),
			loc:     jakarta,
			want:    true,
		},
		{
			name: "on time in local time",
			// 02:00 UTC is 09:00 in Jakarta.
			clockIn: time.Date(2026, time.March, 2, 2, 0, 0, 0, time.UTC),
			loc:     jakarta,
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := TimeEntry{ClockIn: tt.clockIn}
			if got := e.IsLate(tt.loc); got != tt.want {
				t.Errorf("IsLate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRoundHours(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want float64
	}{
		{"whole hours", 8 * time.Hour, 8.0},
		{"half hour", 90 * time.Minute, 1.5},
		{"rounds down", 8*time.Hour + 14*time.Second, 8.0},
		{"two decimal places", 7*time.Hour + 27*time.Minute, 7.45},
		{"zero", 0, 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RoundHours(tt.d); got != tt.want {
				t.Errorf("RoundHours(%v) = %v, want %v", tt.d, got, tt.want)
			}
		})
	}
}
