package leave

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestRequestDays(t *testing.T) {
	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"single day", date(2026, time.March, 2), date(2026, time.March, 2), 1},
		{"two days", date(2026, time.March, 2), date(2026, time.March, 3), 2},
		{"full week", date(2026, time.March, 2), date(2026, time.March, 8), 7},
		{"across month boundary", date(2026, time.January, 30), date(2026, time.February, 2), 4},
		{"across year boundary", date(2025, time.December, 30), date(2026, time.January, 2), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Request{StartDate: tt.start, EndDate: tt.end}
			if got := r.Days(); got != tt.want {
				t.Errorf("Days() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStatusIsTerminal(t *testing.T) {
	if StatusPending.IsTerminal() {
		t.Error("PENDING should not be terminal")
	}
	if !StatusApproved.IsTerminal() {
		t.Error("APPROVED should be terminal")
	}
	if !StatusRejected.IsTerminal() {
		t.Error("REJECTED should be terminal")
	}
}

func TestBalanceBucketFor(t *testing.T) {
	b := Balance{Sick: 10, Casual: 7, Earned: 3}

	tests := []struct {
		leaveType Type
		remaining int
		tracked   bool
	}{
		{TypeSick, 10, true},
		{TypeCasual, 7, true},
		{TypeVacation, 3, true},
		{TypeMaternity, 0, false},
		{TypeUnpaid, 0, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.leaveType), func(t *testing.T) {
			remaining, tracked := b.BucketFor(tt.leaveType)
			if remaining != tt.remaining || tracked != tt.tracked {
				t.Errorf("BucketFor(%s) = (%d, %v), want (%d, %v)",
					tt.leaveType, remaining, tracked, tt.remaining, tt.tracked)
			}
		})
	}
}
