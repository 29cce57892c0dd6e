package fixtures

import (
	"testing"
	"time"
)

func TestHolidaysForYear2026(t *testing.T) {
	holidays := HolidaysForYear(2026)

	if len(holidays) != 17 {
		t.Fatalf("got %d holidays for 2026, want 17", len(holidays))
	}

	first := holidays[0]
	if first.Name != "Makar Sankranti / Pongal" {
		t.Errorf("first holiday = %q, want Makar Sankranti / Pongal", first.Name)
	}
	wantDate := time.Date(2026, time.January, 14, 0, 0, 0, 0, time.UTC)
	if !first.Date.Equal(wantDate) {
		t.Errorf("first holiday date = %v, want %v", first.Date, wantDate)
	}

	floaters := 0
	for _, h := range holidays {
		if h.Year != 2026 {
			t.Errorf("%s has year %d, want 2026", h.Name, h.Year)
		}
		if h.Date.Year() != 2026 {
			t.Errorf("%s dated %v, outside 2026", h.Name, h.Date)
		}
		if h.IsFloater {
			floaters++
		}
	}
	if floaters != 5 {
		t.Errorf("got %d floaters, want 5", floaters)
	}

	// Dates are unique; the holidays table upserts on date.
	seen := make(map[string]string, len(holidays))
	for _, h := range holidays {
		key := h.Date.Format("2006-01-02")
		if prev, dup := seen[key]; dup {
			t.Errorf("%s and %s share date %s", prev, h.Name, key)
		}
		seen[key] = h.Name
	}
}

func TestHolidaysForYearUnknown(t *testing.T) {
	if got := HolidaysForYear(1999); len(got) != 0 {
		t.Errorf("HolidaysForYear(1999) returned %d rows, want none", len(got))
	}
}
