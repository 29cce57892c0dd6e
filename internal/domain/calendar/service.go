package calendar

import (
	"context"
	"time"
)

// Service merges approved leaves, holidays, and dated announcements into
// one event feed.
type Service interface {
	// Events returns all events overlapping [start, end]. A zero start or
	// end defaults the window to the current month.
	Events(ctx context.Context, start, end time.Time) ([]Event, error)
}
