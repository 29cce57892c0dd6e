package announcement

import (
	"context"
	"time"
)

// Repository - interface for announcements table
type Repository interface {
	Create(ctx context.Context, a Announcement) (Announcement, error)
	List(ctx context.Context) ([]Announcement, error)
	ListEventsInWindow(ctx context.Context, start, end time.Time) ([]Announcement, error)
}
