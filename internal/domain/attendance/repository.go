package attendance

import (
	"context"
	"time"
)

// TimeEntryRepository - interface for time_entries table
type TimeEntryRepository interface {
	Create(ctx context.Context, entry TimeEntry) (TimeEntry, error)
	GetByID(ctx context.Context, id string) (TimeEntry, error)
	GetActiveByUserID(ctx context.Context, userID string) (TimeEntry, error)
	Complete(ctx context.Context, id string, clockOut time.Time, hoursWorked float64) (TimeEntry, error)
	Reset(ctx context.Context, id string) (TimeEntry, error)
	History(ctx context.Context, filter HistoryFilter) ([]TimeEntry, int64, error)
	ListActive(ctx context.Context) ([]TimeEntry, error)
	ListCompletedSince(ctx context.Context, userID string, since time.Time) ([]TimeEntry, error)
	Report(ctx context.Context, filter ReportFilter) ([]TimeEntry, error)
}
