package attendance

import (
	"context"
)

// Service handles the clock-in/clock-out lifecycle and reporting.
type Service interface {
	ClockIn(ctx context.Context, req ClockInRequest) (EntryResponse, error)
	ClockOut(ctx context.Context, userID string) (EntryResponse, error)
	Active(ctx context.Context, userID string) (EntryResponse, error)
	Reset(ctx context.Context, entryID, adminID string) (EntryResponse, error)
	History(ctx context.Context, filter HistoryFilter) ([]EntryResponse, int64, error)
	Summary(ctx context.Context, userID string) (SummaryResponse, error)
	ActiveUsers(ctx context.Context) ([]EntryResponse, error)
	Report(ctx context.Context, filter ReportFilter) ([]EntryResponse, error)
}
