package holiday

import (
	"context"
	"time"
)

// Repository - interface for holidays table
type Repository interface {
	// Upsert inserts or updates by the unique date column.
	Upsert(ctx context.Context, h Holiday) error
	ListByYear(ctx context.Context, year int) ([]Holiday, error)
	ListInWindow(ctx context.Context, start, end time.Time) ([]Holiday, error)
}
