package holiday

import (
	"context"
)

// Service serves the holiday list through the TTL cache and keeps the table
// in sync with the published fixture list.
type Service interface {
	// List returns the year's holidays ordered by date ascending.
	List(ctx context.Context, year int) ([]Response, error)
	// Sync upserts the fixture rows for a year and invalidates its cache key.
	Sync(ctx context.Context, year int) (SyncResult, error)
}
