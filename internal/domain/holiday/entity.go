package holiday

import (
	"strconv"
	"time"
)

// CacheTTL bounds how stale a served holiday list may be.
const CacheTTL = 24 * time.Hour

// CacheKey returns the per-year cache key.
func CacheKey(year int) string {
	return "holidays_" + strconv.Itoa(year)
}

// Holiday entity. Date is unique across all years.
type Holiday struct {
	ID        string
	Name      string
	Date      time.Time
	Year      int
	IsFloater bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
