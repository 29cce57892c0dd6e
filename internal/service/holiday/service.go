package holiday

import (
	"context"
	"log/slog"

	"github.com/rudratic/hr-backend-go/internal/domain/holiday"
	"github.com/rudratic/hr-backend-go/internal/fixtures"
	"github.com/rudratic/hr-backend-go/internal/pkg/cache"
)

type HolidayServiceImpl struct {
	holiday.Repository
	cache *cache.Cache
}

func NewHolidayService(repository holiday.Repository, c *cache.Cache) holiday.Service {
	return &HolidayServiceImpl{
		Repository: repository,
		cache:      c,
	}
}

// List implements holiday.Service. Cache hits skip the database entirely;
// a cache failure only costs the extra read, never the request.
func (s *HolidayServiceImpl) List(ctx context.Context, year int) ([]holiday.Response, error) {
	key := holiday.CacheKey(year)

	if cached, ok := s.cache.Get(key); ok {
		if responses, ok := cached.([]holiday.Response); ok {
			return responses, nil
		}
	}

	holidays, err := s.Repository.ListByYear(ctx, year)
	if err != nil {
		return nil, err
	}

	responses := make([]holiday.Response, 0, len(holidays))
	for _, h := range holidays {
		responses = append(responses, holiday.ToResponse(h))
	}

	s.cache.Set(key, responses, holiday.CacheTTL)
	return responses, nil
}

// Sync implements holiday.Service. Upserting by the unique date column makes
// the operation idempotent; the cache key drops after the rows land so the
// next read never serves the pre-sync list.
func (s *HolidayServiceImpl) Sync(ctx context.Context, year int) (holiday.SyncResult, error) {
	rows := fixtures.HolidaysForYear(year)
	if len(rows) == 0 {
		return holiday.SyncResult{}, holiday.ErrNoFixtureData
	}

	for _, h := range rows {
		if err := s.Repository.Upsert(ctx, h); err != nil {
			return holiday.SyncResult{}, err
		}
	}

	s.cache.Delete(holiday.CacheKey(year))
	slog.Info("Holiday sync completed", "year", year, "count", len(rows))

	return holiday.SyncResult{Year: year, Count: len(rows)}, nil
}
