package holiday

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rudratic/hr-backend-go/internal/domain/holiday"
	"github.com/rudratic/hr-backend-go/internal/pkg/cache"
)

type fakeHolidayRepo struct {
	rows      map[string]holiday.Holiday // keyed by date
	listCalls int
}

func newFakeHolidayRepo() *fakeHolidayRepo {
	return &fakeHolidayRepo{rows: make(map[string]holiday.Holiday)}
}

func (f *fakeHolidayRepo) Upsert(_ context.Context, h holiday.Holiday) error {
	key := h.Date.Format("2006-01-02")
	h.ID = "h-" + key
	f.rows[key] = h
	return nil
}

func (f *fakeHolidayRepo) ListByYear(_ context.Context, year int) ([]holiday.Holiday, error) {
	f.listCalls++
	var out []holiday.Holiday
	for _, h := range f.rows {
		if h.Year == year {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) ListInWindow(_ context.Context, start, end time.Time) ([]holiday.Holiday, error) {
	var out []holiday.Holiday
	for _, h := range f.rows {
		if !h.Date.Before(start) && !h.Date.After(end) {
			out = append(out, h)
		}
	}
	return out, nil
}

func TestHolidayService_List_CachesSecondRead(t *testing.T) {
	ctx := context.Background()
	repo := newFakeHolidayRepo()
	svc := NewHolidayService(repo, cache.New())

	_, err := svc.Sync(ctx, 2026)
	require.NoError(t, err)

	first, err := svc.List(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls)

	second, err := svc.List(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.listCalls, "second read must come from cache")
	assert.Equal(t, first, second)
}

func TestHolidayService_Sync_UpsertsFixtureRows(t *testing.T) {
	ctx := context.Background()
	repo := newFakeHolidayRepo()
	svc := NewHolidayService(repo, cache.New())

	result, err := svc.Sync(ctx, 2026)

	require.NoError(t, err)
	assert.Equal(t, 2026, result.Year)
	assert.Equal(t, result.Count, len(repo.rows))
	assert.NotZero(t, result.Count)

	// Running again lands on the same rows.
	again, err := svc.Sync(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, result.Count, again.Count)
	assert.Equal(t, result.Count, len(repo.rows))
}

func TestHolidayService_Sync_InvalidatesCache(t *testing.T) {
	ctx := context.Background()
	repo := newFakeHolidayRepo()
	c := cache.New()
	svc := NewHolidayService(repo, c)

	_, err := svc.Sync(ctx, 2026)
	require.NoError(t, err)
	_, err = svc.List(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	_, err = svc.Sync(ctx, 2026)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len(), "sync must drop the year's cache entry")
}

func TestHolidayService_Sync_UnknownYear(t *testing.T) {
	ctx := context.Background()
	svc := NewHolidayService(newFakeHolidayRepo(), cache.New())

	_, err := svc.Sync(ctx, 1999)

	assert.ErrorIs(t, err, holiday.ErrNoFixtureData)
}

func TestHolidayService_List_EmptyYear(t *testing.T) {
	ctx := context.Background()
	svc := NewHolidayService(newFakeHolidayRepo(), cache.New())

	responses, err := svc.List(ctx, 2026)

	require.NoError(t, err)
	assert.NotNil(t, responses)
	assert.Empty(t, responses)
}
