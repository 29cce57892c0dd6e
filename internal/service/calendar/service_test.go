package calendar

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rudratic/hr-backend-go/internal/domain/announcement"
	"github.com/rudratic/hr-backend-go/internal/domain/calendar"
	"github.com/rudratic/hr-backend-go/internal/domain/holiday"
	"github.com/rudratic/hr-backend-go/internal/domain/leave"
)

type fakeLeaveRepo struct {
	approved []leave.Request
	err      error
}

func (f *fakeLeaveRepo) Create(_ context.Context, r leave.Request) (leave.Request, error) {
	return r, nil
}
func (f *fakeLeaveRepo) GetByID(_ context.Context, _ string) (leave.Request, error) {
	return leave.Request{}, leave.ErrRequestNotFound
}
func (f *fakeLeaveRepo) List(_ context.Context, _ leave.ListFilter) ([]leave.Request, int64, error) {
	return nil, 0, nil
}
func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, _ string, _ leave.Status, _, _ *string) error {
	return nil
}
func (f *fakeLeaveRepo) HasOverlap(_ context.Context, _ string, _, _ time.Time) (bool, error) {
	return false, nil
}
func (f *fakeLeaveRepo) ListApprovedInWindow(_ context.Context, _, _ time.Time) ([]leave.Request, error) {
	return f.approved, f.err
}

type fakeHolidayRepo struct {
	holidays []holiday.Holiday
	err      error
}

func (f *fakeHolidayRepo) Upsert(_ context.Context, _ holiday.Holiday) error { return nil }
func (f *fakeHolidayRepo) ListByYear(_ context.Context, _ int) ([]holiday.Holiday, error) {
	return nil, nil
}
func (f *fakeHolidayRepo) ListInWindow(_ context.Context, _, _ time.Time) ([]holiday.Holiday, error) {
	return f.holidays, f.err
}

type fakeAnnouncementRepo struct {
	events []announcement.Announcement
	err    error
}

func (f *fakeAnnouncementRepo) Create(_ context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	return a, nil
}
func (f *fakeAnnouncementRepo) List(_ context.Context) ([]announcement.Announcement, error) {
	return nil, nil
}
func (f *fakeAnnouncementRepo) ListEventsInWindow(_ context.Context, _, _ time.Time) ([]announcement.Announcement, error) {
	return f.events, f.err
}

func TestCalendarService_Events_MergesAllSources(t *testing.T) {
	ctx := context.Background()
	name := "Asha Rao"
	eventDate := time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)

	leaveRepo := &fakeLeaveRepo{approved: []leave.Request{{
		ID:        "lr-1",
		UserID:    "user-1",
		UserName:  &name,
		StartDate: time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 11, 0, 0, 0, 0, time.UTC),
		Status:    leave.StatusApproved,
	}}}
	holidayRepo := &fakeHolidayRepo{holidays: []holiday.Holiday{{
		ID:   "h-1",
		Name: "Holi",
		Date: time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC),
	}}}
	announcementRepo := &fakeAnnouncementRepo{events: []announcement.Announcement{{
		ID:        "a-1",
		Title:     "Town Hall",
		EventDate: &eventDate,
	}}}

	svc := NewCalendarService(leaveRepo, holidayRepo, announcementRepo)

	start := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC)
	events, err := svc.Events(ctx, start, end)

	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, "leave-lr-1", events[0].ID)
	assert.Equal(t, "Asha Rao (On Leave)", events[0].Title)
	assert.Equal(t, calendar.EventTypeLeave, events[0].Type)
	assert.Equal(t, calendar.ColorLeave, events[0].Color)

	assert.Equal(t, "holiday-h-1", events[1].ID)
	assert.Equal(t, "Holi", events[1].Title)
	assert.Equal(t, calendar.ColorHoliday, events[1].Color)
	assert.True(t, events[1].Start.Equal(events[1].End))

	assert.Equal(t, "event-a-1", events[2].ID)
	assert.Equal(t, "Town Hall", events[2].Title)
	assert.Equal(t, calendar.ColorEvent, events[2].Color)
	assert.True(t, events[2].Start.Equal(eventDate))
}

func TestCalendarService_Events_AnonymousLeaveTitle(t *testing.T) {
	ctx := context.Background()
	leaveRepo := &fakeLeaveRepo{approved: []leave.Request{{
		ID:        "lr-2",
		StartDate: time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2026, time.March, 9, 0, 0, 0, 0, time.UTC),
	}}}
	svc := NewCalendarService(leaveRepo, &fakeHolidayRepo{}, &fakeAnnouncementRepo{})

	events, err := svc.Events(ctx,
		time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "On Leave", events[0].Title)
}

func TestCalendarService_Events_EmptyWindowIsEmptySlice(t *testing.T) {
	ctx := context.Background()
	svc := NewCalendarService(&fakeLeaveRepo{}, &fakeHolidayRepo{}, &fakeAnnouncementRepo{})

	events, err := svc.Events(ctx,
		time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC))

	require.NoError(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestCalendarService_Events_SourceErrorFailsFeed(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("db unavailable")
	svc := NewCalendarService(&fakeLeaveRepo{}, &fakeHolidayRepo{err: boom}, &fakeAnnouncementRepo{})

	_, err := svc.Events(ctx,
		time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.March, 31, 0, 0, 0, 0, time.UTC))

	assert.ErrorIs(t, err, boom)
}

func TestCurrentMonth(t *testing.T) {
	now := time.Date(2026, time.February, 17, 15, 4, 5, 0, time.UTC)
	start, end := currentMonth(now)

	assert.Equal(t, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.February, 28, 0, 0, 0, 0, time.UTC), end)

	// 31-day month
	start, end = currentMonth(time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC), end)
}
