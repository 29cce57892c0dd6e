package calendar

import (
	"context"
	"time"

	"github.com/rudratic/hr-backend-go/internal/domain/announcement"
	"github.com/rudratic/hr-backend-go/internal/domain/calendar"
	"github.com/rudratic/hr-backend-go/internal/domain/holiday"
	"github.com/rudratic/hr-backend-go/internal/domain/leave"
)

type CalendarServiceImpl struct {
	leaveRepo        leave.RequestRepository
	holidayRepo      holiday.Repository
	announcementRepo announcement.Repository
}

func NewCalendarService(
	leaveRepo leave.RequestRepository,
	holidayRepo holiday.Repository,
	announcementRepo announcement.Repository,
) calendar.Service {
	return &CalendarServiceImpl{
		leaveRepo:        leaveRepo,
		holidayRepo:      holidayRepo,
		announcementRepo: announcementRepo,
	}
}

// Events implements calendar.Service. All three sources must succeed; a
// partial feed would silently hide someone's approved leave.
func (s *CalendarServiceImpl) Events(ctx context.Context, start, end time.Time) ([]calendar.Event, error) {
	if start.IsZero() || end.IsZero() {
		start, end = currentMonth(time.Now())
	}

	events := []calendar.Event{}

	leaves, err := s.leaveRepo.ListApprovedInWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}
	for _, l := range leaves {
		title := "On Leave"
		if l.UserName != nil {
			title = *l.UserName + " (On Leave)"
		}
		events = append(events, calendar.Event{
			ID:    "leave-" + l.ID,
			Title: title,
			Start: l.StartDate,
			End:   l.EndDate,
			Type:  calendar.EventTypeLeave,
			Color: calendar.ColorLeave,
		})
	}

	holidays, err := s.holidayRepo.ListInWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}
	for _, h := range holidays {
		events = append(events, calendar.Event{
			ID:    "holiday-" + h.ID,
			Title: h.Name,
			Start: h.Date,
			End:   h.Date,
			Type:  calendar.EventTypeHoliday,
			Color: calendar.ColorHoliday,
		})
	}

	announcements, err := s.announcementRepo.ListEventsInWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}
	for _, a := range announcements {
		events = append(events, calendar.Event{
			ID:    "event-" + a.ID,
			Title: a.Title,
			Start: *a.EventDate,
			End:   *a.EventDate,
			Type:  calendar.EventTypeEvent,
			Color: calendar.ColorEvent,
		})
	}

	return events, nil
}

// currentMonth returns the first instant of now's month and the first
// instant of the next month minus a day, in now's location.
func currentMonth(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end := start.AddDate(0, 1, -1)
	return start, end
}
