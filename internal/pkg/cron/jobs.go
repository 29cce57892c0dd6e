package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rudratic/hr-backend-go/internal/domain/admin"
	"github.com/rudratic/hr-backend-go/internal/domain/attendance"
	"github.com/rudratic/hr-backend-go/internal/domain/holiday"
	"github.com/rudratic/hr-backend-go/internal/domain/notification"
	"github.com/rudratic/hr-backend-go/internal/domain/user"
	"github.com/rudratic/hr-backend-go/internal/pkg/email"
)

// clockOutReminderHour is the local hour at which clocked-in users get nudged.
const clockOutReminderHour = 19

// weeklyReportHour is the local hour on Mondays when admins get the summary.
const weeklyReportHour = 8

type Jobs struct {
	entryRepo       attendance.TimeEntryRepository
	userRepo        user.UserRepository
	statsRepo       admin.StatsRepository
	holidaySvc      holiday.Service
	notificationSvc notification.Service
	emailSvc        email.Service
	loc             *time.Location
}

func NewJobs(
	entryRepo attendance.TimeEntryRepository,
	userRepo user.UserRepository,
	statsRepo admin.StatsRepository,
	holidaySvc holiday.Service,
	notificationSvc notification.Service,
	emailSvc email.Service,
	loc *time.Location,
) *Jobs {
	if loc == nil {
		loc = time.UTC
	}
	return &Jobs{
		entryRepo:       entryRepo,
		userRepo:        userRepo,
		statsRepo:       statsRepo,
		holidaySvc:      holidaySvc,
		notificationSvc: notificationSvc,
		emailSvc:        emailSvc,
		loc:             loc,
	}
}

func (j *Jobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddDailyJob("clock_out_reminder", clockOutReminderHour, j.loc, j.ClockOutReminder)
	scheduler.AddDailyJob("weekly_admin_report", weeklyReportHour, j.loc, j.WeeklyAdminReport)
	scheduler.AddJob("holiday_sync", 24*time.Hour, j.HolidaySync)
}

// ClockOutReminder nudges every user with an open session. Per-user
// failures are logged and skipped so one bad address cannot stall the run.
func (j *Jobs) ClockOutReminder(ctx context.Context) error {
	slog.Info("Cron: Starting clock-out reminder job")

	sessions, err := j.entryRepo.ListActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to list active sessions: %w", err)
	}

	if len(sessions) == 0 {
		slog.Info("Cron: No active sessions found")
		return nil
	}

	reminded := 0
	for _, session := range sessions {
		u, err := j.userRepo.GetByID(ctx, session.UserID)
		if err != nil {
			slog.Error("Cron: Failed to load user for reminder", "user_id", session.UserID, "error", err)
			continue
		}

		if j.notificationSvc != nil {
			_ = j.notificationSvc.Queue(ctx, notification.CreateRequest{
				UserID:  u.ID,
				Title:   "Still clocked in?",
				Message: fmt.Sprintf("You clocked in at %s and have not clocked out yet.", session.ClockIn.In(j.loc).Format("15:04")),
				Type:    notification.TypeWarning,
				ActionData: map[string]interface{}{
					"time_entry_id": session.ID,
				},
			})
		}

		if j.emailSvc != nil {
			if err := j.emailSvc.SendClockOutReminder(u.Email, u.Name); err != nil {
				slog.Error("Cron: Failed to send clock-out reminder email", "user_id", u.ID, "error", err)
				continue
			}
		}

		reminded++
	}

	slog.Info("Cron: Clock-out reminders sent", "count", reminded)
	return nil
}

// HolidaySync re-seeds the current year's holidays every day so fixture
// updates land without a restart.
func (j *Jobs) HolidaySync(ctx context.Context) error {
	year := time.Now().In(j.loc).Year()

	result, err := j.holidaySvc.Sync(ctx, year)
	if err != nil {
		return fmt.Errorf("holiday sync for %d failed: %w", year, err)
	}

	slog.Info("Cron: Holiday sync completed", "year", result.Year, "count", result.Count)
	return nil
}

// WeeklyAdminReport emails the headline numbers to every active admin.
// Gated to Mondays; the scheduler already gates the hour.
func (j *Jobs) WeeklyAdminReport(ctx context.Context) error {
	if time.Now().In(j.loc).Weekday() != time.Monday {
		return nil
	}

	slog.Info("Cron: Starting weekly admin report job")

	totalUsers, err := j.statsRepo.CountUsersByStatus(ctx, string(user.StatusActive))
	if err != nil {
		return fmt.Errorf("failed to count active users: %w", err)
	}

	pendingUsers, err := j.statsRepo.CountUsersByStatus(ctx, string(user.StatusPending))
	if err != nil {
		return fmt.Errorf("failed to count pending users: %w", err)
	}

	pendingLeaves, err := j.statsRepo.CountPendingLeaves(ctx)
	if err != nil {
		return fmt.Errorf("failed to count pending leaves: %w", err)
	}

	active, err := j.userRepo.ListByStatus(ctx, user.StatusActive)
	if err != nil {
		return fmt.Errorf("failed to list active users: %w", err)
	}

	sent := 0
	for _, u := range active {
		if !user.IsAdminRole(u.Role()) {
			continue
		}
		if err := j.emailSvc.SendWeeklyAdminReport(u.Email, u.Name, totalUsers, pendingLeaves, pendingUsers); err != nil {
			slog.Error("Cron: Failed to send weekly report", "user_id", u.ID, "error", err)
			continue
		}
		sent++
	}

	slog.Info("Cron: Weekly admin reports sent", "count", sent)
	return nil
}
