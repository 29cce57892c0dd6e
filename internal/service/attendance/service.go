package attendance

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rudratic/hr-backend-go/internal/domain/admin"
	"github.com/rudratic/hr-backend-go/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendance.TimeEntryRepository
	auditRepo admin.AuditLogRepository
	loc       *time.Location
}

func NewAttendanceService(timeEntryRepository attendance.TimeEntryRepository, auditRepo admin.AuditLogRepository, loc *time.Location) attendance.Service {
	if loc == nil {
		loc = time.UTC
	}
	return &AttendanceServiceImpl{
		TimeEntryRepository: timeEntryRepository,
		auditRepo:           auditRepo,
		loc:                 loc,
	}
}

// ClockIn implements attendance.Service. Rejects when an ACTIVE entry
// already exists; the error carries minutes since that clock-in.
func (s *AttendanceServiceImpl) ClockIn(ctx context.Context, req attendance.ClockInRequest) (attendance.EntryResponse, error) {
	active, err := s.TimeEntryRepository.GetActiveByUserID(ctx, req.UserID)
	if err == nil {
		elapsed := int(time.Since(active.ClockIn).Minutes())
		return attendance.EntryResponse{}, fmt.Errorf("%w (clocked in %d minutes ago)", attendance.ErrAlreadyClockedIn, elapsed)
	}
	if !errors.Is(err, attendance.ErrNotClockedIn) {
		return attendance.EntryResponse{}, fmt.Errorf("failed to check active entry: %w", err)
	}

	entry := attendance.TimeEntry{
		UserID:    req.UserID,
		ClockIn:   time.Now().UTC(),
		ClockType: attendance.ClockType(req.ClockType),
		Status:    attendance.StatusActive,
		IsOnCall:  req.IsOnCall,
	}

	created, err := s.TimeEntryRepository.Create(ctx, entry)
	if err != nil {
		return attendance.EntryResponse{}, fmt.Errorf("failed to create time entry: %w", err)
	}

	return attendance.ToEntryResponse(created, s.loc), nil
}

// ClockOut implements attendance.Service. Sessions must run at least 30
// seconds and at most 24 hours.
func (s *AttendanceServiceImpl) ClockOut(ctx context.Context, userID string) (attendance.EntryResponse, error) {
	active, err := s.TimeEntryRepository.GetActiveByUserID(ctx, userID)
	if err != nil {
		return attendance.EntryResponse{}, err
	}

	now := time.Now().UTC()
	elapsed := now.Sub(active.ClockIn)

	if elapsed < attendance.MinSessionDuration {
		return attendance.EntryResponse{}, attendance.ErrSessionTooShort
	}
	if elapsed > attendance.MaxSessionDuration {
		return attendance.EntryResponse{}, attendance.ErrSessionTooLong
	}

	completed, err := s.TimeEntryRepository.Complete(ctx, active.ID, now, attendance.RoundHours(elapsed))
	if err != nil {
		return attendance.EntryResponse{}, err
	}

	return attendance.ToEntryResponse(completed, s.loc), nil
}

// Active implements attendance.Service.
func (s *AttendanceServiceImpl) Active(ctx context.Context, userID string) (attendance.EntryResponse, error) {
	active, err := s.TimeEntryRepository.GetActiveByUserID(ctx, userID)
	if err != nil {
		return attendance.EntryResponse{}, err
	}

	return attendance.ToEntryResponse(active, s.loc), nil
}

// Reset implements attendance.Service. Voided entries drop out of presence
// and summary queries; an audit row records who did it.
func (s *AttendanceServiceImpl) Reset(ctx context.Context, entryID, adminID string) (attendance.EntryResponse, error) {
	reset, err := s.TimeEntryRepository.Reset(ctx, entryID)
	if err != nil {
		return attendance.EntryResponse{}, err
	}

	s.audit(ctx, adminID, reset.ID, reset.UserID)
	return attendance.ToEntryResponse(reset, s.loc), nil
}

func (s *AttendanceServiceImpl) audit(ctx context.Context, adminID, entryID, targetUserID string) {
	if s.auditRepo == nil {
		return
	}
	// Audit failures never fail the operation they describe.
	_ = s.auditRepo.Create(ctx, admin.AuditLog{
		Action:   "attendance.reset",
		AdminID:  adminID,
		TargetID: &targetUserID,
		Details: map[string]interface{}{
			"time_entry_id": entryID,
		},
	})
}

// History implements attendance.Service.
func (s *AttendanceServiceImpl) History(ctx context.Context, filter attendance.HistoryFilter) ([]attendance.EntryResponse, int64, error) {
	entries, total, err := s.TimeEntryRepository.History(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	responses := make([]attendance.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, attendance.ToEntryResponse(entry, s.loc))
	}

	return responses, total, nil
}

// Summary implements attendance.Service. Covers the trailing seven days of
// completed entries; overtime is the per-day surplus beyond the threshold.
func (s *AttendanceServiceImpl) Summary(ctx context.Context, userID string) (attendance.SummaryResponse, error) {
	since := time.Now().UTC().AddDate(0, 0, -7)

	entries, err := s.TimeEntryRepository.ListCompletedSince(ctx, userID, since)
	if err != nil {
		return attendance.SummaryResponse{}, err
	}

	summary := Summarize(entries, s.loc)
	return attendance.SummaryResponse{
		TotalHours:    summary.TotalHours,
		DaysWorked:    summary.DaysWorked,
		OvertimeHours: summary.OvertimeHours,
	}, nil
}

// Summarize aggregates completed entries into total hours, distinct days
// worked, and overtime beyond the daily threshold.
func Summarize(entries []attendance.TimeEntry, loc *time.Location) attendance.Summary {
	var summary attendance.Summary
	dailyHours := make(map[string]float64)

	for _, entry := range entries {
		if entry.HoursWorked == nil {
			continue
		}
		summary.TotalHours += *entry.HoursWorked
		day := entry.ClockIn.In(loc).Format("2006-01-02")
		dailyHours[day] += *entry.HoursWorked
	}

	summary.DaysWorked = len(dailyHours)
	for _, hours := range dailyHours {
		if hours > attendance.OvertimeThresholdHours {
			summary.OvertimeHours += hours - attendance.OvertimeThresholdHours
		}
	}

	summary.TotalHours = roundTo2(summary.TotalHours)
	summary.OvertimeHours = roundTo2(summary.OvertimeHours)
	return summary
}

func roundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}

// ActiveUsers implements attendance.Service.
func (s *AttendanceServiceImpl) ActiveUsers(ctx context.Context) ([]attendance.EntryResponse, error) {
	entries, err := s.TimeEntryRepository.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, attendance.ToEntryResponse(entry, s.loc))
	}

	return responses, nil
}

// Report implements attendance.Service.
func (s *AttendanceServiceImpl) Report(ctx context.Context, filter attendance.ReportFilter) ([]attendance.EntryResponse, error) {
	if filter.Start.IsZero() || filter.End.IsZero() {
		now := time.Now().In(s.loc)
		filter.Start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.loc)
		filter.End = filter.Start.AddDate(0, 1, 0).Add(-time.Second)
	}

	entries, err := s.TimeEntryRepository.Report(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]attendance.EntryResponse, 0, len(entries))
	for _, entry := range entries {
		responses = append(responses, attendance.ToEntryResponse(entry, s.loc))
	}

	return responses, nil
}
