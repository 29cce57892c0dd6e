package admin

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/rudratic/hr-backend-go/internal/domain/admin"
	"github.com/rudratic/hr-backend-go/internal/domain/attendance"
	"github.com/rudratic/hr-backend-go/internal/domain/user"
)

type AdminServiceImpl struct {
	auditRepo  admin.AuditLogRepository
	configRepo admin.SystemConfigRepository
	statsRepo  admin.StatsRepository
	entryRepo  attendance.TimeEntryRepository
}

func NewAdminService(
	auditRepo admin.AuditLogRepository,
	configRepo admin.SystemConfigRepository,
	statsRepo admin.StatsRepository,
	entryRepo attendance.TimeEntryRepository,
) admin.Service {
	return &AdminServiceImpl{
		auditRepo:  auditRepo,
		configRepo: configRepo,
		statsRepo:  statsRepo,
		entryRepo:  entryRepo,
	}
}

// Stats implements admin.Service.
func (s *AdminServiceImpl) Stats(ctx context.Context) ([]admin.TableStat, error) {
	return s.statsRepo.TableCounts(ctx)
}

// Overview implements admin.Service. Live numbers come from the ACTIVE
// entry set; the attendance rate is live sessions over active accounts.
func (s *AdminServiceImpl) Overview(ctx context.Context) (admin.Overview, error) {
	activeUsers, err := s.statsRepo.CountUsersByStatus(ctx, string(user.StatusActive))
	if err != nil {
		return admin.Overview{}, err
	}

	pendingUsers, err := s.statsRepo.CountUsersByStatus(ctx, string(user.StatusPending))
	if err != nil {
		return admin.Overview{}, err
	}

	pendingLeaves, err := s.statsRepo.CountPendingLeaves(ctx)
	if err != nil {
		return admin.Overview{}, err
	}

	sessions, err := s.entryRepo.ListActive(ctx)
	if err != nil {
		return admin.Overview{}, err
	}

	overview := admin.Overview{
		ActiveUsers:   activeUsers,
		LiveSessions:  len(sessions),
		PendingLeaves: pendingLeaves,
		PendingUsers:  pendingUsers,
	}

	now := time.Now()
	for _, e := range sessions {
		switch e.ClockType {
		case attendance.ClockTypeInOffice:
			overview.InOfficeCount++
		case attendance.ClockTypeRemote:
			overview.RemoteCount++
		}
		if now.Sub(e.ClockIn).Hours() > attendance.OvertimeThresholdHours {
			overview.LongSessionAlert++
		}
	}

	if activeUsers > 0 {
		rate := float64(len(sessions)) / float64(activeUsers) * 100
		overview.AttendanceRate = math.Round(rate*100) / 100
	}

	return overview, nil
}

// AuditLogs implements admin.Service.
func (s *AdminServiceImpl) AuditLogs(ctx context.Context) ([]admin.AuditLogResponse, error) {
	logs, err := s.auditRepo.List(ctx, admin.AuditLogLimit)
	if err != nil {
		return nil, err
	}

	responses := make([]admin.AuditLogResponse, 0, len(logs))
	for _, l := range logs {
		responses = append(responses, admin.ToAuditLogResponse(l))
	}

	return responses, nil
}

// Config implements admin.Service.
func (s *AdminServiceImpl) Config(ctx context.Context, key string) (admin.SystemConfig, error) {
	return s.configRepo.Get(ctx, key)
}

// Configs implements admin.Service.
func (s *AdminServiceImpl) Configs(ctx context.Context) ([]admin.SystemConfig, error) {
	return s.configRepo.GetAll(ctx)
}

// SetConfig implements admin.Service. Every write lands in the audit trail.
func (s *AdminServiceImpl) SetConfig(ctx context.Context, adminID string, req admin.SetConfigRequest) (admin.SystemConfig, error) {
	if err := req.Validate(); err != nil {
		return admin.SystemConfig{}, err
	}

	cfg, err := s.configRepo.Upsert(ctx, req.Key, req.Value)
	if err != nil {
		return admin.SystemConfig{}, err
	}

	s.audit(ctx, "config.set", adminID, map[string]interface{}{"key": req.Key})

	return cfg, nil
}

// BulkSetConfig implements admin.Service.
func (s *AdminServiceImpl) BulkSetConfig(ctx context.Context, adminID string, req admin.BulkConfigRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.configRepo.BulkUpsert(ctx, req.Configs); err != nil {
		return err
	}

	keys := make([]string, 0, len(req.Configs))
	for _, cfg := range req.Configs {
		keys = append(keys, cfg.Key)
	}
	s.audit(ctx, "config.bulk_set", adminID, map[string]interface{}{"keys": keys})

	return nil
}

func (s *AdminServiceImpl) audit(ctx context.Context, action, adminID string, details map[string]interface{}) {
	err := s.auditRepo.Create(ctx, admin.AuditLog{
		Action:  action,
		AdminID: adminID,
		Details: details,
	})
	if err != nil {
		slog.Error("Failed to write audit log", "action", action, "error", err)
	}
}
