package admin

import (
	"context"
)

// AuditLogRepository - interface for audit_logs table
type AuditLogRepository interface {
	Create(ctx context.Context, log AuditLog) error
	List(ctx context.Context, limit int) ([]AuditLog, error)
}

// SystemConfigRepository - interface for system_configs table
type SystemConfigRepository interface {
	Get(ctx context.Context, key string) (SystemConfig, error)
	GetAll(ctx context.Context) ([]SystemConfig, error)
	Upsert(ctx context.Context, key string, value map[string]interface{}) (SystemConfig, error)
	BulkUpsert(ctx context.Context, configs []SetConfigRequest) error
}

// StatsRepository - row counts for the database-explorer view
type StatsRepository interface {
	TableCounts(ctx context.Context) ([]TableStat, error)
	CountUsersByStatus(ctx context.Context, status string) (int64, error)
	CountPendingLeaves(ctx context.Context) (int64, error)
}
