package admin

import (
	"context"
)

// Service backs the admin console: live overview, database explorer,
// audit trail, and system configuration.
type Service interface {
	// Stats returns per-table row counts for the database explorer.
	Stats(ctx context.Context) ([]TableStat, error)
	// Overview summarizes live attendance and pending approvals.
	Overview(ctx context.Context) (Overview, error)
	// AuditLogs returns the newest audit rows.
	AuditLogs(ctx context.Context) ([]AuditLogResponse, error)

	Config(ctx context.Context, key string) (SystemConfig, error)
	Configs(ctx context.Context) ([]SystemConfig, error)
	SetConfig(ctx context.Context, adminID string, req SetConfigRequest) (SystemConfig, error)
	BulkSetConfig(ctx context.Context, adminID string, req BulkConfigRequest) error
}
