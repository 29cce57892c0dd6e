package admin

import (
	"time"
)

// AuditLogLimit caps the audit log list at the newest rows.
const AuditLogLimit = 100

// AuditLog entity: an immutable trail row for privileged actions.
type AuditLog struct {
	ID        string
	Action    string
	AdminID   string
	TargetID  *string
	Details   map[string]interface{}
	CreatedAt time.Time

	// Join fields (for responses)
	AdminName *string
}

// SystemConfig entity: free-form JSON value under a unique key. Values are
// not schema-checked.
type SystemConfig struct {
	ID        string
	Key       string
	Value     map[string]interface{}
	UpdatedAt time.Time
}

// TableStat is one row of the database-explorer view.
type TableStat struct {
	Table string `json:"table"`
	Count int64  `json:"count"`
	Icon  string `json:"icon"`
}

// Overview summarizes live activity for the admin landing page.
type Overview struct {
	ActiveUsers      int64   `json:"active_users"`
	LiveSessions     int     `json:"live_sessions"`
	InOfficeCount    int     `json:"in_office_count"`
	RemoteCount      int     `json:"remote_count"`
	AttendanceRate   float64 `json:"attendance_rate"`
	PendingLeaves    int64   `json:"pending_leaves"`
	PendingUsers     int64   `json:"pending_users"`
	LongSessionAlert int     `json:"long_session_alert"`
}
