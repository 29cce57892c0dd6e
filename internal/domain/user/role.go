package user

import "strings"

type Role string

// Canonical role set. Every role comparison in the codebase goes through the
// helpers below so the routing layer and the per-page gates cannot drift.
const (
	RoleAdmin        Role = "ADMIN"
	RoleSuperAdmin   Role = "SUPER_ADMIN"
	RoleHRAdmin      Role = "HR_ADMIN"
	RoleOpsAdmin     Role = "OPS_ADMIN"
	RoleFinanceAdmin Role = "FINANCE_ADMIN"
	RoleSupportAdmin Role = "SUPPORT_ADMIN"
	RoleViewerAdmin  Role = "VIEWER_ADMIN"
	RoleManager      Role = "MANAGER"
	RoleEmployee     Role = "EMPLOYEE"
)

var adminRoles = map[Role]struct{}{
	RoleAdmin:        {},
	RoleSuperAdmin:   {},
	RoleHRAdmin:      {},
	RoleOpsAdmin:     {},
	RoleFinanceAdmin: {},
	RoleSupportAdmin: {},
	RoleViewerAdmin:  {},
}

// NormalizeRole upper-cases a raw role string so comparisons are
// case-insensitive everywhere.
func NormalizeRole(role string) Role {
	return Role(strings.ToUpper(strings.TrimSpace(role)))
}

// IsAdminRole reports whether the role belongs to the admin family.
func IsAdminRole(role Role) bool {
	_, ok := adminRoles[NormalizeRole(string(role))]
	return ok
}

// IsApproverRole reports whether the role may transition a leave request
// out of PENDING.
func IsApproverRole(role Role) bool {
	switch NormalizeRole(string(role)) {
	case RoleAdmin, RoleSuperAdmin, RoleHRAdmin, RoleManager:
		return true
	}
	return false
}

// DashboardByRole maps a role to its landing route. Total and pure: unknown
// or empty roles land on the employee dashboard.
func DashboardByRole(role Role) string {
	normalized := NormalizeRole(string(role))
	if IsAdminRole(normalized) {
		return "/admin"
	}
	if normalized == RoleManager {
		return "/manager"
	}
	return "/dashboard"
}

// RolePermissions maps roles to their permission sets. Seeded into the roles
// table and used for in-process permission checks.
var RolePermissions = map[Role]Permissions{
	RoleAdmin: {
		CanManageUsers:     true,
		CanApproveLeaves:   true,
		CanEditAttendance:  true,
		CanExportReports:   true,
		CanConfigureSystem: true,
		CanViewAuditLogs:   true,
		CanManageAdmins:    true,
	},
	RoleSuperAdmin: {
		CanManageUsers:     true,
		CanApproveLeaves:   true,
		CanEditAttendance:  true,
		CanExportReports:   true,
		CanConfigureSystem: true,
		CanViewAuditLogs:   true,
		CanManageAdmins:    true,
	},
	RoleHRAdmin: {
		CanManageUsers:    true,
		CanApproveLeaves:  true,
		CanEditAttendance: true,
		CanExportReports:  true,
	},
	RoleOpsAdmin: {
		CanEditAttendance: true,
		CanExportReports:  true,
	},
	RoleFinanceAdmin: {
		CanExportReports: true,
	},
	RoleSupportAdmin: {
		CanViewAuditLogs: true,
	},
	RoleViewerAdmin: {
		CanViewAuditLogs: true,
	},
	RoleManager: {
		CanApproveLeaves: true,
		CanExportReports: true,
	},
	RoleEmployee: {},
}

// HasPermission checks a single permission flag for a role. Unknown roles
// have no permissions.
func HasPermission(role Role, check func(Permissions) bool) bool {
	perms, exists := RolePermissions[NormalizeRole(string(role))]
	if !exists {
		return false
	}
	return check(perms)
}
