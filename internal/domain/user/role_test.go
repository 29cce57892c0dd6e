package user

import (
	"testing"
)

func TestDashboardByRole(t *testing.T) {
	tests := []struct {
		name string
		role Role
		want string
	}{
		{"admin", RoleAdmin, "/admin"},
		{"super admin", RoleSuperAdmin, "/admin"},
		{"hr admin", RoleHRAdmin, "/admin"},
		{"ops admin", RoleOpsAdmin, "/admin"},
		{"finance admin", RoleFinanceAdmin, "/admin"},
		{"support admin", RoleSupportAdmin, "/admin"},
		{"viewer admin", RoleViewerAdmin, "/admin"},
		{"manager", RoleManager, "/manager"},
		{"employee", RoleEmployee, "/dashboard"},
		{"lowercase admin", Role("admin"), "/admin"},
		{"mixed case manager", Role("Manager"), "/manager"},
		{"unknown role", Role("CONTRACTOR"), "/dashboard"},
		{"empty role", Role(""), "/dashboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DashboardByRole(tt.role); got != tt.want {
				t.Errorf("DashboardByRole(%q) = %q, want %q", tt.role, got, tt.want)
			}
		})
	}
}

func TestIsAdminRole(t *testing.T) {
	admins := []Role{RoleAdmin, RoleSuperAdmin, RoleHRAdmin, RoleOpsAdmin, RoleFinanceAdmin, RoleSupportAdmin, RoleViewerAdmin}
	for _, role := range admins {
		if !IsAdminRole(role) {
			t.Errorf("IsAdminRole(%q) = false, want true", role)
		}
	}

	others := []Role{RoleManager, RoleEmployee, Role("CONTRACTOR"), Role("")}
	for _, role := range others {
		if IsAdminRole(role) {
			t.Errorf("IsAdminRole(%q) = true, want false", role)
		}
	}
}

func TestIsApproverRole(t *testing.T) {
	tests := []struct {
		role Role
		want bool
	}{
		{RoleAdmin, true},
		{RoleSuperAdmin, true},
		{RoleHRAdmin, true},
		{RoleManager, true},
		{RoleOpsAdmin, false},
		{RoleFinanceAdmin, false},
		{RoleSupportAdmin, false},
		{RoleViewerAdmin, false},
		{RoleEmployee, false},
		{Role("manager"), true},
		{Role(""), false},
	}

	for _, tt := range tests {
		if got := IsApproverRole(tt.role); got != tt.want {
			t.Errorf("IsApproverRole(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestHasPermission(t *testing.T) {
	canManageUsers := func(p Permissions) bool { return p.CanManageUsers }
	canApproveLeaves := func(p Permissions) bool { return p.CanApproveLeaves }
	canViewAuditLogs := func(p Permissions) bool { return p.CanViewAuditLogs }

	if !HasPermission(RoleAdmin, canManageUsers) {
		t.Error("ADMIN should be able to manage users")
	}
	if !HasPermission(RoleHRAdmin, canApproveLeaves) {
		t.Error("HR_ADMIN should be able to approve leaves")
	}
	if HasPermission(RoleViewerAdmin, canManageUsers) {
		t.Error("VIEWER_ADMIN should not be able to manage users")
	}
	if !HasPermission(RoleViewerAdmin, canViewAuditLogs) {
		t.Error("VIEWER_ADMIN should be able to view audit logs")
	}
	if HasPermission(RoleEmployee, canApproveLeaves) {
		t.Error("EMPLOYEE should not be able to approve leaves")
	}
	if HasPermission(Role("CONTRACTOR"), canManageUsers) {
		t.Error("unknown roles should have no permissions")
	}
}

func TestUserRoleDefaultsToEmployee(t *testing.T) {
	u := User{}
	if got := u.Role(); got != RoleEmployee {
		t.Errorf("Role() = %q, want EMPLOYEE when no role is assigned", got)
	}

	name := string(RoleManager)
	u.RoleName = &name
	if got := u.Role(); got != RoleManager {
		t.Errorf("Role() = %q, want MANAGER", got)
	}
}
