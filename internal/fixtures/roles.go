package fixtures

import (
	"github.com/rudratic/hr-backend-go/internal/domain/user"
)

// DefaultRoles returns the canonical role records for seeding. Permission
// maps come from the shared enumeration so the seed never drifts from the
// in-process checks.
func DefaultRoles() []user.RoleRecord {
	roles := []user.Role{
		user.RoleAdmin,
		user.RoleSuperAdmin,
		user.RoleHRAdmin,
		user.RoleOpsAdmin,
		user.RoleFinanceAdmin,
		user.RoleSupportAdmin,
		user.RoleViewerAdmin,
		user.RoleManager,
		user.RoleEmployee,
	}

	records := make([]user.RoleRecord, 0, len(roles))
	for _, role := range roles {
		records = append(records, user.RoleRecord{
			Name:        role,
			Permissions: user.RolePermissions[role],
		})
	}

	return records
}
