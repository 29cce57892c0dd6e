package user

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusPending   Status = "PENDING"
	StatusSuspended Status = "SUSPENDED"
)

// User entity
type User struct {
	ID           string
	Email        string
	PasswordHash *string
	Name         string
	RoleID       *string
	Phone        *string
	Department   *string
	Designation  *string
	AvatarURL    *string
	Status       Status
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join fields (for responses)
	RoleName *string
}

// Role returns the user's role, defaulting to EMPLOYEE when none is assigned.
func (u *User) Role() Role {
	if u.RoleName == nil {
		return RoleEmployee
	}
	return Role(*u.RoleName)
}

// IsActive reports whether the account may authenticate.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// Permissions is the flat boolean permission map stored as JSONB on roles.
type Permissions struct {
	CanManageUsers     bool `json:"canManageUsers"`
	CanApproveLeaves   bool `json:"canApproveLeaves"`
	CanEditAttendance  bool `json:"canEditAttendance"`
	CanExportReports   bool `json:"canExportReports"`
	CanConfigureSystem bool `json:"canConfigureSystem"`
	CanViewAuditLogs   bool `json:"canViewAuditLogs"`
	CanManageAdmins    bool `json:"canManageAdmins"`
}

// Value implements driver.Valuer for database storage
func (p Permissions) Value() (driver.Value, error) {
	return json.Marshal(p)
}

// Scan implements sql.Scanner for database retrieval
func (p *Permissions) Scan(value interface{}) error {
	if value == nil {
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan Permissions: invalid type")
	}

	return json.Unmarshal(bytes, p)
}

// RoleRecord is a stored role row: unique name plus its permission map.
type RoleRecord struct {
	ID          string
	Name        Role
	Permissions Permissions
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
