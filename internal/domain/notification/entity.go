package notification

import (
	"time"
)

// Type classifies how a notification renders client-side.
type Type string

const (
	TypeInfo    Type = "INFO"
	TypeSuccess Type = "SUCCESS"
	TypeWarning Type = "WARNING"
	TypeError   Type = "ERROR"
)

var Types = []string{
	string(TypeInfo),
	string(TypeSuccess),
	string(TypeWarning),
	string(TypeError),
}

// ListLimit caps the list endpoint at the newest rows.
const ListLimit = 50

// Notification entity
type Notification struct {
	ID         string
	UserID     string
	Title      string
	Message    string
	Type       Type
	IsRead     bool
	ActionData map[string]interface{}
	CreatedAt  time.Time
}
