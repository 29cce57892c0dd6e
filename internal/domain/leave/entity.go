package leave

import (
	"time"
)

type Type string

const (
	TypeSick      Type = "SICK"
	TypeCasual    Type = "CASUAL"
	TypeVacation  Type = "VACATION"
	TypeMaternity Type = "MATERNITY"
	TypeUnpaid    Type = "UNPAID"
)

var Types = []string{
	string(TypeSick),
	string(TypeCasual),
	string(TypeVacation),
	string(TypeMaternity),
	string(TypeUnpaid),
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// Request entity
type Request struct {
	ID              string
	UserID          string
	Type            Type
	StartDate       time.Time
	EndDate         time.Time
	Reason          string
	Status          Status
	RejectionReason *string
	ApprovedBy      *string
	ApprovedAt      *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Join fields (for responses)
	UserName *string
}

// Days counts the calendar days the request spans, inclusive of both ends.
func (r *Request) Days() int {
	return int(r.EndDate.Sub(r.StartDate).Hours()/24) + 1
}

// Balance entity: per-user, per-year remaining day counts. MATERNITY and
// UNPAID leave are not tracked against any bucket.
type Balance struct {
	ID        string
	UserID    string
	Year      int
	Sick      int
	Casual    int
	Earned    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	DefaultSickDays   = 12
	DefaultCasualDays = 12
	DefaultEarnedDays = 15
)

// BucketFor maps a leave type to the balance bucket it draws from.
// The second return is false for untracked types.
func (b *Balance) BucketFor(t Type) (int, bool) {
	switch t {
	case TypeSick:
		return b.Sick, true
	case TypeCasual:
		return b.Casual, true
	case TypeVacation:
		return b.Earned, true
	default:
		return 0, false
	}
}
