package announcement

import (
	"time"
)

// Announcement entity. EventDate, when set, surfaces the announcement on
// the shared calendar.
type Announcement struct {
	ID        string
	Title     string
	Content   string
	Type      string
	Priority  string
	EventDate *time.Time
	AuthorID  string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Join fields (for responses)
	AuthorName *string
}
