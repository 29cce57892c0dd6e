package kudos

import (
	"time"
)

// Kudos entity: a peer-to-peer recognition note. No approval workflow.
type Kudos struct {
	ID         string
	FromUserID string
	ToUserID   string
	Category   string
	Message    string
	CreatedAt  time.Time

	// Join fields (for responses)
	FromUserName *string
	ToUserName   *string
}
