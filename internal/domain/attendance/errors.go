package attendance

import "errors"

var (
	ErrEntryNotFound    = errors.New("time entry not found")
	ErrAlreadyClockedIn = errors.New("an active time entry already exists")
	ErrNotClockedIn     = errors.New("no active time entry found")
	ErrSessionTooShort  = errors.New("session shorter than the minimum duration")
	ErrSessionTooLong   = errors.New("session exceeds the maximum duration")
	ErrEntryNotActive   = errors.New("time entry is not active")
)
