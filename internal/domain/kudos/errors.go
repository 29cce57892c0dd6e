package kudos

import "errors"

var (
	ErrSelfKudos         = errors.New("cannot send kudos to yourself")
	ErrRecipientNotFound = errors.New("kudos recipient not found")
)
