package drafts

import "errors"

var (
	// ErrInvalidID is returned for empty or malformed draft ids
	ErrInvalidID = errors.New("invalid draft id")
	// ErrCorruptDraft is returned when a stored draft cannot be decoded
	ErrCorruptDraft = errors.New("corrupt draft")
)
