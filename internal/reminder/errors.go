package reminder

import "errors"

// Domain-specific errors for the reminder package.
var (
	ErrNotFound      = errors.New("reminder not found")
	ErrEmptyText     = errors.New("reminder text is empty")
	ErrMissingWhen   = errors.New("reminder time is required")
	ErrNotOwner      = errors.New("reminder belongs to another user")
	ErrMissingUserID = errors.New("user id is required")
)
