package taxonomy

import "errors"

// Domain-specific errors for the taxonomy package.
var (
	ErrEmptyInput   = errors.New("query text is empty")
	ErrEmptyPattern = errors.New("pattern table has no signals")
)
