package advisor

import "errors"

// Domain-specific errors for the advisor package.
var (
	ErrEmptyQuery = errors.New("query text is empty")
)
