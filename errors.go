package htmlify

import "errors"

// Sentinel errors for library operations.
var (
	ErrNilApp                = errors.New("app cannot be nil")
	ErrInvalidStructuredData = errors.New("structured data must be a map or string")
)
