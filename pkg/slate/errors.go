package slate

import "errors"

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired       = errors.New("config is required")
	ErrServerURLRequired    = errors.New("server URL is required")
	ErrProjectNameRequired  = errors.New("project name is required")
	ErrIdentifierRequired   = errors.New("entity identifier is required")
	ErrInvalidLinkDirection = errors.New(`link direction must be "in" or "out"`)
)
