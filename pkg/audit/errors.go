package audit

import "errors"

// Error definitions for audit package.
var (
	ErrClientRequired   = errors.New("a Reactor client is required")
	ErrConfigRequired   = errors.New("a configuration is required")
	ErrNoCompanies      = errors.New("credentials give access to no company")
	ErrPropertyNotFound = errors.New("property not found")
)
