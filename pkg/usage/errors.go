package usage

import "errors"

// Error definitions for usage package.
var (
	ErrEmptyEntityName       = errors.New("entity name is empty")
	ErrNoMarkers             = errors.New("marker set is empty")
	ErrNoAttributes          = errors.New("candidate has no attributes payload")
	ErrUnknownDescriptor     = errors.New("delegate descriptor ID has no recognized component marker")
	ErrUnserializablePayload = errors.New("failed to serialize attributes payload")
)
