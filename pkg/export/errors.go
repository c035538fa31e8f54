package export

import "errors"

// Error definitions for export package.
var (
	ErrEmptyPath = errors.New("export path cannot be empty")
)
