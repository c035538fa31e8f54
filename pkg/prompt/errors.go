package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrInvalidConfirmationInput = errors.New("invalid input: please enter 'y' or 'n'")
	ErrNoProperties             = errors.New("no properties available")
	ErrNoSelection              = errors.New("no selection made")
)
