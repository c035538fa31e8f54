package config

import "errors"

// Error definitions for config package.
var (
	ErrConfigNotFound    = errors.New("config file not found")
	ErrOrgIDEmpty        = errors.New("org_id cannot be empty")
	ErrClientIDEmpty     = errors.New("client_id cannot be empty")
	ErrClientSecretEmpty = errors.New("client_secret cannot be empty")
	ErrEmptyMarker       = errors.New("markers cannot contain an empty string")
)
