// Package reactor provides a client for the Adobe Experience Platform Tags
// (Launch) Reactor API.
package reactor

import "errors"

// Error definitions for reactor package.
var (
	ErrUnauthorized       = errors.New("unauthorized: check client credentials")
	ErrNotFound           = errors.New("resource not found")
	ErrRateLimited        = errors.New("Reactor API rate limit exceeded")
	ErrUnexpectedStatus   = errors.New("unexpected response status")
	ErrTokenExchange      = errors.New("failed to obtain IMS access token")
	ErrMissingCredentials = errors.New("org ID, client ID and client secret are required")
)
