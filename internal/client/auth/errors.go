package auth

import "errors"

var (
	// ErrAuthRequired is returned when no valid token can be obtained.
	ErrAuthRequired = errors.New("authentication required")

	// ErrNoRefreshToken is returned by the refresher when the store holds none.
	ErrNoRefreshToken = errors.New("no refresh token available")

	// ErrRefreshRejected is returned when the refresh endpoint answers with a
	// non-success status or an unusable payload.
	ErrRefreshRejected = errors.New("refresh rejected")

	errMalformedToken = errors.New("malformed token")
	errNoExpiry       = errors.New("token has no exp claim")
)
