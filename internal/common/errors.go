package common

import "errors"

var (
	// repository-level errors
	ErrorNotFound = errors.New("not found")

	// remote client errors
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrTokenExpired = errors.New("token expired")

	// a missing local profile is unrecoverable without a remote
	// re-fetch, so callers treat it as fatal at login/init
	ErrNoLocalProfile = errors.New("no local profile")
)
