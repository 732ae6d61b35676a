package types

import "errors"

var (
	// ErrNotLoggedIn is returned by role-gated operations when no profile is stored.
	ErrNotLoggedIn = errors.New("not logged in; run login first")

	// ErrRoleDenied is returned when the stored role may not use an operation.
	ErrRoleDenied = errors.New("role not permitted")

	// ErrInvalidInput is returned when a required field is missing or out of range.
	ErrInvalidInput = errors.New("invalid input")
)
