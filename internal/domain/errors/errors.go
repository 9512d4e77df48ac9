package errors

import "errors"

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("not authorized to access this resource")
	ErrUserExists         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
