package domain

import "errors"

// Account errors.
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidRole        = errors.New("invalid role")
)

// Token verification errors. All three mean "reject the request"; the
// distinction only matters for logging and metrics.
var (
	ErrTokenMalformed        = errors.New("token malformed")
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	ErrTokenExpired          = errors.New("token expired")
)

// ErrForbidden is returned when an authenticated role is not permitted.
var ErrForbidden = errors.New("access denied")
