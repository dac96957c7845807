package service

import "errors"

// Sentinel errors shared by all services. Handlers translate these to HTTP
// status codes in one place (see handler.respondError):
//
//	validation/duplicate → 400/409, authentication → 401,
//	authorization → 403, not found → 404, anything else → 500.
var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrTokenInvalid       = errors.New("token invalid or revoked")
	ErrForbidden          = errors.New("insufficient permissions")
	ErrNotFound           = errors.New("record not found")
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateCIN       = errors.New("cin already registered")
	ErrInvalidStatus      = errors.New("status must be one of Pending, Entered, Exited")
)
