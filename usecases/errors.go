package usecases

import "errors"

// Sentinel errors handlers map onto HTTP status codes.
var (
	ErrMissingFields      = errors.New("all fields are required")
	ErrEmailTaken         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTodoNotFound       = errors.New("todo not found")
)
