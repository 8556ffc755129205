package user

import "errors"

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrNotAdmin         = errors.New("admin privileges required")
	ErrInvalidInput     = errors.New("invalid input")
)
