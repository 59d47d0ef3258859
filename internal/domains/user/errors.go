package user

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")

	// Conflict errors name the colliding field so clients get an actionable
	// message. The unique indexes in the store are the authoritative guard.
	ErrUsernameAlreadyExists = errors.New("username already exists")
	ErrEmailAlreadyExists    = errors.New("email already exists")
)
