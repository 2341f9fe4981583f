package auth

import "errors"

var (
	ErrUserAlreadyExists  = errors.New("user with that username or email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidToken       = errors.New("invalid or expired token")
)
