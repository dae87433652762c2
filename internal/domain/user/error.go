package user

import "errors"

var (
	ErrNotFound        = errors.New("user not found")
	ErrInvalidUsername = errors.New("username must be 3-20 characters and contain only letters, numbers, underscores, or hyphens")
	ErrUsernameTaken   = errors.New("username already taken")
)
