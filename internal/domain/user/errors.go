package user

import "errors"

var (
	ErrNotFound           = errors.New("user not found")
	ErrAlreadyRegistered  = errors.New("email or username is already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrNoAvatar           = errors.New("user has no avatar")
)
