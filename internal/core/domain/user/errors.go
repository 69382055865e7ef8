package user

import (
	"errors"
)

var (
	ErrUserAlreadyExists  = errors.New("user with given email or name already exists")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidName        = errors.New("invalid account name")
	ErrPasswordOutOfRange = errors.New("password is too short or too long")
)
