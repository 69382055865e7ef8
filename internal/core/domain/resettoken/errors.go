package resettoken

import (
	"errors"
)

var (
	ErrExpirationOutOfRange = errors.New("reset token expiration is out of valid range")
	ErrAlreadyRequested     = errors.New("reset token for this account already requested")
	ErrEmptyToken           = errors.New("reset token is empty")
	ErrTokenDoesNotExist    = errors.New("reset token does not exist or already expired")
	ErrPasswordMismatch     = errors.New("password confirmation does not match")
)
