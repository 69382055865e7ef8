package user

import (
	c "accounts/internal/core/domain/common"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

type ID int64

type PasswordHash string

func (p PasswordHash) String() string {
	return "***"
}

type RawPassword string

func (p RawPassword) String() string {
	return "***"
}

// NewRawPassword validates a plain-text password against the account policy:
// not blank, length strictly between 4 and 20 characters.
func NewRawPassword(value string) (RawPassword, error) {
	if strings.TrimSpace(value) == "" {
		return "", ErrPasswordOutOfRange
	}
	// The policy counts characters, not bytes.
	length := utf8.RuneCountInString(value)
	if length <= 4 || length >= 20 {
		return "", ErrPasswordOutOfRange
	}
	return RawPassword(value), nil
}

type Name string

// NewName validates an account name: 4 to 20 ASCII letters or digits.
func NewName(value string) (Name, error) {
	if len(value) < 4 || len(value) > 20 {
		return "", ErrInvalidName
	}
	for _, r := range value {
		if r > unicode.MaxASCII || (!unicode.IsLetter(r) && !unicode.IsDigit(r)) {
			return "", ErrInvalidName
		}
	}
	return Name(value), nil
}

type AccessToken string

type User struct {
	ID           ID
	Email        c.Email
	Name         Name
	PasswordHash PasswordHash
	CreatedAt    time.Time
}
