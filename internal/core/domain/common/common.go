package common

import (
	"errors"
	"regexp"
	"strings"
)

var ErrInvalidEmail = errors.New("invalid email")

// Local parts are lowercase alphanumeric runs optionally joined by a single
// dot, underscore or hyphen, with an optional +tag. Consecutive separators
// (e.g. "a..b@x.com") do not match.
var emailRegexp = regexp.MustCompile(`^[a-z0-9]+(?:[._-][a-z0-9]+)*(?:\+[a-z0-9-]+)?@(?:[a-z0-9-]+\.)+[a-z]{2,4}$`)

type Email string

// NewEmail normalizes a raw email without validating it. Use it for values
// read back from storage, where the format was checked on the way in.
func NewEmail(rawEmail string) Email {
	return Email(strings.ToLower(rawEmail))
}

// ParseEmail normalizes and validates a user-supplied email address.
func ParseEmail(rawEmail string) (Email, error) {
	email := strings.ToLower(rawEmail)
	if !emailRegexp.MatchString(email) {
		return "", ErrInvalidEmail
	}
	return Email(email), nil
}
