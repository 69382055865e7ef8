package resettoken

import (
	c "accounts/internal/core/domain/common"
	"context"
)

// Repository is the keyed store for outstanding reset tokens. Two entries back
// every token: value -> email, and an email-keyed sentinel marking that a
// token is outstanding. Both expire at the token's absolute expiration.
type Repository interface {
	// Save persists the token and its sentinel. The sentinel write is
	// conditional: if a live sentinel already exists for the email, Save
	// returns ErrAlreadyRequested and writes nothing.
	Save(ctx context.Context, token ResetToken) error
	// FindEmail returns the email bound to the value, or ErrTokenDoesNotExist
	// when the entry is absent or expired. Absence is a normal outcome.
	FindEmail(ctx context.Context, value Value) (c.Email, error)
	IsRequested(ctx context.Context, email c.Email) (bool, error)
	// Delete removes both entries, ending the token's lifetime early.
	Delete(ctx context.Context, value Value, email c.Email) error
}
