package resettoken

import (
	c "accounts/internal/core/domain/common"
	"time"
)

// Value is the opaque bearer credential for one password reset. It carries no
// structure; uniqueness is probabilistic and the keyed store is the only
// authority on whether a value is live.
type Value string

const (
	MinLifetime = time.Minute
	MaxLifetime = 24 * time.Hour
)

// Expiration is the absolute instant a reset token stops being valid.
type Expiration time.Time

// NewExpiration validates that the expiration lies between MinLifetime and
// MaxLifetime from now. Values outside the window indicate misconfiguration,
// not user input.
func NewExpiration(value time.Time, now time.Time) (Expiration, error) {
	lifetime := value.Sub(now)
	if lifetime < MinLifetime || lifetime > MaxLifetime {
		return Expiration{}, ErrExpirationOutOfRange
	}
	return Expiration(value), nil
}

func (e Expiration) Time() time.Time {
	return time.Time(e)
}

// ResetToken binds a token value to the account it may reset. It is never
// durably persisted; it lives in the keyed store until ExpiresAt.
type ResetToken struct {
	Email     c.Email
	Value     Value
	ExpiresAt Expiration
}
