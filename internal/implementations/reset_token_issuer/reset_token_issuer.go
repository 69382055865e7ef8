package resettokenissuer

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/resettoken"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UUID issues uuid-v4 token values (crypto/rand backed) and expirations
// computed from a fixed TTL.
type UUID struct {
	ttl time.Duration
	now func() time.Time
}

// NewUUID validates the configured TTL up front: a TTL outside the allowed
// token lifetime window is a configuration error and the service must not
// start serving reset requests with it.
func NewUUID(ttl time.Duration, now func() time.Time) (*UUID, error) {
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	t := now()
	if _, err := resettoken.NewExpiration(t.Add(ttl), t); err != nil {
		return nil, fmt.Errorf("invalid password reset TTL %s: %w", ttl, err)
	}
	return &UUID{ttl: ttl, now: now}, nil
}

func (g *UUID) GenerateValue() resettoken.Value {
	return resettoken.Value(uuid.New().String())
}

func (g *UUID) Expiration() resettoken.Expiration {
	t := g.now()
	expiration, err := resettoken.NewExpiration(t.Add(g.ttl), t)
	if err != nil {
		// TTL was validated at construction, this is unreachable.
		panic(e.NewInvalidStateError(fmt.Sprintf("invalid password reset TTL %s: %v", g.ttl, err)))
	}
	return expiration
}
