package resettokenissuer

import (
	"accounts/internal/core/domain/resettoken"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpirationFollowsTTL(t *testing.T) {
	now := func() time.Time { return time.Now().UTC() }
	issuer, err := NewUUID(2*time.Hour, now)
	require.Nil(t, err)

	expiration := issuer.Expiration()

	assert.WithinDuration(t, time.Now().UTC().Add(2*time.Hour), expiration.Time(), 100*time.Millisecond)
}

func TestInvalidTTLRefusesConstruction(t *testing.T) {
	now := func() time.Time { return time.Now().UTC() }

	for _, ttl := range []time.Duration{
		-10 * time.Second,
		0,
		10 * time.Second,
		25 * time.Hour,
	} {
		_, err := NewUUID(ttl, now)
		require.ErrorIs(t, err, resettoken.ErrExpirationOutOfRange, ttl.String())
	}
}

func TestGeneratedValuesAreUnique(t *testing.T) {
	issuer, err := NewUUID(time.Hour, func() time.Time { return time.Now().UTC() })
	require.Nil(t, err)

	seen := make(map[resettoken.Value]bool)
	for i := 0; i < 1000; i++ {
		value := issuer.GenerateValue()
		require.NotEmpty(t, value)
		require.False(t, seen[value])
		seen[value] = true
	}
}
