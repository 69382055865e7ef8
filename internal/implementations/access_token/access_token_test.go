package accesstoken

import (
	"accounts/internal/core/domain/user"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const SECRET = "test-secret"

func TestIssuedTokenIsValid(t *testing.T) {
	assert := require.New(t)
	now := time.Now().UTC().Truncate(time.Second)
	issuer := NewJWT(SECRET, "accounts", time.Hour, func() time.Time { return now })

	token, err := issuer.Issue(user.User{ID: user.ID(42)})
	assert.Nil(err)
	assert.NotEmpty(token)

	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(
		string(token),
		claims,
		func(t *jwt.Token) (interface{}, error) { return []byte(SECRET), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
		jwt.WithIssuer("accounts"),
	)
	assert.Nil(err)
	assert.True(parsed.Valid)
	assert.Equal("42", claims.Subject)
	assert.Equal(now.Add(time.Hour), claims.ExpiresAt.Time.UTC())
}

func TestTokenSignedWithOtherSecretIsRejected(t *testing.T) {
	assert := require.New(t)
	issuer := NewJWT("other-secret", "accounts", time.Hour, func() time.Time { return time.Now().UTC() })

	token, err := issuer.Issue(user.User{ID: user.ID(1)})
	assert.Nil(err)

	_, err = jwt.Parse(
		string(token),
		func(t *jwt.Token) (interface{}, error) { return []byte(SECRET), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}),
	)
	assert.NotNil(err)
}
