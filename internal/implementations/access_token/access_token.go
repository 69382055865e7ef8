package accesstoken

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/user"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWT issues HS256-signed bearer tokens with the user ID as subject.
type JWT struct {
	secret        []byte
	issuer        string
	validDuration time.Duration
	now           func() time.Time
}

func NewJWT(secret string, issuer string, validDuration time.Duration, now func() time.Time) *JWT {
	if secret == "" {
		panic("secret must not be empty")
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &JWT{
		secret:        []byte(secret),
		issuer:        issuer,
		validDuration: validDuration,
		now:           now,
	}
}

func (g *JWT) Issue(u user.User) (user.AccessToken, error) {
	now := g.now()
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(int64(u.ID), 10),
		Issuer:    g.issuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(g.validDuration)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", err
	}
	return user.AccessToken(signed), nil
}
