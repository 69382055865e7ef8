package passwordhasher

import (
	"accounts/internal/core/domain/user"

	"golang.org/x/crypto/bcrypt"
)

// Bcrypt hashes account passwords with bcrypt over the raw password joined
// with a service-wide secret pepper, so a leaked database alone is not enough
// to mount an offline attack.
type Bcrypt struct {
	secret string
	cost   int
}

func NewBcrypt(secret string, cost int) *Bcrypt {
	return &Bcrypt{secret: secret, cost: cost}
}

func (h *Bcrypt) HashPassword(password user.RawPassword) (user.PasswordHash, error) {
	bcryptHash, err := bcrypt.GenerateFromPassword(h.peppered(password), h.cost)
	if err != nil {
		return "", err
	}
	return user.PasswordHash(bcryptHash), nil
}

func (h *Bcrypt) ValidatePassword(password user.RawPassword, hash user.PasswordHash) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), h.peppered(password)) == nil
}

func (h *Bcrypt) peppered(password user.RawPassword) []byte {
	return []byte(string(password) + h.secret)
}
