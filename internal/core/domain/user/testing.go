package user

import (
	c "accounts/internal/core/domain/common"
	"context"
	"crypto/md5"
	"fmt"
	"io"
	"sync"
)

type FakeUserRepository struct {
	Users       []User
	ReturnError bool

	CreateCallCount      int
	ExistsCallCount      int
	SetPasswordCallCount int

	lock sync.Mutex
}

func NewFakeUserRepository() *FakeUserRepository {
	return &FakeUserRepository{Users: make([]User, 0, 10)}
}

func (r *FakeUserRepository) Create(ctx context.Context, input CreateUserInput) (u User, err error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.CreateCallCount++
	if r.ReturnError {
		return u, fmt.Errorf("could not create user %v", input)
	}
	maxID := ID(0)
	for _, existing := range r.Users {
		if existing.Email == input.Email || existing.Name == input.Name {
			return u, ErrUserAlreadyExists
		}
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	u = User{
		ID:           maxID + 1,
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: input.PasswordHash,
		CreatedAt:    input.CreatedAt,
	}
	r.Users = append(r.Users, u)
	return u, nil
}

func (r *FakeUserRepository) GetByEmail(ctx context.Context, email c.Email) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user by email %s", email)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Users {
		if existing.Email == email {
			return existing, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) GetByName(ctx context.Context, name Name) (u User, err error) {
	if r.ReturnError {
		return u, fmt.Errorf("could not get user by name %s", name)
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	for _, existing := range r.Users {
		if existing.Name == name {
			return existing, nil
		}
	}
	return u, ErrUserDoesNotExist
}

func (r *FakeUserRepository) Exists(ctx context.Context, email c.Email) (bool, error) {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.ExistsCallCount++
	if r.ReturnError {
		return false, fmt.Errorf("could not check user existence for %s", email)
	}
	for _, existing := range r.Users {
		if existing.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *FakeUserRepository) SetPassword(ctx context.Context, email c.Email, password PasswordHash) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.SetPasswordCallCount++
	if r.ReturnError {
		return fmt.Errorf("could not set password for %s", email)
	}
	for ix := range r.Users {
		if r.Users[ix].Email == email {
			r.Users[ix].PasswordHash = password
			return nil
		}
	}
	return ErrUserDoesNotExist
}

type FakePasswordHasher struct {
	HashCallCount int
	lock          sync.Mutex
}

func NewFakePasswordHasher() *FakePasswordHasher {
	return &FakePasswordHasher{}
}

func (h *FakePasswordHasher) HashPassword(password RawPassword) (PasswordHash, error) {
	h.lock.Lock()
	h.HashCallCount++
	h.lock.Unlock()
	hash := md5.New()
	io.WriteString(hash, string(password))
	return PasswordHash(fmt.Sprintf("%x", hash.Sum(nil))), nil
}

func (h *FakePasswordHasher) ValidatePassword(password RawPassword, hash PasswordHash) bool {
	actualHash, err := h.HashPassword(password)
	if err != nil {
		return false
	}
	return actualHash == hash
}

type FakeAccessTokenIssuer struct {
	Token       AccessToken
	ReturnError bool
	IssuedFor   []User
}

func NewFakeAccessTokenIssuer(token string) *FakeAccessTokenIssuer {
	return &FakeAccessTokenIssuer{Token: AccessToken(token)}
}

func (g *FakeAccessTokenIssuer) Issue(u User) (AccessToken, error) {
	if g.ReturnError {
		return "", fmt.Errorf("could not issue access token for user %d", u.ID)
	}
	g.IssuedFor = append(g.IssuedFor, u)
	return g.Token, nil
}
