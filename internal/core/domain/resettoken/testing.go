package resettoken

import (
	c "accounts/internal/core/domain/common"
	"context"
	"fmt"
	"sync"
)

type FakeRepository struct {
	Tokens      map[Value]c.Email
	Requested   map[c.Email]bool
	ReturnError bool
	// ForceNotRequested makes IsRequested report false even when a sentinel
	// exists, so tests can drive the check-then-act race into Save.
	ForceNotRequested bool

	SaveCallCount   int
	DeleteCallCount int

	lock sync.Mutex
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		Tokens:    make(map[Value]c.Email),
		Requested: make(map[c.Email]bool),
	}
}

func (r *FakeRepository) Save(ctx context.Context, token ResetToken) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.SaveCallCount++
	if r.ReturnError {
		return fmt.Errorf("could not save reset token %v", token)
	}
	if r.Requested[token.Email] {
		return ErrAlreadyRequested
	}
	r.Requested[token.Email] = true
	r.Tokens[token.Value] = token.Email
	return nil
}

func (r *FakeRepository) FindEmail(ctx context.Context, value Value) (c.Email, error) {
	if r.ReturnError {
		return "", fmt.Errorf("could not find reset token")
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	email, ok := r.Tokens[value]
	if !ok {
		return "", ErrTokenDoesNotExist
	}
	return email, nil
}

func (r *FakeRepository) IsRequested(ctx context.Context, email c.Email) (bool, error) {
	if r.ReturnError {
		return false, fmt.Errorf("could not check reset token sentinel for %s", email)
	}
	if r.ForceNotRequested {
		return false, nil
	}
	r.lock.Lock()
	defer r.lock.Unlock()
	return r.Requested[email], nil
}

func (r *FakeRepository) Delete(ctx context.Context, value Value, email c.Email) error {
	r.lock.Lock()
	defer r.lock.Unlock()
	r.DeleteCallCount++
	if r.ReturnError {
		return fmt.Errorf("could not delete reset token")
	}
	delete(r.Tokens, value)
	delete(r.Requested, email)
	return nil
}

type FakeIssuer struct {
	Value     Value
	ExpiresAt Expiration
}

func NewFakeIssuer(value string, expiresAt Expiration) *FakeIssuer {
	return &FakeIssuer{Value: Value(value), ExpiresAt: expiresAt}
}

func (g *FakeIssuer) GenerateValue() Value {
	return g.Value
}

func (g *FakeIssuer) Expiration() Expiration {
	return g.ExpiresAt
}

type FakeSender struct {
	Sent        []ResetToken
	ReturnError bool
	lock        sync.Mutex
}

func NewFakeSender() *FakeSender {
	return &FakeSender{}
}

func (s *FakeSender) SendResetLink(ctx context.Context, token ResetToken) error {
	if s.ReturnError {
		return fmt.Errorf("could not send reset link for %s", token.Email)
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.Sent = append(s.Sent, token)
	return nil
}

func (s *FakeSender) SentCount() int {
	return len(s.Sent)
}
