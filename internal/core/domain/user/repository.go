package user

import (
	c "accounts/internal/core/domain/common"
	"context"
	"time"
)

type CreateUserInput struct {
	Email        c.Email
	Name         Name
	PasswordHash PasswordHash
	CreatedAt    time.Time
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	GetByName(ctx context.Context, name Name) (User, error)
	Exists(ctx context.Context, email c.Email) (bool, error)
	SetPassword(ctx context.Context, email c.Email, password PasswordHash) error
}
