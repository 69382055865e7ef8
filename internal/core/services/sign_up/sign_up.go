package signup

import (
	c "accounts/internal/core/domain/common"
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
	"time"
)

type Input struct {
	Email    string
	Name     string
	Password string
}

type Result struct {
	User  user.User
	Token user.AccessToken
}

type service struct {
	log               logging.Logger
	userRepository    user.UserRepository
	passwordHasher    user.PasswordHasher
	accessTokenIssuer user.AccessTokenIssuer
	now               func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
	accessTokenIssuer user.AccessTokenIssuer,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if accessTokenIssuer == nil {
		panic(e.NewNilArgumentError("accessTokenIssuer"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:               log,
		userRepository:    userRepository,
		passwordHasher:    passwordHasher,
		accessTokenIssuer: accessTokenIssuer,
		now:               now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	email, err := c.ParseEmail(input.Email)
	if err != nil {
		return result, err
	}
	name, err := user.NewName(input.Name)
	if err != nil {
		return result, err
	}
	password, err := user.NewRawPassword(input.Password)
	if err != nil {
		return result, err
	}

	passwordHash, err := s.passwordHasher.HashPassword(password)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	createdUser, err := s.userRepository.Create(ctx, user.CreateUserInput{
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserAlreadyExists) {
		s.log.Info(
			ctx,
			"User with the email or name already exists.",
			logging.Entry("email", email),
			logging.Entry("name", name),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create new user.",
			logging.Entry("email", email),
			logging.Entry("err", err),
		)
		return result, err
	}

	accessToken, err := s.accessTokenIssuer.Issue(createdUser)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not issue access token for new user.",
			logging.Entry("userID", createdUser.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "New user has been created.", logging.Entry("userID", createdUser.ID))
	return Result{User: createdUser, Token: accessToken}, nil
}
