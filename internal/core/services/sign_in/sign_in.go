package signin

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
)

type Input struct {
	Name     string
	Password string
}

type Result struct {
	Token user.AccessToken
}

type service struct {
	log               logging.Logger
	userRepository    user.UserRepository
	passwordHasher    user.PasswordHasher
	accessTokenIssuer user.AccessTokenIssuer
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
	accessTokenIssuer user.AccessTokenIssuer,
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
	return &service{
		log:               log,
		userRepository:    userRepository,
		passwordHasher:    passwordHasher,
		accessTokenIssuer: accessTokenIssuer,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	name, err := user.NewName(input.Name)
	if err != nil {
		return result, user.ErrInvalidCredentials
	}
	password, err := user.NewRawPassword(input.Password)
	if err != nil {
		return result, user.ErrInvalidCredentials
	}

	u, err := s.userRepository.GetByName(ctx, name)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		// Minimize risk for timing attacks
		s.passwordHasher.HashPassword(password)
		return result, user.ErrInvalidCredentials
	}
	if err != nil {
		s.log.Error(ctx, "Could not get user for sign in.", logging.Entry("err", err))
		return result, err
	}
	if !s.passwordHasher.ValidatePassword(password, u.PasswordHash) {
		return result, user.ErrInvalidCredentials
	}

	accessToken, err := s.accessTokenIssuer.Issue(u)
	if err != nil {
		s.log.Error(
			ctx,
			"Could not issue access token.",
			logging.Entry("userID", u.ID),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(ctx, "User successfully authenticated.", logging.Entry("userID", u.ID))
	return Result{Token: accessToken}, nil
}
