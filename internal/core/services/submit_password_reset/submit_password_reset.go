package submitpasswordreset

import (
	c "accounts/internal/core/domain/common"
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/logging"
	"accounts/internal/core/domain/resettoken"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	"context"
	"errors"
)

// Input carries the submitted token and, optionally, the new password pair.
// When NewPassword is empty the call only checks token validity.
type Input struct {
	Token           string
	NewPassword     string
	ConfirmPassword string
}

type Result struct {
	Email           c.Email
	PasswordChanged bool
}

type service struct {
	log             logging.Logger
	tokenRepository resettoken.Repository
	userRepository  user.UserRepository
	passwordHasher  user.PasswordHasher
}

func New(
	log logging.Logger,
	tokenRepository resettoken.Repository,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if tokenRepository == nil {
		panic(e.NewNilArgumentError("tokenRepository"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	return &service{
		log:             log,
		tokenRepository: tokenRepository,
		userRepository:  userRepository,
		passwordHasher:  passwordHasher,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.Token == "" {
		return result, resettoken.ErrEmptyToken
	}
	tokenValue := resettoken.Value(input.Token)

	email, err := s.tokenRepository.FindEmail(ctx, tokenValue)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, resettoken.ErrTokenDoesNotExist) {
		s.log.Info(ctx, "Unknown or expired reset token submitted.")
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not look up reset token.", logging.Entry("err", err))
		return result, err
	}

	if input.NewPassword == "" {
		// Validity probe only, nothing changes.
		return Result{Email: email}, nil
	}

	if input.NewPassword != input.ConfirmPassword {
		return result, resettoken.ErrPasswordMismatch
	}
	newPassword, err := user.NewRawPassword(input.NewPassword)
	if err != nil {
		return result, err
	}

	passwordHash, err := s.passwordHasher.HashPassword(newPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash new password.", logging.Entry("err", err))
		return result, err
	}

	err = s.userRepository.SetPassword(ctx, email, passwordHash)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(
			ctx,
			"Could not change password, account no longer exists.",
			logging.Entry("email", email),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not change account password.",
			logging.Entry("email", email),
			logging.Entry("err", err),
		)
		return result, err
	}

	// The token is single use: drop both entries now that the password has
	// changed. The password change already landed, so a failed delete is only
	// logged and TTL still bounds the reuse window.
	if err := s.tokenRepository.Delete(ctx, tokenValue, email); err != nil {
		s.log.Error(
			ctx,
			"Could not delete redeemed reset token.",
			logging.Entry("email", email),
			logging.Entry("err", err),
		)
	}

	s.log.Info(
		ctx,
		"New password has been successfully set.",
		logging.Entry("email", email),
	)
	return Result{Email: email, PasswordChanged: true}, nil
}
