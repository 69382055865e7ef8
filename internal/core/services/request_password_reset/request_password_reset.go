package requestpasswordreset

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

type Input struct {
	Email string
}

type Result struct {
	Token resettoken.ResetToken
}

type service struct {
	log             logging.Logger
	userRepository  user.UserRepository
	tokenRepository resettoken.Repository
	tokenIssuer     resettoken.Issuer
	tokenSender     resettoken.Sender
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	tokenRepository resettoken.Repository,
	tokenIssuer resettoken.Issuer,
	tokenSender resettoken.Sender,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if tokenRepository == nil {
		panic(e.NewNilArgumentError("tokenRepository"))
	}
	if tokenIssuer == nil {
		panic(e.NewNilArgumentError("tokenIssuer"))
	}
	if tokenSender == nil {
		panic(e.NewNilArgumentError("tokenSender"))
	}
	return &service{
		log:             log,
		userRepository:  userRepository,
		tokenRepository: tokenRepository,
		tokenIssuer:     tokenIssuer,
		tokenSender:     tokenSender,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	email, err := c.ParseEmail(input.Email)
	if err != nil {
		return result, err
	}

	exists, err := s.userRepository.Exists(ctx, email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not check account existence for password reset.",
			logging.Entry("email", email),
			logging.Entry("err", err),
		)
		return result, err
	}
	if !exists {
		s.log.Info(ctx, "Password reset requested for unknown account.", logging.Entry("email", email))
		return result, user.ErrUserDoesNotExist
	}

	isRequested, err := s.tokenRepository.IsRequested(ctx, email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not check for an outstanding reset token.",
			logging.Entry("email", email),
			logging.Entry("err", err),
		)
		return result, err
	}
	if isRequested {
		return result, resettoken.ErrAlreadyRequested
	}

	token := resettoken.ResetToken{
		Email:     email,
		Value:     s.tokenIssuer.GenerateValue(),
		ExpiresAt: s.tokenIssuer.Expiration(),
	}
	err = s.tokenRepository.Save(ctx, token)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	// Save is conditional on the sentinel key, so a concurrent request that
	// passed the IsRequested check above still loses here.
	if errors.Is(err, resettoken.ErrAlreadyRequested) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not save reset token.",
			logging.Entry("email", email),
			logging.Entry("err", err),
		)
		return result, err
	}

	err = s.tokenSender.SendResetLink(ctx, token)
	if err != nil {
		// The token is already persisted; re-issuing stays blocked until it
		// expires.
		s.log.Error(
			ctx,
			"Could not send password reset link.",
			logging.Entry("email", email),
			logging.Entry("err", err),
		)
		return result, err
	}

	s.log.Info(
		ctx,
		"Password reset token has been issued and sent.",
		logging.Entry("email", email),
		logging.Entry("expiresAt", token.ExpiresAt.Time()),
	)
	return Result{Token: token}, nil
}
