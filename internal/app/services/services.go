package services

import (
	"accounts/internal/app/deps"
	"accounts/internal/core/services"
	requestpasswordreset "accounts/internal/core/services/request_password_reset"
	signin "accounts/internal/core/services/sign_in"
	signup "accounts/internal/core/services/sign_up"
	submitpasswordreset "accounts/internal/core/services/submit_password_reset"
)

type Services struct {
	SignUp               services.Service[signup.Input, signup.Result]
	SignIn               services.Service[signin.Input, signin.Result]
	RequestPasswordReset services.Service[requestpasswordreset.Input, requestpasswordreset.Result]
	SubmitPasswordReset  services.Service[submitpasswordreset.Input, submitpasswordreset.Result]
}

func InitServices(deps *deps.Deps) *Services {
	s := &Services{}

	s.SignUp = signup.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.AccessTokenIssuer,
		deps.Now,
	)
	s.SignIn = signin.New(
		deps.Logger,
		deps.UserRepository,
		deps.PasswordHasher,
		deps.AccessTokenIssuer,
	)
	s.RequestPasswordReset = requestpasswordreset.New(
		deps.Logger,
		deps.UserRepository,
		deps.ResetTokenRepository,
		deps.ResetTokenIssuer,
		deps.ResetLinkSender,
	)
	s.SubmitPasswordReset = submitpasswordreset.New(
		deps.Logger,
		deps.ResetTokenRepository,
		deps.UserRepository,
		deps.PasswordHasher,
	)

	return s
}
