package app

import (
	"accounts/internal/app/deps"
	"accounts/internal/app/services"
	requestpasswordreset "accounts/internal/http/handlers/auth/request_password_reset"
	signin "accounts/internal/http/handlers/auth/sign_in"
	signup "accounts/internal/http/handlers/auth/sign_up"
	submitpasswordreset "accounts/internal/http/handlers/auth/submit_password_reset"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
)

func InitHttpServer(deps *deps.Deps, s *services.Services) *http.Server {
	isTestMode := deps.Config.IsTestMode

	authRouter := chi.NewRouter()
	authRouter.Method(http.MethodPost, "/signup", signup.New(s.SignUp))
	authRouter.Method(http.MethodPost, "/signin", signin.New(s.SignIn))
	authRouter.Method(
		http.MethodPost,
		"/password_reset/request",
		requestpasswordreset.New(s.RequestPasswordReset, isTestMode),
	)
	authRouter.Method(http.MethodPost, "/password_reset", submitpasswordreset.New(s.SubmitPasswordReset))

	router := chi.NewRouter()
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	}))
	router.Mount("/auth", authRouter)

	address := fmt.Sprintf("0.0.0.0:%d", deps.Config.Port)

	return &http.Server{
		Handler: router,
		Addr:    address,
	}
}
