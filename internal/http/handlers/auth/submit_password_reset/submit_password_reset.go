package submitpasswordreset

import (
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/resettoken"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	service "accounts/internal/core/services/submit_password_reset"
	"accounts/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
)

type Handler struct {
	service services.Service[service.Input, service.Result]
}

func New(
	service services.Service[service.Input, service.Result],
) *Handler {
	if service == nil {
		panic(e.NewNilArgumentError("service"))
	}
	return &Handler{service: service}
}

type Input struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

// Password fields are optional here, a token-only request probes
// token validity without changing anything.
func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Token, validation.Required, validation.Length(0, 1024)),
		validation.Field(&i.Password, validation.Length(0, 512)),
		validation.Field(&i.ConfirmPassword, validation.Length(0, 512)),
	)
}

func (h *Handler) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	input := Input{}
	if err := input.FromJSON(r.Body); err != nil {
		response.RenderError(rw, "invalid request data", http.StatusBadRequest)
		return
	}
	if err := input.Validate(); err != nil {
		response.Render(rw, err, http.StatusBadRequest)
		return
	}

	_, err := h.service.Run(
		r.Context(),
		service.Input{
			Token:           input.Token,
			NewPassword:     input.Password,
			ConfirmPassword: input.ConfirmPassword,
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, resettoken.ErrEmptyToken):
			response.RenderError(rw, "token must not be empty", http.StatusBadRequest)
		case errors.Is(err, resettoken.ErrTokenDoesNotExist):
			response.RenderError(rw, "invalid or expired token", http.StatusNotFound)
		case errors.Is(err, resettoken.ErrPasswordMismatch):
			response.RenderError(rw, "passwords do not match", http.StatusBadRequest)
		case errors.Is(err, user.ErrPasswordOutOfRange):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		case errors.Is(err, user.ErrUserDoesNotExist):
			response.RenderError(rw, "user does not exist", http.StatusNotFound)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	// Nothing beyond the status: the response must not disclose which
	// account the token is bound to.
	response.Render(rw, struct{}{}, http.StatusOK)
}
