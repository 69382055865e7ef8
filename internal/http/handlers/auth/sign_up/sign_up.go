package signup

import (
	c "accounts/internal/core/domain/common"
	e "accounts/internal/core/domain/errors"
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services"
	service "accounts/internal/core/services/sign_up"
	"accounts/internal/http/handlers/response"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
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
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type Result struct {
	User  response.User `json:"user"`
	Token string        `json:"token"`
}

func (i *Input) FromJSON(r io.Reader) error {
	e := json.NewDecoder(r)
	return e.Decode(i)
}

func (i Input) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Email, validation.Required, is.Email, validation.Length(0, 512)),
		validation.Field(&i.Name, validation.Required, validation.Length(0, 64)),
		validation.Field(&i.Password, validation.Required, validation.Length(0, 512)),
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

	result, err := h.service.Run(
		r.Context(),
		service.Input{Email: input.Email, Name: input.Name, Password: input.Password},
	)
	if err != nil {
		switch {
		case errors.Is(err, c.ErrInvalidEmail):
			response.RenderError(rw, "invalid email", http.StatusBadRequest)
		case errors.Is(err, user.ErrInvalidName):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		case errors.Is(err, user.ErrPasswordOutOfRange):
			response.RenderError(rw, err.Error(), http.StatusBadRequest)
		case errors.Is(err, user.ErrUserAlreadyExists):
			response.RenderError(rw, "user already exists", http.StatusUnprocessableEntity)
		default:
			response.RenderInternalError(rw)
		}
		return
	}

	res := Result{Token: string(result.Token)}
	res.User.FromDomainUser(result.User)
	response.Render(rw, res, http.StatusCreated)
}
