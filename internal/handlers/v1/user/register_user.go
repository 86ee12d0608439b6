package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// RegisterUserBody is the request body for registering a user.
type RegisterUserBody struct {
	Username string `json:"username" required:"true" minLength:"1" doc:"Unique username"`
	Password string `json:"password" required:"true" minLength:"8" doc:"Plain credential, stored as a bcrypt hash"`
}

// RegisterUserInput is the Huma input for registering a user.
type RegisterUserInput struct {
	Body RegisterUserBody
}

// RegisterUserOutput is the Huma output for registering a user.
type RegisterUserOutput struct {
	Status int
	Body   User
}

// actionProcessor is the interface for submitting write actions.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// RegisterUserHandler handles POST /v1/user/register.
type RegisterUserHandler struct {
	Operator actionProcessor
}

// NewRegisterUserHandler creates a new RegisterUserHandler.
func NewRegisterUserHandler(op actionProcessor) *RegisterUserHandler {
	return &RegisterUserHandler{Operator: op}
}

// Register registers the register user endpoint with the Huma API.
func (h *RegisterUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "register-user",
		Method:      http.MethodPost,
		Path:        "/v1/user/register",
		Summary:     "Register user",
		Description: "Creates a user and seeds the default income and expense categories in the same transaction.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *RegisterUserHandler) handle(ctx context.Context, input *RegisterUserInput) (*RegisterUserOutput, error) {
	logData := logging.GetLogData(ctx)

	action := &actions.RegisterUser{
		Username: input.Body.Username,
		Password: input.Body.Password,
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, service.ErrDuplicateUsername) {
			return nil, huma.NewError(http.StatusConflict, "username already taken")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to register user", err)
	}

	if logData != nil {
		logData.AddData("userID", action.Result.ID.String())
	}

	return &RegisterUserOutput{
		Status: http.StatusCreated,
		Body:   fromStorage(action.Result),
	}, nil
}
