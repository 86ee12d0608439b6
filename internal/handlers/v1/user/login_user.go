package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// LoginBody is the request body for a credential check.
type LoginBody struct {
	Username string `json:"username" required:"true" minLength:"1" doc:"Username"`
	Password string `json:"password" required:"true" minLength:"1" doc:"Plain credential"`
}

// LoginInput is the Huma input for a credential check.
type LoginInput struct {
	Body LoginBody
}

// LoginOutput is the Huma output for a credential check.
type LoginOutput struct {
	Body User
}

// credentialChecker is the interface for verifying credentials.
type credentialChecker interface {
	Login(ctx context.Context, username, password string) (service.User, error)
}

// LoginHandler handles POST /v1/user/login.
type LoginHandler struct {
	UserService credentialChecker
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc credentialChecker) *LoginHandler {
	return &LoginHandler{UserService: svc}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login-user",
		Method:      http.MethodPost,
		Path:        "/v1/user/login",
		Summary:     "Login",
		Description: "Verifies a username/password pair. Unknown usernames and wrong passwords fail identically.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	logData := logging.GetLogData(ctx)

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("loginMs")
	}
	u, err := h.UserService.Login(ctx, input.Body.Username, input.Body.Password)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			return nil, huma.NewError(http.StatusUnauthorized, "invalid credentials")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to verify credentials", err)
	}

	if logData != nil {
		logData.AddData("userID", u.ID.String())
	}

	return &LoginOutput{Body: fromService(u)}, nil
}
