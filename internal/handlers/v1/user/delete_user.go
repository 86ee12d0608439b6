package user

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// DeleteUserBody is the request body for deleting a user.
type DeleteUserBody struct {
	UserID string `json:"userID" required:"true" doc:"User UUID"`
}

// DeleteUserInput is the Huma input for deleting a user.
type DeleteUserInput struct {
	Body DeleteUserBody
}

// DeleteUserOutput is the Huma output for deleting a user.
type DeleteUserOutput struct {
	Status int
}

// DeleteUserHandler handles POST /v1/user/delete.
type DeleteUserHandler struct {
	Operator actionProcessor
}

// NewDeleteUserHandler creates a new DeleteUserHandler.
func NewDeleteUserHandler(op actionProcessor) *DeleteUserHandler {
	return &DeleteUserHandler{Operator: op}
}

// Register registers the delete user endpoint with the Huma API.
func (h *DeleteUserHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-user",
		Method:      http.MethodPost,
		Path:        "/v1/user/delete",
		Summary:     "Delete user",
		Description: "Removes a user. Categories, transactions, and goals cascade with the row.",
		Tags:        []string{"Users"},
	}, h.handle)
}

func (h *DeleteUserHandler) handle(ctx context.Context, input *DeleteUserInput) (*DeleteUserOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	action := &actions.DeleteUser{UserID: userID}

	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "user not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete user", err)
	}

	if logData != nil {
		logData.AddData("userID", userID.String())
	}

	return &DeleteUserOutput{Status: http.StatusNoContent}, nil
}
