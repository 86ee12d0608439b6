package goal

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// UpdateGoalBody is the request body for a partial goal update. Omitted fields
// keep their stored values; an explicit zero overwrites.
type UpdateGoalBody struct {
	GoalID        string  `json:"goalID" required:"true" doc:"Goal UUID"`
	UserID        string  `json:"userID" required:"true" doc:"Owning user UUID"`
	CurrentAmount *string `json:"currentAmount,omitempty" doc:"New current decimal amount"`
	TargetAmount  *string `json:"targetAmount,omitempty" doc:"New positive decimal target"`
	Deadline      *string `json:"deadline,omitempty" doc:"New RFC3339 deadline"`
}

// UpdateGoalInput is the Huma input for updating a goal.
type UpdateGoalInput struct {
	Body UpdateGoalBody
}

// UpdateGoalOutput is the Huma output for updating a goal.
type UpdateGoalOutput struct {
	Body Goal
}

// UpdateGoalHandler handles POST /v1/goal/update.
type UpdateGoalHandler struct {
	Operator actionProcessor
}

// NewUpdateGoalHandler creates a new UpdateGoalHandler.
func NewUpdateGoalHandler(op actionProcessor) *UpdateGoalHandler {
	return &UpdateGoalHandler{Operator: op}
}

// Register registers the update goal endpoint with the Huma API.
func (h *UpdateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-goal",
		Method:      http.MethodPost,
		Path:        "/v1/goal/update",
		Summary:     "Update goal",
		Description: "Applies a partial update to a goal. Omitted fields keep their stored values.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func parseUpdateGoalInput(input *UpdateGoalInput) (*actions.UpdateGoal, error) {
	goalID, err := uuid.FromString(input.Body.GoalID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid goalID", err)
	}
	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	action := &actions.UpdateGoal{
		GoalID: goalID,
		UserID: userID,
	}

	if input.Body.CurrentAmount != nil {
		amount, err := decimal.NewFromString(*input.Body.CurrentAmount)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid currentAmount", err)
		}
		action.Update.CurrentAmount = omit.From(amount)
	}
	if input.Body.TargetAmount != nil {
		amount, err := decimal.NewFromString(*input.Body.TargetAmount)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid targetAmount", err)
		}
		if !amount.IsPositive() {
			return nil, huma.NewError(http.StatusBadRequest, "targetAmount must be positive")
		}
		action.Update.TargetAmount = omit.From(amount)
	}
	if input.Body.Deadline != nil {
		deadline, err := time.Parse(time.RFC3339, *input.Body.Deadline)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid deadline", err)
		}
		action.Update.Deadline = omit.From(deadline)
	}

	return action, nil
}

func (h *UpdateGoalHandler) handle(ctx context.Context, input *UpdateGoalInput) (*UpdateGoalOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseUpdateGoalInput(input)
	if err != nil {
		return nil, err
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		if errors.Is(err, service.ErrGoalNotFound) {
			return nil, huma.NewError(http.StatusNotFound, "goal not found")
		}
		return nil, huma.NewError(http.StatusInternalServerError, "failed to update goal", err)
	}

	if logData != nil {
		logData.AddData("goalID", action.Result.ID.String())
	}

	return &UpdateGoalOutput{Body: fromStorage(action.Result)}, nil
}
