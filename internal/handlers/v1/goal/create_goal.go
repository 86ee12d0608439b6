package goal

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/operator/actions"
)

// CreateGoalBody is the request body for creating a goal.
type CreateGoalBody struct {
	UserID       string `json:"userID" required:"true" doc:"Owning user UUID"`
	Name         string `json:"name" required:"true" minLength:"1" doc:"Goal name"`
	TargetAmount string `json:"targetAmount" required:"true" doc:"Positive decimal target"`
	Deadline     string `json:"deadline,omitempty" doc:"Optional RFC3339 deadline"`
}

// CreateGoalInput is the Huma input for creating a goal.
type CreateGoalInput struct {
	Body CreateGoalBody
}

// CreateGoalOutput is the Huma output for creating a goal.
type CreateGoalOutput struct {
	Status int
	Body   Goal
}

// actionProcessor is the interface for submitting write actions.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// CreateGoalHandler handles POST /v1/goal.
type CreateGoalHandler struct {
	Operator actionProcessor
}

// NewCreateGoalHandler creates a new CreateGoalHandler.
func NewCreateGoalHandler(op actionProcessor) *CreateGoalHandler {
	return &CreateGoalHandler{Operator: op}
}

// Register registers the create goal endpoint with the Huma API.
func (h *CreateGoalHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-goal",
		Method:      http.MethodPost,
		Path:        "/v1/goal",
		Summary:     "Create goal",
		Description: "Creates a savings goal with a zero current amount. Goal names are not unique.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func parseCreateGoalInput(input *CreateGoalInput) (*actions.CreateGoal, error) {
	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}
	targetAmount, err := decimal.NewFromString(input.Body.TargetAmount)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid targetAmount", err)
	}
	if !targetAmount.IsPositive() {
		return nil, huma.NewError(http.StatusBadRequest, "targetAmount must be positive")
	}

	var deadline *time.Time
	if input.Body.Deadline != "" {
		parsed, err := time.Parse(time.RFC3339, input.Body.Deadline)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid deadline", err)
		}
		deadline = &parsed
	}

	return &actions.CreateGoal{
		UserID:       userID,
		Name:         input.Body.Name,
		TargetAmount: targetAmount,
		Deadline:     deadline,
	}, nil
}

func (h *CreateGoalHandler) handle(ctx context.Context, input *CreateGoalInput) (*CreateGoalOutput, error) {
	logData := logging.GetLogData(ctx)

	action, err := parseCreateGoalInput(input)
	if err != nil {
		return nil, err
	}

	if err := h.Operator.Process(ctx, action); err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create goal", err)
	}

	if logData != nil {
		logData.AddData("goalID", action.Result.ID.String())
	}

	return &CreateGoalOutput{
		Status: http.StatusCreated,
		Body:   fromStorage(action.Result),
	}, nil
}
