package goal

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListGoalsBody is the request body for listing goals.
type ListGoalsBody struct {
	UserID string `json:"userID" required:"true" doc:"Owning user UUID"`
}

// ListGoalsInput is the Huma input for listing goals.
type ListGoalsInput struct {
	Body ListGoalsBody
}

// ListGoalsResponseBody is the response body for listing goals.
type ListGoalsResponseBody struct {
	Goals []Goal `json:"goals" doc:"Goals in insertion order"`
}

// ListGoalsOutput is the Huma output for listing goals.
type ListGoalsOutput struct {
	Body ListGoalsResponseBody
}

// goalLister is the interface for listing goals.
type goalLister interface {
	ListGoals(ctx context.Context, userID uuid.UUID) ([]service.Goal, error)
}

// ListGoalsHandler handles POST /v1/goal/list.
type ListGoalsHandler struct {
	GoalService goalLister
}

// NewListGoalsHandler creates a new ListGoalsHandler.
func NewListGoalsHandler(svc goalLister) *ListGoalsHandler {
	return &ListGoalsHandler{GoalService: svc}
}

// Register registers the list goals endpoint with the Huma API.
func (h *ListGoalsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-goals",
		Method:      http.MethodPost,
		Path:        "/v1/goal/list",
		Summary:     "List goals",
		Description: "Returns the user's goals in insertion order with their derived progress.",
		Tags:        []string{"Goals"},
	}, h.handle)
}

func (h *ListGoalsHandler) handle(ctx context.Context, input *ListGoalsInput) (*ListGoalsOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listGoalsMs")
	}
	goals, err := h.GoalService.ListGoals(ctx, userID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list goals", err)
	}

	if logData != nil {
		logData.AddData("goalCount", len(goals))
	}

	resp := ListGoalsResponseBody{
		Goals: make([]Goal, len(goals)),
	}
	for i, g := range goals {
		resp.Goals[i] = fromService(g)
	}

	return &ListGoalsOutput{Body: resp}, nil
}
