package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// YearlySummaryBody is the request body for a yearly summary.
type YearlySummaryBody struct {
	UserID string `json:"userID" required:"true" doc:"Owning user UUID"`
	Year   int    `json:"year" required:"true" minimum:"1" doc:"Calendar year"`
}

// YearlySummaryInput is the Huma input for a yearly summary.
type YearlySummaryInput struct {
	Body YearlySummaryBody
}

// YearlySummaryOutput is the Huma output for a yearly summary.
type YearlySummaryOutput struct {
	Body YearlySummary
}

// yearlySummarizer is the interface for computing yearly summaries.
type yearlySummarizer interface {
	YearlySummary(ctx context.Context, userID uuid.UUID, year int) (service.YearlySummary, error)
}

// YearlySummaryHandler handles POST /v1/report/summary/yearly.
type YearlySummaryHandler struct {
	ReportService yearlySummarizer
}

// NewYearlySummaryHandler creates a new YearlySummaryHandler.
func NewYearlySummaryHandler(svc yearlySummarizer) *YearlySummaryHandler {
	return &YearlySummaryHandler{ReportService: svc}
}

// Register registers the yearly summary endpoint with the Huma API.
func (h *YearlySummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "yearly-summary",
		Method:      http.MethodPost,
		Path:        "/v1/report/summary/yearly",
		Summary:     "Yearly summary",
		Description: "Computes the twelve monthly summaries of the year and the yearly income, expense, and net totals.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *YearlySummaryHandler) handle(ctx context.Context, input *YearlySummaryInput) (*YearlySummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("yearlySummaryMs")
	}
	summary, err := h.ReportService.YearlySummary(ctx, userID, input.Body.Year)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute yearly summary", err)
	}

	return &YearlySummaryOutput{Body: yearlySummaryFromService(summary)}, nil
}
