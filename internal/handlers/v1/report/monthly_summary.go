package report

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// MonthlySummaryBody is the request body for a monthly summary.
type MonthlySummaryBody struct {
	UserID string `json:"userID" required:"true" doc:"Owning user UUID"`
	Year   int    `json:"year" required:"true" minimum:"1" doc:"Calendar year"`
	Month  int    `json:"month" required:"true" minimum:"1" maximum:"12" doc:"Calendar month, 1-12"`
}

// MonthlySummaryInput is the Huma input for a monthly summary.
type MonthlySummaryInput struct {
	Body MonthlySummaryBody
}

// MonthlySummaryOutput is the Huma output for a monthly summary.
type MonthlySummaryOutput struct {
	Body MonthlySummary
}

// monthlySummarizer is the interface for computing monthly summaries.
type monthlySummarizer interface {
	MonthlySummary(ctx context.Context, userID uuid.UUID, year int, month time.Month) (service.MonthlySummary, error)
}

// MonthlySummaryHandler handles POST /v1/report/summary/monthly.
type MonthlySummaryHandler struct {
	ReportService monthlySummarizer
}

// NewMonthlySummaryHandler creates a new MonthlySummaryHandler.
func NewMonthlySummaryHandler(svc monthlySummarizer) *MonthlySummaryHandler {
	return &MonthlySummaryHandler{ReportService: svc}
}

// Register registers the monthly summary endpoint with the Huma API.
func (h *MonthlySummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-summary",
		Method:      http.MethodPost,
		Path:        "/v1/report/summary/monthly",
		Summary:     "Monthly summary",
		Description: "Aggregates the user's transactions within the calendar month into income/expense totals, net, and a per-category breakdown.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *MonthlySummaryHandler) handle(ctx context.Context, input *MonthlySummaryInput) (*MonthlySummaryOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("monthlySummaryMs")
	}
	summary, err := h.ReportService.MonthlySummary(ctx, userID, input.Body.Year, time.Month(input.Body.Month))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to compute monthly summary", err)
	}

	return &MonthlySummaryOutput{Body: monthlySummaryFromService(summary)}, nil
}
