package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// YearlyReportBody is the request body for a yearly report.
type YearlyReportBody struct {
	UserID string `json:"userID" required:"true" doc:"Owning user UUID"`
	Year   int    `json:"year" required:"true" minimum:"1" doc:"Calendar year"`
}

// YearlyReportInput is the Huma input for a yearly report.
type YearlyReportInput struct {
	Body YearlyReportBody
}

// YearlyReportResponseBody is the response body for a yearly report.
type YearlyReportResponseBody struct {
	Title   string        `json:"title" doc:"Report title"`
	Period  string        `json:"period" doc:"The report year as a string"`
	Summary YearlySummary `json:"summary" doc:"The year's summary"`
	Goals   []Goal        `json:"goals" doc:"All goals with their progress"`
}

// YearlyReportOutput is the Huma output for a yearly report.
type YearlyReportOutput struct {
	Body YearlyReportResponseBody
}

// yearlyReporter is the interface for assembling yearly reports.
type yearlyReporter interface {
	YearlyReport(ctx context.Context, userID uuid.UUID, year int) (service.YearlyReport, error)
}

// YearlyReportHandler handles POST /v1/report/yearly.
type YearlyReportHandler struct {
	ReportService yearlyReporter
}

// NewYearlyReportHandler creates a new YearlyReportHandler.
func NewYearlyReportHandler(svc yearlyReporter) *YearlyReportHandler {
	return &YearlyReportHandler{ReportService: svc}
}

// Register registers the yearly report endpoint with the Huma API.
func (h *YearlyReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "yearly-report",
		Method:      http.MethodPost,
		Path:        "/v1/report/yearly",
		Summary:     "Yearly report",
		Description: "Merges the year's summary with the user's goals.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *YearlyReportHandler) handle(ctx context.Context, input *YearlyReportInput) (*YearlyReportOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("yearlyReportMs")
	}
	rpt, err := h.ReportService.YearlyReport(ctx, userID, input.Body.Year)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to assemble yearly report", err)
	}

	resp := YearlyReportResponseBody{
		Title:   rpt.Title,
		Period:  rpt.Period,
		Summary: yearlySummaryFromService(rpt.Summary),
		Goals:   make([]Goal, len(rpt.Goals)),
	}
	for i, g := range rpt.Goals {
		resp.Goals[i] = goalFromService(g)
	}

	return &YearlyReportOutput{Body: resp}, nil
}
