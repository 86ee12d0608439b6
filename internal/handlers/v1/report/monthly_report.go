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

// MonthlyReportBody is the request body for a monthly report.
type MonthlyReportBody struct {
	UserID string `json:"userID" required:"true" doc:"Owning user UUID"`
	Year   int    `json:"year" required:"true" minimum:"1" doc:"Calendar year"`
	Month  int    `json:"month" required:"true" minimum:"1" maximum:"12" doc:"Calendar month, 1-12"`
}

// MonthlyReportInput is the Huma input for a monthly report.
type MonthlyReportInput struct {
	Body MonthlyReportBody
}

// MonthlyReportResponseBody is the response body for a monthly report.
type MonthlyReportResponseBody struct {
	Title             string         `json:"title" doc:"Report title"`
	Period            string         `json:"period" doc:"Human-readable period, e.g. \"March 2025\""`
	Summary           MonthlySummary `json:"summary" doc:"The month's summary"`
	Transactions      []Transaction  `json:"transactions" doc:"The month's transactions, newest first"`
	IncomeCategories  []Category     `json:"incomeCategories" doc:"The user's income categories"`
	ExpenseCategories []Category     `json:"expenseCategories" doc:"The user's expense categories"`
	Goals             []Goal         `json:"goals" doc:"All goals with their progress"`
}

// MonthlyReportOutput is the Huma output for a monthly report.
type MonthlyReportOutput struct {
	Body MonthlyReportResponseBody
}

// monthlyReporter is the interface for assembling monthly reports.
type monthlyReporter interface {
	MonthlyReport(ctx context.Context, userID uuid.UUID, year int, month time.Month) (service.MonthlyReport, error)
}

// MonthlyReportHandler handles POST /v1/report/monthly.
type MonthlyReportHandler struct {
	ReportService monthlyReporter
}

// NewMonthlyReportHandler creates a new MonthlyReportHandler.
func NewMonthlyReportHandler(svc monthlyReporter) *MonthlyReportHandler {
	return &MonthlyReportHandler{ReportService: svc}
}

// Register registers the monthly report endpoint with the Huma API.
func (h *MonthlyReportHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "monthly-report",
		Method:      http.MethodPost,
		Path:        "/v1/report/monthly",
		Summary:     "Monthly report",
		Description: "Merges the month's summary with its transactions, the user's category lists, and all goals.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *MonthlyReportHandler) handle(ctx context.Context, input *MonthlyReportInput) (*MonthlyReportOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("monthlyReportMs")
	}
	rpt, err := h.ReportService.MonthlyReport(ctx, userID, input.Body.Year, time.Month(input.Body.Month))
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to assemble monthly report", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(rpt.Transactions))
	}

	resp := MonthlyReportResponseBody{
		Title:             rpt.Title,
		Period:            rpt.Period,
		Summary:           monthlySummaryFromService(rpt.Summary),
		Transactions:      make([]Transaction, len(rpt.Transactions)),
		IncomeCategories:  make([]Category, len(rpt.IncomeCategories)),
		ExpenseCategories: make([]Category, len(rpt.ExpenseCategories)),
		Goals:             make([]Goal, len(rpt.Goals)),
	}
	for i, tx := range rpt.Transactions {
		resp.Transactions[i] = transactionFromService(tx)
	}
	for i, cat := range rpt.IncomeCategories {
		resp.IncomeCategories[i] = categoryFromService(cat)
	}
	for i, cat := range rpt.ExpenseCategories {
		resp.ExpenseCategories[i] = categoryFromService(cat)
	}
	for i, g := range rpt.Goals {
		resp.Goals[i] = goalFromService(g)
	}

	return &MonthlyReportOutput{Body: resp}, nil
}
