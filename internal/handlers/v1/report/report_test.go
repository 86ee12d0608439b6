package report

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// mockReportService is a mock covering all four report interfaces.
type mockReportService struct {
	mock.Mock
}

func (m *mockReportService) MonthlySummary(ctx context.Context, userID uuid.UUID, year int, month time.Month) (service.MonthlySummary, error) {
	args := m.Called(ctx, userID, year, month)
	return args.Get(0).(service.MonthlySummary), args.Error(1)
}

func (m *mockReportService) YearlySummary(ctx context.Context, userID uuid.UUID, year int) (service.YearlySummary, error) {
	args := m.Called(ctx, userID, year)
	return args.Get(0).(service.YearlySummary), args.Error(1)
}

func (m *mockReportService) MonthlyReport(ctx context.Context, userID uuid.UUID, year int, month time.Month) (service.MonthlyReport, error) {
	args := m.Called(ctx, userID, year, month)
	return args.Get(0).(service.MonthlyReport), args.Error(1)
}

func (m *mockReportService) YearlyReport(ctx context.Context, userID uuid.UUID, year int) (service.YearlyReport, error) {
	args := m.Called(ctx, userID, year)
	return args.Get(0).(service.YearlyReport), args.Error(1)
}

func testMonthlySummary() service.MonthlySummary {
	return service.MonthlySummary{
		Year:          2025,
		Month:         3,
		TotalIncome:   decimal.RequireFromString("1000.00"),
		TotalExpenses: decimal.RequireFromString("200.00"),
		Net:           decimal.RequireFromString("800.00"),
		CategoryBreakdown: map[string]decimal.Decimal{
			"Salary": decimal.RequireFromString("1000.00"),
			"Food":   decimal.RequireFromString("200.00"),
		},
	}
}

func TestHTTP_MonthlySummary_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockReportService)
	mockSvc.On("MonthlySummary", mock.Anything, userID, 2025, time.March).
		Return(testMonthlySummary(), nil)

	_, api := humatest.New(t)
	NewMonthlySummaryHandler(mockSvc).Register(api)

	resp := api.Post("/v1/report/summary/monthly", MonthlySummaryBody{
		UserID: userID.String(),
		Year:   2025,
		Month:  3,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MonthlySummary
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 2025, body.Year)
	assert.Equal(t, 3, body.Month)
	assert.Equal(t, "1000", body.TotalIncome)
	assert.Equal(t, "200", body.TotalExpenses)
	assert.Equal(t, "800", body.Net)
	assert.Equal(t, "1000", body.CategoryBreakdown["Salary"])
	mockSvc.AssertExpectations(t)
}

func TestHTTP_MonthlySummary_MonthOutOfRange(t *testing.T) {
	mockSvc := new(mockReportService)

	_, api := humatest.New(t)
	NewMonthlySummaryHandler(mockSvc).Register(api)

	// Huma's maximum schema validation rejects the request before the handler
	// runs.
	resp := api.Post("/v1/report/summary/monthly", MonthlySummaryBody{
		UserID: uuid.Must(uuid.NewV4()).String(),
		Year:   2025,
		Month:  13,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "MonthlySummary")
}

func TestHTTP_YearlySummary_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	months := make([]service.MonthlySummary, 12)
	for i := range months {
		months[i] = service.MonthlySummary{
			Year:              2025,
			Month:             i + 1,
			CategoryBreakdown: map[string]decimal.Decimal{},
		}
	}

	mockSvc := new(mockReportService)
	mockSvc.On("YearlySummary", mock.Anything, userID, 2025).
		Return(service.YearlySummary{
			Year:           2025,
			Months:         months,
			YearlyIncome:   decimal.RequireFromString("12000.00"),
			YearlyExpenses: decimal.RequireFromString("3000.00"),
			YearlyNet:      decimal.RequireFromString("9000.00"),
		}, nil)

	_, api := humatest.New(t)
	NewYearlySummaryHandler(mockSvc).Register(api)

	resp := api.Post("/v1/report/summary/yearly", YearlySummaryBody{
		UserID: userID.String(),
		Year:   2025,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body YearlySummary
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Months, 12)
	assert.Equal(t, "12000", body.YearlyIncome)
	assert.Equal(t, "9000", body.YearlyNet)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_MonthlyReport_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockReportService)
	mockSvc.On("MonthlyReport", mock.Anything, userID, 2025, time.March).
		Return(service.MonthlyReport{
			Title:   "Monthly Budget Report - March 2025",
			Period:  "March 2025",
			Summary: testMonthlySummary(),
			Transactions: []service.Transaction{{
				ID:              uuid.Must(uuid.NewV4()),
				Amount:          decimal.RequireFromString("200.00"),
				CategoryName:    "Food",
				TransactionDate: time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
			}},
			IncomeCategories:  []service.Category{{ID: uuid.Must(uuid.NewV4()), Name: "Salary", IsIncome: true}},
			ExpenseCategories: []service.Category{{ID: uuid.Must(uuid.NewV4()), Name: "Food"}},
			Goals: []service.Goal{{
				ID:            uuid.Must(uuid.NewV4()),
				Name:          "Emergency Fund",
				TargetAmount:  decimal.RequireFromString("500.00"),
				CurrentAmount: decimal.RequireFromString("125.00"),
			}},
		}, nil)

	_, api := humatest.New(t)
	NewMonthlyReportHandler(mockSvc).Register(api)

	resp := api.Post("/v1/report/monthly", MonthlyReportBody{
		UserID: userID.String(),
		Year:   2025,
		Month:  3,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body MonthlyReportResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Monthly Budget Report - March 2025", body.Title)
	assert.Len(t, body.Transactions, 1)
	assert.Equal(t, "Food", body.Transactions[0].CategoryName)
	assert.Len(t, body.IncomeCategories, 1)
	assert.Len(t, body.ExpenseCategories, 1)
	assert.Len(t, body.Goals, 1)
	assert.Equal(t, 25.0, body.Goals[0].Progress)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_YearlyReport_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockReportService)
	mockSvc.On("YearlyReport", mock.Anything, userID, 2024).
		Return(service.YearlyReport{
			Title:  "Yearly Budget Report - 2024",
			Period: "2024",
			Summary: service.YearlySummary{
				Year:   2024,
				Months: make([]service.MonthlySummary, 12),
			},
			Goals: []service.Goal{},
		}, nil)

	_, api := humatest.New(t)
	NewYearlyReportHandler(mockSvc).Register(api)

	resp := api.Post("/v1/report/yearly", YearlyReportBody{
		UserID: userID.String(),
		Year:   2024,
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body YearlyReportResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "Yearly Budget Report - 2024", body.Title)
	assert.Equal(t, "2024", body.Period)
	assert.Len(t, body.Summary.Months, 12)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_MonthlySummary_ServiceError(t *testing.T) {
	mockSvc := new(mockReportService)
	mockSvc.On("MonthlySummary", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(service.MonthlySummary{}, errors.New("database unavailable"))

	_, api := humatest.New(t)
	NewMonthlySummaryHandler(mockSvc).Register(api)

	resp := api.Post("/v1/report/summary/monthly", MonthlySummaryBody{
		UserID: uuid.Must(uuid.NewV4()).String(),
		Year:   2025,
		Month:  3,
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
