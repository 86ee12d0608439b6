package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// ReportService computes monthly and yearly summaries and assembles report
// payloads. Summaries are pure functions of the transactions, categories, and
// period; nothing is cached.
type ReportService struct {
	reader *storage.Reader
}

// NewReportService creates a new ReportService.
func NewReportService(reader *storage.Reader) *ReportService {
	return &ReportService{reader: reader}
}

// MonthlySummary aggregates the user's transactions within the calendar month
// into income/expense totals, net, and a per-category breakdown. A period with
// no transactions yields zero totals and an empty breakdown.
func (s *ReportService) MonthlySummary(ctx context.Context, userID uuid.UUID, year int, month time.Month) (MonthlySummary, error) {
	rows, index, err := s.loadMonth(ctx, userID, year, month)
	if err != nil {
		return MonthlySummary{}, err
	}
	return buildMonthlySummary(year, month, rows, index), nil
}

// YearlySummary computes the twelve monthly summaries of the year and sums
// their income and expense totals.
func (s *ReportService) YearlySummary(ctx context.Context, userID uuid.UUID, year int) (YearlySummary, error) {
	summary := YearlySummary{
		Year:           year,
		Months:         make([]MonthlySummary, 0, 12),
		YearlyIncome:   decimal.Zero,
		YearlyExpenses: decimal.Zero,
	}

	for month := time.January; month <= time.December; month++ {
		monthly, err := s.MonthlySummary(ctx, userID, year, month)
		if err != nil {
			return YearlySummary{}, err
		}
		summary.Months = append(summary.Months, monthly)
		summary.YearlyIncome = summary.YearlyIncome.Add(monthly.TotalIncome)
		summary.YearlyExpenses = summary.YearlyExpenses.Add(monthly.TotalExpenses)
	}

	summary.YearlyNet = summary.YearlyIncome.Sub(summary.YearlyExpenses)
	return summary, nil
}

// MonthlyReport merges the month's summary with its transactions, the user's
// income and expense category lists, and all goals.
func (s *ReportService) MonthlyReport(ctx context.Context, userID uuid.UUID, year int, month time.Month) (MonthlyReport, error) {
	rows, index, err := s.loadMonth(ctx, userID, year, month)
	if err != nil {
		return MonthlyReport{}, err
	}

	report := MonthlyReport{
		Title:   fmt.Sprintf("Monthly Budget Report - %s %d", month.String(), year),
		Period:  fmt.Sprintf("%s %d", month.String(), year),
		Summary: buildMonthlySummary(year, month, rows, index),
	}

	report.Transactions = make([]Transaction, len(rows))
	for i, row := range rows {
		report.Transactions[i] = transactionFromStorage(row, index[row.CategoryID])
	}

	for _, cat := range index {
		if cat.IsIncome {
			report.IncomeCategories = append(report.IncomeCategories, categoryFromStorage(cat))
		} else {
			report.ExpenseCategories = append(report.ExpenseCategories, categoryFromStorage(cat))
		}
	}
	sortCategories(report.IncomeCategories)
	sortCategories(report.ExpenseCategories)

	goals, err := s.listGoals(ctx, userID)
	if err != nil {
		return MonthlyReport{}, err
	}
	report.Goals = goals

	return report, nil
}

// YearlyReport merges the year's summary with the user's goals.
func (s *ReportService) YearlyReport(ctx context.Context, userID uuid.UUID, year int) (YearlyReport, error) {
	summary, err := s.YearlySummary(ctx, userID, year)
	if err != nil {
		return YearlyReport{}, err
	}

	goals, err := s.listGoals(ctx, userID)
	if err != nil {
		return YearlyReport{}, err
	}

	return YearlyReport{
		Title:   fmt.Sprintf("Yearly Budget Report - %d", year),
		Period:  strconv.Itoa(year),
		Summary: summary,
		Goals:   goals,
	}, nil
}

// loadMonth fetches the month's transactions and the user's full category
// index in one place so summary and report stay consistent.
func (s *ReportService) loadMonth(ctx context.Context, userID uuid.UUID, year int, month time.Month) ([]*transaction.Transaction, map[uuid.UUID]*category.Category, error) {
	start, end := monthBounds(year, month)

	rows, err := s.reader.Transactions.List(ctx, &transaction.TransactionFilter{
		UserID:    userID,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, nil, &PersistenceError{Op: "MonthlySummary", EntityID: userID.String(), Err: err}
	}

	categories, err := s.reader.Categories.List(ctx, &category.CategoryFilter{UserID: userID})
	if err != nil {
		return nil, nil, &PersistenceError{Op: "MonthlySummary", EntityID: userID.String(), Err: err}
	}

	return rows, categoryIndex(categories), nil
}

func (s *ReportService) listGoals(ctx context.Context, userID uuid.UUID) ([]Goal, error) {
	rows, err := s.reader.Goals.List(ctx, userID)
	if err != nil {
		return nil, &PersistenceError{Op: "ListGoals", EntityID: userID.String(), Err: err}
	}

	goals := make([]Goal, len(rows))
	for i, row := range rows {
		goals[i] = goalFromStorage(row)
	}
	return goals, nil
}
