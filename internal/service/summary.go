package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// monthBounds returns the inclusive period [1st 00:00:00, last day 23:59:59]
// for the given month in UTC. The calendar rules of the time package handle
// month lengths and leap years.
func monthBounds(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Second)
	return start, end
}

// buildMonthlySummary aggregates the period's transactions into income and
// expense totals and a per-category-name breakdown. The income/expense split
// joins each transaction through its category's flag; a transaction whose
// category is missing from the index is skipped.
func buildMonthlySummary(year int, month time.Month, rows []*transaction.Transaction, index map[uuid.UUID]*category.Category) MonthlySummary {
	summary := MonthlySummary{
		Year:              year,
		Month:             int(month),
		TotalIncome:       decimal.Zero,
		TotalExpenses:     decimal.Zero,
		Net:               decimal.Zero,
		CategoryBreakdown: make(map[string]decimal.Decimal),
	}

	for _, row := range rows {
		cat, ok := index[row.CategoryID]
		if !ok {
			continue
		}

		if cat.IsIncome {
			summary.TotalIncome = summary.TotalIncome.Add(row.Amount)
		} else {
			summary.TotalExpenses = summary.TotalExpenses.Add(row.Amount)
		}

		existing, ok := summary.CategoryBreakdown[cat.Name]
		if !ok {
			existing = decimal.Zero
		}
		summary.CategoryBreakdown[cat.Name] = existing.Add(row.Amount)
	}

	summary.Net = summary.TotalIncome.Sub(summary.TotalExpenses)
	return summary
}
