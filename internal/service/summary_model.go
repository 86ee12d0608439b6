package service

import (
	"github.com/shopspring/decimal"
)

// MonthlySummary is the derived aggregate for one user/year/month. It is never
// persisted.
type MonthlySummary struct {
	Year          int
	Month         int
	TotalIncome   decimal.Decimal
	TotalExpenses decimal.Decimal
	Net           decimal.Decimal
	// CategoryBreakdown sums amounts per category name across all transactions
	// in the period regardless of the income flag. Same-named income and
	// expense categories merge their sums.
	CategoryBreakdown map[string]decimal.Decimal
}

// YearlySummary is the derived aggregate for one user/year: the twelve monthly
// summaries plus the yearly totals.
type YearlySummary struct {
	Year           int
	Months         []MonthlySummary
	YearlyIncome   decimal.Decimal
	YearlyExpenses decimal.Decimal
	YearlyNet      decimal.Decimal
}

// MonthlyReport merges a monthly summary with everything the report collaborator
// renders: the period's transactions, the user's category lists, and all goals.
type MonthlyReport struct {
	Title             string
	Period            string
	Summary           MonthlySummary
	Transactions      []Transaction
	IncomeCategories  []Category
	ExpenseCategories []Category
	Goals             []Goal
}

// YearlyReport merges a yearly summary with the user's goals.
type YearlyReport struct {
	Title   string
	Period  string
	Summary YearlySummary
	Goals   []Goal
}
