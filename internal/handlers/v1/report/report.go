package report

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// MonthlySummary is the wire representation of a monthly summary. Amounts are
// decimal strings.
type MonthlySummary struct {
	Year              int               `json:"year" doc:"Calendar year"`
	Month             int               `json:"month" doc:"Calendar month, 1-12"`
	TotalIncome       string            `json:"totalIncome" doc:"Sum of amounts in income categories"`
	TotalExpenses     string            `json:"totalExpenses" doc:"Sum of amounts in expense categories"`
	Net               string            `json:"net" doc:"totalIncome minus totalExpenses"`
	CategoryBreakdown map[string]string `json:"categoryBreakdown" doc:"Summed amount per category name"`
}

// YearlySummary is the wire representation of a yearly summary.
type YearlySummary struct {
	Year           int              `json:"year" doc:"Calendar year"`
	Months         []MonthlySummary `json:"months" doc:"The twelve monthly summaries"`
	YearlyIncome   string           `json:"yearlyIncome" doc:"Income summed across the year"`
	YearlyExpenses string           `json:"yearlyExpenses" doc:"Expenses summed across the year"`
	YearlyNet      string           `json:"yearlyNet" doc:"yearlyIncome minus yearlyExpenses"`
}

// Transaction is the report's wire representation of a ledger entry.
type Transaction struct {
	ID               string `json:"id" doc:"Transaction UUID"`
	Amount           string `json:"amount" doc:"Non-negative decimal amount"`
	Description      string `json:"description" doc:"Free-text description"`
	TransactionDate  string `json:"transactionDate" doc:"RFC3339 transaction date"`
	CategoryName     string `json:"categoryName" doc:"Name of the referenced category"`
	CategoryIsIncome bool   `json:"categoryIsIncome" doc:"Income flag of the referenced category"`
}

// Category is the report's wire representation of a category.
type Category struct {
	ID       string `json:"id" doc:"Category UUID"`
	Name     string `json:"name" doc:"Category name"`
	IsIncome bool   `json:"isIncome" doc:"True for income, false for expense"`
}

// Goal is the report's wire representation of a savings goal with its derived
// progress percentage.
type Goal struct {
	ID            string  `json:"id" doc:"Goal UUID"`
	Name          string  `json:"name" doc:"Goal name"`
	TargetAmount  string  `json:"targetAmount" doc:"Target decimal amount"`
	CurrentAmount string  `json:"currentAmount" doc:"Current decimal amount"`
	Deadline      string  `json:"deadline,omitempty" doc:"RFC3339 deadline, absent when none"`
	Progress      float64 `json:"progress" doc:"Completion percentage, 0 when the target is not positive"`
}

func monthlySummaryFromService(summary service.MonthlySummary) MonthlySummary {
	converted := MonthlySummary{
		Year:              summary.Year,
		Month:             summary.Month,
		TotalIncome:       summary.TotalIncome.String(),
		TotalExpenses:     summary.TotalExpenses.String(),
		Net:               summary.Net.String(),
		CategoryBreakdown: make(map[string]string, len(summary.CategoryBreakdown)),
	}
	for name, amount := range summary.CategoryBreakdown {
		converted.CategoryBreakdown[name] = amount.String()
	}
	return converted
}

func yearlySummaryFromService(summary service.YearlySummary) YearlySummary {
	converted := YearlySummary{
		Year:           summary.Year,
		Months:         make([]MonthlySummary, len(summary.Months)),
		YearlyIncome:   summary.YearlyIncome.String(),
		YearlyExpenses: summary.YearlyExpenses.String(),
		YearlyNet:      summary.YearlyNet.String(),
	}
	for i, monthly := range summary.Months {
		converted.Months[i] = monthlySummaryFromService(monthly)
	}
	return converted
}

func transactionFromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:               tx.ID.String(),
		Amount:           tx.Amount.String(),
		Description:      tx.Description,
		TransactionDate:  tx.TransactionDate.Format(time.RFC3339),
		CategoryName:     tx.CategoryName,
		CategoryIsIncome: tx.CategoryIsIncome,
	}
}

func categoryFromService(cat service.Category) Category {
	return Category{
		ID:       cat.ID.String(),
		Name:     cat.Name,
		IsIncome: cat.IsIncome,
	}
}

func goalFromService(g service.Goal) Goal {
	converted := Goal{
		ID:            g.ID.String(),
		Name:          g.Name,
		TargetAmount:  g.TargetAmount.String(),
		CurrentAmount: g.CurrentAmount.String(),
		Progress:      g.Progress(),
	}
	if g.Deadline != nil {
		converted.Deadline = g.Deadline.Format(time.RFC3339)
	}
	return converted
}
