package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer, annotated with
// the referenced category's name and income flag so callers do not need a
// second lookup.
type Transaction struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	CategoryID       uuid.UUID
	Amount           decimal.Decimal
	Description      string
	TransactionDate  time.Time
	CreatedAt        time.Time
	CategoryName     string
	CategoryIsIncome bool
}

// TransactionQuery narrows GetTransactions results. Nil fields are ignored;
// date bounds are inclusive.
type TransactionQuery struct {
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *uuid.UUID
}

func transactionFromStorage(row *transaction.Transaction, cat *category.Category) Transaction {
	converted := Transaction{
		ID:              row.ID,
		UserID:          row.UserID,
		CategoryID:      row.CategoryID,
		Amount:          row.Amount,
		Description:     row.Description,
		TransactionDate: row.TransactionDate,
		CreatedAt:       row.CreatedAt,
	}
	if cat != nil {
		converted.CategoryName = cat.Name
		converted.CategoryIsIncome = cat.IsIncome
	}
	return converted
}
