package transaction

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/operator/actions"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// Transaction is the wire representation of a ledger entry. CategoryName and
// CategoryIsIncome are denormalized from the referenced category.
type Transaction struct {
	ID               string `json:"id" doc:"Transaction UUID"`
	UserID           string `json:"userID" doc:"Owning user UUID"`
	CategoryID       string `json:"categoryID" doc:"Category UUID"`
	Amount           string `json:"amount" doc:"Non-negative decimal amount"`
	Description      string `json:"description" doc:"Free-text description"`
	TransactionDate  string `json:"transactionDate" doc:"RFC3339 transaction date"`
	CreatedAt        string `json:"createdAt" doc:"RFC3339 creation time"`
	CategoryName     string `json:"categoryName" doc:"Name of the referenced category"`
	CategoryIsIncome bool   `json:"categoryIsIncome" doc:"Income flag of the referenced category"`
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:               tx.ID.String(),
		UserID:           tx.UserID.String(),
		CategoryID:       tx.CategoryID.String(),
		Amount:           tx.Amount.String(),
		Description:      tx.Description,
		TransactionDate:  tx.TransactionDate.Format(time.RFC3339),
		CreatedAt:        tx.CreatedAt.Format(time.RFC3339),
		CategoryName:     tx.CategoryName,
		CategoryIsIncome: tx.CategoryIsIncome,
	}
}

func fromCreated(created *actions.CreatedTransaction) Transaction {
	row := created.Transaction
	return Transaction{
		ID:               row.ID.String(),
		UserID:           row.UserID.String(),
		CategoryID:       row.CategoryID.String(),
		Amount:           row.Amount.String(),
		Description:      row.Description,
		TransactionDate:  row.TransactionDate.Format(time.RFC3339),
		CreatedAt:        row.CreatedAt.Format(time.RFC3339),
		CategoryName:     created.CategoryName,
		CategoryIsIncome: created.CategoryIsIncome,
	}
}
