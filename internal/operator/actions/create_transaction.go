package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// CreateTransaction records a ledger entry. The category must belong to the
// user or the action fails with ErrInvalidCategory. The amount is stored as
// its absolute value; the category's income flag carries the direction. A zero
// TransactionDate defaults to now.
type CreateTransaction struct {
	UserID          uuid.UUID
	CategoryID      uuid.UUID
	Amount          decimal.Decimal
	Description     string
	TransactionDate time.Time

	Result *CreatedTransaction
}

// CreatedTransaction is the persisted transaction with its category's name and
// income flag denormalized so callers avoid a second lookup.
type CreatedTransaction struct {
	Transaction      transaction.Transaction
	CategoryName     string
	CategoryIsIncome bool
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	cat, err := writer.Category.FindByID(ctx, a.CategoryID, a.UserID)
	if err != nil {
		return &service.PersistenceError{Op: "CreateTransaction", EntityID: a.CategoryID.String(), Err: err}
	}
	if cat == nil {
		return service.ErrInvalidCategory
	}

	transactionDate := a.TransactionDate
	if transactionDate.IsZero() {
		transactionDate = time.Now().UTC()
	}

	row, err := writer.Transaction.Insert(ctx, &transaction.TransactionCreate{
		UserID:          a.UserID,
		CategoryID:      a.CategoryID,
		Amount:          a.Amount.Abs(),
		Description:     a.Description,
		TransactionDate: transactionDate,
	})
	if err != nil {
		return &service.PersistenceError{Op: "CreateTransaction", EntityID: a.UserID.String(), Err: err}
	}

	a.Result = &CreatedTransaction{
		Transaction:      *row,
		CategoryName:     cat.Name,
		CategoryIsIncome: cat.IsIncome,
	}
	return nil
}
