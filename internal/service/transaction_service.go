package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
)

// TransactionService handles ledger read logic. Insertions go through the
// operator's write pipeline.
type TransactionService struct {
	reader *storage.Reader
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(reader *storage.Reader) *TransactionService {
	return &TransactionService{reader: reader}
}

// GetTransactions returns the user's transactions matching the query, newest
// first, each annotated with its category's name and income flag. No matches
// yields an empty slice, never an error.
func (s *TransactionService) GetTransactions(ctx context.Context, userID uuid.UUID, query *TransactionQuery) ([]Transaction, error) {
	filter := &transaction.TransactionFilter{UserID: userID}
	if query != nil {
		filter.StartDate = query.StartDate
		filter.EndDate = query.EndDate
		filter.CategoryID = query.CategoryID
	}

	rows, err := s.reader.Transactions.List(ctx, filter)
	if err != nil {
		return nil, &PersistenceError{Op: "GetTransactions", EntityID: userID.String(), Err: err}
	}

	categories, err := s.reader.Categories.List(ctx, &category.CategoryFilter{UserID: userID})
	if err != nil {
		return nil, &PersistenceError{Op: "GetTransactions", EntityID: userID.String(), Err: err}
	}
	index := categoryIndex(categories)

	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = transactionFromStorage(row, index[row.CategoryID])
	}
	return converted, nil
}
