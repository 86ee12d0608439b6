package storage

import (
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/goal"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

// Reader bundles read access to every table. Fields are interfaces so tests
// can substitute mocks.
type Reader struct {
	Categories   category.IReader
	Transactions transaction.IReader
	Goals        goal.IReader
	Users        user.IReader
}

func NewReader(exec bob.Executor) *Reader {
	return &Reader{
		Categories:   category.NewReader(exec),
		Transactions: transaction.NewReader(exec),
		Goals:        goal.NewReader(exec),
		Users:        user.NewReader(exec),
	}
}
