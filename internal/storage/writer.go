package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/goal"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

// Writer bundles write access to every table within one transaction. Fields
// are interfaces so tests can substitute mocks.
type Writer struct {
	tx          bob.Tx
	Category    category.IWriter
	Transaction transaction.IWriter
	Goal        goal.IWriter
	User        user.IWriter
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:          tx,
		Category:    category.NewWriter(tx),
		Transaction: transaction.NewWriter(tx),
		Goal:        goal.NewWriter(tx),
		User:        user.NewWriter(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
