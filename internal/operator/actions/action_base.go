package actions

import (
	"context"

	"github.com/carson-networks/finance-tracker/internal/storage"
)

// IAction is a unit of write work performed inside a single storage
// transaction. Perform must leave any result data on the action itself; the
// operator commits on nil error and rolls back otherwise.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
