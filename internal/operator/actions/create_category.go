package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
)

// CreateCategory creates a category for a user. Fails with
// ErrDuplicateCategory when the (user, name, income flag) triple already
// exists. On success Result holds the persisted row.
type CreateCategory struct {
	UserID   uuid.UUID
	Name     string
	IsIncome bool

	Result *category.Category
}

func (a *CreateCategory) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Category.FindByName(ctx, a.UserID, a.Name, a.IsIncome)
	if err != nil {
		return &service.PersistenceError{Op: "CreateCategory", EntityID: a.UserID.String(), Err: err}
	}
	if existing != nil {
		return service.ErrDuplicateCategory
	}

	row, err := writer.Category.Insert(ctx, &category.CategoryCreate{
		UserID:   a.UserID,
		Name:     a.Name,
		IsIncome: a.IsIncome,
	})
	if storage.IsUniqueViolation(err) {
		// Lost a race with a concurrent insert of the same triple.
		return service.ErrDuplicateCategory
	}
	if err != nil {
		return &service.PersistenceError{Op: "CreateCategory", EntityID: a.UserID.String(), Err: err}
	}

	a.Result = row
	return nil
}
