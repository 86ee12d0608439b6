package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
)

// DefaultIncomeCategories and DefaultExpenseCategories are the fixed category
// set seeded for every new user.
var (
	DefaultIncomeCategories = []string{"Salary", "Investments", "Gifts", "Other Income"}

	DefaultExpenseCategories = []string{"Housing", "Food", "Transportation", "Utilities",
		"Healthcare", "Entertainment", "Education", "Shopping",
		"Savings", "Debt Payments", "Miscellaneous"}
)

// SeedCategories creates the default category set for a user. It is intended
// to run exactly once, at registration; a second run hits the uniqueness
// constraint and the whole batch rolls back with ErrDuplicateCategory.
type SeedCategories struct {
	UserID uuid.UUID
}

func (a *SeedCategories) Perform(ctx context.Context, writer *storage.Writer) error {
	return seedCategories(ctx, writer, a.UserID)
}

func seedCategories(ctx context.Context, writer *storage.Writer, userID uuid.UUID) error {
	for _, name := range DefaultIncomeCategories {
		if err := insertDefault(ctx, writer, userID, name, true); err != nil {
			return err
		}
	}
	for _, name := range DefaultExpenseCategories {
		if err := insertDefault(ctx, writer, userID, name, false); err != nil {
			return err
		}
	}
	return nil
}

func insertDefault(ctx context.Context, writer *storage.Writer, userID uuid.UUID, name string, isIncome bool) error {
	_, err := writer.Category.Insert(ctx, &category.CategoryCreate{
		UserID:   userID,
		Name:     name,
		IsIncome: isIncome,
	})
	if storage.IsUniqueViolation(err) {
		return service.ErrDuplicateCategory
	}
	if err != nil {
		return &service.PersistenceError{Op: "SeedCategories", EntityID: userID.String(), Err: err}
	}
	return nil
}
