package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
)

// CategoryService handles category read logic. Mutations go through the
// operator's write pipeline.
type CategoryService struct {
	reader *storage.Reader
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(reader *storage.Reader) *CategoryService {
	return &CategoryService{reader: reader}
}

// ListCategories returns the user's categories in insertion order, optionally
// restricted to income or expense categories.
func (s *CategoryService) ListCategories(ctx context.Context, userID uuid.UUID, isIncome *bool) ([]Category, error) {
	rows, err := s.reader.Categories.List(ctx, &category.CategoryFilter{
		UserID:   userID,
		IsIncome: isIncome,
	})
	if err != nil {
		return nil, &PersistenceError{Op: "ListCategories", EntityID: userID.String(), Err: err}
	}

	converted := make([]Category, len(rows))
	for i, row := range rows {
		converted[i] = categoryFromStorage(row)
	}
	return converted, nil
}
