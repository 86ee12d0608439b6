package service

import (
	"bytes"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/storage/category"
)

// Category represents a category in the service layer.
type Category struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Name      string
	IsIncome  bool
	CreatedAt time.Time
}

func categoryFromStorage(row *category.Category) Category {
	return Category{
		ID:        row.ID,
		UserID:    row.UserID,
		Name:      row.Name,
		IsIncome:  row.IsIncome,
		CreatedAt: row.CreatedAt,
	}
}

// sortCategories restores insertion order after building a list from a map.
func sortCategories(categories []Category) {
	sort.Slice(categories, func(i, j int) bool {
		if !categories[i].CreatedAt.Equal(categories[j].CreatedAt) {
			return categories[i].CreatedAt.Before(categories[j].CreatedAt)
		}
		return bytes.Compare(categories[i].ID.Bytes(), categories[j].ID.Bytes()) < 0
	})
}

// categoryIndex maps category IDs to their rows for annotation joins.
func categoryIndex(rows []*category.Category) map[uuid.UUID]*category.Category {
	index := make(map[uuid.UUID]*category.Category, len(rows))
	for _, row := range rows {
		index[row.ID] = row
	}
	return index
}
