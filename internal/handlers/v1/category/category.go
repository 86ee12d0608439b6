package category

import (
	"time"

	"github.com/carson-networks/finance-tracker/internal/service"
	categorystore "github.com/carson-networks/finance-tracker/internal/storage/category"
)

// Category is the wire representation of a category.
type Category struct {
	ID        string `json:"id" doc:"Category UUID"`
	UserID    string `json:"userID" doc:"Owning user UUID"`
	Name      string `json:"name" doc:"Category name"`
	IsIncome  bool   `json:"isIncome" doc:"True for income, false for expense"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}

func fromService(cat service.Category) Category {
	return Category{
		ID:        cat.ID.String(),
		UserID:    cat.UserID.String(),
		Name:      cat.Name,
		IsIncome:  cat.IsIncome,
		CreatedAt: cat.CreatedAt.Format(time.RFC3339),
	}
}

func fromStorage(row *categorystore.Category) Category {
	return Category{
		ID:        row.ID.String(),
		UserID:    row.UserID.String(),
		Name:      row.Name,
		IsIncome:  row.IsIncome,
		CreatedAt: row.CreatedAt.Format(time.RFC3339),
	}
}
