package category

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Category represents a category record.
type Category struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Name      string    `db:"name"`
	IsIncome  bool      `db:"is_income"`
	CreatedAt time.Time `db:"created_at"`
}

// CategoryFilter specifies filters for listing categories.
type CategoryFilter struct {
	UserID   uuid.UUID
	IsIncome *bool
}

// CategoryCreate is the input for creating a new category.
type CategoryCreate struct {
	UserID   uuid.UUID
	Name     string
	IsIncome bool
}

// IReader defines the read operations on category storage.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type IReader interface {
	FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Category, error)
	FindByName(ctx context.Context, userID uuid.UUID, name string, isIncome bool) (*Category, error)
	List(ctx context.Context, filter *CategoryFilter) ([]*Category, error)
}

// IWriter defines the full set of operations on category storage within a transaction.
type IWriter interface {
	IReader
	Insert(ctx context.Context, create *CategoryCreate) (*Category, error)
}
