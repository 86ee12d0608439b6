package goal

import (
	"context"
	"time"

	"github.com/aarondl/opt/omit"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// Goal represents a savings goal record.
type Goal struct {
	ID            uuid.UUID       `db:"id"`
	UserID        uuid.UUID       `db:"user_id"`
	Name          string          `db:"name"`
	TargetAmount  decimal.Decimal `db:"target_amount"`
	CurrentAmount decimal.Decimal `db:"current_amount"`
	Deadline      *time.Time      `db:"deadline"`
	CreatedAt     time.Time       `db:"created_at"`
}

// GoalCreate is the input for creating a new goal. CurrentAmount starts at zero.
type GoalCreate struct {
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	Deadline     *time.Time
}

// GoalUpdate carries the fields of a partial update. An unset field leaves the
// stored value untouched; unset is distinct from an explicit zero.
type GoalUpdate struct {
	CurrentAmount omit.Val[decimal.Decimal]
	TargetAmount  omit.Val[decimal.Decimal]
	Deadline      omit.Val[time.Time]
}

// IsEmpty reports whether the update would change nothing.
func (u *GoalUpdate) IsEmpty() bool {
	return !u.CurrentAmount.IsValue() && !u.TargetAmount.IsValue() && !u.Deadline.IsValue()
}

// IReader defines the read operations on goal storage.
type IReader interface {
	FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*Goal, error)
	List(ctx context.Context, userID uuid.UUID) ([]*Goal, error)
}

// IWriter defines the full set of operations on goal storage within a transaction.
type IWriter interface {
	IReader
	Insert(ctx context.Context, create *GoalCreate) (*Goal, error)
	Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, update *GoalUpdate) (int64, error)
}
