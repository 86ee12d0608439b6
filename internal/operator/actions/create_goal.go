package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/goal"
)

// CreateGoal creates a savings goal with a zero current amount. Goal names are
// not unique. On success Result holds the persisted row.
type CreateGoal struct {
	UserID       uuid.UUID
	Name         string
	TargetAmount decimal.Decimal
	Deadline     *time.Time

	Result *goal.Goal
}

func (a *CreateGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Goal.Insert(ctx, &goal.GoalCreate{
		UserID:       a.UserID,
		Name:         a.Name,
		TargetAmount: a.TargetAmount,
		Deadline:     a.Deadline,
	})
	if err != nil {
		return &service.PersistenceError{Op: "CreateGoal", EntityID: a.UserID.String(), Err: err}
	}

	a.Result = row
	return nil
}
