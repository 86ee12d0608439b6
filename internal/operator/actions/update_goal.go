package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/goal"
)

// UpdateGoal applies a partial update to a goal owned by the user. Only set
// fields change; unset is distinct from zero. Fails with ErrGoalNotFound when
// no goal with that ID belongs to the user. On success Result holds the row
// after the update.
type UpdateGoal struct {
	GoalID uuid.UUID
	UserID uuid.UUID
	Update goal.GoalUpdate

	Result *goal.Goal
}

func (a *UpdateGoal) Perform(ctx context.Context, writer *storage.Writer) error {
	existing, err := writer.Goal.FindByID(ctx, a.GoalID, a.UserID)
	if err != nil {
		return &service.PersistenceError{Op: "UpdateGoal", EntityID: a.GoalID.String(), Err: err}
	}
	if existing == nil {
		return service.ErrGoalNotFound
	}

	if a.Update.IsEmpty() {
		a.Result = existing
		return nil
	}

	if _, err := writer.Goal.Update(ctx, a.GoalID, a.UserID, &a.Update); err != nil {
		return &service.PersistenceError{Op: "UpdateGoal", EntityID: a.GoalID.String(), Err: err}
	}

	updated, err := writer.Goal.FindByID(ctx, a.GoalID, a.UserID)
	if err != nil {
		return &service.PersistenceError{Op: "UpdateGoal", EntityID: a.GoalID.String(), Err: err}
	}

	a.Result = updated
	return nil
}
