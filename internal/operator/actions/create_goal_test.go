package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage/goal"
)

func TestCreateGoal_Success(t *testing.T) {
	writer, _, _, goals, _ := newTestWriter()

	userID := uuid.Must(uuid.NewV4())
	deadline := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	created := &goal.Goal{
		ID:            uuid.Must(uuid.NewV4()),
		UserID:        userID,
		Name:          "Vacation",
		TargetAmount:  decimal.RequireFromString("1200.00"),
		CurrentAmount: decimal.Zero,
		Deadline:      &deadline,
	}

	goals.On("Insert", mock.Anything, mock.MatchedBy(func(c *goal.GoalCreate) bool {
		return c.UserID == userID &&
			c.Name == "Vacation" &&
			c.TargetAmount.Equal(decimal.RequireFromString("1200.00")) &&
			c.Deadline != nil && c.Deadline.Equal(deadline)
	})).Return(created, nil)

	action := &CreateGoal{
		UserID:       userID,
		Name:         "Vacation",
		TargetAmount: decimal.RequireFromString("1200.00"),
		Deadline:     &deadline,
	}
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	assert.Equal(t, created, action.Result)
	assert.True(t, action.Result.CurrentAmount.IsZero())
	goals.AssertExpectations(t)
}

func TestCreateGoal_NoDeadline(t *testing.T) {
	writer, _, _, goals, _ := newTestWriter()

	userID := uuid.Must(uuid.NewV4())
	created := &goal.Goal{ID: uuid.Must(uuid.NewV4()), UserID: userID, Name: "Emergency Fund"}

	goals.On("Insert", mock.Anything, mock.MatchedBy(func(c *goal.GoalCreate) bool {
		return c.Deadline == nil
	})).Return(created, nil)

	action := &CreateGoal{
		UserID:       userID,
		Name:         "Emergency Fund",
		TargetAmount: decimal.RequireFromString("500.00"),
	}
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	assert.Nil(t, action.Result.Deadline)
}

func TestCreateGoal_StorageError(t *testing.T) {
	writer, _, _, goals, _ := newTestWriter()

	goals.On("Insert", mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	action := &CreateGoal{
		UserID:       uuid.Must(uuid.NewV4()),
		Name:         "Vacation",
		TargetAmount: decimal.RequireFromString("1200.00"),
	}
	err := action.Perform(context.Background(), writer)

	assert.Error(t, err)
	var persistenceErr *service.PersistenceError
	assert.ErrorAs(t, err, &persistenceErr)
	assert.Nil(t, action.Result)
}
