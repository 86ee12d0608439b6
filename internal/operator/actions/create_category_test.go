package actions

import (
	"context"
	"errors"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
)

func TestCreateCategory_Success(t *testing.T) {
	writer, categories, _, _, _ := newTestWriter()

	userID := uuid.Must(uuid.NewV4())
	created := &category.Category{
		ID:       uuid.Must(uuid.NewV4()),
		UserID:   userID,
		Name:     "Subscriptions",
		IsIncome: false,
	}

	categories.On("FindByName", mock.Anything, userID, "Subscriptions", false).Return(nil, nil)
	categories.On("Insert", mock.Anything, mock.MatchedBy(func(c *category.CategoryCreate) bool {
		return c.UserID == userID && c.Name == "Subscriptions" && !c.IsIncome
	})).Return(created, nil)

	action := &CreateCategory{UserID: userID, Name: "Subscriptions", IsIncome: false}
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	assert.Equal(t, created, action.Result)
	categories.AssertExpectations(t)
}

func TestCreateCategory_Duplicate(t *testing.T) {
	writer, categories, _, _, _ := newTestWriter()

	userID := uuid.Must(uuid.NewV4())
	categories.On("FindByName", mock.Anything, userID, "Food", false).
		Return(&category.Category{ID: uuid.Must(uuid.NewV4()), UserID: userID, Name: "Food"}, nil)

	action := &CreateCategory{UserID: userID, Name: "Food", IsIncome: false}
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, service.ErrDuplicateCategory)
	categories.AssertNotCalled(t, "Insert")
}

func TestCreateCategory_DuplicateRace(t *testing.T) {
	writer, categories, _, _, _ := newTestWriter()

	userID := uuid.Must(uuid.NewV4())
	categories.On("FindByName", mock.Anything, userID, "Food", false).Return(nil, nil)
	categories.On("Insert", mock.Anything, mock.Anything).
		Return(nil, &pq.Error{Code: "23505"})

	action := &CreateCategory{UserID: userID, Name: "Food", IsIncome: false}
	err := action.Perform(context.Background(), writer)

	assert.ErrorIs(t, err, service.ErrDuplicateCategory)
}

func TestCreateCategory_SameNameDifferentFlagAllowed(t *testing.T) {
	writer, categories, _, _, _ := newTestWriter()

	userID := uuid.Must(uuid.NewV4())
	created := &category.Category{ID: uuid.Must(uuid.NewV4()), UserID: userID, Name: "Other", IsIncome: true}

	// The duplicate check includes the income flag, so an expense category
	// named "Other" does not block an income category of the same name.
	categories.On("FindByName", mock.Anything, userID, "Other", true).Return(nil, nil)
	categories.On("Insert", mock.Anything, mock.Anything).Return(created, nil)

	action := &CreateCategory{UserID: userID, Name: "Other", IsIncome: true}
	err := action.Perform(context.Background(), writer)

	assert.NoError(t, err)
	assert.Equal(t, created, action.Result)
}

func TestCreateCategory_StorageError(t *testing.T) {
	writer, categories, _, _, _ := newTestWriter()

	categories.On("FindByName", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	action := &CreateCategory{UserID: uuid.Must(uuid.NewV4()), Name: "Food"}
	err := action.Perform(context.Background(), writer)

	assert.Error(t, err)
	var persistenceErr *service.PersistenceError
	assert.ErrorAs(t, err, &persistenceErr)
}
