package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/category"
	"github.com/carson-networks/finance-tracker/internal/storage/goal"
	"github.com/carson-networks/finance-tracker/internal/storage/transaction"
	"github.com/carson-networks/finance-tracker/internal/storage/user"
)

// mockCategoryWriter is a mock for category.IWriter.
type mockCategoryWriter struct {
	mock.Mock
}

func (m *mockCategoryWriter) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*category.Category, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *mockCategoryWriter) FindByName(ctx context.Context, userID uuid.UUID, name string, isIncome bool) (*category.Category, error) {
	args := m.Called(ctx, userID, name, isIncome)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *mockCategoryWriter) List(ctx context.Context, filter *category.CategoryFilter) ([]*category.Category, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*category.Category), args.Error(1)
}

func (m *mockCategoryWriter) Insert(ctx context.Context, create *category.CategoryCreate) (*category.Category, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

// mockTransactionWriter is a mock for transaction.IWriter.
type mockTransactionWriter struct {
	mock.Mock
}

func (m *mockTransactionWriter) List(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transaction.Transaction), args.Error(1)
}

func (m *mockTransactionWriter) Insert(ctx context.Context, create *transaction.TransactionCreate) (*transaction.Transaction, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*transaction.Transaction), args.Error(1)
}

// mockGoalWriter is a mock for goal.IWriter.
type mockGoalWriter struct {
	mock.Mock
}

func (m *mockGoalWriter) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*goal.Goal, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*goal.Goal), args.Error(1)
}

func (m *mockGoalWriter) List(ctx context.Context, userID uuid.UUID) ([]*goal.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*goal.Goal), args.Error(1)
}

func (m *mockGoalWriter) Insert(ctx context.Context, create *goal.GoalCreate) (*goal.Goal, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*goal.Goal), args.Error(1)
}

func (m *mockGoalWriter) Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, update *goal.GoalUpdate) (int64, error) {
	args := m.Called(ctx, id, userID, update)
	return args.Get(0).(int64), args.Error(1)
}

// mockUserWriter is a mock for user.IWriter.
type mockUserWriter struct {
	mock.Mock
}

func (m *mockUserWriter) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserWriter) Insert(ctx context.Context, create *user.UserCreate) (*user.User, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

func (m *mockUserWriter) Delete(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// newTestWriter bundles fresh mocks into a storage.Writer for action tests.
func newTestWriter() (*storage.Writer, *mockCategoryWriter, *mockTransactionWriter, *mockGoalWriter, *mockUserWriter) {
	categories := new(mockCategoryWriter)
	transactions := new(mockTransactionWriter)
	goals := new(mockGoalWriter)
	users := new(mockUserWriter)
	writer := &storage.Writer{
		Category:    categories,
		Transaction: transactions,
		Goal:        goals,
		User:        users,
	}
	return writer, categories, transactions, goals, users
}
