package service

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

// mockCategoryReader is a mock for category.IReader.
type mockCategoryReader struct {
	mock.Mock
}

func (m *mockCategoryReader) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*category.Category, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *mockCategoryReader) FindByName(ctx context.Context, userID uuid.UUID, name string, isIncome bool) (*category.Category, error) {
	args := m.Called(ctx, userID, name, isIncome)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*category.Category), args.Error(1)
}

func (m *mockCategoryReader) List(ctx context.Context, filter *category.CategoryFilter) ([]*category.Category, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*category.Category), args.Error(1)
}

// mockTransactionReader is a mock for transaction.IReader.
type mockTransactionReader struct {
	mock.Mock
}

func (m *mockTransactionReader) List(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*transaction.Transaction), args.Error(1)
}

// mockGoalReader is a mock for goal.IReader.
type mockGoalReader struct {
	mock.Mock
}

func (m *mockGoalReader) FindByID(ctx context.Context, id uuid.UUID, userID uuid.UUID) (*goal.Goal, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*goal.Goal), args.Error(1)
}

func (m *mockGoalReader) List(ctx context.Context, userID uuid.UUID) ([]*goal.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*goal.Goal), args.Error(1)
}

// mockUserReader is a mock for user.IReader.
type mockUserReader struct {
	mock.Mock
}

func (m *mockUserReader) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*user.User), args.Error(1)
}

// newTestReader bundles fresh mocks into a storage.Reader for service tests.
func newTestReader() (*storage.Reader, *mockCategoryReader, *mockTransactionReader, *mockGoalReader, *mockUserReader) {
	categories := new(mockCategoryReader)
	transactions := new(mockTransactionReader)
	goals := new(mockGoalReader)
	users := new(mockUserReader)
	reader := &storage.Reader{
		Categories:   categories,
		Transactions: transactions,
		Goals:        goals,
		Users:        users,
	}
	return reader, categories, transactions, goals, users
}
