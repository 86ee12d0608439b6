package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-tracker/internal/service"
)

// mockTransactionService is a mock for transactionLister.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) GetTransactions(ctx context.Context, userID uuid.UUID, query *service.TransactionQuery) ([]service.Transaction, error) {
	args := m.Called(ctx, userID, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Transaction), args.Error(1)
}

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

// -- parseListTransactionsInput unit tests --

func TestParseListTransactionsInput_AllFilters(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	categoryID := uuid.Must(uuid.NewV4())

	input := &ListTransactionsInput{
		Body: ListTransactionsBody{
			UserID:     userID.String(),
			StartDate:  "2025-01-01T00:00:00Z",
			EndDate:    "2025-01-31T23:59:59Z",
			CategoryID: categoryID.String(),
		},
	}

	parsedUserID, query, err := parseListTransactionsInput(input)
	assert.NoError(t, err)
	assert.Equal(t, userID, parsedUserID)
	assert.NotNil(t, query.StartDate)
	assert.NotNil(t, query.EndDate)
	assert.Equal(t, &categoryID, query.CategoryID)
}

func TestParseListTransactionsInput_NoFilters(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())

	input := &ListTransactionsInput{
		Body: ListTransactionsBody{UserID: userID.String()},
	}

	parsedUserID, query, err := parseListTransactionsInput(input)
	assert.NoError(t, err)
	assert.Equal(t, userID, parsedUserID)
	assert.Nil(t, query.StartDate)
	assert.Nil(t, query.EndDate)
	assert.Nil(t, query.CategoryID)
}

func TestParseListTransactionsInput_InvalidCategoryID(t *testing.T) {
	input := &ListTransactionsInput{
		Body: ListTransactionsBody{
			UserID:     uuid.Must(uuid.NewV4()).String(),
			CategoryID: "not-a-uuid",
		},
	}

	_, _, err := parseListTransactionsInput(input)
	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_ListTransactions_Success(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	txDate := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)

	mockSvc := new(mockTransactionService)
	mockSvc.On("GetTransactions", mock.Anything, userID, mock.Anything).
		Return([]service.Transaction{{
			ID:               uuid.Must(uuid.NewV4()),
			UserID:           userID,
			CategoryID:       uuid.Must(uuid.NewV4()),
			Amount:           decimal.RequireFromString("12.50"),
			Description:      "Coffee",
			TransactionDate:  txDate,
			CategoryName:     "Food",
			CategoryIsIncome: false,
		}}, nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{
		UserID: userID.String(),
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 1)
	assert.Equal(t, "12.5", body.Transactions[0].Amount)
	assert.Equal(t, "Food", body.Transactions[0].CategoryName)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_DateRangePassedThrough(t *testing.T) {
	userID := uuid.Must(uuid.NewV4())
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)

	mockSvc := new(mockTransactionService)
	mockSvc.On("GetTransactions", mock.Anything, userID, mock.MatchedBy(func(q *service.TransactionQuery) bool {
		return q.StartDate != nil && q.StartDate.Equal(start) &&
			q.EndDate != nil && q.EndDate.Equal(end)
	})).Return([]service.Transaction{}, nil)

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{
		UserID:    userID.String(),
		StartDate: start.Format(time.RFC3339),
		EndDate:   end.Format(time.RFC3339),
	})

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_InvalidStartDate(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma's format:"date-time" schema validation rejects this before the
	// handler runs.
	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{
		UserID:    uuid.Must(uuid.NewV4()).String(),
		StartDate: "not-a-date",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "GetTransactions")
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("GetTransactions", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newListTestAPI(t, mockSvc).Post("/v1/transaction/list", ListTransactionsBody{
		UserID: uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
