package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-tracker/internal/logging"
	"github.com/carson-networks/finance-tracker/internal/service"
)

// ListTransactionsBody is the request body for listing transactions. Date
// bounds are inclusive; all provided filters apply together.
type ListTransactionsBody struct {
	UserID     string `json:"userID" required:"true" doc:"Owning user UUID"`
	StartDate  string `json:"startDate,omitempty" format:"date-time" doc:"Inclusive RFC3339 lower bound on the transaction date"`
	EndDate    string `json:"endDate,omitempty" format:"date-time" doc:"Inclusive RFC3339 upper bound on the transaction date"`
	CategoryID string `json:"categoryID,omitempty" doc:"Restrict to one category"`
}

// ListTransactionsInput is the Huma input for listing transactions.
type ListTransactionsInput struct {
	Body ListTransactionsBody
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Matching transactions, newest first"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	GetTransactions(ctx context.Context, userID uuid.UUID, query *service.TransactionQuery) ([]service.Transaction, error)
}

// ListTransactionsHandler handles POST /v1/transaction/list.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/list",
		Summary:     "List transactions",
		Description: "Returns the user's transactions matching all provided filters, sorted by date descending.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseListTransactionsInput(input *ListTransactionsInput) (uuid.UUID, *service.TransactionQuery, error) {
	userID, err := uuid.FromString(input.Body.UserID)
	if err != nil {
		return uuid.Nil, nil, huma.NewError(http.StatusBadRequest, "invalid userID", err)
	}

	query := &service.TransactionQuery{}

	if input.Body.StartDate != "" {
		startDate, parseErr := time.Parse(time.RFC3339, input.Body.StartDate)
		if parseErr != nil {
			return uuid.Nil, nil, huma.NewError(http.StatusBadRequest, "invalid startDate", parseErr)
		}
		query.StartDate = &startDate
	}

	if input.Body.EndDate != "" {
		endDate, parseErr := time.Parse(time.RFC3339, input.Body.EndDate)
		if parseErr != nil {
			return uuid.Nil, nil, huma.NewError(http.StatusBadRequest, "invalid endDate", parseErr)
		}
		query.EndDate = &endDate
	}

	if input.Body.CategoryID != "" {
		categoryID, parseErr := uuid.FromString(input.Body.CategoryID)
		if parseErr != nil {
			return uuid.Nil, nil, huma.NewError(http.StatusBadRequest, "invalid categoryID", parseErr)
		}
		query.CategoryID = &categoryID
	}

	return userID, query, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	userID, query, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, err
	}

	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("listTransactionsMs")
	}
	transactions, err := h.TransactionService.GetTransactions(ctx, userID, query)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i, tx := range transactions {
		resp.Transactions[i] = fromService(tx)
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
