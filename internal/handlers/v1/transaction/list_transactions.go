package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/DiogoCarvalho999/FinanceDashboard/internal/logging"
	"github.com/DiogoCarvalho999/FinanceDashboard/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
// When start and end are both given the list is restricted to that inclusive
// date range.
type ListTransactionsInput struct {
	UserID int64  `query:"userId" doc:"Owner id, when not identified by email"`
	Email  string `query:"email" doc:"Owner email, when not identified by id"`
	Start  string `query:"start" doc:"Range start, YYYY-MM-DD, inclusive"`
	End    string `query:"end" doc:"Range end, YYYY-MM-DD, inclusive"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Transactions, most recent date first"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, owner service.OwnerKey) ([]service.Transaction, error)
	ListTransactionsRange(ctx context.Context, owner service.OwnerKey, dateRange service.DateRange) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/transactions.
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
		Method:      http.MethodGet,
		Path:        "/v1/transactions",
		Summary:     "List transactions",
		Description: "Returns an owner's transactions ordered by date descending, optionally restricted to an inclusive date range.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	owner, err := parseOwner(input.UserID, input.Email)
	if err != nil {
		return nil, err
	}

	var transactions []service.Transaction
	if input.Start != "" || input.End != "" {
		dateRange, parseErr := parseDateRange(input.Start, input.End)
		if parseErr != nil {
			return nil, parseErr
		}
		transactions, err = h.TransactionService.ListTransactionsRange(ctx, owner, dateRange)
	} else {
		transactions, err = h.TransactionService.ListTransactions(ctx, owner)
	}
	if err != nil {
		return nil, mapServiceError("failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i := range transactions {
		resp.Transactions[i] = toView(&transactions[i])
	}

	return &ListTransactionsOutput{Body: resp}, nil
}

func parseDateRange(start, end string) (service.DateRange, error) {
	startDate, err := time.Parse(dateLayout, start)
	if err != nil {
		return service.DateRange{}, huma.NewError(http.StatusBadRequest, "invalid start date, expected YYYY-MM-DD", err)
	}
	endDate, err := time.Parse(dateLayout, end)
	if err != nil {
		return service.DateRange{}, huma.NewError(http.StatusBadRequest, "invalid end date, expected YYYY-MM-DD", err)
	}
	return service.DateRange{Start: startDate, End: endDate}, nil
}
