package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/DiogoCarvalho999/FinanceDashboard/internal/service"
)

// GetBalanceInput is the Huma input for the balance endpoint.
type GetBalanceInput struct {
	RangeQuery
}

// BalanceResponseBody is the response body for the balance endpoint.
type BalanceResponseBody struct {
	Balance string `json:"balance" doc:"Signed decimal: income minus expense"`
}

// GetBalanceOutput is the Huma output for the balance endpoint.
type GetBalanceOutput struct {
	Body BalanceResponseBody
}

// balanceGetter is the interface for computing a balance.
type balanceGetter interface {
	GetBalance(ctx context.Context, owner service.OwnerKey, dateRange service.DateRange) (decimal.Decimal, error)
}

// GetBalanceHandler handles GET /v1/summary/balance.
type GetBalanceHandler struct {
	TransactionService balanceGetter
}

// NewGetBalanceHandler creates a new GetBalanceHandler.
func NewGetBalanceHandler(svc balanceGetter) *GetBalanceHandler {
	return &GetBalanceHandler{TransactionService: svc}
}

// Register registers the balance endpoint with the Huma API.
func (h *GetBalanceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-balance",
		Method:      http.MethodGet,
		Path:        "/v1/summary/balance",
		Summary:     "Get balance",
		Description: "Returns income minus expense over the inclusive date range.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *GetBalanceHandler) handle(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	owner, dateRange, err := parseRangeQuery(input.RangeQuery)
	if err != nil {
		return nil, err
	}

	balance, err := h.TransactionService.GetBalance(ctx, owner, dateRange)
	if err != nil {
		return nil, mapServiceError("failed to compute balance", err)
	}

	return &GetBalanceOutput{Body: BalanceResponseBody{Balance: balance.String()}}, nil
}
