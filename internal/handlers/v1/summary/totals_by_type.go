package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/DiogoCarvalho999/FinanceDashboard/internal/service"
)

// GetTotalsByTypeInput is the Huma input for the totals-by-type endpoint.
type GetTotalsByTypeInput struct {
	RangeQuery
}

// TotalsResponseBody is the response body for both grouped-total endpoints.
type TotalsResponseBody struct {
	Totals map[string]string `json:"totals" doc:"Summed amounts keyed by group"`
}

// GetTotalsByTypeOutput is the Huma output for the totals-by-type endpoint.
type GetTotalsByTypeOutput struct {
	Body TotalsResponseBody
}

// typeTotalsGetter is the interface for computing totals grouped by type.
type typeTotalsGetter interface {
	GetTotalsByType(ctx context.Context, owner service.OwnerKey, dateRange service.DateRange) (map[string]decimal.Decimal, error)
}

// GetTotalsByTypeHandler handles GET /v1/summary/totals-by-type.
type GetTotalsByTypeHandler struct {
	TransactionService typeTotalsGetter
}

// NewGetTotalsByTypeHandler creates a new GetTotalsByTypeHandler.
func NewGetTotalsByTypeHandler(svc typeTotalsGetter) *GetTotalsByTypeHandler {
	return &GetTotalsByTypeHandler{TransactionService: svc}
}

// Register registers the totals-by-type endpoint with the Huma API.
func (h *GetTotalsByTypeHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-totals-by-type",
		Method:      http.MethodGet,
		Path:        "/v1/summary/totals-by-type",
		Summary:     "Get totals by type",
		Description: "Returns summed amounts grouped by transaction type over the inclusive date range.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *GetTotalsByTypeHandler) handle(ctx context.Context, input *GetTotalsByTypeInput) (*GetTotalsByTypeOutput, error) {
	owner, dateRange, err := parseRangeQuery(input.RangeQuery)
	if err != nil {
		return nil, err
	}

	totals, err := h.TransactionService.GetTotalsByType(ctx, owner, dateRange)
	if err != nil {
		return nil, mapServiceError("failed to compute totals by type", err)
	}

	return &GetTotalsByTypeOutput{Body: TotalsResponseBody{Totals: totalsView(totals)}}, nil
}
