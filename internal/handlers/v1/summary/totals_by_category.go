package summary

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/DiogoCarvalho999/FinanceDashboard/internal/service"
)

// GetTotalsByCategoryInput is the Huma input for the totals-by-category
// endpoint.
type GetTotalsByCategoryInput struct {
	RangeQuery
}

// GetTotalsByCategoryOutput is the Huma output for the totals-by-category
// endpoint.
type GetTotalsByCategoryOutput struct {
	Body TotalsResponseBody
}

// categoryTotalsGetter is the interface for computing totals grouped by
// category name.
type categoryTotalsGetter interface {
	GetTotalsByCategory(ctx context.Context, owner service.OwnerKey, dateRange service.DateRange) (map[string]decimal.Decimal, error)
}

// GetTotalsByCategoryHandler handles GET /v1/summary/totals-by-category.
type GetTotalsByCategoryHandler struct {
	TransactionService categoryTotalsGetter
}

// NewGetTotalsByCategoryHandler creates a new GetTotalsByCategoryHandler.
func NewGetTotalsByCategoryHandler(svc categoryTotalsGetter) *GetTotalsByCategoryHandler {
	return &GetTotalsByCategoryHandler{TransactionService: svc}
}

// Register registers the totals-by-category endpoint with the Huma API.
func (h *GetTotalsByCategoryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-totals-by-category",
		Method:      http.MethodGet,
		Path:        "/v1/summary/totals-by-category",
		Summary:     "Get totals by category",
		Description: "Returns summed amounts grouped by category name over the inclusive date range.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *GetTotalsByCategoryHandler) handle(ctx context.Context, input *GetTotalsByCategoryInput) (*GetTotalsByCategoryOutput, error) {
	owner, dateRange, err := parseRangeQuery(input.RangeQuery)
	if err != nil {
		return nil, err
	}

	totals, err := h.TransactionService.GetTotalsByCategory(ctx, owner, dateRange)
	if err != nil {
		return nil, mapServiceError("failed to compute totals by category", err)
	}

	return &GetTotalsByCategoryOutput{Body: TotalsResponseBody{Totals: totalsView(totals)}}, nil
}
