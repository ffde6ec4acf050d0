package summary

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/DiogoCarvalho999/FinanceDashboard/internal/service"
)

const dateLayout = "2006-01-02"

// RangeQuery is the shared query parameter set for every summary endpoint:
// an owner identified by id or email, and an inclusive date range.
type RangeQuery struct {
	UserID int64  `query:"userId" doc:"Owner id, when not identified by email"`
	Email  string `query:"email" doc:"Owner email, when not identified by id"`
	Start  string `query:"start" required:"true" doc:"Range start, YYYY-MM-DD, inclusive"`
	End    string `query:"end" required:"true" doc:"Range end, YYYY-MM-DD, inclusive"`
}

// SummaryResponseBody is the response body for the combined summary.
type SummaryResponseBody struct {
	Balance          string            `json:"balance" doc:"Signed decimal: income minus expense"`
	TotalsByType     map[string]string `json:"totalsByType" doc:"Summed amounts keyed by stored type label"`
	TotalsByCategory map[string]string `json:"totalsByCategory" doc:"Summed amounts keyed by category name"`
}

// GetSummaryOutput is the Huma output for the combined summary.
type GetSummaryOutput struct {
	Body SummaryResponseBody
}

// GetSummaryInput is the Huma input for the combined summary.
type GetSummaryInput struct {
	RangeQuery
}

// summaryGetter is the interface for computing the combined summary.
type summaryGetter interface {
	GetSummary(ctx context.Context, owner service.OwnerKey, dateRange service.DateRange) (*service.Summary, error)
}

// GetSummaryHandler handles GET /v1/summary.
type GetSummaryHandler struct {
	TransactionService summaryGetter
}

// NewGetSummaryHandler creates a new GetSummaryHandler.
func NewGetSummaryHandler(svc summaryGetter) *GetSummaryHandler {
	return &GetSummaryHandler{TransactionService: svc}
}

// Register registers the summary endpoint with the Huma API.
func (h *GetSummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-summary",
		Method:      http.MethodGet,
		Path:        "/v1/summary",
		Summary:     "Get summary",
		Description: "Returns balance, totals by type, and totals by category computed from the same date-bounded transaction set.",
		Tags:        []string{"Summary"},
	}, h.handle)
}

func (h *GetSummaryHandler) handle(ctx context.Context, input *GetSummaryInput) (*GetSummaryOutput, error) {
	owner, dateRange, err := parseRangeQuery(input.RangeQuery)
	if err != nil {
		return nil, err
	}

	result, err := h.TransactionService.GetSummary(ctx, owner, dateRange)
	if err != nil {
		return nil, mapServiceError("failed to compute summary", err)
	}

	return &GetSummaryOutput{Body: SummaryResponseBody{
		Balance:          result.Balance.String(),
		TotalsByType:     totalsView(result.TotalsByType),
		TotalsByCategory: totalsView(result.TotalsByCategory),
	}}, nil
}

func totalsView(totals map[string]decimal.Decimal) map[string]string {
	view := make(map[string]string, len(totals))
	for key, total := range totals {
		view[key] = total.String()
	}
	return view
}

func parseRangeQuery(query RangeQuery) (service.OwnerKey, service.DateRange, error) {
	var owner service.OwnerKey
	switch {
	case query.Email != "":
		owner = service.OwnerByEmail(query.Email)
	case query.UserID > 0:
		owner = service.OwnerByID(query.UserID)
	default:
		return owner, service.DateRange{}, huma.NewError(http.StatusBadRequest, "either userId or email is required")
	}

	start, err := time.Parse(dateLayout, query.Start)
	if err != nil {
		return owner, service.DateRange{}, huma.NewError(http.StatusBadRequest, "invalid start date, expected YYYY-MM-DD", err)
	}
	end, err := time.Parse(dateLayout, query.End)
	if err != nil {
		return owner, service.DateRange{}, huma.NewError(http.StatusBadRequest, "invalid end date, expected YYYY-MM-DD", err)
	}

	return owner, service.DateRange{Start: start, End: end}, nil
}

func mapServiceError(message string, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, message, err)
	case errors.Is(err, service.ErrValidation):
		return huma.NewError(http.StatusUnprocessableEntity, message, err)
	default:
		return huma.NewError(http.StatusInternalServerError, message, err)
	}
}
