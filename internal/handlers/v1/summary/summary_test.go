package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/DiogoCarvalho999/FinanceDashboard/internal/service"
)

type mockSummaryService struct {
	mock.Mock
}

func (m *mockSummaryService) GetSummary(ctx context.Context, owner service.OwnerKey, dateRange service.DateRange) (*service.Summary, error) {
	args := m.Called(ctx, owner, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Summary), args.Error(1)
}

func newSummaryTestAPI(t *testing.T, svc summaryGetter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetSummaryHandler(svc).Register(api)
	return api
}

func januaryRange() service.DateRange {
	return service.DateRange{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
	}
}

// -- parseRangeQuery unit tests --

func TestParseRangeQuery_OwnerByID(t *testing.T) {
	owner, dateRange, err := parseRangeQuery(RangeQuery{
		UserID: 3,
		Start:  "2024-01-01",
		End:    "2024-01-31",
	})

	assert.NoError(t, err)
	assert.Equal(t, service.OwnerByID(3), owner)
	assert.True(t, dateRange.Start.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, dateRange.End.Equal(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)))
}

func TestParseRangeQuery_EmailWins(t *testing.T) {
	owner, _, err := parseRangeQuery(RangeQuery{
		UserID: 3,
		Email:  "diogo@example.com",
		Start:  "2024-01-01",
		End:    "2024-01-31",
	})

	assert.NoError(t, err)
	assert.Equal(t, service.OwnerByEmail("diogo@example.com"), owner)
}

func TestParseRangeQuery_NoOwner(t *testing.T) {
	_, _, err := parseRangeQuery(RangeQuery{
		Start: "2024-01-01",
		End:   "2024-01-31",
	})
	assert.Error(t, err)
}

func TestParseRangeQuery_BadEnd(t *testing.T) {
	_, _, err := parseRangeQuery(RangeQuery{
		UserID: 3,
		Start:  "2024-01-01",
		End:    "31-01-2024",
	})
	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_GetSummary_Success(t *testing.T) {
	mockSvc := new(mockSummaryService)
	mockSvc.On("GetSummary", mock.Anything, service.OwnerByID(3), januaryRange()).
		Return(&service.Summary{
			Balance: decimal.RequireFromString("70"),
			TotalsByType: map[string]decimal.Decimal{
				"INCOME":  decimal.RequireFromString("100"),
				"EXPENSE": decimal.RequireFromString("30"),
			},
			TotalsByCategory: map[string]decimal.Decimal{
				"Salary": decimal.RequireFromString("100"),
				"Food":   decimal.RequireFromString("30"),
			},
		}, nil)

	resp := newSummaryTestAPI(t, mockSvc).Get("/v1/summary?userId=3&start=2024-01-01&end=2024-01-31")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body SummaryResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "70", body.Balance)
	assert.Equal(t, map[string]string{"INCOME": "100", "EXPENSE": "30"}, body.TotalsByType)
	assert.Equal(t, map[string]string{"Salary": "100", "Food": "30"}, body.TotalsByCategory)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetSummary_MissingRange(t *testing.T) {
	mockSvc := new(mockSummaryService)

	// start and end are required query parameters, rejected by schema
	// validation before the handler runs.
	resp := newSummaryTestAPI(t, mockSvc).Get("/v1/summary?userId=3")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "GetSummary")
}

func TestHTTP_GetSummary_NoOwner(t *testing.T) {
	mockSvc := new(mockSummaryService)

	resp := newSummaryTestAPI(t, mockSvc).Get("/v1/summary?start=2024-01-01&end=2024-01-31")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "GetSummary")
}

func TestHTTP_GetSummary_OwnerNotFound(t *testing.T) {
	mockSvc := new(mockSummaryService)
	mockSvc.On("GetSummary", mock.Anything, service.OwnerByID(99), januaryRange()).
		Return(nil, fmt.Errorf("user 99: %w", service.ErrNotFound))

	resp := newSummaryTestAPI(t, mockSvc).Get("/v1/summary?userId=99&start=2024-01-01&end=2024-01-31")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
