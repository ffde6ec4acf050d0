package transaction

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

type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactions(ctx context.Context, owner service.OwnerKey) ([]service.Transaction, error) {
	args := m.Called(ctx, owner)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func (m *mockTransactionLister) ListTransactionsRange(ctx context.Context, owner service.OwnerKey, dateRange service.DateRange) ([]service.Transaction, error) {
	args := m.Called(ctx, owner, dateRange)
	txs, _ := args.Get(0).([]service.Transaction)
	return txs, args.Error(1)
}

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

// -- parseDateRange unit tests --

func TestParseDateRange_Valid(t *testing.T) {
	dateRange, err := parseDateRange("2024-01-01", "2024-01-31")
	assert.NoError(t, err)
	assert.True(t, dateRange.Start.Equal(time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, dateRange.End.Equal(time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC)))
}

func TestParseDateRange_BadStart(t *testing.T) {
	_, err := parseDateRange("01/01/2024", "2024-01-31")
	assert.Error(t, err)
}

func TestParseDateRange_MissingEnd(t *testing.T) {
	// A half-open range is rejected. Both bounds or neither.
	_, err := parseDateRange("2024-01-01", "")
	assert.Error(t, err)
}

// -- HTTP integration tests --

func TestHTTP_ListTransactions_NoRange(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, service.OwnerByID(3)).
		Return([]service.Transaction{
			{
				ID:           2,
				Description:  "Food",
				Amount:       decimal.RequireFromString("30.00"),
				Type:         "EXPENSE",
				Date:         time.Date(2024, time.January, 10, 0, 0, 0, 0, time.UTC),
				UserID:       3,
				CategoryID:   2,
				CategoryName: "Food",
			},
			{
				ID:           1,
				Description:  "Salary",
				Amount:       decimal.RequireFromString("100.00"),
				Type:         "INCOME",
				Date:         time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
				UserID:       3,
				CategoryID:   1,
				CategoryName: "Salary",
			},
		}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/transactions?userId=3")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 2)
	assert.Equal(t, "2024-01-10", body.Transactions[0].Date)
	assert.Equal(t, "2024-01-05", body.Transactions[1].Date)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_WithRange(t *testing.T) {
	expectedRange := service.DateRange{
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC),
	}

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactionsRange", mock.Anything, service.OwnerByEmail("diogo@example.com"), expectedRange).
		Return([]service.Transaction{}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/transactions?email=diogo@example.com&start=2024-01-01&end=2024-01-31")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Transactions)
	mockSvc.AssertNotCalled(t, "ListTransactions")
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_NoOwner(t *testing.T) {
	mockSvc := new(mockTransactionLister)

	resp := newListTestAPI(t, mockSvc).Get("/v1/transactions")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "ListTransactions")
	mockSvc.AssertNotCalled(t, "ListTransactionsRange")
}

func TestHTTP_ListTransactions_BadRange(t *testing.T) {
	mockSvc := new(mockTransactionLister)

	resp := newListTestAPI(t, mockSvc).Get("/v1/transactions?userId=3&start=bad&end=2024-01-31")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "ListTransactionsRange")
}

func TestHTTP_ListTransactions_OwnerNotFound(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything, service.OwnerByID(99)).
		Return(nil, fmt.Errorf("user 99: %w", service.ErrNotFound))

	resp := newListTestAPI(t, mockSvc).Get("/v1/transactions?userId=99")

	assert.Equal(t, http.StatusNotFound, resp.Code)
}
