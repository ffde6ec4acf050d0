package transaction

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockTransactionDeleter struct {
	mock.Mock
}

func (m *mockTransactionDeleter) DeleteTransaction(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newDeleteTestAPI(t *testing.T, svc transactionDeleter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewDeleteTransactionHandler(svc).Register(api)
	return api
}

func TestHTTP_DeleteTransaction_Success(t *testing.T) {
	mockSvc := new(mockTransactionDeleter)
	mockSvc.On("DeleteTransaction", mock.Anything, int64(7)).Return(nil)

	resp := newDeleteTestAPI(t, mockSvc).Delete("/v1/transaction/7")

	assert.Equal(t, http.StatusNoContent, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_DeleteTransaction_MissingIDSucceeds(t *testing.T) {
	// The delete is idempotent, so an unknown id still yields 204.
	mockSvc := new(mockTransactionDeleter)
	mockSvc.On("DeleteTransaction", mock.Anything, int64(99)).Return(nil)

	resp := newDeleteTestAPI(t, mockSvc).Delete("/v1/transaction/99")

	assert.Equal(t, http.StatusNoContent, resp.Code)
}

func TestHTTP_DeleteTransaction_StorageFailure(t *testing.T) {
	mockSvc := new(mockTransactionDeleter)
	mockSvc.On("DeleteTransaction", mock.Anything, int64(7)).
		Return(errors.New("connection refused"))

	resp := newDeleteTestAPI(t, mockSvc).Delete("/v1/transaction/7")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
