package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/DiogoCarvalho999/FinanceDashboard/internal/storage/sqlconfig"
)

// mockTransactionTable is a mock for sqlconfig.ITransactionTable.
type mockTransactionTable struct {
	mock.Mock
}

func (m *mockTransactionTable) FindByID(ctx context.Context, id int64) (*sqlconfig.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Transaction), args.Error(1)
}

func (m *mockTransactionTable) Insert(ctx context.Context, create *sqlconfig.TransactionCreate) (int64, error) {
	args := m.Called(ctx, create)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockTransactionTable) Update(ctx context.Context, id int64, update *sqlconfig.TransactionUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *mockTransactionTable) DeleteByID(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockTransactionTable) ListByUser(ctx context.Context, userID int64) ([]*sqlconfig.Transaction, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sqlconfig.Transaction), args.Error(1)
}

func (m *mockTransactionTable) ListByUserAndRange(ctx context.Context, userID int64, dateRange sqlconfig.DateRange) ([]*sqlconfig.Transaction, error) {
	args := m.Called(ctx, userID, dateRange)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sqlconfig.Transaction), args.Error(1)
}

// mockUserTable is a mock for sqlconfig.IUserTable.
type mockUserTable struct {
	mock.Mock
}

func (m *mockUserTable) FindByID(ctx context.Context, id int64) (*sqlconfig.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.User), args.Error(1)
}

func (m *mockUserTable) FindByEmail(ctx context.Context, email string) (*sqlconfig.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.User), args.Error(1)
}

// mockCategoryTable is a mock for sqlconfig.ICategoryTable.
type mockCategoryTable struct {
	mock.Mock
}

func (m *mockCategoryTable) FindByID(ctx context.Context, id int64) (*sqlconfig.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sqlconfig.Category), args.Error(1)
}
