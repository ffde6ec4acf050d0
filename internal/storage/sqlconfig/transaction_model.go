package sqlconfig

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a transaction record. CategoryName is resolved by
// joining the categories table on every read path.
type Transaction struct {
	ID           int64           `db:"id"`
	Description  string          `db:"description"`
	Amount       decimal.Decimal `db:"amount"`
	Type         string          `db:"type"`
	Date         time.Time       `db:"transaction_date"`
	UserID       int64           `db:"user_id"`
	CategoryID   int64           `db:"category_id"`
	CategoryName string          `db:"category_name"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Description string
	Amount      decimal.Decimal
	Type        string
	Date        time.Time
	UserID      int64
	CategoryID  int64
}

// TransactionUpdate replaces every mutable field of an existing transaction.
type TransactionUpdate struct {
	Description string
	Amount      decimal.Decimal
	Type        string
	Date        time.Time
	UserID      int64
	CategoryID  int64
}

// DateRange is an inclusive closed interval of calendar dates. Comparison is
// on the date column only, there is no time-of-day component.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// ITransactionTable defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation (e.g. Bob) without changing callers.
type ITransactionTable interface {
	FindByID(ctx context.Context, id int64) (*Transaction, error)
	Insert(ctx context.Context, create *TransactionCreate) (int64, error)
	Update(ctx context.Context, id int64, update *TransactionUpdate) error
	DeleteByID(ctx context.Context, id int64) error
	ListByUser(ctx context.Context, userID int64) ([]*Transaction, error)
	ListByUserAndRange(ctx context.Context, userID int64, dateRange DateRange) ([]*Transaction, error)
}
