package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/DiogoCarvalho999/FinanceDashboard/internal/storage/sqlconfig"
)

// Writer bundles the table gateways bound to one database transaction so a
// mutation and the reads it depends on see a consistent snapshot.
type Writer struct {
	tx           bob.Tx
	Transactions sqlconfig.ITransactionTable
	Users        sqlconfig.IUserTable
	Categories   sqlconfig.ICategoryTable
}

func NewWriter(tx bob.Tx) *Writer {
	transactions := sqlconfig.NewTransactionsTableExec(tx)
	users := sqlconfig.NewUsersTableExec(tx)
	categories := sqlconfig.NewCategoriesTableExec(tx)

	return &Writer{
		tx:           tx,
		Transactions: &transactions,
		Users:        &users,
		Categories:   &categories,
	}
}

func (w *Writer) Commit(ctx context.Context) error {
	return w.tx.Commit(ctx)
}

func (w *Writer) Rollback(ctx context.Context) error {
	return w.tx.Rollback(ctx)
}
