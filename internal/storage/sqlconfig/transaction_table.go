package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ ITransactionTable = (*TransactionsTable)(nil)

// TransactionsTable provides access to the transactions table. All read paths
// join categories so callers always get the resolved category name.
type TransactionsTable struct {
	exec bob.Executor
}

// NewTransactionsTable creates a TransactionsTable for the given database.
func NewTransactionsTable(db *sql.DB) TransactionsTable {
	return TransactionsTable{exec: bob.NewDB(db)}
}

// NewTransactionsTableExec creates a TransactionsTable bound to an executor,
// typically a transaction.
func NewTransactionsTableExec(exec bob.Executor) TransactionsTable {
	return TransactionsTable{exec: exec}
}

func transactionSelectMods() []bob.Mod[*dialect.SelectQuery] {
	return []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			"t.id", "t.description", "t.amount", "t.type",
			"t.transaction_date", "t.user_id", "t.category_id",
			"c.name AS category_name",
		),
		sm.From("transactions AS t"),
		sm.InnerJoin("categories AS c").On(psql.Quote("t", "category_id").EQ(psql.Quote("c", "id"))),
	}
}

// FindByID retrieves a transaction by primary key.
func (t *TransactionsTable) FindByID(ctx context.Context, id int64) (*Transaction, error) {
	queryMods := transactionSelectMods()
	queryMods = append(queryMods, sm.Where(psql.Quote("t", "id").EQ(psql.Arg(id))))

	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// Insert creates a new transaction and returns its generated ID.
func (t *TransactionsTable) Insert(ctx context.Context, create *TransactionCreate) (int64, error) {
	q := psql.Insert(
		im.Into("transactions", "description", "amount", "type", "transaction_date", "user_id", "category_id"),
		im.Values(psql.Arg(
			create.Description, create.Amount, create.Type,
			create.Date, create.UserID, create.CategoryID,
		)),
		im.Returning("id"),
	)
	return bob.One(ctx, t.exec, q, scan.SingleColumnMapper[int64])
}

// Update replaces every mutable field of the row. Updating a missing id
// returns ErrNotFound.
func (t *TransactionsTable) Update(ctx context.Context, id int64, update *TransactionUpdate) error {
	q := psql.Update(
		um.Table("transactions"),
		um.SetCol("description").ToArg(update.Description),
		um.SetCol("amount").ToArg(update.Amount),
		um.SetCol("type").ToArg(update.Type),
		um.SetCol("transaction_date").ToArg(update.Date),
		um.SetCol("user_id").ToArg(update.UserID),
		um.SetCol("category_id").ToArg(update.CategoryID),
		um.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	result, err := bob.Exec(ctx, t.exec, q)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteByID removes a transaction. Deleting a missing id is a no-op.
func (t *TransactionsTable) DeleteByID(ctx context.Context, id int64) error {
	q := psql.Delete(
		dm.From("transactions"),
		dm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

// ListByUser returns all of a user's transactions, most recent date first.
func (t *TransactionsTable) ListByUser(ctx context.Context, userID int64) ([]*Transaction, error) {
	return t.list(ctx,
		sm.Where(psql.Quote("t", "user_id").EQ(psql.Arg(userID))),
	)
}

// ListByUserAndRange returns a user's transactions with transaction_date in
// [start, end], inclusive on both ends, most recent date first.
func (t *TransactionsTable) ListByUserAndRange(ctx context.Context, userID int64, dateRange DateRange) ([]*Transaction, error) {
	return t.list(ctx,
		sm.Where(psql.Quote("t", "user_id").EQ(psql.Arg(userID))),
		sm.Where(psql.Quote("t", "transaction_date").GTE(psql.Arg(dateRange.Start))),
		sm.Where(psql.Quote("t", "transaction_date").LTE(psql.Arg(dateRange.End))),
	)
}

func (t *TransactionsTable) list(ctx context.Context, whereMods ...bob.Mod[*dialect.SelectQuery]) ([]*Transaction, error) {
	queryMods := transactionSelectMods()
	queryMods = append(queryMods, whereMods...)
	queryMods = append(queryMods,
		sm.OrderBy("t.transaction_date").Desc(),
		sm.OrderBy("t.id").Desc(),
	)

	rows, err := bob.All(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
