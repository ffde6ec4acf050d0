package sqlconfig

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

// Category represents a category record. Categories are owned by the catalog
// layer and are read-only here.
type Category struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// ICategoryTable defines the read-only interface for category lookups.
type ICategoryTable interface {
	FindByID(ctx context.Context, id int64) (*Category, error)
}

var _ ICategoryTable = (*CategoriesTable)(nil)

// CategoriesTable provides read access to the categories table.
type CategoriesTable struct {
	exec bob.Executor
}

// NewCategoriesTable creates a CategoriesTable for the given database.
func NewCategoriesTable(db *sql.DB) CategoriesTable {
	return CategoriesTable{exec: bob.NewDB(db)}
}

// NewCategoriesTableExec creates a CategoriesTable bound to an executor.
func NewCategoriesTableExec(exec bob.Executor) CategoriesTable {
	return CategoriesTable{exec: exec}
}

// FindByID retrieves a category by primary key.
func (t *CategoriesTable) FindByID(ctx context.Context, id int64) (*Category, error) {
	q := psql.Select(
		sm.Columns("id", "name"),
		sm.From("categories"),
		sm.Where(psql.Quote("id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Category]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}
