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

// User represents a user record. Users are owned by the identity layer; the
// ledger only resolves them to scope queries and writes.
type User struct {
	ID       int64  `db:"id"`
	Email    string `db:"email"`
	Password string `db:"password"`
	Name     string `db:"name"`
}

// IUserTable defines the read-only interface for user lookups.
type IUserTable interface {
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}

var _ IUserTable = (*UsersTable)(nil)

// UsersTable provides read access to the users table.
type UsersTable struct {
	exec bob.Executor
}

// NewUsersTable creates a UsersTable for the given database.
func NewUsersTable(db *sql.DB) UsersTable {
	return UsersTable{exec: bob.NewDB(db)}
}

// NewUsersTableExec creates a UsersTable bound to an executor.
func NewUsersTableExec(exec bob.Executor) UsersTable {
	return UsersTable{exec: exec}
}

// FindByID retrieves a user by primary key.
func (t *UsersTable) FindByID(ctx context.Context, id int64) (*User, error) {
	return t.findWhere(ctx, psql.Quote("id").EQ(psql.Arg(id)))
}

// FindByEmail retrieves a user by its unique email.
func (t *UsersTable) FindByEmail(ctx context.Context, email string) (*User, error) {
	return t.findWhere(ctx, psql.Quote("email").EQ(psql.Arg(email)))
}

func (t *UsersTable) findWhere(ctx context.Context, where bob.Expression) (*User, error) {
	q := psql.Select(
		sm.Columns("id", "email", "password", "name"),
		sm.From("users"),
		sm.Where(where),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[User]())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}
