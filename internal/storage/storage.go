package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/DiogoCarvalho999/FinanceDashboard/internal/config"
	"github.com/DiogoCarvalho999/FinanceDashboard/internal/storage/sqlconfig"
)

type Storage struct {
	DB           *sql.DB
	bobDB        bob.DB
	Transactions sqlconfig.ITransactionTable
	Users        sqlconfig.IUserTable
	Categories   sqlconfig.ICategoryTable
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	transactions := sqlconfig.NewTransactionsTable(db)
	users := sqlconfig.NewUsersTable(db)
	categories := sqlconfig.NewCategoriesTable(db)

	return &Storage{
		DB:           db,
		bobDB:        bob.NewDB(db),
		Transactions: &transactions,
		Users:        &users,
		Categories:   &categories,
	}
}

// Write begins a database transaction and returns a Writer whose table
// gateways are bound to it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bobDB.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
