package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/DiogoCarvalho999/FinanceDashboard/internal/storage"
	"github.com/DiogoCarvalho999/FinanceDashboard/internal/storage/sqlconfig"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// AddTransaction validates and persists a new transaction, returning the
// created record with its store-assigned id and resolved category name.
func (s *TransactionService) AddTransaction(ctx context.Context, input TransactionInput) (*Transaction, error) {
	writer, err := s.storage.Write(ctx)
	if err != nil {
		return nil, err
	}

	created, err := addTransaction(ctx, writer, input)
	if err != nil {
		_ = writer.Rollback(ctx)
		return nil, err
	}

	if err := writer.Commit(ctx); err != nil {
		return nil, err
	}
	return created, nil
}

// UpdateTransaction replaces every mutable field of an existing transaction.
// The owner may be reassigned. This is full-replace semantics, not a patch.
func (s *TransactionService) UpdateTransaction(ctx context.Context, id int64, input TransactionInput) (*Transaction, error) {
	writer, err := s.storage.Write(ctx)
	if err != nil {
		return nil, err
	}

	updated, err := updateTransaction(ctx, writer, id, input)
	if err != nil {
		_ = writer.Rollback(ctx)
		return nil, err
	}

	if err := writer.Commit(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteTransaction removes a transaction by id. Deleting a missing id is a
// no-op, not an error, so deletes stay idempotent.
func (s *TransactionService) DeleteTransaction(ctx context.Context, id int64) error {
	return s.storage.Transactions.DeleteByID(ctx, id)
}

// ListTransactions returns all of an owner's transactions, most recent date
// first.
func (s *TransactionService) ListTransactions(ctx context.Context, owner OwnerKey) ([]Transaction, error) {
	user, err := resolveOwner(ctx, s.storage.Users, owner)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Transactions.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return fromStorageRows(rows), nil
}

// ListTransactionsRange returns an owner's transactions dated within the
// inclusive range, most recent date first.
func (s *TransactionService) ListTransactionsRange(ctx context.Context, owner OwnerKey, dateRange DateRange) ([]Transaction, error) {
	user, err := resolveOwner(ctx, s.storage.Users, owner)
	if err != nil {
		return nil, err
	}

	rows, err := s.storage.Transactions.ListByUserAndRange(ctx, user.ID, sqlconfig.DateRange{
		Start: dateRange.Start,
		End:   dateRange.End,
	})
	if err != nil {
		return nil, err
	}
	return fromStorageRows(rows), nil
}

// addTransaction performs the add against one writer. Resolution and
// validation order is fixed: owner, then category, then fields, so the first
// error is deterministic.
func addTransaction(ctx context.Context, writer *storage.Writer, input TransactionInput) (*Transaction, error) {
	user, err := resolveOwner(ctx, writer.Users, input.Owner)
	if err != nil {
		return nil, err
	}

	category, err := writer.Categories.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, categoryLookupError(input.CategoryID, err)
	}

	if err := validateFields(input); err != nil {
		return nil, err
	}

	id, err := writer.Transactions.Insert(ctx, &sqlconfig.TransactionCreate{
		Description: input.Description,
		Amount:      input.Amount,
		Type:        input.Type,
		Date:        input.Date,
		UserID:      user.ID,
		CategoryID:  category.ID,
	})
	if err != nil {
		return nil, err
	}

	return newTransaction(id, input, user.ID, category), nil
}

// updateTransaction performs the full replace against one writer. The
// transaction must exist before owner and category are resolved.
func updateTransaction(ctx context.Context, writer *storage.Writer, id int64, input TransactionInput) (*Transaction, error) {
	if _, err := writer.Transactions.FindByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("transaction %d: %w", id, ErrNotFound)
		}
		return nil, err
	}

	user, err := resolveOwner(ctx, writer.Users, input.Owner)
	if err != nil {
		return nil, err
	}

	category, err := writer.Categories.FindByID(ctx, input.CategoryID)
	if err != nil {
		return nil, categoryLookupError(input.CategoryID, err)
	}

	if err := validateFields(input); err != nil {
		return nil, err
	}

	err = writer.Transactions.Update(ctx, id, &sqlconfig.TransactionUpdate{
		Description: input.Description,
		Amount:      input.Amount,
		Type:        input.Type,
		Date:        input.Date,
		UserID:      user.ID,
		CategoryID:  category.ID,
	})
	if err != nil {
		return nil, err
	}

	return newTransaction(id, input, user.ID, category), nil
}

func resolveOwner(ctx context.Context, users sqlconfig.IUserTable, owner OwnerKey) (*sqlconfig.User, error) {
	if owner.email != "" {
		user, err := users.FindByEmail(ctx, owner.email)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				return nil, fmt.Errorf("user %s: %w", owner.email, ErrNotFound)
			}
			return nil, err
		}
		return user, nil
	}

	user, err := users.FindByID(ctx, owner.id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("user %d: %w", owner.id, ErrNotFound)
		}
		return nil, err
	}
	return user, nil
}

func categoryLookupError(id int64, err error) error {
	if errors.Is(err, ErrNotFound) {
		return fmt.Errorf("category %d: %w", id, ErrNotFound)
	}
	return err
}

func validateFields(input TransactionInput) error {
	if input.Amount.IsNegative() {
		return fmt.Errorf("amount must not be negative: %w", ErrValidation)
	}
	if !validTransactionType(input.Type) {
		return fmt.Errorf("type must be INCOME or EXPENSE: %w", ErrValidation)
	}
	return nil
}

func newTransaction(id int64, input TransactionInput, userID int64, category *sqlconfig.Category) *Transaction {
	return &Transaction{
		ID:           id,
		Description:  input.Description,
		Amount:       input.Amount,
		Type:         input.Type,
		Date:         input.Date,
		UserID:       userID,
		CategoryID:   category.ID,
		CategoryName: category.Name,
	}
}

func fromStorageRows(rows []*sqlconfig.Transaction) []Transaction {
	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = Transaction{
			ID:           row.ID,
			Description:  row.Description,
			Amount:       row.Amount,
			Type:         row.Type,
			Date:         row.Date,
			UserID:       row.UserID,
			CategoryID:   row.CategoryID,
			CategoryName: row.CategoryName,
		}
	}
	return converted
}
