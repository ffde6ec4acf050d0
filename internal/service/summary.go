package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Summary bundles the three reductions over one owner-and-range-filtered
// transaction set. All three are computed from the same query result so
// Balance always equals TotalsByType[INCOME] minus TotalsByType[EXPENSE].
type Summary struct {
	Balance          decimal.Decimal
	TotalsByType     map[string]decimal.Decimal
	TotalsByCategory map[string]decimal.Decimal
}

// Balance returns the sum of income amounts minus the sum of expense
// amounts. Type comparison is case-insensitive. An empty set yields zero.
func Balance(transactions []Transaction) decimal.Decimal {
	balance := decimal.Zero
	for _, tx := range transactions {
		if strings.EqualFold(tx.Type, TypeIncome) {
			balance = balance.Add(tx.Amount)
		} else {
			balance = balance.Sub(tx.Amount)
		}
	}
	return balance
}

// TotalsByType groups amounts by the type string exactly as stored. The
// grouping key is the literal value, not a normalized one.
func TotalsByType(transactions []Transaction) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		totals[tx.Type] = totals[tx.Type].Add(tx.Amount)
	}
	return totals
}

// TotalsByCategory groups amounts by category display name. Every persisted
// transaction has a category, so a row without a resolved name is an
// invariant violation and is reported, never skipped.
func TotalsByCategory(transactions []Transaction) (map[string]decimal.Decimal, error) {
	totals := make(map[string]decimal.Decimal)
	for _, tx := range transactions {
		if tx.CategoryName == "" {
			return nil, fmt.Errorf("transaction %d: category %d has no name: %w", tx.ID, tx.CategoryID, ErrNotFound)
		}
		totals[tx.CategoryName] = totals[tx.CategoryName].Add(tx.Amount)
	}
	return totals, nil
}

// GetBalance computes the balance over the owner's transactions in the
// inclusive date range.
func (s *TransactionService) GetBalance(ctx context.Context, owner OwnerKey, dateRange DateRange) (decimal.Decimal, error) {
	transactions, err := s.ListTransactionsRange(ctx, owner, dateRange)
	if err != nil {
		return decimal.Zero, err
	}
	return Balance(transactions), nil
}

// GetTotalsByType computes per-type totals over the owner's transactions in
// the inclusive date range.
func (s *TransactionService) GetTotalsByType(ctx context.Context, owner OwnerKey, dateRange DateRange) (map[string]decimal.Decimal, error) {
	transactions, err := s.ListTransactionsRange(ctx, owner, dateRange)
	if err != nil {
		return nil, err
	}
	return TotalsByType(transactions), nil
}

// GetTotalsByCategory computes per-category totals over the owner's
// transactions in the inclusive date range.
func (s *TransactionService) GetTotalsByCategory(ctx context.Context, owner OwnerKey, dateRange DateRange) (map[string]decimal.Decimal, error) {
	transactions, err := s.ListTransactionsRange(ctx, owner, dateRange)
	if err != nil {
		return nil, err
	}
	return TotalsByCategory(transactions)
}

// GetSummary fetches the filtered set once and feeds the same set to all
// three reductions.
func (s *TransactionService) GetSummary(ctx context.Context, owner OwnerKey, dateRange DateRange) (*Summary, error) {
	transactions, err := s.ListTransactionsRange(ctx, owner, dateRange)
	if err != nil {
		return nil, err
	}

	byCategory, err := TotalsByCategory(transactions)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Balance:          Balance(transactions),
		TotalsByType:     TotalsByType(transactions),
		TotalsByCategory: byCategory,
	}, nil
}
