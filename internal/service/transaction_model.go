package service

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction type labels. Types compare case-insensitively but are stored
// with the case the caller supplied.
const (
	TypeIncome  = "INCOME"
	TypeExpense = "EXPENSE"
)

// Transaction represents a transaction in the service layer, with the
// category name already resolved.
type Transaction struct {
	ID           int64
	Description  string
	Amount       decimal.Decimal
	Type         string
	Date         time.Time
	UserID       int64
	CategoryID   int64
	CategoryName string
}

// OwnerKey identifies a transaction owner either by numeric id or by email.
// Construct it with OwnerByID or OwnerByEmail.
type OwnerKey struct {
	id    int64
	email string
}

func OwnerByID(id int64) OwnerKey {
	return OwnerKey{id: id}
}

func OwnerByEmail(email string) OwnerKey {
	return OwnerKey{email: email}
}

// DateRange is an inclusive closed interval of calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// TransactionInput carries the mutable fields for Add and Update. Update is
// a full replace, so the same shape serves both.
type TransactionInput struct {
	Owner       OwnerKey
	CategoryID  int64
	Description string
	Amount      decimal.Decimal
	Type        string
	Date        time.Time
}

func validTransactionType(t string) bool {
	return strings.EqualFold(t, TypeIncome) || strings.EqualFold(t, TypeExpense)
}
