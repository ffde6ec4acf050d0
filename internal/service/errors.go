package service

import (
	"errors"

	"github.com/DiogoCarvalho999/FinanceDashboard/internal/storage/sqlconfig"
)

var (
	// ErrNotFound is returned when an owner, category, or transaction id
	// does not resolve. Shared with the storage layer so errors.Is works on
	// both service-raised and store-raised lookups.
	ErrNotFound = sqlconfig.ErrNotFound

	// ErrValidation is returned for out-of-domain input: a negative amount
	// or an unrecognized transaction type.
	ErrValidation = errors.New("validation failed")
)
