package transaction

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/DiogoCarvalho999/FinanceDashboard/internal/service"
)

// dateLayout is the wire format for calendar dates. No time component.
const dateLayout = "2006-01-02"

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID           int64  `json:"id" doc:"Transaction id"`
	Description  string `json:"description" doc:"Free-form description"`
	Amount       string `json:"amount" doc:"Decimal amount, always non-negative"`
	Type         string `json:"type" doc:"INCOME or EXPENSE"`
	Date         string `json:"date" doc:"Calendar date, YYYY-MM-DD"`
	CategoryID   int64  `json:"categoryId" doc:"Category id"`
	CategoryName string `json:"categoryName" doc:"Category display name"`
}

// TransactionBody is the request body for creating or updating a
// transaction. Exactly one of userId and email identifies the owner; email
// wins when both are set.
type TransactionBody struct {
	Description string `json:"description" doc:"Free-form description"`
	Amount      string `json:"amount" required:"true" doc:"Decimal amount, must be non-negative"`
	Type        string `json:"type" required:"true" doc:"INCOME or EXPENSE, case-insensitive"`
	Date        string `json:"date" required:"true" doc:"Calendar date, YYYY-MM-DD"`
	CategoryID  int64  `json:"categoryId" required:"true" doc:"Category id"`
	UserID      int64  `json:"userId,omitempty" doc:"Owner id, when not identified by email"`
	Email       string `json:"email,omitempty" doc:"Owner email, when not identified by id"`
}

func toView(tx *service.Transaction) Transaction {
	return Transaction{
		ID:           tx.ID,
		Description:  tx.Description,
		Amount:       tx.Amount.String(),
		Type:         tx.Type,
		Date:         tx.Date.Format(dateLayout),
		CategoryID:   tx.CategoryID,
		CategoryName: tx.CategoryName,
	}
}

// parseTransactionBody converts a request body into a service input.
func parseTransactionBody(body TransactionBody) (service.TransactionInput, error) {
	owner, err := parseOwner(body.UserID, body.Email)
	if err != nil {
		return service.TransactionInput{}, err
	}

	amount, err := decimal.NewFromString(body.Amount)
	if err != nil {
		return service.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	date, err := time.Parse(dateLayout, body.Date)
	if err != nil {
		return service.TransactionInput{}, huma.NewError(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD", err)
	}

	return service.TransactionInput{
		Owner:       owner,
		CategoryID:  body.CategoryID,
		Description: body.Description,
		Amount:      amount,
		Type:        body.Type,
		Date:        date,
	}, nil
}

func parseOwner(userID int64, email string) (service.OwnerKey, error) {
	if email != "" {
		return service.OwnerByEmail(email), nil
	}
	if userID > 0 {
		return service.OwnerByID(userID), nil
	}
	return service.OwnerKey{}, huma.NewError(http.StatusBadRequest, "either userId or email is required")
}

func mapServiceError(message string, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return huma.NewError(http.StatusNotFound, message, err)
	case errors.Is(err, service.ErrValidation):
		return huma.NewError(http.StatusUnprocessableEntity, message, err)
	default:
		return huma.NewError(http.StatusInternalServerError, message, err)
	}
}
