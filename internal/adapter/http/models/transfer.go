package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/souyave/payments-engine/internal/domain"
)

// TransferParams carries the already-parsed path parameters of a transfer
// request.
type TransferParams struct {
	FromAccountID int64           `validate:"required,gt=0"`
	ToAccountID   int64           `validate:"required,gt=0"`
	Amount        decimal.Decimal
}

func (p TransferParams) Validate() error {
	var errs []string

	if err := validate.Struct(p); err != nil {
		errs = append(errs, "account ids must be positive integers")
	}
	if p.Amount.IsNegative() {
		errs = append(errs, "amount must not be negative")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type TransactionResponse struct {
	ID      int64           `json:"id"`
	Amount  decimal.Decimal `json:"amount"`
	Account AccountResponse `json:"account"`
	Type    string          `json:"type"`
	Date    time.Time       `json:"date"`
}

func TransactionFromDomain(transaction *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:      transaction.ID,
		Amount:  transaction.Amount,
		Account: AccountFromDomain(transaction.Account),
		Type:    string(transaction.Type),
		Date:    transaction.Date,
	}
}

func TransactionsFromDomain(transactions []*domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		out = append(out, TransactionFromDomain(tx))
	}
	return out
}
