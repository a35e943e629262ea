package models

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/souyave/payments-engine/internal/domain"
)

var validate = validator.New()

type CreateAccountRequest struct {
	Currency string `json:"currency" validate:"required,len=3,alpha,uppercase"`
}

func (r CreateAccountRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return errors.New("currency must be a 3-letter uppercase code")
	}
	return nil
}

type AccountResponse struct {
	ID       int64           `json:"id"`
	Balance  decimal.Decimal `json:"balance"`
	Currency string          `json:"currency"`
	Status   string          `json:"status"`
}

func AccountFromDomain(account *domain.Account) AccountResponse {
	return AccountResponse{
		ID:       account.ID,
		Balance:  account.Balance,
		Currency: account.Currency,
		Status:   string(account.Status),
	}
}
