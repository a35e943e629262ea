package service_interfaces

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/souyave/payments-engine/internal/domain"
)

type LedgerService interface {
	CreateAccount(ctx context.Context, currency string) (*domain.Account, error)
	GetAccount(ctx context.Context, accountID int64) (*domain.Account, error)
	DeleteAccount(ctx context.Context, accountID int64) error
	Transfer(ctx context.Context, fromAccountID, toAccountID int64, amount decimal.Decimal) (*domain.Transaction, error)
	RecentTransactions(ctx context.Context, accountID int64, limit int) ([]*domain.Transaction, error)
}
