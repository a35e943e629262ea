package repo_interfaces

import (
	"context"

	"github.com/souyave/payments-engine/internal/domain"
)

type TransactionRepository interface {
	// Save stores the transaction under its id. Retrying with the same id
	// overwrites harmlessly since transactions are immutable once built.
	Save(ctx context.Context, transaction *domain.Transaction) error
	// FindRecentByAccount returns up to limit transactions whose account
	// matches accountID, newest first. The result is a snapshot computed at
	// call time; an account with no matches yields an empty slice.
	FindRecentByAccount(ctx context.Context, accountID int64, limit int) ([]*domain.Transaction, error)
	// Clear empties the store. Test isolation only.
	Clear()
}
