package repo_interfaces

import (
	"context"

	"github.com/souyave/payments-engine/internal/domain"
)

type AccountRepository interface {
	// Create stores the account under its id and returns the stored record.
	// The id is expected to be unique already; the identifier generator
	// guarantees that at construction time.
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	// Get returns the live mutable record for the id, so balance mutations
	// performed elsewhere are visible to the caller.
	Get(ctx context.Context, accountID int64) (*domain.Account, error)
	// SoftDelete marks the account DELETED without removing it, keeping its
	// history queryable.
	SoftDelete(ctx context.Context, accountID int64) error
	// Clear empties the store and resets the account identifier generator.
	// Test isolation only.
	Clear()
}
