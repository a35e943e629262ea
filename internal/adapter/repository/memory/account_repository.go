package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/souyave/payments-engine/internal/domain"
	"github.com/souyave/payments-engine/internal/sequence"
)

// AccountRepository is the in-memory system of record for accounts. The map
// itself is guarded against concurrent access; serializing mutations of an
// individual account's fields is the ledger service's responsibility.
type AccountRepository struct {
	mu       sync.RWMutex
	accounts map[int64]*domain.Account
	seq      *sequence.Sequence
}

func NewAccountRepository(seq *sequence.Sequence) *AccountRepository {
	return &AccountRepository{
		accounts: make(map[int64]*domain.Account),
		seq:      seq,
	}
}

func (r *AccountRepository) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts[account.ID] = account
	return account, nil
}

func (r *AccountRepository) Get(_ context.Context, accountID int64) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, exists := r.accounts[accountID]
	if !exists {
		return nil, fmt.Errorf("%w: account %d", domain.ErrAccountNotFound, accountID)
	}

	return account, nil
}

func (r *AccountRepository) SoftDelete(_ context.Context, accountID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, exists := r.accounts[accountID]
	if !exists {
		return fmt.Errorf("%w: account %d", domain.ErrAccountNotFound, accountID)
	}

	account.Status = domain.AccountStatusDeleted
	return nil
}

func (r *AccountRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.accounts = make(map[int64]*domain.Account)
	r.seq.Reset()
}
