package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/souyave/payments-engine/internal/domain"
)

// TransactionRepository is the in-memory, append-only store for transfer legs.
type TransactionRepository struct {
	mu           sync.RWMutex
	transactions map[int64]*domain.Transaction
}

func NewTransactionRepository() *TransactionRepository {
	return &TransactionRepository{
		transactions: make(map[int64]*domain.Transaction),
	}
}

func (r *TransactionRepository) Save(_ context.Context, transaction *domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions[transaction.ID] = transaction
	return nil
}

func (r *TransactionRepository) FindRecentByAccount(_ context.Context, accountID int64, limit int) ([]*domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*domain.Transaction, 0)
	for _, tx := range r.transactions {
		if tx.Account != nil && tx.Account.ID == accountID {
			matches = append(matches, tx)
		}
	}

	// Stable sort keeps the relative order of equal timestamps fixed within
	// one snapshot.
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Date.After(matches[j].Date)
	})

	if limit >= 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}

func (r *TransactionRepository) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.transactions = make(map[int64]*domain.Transaction)
}
