package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/souyave/payments-engine/internal/adapter/repository/memory"
	"github.com/souyave/payments-engine/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionRepositoryFindRecentByAccountOrdersNewestFirst(t *testing.T) {
	repo := memory.NewTransactionRepository()
	account := &domain.Account{ID: 1, Currency: "DKK", Status: domain.AccountStatusActive}
	other := &domain.Account{ID: 2, Currency: "DKK", Status: domain.AccountStatusActive}

	base := time.Now()
	for i, tx := range []*domain.Transaction{
		{ID: 1, Amount: decimal.RequireFromString("10"), Account: account, Type: domain.TransactionTypeCredit},
		{ID: 2, Amount: decimal.RequireFromString("1"), Account: account, Type: domain.TransactionTypeDebit},
		{ID: 3, Amount: decimal.RequireFromString("5"), Account: account, Type: domain.TransactionTypeCredit},
		{ID: 4, Amount: decimal.RequireFromString("1"), Account: other, Type: domain.TransactionTypeDebit},
	} {
		tx.Date = base.Add(time.Duration(i) * time.Millisecond)
		require.NoError(t, repo.Save(context.Background(), tx))
	}

	transactions, err := repo.FindRecentByAccount(context.Background(), account.ID, 2)
	require.NoError(t, err)
	require.Len(t, transactions, 2)
	assert.Equal(t, int64(3), transactions[0].ID)
	assert.Equal(t, int64(2), transactions[1].ID)
}

func TestTransactionRepositoryFindRecentByAccountNoMatches(t *testing.T) {
	repo := memory.NewTransactionRepository()

	transactions, err := repo.FindRecentByAccount(context.Background(), 7, 20)
	require.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestTransactionRepositorySaveIsIdempotentPerID(t *testing.T) {
	repo := memory.NewTransactionRepository()
	account := &domain.Account{ID: 1, Currency: "DKK", Status: domain.AccountStatusActive}
	tx := &domain.Transaction{
		ID:      1,
		Amount:  decimal.RequireFromString("3"),
		Account: account,
		Type:    domain.TransactionTypeDebit,
		Date:    time.Now(),
	}

	require.NoError(t, repo.Save(context.Background(), tx))
	require.NoError(t, repo.Save(context.Background(), tx))

	transactions, err := repo.FindRecentByAccount(context.Background(), account.ID, 20)
	require.NoError(t, err)
	assert.Len(t, transactions, 1)
}

func TestTransactionRepositoryLimitBeyondMatches(t *testing.T) {
	repo := memory.NewTransactionRepository()
	account := &domain.Account{ID: 1, Currency: "DKK", Status: domain.AccountStatusActive}
	require.NoError(t, repo.Save(context.Background(), &domain.Transaction{
		ID:      1,
		Amount:  decimal.RequireFromString("3"),
		Account: account,
		Type:    domain.TransactionTypeCredit,
		Date:    time.Now(),
	}))

	transactions, err := repo.FindRecentByAccount(context.Background(), account.ID, 20)
	require.NoError(t, err)
	assert.Len(t, transactions, 1)
}
