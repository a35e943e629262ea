package memory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/souyave/payments-engine/internal/adapter/repository/memory"
	"github.com/souyave/payments-engine/internal/domain"
	"github.com/souyave/payments-engine/internal/sequence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAccount(seq *sequence.Sequence, currency string) *domain.Account {
	return &domain.Account{
		ID:       seq.Next(),
		Balance:  decimal.Zero,
		Currency: currency,
		Status:   domain.AccountStatusActive,
	}
}

func TestAccountRepositoryCreateAndGet(t *testing.T) {
	seq := sequence.New()
	repo := memory.NewAccountRepository(seq)

	created, err := repo.Create(context.Background(), newAccount(seq, "DKK"))
	require.NoError(t, err)

	account, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "DKK", account.Currency)
	assert.Equal(t, domain.AccountStatusActive, account.Status)
}

func TestAccountRepositoryGetReturnsLiveRecord(t *testing.T) {
	seq := sequence.New()
	repo := memory.NewAccountRepository(seq)

	created, err := repo.Create(context.Background(), newAccount(seq, "DKK"))
	require.NoError(t, err)

	created.Balance = decimal.RequireFromString("42.50")

	account, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, account.Balance.Equal(decimal.RequireFromString("42.50")))
}

func TestAccountRepositorySoftDeleteKeepsRecord(t *testing.T) {
	seq := sequence.New()
	repo := memory.NewAccountRepository(seq)

	created, err := repo.Create(context.Background(), newAccount(seq, "DKK"))
	require.NoError(t, err)

	require.NoError(t, repo.SoftDelete(context.Background(), created.ID))

	account, err := repo.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.AccountStatusDeleted, account.Status)
	assert.Equal(t, "DKK", account.Currency)
}

func TestAccountRepositorySoftDeleteMissingAccount(t *testing.T) {
	repo := memory.NewAccountRepository(sequence.New())

	err := repo.SoftDelete(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountRepositoryGetMissingAccount(t *testing.T) {
	repo := memory.NewAccountRepository(sequence.New())

	_, err := repo.Get(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
}

func TestAccountRepositoryClearResetsSequence(t *testing.T) {
	seq := sequence.New()
	repo := memory.NewAccountRepository(seq)

	created, err := repo.Create(context.Background(), newAccount(seq, "DKK"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)

	repo.Clear()

	_, err = repo.Get(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrAccountNotFound)
	assert.Equal(t, int64(1), seq.Next())
}
