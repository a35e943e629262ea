package services

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/souyave/payments-engine/internal/adapter/repository/repo_interfaces"
	"github.com/souyave/payments-engine/internal/domain"
	"github.com/souyave/payments-engine/internal/logger"
	"github.com/souyave/payments-engine/internal/metrics"
	"github.com/souyave/payments-engine/internal/sequence"
)

var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// LedgerService validates and executes funds transfers between accounts and
// owns the account lifecycle operations around them.
type LedgerService struct {
	accountRepo     repo_interfaces.AccountRepository
	transactionRepo repo_interfaces.TransactionRepository
	accountSeq      *sequence.Sequence
	transactionSeq  *sequence.Sequence
	collector       *metrics.Collector

	locksMu      sync.Mutex
	accountLocks map[int64]*sync.Mutex
}

func NewLedgerService(
	accountRepo repo_interfaces.AccountRepository,
	transactionRepo repo_interfaces.TransactionRepository,
	accountSeq *sequence.Sequence,
	transactionSeq *sequence.Sequence,
	collector *metrics.Collector,
) *LedgerService {
	return &LedgerService{
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		accountSeq:      accountSeq,
		transactionSeq:  transactionSeq,
		collector:       collector,
		accountLocks:    make(map[int64]*sync.Mutex),
	}
}

func (s *LedgerService) CreateAccount(ctx context.Context, currency string) (*domain.Account, error) {
	if !currencyPattern.MatchString(currency) {
		return nil, fmt.Errorf("currency must be a 3-letter uppercase code, got %q", currency)
	}

	account := &domain.Account{
		ID:       s.accountSeq.Next(),
		Balance:  decimal.Zero,
		Currency: currency,
		Status:   domain.AccountStatusActive,
	}

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	if s.collector != nil {
		s.collector.RecordAccountCreated()
	}
	logger.Info("account created", logger.Fields{
		"accountId": created.ID,
		"currency":  created.Currency,
	})

	return created, nil
}

func (s *LedgerService) GetAccount(ctx context.Context, accountID int64) (*domain.Account, error) {
	return s.accountRepo.Get(ctx, accountID)
}

func (s *LedgerService) DeleteAccount(ctx context.Context, accountID int64) error {
	if err := s.accountRepo.SoftDelete(ctx, accountID); err != nil {
		return err
	}

	logger.Info("account deleted", logger.Fields{"accountId": accountID})
	return nil
}

func (s *LedgerService) RecentTransactions(ctx context.Context, accountID int64, limit int) ([]*domain.Transaction, error) {
	return s.transactionRepo.FindRecentByAccount(ctx, accountID, limit)
}

// Transfer moves amount from one account to the other, appending a DEBIT leg
// against the source and a CREDIT leg against the destination. The returned
// transaction is the DEBIT leg. A failing validation leaves both balances
// untouched and writes no transaction records.
func (s *LedgerService) Transfer(ctx context.Context, fromAccountID, toAccountID int64, amount decimal.Decimal) (*domain.Transaction, error) {
	if amount.IsNegative() {
		return nil, fmt.Errorf("transfer amount must not be negative, got %s", amount)
	}

	fromAccount, err := s.accountRepo.Get(ctx, fromAccountID)
	if err != nil {
		return nil, err
	}
	toAccount, err := s.accountRepo.Get(ctx, toAccountID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result := "committed"
	defer func() {
		if s.collector != nil {
			s.collector.RecordTransfer(result, time.Since(start))
		}
	}()

	// Both accounts stay exclusively held through validation, balance
	// mutation and leg persistence, so no concurrent transfer can interleave
	// its own read-modify-write of either balance.
	unlock := s.lockAccounts(fromAccountID, toAccountID)
	defer unlock()

	// Both accounts have to be active for a transfer to occur.
	if fromAccount.Status != domain.AccountStatusActive || toAccount.Status != domain.AccountStatusActive {
		result = "invalid_account"
		logger.Warn("transfer rejected, account not active", logger.Fields{
			"fromAccountId":     fromAccount.ID,
			"fromAccountStatus": fromAccount.Status,
			"toAccountId":       toAccount.ID,
			"toAccountStatus":   toAccount.Status,
		})
		return nil, fmt.Errorf("%w: accounts %d (%s) and %d (%s)",
			domain.ErrInvalidAccount, fromAccount.ID, fromAccount.Status, toAccount.ID, toAccount.Status)
	}

	// The currencies have to match for a straight transfer, no conversion.
	if fromAccount.Currency != toAccount.Currency {
		result = "unmatched_currencies"
		logger.Warn("transfer rejected, currencies do not match", logger.Fields{
			"fromAccountId":       fromAccount.ID,
			"fromAccountCurrency": fromAccount.Currency,
			"toAccountId":         toAccount.ID,
			"toAccountCurrency":   toAccount.Currency,
		})
		return nil, fmt.Errorf("%w: %s vs %s",
			domain.ErrUnmatchedCurrencies, fromAccount.Currency, toAccount.Currency)
	}

	// The debiting account needs sufficient funds to cover the amount.
	if fromAccount.Balance.LessThan(amount) {
		result = "insufficient_funds"
		logger.Warn("transfer rejected, insufficient funds", logger.Fields{
			"fromAccountId": fromAccount.ID,
			"balance":       fromAccount.Balance,
			"amount":        amount,
		})
		return nil, fmt.Errorf("%w: account %d has %s, needs %s",
			domain.ErrInsufficientFunds, fromAccount.ID, fromAccount.Balance, amount)
	}

	fromAccount.Balance = fromAccount.Balance.Sub(amount)
	toAccount.Balance = toAccount.Balance.Add(amount)

	now := time.Now()
	debitLeg := &domain.Transaction{
		ID:      s.transactionSeq.Next(),
		Amount:  amount,
		Account: fromAccount,
		Type:    domain.TransactionTypeDebit,
		Date:    now,
	}
	creditLeg := &domain.Transaction{
		ID:      s.transactionSeq.Next(),
		Amount:  amount,
		Account: toAccount,
		Type:    domain.TransactionTypeCredit,
		Date:    now,
	}

	if err := s.transactionRepo.Save(ctx, creditLeg); err != nil {
		return nil, err
	}
	if err := s.transactionRepo.Save(ctx, debitLeg); err != nil {
		return nil, err
	}

	logger.Info("transfer committed", logger.Fields{
		"amount":        amount,
		"currency":      fromAccount.Currency,
		"fromAccountId": fromAccountID,
		"toAccountId":   toAccountID,
		"transactionId": debitLeg.ID,
	})

	return debitLeg, nil
}

// lockAccounts takes the per-account locks for both sides of a transfer,
// lower id first so that opposing transfers over the same pair cannot
// deadlock. The returned func releases both.
func (s *LedgerService) lockAccounts(a, b int64) func() {
	if a == b {
		lock := s.accountLock(a)
		lock.Lock()
		return lock.Unlock
	}

	first, second := a, b
	if first > second {
		first, second = second, first
	}

	firstLock := s.accountLock(first)
	secondLock := s.accountLock(second)
	firstLock.Lock()
	secondLock.Lock()

	return func() {
		secondLock.Unlock()
		firstLock.Unlock()
	}
}

func (s *LedgerService) accountLock(accountID int64) *sync.Mutex {
	s.locksMu.Lock()
	defer s.locksMu.Unlock()

	lock, exists := s.accountLocks[accountID]
	if !exists {
		lock = &sync.Mutex{}
		s.accountLocks[accountID] = lock
	}

	return lock
}
