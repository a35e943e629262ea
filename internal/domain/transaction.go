package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "DEBIT"
	TransactionTypeCredit TransactionType = "CREDIT"
)

// Transaction is one leg of a committed transfer. It is immutable once
// constructed, except that Account points at the live account record: reading
// the leg later shows the account's current balance and status, not a snapshot
// taken at transfer time.
type Transaction struct {
	ID      int64
	Amount  decimal.Decimal
	Account *Account
	Type    TransactionType
	Date    time.Time
}
