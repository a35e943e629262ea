package domain

import "github.com/shopspring/decimal"

type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "ACTIVE"
	AccountStatusInactive AccountStatus = "INACTIVE"
	AccountStatusDeleted  AccountStatus = "DELETED"
)

// Account is the canonical mutable record for a single monetary account.
// The account store hands out the live record, so balance and status changes
// made by the ledger service are visible to every holder of the pointer.
type Account struct {
	ID       int64
	Balance  decimal.Decimal
	Currency string
	Status   AccountStatus
}
