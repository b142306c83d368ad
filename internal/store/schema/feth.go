package schema

import (
	"github.com/shopspring/decimal"
)

// Feth represents the feths table - one wrapped-ETH balance row per account
type Feth struct {
	// ID is the lowercase hex account address
	ID string `gorm:"column:id;primaryKey;type:text"`
	// UserID references the backing account
	UserID string `gorm:"column:user_id;not null;type:text"`
	// BalanceInETH is the current wrapped balance including locked portions
	BalanceInETH decimal.Decimal `gorm:"column:balance_in_eth;not null;type:numeric(78,18)"`
	// DateLastUpdated is the block timestamp of the latest balance change
	DateLastUpdated int64 `gorm:"column:date_last_updated;not null"`
}

// TableName specifies the table name for the Feth model
func (Feth) TableName() string {
	return "feths"
}

// FethEscrow represents the feth_escrows table - a time-locked bucket inside
// an account's wrapped balance. Buckets are keyed by expiration so a lock
// with the same expiry tops up the existing row.
type FethEscrow struct {
	// ID is {account}-{expiration}
	ID string `gorm:"column:id;primaryKey;type:text"`
	// FethAccountID references the owning balance row
	FethAccountID string `gorm:"column:feth_account_id;not null;type:text;index"`
	// AmountInETH is the locked amount currently in the bucket
	AmountInETH decimal.Decimal `gorm:"column:amount_in_eth;not null;type:numeric(78,18)"`
	// DateExpiry is when the lock releases, unix seconds
	DateExpiry             int64  `gorm:"column:date_expiry;not null"`
	TransactionHashCreated string `gorm:"column:transaction_hash_created;not null;type:text"`
	// DateRemoved is set once the bucket drains to zero; a later lock on the
	// same expiry reopens the row and clears it
	DateRemoved            *int64  `gorm:"column:date_removed"`
	TransactionHashRemoved *string `gorm:"column:transaction_hash_removed;type:text"`
}

// TableName specifies the table name for the FethEscrow model
func (FethEscrow) TableName() string {
	return "feth_escrows"
}
