package schema

import (
	"github.com/shopspring/decimal"
)

// PercentSplit represents the percent_splits table - one row per deployed
// revenue-split proxy contract
type PercentSplit struct {
	// ID is the lowercase hex split contract address
	ID string `gorm:"column:id;primaryKey;type:text"`
	// ShareCount is the number of share rows attached to this split
	ShareCount int64 `gorm:"column:share_count;not null"`
	// DateCreated is the block timestamp of deployment, unix seconds
	DateCreated int64 `gorm:"column:date_created;not null"`
}

// TableName specifies the table name for the PercentSplit model
func (PercentSplit) TableName() string {
	return "percent_splits"
}

// PercentSplitShare represents the percent_split_shares table - one row per
// recipient of a split
type PercentSplitShare struct {
	// ID is {split}-{logIndex}
	ID string `gorm:"column:id;primaryKey;type:text"`
	// SplitID references the owning split contract
	SplitID string `gorm:"column:split_id;not null;type:text;index"`
	// AccountID is the share recipient
	AccountID string `gorm:"column:account_id;not null;type:text"`
	// ShareInPercent is the recipient's portion, basis points scaled to percent
	ShareInPercent decimal.Decimal `gorm:"column:share_in_percent;not null;type:numeric(78,18)"`
	// IndexOfShare is the position of this share within the split
	IndexOfShare int64 `gorm:"column:index_of_share;not null"`
}

// TableName specifies the table name for the PercentSplitShare model
func (PercentSplitShare) TableName() string {
	return "percent_split_shares"
}
