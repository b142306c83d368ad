package schema

import (
	"github.com/shopspring/decimal"
)

// FixedPriceSale represents the fixed_price_sales table - one row per drop
// sale configured on the drop market
type FixedPriceSale struct {
	// ID is {txHash}-{logIndex} of the sale creation
	ID            string `gorm:"column:id;primaryKey;type:text"`
	NftContractID string `gorm:"column:nft_contract_id;not null;type:text;index"`
	SellerID      string `gorm:"column:seller_id;not null;type:text"`
	// UnitPriceInETH is the price of a single token in the drop
	UnitPriceInETH decimal.Decimal `gorm:"column:unit_price_in_eth;not null;type:numeric(78,18)"`
	// LimitPerAccount caps how many tokens one buyer may mint
	LimitPerAccount        int64  `gorm:"column:limit_per_account;not null"`
	DateCreated            int64  `gorm:"column:date_created;not null"`
	TransactionHashCreated string `gorm:"column:transaction_hash_created;not null;type:text"`
	// AmountSoldInETH accumulates revenue across all mints of the drop
	AmountSoldInETH decimal.Decimal `gorm:"column:amount_sold_in_eth;not null;type:numeric(78,18)"`
	NumberSold      int64           `gorm:"column:number_sold;not null"`
}

// TableName specifies the table name for the FixedPriceSale model
func (FixedPriceSale) TableName() string {
	return "fixed_price_sales"
}

// FixedPriceSaleMint represents the fixed_price_sale_mints table - one row
// per mint transaction against a drop sale. Keyed by transaction hash so a
// later BuyReferralPaid in the same transaction can attach referral data.
type FixedPriceSaleMint struct {
	// ID is the transaction hash of the mint
	ID               string          `gorm:"column:id;primaryKey;type:text"`
	FixedPriceSaleID string          `gorm:"column:fixed_price_sale_id;not null;type:text;index"`
	BuyerID          string          `gorm:"column:buyer_id;not null;type:text"`
	Count            int64           `gorm:"column:count;not null"`
	AmountInETH      decimal.Decimal `gorm:"column:amount_in_eth;not null;type:numeric(78,18)"`
	DateMinted       int64           `gorm:"column:date_minted;not null"`
	// BuyReferrerID is set when a BuyReferralPaid lands in the same transaction
	BuyReferrerID       *string          `gorm:"column:buy_referrer_id;type:text"`
	BuyReferrerFeeInETH *decimal.Decimal `gorm:"column:buy_referrer_fee_in_eth;type:numeric(78,18)"`
}

// TableName specifies the table name for the FixedPriceSaleMint model
func (FixedPriceSaleMint) TableName() string {
	return "fixed_price_sale_mints"
}
