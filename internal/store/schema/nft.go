package schema

import (
	"github.com/shopspring/decimal"
)

// NftContract represents the nft_contracts table - one row per collection
// contract, created on first token or collection reference
type NftContract struct {
	// ID is the lowercase hex contract address
	ID string `gorm:"column:id;primaryKey;type:text"`
	// Name is the contract name, unset when the on-chain read reverted
	Name *string `gorm:"column:name;type:text"`
	// Symbol is the contract symbol, unset when the on-chain read reverted
	Symbol *string `gorm:"column:symbol;type:text"`
	// BaseURI is the metadata base URI
	BaseURI *string `gorm:"column:base_uri;type:text"`
}

// TableName specifies the table name for the NftContract model
func (NftContract) TableName() string {
	return "nft_contracts"
}

// Nft represents the nfts table - the central token entity
type Nft struct {
	// ID is {contract}-{tokenId}
	ID string `gorm:"column:id;primaryKey;type:text"`
	// NftContractID references the collection contract
	NftContractID string `gorm:"column:nft_contract_id;not null;type:text;index"`
	// TokenID is the token number within the contract (string to support very large ids)
	TokenID string `gorm:"column:token_id;not null;type:numeric(78,0)"`
	// DateMinted is the block timestamp of the mint, unix seconds
	DateMinted int64 `gorm:"column:date_minted;not null"`
	// OwnerID is the current owner account
	OwnerID string `gorm:"column:owner_id;not null;type:text;index"`
	// OwnedOrListedByID is the owner, or the seller while the token is listed
	OwnedOrListedByID string `gorm:"column:owned_or_listed_by_id;not null;type:text"`
	// ApprovedSpenderID is the single-token approved spender, nil when revoked
	ApprovedSpenderID *string `gorm:"column:approved_spender_id;type:text"`
	// CreatorID references the creator, unset when the on-chain read reverted
	CreatorID *string `gorm:"column:creator_id;type:text;index"`
	// TokenIPFSPath is the token content path
	TokenIPFSPath *string `gorm:"column:token_ipfs_path;type:text"`
	// TokenCreatorPaymentAddress is an alternate creator revenue destination
	TokenCreatorPaymentAddress *string `gorm:"column:token_creator_payment_address;type:text"`
	// PercentSplitID references a split contract when the payment address is one
	PercentSplitID *string `gorm:"column:percent_split_id;type:text"`
	// IsFirstSale is true until the first realized sale, then false forever
	IsFirstSale bool `gorm:"column:is_first_sale;not null"`
	// LastSalePriceInETH is the total amount of the most recent realized sale
	LastSalePriceInETH *decimal.Decimal `gorm:"column:last_sale_price_in_eth;type:numeric(78,18)"`
	// NetSalesInETH accumulates realized total sale amounts
	NetSalesInETH decimal.Decimal `gorm:"column:net_sales_in_eth;not null;type:numeric(78,18)"`
	// NetSalesPendingInETH accumulates pending sale amounts while auctions are open
	NetSalesPendingInETH decimal.Decimal `gorm:"column:net_sales_pending_in_eth;not null;type:numeric(78,18)"`
	// NetRevenueInETH accumulates the realized creator share
	NetRevenueInETH decimal.Decimal `gorm:"column:net_revenue_in_eth;not null;type:numeric(78,18)"`
	// NetRevenuePendingInETH accumulates the pending creator share
	NetRevenuePendingInETH decimal.Decimal `gorm:"column:net_revenue_pending_in_eth;not null;type:numeric(78,18)"`
	// MintedTransferID back-references the transfer row of the mint
	MintedTransferID *string `gorm:"column:minted_transfer_id;type:text"`
	// MostRecentAuctionID is the latest auction ever opened for this token
	MostRecentAuctionID *string `gorm:"column:most_recent_auction_id;type:text"`
	// MostRecentActiveAuctionID is the open auction, or the last finalized one
	MostRecentActiveAuctionID *string `gorm:"column:most_recent_active_auction_id;type:text"`
	// LatestFinalizedAuctionID is the last auction that settled
	LatestFinalizedAuctionID *string `gorm:"column:latest_finalized_auction_id;type:text"`
	// MostRecentOfferID tracks the single offer that may be Open
	MostRecentOfferID *string `gorm:"column:most_recent_offer_id;type:text"`
	// MostRecentBuyNowID tracks the single buy-now that may be Open
	MostRecentBuyNowID *string `gorm:"column:most_recent_buy_now_id;type:text"`
}

// TableName specifies the table name for the Nft model
func (Nft) TableName() string {
	return "nfts"
}

// NftTransfer represents the nft_transfers table - one row per Transfer log
type NftTransfer struct {
	// ID is {txHash}-{logIndex}
	ID string `gorm:"column:id;primaryKey;type:text"`
	// NftID references the transferred token
	NftID string `gorm:"column:nft_id;not null;type:text;index"`
	// FromID is the sender account (zero address for mints)
	FromID string `gorm:"column:from_id;not null;type:text"`
	// ToID is the recipient account (zero address for burns)
	ToID string `gorm:"column:to_id;not null;type:text"`
	// DateTransferred is the block timestamp, unix seconds
	DateTransferred int64 `gorm:"column:date_transferred;not null"`
	// TransactionHash is the transaction that carried the transfer
	TransactionHash string `gorm:"column:transaction_hash;not null;type:text"`
}

// TableName specifies the table name for the NftTransfer model
func (NftTransfer) TableName() string {
	return "nft_transfers"
}

// NftAccountApproval represents the nft_account_approvals table - existence
// means the approval is active; the row is deleted on revocation
type NftAccountApproval struct {
	// ID is {contract}-{owner}-{spender}
	ID string `gorm:"column:id;primaryKey;type:text"`
	// NftContractID references the collection contract
	NftContractID string `gorm:"column:nft_contract_id;not null;type:text"`
	// OwnerID is the granting account
	OwnerID string `gorm:"column:owner_id;not null;type:text;index"`
	// SpenderID is the approved operator account
	SpenderID string `gorm:"column:spender_id;not null;type:text"`
}

// TableName specifies the table name for the NftAccountApproval model
func (NftAccountApproval) TableName() string {
	return "nft_account_approvals"
}
