package schema

import (
	"github.com/shopspring/decimal"
)

// History event types. Each value is a distinct per-log record kind, so the
// same log can produce several history rows with different types.
const (
	HistoryMinted             = "Minted"
	HistoryTransferred        = "Transferred"
	HistoryBurned             = "Burned"
	HistoryListed             = "Listed"
	HistoryPriceChanged       = "PriceChanged"
	HistoryUnlisted           = "Unlisted"
	HistoryBid                = "Bid"
	HistorySold               = "Sold"
	HistorySettled            = "Settled"
	HistoryOfferMade          = "OfferMade"
	HistoryOfferOutbid        = "OfferOutbid"
	HistoryOfferChanged       = "OfferChanged"
	HistoryOfferExpired       = "OfferExpired"
	HistoryOfferAccepted      = "OfferAccepted"
	HistoryOfferCanceled      = "OfferCanceled"
	HistoryOfferInvalidated   = "OfferInvalidated"
	HistoryBuyPriceSet        = "BuyPriceSet"
	HistoryBuyPriceChanged    = "BuyPriceChanged"
	HistoryBuyPriceAccepted   = "BuyPriceAccepted"
	HistoryBuyPriceCanceled   = "BuyPriceCanceled"
	HistoryBuyPriceInvalidated = "BuyPriceInvalidated"
	HistoryPrivateSale        = "PrivateSale"
	HistoryAuctionInvalidated = "AuctionInvalidated"
	HistorySellerMigrated     = "SellerMigrated"
	HistoryCreatorMigrated    = "CreatorMigrated"
	HistoryOwnerMigrated      = "OwnerMigrated"

	HistoryCreatorPaymentAddressMigrated = "CreatorPaymentAddressMigrated"
)

// NftHistory represents the nft_histories table - the append-only activity
// feed per token. One row per (log, event type).
type NftHistory struct {
	// ID is {txHash}-{logIndex}-{eventType}
	ID string `gorm:"column:id;primaryKey;type:text"`
	// NftID references the token the record belongs to
	NftID string `gorm:"column:nft_id;not null;type:text;index"`
	// EventType is one of the History* constants
	EventType string `gorm:"column:event_type;not null;type:text"`
	// AuctionID links auction-related records to their auction
	AuctionID *string `gorm:"column:auction_id;type:text"`
	// OfferID links offer-related records to their offer
	OfferID *string `gorm:"column:offer_id;type:text"`
	// BuyNowID links buy-now-related records to their listing
	BuyNowID *string `gorm:"column:buy_now_id;type:text"`
	// PrivateSaleID links private-sale records to their sale
	PrivateSaleID *string `gorm:"column:private_sale_id;type:text"`
	// Date is the record timestamp, unix seconds. Usually the block time,
	// but expiry records carry the original expiration instead.
	Date int64 `gorm:"column:date;not null"`
	// ContractAddress is the emitting contract
	ContractAddress string `gorm:"column:contract_address;not null;type:text"`
	// TransactionHash is the carrying transaction
	TransactionHash string `gorm:"column:transaction_hash;not null;type:text"`
	// ActorAccountID is the account that performed the action
	ActorAccountID string `gorm:"column:actor_account_id;not null;type:text;index"`
	// TxOriginID is the externally-owned account that signed the transaction
	TxOriginID string `gorm:"column:tx_origin_id;not null;type:text"`
	// NftRecipientID is set when the action moves the token to someone
	NftRecipientID *string `gorm:"column:nft_recipient_id;type:text"`
	// Marketplace names the venue for sale records, e.g. "Foundation"
	Marketplace *string `gorm:"column:marketplace;type:text"`
	// AmountInETH is the value attached to the record, when any
	AmountInETH *decimal.Decimal `gorm:"column:amount_in_eth;type:numeric(78,18)"`
}

// TableName specifies the table name for the NftHistory model
func (NftHistory) TableName() string {
	return "nft_histories"
}
