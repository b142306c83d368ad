package schema

import (
	"github.com/shopspring/decimal"
)

// AuctionStatus is the derived lifecycle state of a reserve auction. The
// chain never emits a status field; it is inferred from which events landed.
type AuctionStatus string

const (
	AuctionStatusOpen        AuctionStatus = "Open"
	AuctionStatusCanceled    AuctionStatus = "Canceled"
	AuctionStatusInvalidated AuctionStatus = "Invalidated"
	AuctionStatusFinalized   AuctionStatus = "Finalized"
)

// BidStatus is the lifecycle state of a single bid
type BidStatus string

const (
	BidStatusHighest         BidStatus = "Highest"
	BidStatusOutbid          BidStatus = "Outbid"
	BidStatusFinalizedWinner BidStatus = "FinalizedWinner"
)

// OfferStatus is the lifecycle state of an offer
type OfferStatus string

const (
	OfferStatusOpen        OfferStatus = "Open"
	OfferStatusOutbid      OfferStatus = "Outbid"
	OfferStatusExpired     OfferStatus = "Expired"
	OfferStatusAccepted    OfferStatus = "Accepted"
	OfferStatusCanceled    OfferStatus = "Canceled"
	OfferStatusInvalidated OfferStatus = "Invalidated"
)

// BuyNowStatus is the lifecycle state of a fixed-price listing
type BuyNowStatus string

const (
	BuyNowStatusOpen        BuyNowStatus = "Open"
	BuyNowStatusAccepted    BuyNowStatus = "Accepted"
	BuyNowStatusCanceled    BuyNowStatus = "Canceled"
	BuyNowStatusInvalidated BuyNowStatus = "Invalidated"
)

// NftMarketContract represents the nft_market_contracts table - one row per
// marketplace contract address with market-wide counters
type NftMarketContract struct {
	// ID is the lowercase hex market address
	ID string `gorm:"column:id;primaryKey;type:text"`
	// NumberOfBidsPlaced counts every bid ever placed through this market
	NumberOfBidsPlaced int64 `gorm:"column:number_of_bids_placed;not null"`
}

// TableName specifies the table name for the NftMarketContract model
func (NftMarketContract) TableName() string {
	return "nft_market_contracts"
}

// NftMarketAuction represents the nft_market_auctions table
type NftMarketAuction struct {
	// ID is {market}-{auctionId}
	ID                  string `gorm:"column:id;primaryKey;type:text"`
	NftMarketContractID string `gorm:"column:nft_market_contract_id;not null;type:text"`
	// AuctionID is the on-chain auction counter value
	AuctionID     string        `gorm:"column:auction_id;not null;type:numeric(78,0)"`
	NftID         string        `gorm:"column:nft_id;not null;type:text;index"`
	NftContractID string        `gorm:"column:nft_contract_id;not null;type:text"`
	Status        AuctionStatus `gorm:"column:status;not null;type:text"`
	SellerID      string        `gorm:"column:seller_id;not null;type:text;index"`
	// Duration is the countdown length in seconds once the reserve is met
	Duration int64 `gorm:"column:duration;not null"`
	// ExtensionDuration is the anti-sniping window in seconds
	ExtensionDuration      int64   `gorm:"column:extension_duration;not null"`
	DateCreated            int64   `gorm:"column:date_created;not null"`
	TransactionHashCreated string  `gorm:"column:transaction_hash_created;not null;type:text"`
	CanceledReason         *string `gorm:"column:canceled_reason;type:text"`
	// DateStarted is set by the first bid; the countdown begins there
	DateStarted *int64 `gorm:"column:date_started"`
	// DateEnding is the current end time as reported by the latest bid event
	DateEnding                 *int64          `gorm:"column:date_ending"`
	DateFinalized              *int64          `gorm:"column:date_finalized"`
	DateCanceled               *int64          `gorm:"column:date_canceled"`
	TransactionHashCanceled    *string         `gorm:"column:transaction_hash_canceled;type:text"`
	DateInvalidated            *int64          `gorm:"column:date_invalidated"`
	TransactionHashInvalidated *string         `gorm:"column:transaction_hash_invalidated;type:text"`
	ReservePriceInETH          decimal.Decimal `gorm:"column:reserve_price_in_eth;not null;type:numeric(78,18)"`
	// IsPrimarySale is refreshed on every bid since third-party secondary
	// logic may change after listing
	IsPrimarySale bool `gorm:"column:is_primary_sale;not null"`
	// InitialBidID is the bid that started the countdown
	InitialBidID *string `gorm:"column:initial_bid_id;type:text"`
	// HighestBidID is the single Highest-status bid while Open
	HighestBidID *string `gorm:"column:highest_bid_id;type:text"`
	NumberOfBids int64   `gorm:"column:number_of_bids;not null"`
	// BidVolumeInETH accumulates all bid amounts ever placed on this auction
	BidVolumeInETH decimal.Decimal `gorm:"column:bid_volume_in_eth;not null;type:numeric(78,18)"`
	// CreatorRevenueInETH / OwnerRevenueInETH / ProtocolRevenueInETH hold the
	// expected split while Open (pending) and the realized split once
	// Finalized
	CreatorRevenueInETH  *decimal.Decimal `gorm:"column:creator_revenue_in_eth;type:numeric(78,18)"`
	OwnerRevenueInETH    *decimal.Decimal `gorm:"column:owner_revenue_in_eth;type:numeric(78,18)"`
	ProtocolRevenueInETH *decimal.Decimal `gorm:"column:protocol_revenue_in_eth;type:numeric(78,18)"`
	// NetProtocolFeeInETH is total fees minus the buy-referrer fee
	NetProtocolFeeInETH       *decimal.Decimal `gorm:"column:net_protocol_fee_in_eth;type:numeric(78,18)"`
	BuyReferrerID             *string          `gorm:"column:buy_referrer_id;type:text"`
	BuyReferrerFeeInETH       *decimal.Decimal `gorm:"column:buy_referrer_fee_in_eth;type:numeric(78,18)"`
	BuyReferrerSellerFeeInETH *decimal.Decimal `gorm:"column:buy_referrer_seller_fee_in_eth;type:numeric(78,18)"`
}

// TableName specifies the table name for the NftMarketAuction model
func (NftMarketAuction) TableName() string {
	return "nft_market_auctions"
}

// NftMarketBid represents the nft_market_bids table
type NftMarketBid struct {
	// ID is {auctionId}-{logId}
	ID                 string          `gorm:"column:id;primaryKey;type:text"`
	NftMarketAuctionID string          `gorm:"column:nft_market_auction_id;not null;type:text;index"`
	NftID              string          `gorm:"column:nft_id;not null;type:text"`
	BidderID           string          `gorm:"column:bidder_id;not null;type:text;index"`
	SellerID           string          `gorm:"column:seller_id;not null;type:text"`
	Status             BidStatus       `gorm:"column:status;not null;type:text"`
	AmountInETH        decimal.Decimal `gorm:"column:amount_in_eth;not null;type:numeric(78,18)"`
	DatePlaced         int64           `gorm:"column:date_placed;not null"`
	TransactionHashPlaced string       `gorm:"column:transaction_hash_placed;not null;type:text"`
	// DateLeftActiveStatus is set when the bid leaves Highest
	DateLeftActiveStatus            *int64  `gorm:"column:date_left_active_status"`
	TransactionHashLeftActiveStatus *string `gorm:"column:transaction_hash_left_active_status;type:text"`
	// OutbidByBidID / BidThisOutbidID form the outbid chain
	OutbidByBidID   *string `gorm:"column:outbid_by_bid_id;type:text"`
	BidThisOutbidID *string `gorm:"column:bid_this_outbid_id;type:text"`
	// ExtendedAuction is true when this bid moved the auction end time
	ExtendedAuction bool `gorm:"column:extended_auction;not null"`
}

// TableName specifies the table name for the NftMarketBid model
func (NftMarketBid) TableName() string {
	return "nft_market_bids"
}

// NftMarketOffer represents the nft_market_offers table
type NftMarketOffer struct {
	// ID is {txHash}-{logIndex}
	ID                     string          `gorm:"column:id;primaryKey;type:text"`
	NftMarketContractID    string          `gorm:"column:nft_market_contract_id;not null;type:text"`
	NftID                  string          `gorm:"column:nft_id;not null;type:text;index"`
	NftContractID          string          `gorm:"column:nft_contract_id;not null;type:text"`
	Status                 OfferStatus     `gorm:"column:status;not null;type:text"`
	BuyerID                string          `gorm:"column:buyer_id;not null;type:text"`
	SellerID               *string         `gorm:"column:seller_id;type:text"`
	AmountInETH            decimal.Decimal `gorm:"column:amount_in_eth;not null;type:numeric(78,18)"`
	DateCreated            int64           `gorm:"column:date_created;not null"`
	TransactionHashCreated string          `gorm:"column:transaction_hash_created;not null;type:text"`
	// DateExpires drives lazy expiry: checked only when the next offer lands
	DateExpires                int64            `gorm:"column:date_expires;not null"`
	DateOutbid                 *int64           `gorm:"column:date_outbid"`
	TransactionHashOutbid      *string          `gorm:"column:transaction_hash_outbid;type:text"`
	OfferOutbidByID            *string          `gorm:"column:offer_outbid_by_id;type:text"`
	OutbidOfferID              *string          `gorm:"column:outbid_offer_id;type:text"`
	DateAccepted               *int64           `gorm:"column:date_accepted"`
	TransactionHashAccepted    *string          `gorm:"column:transaction_hash_accepted;type:text"`
	DateInvalidated            *int64           `gorm:"column:date_invalidated"`
	TransactionHashInvalidated *string          `gorm:"column:transaction_hash_invalidated;type:text"`
	DateCanceled               *int64           `gorm:"column:date_canceled"`
	TransactionHashCanceled    *string          `gorm:"column:transaction_hash_canceled;type:text"`
	CreatorRevenueInETH        *decimal.Decimal `gorm:"column:creator_revenue_in_eth;type:numeric(78,18)"`
	OwnerRevenueInETH          *decimal.Decimal `gorm:"column:owner_revenue_in_eth;type:numeric(78,18)"`
	ProtocolRevenueInETH       *decimal.Decimal `gorm:"column:protocol_revenue_in_eth;type:numeric(78,18)"`
	NetProtocolFeeInETH        *decimal.Decimal `gorm:"column:net_protocol_fee_in_eth;type:numeric(78,18)"`
	IsPrimarySale              bool             `gorm:"column:is_primary_sale;not null"`
	BuyReferrerID              *string          `gorm:"column:buy_referrer_id;type:text"`
	BuyReferrerFeeInETH        *decimal.Decimal `gorm:"column:buy_referrer_fee_in_eth;type:numeric(78,18)"`
	BuyReferrerSellerFeeInETH  *decimal.Decimal `gorm:"column:buy_referrer_seller_fee_in_eth;type:numeric(78,18)"`
}

// TableName specifies the table name for the NftMarketOffer model
func (NftMarketOffer) TableName() string {
	return "nft_market_offers"
}

// NftMarketBuyNow represents the nft_market_buy_nows table
type NftMarketBuyNow struct {
	// ID is {txHash}-{logIndex} of the BuyPriceSet that created it
	ID                         string           `gorm:"column:id;primaryKey;type:text"`
	NftMarketContractID        string           `gorm:"column:nft_market_contract_id;not null;type:text"`
	NftID                      string           `gorm:"column:nft_id;not null;type:text;index"`
	NftContractID              string           `gorm:"column:nft_contract_id;not null;type:text"`
	Status                     BuyNowStatus     `gorm:"column:status;not null;type:text"`
	SellerID                   string           `gorm:"column:seller_id;not null;type:text"`
	BuyerID                    *string          `gorm:"column:buyer_id;type:text"`
	AmountInETH                decimal.Decimal  `gorm:"column:amount_in_eth;not null;type:numeric(78,18)"`
	DateCreated                int64            `gorm:"column:date_created;not null"`
	TransactionHashCreated     string           `gorm:"column:transaction_hash_created;not null;type:text"`
	DateAccepted               *int64           `gorm:"column:date_accepted"`
	TransactionHashAccepted    *string          `gorm:"column:transaction_hash_accepted;type:text"`
	DateInvalidated            *int64           `gorm:"column:date_invalidated"`
	TransactionHashInvalidated *string          `gorm:"column:transaction_hash_invalidated;type:text"`
	DateCanceled               *int64           `gorm:"column:date_canceled"`
	TransactionHashCanceled    *string          `gorm:"column:transaction_hash_canceled;type:text"`
	CreatorRevenueInETH        *decimal.Decimal `gorm:"column:creator_revenue_in_eth;type:numeric(78,18)"`
	OwnerRevenueInETH          *decimal.Decimal `gorm:"column:owner_revenue_in_eth;type:numeric(78,18)"`
	ProtocolRevenueInETH       *decimal.Decimal `gorm:"column:protocol_revenue_in_eth;type:numeric(78,18)"`
	NetProtocolFeeInETH        *decimal.Decimal `gorm:"column:net_protocol_fee_in_eth;type:numeric(78,18)"`
	IsPrimarySale              bool             `gorm:"column:is_primary_sale;not null"`
	BuyReferrerID              *string          `gorm:"column:buy_referrer_id;type:text"`
	BuyReferrerFeeInETH        *decimal.Decimal `gorm:"column:buy_referrer_fee_in_eth;type:numeric(78,18)"`
	BuyReferrerSellerFeeInETH  *decimal.Decimal `gorm:"column:buy_referrer_seller_fee_in_eth;type:numeric(78,18)"`
}

// TableName specifies the table name for the NftMarketBuyNow model
func (NftMarketBuyNow) TableName() string {
	return "nft_market_buy_nows"
}

// PrivateSale represents the private_sales table - immutable once created,
// always terminal
type PrivateSale struct {
	// ID is {txHash}-{logIndex}
	ID                   string          `gorm:"column:id;primaryKey;type:text"`
	NftID                string          `gorm:"column:nft_id;not null;type:text;index"`
	SellerID             string          `gorm:"column:seller_id;not null;type:text"`
	BuyerID              string          `gorm:"column:buyer_id;not null;type:text"`
	AmountInETH          decimal.Decimal `gorm:"column:amount_in_eth;not null;type:numeric(78,18)"`
	CreatorRevenueInETH  decimal.Decimal `gorm:"column:creator_revenue_in_eth;not null;type:numeric(78,18)"`
	OwnerRevenueInETH    decimal.Decimal `gorm:"column:owner_revenue_in_eth;not null;type:numeric(78,18)"`
	ProtocolRevenueInETH decimal.Decimal `gorm:"column:protocol_revenue_in_eth;not null;type:numeric(78,18)"`
	DateSold             int64           `gorm:"column:date_sold;not null"`
	TransactionHashSold  string          `gorm:"column:transaction_hash_sold;not null;type:text"`
	// Deadline is the signature expiry agreed off-chain
	Deadline      int64 `gorm:"column:deadline;not null"`
	IsPrimarySale bool  `gorm:"column:is_primary_sale;not null"`
}

// TableName specifies the table name for the PrivateSale model
func (PrivateSale) TableName() string {
	return "private_sales"
}
