package domain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// Collection contract events

// NftTransferred is the ERC721 Transfer event. A zero from-address is a
// mint, a zero to-address is a burn.
type NftTransferred struct {
	From    common.Address `json:"from"`
	To      common.Address `json:"to"`
	TokenID *big.Int       `json:"token_id"`
}

// NftApproval is the ERC721 Approval event
type NftApproval struct {
	Owner    common.Address `json:"owner"`
	Approved common.Address `json:"approved"`
	TokenID  *big.Int       `json:"token_id"`
}

// NftApprovalForAll is the ERC721 ApprovalForAll event
type NftApprovalForAll struct {
	Owner    common.Address `json:"owner"`
	Operator common.Address `json:"operator"`
	Approved bool           `json:"approved"`
}

// NftMinted carries the token content identifier alongside the creator
type NftMinted struct {
	Creator  common.Address `json:"creator"`
	TokenID  *big.Int       `json:"token_id"`
	TokenCID string         `json:"token_cid"`
}

// BaseURIUpdated updates the collection-wide metadata base URI
type BaseURIUpdated struct {
	BaseURI string `json:"base_uri"`
}

// TokenCreatorUpdated reassigns the creator of a token
type TokenCreatorUpdated struct {
	FromCreator common.Address `json:"from_creator"`
	ToCreator   common.Address `json:"to_creator"`
	TokenID     *big.Int       `json:"token_id"`
}

// TokenCreatorPaymentAddressSet points creator revenue at a payment address,
// which may be a percent-split contract
type TokenCreatorPaymentAddressSet struct {
	FromPaymentAddress common.Address `json:"from_payment_address"`
	ToPaymentAddress   common.Address `json:"to_payment_address"`
	TokenID            *big.Int       `json:"token_id"`
}

// PaymentAddressMigrated migrates a creator payment address
type PaymentAddressMigrated struct {
	TokenID         *big.Int       `json:"token_id"`
	OriginalAddress common.Address `json:"original_address"`
	NewAddress      common.Address `json:"new_address"`
}

// NftOwnerMigrated migrates a token owner account
type NftOwnerMigrated struct {
	TokenID         *big.Int       `json:"token_id"`
	OriginalAddress common.Address `json:"original_address"`
	NewAddress      common.Address `json:"new_address"`
}

// CollectionSelfDestructed is emitted when a collection contract self-destructs
type CollectionSelfDestructed struct {
	Admin common.Address `json:"admin"`
}

// Collection factory events

// CollectionCreated registers a new collection contract
type CollectionCreated struct {
	Collection common.Address `json:"collection"`
	Creator    common.Address `json:"creator"`
	Version    *big.Int       `json:"version"`
}

// DropCollectionCreated registers a new drop collection contract
type DropCollectionCreated struct {
	Collection     common.Address `json:"collection"`
	Creator        common.Address `json:"creator"`
	ApprovedMinter common.Address `json:"approved_minter"`
	PaymentAddress common.Address `json:"payment_address"`
	Version        *big.Int       `json:"version"`
}

// Market events

// ReserveAuctionCreated lists a token for reserve auction
type ReserveAuctionCreated struct {
	NftContract       common.Address `json:"nft_contract"`
	TokenID           *big.Int       `json:"token_id"`
	Seller            common.Address `json:"seller"`
	Duration          *big.Int       `json:"duration"`
	ExtensionDuration *big.Int       `json:"extension_duration"`
	ReservePrice      *big.Int       `json:"reserve_price"`
	AuctionID         *big.Int       `json:"auction_id"`
}

// ReserveAuctionBidPlaced is a new bid; EndTime is the auction end as
// recomputed on-chain (it extends when a bid lands near the end)
type ReserveAuctionBidPlaced struct {
	AuctionID *big.Int       `json:"auction_id"`
	Bidder    common.Address `json:"bidder"`
	Amount    *big.Int       `json:"amount"`
	EndTime   *big.Int       `json:"end_time"`
}

// ReserveAuctionUpdated changes the reserve price of an open auction
type ReserveAuctionUpdated struct {
	AuctionID    *big.Int `json:"auction_id"`
	ReservePrice *big.Int `json:"reserve_price"`
}

// ReserveAuctionCanceled cancels an open auction
type ReserveAuctionCanceled struct {
	AuctionID *big.Int `json:"auction_id"`
}

// ReserveAuctionCanceledByAdmin cancels an open auction with a reason
type ReserveAuctionCanceledByAdmin struct {
	AuctionID *big.Int `json:"auction_id"`
	Reason    string   `json:"reason"`
}

// ReserveAuctionFinalized settles an ended auction and reports the realized
// revenue split
type ReserveAuctionFinalized struct {
	AuctionID  *big.Int       `json:"auction_id"`
	Seller     common.Address `json:"seller"`
	Bidder     common.Address `json:"bidder"`
	TotalFees  *big.Int       `json:"total_fees"`
	CreatorRev *big.Int       `json:"creator_rev"`
	SellerRev  *big.Int       `json:"seller_rev"`
}

// ReserveAuctionInvalidated marks an auction superseded by another action
type ReserveAuctionInvalidated struct {
	AuctionID *big.Int `json:"auction_id"`
}

// ReserveAuctionSellerMigrated reassigns the seller account of an auction
type ReserveAuctionSellerMigrated struct {
	AuctionID             *big.Int       `json:"auction_id"`
	OriginalSellerAddress common.Address `json:"original_seller_address"`
	NewSellerAddress      common.Address `json:"new_seller_address"`
}

// PrivateSaleFinalized is a one-shot, fully realized private sale
type PrivateSaleFinalized struct {
	NftContract common.Address `json:"nft_contract"`
	TokenID     *big.Int       `json:"token_id"`
	Seller      common.Address `json:"seller"`
	Buyer       common.Address `json:"buyer"`
	TotalFees   *big.Int       `json:"total_fees"`
	CreatorRev  *big.Int       `json:"creator_rev"`
	SellerRev   *big.Int       `json:"seller_rev"`
	Deadline    *big.Int       `json:"deadline"`
}

// OfferMade is a buyer offer on a token, escrow-funded
type OfferMade struct {
	NftContract common.Address `json:"nft_contract"`
	TokenID     *big.Int       `json:"token_id"`
	Buyer       common.Address `json:"buyer"`
	Amount      *big.Int       `json:"amount"`
	Expiration  *big.Int       `json:"expiration"`
}

// OfferAccepted settles the open offer with its realized revenue split
type OfferAccepted struct {
	NftContract common.Address `json:"nft_contract"`
	TokenID     *big.Int       `json:"token_id"`
	Buyer       common.Address `json:"buyer"`
	Seller      common.Address `json:"seller"`
	TotalFees   *big.Int       `json:"total_fees"`
	CreatorRev  *big.Int       `json:"creator_rev"`
	SellerRev   *big.Int       `json:"seller_rev"`
}

// OfferInvalidated marks the open offer superseded by another action
type OfferInvalidated struct {
	NftContract common.Address `json:"nft_contract"`
	TokenID     *big.Int       `json:"token_id"`
}

// OfferCanceledByAdmin cancels the open offer with a reason
type OfferCanceledByAdmin struct {
	NftContract common.Address `json:"nft_contract"`
	TokenID     *big.Int       `json:"token_id"`
	Reason      string         `json:"reason"`
}

// BuyPriceSet opens or re-prices a fixed-price listing
type BuyPriceSet struct {
	NftContract common.Address `json:"nft_contract"`
	TokenID     *big.Int       `json:"token_id"`
	Seller      common.Address `json:"seller"`
	Price       *big.Int       `json:"price"`
}

// BuyPriceAccepted settles a fixed-price purchase
type BuyPriceAccepted struct {
	NftContract common.Address `json:"nft_contract"`
	TokenID     *big.Int       `json:"token_id"`
	Buyer       common.Address `json:"buyer"`
	Seller      common.Address `json:"seller"`
	TotalFees   *big.Int       `json:"total_fees"`
	CreatorRev  *big.Int       `json:"creator_rev"`
	SellerRev   *big.Int       `json:"seller_rev"`
}

// BuyPriceInvalidated marks the open buy-now superseded by another action
type BuyPriceInvalidated struct {
	NftContract common.Address `json:"nft_contract"`
	TokenID     *big.Int       `json:"token_id"`
}

// BuyPriceCanceled cancels the open buy-now
type BuyPriceCanceled struct {
	NftContract common.Address `json:"nft_contract"`
	TokenID     *big.Int       `json:"token_id"`
}

// BuyReferralPaid attributes a referral fee to the sale that is settling in
// the same transaction; emitted by both the market and the drop market
type BuyReferralPaid struct {
	NftContract          common.Address `json:"nft_contract"`
	TokenID              *big.Int       `json:"token_id"`
	BuyReferrer          common.Address `json:"buy_referrer"`
	BuyReferrerFee       *big.Int       `json:"buy_referrer_fee"`
	BuyReferrerSellerFee *big.Int       `json:"buy_referrer_seller_fee"`
}

// Drop market events

// CreateFixedPriceSale opens a fixed-price drop for a whole collection
type CreateFixedPriceSale struct {
	NftContract     common.Address `json:"nft_contract"`
	Seller          common.Address `json:"seller"`
	Price           *big.Int       `json:"price"`
	LimitPerAccount *big.Int       `json:"limit_per_account"`
}

// MintFromFixedPriceDrop mints Count tokens from an open drop
type MintFromFixedPriceDrop struct {
	NftContract  common.Address `json:"nft_contract"`
	Buyer        common.Address `json:"buyer"`
	FirstTokenID *big.Int       `json:"first_token_id"`
	Count        *big.Int       `json:"count"`
	TotalFees    *big.Int       `json:"total_fees"`
	CreatorRev   *big.Int       `json:"creator_rev"`
}

// Escrow token (FETH) events

// FethTransferred moves escrow balance between accounts; a zero from-address
// is a deposit mint
type FethTransferred struct {
	From   common.Address `json:"from"`
	To     common.Address `json:"to"`
	Amount *big.Int       `json:"amount"`
}

// FethWithdrawn withdraws escrow balance back to ETH
type FethWithdrawn struct {
	From   common.Address `json:"from"`
	Amount *big.Int       `json:"amount"`
}

// BalanceLocked time-locks escrow funds. Amount is the full locked total for
// the expiration bucket; ValueDeposited is the newly deposited portion.
type BalanceLocked struct {
	Account        common.Address `json:"account"`
	Amount         *big.Int       `json:"amount"`
	ValueDeposited *big.Int       `json:"value_deposited"`
	Expiration     *big.Int       `json:"expiration"`
}

// BalanceUnlocked releases previously locked escrow funds
type BalanceUnlocked struct {
	Account    common.Address `json:"account"`
	Amount     *big.Int       `json:"amount"`
	Expiration *big.Int       `json:"expiration"`
}

// Percent split events

// PercentSplitCreated registers a new split contract
type PercentSplitCreated struct {
	ContractAddress common.Address `json:"contract_address"`
}

// PercentSplitShare appends one recipient share to a split contract. The
// contract emits shares in order without an index field; share indices are
// assigned from the emission order.
type PercentSplitShare struct {
	Recipient            common.Address `json:"recipient"`
	PercentInBasisPoints *big.Int       `json:"percent_in_basis_points"`
}

// payloadFactories maps (source, event name) to a constructor for the typed
// payload, used when decoding events off the wire.
var payloadFactories = map[EventSource]map[string]func() any{
	SourceNft: {
		"Transfer":                      func() any { return &NftTransferred{} },
		"Approval":                      func() any { return &NftApproval{} },
		"ApprovalForAll":                func() any { return &NftApprovalForAll{} },
		"Minted":                        func() any { return &NftMinted{} },
		"BaseURIUpdated":                func() any { return &BaseURIUpdated{} },
		"TokenCreatorUpdated":           func() any { return &TokenCreatorUpdated{} },
		"TokenCreatorPaymentAddressSet": func() any { return &TokenCreatorPaymentAddressSet{} },
		"PaymentAddressMigrated":        func() any { return &PaymentAddressMigrated{} },
		"NFTOwnerMigrated":              func() any { return &NftOwnerMigrated{} },
		"SelfDestruct":                  func() any { return &CollectionSelfDestructed{} },
	},
	SourceCollectionFactory: {
		"CollectionCreated":        func() any { return &CollectionCreated{} },
		"NFTCollectionCreated":     func() any { return &CollectionCreated{} },
		"NFTDropCollectionCreated": func() any { return &DropCollectionCreated{} },
	},
	SourceMarket: {
		"ReserveAuctionCreated":         func() any { return &ReserveAuctionCreated{} },
		"ReserveAuctionBidPlaced":       func() any { return &ReserveAuctionBidPlaced{} },
		"ReserveAuctionUpdated":         func() any { return &ReserveAuctionUpdated{} },
		"ReserveAuctionCanceled":        func() any { return &ReserveAuctionCanceled{} },
		"ReserveAuctionCanceledByAdmin": func() any { return &ReserveAuctionCanceledByAdmin{} },
		"ReserveAuctionFinalized":       func() any { return &ReserveAuctionFinalized{} },
		"ReserveAuctionInvalidated":     func() any { return &ReserveAuctionInvalidated{} },
		"ReserveAuctionSellerMigrated":  func() any { return &ReserveAuctionSellerMigrated{} },
		"PrivateSaleFinalized":          func() any { return &PrivateSaleFinalized{} },
		"OfferMade":                     func() any { return &OfferMade{} },
		"OfferAccepted":                 func() any { return &OfferAccepted{} },
		"OfferInvalidated":              func() any { return &OfferInvalidated{} },
		"OfferCanceledByAdmin":          func() any { return &OfferCanceledByAdmin{} },
		"BuyPriceSet":                   func() any { return &BuyPriceSet{} },
		"BuyPriceAccepted":              func() any { return &BuyPriceAccepted{} },
		"BuyPriceInvalidated":           func() any { return &BuyPriceInvalidated{} },
		"BuyPriceCanceled":              func() any { return &BuyPriceCanceled{} },
		"BuyReferralPaid":               func() any { return &BuyReferralPaid{} },
	},
	SourceDropMarket: {
		"CreateFixedPriceSale":   func() any { return &CreateFixedPriceSale{} },
		"MintFromFixedPriceDrop": func() any { return &MintFromFixedPriceDrop{} },
		"BuyReferralPaid":        func() any { return &BuyReferralPaid{} },
	},
	SourceFeth: {
		"Transfer":        func() any { return &FethTransferred{} },
		"ETHWithdrawn":    func() any { return &FethWithdrawn{} },
		"BalanceLocked":   func() any { return &BalanceLocked{} },
		"BalanceUnlocked": func() any { return &BalanceUnlocked{} },
	},
	SourcePercentSplit: {
		"PercentSplitCreated": func() any { return &PercentSplitCreated{} },
		"PercentSplitShare":   func() any { return &PercentSplitShare{} },
	},
}

// PayloadFor returns a fresh payload value for the given source and event
// name, or false when the event is not one the projector consumes.
func PayloadFor(source EventSource, name string) (any, bool) {
	byName, ok := payloadFactories[source]
	if !ok {
		return nil, false
	}
	factory, ok := byName[name]
	if !ok {
		return nil, false
	}
	return factory(), true
}
