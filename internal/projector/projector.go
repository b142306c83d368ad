// Package projector replays decoded marketplace events, in stream order,
// into the relational read model. Entity ids are derived from on-chain
// coordinates, so the same stream always rebuilds the same rows; the
// subscriber delivers each event exactly once, in order.
package projector

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"github.com/gallerie/market-indexer/internal/domain"
	"github.com/gallerie/market-indexer/internal/providers/ethereum"
	"github.com/gallerie/market-indexer/internal/store"
	"github.com/gallerie/market-indexer/internal/store/schema"
)

// marketplaceName tags sale and listing history rows with the venue
const marketplaceName = "Foundation"

// cursorID names the single replay cursor this projector advances
const cursorID = "projector"

var zeroAddress = common.Address{}

// Projector applies decoded events to the store. Reads against the chain go
// through the contract reader; a configured market address overrides the
// emitting contract for the market's view functions.
type Projector struct {
	store  store.Store
	reader ethereum.ContractReader
	market common.Address
}

// New creates a Projector. market may be the zero address, in which case
// view functions are called on the contract that emitted each event.
func New(s store.Store, reader ethereum.ContractReader, market common.Address) *Projector {
	return &Projector{
		store:  s,
		reader: reader,
		market: market,
	}
}

// Process applies one event and advances the replay cursor. It is the
// messaging handler body; an error leaves the cursor untouched so the event
// is redelivered.
func (p *Projector) Process(ctx context.Context, event *domain.Event) error {
	if err := p.Apply(ctx, event); err != nil {
		return err
	}

	cursor, err := p.store.GetBlockCursor(ctx, cursorID)
	if err != nil {
		return fmt.Errorf("failed to load block cursor: %w", err)
	}
	if cursor == nil {
		cursor = &schema.BlockCursor{ID: cursorID}
	}
	cursor.BlockNumber = event.BlockNumber
	cursor.LogIndex = event.LogIndex
	if err := p.store.SetBlockCursor(ctx, cursor); err != nil {
		return fmt.Errorf("failed to advance block cursor: %w", err)
	}
	return nil
}

// Apply routes one event to its handler. Events that reference state this
// projector never saw (an unknown auction id, no open offer) are skipped
// without error: the stream is the only source of truth and a missing
// referent means the referenced action predates the stream.
func (p *Projector) Apply(ctx context.Context, event *domain.Event) error {
	switch params := event.Payload.(type) {
	// Collection contracts
	case *domain.NftTransferred:
		return p.handleNftTransfer(ctx, event, params)
	case *domain.NftApproval:
		return p.handleNftApproval(ctx, event, params)
	case *domain.NftApprovalForAll:
		return p.handleNftApprovalForAll(ctx, event, params)
	case *domain.NftMinted:
		return p.handleNftMinted(ctx, event, params)
	case *domain.BaseURIUpdated:
		return p.handleBaseURIUpdated(ctx, event, params)
	case *domain.TokenCreatorUpdated:
		return p.handleTokenCreatorUpdated(ctx, event, params)
	case *domain.TokenCreatorPaymentAddressSet:
		return p.handleTokenCreatorPaymentAddressSet(ctx, event, params)
	case *domain.PaymentAddressMigrated:
		return p.handlePaymentAddressMigrated(ctx, event, params)
	case *domain.NftOwnerMigrated:
		return p.handleNftOwnerMigrated(ctx, event, params)
	case *domain.CollectionSelfDestructed:
		return p.handleCollectionSelfDestructed(ctx, event, params)

	// Collection factory
	case *domain.CollectionCreated:
		return p.handleCollectionCreated(ctx, event, params)
	case *domain.DropCollectionCreated:
		return p.handleDropCollectionCreated(ctx, event, params)

	// Market
	case *domain.ReserveAuctionCreated:
		return p.handleReserveAuctionCreated(ctx, event, params)
	case *domain.ReserveAuctionBidPlaced:
		return p.handleReserveAuctionBidPlaced(ctx, event, params)
	case *domain.ReserveAuctionUpdated:
		return p.handleReserveAuctionUpdated(ctx, event, params)
	case *domain.ReserveAuctionCanceled:
		return p.handleReserveAuctionCanceled(ctx, event, params)
	case *domain.ReserveAuctionCanceledByAdmin:
		return p.handleReserveAuctionCanceledByAdmin(ctx, event, params)
	case *domain.ReserveAuctionFinalized:
		return p.handleReserveAuctionFinalized(ctx, event, params)
	case *domain.ReserveAuctionInvalidated:
		return p.handleReserveAuctionInvalidated(ctx, event, params)
	case *domain.ReserveAuctionSellerMigrated:
		return p.handleReserveAuctionSellerMigrated(ctx, event, params)
	case *domain.PrivateSaleFinalized:
		return p.handlePrivateSaleFinalized(ctx, event, params)
	case *domain.OfferMade:
		return p.handleOfferMade(ctx, event, params)
	case *domain.OfferAccepted:
		return p.handleOfferAccepted(ctx, event, params)
	case *domain.OfferInvalidated:
		return p.handleOfferInvalidated(ctx, event, params)
	case *domain.OfferCanceledByAdmin:
		return p.handleOfferCanceledByAdmin(ctx, event, params)
	case *domain.BuyPriceSet:
		return p.handleBuyPriceSet(ctx, event, params)
	case *domain.BuyPriceAccepted:
		return p.handleBuyPriceAccepted(ctx, event, params)
	case *domain.BuyPriceInvalidated:
		return p.handleBuyPriceInvalidated(ctx, event, params)
	case *domain.BuyPriceCanceled:
		return p.handleBuyPriceCanceled(ctx, event, params)
	case *domain.BuyReferralPaid:
		if event.Source == domain.SourceDropMarket {
			return p.handleDropBuyReferralPaid(ctx, event, params)
		}
		return p.handleBuyReferralPaid(ctx, event, params)

	// Drop market
	case *domain.CreateFixedPriceSale:
		return p.handleCreateFixedPriceSale(ctx, event, params)
	case *domain.MintFromFixedPriceDrop:
		return p.handleMintFromFixedPriceDrop(ctx, event, params)

	// Escrow token
	case *domain.FethTransferred:
		return p.handleFethTransfer(ctx, event, params)
	case *domain.FethWithdrawn:
		return p.handleFethWithdrawn(ctx, event, params)
	case *domain.BalanceLocked:
		return p.handleBalanceLocked(ctx, event, params)
	case *domain.BalanceUnlocked:
		return p.handleBalanceUnlocked(ctx, event, params)

	// Percent splits
	case *domain.PercentSplitCreated:
		return p.handlePercentSplitCreated(ctx, event, params)
	case *domain.PercentSplitShare:
		return p.handlePercentSplitShare(ctx, event, params)
	}

	return nil
}

// readMarket returns the address the market view functions live on
func (p *Projector) readMarket(event *domain.Event) common.Address {
	if p.market != zeroAddress {
		return p.market
	}
	return event.Contract
}

// ref returns a pointer to v, for the many nullable schema columns
func ref[T any](v T) *T {
	return &v
}

// derefOrZero reads a nullable decimal column as a value
func derefOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// parseTokenID converts the stored decimal token id back to an integer
func parseTokenID(tokenID string) *big.Int {
	value, ok := new(big.Int).SetString(tokenID, 10)
	if !ok {
		return big.NewInt(0)
	}
	return value
}
