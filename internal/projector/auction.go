package projector

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/gallerie/market-indexer/internal/conversion"
	"github.com/gallerie/market-indexer/internal/domain"
	"github.com/gallerie/market-indexer/internal/ids"
	"github.com/gallerie/market-indexer/internal/logger"
	"github.com/gallerie/market-indexer/internal/providers/ethereum"
	"github.com/gallerie/market-indexer/internal/store/schema"
)

// loadAuction returns the auction row for an on-chain auction id, or nil
// when the auction predates the stream
func (p *Projector) loadAuction(ctx context.Context, market common.Address, auctionID *big.Int) (*schema.NftMarketAuction, error) {
	return p.store.GetAuction(ctx, ids.AuctionID(market, auctionID))
}

// readIsPrimary asks the market whether the next sale counts as primary,
// estimating from projector state when the view reverts
func (p *Projector) readIsPrimary(ctx context.Context, event *domain.Event, nft *schema.Nft, sellerID string) (bool, error) {
	contract := common.HexToAddress(nft.NftContractID)
	isPrimary, err := p.reader.GetIsPrimary(ctx, p.readMarket(event), contract, parseTokenID(nft.TokenID))
	if err == nil {
		return isPrimary, nil
	}
	if !errors.Is(err, domain.ErrCallReverted) {
		return false, err
	}
	return nft.IsFirstSale && nft.CreatorID != nil && sellerID == *nft.CreatorID, nil
}

// readFees asks the market how a sale at the given price splits. When the
// view reverts the fallback schedule applies, logged at Warn because the
// estimate can drift from what the chain will settle.
func (p *Projector) readFees(ctx context.Context, event *domain.Event, nft *schema.Nft, amount *big.Int, isPrimarySale bool) (*ethereum.Fees, error) {
	contract := common.HexToAddress(nft.NftContractID)
	fees, err := p.reader.GetFees(ctx, p.readMarket(event), contract, parseTokenID(nft.TokenID), amount)
	if err == nil {
		return fees, nil
	}
	if !errors.Is(err, domain.ErrCallReverted) {
		return nil, err
	}

	logger.WarnCtx(ctx, "Fee read reverted, using the fallback schedule",
		zap.String("nft", nft.ID),
		zap.String("amount", amount.String()),
		zap.Bool("isPrimarySale", isPrimarySale))
	return estimateFees(amount, isPrimarySale), nil
}

// splitRevenue converts a wei fee quote into the decimal revenue columns.
// When the seller is also the creator the two shares merge on the creator
// side, matching how payouts route on-chain.
func splitRevenue(fees *ethereum.Fees, sellerIsCreator bool) (creatorRev, ownerRev, protocolRev decimal.Decimal) {
	protocolRev = conversion.ToETH(fees.TotalFees)
	if sellerIsCreator {
		creatorRev = conversion.ToETH(new(big.Int).Add(fees.CreatorRev, fees.SellerRev))
		ownerRev = decimal.Zero
		return
	}
	creatorRev = conversion.ToETH(fees.CreatorRev)
	ownerRev = conversion.ToETH(fees.SellerRev)
	return
}

func (p *Projector) handleReserveAuctionCreated(ctx context.Context, event *domain.Event, params *domain.ReserveAuctionCreated) error {
	nft, err := p.loadOrCreateNft(ctx, params.NftContract, params.TokenID, event)
	if err != nil {
		return err
	}
	market, err := p.loadOrCreateMarketContract(ctx, event.Contract)
	if err != nil {
		return err
	}
	seller, err := p.loadOrCreateAccount(ctx, params.Seller)
	if err != nil {
		return err
	}

	auction := &schema.NftMarketAuction{
		ID:                     ids.AuctionID(event.Contract, params.AuctionID),
		NftMarketContractID:    market.ID,
		AuctionID:              params.AuctionID.String(),
		NftID:                  nft.ID,
		NftContractID:          ids.Address(params.NftContract),
		Status:                 schema.AuctionStatusOpen,
		SellerID:               seller.ID,
		Duration:               params.Duration.Int64(),
		ExtensionDuration:      params.ExtensionDuration.Int64(),
		DateCreated:            event.Timestamp,
		TransactionHashCreated: event.TxHash.Hex(),
		ReservePriceInETH:      conversion.ToETH(params.ReservePrice),
		BidVolumeInETH:         decimal.Zero,
	}
	auction.IsPrimarySale, err = p.readIsPrimary(ctx, event, nft, seller.ID)
	if err != nil {
		return err
	}
	if err := p.store.SaveAuction(ctx, auction); err != nil {
		return fmt.Errorf("failed to save auction %s: %w", auction.ID, err)
	}

	nft.OwnedOrListedByID = seller.ID
	nft.MostRecentAuctionID = &auction.ID
	nft.MostRecentActiveAuctionID = &auction.ID
	if err := p.store.SaveNft(ctx, nft); err != nil {
		return err
	}

	if err := p.retractTransfer(ctx, event); err != nil {
		return err
	}
	return p.recordNftEvent(ctx, event, nft, schema.HistoryListed, seller.ID, historyExtras{
		AuctionID:   auction.ID,
		Marketplace: marketplaceName,
		Amount:      ref(auction.ReservePriceInETH),
	})
}

func (p *Projector) handleReserveAuctionBidPlaced(ctx context.Context, event *domain.Event, params *domain.ReserveAuctionBidPlaced) error {
	auction, err := p.loadAuction(ctx, event.Contract, params.AuctionID)
	if err != nil || auction == nil {
		return err
	}

	nft, err := p.store.GetNft(ctx, auction.NftID)
	if err != nil {
		return err
	}
	if nft == nil {
		return nil
	}
	var creator *schema.Creator
	if nft.CreatorID != nil {
		if creator, err = p.store.GetCreator(ctx, *nft.CreatorID); err != nil {
			return err
		}
	}
	owner, err := p.store.GetAccount(ctx, auction.SellerID)
	if err != nil {
		return err
	}
	if owner == nil {
		return nil
	}

	currentBid := &schema.NftMarketBid{
		ID:                    auction.ID + "-" + ids.LogID(event.TxHash, event.LogIndex),
		NftMarketAuctionID:    auction.ID,
		NftID:                 auction.NftID,
		SellerID:              auction.SellerID,
		Status:                schema.BidStatusHighest,
		AmountInETH:           conversion.ToETH(params.Amount),
		DatePlaced:            event.Timestamp,
		TransactionHashPlaced: event.TxHash.Hex(),
	}

	hadHighestBid := auction.HighestBidID != nil
	if hadHighestBid {
		previousBid, err := p.store.GetBid(ctx, *auction.HighestBidID)
		if err != nil {
			return err
		}
		if previousBid != nil {
			previousBid.Status = schema.BidStatusOutbid
			previousBid.DateLeftActiveStatus = ref(event.Timestamp)
			previousBid.TransactionHashLeftActiveStatus = ref(event.TxHash.Hex())
			previousBid.OutbidByBidID = &currentBid.ID
			if err := p.store.SaveBid(ctx, previousBid); err != nil {
				return err
			}
			currentBid.BidThisOutbidID = &previousBid.ID
		}

		// Take back the expectation attributed by the outbid bid
		err = p.applyPendingRevenue(ctx, nft, creator, owner,
			derefOrZero(auction.CreatorRevenueInETH),
			derefOrZero(auction.OwnerRevenueInETH),
			derefOrZero(auction.ProtocolRevenueInETH), -1)
		if err != nil {
			return err
		}
	} else {
		auction.DateStarted = ref(event.Timestamp)
	}

	bidder, err := p.loadOrCreateAccount(ctx, params.Bidder)
	if err != nil {
		return err
	}
	currentBid.BidderID = bidder.ID

	// Refresh on every bid: third-party secondary logic can change after
	// the listing
	auction.IsPrimarySale, err = p.readIsPrimary(ctx, event, nft, auction.SellerID)
	if err != nil {
		return err
	}

	fees, err := p.readFees(ctx, event, nft, params.Amount, auction.IsPrimarySale)
	if err != nil {
		return err
	}
	sellerIsCreator := nft.CreatorID != nil && auction.SellerID == *nft.CreatorID
	creatorRev, ownerRev, protocolRev := splitRevenue(fees, sellerIsCreator)
	auction.CreatorRevenueInETH = ref(creatorRev)
	auction.OwnerRevenueInETH = ref(ownerRev)
	auction.ProtocolRevenueInETH = ref(protocolRev)

	if err := p.applyPendingRevenue(ctx, nft, creator, owner, creatorRev, ownerRev, protocolRev, 1); err != nil {
		return err
	}

	if !hadHighestBid {
		auction.InitialBidID = &currentBid.ID
		currentBid.ExtendedAuction = false
	} else {
		currentBid.ExtendedAuction = auction.DateEnding == nil || *auction.DateEnding != params.EndTime.Int64()
	}
	auction.DateEnding = ref(params.EndTime.Int64())
	auction.NumberOfBids++
	auction.BidVolumeInETH = auction.BidVolumeInETH.Add(currentBid.AmountInETH)
	if err := p.store.SaveBid(ctx, currentBid); err != nil {
		return err
	}
	auction.HighestBidID = &currentBid.ID
	if err := p.store.SaveAuction(ctx, auction); err != nil {
		return err
	}

	market, err := p.loadOrCreateMarketContract(ctx, event.Contract)
	if err != nil {
		return err
	}
	market.NumberOfBidsPlaced++
	if err := p.store.SaveNftMarketContract(ctx, market); err != nil {
		return err
	}

	return p.recordNftEvent(ctx, event, nft, schema.HistoryBid, bidder.ID, historyExtras{
		AuctionID:   auction.ID,
		Marketplace: marketplaceName,
		Amount:      ref(currentBid.AmountInETH),
	})
}

func (p *Projector) handleReserveAuctionUpdated(ctx context.Context, event *domain.Event, params *domain.ReserveAuctionUpdated) error {
	auction, err := p.loadAuction(ctx, event.Contract, params.AuctionID)
	if err != nil || auction == nil {
		return err
	}

	auction.ReservePriceInETH = conversion.ToETH(params.ReservePrice)
	if err := p.store.SaveAuction(ctx, auction); err != nil {
		return err
	}

	nft, err := p.store.GetNft(ctx, auction.NftID)
	if err != nil || nft == nil {
		return err
	}
	return p.recordNftEvent(ctx, event, nft, schema.HistoryPriceChanged, auction.SellerID, historyExtras{
		AuctionID:   auction.ID,
		Marketplace: marketplaceName,
		Amount:      ref(auction.ReservePriceInETH),
	})
}

// cancelAuction applies the shared cancellation shape; actorID distinguishes
// a seller cancel from an admin cancel
func (p *Projector) cancelAuction(ctx context.Context, event *domain.Event, auction *schema.NftMarketAuction, actorID string, reason *string) error {
	auction.Status = schema.AuctionStatusCanceled
	auction.CanceledReason = reason
	auction.DateCanceled = ref(event.Timestamp)
	auction.TransactionHashCanceled = ref(event.TxHash.Hex())
	if err := p.store.SaveAuction(ctx, auction); err != nil {
		return err
	}

	nft, err := p.store.GetNft(ctx, auction.NftID)
	if err != nil || nft == nil {
		return err
	}
	nft.MostRecentActiveAuctionID = nft.LatestFinalizedAuctionID
	if err := p.store.SaveNft(ctx, nft); err != nil {
		return err
	}

	if err := p.retractTransfer(ctx, event); err != nil {
		return err
	}
	return p.recordNftEvent(ctx, event, nft, schema.HistoryUnlisted, actorID, historyExtras{
		AuctionID:   auction.ID,
		Marketplace: marketplaceName,
	})
}

func (p *Projector) handleReserveAuctionCanceled(ctx context.Context, event *domain.Event, params *domain.ReserveAuctionCanceled) error {
	auction, err := p.loadAuction(ctx, event.Contract, params.AuctionID)
	if err != nil || auction == nil {
		return err
	}
	return p.cancelAuction(ctx, event, auction, auction.SellerID, nil)
}

func (p *Projector) handleReserveAuctionCanceledByAdmin(ctx context.Context, event *domain.Event, params *domain.ReserveAuctionCanceledByAdmin) error {
	auction, err := p.loadAuction(ctx, event.Contract, params.AuctionID)
	if err != nil || auction == nil {
		return err
	}
	admin, err := p.loadOrCreateAccount(ctx, event.TxOrigin)
	if err != nil {
		return err
	}
	return p.cancelAuction(ctx, event, auction, admin.ID, ref(params.Reason))
}

func (p *Projector) handleReserveAuctionFinalized(ctx context.Context, event *domain.Event, params *domain.ReserveAuctionFinalized) error {
	auction, err := p.loadAuction(ctx, event.Contract, params.AuctionID)
	if err != nil || auction == nil {
		return err
	}
	if auction.HighestBidID == nil {
		return nil
	}
	currentBid, err := p.store.GetBid(ctx, *auction.HighestBidID)
	if err != nil || currentBid == nil {
		return err
	}
	nft, err := p.store.GetNft(ctx, auction.NftID)
	if err != nil || nft == nil {
		return err
	}
	var creator *schema.Creator
	if nft.CreatorID != nil {
		if creator, err = p.store.GetCreator(ctx, *nft.CreatorID); err != nil {
			return err
		}
	}
	owner, err := p.store.GetAccount(ctx, auction.SellerID)
	if err != nil || owner == nil {
		return err
	}

	// Take back the expectation carried since the last bid, using the same
	// stored amounts that were attributed
	err = p.applyPendingRevenue(ctx, nft, creator, owner,
		derefOrZero(auction.CreatorRevenueInETH),
		derefOrZero(auction.OwnerRevenueInETH),
		derefOrZero(auction.ProtocolRevenueInETH), -1)
	if err != nil {
		return err
	}

	auction.Status = schema.AuctionStatusFinalized
	auction.DateFinalized = ref(event.Timestamp)
	auction.CreatorRevenueInETH = ref(conversion.ToETH(params.CreatorRev))
	auction.OwnerRevenueInETH = ref(conversion.ToETH(params.SellerRev))
	auction.ProtocolRevenueInETH = ref(conversion.ToETH(params.TotalFees))
	if auction.BuyReferrerFeeInETH == nil {
		auction.BuyReferrerFeeInETH = ref(decimal.Zero)
	}
	if auction.BuyReferrerSellerFeeInETH == nil {
		auction.BuyReferrerSellerFeeInETH = ref(decimal.Zero)
	}
	auction.NetProtocolFeeInETH = ref(conversion.ToETH(params.TotalFees).Sub(*auction.BuyReferrerFeeInETH))
	if err := p.store.SaveAuction(ctx, auction); err != nil {
		return err
	}

	currentBid.Status = schema.BidStatusFinalizedWinner
	currentBid.DateLeftActiveStatus = ref(event.Timestamp)
	currentBid.TransactionHashLeftActiveStatus = ref(event.TxHash.Hex())
	if err := p.store.SaveBid(ctx, currentBid); err != nil {
		return err
	}

	nft.LatestFinalizedAuctionID = &auction.ID
	if err := p.recordSale(ctx, nft, owner,
		*auction.CreatorRevenueInETH, *auction.OwnerRevenueInETH, *auction.ProtocolRevenueInETH); err != nil {
		return err
	}

	// The sale happened when the countdown ended, not when someone settled
	soldDate := event.Timestamp
	if auction.DateEnding != nil {
		soldDate = *auction.DateEnding
	}
	err = p.recordNftEvent(ctx, event, nft, schema.HistorySold, currentBid.BidderID, historyExtras{
		AuctionID:   auction.ID,
		Marketplace: marketplaceName,
		Amount:      ref(currentBid.AmountInETH),
		Date:        soldDate,
	})
	if err != nil {
		return err
	}
	if err := p.retractTransfer(ctx, event); err != nil {
		return err
	}
	settler, err := p.loadOrCreateAccount(ctx, event.TxOrigin)
	if err != nil {
		return err
	}
	return p.recordNftEvent(ctx, event, nft, schema.HistorySettled, settler.ID, historyExtras{
		AuctionID:   auction.ID,
		Marketplace: marketplaceName,
		RecipientID: currentBid.BidderID,
	})
}

func (p *Projector) handleReserveAuctionInvalidated(ctx context.Context, event *domain.Event, params *domain.ReserveAuctionInvalidated) error {
	auction, err := p.loadAuction(ctx, event.Contract, params.AuctionID)
	if err != nil || auction == nil {
		return err
	}

	auction.Status = schema.AuctionStatusInvalidated
	auction.DateInvalidated = ref(event.Timestamp)
	auction.TransactionHashInvalidated = ref(event.TxHash.Hex())
	if err := p.store.SaveAuction(ctx, auction); err != nil {
		return err
	}

	nft, err := p.store.GetNft(ctx, auction.NftID)
	if err != nil || nft == nil {
		return err
	}
	nft.MostRecentActiveAuctionID = nft.LatestFinalizedAuctionID
	if err := p.store.SaveNft(ctx, nft); err != nil {
		return err
	}

	return p.recordNftEvent(ctx, event, nft, schema.HistoryAuctionInvalidated, auction.SellerID, historyExtras{
		AuctionID:   auction.ID,
		Marketplace: marketplaceName,
	})
}

func (p *Projector) handleReserveAuctionSellerMigrated(ctx context.Context, event *domain.Event, params *domain.ReserveAuctionSellerMigrated) error {
	auction, err := p.loadAuction(ctx, event.Contract, params.AuctionID)
	if err != nil || auction == nil {
		return err
	}

	newSeller, err := p.loadOrCreateAccount(ctx, params.NewSellerAddress)
	if err != nil {
		return err
	}
	auction.SellerID = newSeller.ID
	if err := p.store.SaveAuction(ctx, auction); err != nil {
		return err
	}

	nft, err := p.store.GetNft(ctx, auction.NftID)
	if err != nil || nft == nil {
		return err
	}
	nft.OwnedOrListedByID = newSeller.ID
	if err := p.store.SaveNft(ctx, nft); err != nil {
		return err
	}

	originalSeller, err := p.loadOrCreateAccount(ctx, params.OriginalSellerAddress)
	if err != nil {
		return err
	}
	return p.recordNftEvent(ctx, event, nft, schema.HistorySellerMigrated, originalSeller.ID, historyExtras{
		AuctionID:   auction.ID,
		Marketplace: marketplaceName,
		RecipientID: newSeller.ID,
	})
}
