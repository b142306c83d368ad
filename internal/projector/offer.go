package projector

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/gallerie/market-indexer/internal/conversion"
	"github.com/gallerie/market-indexer/internal/domain"
	"github.com/gallerie/market-indexer/internal/ids"
	"github.com/gallerie/market-indexer/internal/store/schema"
)

// loadLatestOffer returns the token's open offer, or nil. At most one offer
// per token is ever Open.
func (p *Projector) loadLatestOffer(ctx context.Context, nft *schema.Nft) (*schema.NftMarketOffer, error) {
	if nft.MostRecentOfferID == nil {
		return nil, nil
	}
	offer, err := p.store.GetOffer(ctx, *nft.MostRecentOfferID)
	if err != nil {
		return nil, err
	}
	if offer == nil || offer.Status != schema.OfferStatusOpen {
		return nil, nil
	}
	return offer, nil
}

// outbidOrExpirePreviousOffer closes the token's open offer before a new one
// takes its place. An offer whose expiration already passed expires (its
// history row carries the expiration time, not the block time); otherwise it
// is outbid and linked to its successor. Returns true when the same buyer is
// raising their own offer.
func (p *Projector) outbidOrExpirePreviousOffer(ctx context.Context, event *domain.Event, nft *schema.Nft, newBuyerID string, newOffer *schema.NftMarketOffer) (bool, error) {
	offer, err := p.loadLatestOffer(ctx, nft)
	if err != nil || offer == nil {
		return false, err
	}

	if offer.DateExpires < event.Timestamp {
		offer.Status = schema.OfferStatusExpired
		if err := p.store.SaveOffer(ctx, offer); err != nil {
			return false, err
		}
		err := p.recordNftEvent(ctx, event, nft, schema.HistoryOfferExpired, offer.BuyerID, historyExtras{
			Marketplace: marketplaceName,
			OfferID:     offer.ID,
			Date:        offer.DateExpires,
		})
		return false, err
	}

	offer.Status = schema.OfferStatusOutbid
	offer.DateOutbid = ref(event.Timestamp)
	offer.TransactionHashOutbid = ref(event.TxHash.Hex())
	offer.OfferOutbidByID = &newOffer.ID
	newOffer.OutbidOfferID = &offer.ID
	if err := p.store.SaveOffer(ctx, offer); err != nil {
		return false, err
	}

	return offer.BuyerID == newBuyerID, nil
}

func (p *Projector) handleOfferMade(ctx context.Context, event *domain.Event, params *domain.OfferMade) error {
	nft, err := p.loadOrCreateNft(ctx, params.NftContract, params.TokenID, event)
	if err != nil {
		return err
	}
	buyer, err := p.loadOrCreateAccount(ctx, params.Buyer)
	if err != nil {
		return err
	}
	market, err := p.loadOrCreateMarketContract(ctx, event.Contract)
	if err != nil {
		return err
	}

	offer := &schema.NftMarketOffer{
		ID:                     ids.LogID(event.TxHash, event.LogIndex),
		NftMarketContractID:    market.ID,
		NftID:                  nft.ID,
		NftContractID:          nft.NftContractID,
		Status:                 schema.OfferStatusOpen,
		BuyerID:                buyer.ID,
		AmountInETH:            conversion.ToETH(params.Amount),
		DateCreated:            event.Timestamp,
		TransactionHashCreated: event.TxHash.Hex(),
		DateExpires:            params.Expiration.Int64(),
	}
	isIncrease, err := p.outbidOrExpirePreviousOffer(ctx, event, nft, buyer.ID, offer)
	if err != nil {
		return err
	}
	if err := p.store.SaveOffer(ctx, offer); err != nil {
		return fmt.Errorf("failed to save offer %s: %w", offer.ID, err)
	}

	eventType := schema.HistoryOfferMade
	if isIncrease {
		eventType = schema.HistoryOfferChanged
	}
	err = p.recordNftEvent(ctx, event, nft, eventType, buyer.ID, historyExtras{
		Marketplace: marketplaceName,
		Amount:      ref(offer.AmountInETH),
		OfferID:     offer.ID,
	})
	if err != nil {
		return err
	}

	nft.MostRecentOfferID = &offer.ID
	return p.store.SaveNft(ctx, nft)
}

func (p *Projector) handleOfferAccepted(ctx context.Context, event *domain.Event, params *domain.OfferAccepted) error {
	nft, err := p.loadOrCreateNft(ctx, params.NftContract, params.TokenID, event)
	if err != nil {
		return err
	}
	offer, err := p.loadLatestOffer(ctx, nft)
	if err != nil || offer == nil {
		return err
	}

	buyer, err := p.loadOrCreateAccount(ctx, params.Buyer)
	if err != nil {
		return err
	}
	seller, err := p.loadOrCreateAccount(ctx, params.Seller)
	if err != nil {
		return err
	}

	offer.Status = schema.OfferStatusAccepted
	offer.SellerID = &seller.ID
	offer.DateAccepted = ref(event.Timestamp)
	offer.TransactionHashAccepted = ref(event.TxHash.Hex())
	offer.CreatorRevenueInETH = ref(conversion.ToETH(params.CreatorRev))
	offer.OwnerRevenueInETH = ref(conversion.ToETH(params.SellerRev))
	offer.ProtocolRevenueInETH = ref(conversion.ToETH(params.TotalFees))
	if offer.BuyReferrerFeeInETH == nil {
		offer.BuyReferrerFeeInETH = ref(decimal.Zero)
	}
	if offer.BuyReferrerSellerFeeInETH == nil {
		offer.BuyReferrerSellerFeeInETH = ref(decimal.Zero)
	}
	offer.NetProtocolFeeInETH = ref(conversion.ToETH(params.TotalFees).Sub(*offer.BuyReferrerFeeInETH))
	offer.IsPrimarySale = nft.IsFirstSale && nft.CreatorID != nil && seller.ID == *nft.CreatorID
	if err := p.store.SaveOffer(ctx, offer); err != nil {
		return err
	}

	// Only applicable when the token was escrowed with the market
	if err := p.retractTransfer(ctx, event); err != nil {
		return err
	}
	err = p.recordNftEvent(ctx, event, nft, schema.HistoryOfferAccepted, seller.ID, historyExtras{
		Marketplace: marketplaceName,
		Amount:      ref(offer.AmountInETH),
		RecipientID: buyer.ID,
		OfferID:     offer.ID,
	})
	if err != nil {
		return err
	}
	return p.recordSale(ctx, nft, seller,
		*offer.CreatorRevenueInETH, *offer.OwnerRevenueInETH, *offer.ProtocolRevenueInETH)
}

func (p *Projector) handleOfferInvalidated(ctx context.Context, event *domain.Event, params *domain.OfferInvalidated) error {
	nft, err := p.loadOrCreateNft(ctx, params.NftContract, params.TokenID, event)
	if err != nil {
		return err
	}
	offer, err := p.loadLatestOffer(ctx, nft)
	if err != nil || offer == nil {
		return err
	}

	offer.Status = schema.OfferStatusInvalidated
	offer.DateInvalidated = ref(event.Timestamp)
	offer.TransactionHashInvalidated = ref(event.TxHash.Hex())
	if err := p.store.SaveOffer(ctx, offer); err != nil {
		return err
	}

	return p.recordNftEvent(ctx, event, nft, schema.HistoryOfferInvalidated, offer.BuyerID, historyExtras{
		Marketplace: marketplaceName,
		OfferID:     offer.ID,
	})
}

func (p *Projector) handleOfferCanceledByAdmin(ctx context.Context, event *domain.Event, params *domain.OfferCanceledByAdmin) error {
	nft, err := p.loadOrCreateNft(ctx, params.NftContract, params.TokenID, event)
	if err != nil {
		return err
	}
	offer, err := p.loadLatestOffer(ctx, nft)
	if err != nil || offer == nil {
		return err
	}

	offer.Status = schema.OfferStatusCanceled
	offer.DateCanceled = ref(event.Timestamp)
	offer.TransactionHashCanceled = ref(event.TxHash.Hex())
	if err := p.store.SaveOffer(ctx, offer); err != nil {
		return err
	}

	return p.recordNftEvent(ctx, event, nft, schema.HistoryOfferCanceled, offer.BuyerID, historyExtras{
		Marketplace: marketplaceName,
		OfferID:     offer.ID,
	})
}
