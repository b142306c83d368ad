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

// loadLatestBuyNow returns the token's open fixed-price listing, or nil. At
// most one listing per token is ever Open.
func (p *Projector) loadLatestBuyNow(ctx context.Context, nft *schema.Nft) (*schema.NftMarketBuyNow, error) {
	if nft.MostRecentBuyNowID == nil {
		return nil, nil
	}
	buyNow, err := p.store.GetBuyNow(ctx, *nft.MostRecentBuyNowID)
	if err != nil {
		return nil, err
	}
	if buyNow == nil || buyNow.Status != schema.BuyNowStatusOpen {
		return nil, nil
	}
	return buyNow, nil
}

func (p *Projector) handleBuyPriceSet(ctx context.Context, event *domain.Event, params *domain.BuyPriceSet) error {
	nft, err := p.loadOrCreateNft(ctx, params.NftContract, params.TokenID, event)
	if err != nil {
		return err
	}
	seller, err := p.loadOrCreateAccount(ctx, params.Seller)
	if err != nil {
		return err
	}
	market, err := p.loadOrCreateMarketContract(ctx, event.Contract)
	if err != nil {
		return err
	}

	// A set against an open listing re-prices it in place; the row identity
	// stays with the original listing
	buyNow, err := p.loadLatestBuyNow(ctx, nft)
	if err != nil {
		return err
	}
	isRepricing := buyNow != nil
	if buyNow == nil {
		buyNow = &schema.NftMarketBuyNow{
			ID: ids.LogID(event.TxHash, event.LogIndex),
		}
	}

	buyNow.NftMarketContractID = market.ID
	buyNow.NftID = nft.ID
	buyNow.NftContractID = nft.NftContractID
	buyNow.Status = schema.BuyNowStatusOpen
	buyNow.SellerID = seller.ID
	buyNow.AmountInETH = conversion.ToETH(params.Price)
	buyNow.DateCreated = event.Timestamp
	buyNow.TransactionHashCreated = event.TxHash.Hex()
	if err := p.store.SaveBuyNow(ctx, buyNow); err != nil {
		return fmt.Errorf("failed to save buy now %s: %w", buyNow.ID, err)
	}

	if err := p.retractTransfer(ctx, event); err != nil {
		return err
	}
	eventType := schema.HistoryBuyPriceSet
	if isRepricing {
		eventType = schema.HistoryBuyPriceChanged
	}
	err = p.recordNftEvent(ctx, event, nft, eventType, seller.ID, historyExtras{
		Marketplace: marketplaceName,
		Amount:      ref(buyNow.AmountInETH),
		BuyNowID:    buyNow.ID,
	})
	if err != nil {
		return err
	}

	nft.MostRecentBuyNowID = &buyNow.ID
	nft.OwnedOrListedByID = seller.ID
	return p.store.SaveNft(ctx, nft)
}

func (p *Projector) handleBuyPriceAccepted(ctx context.Context, event *domain.Event, params *domain.BuyPriceAccepted) error {
	nft, err := p.loadOrCreateNft(ctx, params.NftContract, params.TokenID, event)
	if err != nil {
		return err
	}
	buyNow, err := p.loadLatestBuyNow(ctx, nft)
	if err != nil || buyNow == nil {
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

	buyNow.Status = schema.BuyNowStatusAccepted
	buyNow.BuyerID = &buyer.ID
	buyNow.SellerID = seller.ID
	buyNow.DateAccepted = ref(event.Timestamp)
	buyNow.TransactionHashAccepted = ref(event.TxHash.Hex())
	buyNow.CreatorRevenueInETH = ref(conversion.ToETH(params.CreatorRev))
	buyNow.OwnerRevenueInETH = ref(conversion.ToETH(params.SellerRev))
	buyNow.ProtocolRevenueInETH = ref(conversion.ToETH(params.TotalFees))
	if buyNow.BuyReferrerFeeInETH == nil {
		buyNow.BuyReferrerFeeInETH = ref(decimal.Zero)
	}
	if buyNow.BuyReferrerSellerFeeInETH == nil {
		buyNow.BuyReferrerSellerFeeInETH = ref(decimal.Zero)
	}
	buyNow.NetProtocolFeeInETH = ref(conversion.ToETH(params.TotalFees).Sub(*buyNow.BuyReferrerFeeInETH))
	buyNow.IsPrimarySale = nft.IsFirstSale && nft.CreatorID != nil && seller.ID == *nft.CreatorID
	if err := p.store.SaveBuyNow(ctx, buyNow); err != nil {
		return err
	}

	if err := p.retractTransfer(ctx, event); err != nil {
		return err
	}
	err = p.recordNftEvent(ctx, event, nft, schema.HistoryBuyPriceAccepted, seller.ID, historyExtras{
		Marketplace: marketplaceName,
		Amount:      ref(buyNow.AmountInETH),
		RecipientID: buyer.ID,
		BuyNowID:    buyNow.ID,
	})
	if err != nil {
		return err
	}
	return p.recordSale(ctx, nft, seller,
		*buyNow.CreatorRevenueInETH, *buyNow.OwnerRevenueInETH, *buyNow.ProtocolRevenueInETH)
}

func (p *Projector) handleBuyPriceInvalidated(ctx context.Context, event *domain.Event, params *domain.BuyPriceInvalidated) error {
	nft, err := p.loadOrCreateNft(ctx, params.NftContract, params.TokenID, event)
	if err != nil {
		return err
	}
	buyNow, err := p.loadLatestBuyNow(ctx, nft)
	if err != nil || buyNow == nil {
		return err
	}

	buyNow.Status = schema.BuyNowStatusInvalidated
	buyNow.DateInvalidated = ref(event.Timestamp)
	buyNow.TransactionHashInvalidated = ref(event.TxHash.Hex())
	if err := p.store.SaveBuyNow(ctx, buyNow); err != nil {
		return err
	}

	return p.recordNftEvent(ctx, event, nft, schema.HistoryBuyPriceInvalidated, buyNow.SellerID, historyExtras{
		Marketplace: marketplaceName,
		BuyNowID:    buyNow.ID,
	})
}

func (p *Projector) handleBuyPriceCanceled(ctx context.Context, event *domain.Event, params *domain.BuyPriceCanceled) error {
	nft, err := p.loadOrCreateNft(ctx, params.NftContract, params.TokenID, event)
	if err != nil {
		return err
	}
	buyNow, err := p.loadLatestBuyNow(ctx, nft)
	if err != nil || buyNow == nil {
		return err
	}

	buyNow.Status = schema.BuyNowStatusCanceled
	buyNow.DateCanceled = ref(event.Timestamp)
	buyNow.TransactionHashCanceled = ref(event.TxHash.Hex())
	if err := p.store.SaveBuyNow(ctx, buyNow); err != nil {
		return err
	}

	if err := p.retractTransfer(ctx, event); err != nil {
		return err
	}
	return p.recordNftEvent(ctx, event, nft, schema.HistoryBuyPriceCanceled, buyNow.SellerID, historyExtras{
		Marketplace: marketplaceName,
		BuyNowID:    buyNow.ID,
	})
}
