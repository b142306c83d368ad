package projector

import (
	"context"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/gallerie/market-indexer/internal/conversion"
	"github.com/gallerie/market-indexer/internal/domain"
	"github.com/gallerie/market-indexer/internal/ids"
	"github.com/gallerie/market-indexer/internal/store/schema"
)

// handlePrivateSaleFinalized records a one-shot, fully realized sale. There
// is no open phase, so the row is terminal the moment it exists.
func (p *Projector) handlePrivateSaleFinalized(ctx context.Context, event *domain.Event, params *domain.PrivateSaleFinalized) error {
	nft, err := p.loadOrCreateNft(ctx, params.NftContract, params.TokenID, event)
	if err != nil {
		return err
	}
	seller, err := p.loadOrCreateAccount(ctx, params.Seller)
	if err != nil {
		return err
	}
	buyer, err := p.loadOrCreateAccount(ctx, params.Buyer)
	if err != nil {
		return err
	}

	sale := &schema.PrivateSale{
		ID:                  ids.LogID(event.TxHash, event.LogIndex),
		NftID:               nft.ID,
		SellerID:            seller.ID,
		BuyerID:             buyer.ID,
		DateSold:            event.Timestamp,
		TransactionHashSold: event.TxHash.Hex(),
		Deadline:            params.Deadline.Int64(),
	}
	if nft.CreatorID != nil && seller.ID == *nft.CreatorID {
		sale.CreatorRevenueInETH = conversion.ToETH(new(big.Int).Add(params.CreatorRev, params.SellerRev))
		sale.OwnerRevenueInETH = decimal.Zero
	} else {
		sale.CreatorRevenueInETH = conversion.ToETH(params.CreatorRev)
		sale.OwnerRevenueInETH = conversion.ToETH(params.SellerRev)
	}
	sale.ProtocolRevenueInETH = conversion.ToETH(params.TotalFees)
	sale.AmountInETH = sale.CreatorRevenueInETH.Add(sale.OwnerRevenueInETH).Add(sale.ProtocolRevenueInETH)
	sale.IsPrimarySale = nft.IsFirstSale && nft.CreatorID != nil && seller.ID == *nft.CreatorID
	if err := p.store.SavePrivateSale(ctx, sale); err != nil {
		return fmt.Errorf("failed to save private sale %s: %w", sale.ID, err)
	}

	if err := p.retractTransfer(ctx, event); err != nil {
		return err
	}
	err = p.recordNftEvent(ctx, event, nft, schema.HistoryPrivateSale, seller.ID, historyExtras{
		Marketplace:   marketplaceName,
		Amount:        ref(sale.AmountInETH),
		RecipientID:   buyer.ID,
		PrivateSaleID: sale.ID,
	})
	if err != nil {
		return err
	}

	return p.recordSale(ctx, nft, seller,
		sale.CreatorRevenueInETH, sale.OwnerRevenueInETH, sale.ProtocolRevenueInETH)
}
