package projector

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/gallerie/market-indexer/internal/store/schema"
)

// recordSale applies a realized revenue split to the creator, the seller and
// the token. The total sale amount is the sum of the three shares; the token
// leaves its first-sale state permanently.
func (p *Projector) recordSale(ctx context.Context, nft *schema.Nft, seller *schema.Account, creatorRev, ownerRev, protocolRev decimal.Decimal) error {
	amount := creatorRev.Add(ownerRev).Add(protocolRev)

	if nft.CreatorID != nil {
		creator, err := p.store.GetCreator(ctx, *nft.CreatorID)
		if err != nil {
			return err
		}
		if creator != nil {
			creator.NetRevenueInETH = creator.NetRevenueInETH.Add(creatorRev)
			creator.NetSalesInETH = creator.NetSalesInETH.Add(amount)
			if err := p.store.SaveCreator(ctx, creator); err != nil {
				return err
			}
		}
	}

	seller.NetRevenueInETH = seller.NetRevenueInETH.Add(ownerRev)
	if err := p.store.SaveAccount(ctx, seller); err != nil {
		return err
	}

	nft.NetSalesInETH = nft.NetSalesInETH.Add(amount)
	nft.NetRevenueInETH = nft.NetRevenueInETH.Add(creatorRev)
	nft.IsFirstSale = false
	nft.LastSalePriceInETH = ref(amount)
	return p.store.SaveNft(ctx, nft)
}

// applyPendingRevenue attributes an expected auction split to the creator,
// the seller and the token while the auction is open. sign is +1 when a bid
// establishes the expectation and -1 when it is reversed (outbid, settle).
// The add and the reversal use the same stored amounts, so a closed auction
// always nets pending back to exactly zero.
func (p *Projector) applyPendingRevenue(ctx context.Context, nft *schema.Nft, creator *schema.Creator, owner *schema.Account, creatorRev, ownerRev, protocolRev decimal.Decimal, sign int) error {
	amount := creatorRev.Add(ownerRev).Add(protocolRev)
	if sign < 0 {
		creatorRev = creatorRev.Neg()
		ownerRev = ownerRev.Neg()
		amount = amount.Neg()
	}

	if creator != nil {
		creator.NetRevenuePendingInETH = creator.NetRevenuePendingInETH.Add(creatorRev)
		creator.NetSalesPendingInETH = creator.NetSalesPendingInETH.Add(amount)
		if err := p.store.SaveCreator(ctx, creator); err != nil {
			return err
		}
	}

	owner.NetRevenuePendingInETH = owner.NetRevenuePendingInETH.Add(ownerRev)
	if err := p.store.SaveAccount(ctx, owner); err != nil {
		return err
	}

	nft.NetRevenuePendingInETH = nft.NetRevenuePendingInETH.Add(creatorRev)
	nft.NetSalesPendingInETH = nft.NetSalesPendingInETH.Add(amount)
	return p.store.SaveNft(ctx, nft)
}
