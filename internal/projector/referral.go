package projector

import (
	"context"

	"github.com/gallerie/market-indexer/internal/conversion"
	"github.com/gallerie/market-indexer/internal/domain"
	"github.com/gallerie/market-indexer/internal/store/schema"
)

// handleBuyReferralPaid attaches a referral fee to the sale settling in the
// same transaction. The venue order mirrors how settlement events interleave:
// an open buy-now first, then an open auction, and the open offer last -
// a token bought through buy-now or auction leaves its offer open.
func (p *Projector) handleBuyReferralPaid(ctx context.Context, event *domain.Event, params *domain.BuyReferralPaid) error {
	nft, err := p.loadOrCreateNft(ctx, params.NftContract, params.TokenID, event)
	if err != nil {
		return err
	}

	referrerID, err := p.referrerID(ctx, params)
	if err != nil {
		return err
	}

	buyNow, err := p.loadLatestBuyNow(ctx, nft)
	if err != nil {
		return err
	}
	if buyNow != nil {
		buyNow.BuyReferrerFeeInETH = ref(conversion.ToETH(params.BuyReferrerFee))
		buyNow.BuyReferrerSellerFeeInETH = ref(conversion.ToETH(params.BuyReferrerSellerFee))
		if referrerID != "" {
			buyNow.BuyReferrerID = ref(referrerID)
		}
		return p.store.SaveBuyNow(ctx, buyNow)
	}

	if nft.MostRecentActiveAuctionID != nil {
		auction, err := p.store.GetAuction(ctx, *nft.MostRecentActiveAuctionID)
		if err != nil {
			return err
		}
		if auction != nil && auction.Status == schema.AuctionStatusOpen {
			auction.BuyReferrerFeeInETH = ref(conversion.ToETH(params.BuyReferrerFee))
			auction.BuyReferrerSellerFeeInETH = ref(conversion.ToETH(params.BuyReferrerSellerFee))
			if referrerID != "" {
				auction.BuyReferrerID = ref(referrerID)
			}
			return p.store.SaveAuction(ctx, auction)
		}
	}

	offer, err := p.loadLatestOffer(ctx, nft)
	if err != nil || offer == nil {
		return err
	}
	offer.BuyReferrerFeeInETH = ref(conversion.ToETH(params.BuyReferrerFee))
	offer.BuyReferrerSellerFeeInETH = ref(conversion.ToETH(params.BuyReferrerSellerFee))
	if referrerID != "" {
		offer.BuyReferrerID = ref(referrerID)
	}
	return p.store.SaveOffer(ctx, offer)
}

// referrerID resolves the referrer account, or "" for the zero address
func (p *Projector) referrerID(ctx context.Context, params *domain.BuyReferralPaid) (string, error) {
	if params.BuyReferrer == zeroAddress {
		return "", nil
	}
	referrer, err := p.loadOrCreateAccount(ctx, params.BuyReferrer)
	if err != nil {
		return "", err
	}
	return referrer.ID, nil
}
