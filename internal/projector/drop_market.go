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

func (p *Projector) handleCreateFixedPriceSale(ctx context.Context, event *domain.Event, params *domain.CreateFixedPriceSale) error {
	contract, err := p.loadOrCreateNftContract(ctx, params.NftContract)
	if err != nil {
		return err
	}
	seller, err := p.loadOrCreateAccount(ctx, params.Seller)
	if err != nil {
		return err
	}

	sale := &schema.FixedPriceSale{
		ID:                     ids.LogID(event.TxHash, event.LogIndex),
		NftContractID:          contract.ID,
		SellerID:               seller.ID,
		UnitPriceInETH:         conversion.ToETH(params.Price),
		LimitPerAccount:        params.LimitPerAccount.Int64(),
		DateCreated:            event.Timestamp,
		TransactionHashCreated: event.TxHash.Hex(),
		AmountSoldInETH:        decimal.Zero,
	}
	if err := p.store.SaveFixedPriceSale(ctx, sale); err != nil {
		return fmt.Errorf("failed to save fixed price sale %s: %w", sale.ID, err)
	}
	return nil
}

// handleMintFromFixedPriceDrop records one mint transaction against the
// collection's latest drop sale. The mint row is keyed by transaction hash so
// a BuyReferralPaid later in the same transaction can attach to it.
func (p *Projector) handleMintFromFixedPriceDrop(ctx context.Context, event *domain.Event, params *domain.MintFromFixedPriceDrop) error {
	sale, err := p.store.GetFixedPriceSaleByContract(ctx, ids.Address(params.NftContract))
	if err != nil || sale == nil {
		return err
	}
	buyer, err := p.loadOrCreateAccount(ctx, params.Buyer)
	if err != nil {
		return err
	}

	amount := conversion.ToETH(new(big.Int).Add(params.CreatorRev, params.TotalFees))
	mint := &schema.FixedPriceSaleMint{
		ID:               event.TxHash.Hex(),
		FixedPriceSaleID: sale.ID,
		BuyerID:          buyer.ID,
		Count:            params.Count.Int64(),
		AmountInETH:      amount,
		DateMinted:       event.Timestamp,
	}
	if err := p.store.SaveFixedPriceSaleMint(ctx, mint); err != nil {
		return fmt.Errorf("failed to save drop mint %s: %w", mint.ID, err)
	}

	sale.NumberSold += mint.Count
	sale.AmountSoldInETH = sale.AmountSoldInETH.Add(amount)
	return p.store.SaveFixedPriceSale(ctx, sale)
}

// handleDropBuyReferralPaid routes a drop-market referral to the mint that
// settled in the same transaction
func (p *Projector) handleDropBuyReferralPaid(ctx context.Context, event *domain.Event, params *domain.BuyReferralPaid) error {
	mint, err := p.store.GetFixedPriceSaleMint(ctx, event.TxHash.Hex())
	if err != nil || mint == nil {
		return err
	}

	referrerID, err := p.referrerID(ctx, params)
	if err != nil {
		return err
	}
	if referrerID != "" {
		mint.BuyReferrerID = ref(referrerID)
	}
	mint.BuyReferrerFeeInETH = ref(conversion.ToETH(params.BuyReferrerFee))
	return p.store.SaveFixedPriceSaleMint(ctx, mint)
}
